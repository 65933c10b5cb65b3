package config

import (
	"errors"
	"flag"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-grpc-address grpc server address in format [host]:[port]
//	-d database DSN
//	-driver database driver (pgx, sqlite3, memory)
//	-c/-config json file path with configs
//	-token-sign-key token verification key
//	-token-issuer token issuer name
//	-session-ttl vault session lifetime (e.g., "30m", "1h")
//	-session-check-interval session validity check period (e.g., "30s")
//	-decrypt-workers max concurrent item decryptions
//	-log-file log file path
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-rest-base-url remote REST row store base URL
//	-rest-api-key remote REST row store API key
//	-rest-timeout remote REST row store request timeout
//	-session-sweep-interval expired session sweep period (e.g., "1m")
func ParseFlags() *StructuredConfig {
	var serverAddress, grpcServerAddress NetAddress
	var databaseDSN string
	var databaseDriver string
	var jsonConfigPath string
	var tokenSignKey string
	var tokenIssuer string
	var sessionTTL time.Duration
	var sessionCheckInterval time.Duration
	var decryptWorkers int
	var logFile string
	var requestTimeout time.Duration
	var restBaseURL string
	var restAPIKey string
	var restTimeout time.Duration
	var sessionSweepInterval time.Duration

	flag.Var(&serverAddress, "a", "Net address host:port")
	flag.Var(&grpcServerAddress, "grpc-address", "Net grpc server address host:port")
	flag.StringVar(&databaseDSN, "d", "", "Database DSN")
	flag.StringVar(&databaseDriver, "driver", "", "Database driver (pgx, sqlite3, memory)")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.StringVar(&tokenSignKey, "token-sign-key", "", "Token verification key")
	flag.StringVar(&tokenIssuer, "token-issuer", "", "Token issuer")
	flag.DurationVar(&sessionTTL, "session-ttl", 0, "Vault session lifetime (e.g., 30m, 1h)")
	flag.DurationVar(&sessionCheckInterval, "session-check-interval", 0, "Session validity check period (e.g., 30s)")
	flag.IntVar(&decryptWorkers, "decrypt-workers", 0, "Max concurrent item decryptions")
	flag.StringVar(&logFile, "log-file", "", "Log file path")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	flag.StringVar(&restBaseURL, "rest-base-url", "", "Remote REST row store base URL")
	flag.StringVar(&restAPIKey, "rest-api-key", "", "Remote REST row store API key")
	flag.DurationVar(&restTimeout, "rest-timeout", 0, "Remote REST row store request timeout")
	flag.DurationVar(&sessionSweepInterval, "session-sweep-interval", 0, "Expired session sweep period (e.g., 1m)")

	flag.Parse()

	return &StructuredConfig{
		App: App{
			TokenSignKey:         tokenSignKey,
			TokenIssuer:          tokenIssuer,
			SessionTTL:           sessionTTL,
			SessionCheckInterval: sessionCheckInterval,
			DecryptWorkers:       decryptWorkers,
			LogFile:              logFile,
		},
		Storage: Storage{
			DB: Database{
				Driver: databaseDriver,
				DSN:    databaseDSN,
			},
			Rest: Rest{
				BaseURL: restBaseURL,
				APIKey:  restAPIKey,
				Timeout: restTimeout,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			GRPCAddress:    grpcServerAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Workers: Workers{
			SessionSweepInterval: sessionSweepInterval,
		},
		JSONFilePath: jsonConfigPath,
	}
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns the empty string so that
// merge keeps looking at lower-priority sources.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost",
// and returns an error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 {
		return errors.New("port number is a positive integer")
	}

	if host != "localhost" {
		ip := net.ParseIP(hostAndPort[0])
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
