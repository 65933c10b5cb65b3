// Package server wires and runs the application's transport servers.
//
// It provides orchestration for the HTTP vault API and the gRPC health
// endpoint, including startup, signal handling, and graceful shutdown of
// all enabled transports. Shutdown flips the health status to NOT_SERVING
// before the listeners close so probes drain traffic first.
package server
