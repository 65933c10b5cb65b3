// Package http implements the HTTP transport layer of the vault API.
//
// It exposes route wiring, request handlers, and middleware used by the REST
// surface. Cross-cutting concerns such as bearer-token authentication,
// request tracing, access logging, and response compression are handled in
// this package before requests are delegated to the vault services. Master
// passwords and decrypted payloads pass through request and response bodies
// only; nothing in this package persists or logs them.
package http
