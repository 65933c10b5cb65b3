package server

// Server is the lifecycle contract shared by the transport servers this
// package manages.
//
// Implementations block in [Server.RunServer] until shutdown is requested
// and release their listeners in [Server.Shutdown].
type Server interface {
	// RunServer starts serving requests and blocks until the server stops.
	RunServer()

	// Shutdown gracefully stops the server and frees associated resources.
	Shutdown()
}
