package server

// Server is the lifecycle contract of the cloud API server. [RunServer]
// blocks until a stop signal arrives or the listener fails; [Shutdown] stops
// accepting new connections and drains in-flight requests.
type Server interface {
	RunServer()
	Shutdown()
}
