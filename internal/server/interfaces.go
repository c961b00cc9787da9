package server

// Server is a listener whose lifetime is tied to the stub API process:
// RunServer blocks while requests are served, Shutdown drains them.
type Server interface {
	RunServer()
	Shutdown()
}
