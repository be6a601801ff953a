package server

// Server is the stub API process lifecycle.
type Server interface {
	// RunServer serves until a termination signal arrives, then drains
	// in-flight requests.
	RunServer()

	Shutdown()
}
