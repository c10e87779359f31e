package server

// Server runs the skill endpoint until the process is told to stop.
//
// RunServer blocks. It returns after SIGINT, SIGTERM or SIGQUIT once
// in-flight skill requests have finished or the shutdown timeout elapsed.
// Shutdown stops accepting connections and drains the open ones; it is safe
// to call from another goroutine while RunServer is blocked.
type Server interface {
	RunServer()
	Shutdown()
}
