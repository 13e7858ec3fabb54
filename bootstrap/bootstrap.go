package bootstrap

import (
	"log"
	"sync"
)

const (
	// PortEnv is the environment variable holding the listening port
	PortEnv = "PORT"
	// DefaultPort is used when PortEnv is unset or empty
	DefaultPort = "3000"
)

// LookupFunc reads a named variable from the environment, same shape as os.LookupEnv
type LookupFunc func(key string) (string, bool)

// Server is anything that can bind a port and start accepting connections.
// Start blocks while serving. onReady runs only after the socket is bound and
// accepting, and never when the bind fails.
type Server interface {
	Start(port string, onReady func()) error
}

// ResolvePort returns the port designator taken from PORT, or DefaultPort.
// The value is passed through verbatim; the listener rejects anything it cannot bind.
func ResolvePort(lookup LookupFunc) string {
	if port, ok := lookup(PortEnv); ok && port != "" {
		return port
	}
	return DefaultPort
}

// ServiceURL is the base URL reported once the server is listening
func ServiceURL(port string) string {
	return "http://localhost:" + port
}

// HealthURL is the conventional health check URL for the service
func HealthURL(port string) string {
	return ServiceURL(port) + "/health"
}

// Bootstrap starts a Server and writes the startup report to its logger
type Bootstrap struct {
	logger *log.Logger
}

// Startup tracks a single Start call.
type Startup struct {
	// Ready is closed once the report has been written. It is never closed when binding fails.
	Ready <-chan struct{}
	// Done receives the result of Server.Start and is then closed.
	Done <-chan error
}

// New returns a Bootstrap that writes the startup report to logger
func New(logger *log.Logger) *Bootstrap {
	return &Bootstrap{logger: logger}
}

// Start asks srv to listen on port and returns without waiting for the bind.
func (b *Bootstrap) Start(srv Server, port string) *Startup {
	ready := make(chan struct{})
	done := make(chan error, 1)

	var once sync.Once
	onReady := func() {
		once.Do(func() {
			b.Report(port)
			close(ready)
		})
	}

	go func() {
		defer close(done)
		done <- srv.Start(port, onReady)
	}()

	return &Startup{Ready: ready, Done: done}
}

// Report writes the two startup lines
func (b *Bootstrap) Report(port string) {
	b.logger.Printf("Server is running on %s", ServiceURL(port))
	b.logger.Printf("Health check: %s", HealthURL(port))
}
