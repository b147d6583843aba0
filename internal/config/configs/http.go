package configs

import "time"

// HTTP defines configuration for the HTTP server.
type HTTP struct {
	// Port is the TCP port the HTTP server will listen on. Defaults to 8080.
	Port uint16 `env:"PORT" envDefault:"8080"`
	// ShutdownTimeout bounds graceful shutdown.
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"5s"`
	// ExpiryInterval is how often active campaigns past their window are
	// completed. Zero disables the sweep.
	ExpiryInterval time.Duration `env:"EXPIRY_INTERVAL" envDefault:"1m"`
}
