package server

// Config holds configuration for the development server.
type Config struct {
	// Port is the port the development server binds to.
	Port int `mapstructure:"port" default:"3000"`
	// Proxy maps path prefixes to the origin requests are forwarded to.
	// It is read by the config package directly from the config file so that
	// prefixes keep their exact spelling; DefaultProxyRules applies otherwise.
	Proxy map[string]string `mapstructure:"-"`
	// ProxyTimeoutSeconds bounds a single proxied round trip.
	ProxyTimeoutSeconds int `mapstructure:"proxy_timeout_seconds" default:"30"`
}

const (
	// DefaultRoot is the project root used when none is configured.
	DefaultRoot = "."
	// DefaultPort is the development server port.
	DefaultPort = 3000
	// DefaultOutDir is where build artifacts are written.
	DefaultOutDir = "dist"
	// DefaultBackendOrigin is where the backend API listens.
	DefaultBackendOrigin = "http://localhost:5000"
)

// DefaultProxyRules returns the prefixes served by the backend.
// A fresh map is returned on every call.
func DefaultProxyRules() map[string]string {
	return map[string]string{
		"/api":       DefaultBackendOrigin,
		"/track":     DefaultBackendOrigin,
		"/insights":  DefaultBackendOrigin,
		"/solutions": DefaultBackendOrigin,
	}
}
