// Package server holds the development server configuration and the project
// descriptor.
//
// # Descriptor
//
// Descriptor is the four-field record every consumer reads at startup:
//   - Root: directory sources are resolved against
//   - Port: TCP port of the development server
//   - ProxyRules: path prefix to backend origin
//   - BuildOutputDir: destination of build artifacts
//
// Default returns the built-in values (root ".", port 3000, the four backend
// prefixes forwarded to http://localhost:5000, output "dist"). Validate checks
// the invariants and reports every problem at once.
//
// # Encoding
//
// Encode and Decode convert a descriptor to and from JSON or YAML using the
// shape {root, server: {port, proxy}, build: {outDir}}.
package server
