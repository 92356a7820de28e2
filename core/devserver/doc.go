// Package devserver is the development HTTP server driven by a
// server.Descriptor.
//
// Every request passes through, in order:
//  1. rayid and accesslog middleware
//  2. the proxy middleware, which forwards requests whose path starts with a
//     configured prefix to the backend origin, full path and query included
//  3. static file serving from the descriptor root (index.html for
//     directories)
//  4. a plain 404
//
// Start binds the configured port synchronously so that "address already in
// use" surfaces as an error to the caller.
package devserver
