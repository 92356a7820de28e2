// Package pages renders the server-side HTML pages of the backend.
//
// Templates are embedded in the binary. The insights page shows the current
// visitor's pattern, so the identity middleware must run before these routes.
//
// # HTTP Endpoints
//
//   - GET / : Landing page.
//   - GET /track : Mood entry form.
//   - GET /insights : Recent pattern for the visitor.
//   - GET /solutions : Strategies, filtered by ?emotions=anxiety,stress.
package pages
