// Package middleware contains HTTP middleware shared by the development server
// and the backend API.
//
// # Components
//
//   - rayid: Assigns every request a Ray ID (kept from an incoming X-Ray-ID
//     header when present), stores it in the context and echoes it in the
//     response so a proxied request shares the id of the request that
//     forwarded it.
//   - accesslog: Logs one structured entry per request through Zap,
//     tagged with the Ray ID.
//
// Register rayid first so that every later log line can be correlated.
package middleware
