// Package integrity provides system health checks.
//
// # Checks Provided
//
//   - Project: The project root exists and contains index.html; reports whether the output directory holds a build.
//   - Schema: The mood entries table has every column the model expects.
//   - Published: Every file of the local build is present in the storage bucket (only when storage is configured).
//
// # HTTP Endpoints
//
//   - GET /integrity : Runs all checks.
//   - GET /integrity/project : Runs the project check.
//   - GET /integrity/schema : Runs the schema check.
//   - GET /integrity/published : Compares the local build with the bucket.
package integrity
