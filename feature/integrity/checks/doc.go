// Package checks holds the individual integrity checks: project layout,
// database schema and published build artifacts.
package checks
