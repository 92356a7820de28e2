// Package proxy forwards development server requests to backend origins.
//
// A Table holds prefix rules and resolves a request path to the most specific
// (longest) matching prefix using plain string prefix comparison, so "/api"
// also matches "/apix". The matched request is forwarded with its full
// original path and query string; nothing is rewritten.
//
// New wraps a Table as fiber middleware built on fiber's proxy package. A
// target that cannot be reached yields 502, one that does not answer in time
// yields 504.
package proxy
