// Package http implements the REST transport of the stub shop backend.
//
// It wires chi routes for login, the product catalog, orders and the
// version probe, plus the middleware chain (panic recovery, trace id,
// access logging, gzip and bearer authentication). All error responses are
// JSON bodies of the form {"error": "..."} or {"errors": [...]}.
package http
