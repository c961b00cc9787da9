// Package server runs the stub backend's HTTP server.
//
// It owns startup, signal handling and graceful shutdown; the routes
// themselves come from internal/handler/http.
package server
