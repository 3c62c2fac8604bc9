// Package server runs the gateway's listeners.
//
// The HTTP API and the optional gRPC health endpoint bind their addresses
// when they are constructed, serve until the process receives SIGTERM,
// SIGINT or SIGQUIT (or the context passed to Run ends), and are then
// drained within the configured request timeout.
package server
