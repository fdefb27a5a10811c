// Package server runs the vault API and the gRPC health endpoint.
//
// Listeners are bound in NewServer, so a busy address fails at startup.
// Both transports stop together on SIGTERM, SIGINT or SIGQUIT, each within
// the configured shutdown timeout.
package server
