// Package http implements the REST API of the succession planning backend.
//
// Routes are split into three groups: public probes and session endpoints,
// rate limited sign-in endpoints, and record endpoints behind a session
// check. Every JSON response other than the session probe and the health
// check uses the {success, message, error, data} envelope.
package http
