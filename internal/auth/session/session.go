// Package session provides the server-side login marker keyed by a
// client-presented token. Two backends exist: a signed cookie store and a
// redis store with an opaque token cookie.
package session

import "net/http"

// Store holds at most one value per client: the authenticated username.
type Store interface {
	// Get returns the authenticated username for the request's session,
	// if any.
	Get(r *http.Request) (string, bool)
	// Set marks the request's session as authenticated for username.
	Set(w http.ResponseWriter, r *http.Request, username string) error
	// Clear drops the session. Clearing an anonymous session is a no-op.
	Clear(w http.ResponseWriter, r *http.Request) error
}
