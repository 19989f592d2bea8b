package session

import (
	"net/http"

	"github.com/gorilla/sessions"
)

const usernameKey = "username"

// CookieStore keeps the session in a signed cookie.
type CookieStore struct {
	store *sessions.CookieStore
	name  string
}

func NewCookieStore(secret, cookieName string, ttlSeconds int) *CookieStore {
	store := sessions.NewCookieStore([]byte(secret))
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   ttlSeconds,
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
	}
	return &CookieStore{store: store, name: cookieName}
}

func (s *CookieStore) Get(r *http.Request) (string, bool) {
	// An invalid or expired cookie decodes to a fresh empty session.
	sess, _ := s.store.Get(r, s.name)
	username, ok := sess.Values[usernameKey].(string)
	return username, ok && username != ""
}

func (s *CookieStore) Set(w http.ResponseWriter, r *http.Request, username string) error {
	sess, _ := s.store.Get(r, s.name)
	sess.Values[usernameKey] = username
	return sess.Save(r, w)
}

func (s *CookieStore) Clear(w http.ResponseWriter, r *http.Request) error {
	sess, _ := s.store.Get(r, s.name)
	delete(sess.Values, usernameKey)
	sess.Options.MaxAge = -1
	return sess.Save(r, w)
}
