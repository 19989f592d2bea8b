package session

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "session:"

// RedisStore keeps the authenticated username server-side in redis, keyed
// by an opaque token carried in an HttpOnly cookie. Entries expire through
// the redis TTL; no sweeper is needed.
type RedisStore struct {
	client *redis.Client
	name   string
	ttl    time.Duration
}

func NewRedisStore(client *redis.Client, cookieName string, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, name: cookieName, ttl: ttl}
}

func (s *RedisStore) Get(r *http.Request) (string, bool) {
	cookie, err := r.Cookie(s.name)
	if err != nil || cookie.Value == "" {
		return "", false
	}

	username, err := s.client.Get(r.Context(), redisKeyPrefix+cookie.Value).Result()
	if err != nil || username == "" {
		return "", false
	}
	return username, true
}

func (s *RedisStore) Set(w http.ResponseWriter, r *http.Request, username string) error {
	token := uuid.NewString()
	if err := s.client.Set(r.Context(), redisKeyPrefix+token, username, s.ttl).Err(); err != nil {
		return err
	}

	http.SetCookie(w, &http.Cookie{
		Name:     s.name,
		Value:    token,
		Path:     "/",
		Expires:  time.Now().Add(s.ttl),
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
	})
	return nil
}

func (s *RedisStore) Clear(w http.ResponseWriter, r *http.Request) error {
	cookie, err := r.Cookie(s.name)
	if err == nil && cookie.Value != "" {
		if err := s.client.Del(r.Context(), redisKeyPrefix+cookie.Value).Err(); err != nil {
			return err
		}
	}

	http.SetCookie(w, &http.Cookie{
		Name:     s.name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})
	return nil
}
