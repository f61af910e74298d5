package session

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// Store records which user last authenticated within a session. The marker is
// advisory: authorization decisions are made from the bearer token, never from
// this record.
type Store struct {
	client *redis.Client
	ttl    time.Duration
}

func NewStore(client *redis.Client, ttl time.Duration) *Store {
	return &Store{client: client, ttl: ttl}
}

// Mark associates the session with the authenticated user's id.
func (s *Store) Mark(ctx context.Context, sessionID, userID string) error {
	return s.client.Set(ctx, s.key(sessionID), userID, s.ttl).Err()
}

// Current returns the user id last marked for the session, or "" when the
// session is unknown or expired.
func (s *Store) Current(ctx context.Context, sessionID string) (string, error) {
	userID, err := s.client.Get(ctx, s.key(sessionID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", nil
		}
		return "", err
	}
	return userID, nil
}

// Clear removes the session marker.
func (s *Store) Clear(ctx context.Context, sessionID string) error {
	return s.client.Del(ctx, s.key(sessionID)).Err()
}

func (s *Store) key(sessionID string) string {
	return "session:" + sessionID
}
