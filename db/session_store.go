// db/session_store.go
package db

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/stylino/storefront/auth"
	logger "github.com/stylino/storefront/logging"
)

// SessionStore keeps opaque session tokens in Redis, keyed session:<token>.
type SessionStore struct {
	client     redis.Cmdable
	cookieName string
	ttl        time.Duration
}

var _ auth.SessionResolver = (*SessionStore)(nil)

func NewSessionStore(client redis.Cmdable, cookieName string, ttl time.Duration) *SessionStore {
	return &SessionStore{client: client, cookieName: cookieName, ttl: ttl}
}

func (s *SessionStore) CookieName() string {
	return s.cookieName
}

// Create starts a session for subjectID and returns its token.
func (s *SessionStore) Create(ctx context.Context, subjectID string) (string, error) {
	if subjectID == "" {
		return "", fmt.Errorf("subject id is required")
	}
	token := uuid.NewString()
	if err := s.client.Set(ctx, sessionKey(token), subjectID, s.ttl).Err(); err != nil {
		return "", fmt.Errorf("failed to store session: %w", err)
	}
	logger.Debug("Session created", zap.String("subjectID", subjectID))
	return token, nil
}

// ResolveSession implements auth.SessionResolver. Unknown or expired tokens
// yield a nil session.
func (s *SessionStore) ResolveSession(ctx context.Context, r *http.Request) (*auth.Session, error) {
	token := s.TokenFromRequest(r)
	if token == "" {
		return nil, nil
	}

	subjectID, err := s.client.Get(ctx, sessionKey(token)).Result()
	if errors.Is(err, redis.Nil) {
		logger.Debug("Session not found")
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to read session: %w", err)
	}

	return &auth.Session{Token: token, SubjectID: subjectID}, nil
}

// Revoke ends the session identified by token.
func (s *SessionStore) Revoke(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	if err := s.client.Del(ctx, sessionKey(token)).Err(); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	logger.Debug("Session revoked")
	return nil
}

// TokenFromRequest reads the session cookie, falling back to a bearer token.
func (s *SessionStore) TokenFromRequest(r *http.Request) string {
	if cookie, err := r.Cookie(s.cookieName); err == nil && cookie.Value != "" {
		return cookie.Value
	}
	header := r.Header.Get("Authorization")
	if token, ok := strings.CutPrefix(header, "Bearer "); ok {
		return strings.TrimSpace(token)
	}
	return ""
}

func sessionKey(token string) string {
	return fmt.Sprintf("session:%s", token)
}
