/*
Package auth
File: token.go
Description:
    Session token handling. A session token is a locally-signed HS256 JWT
    whose subject is the server-side session ID. Handlers behind the
    middleware can pull the session ID from the request context.
*/

package auth

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type contextKey string

const sessionContextKey contextKey = "session_id"

// SessionClaims are the claims carried by a session token.
type SessionClaims struct {
	PlayerName string `json:"player_name"`
	jwt.RegisteredClaims
}

// Config signs and verifies session tokens.
type Config struct {
	secret []byte
	ttl    time.Duration
}

// New creates a token config with the given signing secret.
func New(secret string, ttl time.Duration) *Config {
	return &Config{secret: []byte(secret), ttl: ttl}
}

// Issue signs a token for a session.
func (c *Config) Issue(sessionID, playerName string) (string, error) {
	now := time.Now()
	claims := SessionClaims{
		PlayerName: playerName,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   sessionID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(c.ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.secret)
}

// Verify parses a token and returns its session ID.
func (c *Config) Verify(tokenString string) (string, error) {
	token, err := jwt.ParseWithClaims(tokenString, &SessionClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return c.secret, nil
	})
	if err != nil {
		return "", err
	}
	claims, ok := token.Claims.(*SessionClaims)
	if !ok || !token.Valid || claims.Subject == "" {
		return "", fmt.Errorf("invalid session token")
	}
	return claims.Subject, nil
}

// Middleware rejects requests without a valid bearer token and stashes the
// session ID in the request context.
func (c *Config) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			http.Error(w, "Missing authorization token", http.StatusUnauthorized)
			return
		}
		sessionID, err := c.Verify(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			http.Error(w, "Invalid authorization token", http.StatusUnauthorized)
			return
		}
		ctx := context.WithValue(r.Context(), sessionContextKey, sessionID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// SessionID extracts the session ID placed by Middleware, empty if absent.
func SessionID(ctx context.Context) string {
	id, _ := ctx.Value(sessionContextKey).(string)
	return id
}
