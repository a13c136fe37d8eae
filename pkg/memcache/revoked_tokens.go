// pkg/memcache/revoked_tokens.go
package mem

import (
	"sync"
	"time"
)

// RevokedTokenStore is the logout denylist: a token stays revoked until its
// own expiry, after which the entry is useless and can be dropped.
type RevokedTokenStore interface {
	Revoke(token string, until time.Time)
	IsRevoked(token string) bool
}

type RevokedTokens struct {
	mu   sync.RWMutex
	data map[string]time.Time
}

func NewRevokedTokens() *RevokedTokens {
	return &RevokedTokens{
		data: make(map[string]time.Time),
	}
}

func (s *RevokedTokens) Revoke(token string, until time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[token] = until
}

func (s *RevokedTokens) IsRevoked(token string) bool {
	s.mu.RLock()
	until, ok := s.data[token]
	s.mu.RUnlock()

	if !ok {
		return false
	}
	if time.Now().After(until) {
		s.mu.Lock()
		delete(s.data, token) // cleanup expired
		s.mu.Unlock()
		return false
	}
	return true
}
