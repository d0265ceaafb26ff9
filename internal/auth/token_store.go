package auth

import (
	"context"
	"time"

	"tropicalbs/internal/cache"
)

const revokedTokenKeyPrefix = "revoked:token:"

// TokenStoreInterface defines the revocation list for issued bearer tokens.
// Tokens are otherwise valid until expiry; logout parks the token's jti here
// until its natural expiry so it can no longer authenticate.
type TokenStoreInterface interface {
	RevokeToken(ctx context.Context, tokenID string, ttl time.Duration) error
	IsTokenRevoked(ctx context.Context, tokenID string) (bool, error)
}

// TokenStore keeps the revocation list in Redis.
type TokenStore struct {
	cache *cache.Client
}

var _ TokenStoreInterface = (*TokenStore)(nil)

// NewTokenStore creates a Redis-backed token store.
func NewTokenStore(cache *cache.Client) *TokenStore {
	return &TokenStore{cache: cache}
}

// RevokeToken marks a token ID as revoked until its expiry.
func (s *TokenStore) RevokeToken(ctx context.Context, tokenID string, ttl time.Duration) error {
	return s.cache.Set(ctx, revokedTokenKeyPrefix+tokenID, []byte("1"), ttl)
}

// IsTokenRevoked reports whether a token ID is on the revocation list.
// Redis failures read as not revoked (fail open, matching cache semantics).
func (s *TokenStore) IsTokenRevoked(ctx context.Context, tokenID string) (bool, error) {
	return s.cache.Exists(ctx, revokedTokenKeyPrefix+tokenID)
}
