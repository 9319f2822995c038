package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const (
	accessTokenKeyFormat  = "access_token:%s:%s"
	refreshTokenKeyFormat = "refresh_token:%s:%s"
)

// TokenStore whitelists issued token IDs in Redis so logout can revoke
// them before expiry. With no Redis client (memory storage mode) every
// store and revoke is a no-op and validity falls back to the JWT
// signature and expiry alone.
type TokenStore struct {
	redisClient *redis.Client
	log         *logrus.Logger
}

func NewTokenStore(redisClient *redis.Client, log *logrus.Logger) *TokenStore {
	return &TokenStore{
		redisClient: redisClient,
		log:         log,
	}
}

func (s *TokenStore) StoreAccessToken(ctx context.Context, userID uuid.UUID, tokenID string, ttl time.Duration) error {
	if s == nil || s.redisClient == nil {
		return nil
	}
	key := fmt.Sprintf(accessTokenKeyFormat, userID, tokenID)
	return s.redisClient.Set(ctx, key, "1", ttl).Err()
}

func (s *TokenStore) StoreRefreshToken(ctx context.Context, userID uuid.UUID, tokenID string, ttl time.Duration) error {
	if s == nil || s.redisClient == nil {
		return nil
	}
	key := fmt.Sprintf(refreshTokenKeyFormat, userID, tokenID)
	return s.redisClient.Set(ctx, key, "1", ttl).Err()
}

func (s *TokenStore) IsAccessTokenValid(ctx context.Context, userID uuid.UUID, tokenID string) bool {
	return s.isValid(ctx, fmt.Sprintf(accessTokenKeyFormat, userID, tokenID))
}

func (s *TokenStore) IsRefreshTokenValid(ctx context.Context, userID uuid.UUID, tokenID string) bool {
	return s.isValid(ctx, fmt.Sprintf(refreshTokenKeyFormat, userID, tokenID))
}

func (s *TokenStore) isValid(ctx context.Context, key string) bool {
	if s == nil || s.redisClient == nil {
		return true
	}
	n, err := s.redisClient.Exists(ctx, key).Result()
	if err != nil {
		s.log.Warnf("Failed to check token key %s: %+v", key, err)
		return false
	}
	return n > 0
}

func (s *TokenStore) RevokeAccessToken(ctx context.Context, userID uuid.UUID, tokenID string) error {
	return s.revoke(ctx, fmt.Sprintf(accessTokenKeyFormat, userID, tokenID))
}

func (s *TokenStore) RevokeRefreshToken(ctx context.Context, userID uuid.UUID, tokenID string) error {
	return s.revoke(ctx, fmt.Sprintf(refreshTokenKeyFormat, userID, tokenID))
}

func (s *TokenStore) revoke(ctx context.Context, key string) error {
	if s == nil || s.redisClient == nil {
		return nil
	}
	return s.redisClient.Del(ctx, key).Err()
}
