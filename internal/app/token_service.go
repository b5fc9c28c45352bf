package app

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrTokenMalformed        = errors.New("token is malformed")
	ErrTokenSignatureInvalid = errors.New("token signature is invalid")
	ErrTokenExpired          = errors.New("token has expired")
	ErrTokenRevoked          = errors.New("token has been revoked")
	ErrRevocationFailed      = errors.New("token revocation failed")
)

// TokenClaims is the payload of an issued bearer token.
type TokenClaims struct {
	UserID uint `json:"uid"`
	jwt.RegisteredClaims
}

// TokenService issues, verifies and revokes the HMAC-signed bearer tokens
// that represent an authenticated session. Tokens are self-contained; only
// revocations touch the store.
type TokenService struct {
	secret      []byte
	ttl         time.Duration
	revocations RevocationStore
}

func NewTokenService(secret string, ttl time.Duration, revocations RevocationStore) *TokenService {
	return &TokenService{
		secret:      []byte(secret),
		ttl:         ttl,
		revocations: revocations,
	}
}

func (s *TokenService) TTL() time.Duration {
	return s.ttl
}

// Issue produces a signed token for the given user id with a fresh token id
// (jti) and the configured lifetime.
func (s *TokenService) Issue(userID uint) (string, *TokenClaims, error) {
	now := time.Now()
	claims := &TokenClaims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatUint(uint64(userID), 10),
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", nil, fmt.Errorf("sign token failed: %w", err)
	}
	return signed, claims, nil
}

// Verify checks structure, signature, expiry and revocation, in that order,
// and returns the embedded claims when the token is still good.
func (s *TokenService) Verify(ctx context.Context, tokenString string) (*TokenClaims, error) {
	claims := &TokenClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenMalformed):
			return nil, ErrTokenMalformed
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return nil, ErrTokenSignatureInvalid
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, ErrTokenExpired
		default:
			return nil, fmt.Errorf("parse token failed: %w", err)
		}
	}

	revoked, err := s.revocations.IsRevoked(ctx, claims.ID)
	if err != nil {
		return nil, fmt.Errorf("check token revocation failed: %w", err)
	}
	if revoked {
		return nil, ErrTokenRevoked
	}

	return claims, nil
}

// Revoke invalidates a currently valid token ahead of its expiry. The token
// id is stored with the remaining lifetime as TTL so the record disappears
// once the token would have expired anyway.
func (s *TokenService) Revoke(ctx context.Context, tokenString string) (*TokenClaims, error) {
	claims, err := s.Verify(ctx, tokenString)
	if err != nil {
		return nil, err
	}

	ttl := time.Until(claims.ExpiresAt.Time)
	if err := s.revocations.Revoke(ctx, claims.ID, ttl); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRevocationFailed, err)
	}
	return claims, nil
}
