// File: internal/service/authentication.go
package service

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"urenregistratie/internal/cache"
	"urenregistratie/internal/model"

	"github.com/golang-jwt/jwt/v5"
	"github.com/redis/go-redis/v9"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")
)

// Swapped in tests.
var (
	randRead        = rand.Read
	jsonMarshal     = json.Marshal
	jsonUnmarshal   = json.Unmarshal
	timeNow         = time.Now
	parseWithClaims = jwt.ParseWithClaims
)

// TokenConfig holds the signing secret and token lifetimes.
type TokenConfig struct {
	Secret     string
	AccessTTL  time.Duration
	RefreshTTL time.Duration
}

// CustomClaims is the JWT payload of an access token.
type CustomClaims struct {
	UserID int        `json:"user_id"`
	Role   model.Role `json:"role"`
	jwt.RegisteredClaims
}

// RefreshTokenData is stored in the cache under the refresh token.
type RefreshTokenData struct {
	UserID   int       `json:"user_id"`
	IssuedAt time.Time `json:"issued_at"`
}

// AuthenticateUser checks a plain-text password against the user's hash.
func AuthenticateUser(user model.User, password string) error {
	if user.PasswordHash == "" || password == "" {
		return ErrInvalidCredentials
	}
	if err := ComparePassword(user.PasswordHash, password); err != nil {
		return ErrInvalidCredentials
	}
	return nil
}

// IssueAccessToken signs an HS256 token carrying the user's id and role.
func IssueAccessToken(user model.User, secret string, ttl time.Duration) (string, error) {
	if secret == "" {
		return "", fmt.Errorf("jwt secret not set")
	}

	now := timeNow()
	claims := CustomClaims{
		UserID: user.ID,
		Role:   user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.Itoa(user.ID),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// VerifyAccessToken parses and validates an access token.
func VerifyAccessToken(tokenString, secret string) (*CustomClaims, error) {
	if secret == "" {
		return nil, fmt.Errorf("jwt secret not set")
	}

	token, err := parseWithClaims(tokenString, &CustomClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(*CustomClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}
	if claims.UserID <= 0 || !claims.Role.Valid() {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

func refreshKey(token string) string {
	return "refresh_token:" + token
}

// IssueRefreshToken stores a random opaque token for userID with the given TTL.
func IssueRefreshToken(ctx context.Context, c cache.Cache, userID int, ttl time.Duration) (string, error) {
	buf := make([]byte, 32)
	if _, err := randRead(buf); err != nil {
		return "", fmt.Errorf("IssueRefreshToken: %w", err)
	}
	token := base64.RawURLEncoding.EncodeToString(buf)

	data, err := jsonMarshal(RefreshTokenData{UserID: userID, IssuedAt: timeNow().UTC()})
	if err != nil {
		return "", fmt.Errorf("IssueRefreshToken: %w", err)
	}
	if err := c.Set(ctx, refreshKey(token), data, ttl).Err(); err != nil {
		return "", fmt.Errorf("IssueRefreshToken: %w", err)
	}
	return token, nil
}

// ValidateRefreshToken looks the token up; unknown or expired tokens give ErrInvalidToken.
func ValidateRefreshToken(ctx context.Context, c cache.Cache, token string) (*RefreshTokenData, error) {
	if token == "" {
		return nil, ErrInvalidToken
	}
	raw, err := c.Get(ctx, refreshKey(token)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, ErrInvalidToken
	}
	if err != nil {
		return nil, fmt.Errorf("ValidateRefreshToken: %w", err)
	}

	var data RefreshTokenData
	if err := jsonUnmarshal([]byte(raw), &data); err != nil {
		return nil, fmt.Errorf("ValidateRefreshToken: %w", err)
	}
	if data.UserID <= 0 {
		return nil, ErrInvalidToken
	}
	return &data, nil
}

// RevokeRefreshToken deletes the token; revoking an unknown token is not an error.
func RevokeRefreshToken(ctx context.Context, c cache.Cache, token string) error {
	if err := c.Del(ctx, refreshKey(token)).Err(); err != nil {
		return fmt.Errorf("RevokeRefreshToken: %w", err)
	}
	return nil
}
