package common

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
)

// ExportToken is a validated single-use LGPD export link token.
type ExportToken struct {
	UserID    string
	Format    string
	TokenID   string
	ExpiresAt time.Time
}

// ExportSigner issues and validates signed single-use download links for
// LGPD data exports, so the browser can fetch the file without replaying
// the session headers.
type ExportSigner struct {
	secretKey []byte
	used      *cache.Cache
}

func NewExportSigner(secretKey []byte) *ExportSigner {
	return &ExportSigner{
		secretKey: secretKey,
		used:      cache.New(15*time.Minute, 30*time.Minute),
	}
}

// Sign generates a presigned export token for the given user and format.
func (s *ExportSigner) Sign(userID, format string, ttl time.Duration) (string, error) {
	tokenID := uuid.New().String()
	now := time.Now()

	claims := jwt.MapClaims{
		"user_id": userID,
		"format":  format,
		"jti":     tokenID,
		"exp":     now.Add(ttl).Unix(),
		"iat":     now.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(s.secretKey)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return tokenString, nil
}

// Validate parses a token and enforces signature, expiry and single use.
func (s *ExportSigner) Validate(tokenString string) (*ExportToken, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secretKey, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}

	userID, ok := claims["user_id"].(string)
	if !ok {
		return nil, errors.New("missing or invalid user_id claim")
	}

	format, ok := claims["format"].(string)
	if !ok {
		return nil, errors.New("missing or invalid format claim")
	}

	tokenID, ok := claims["jti"].(string)
	if !ok {
		return nil, errors.New("missing or invalid jti claim")
	}

	expFloat, ok := claims["exp"].(float64)
	if !ok {
		return nil, errors.New("missing or invalid exp claim")
	}
	expiresAt := time.Unix(int64(expFloat), 0)

	if time.Now().After(expiresAt) {
		return nil, errors.New("token expired")
	}

	if _, alreadyUsed := s.used.Get(tokenID); alreadyUsed {
		return nil, errors.New("token already used")
	}

	return &ExportToken{
		UserID:    userID,
		Format:    format,
		TokenID:   tokenID,
		ExpiresAt: expiresAt,
	}, nil
}

// MarkUsed records a token id so Validate rejects it from now on.
func (s *ExportSigner) MarkUsed(tokenID string) {
	s.used.Set(tokenID, true, cache.DefaultExpiration)
}
