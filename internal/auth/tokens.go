package auth

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/mrlokans/bookstore/internal/apperrors"
)

// TokenType is the scheme clients put in front of the token in the Authorization header.
const TokenType = "Bearer"

var (
	ErrInvalidToken = apperrors.Unauthorized("Invalid token")
	ErrTokenExpired = apperrors.Unauthorized("Token expired")
	ErrAuthRequired = apperrors.Unauthorized("Authentication required")
)

// Token is a signed API token.
type Token struct {
	Value     string
	ExpiresAt time.Time
	UserID    uint
}

// TokenManager issues and verifies HS256 API tokens whose subject is the user id.
type TokenManager struct {
	secret []byte
	issuer string
	expiry time.Duration
	now    func() time.Time
}

func NewTokenManager(secret []byte, issuer string, expiry time.Duration) *TokenManager {
	return &TokenManager{
		secret: secret,
		issuer: issuer,
		expiry: expiry,
		now:    time.Now,
	}
}

// Issue signs a token for userID valid for the configured expiry.
func (m *TokenManager) Issue(userID uint) (*Token, error) {
	now := m.now()
	expiresAt := now.Add(m.expiry)

	claims := jwt.RegisteredClaims{
		Subject:   strconv.FormatUint(uint64(userID), 10),
		Issuer:    m.issuer,
		IssuedAt:  jwt.NewNumericDate(now),
		NotBefore: jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
		ID:        uuid.NewString(),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return nil, fmt.Errorf("failed to sign token: %w", err)
	}

	return &Token{
		Value:     signed,
		ExpiresAt: time.Unix(expiresAt.Unix(), 0).UTC(),
		UserID:    userID,
	}, nil
}

// Verify checks signature, algorithm, issuer and expiry, and returns the user id.
func (m *TokenManager) Verify(raw string) (uint, error) {
	if raw == "" {
		return 0, ErrAuthRequired
	}

	var claims jwt.RegisteredClaims
	_, err := jwt.ParseWithClaims(raw, &claims, func(token *jwt.Token) (any, error) {
		return m.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(m.issuer),
		jwt.WithExpirationRequired(),
		jwt.WithIssuedAt(),
		jwt.WithTimeFunc(m.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return 0, ErrTokenExpired
		}
		return 0, ErrInvalidToken
	}

	userID, err := strconv.ParseUint(claims.Subject, 10, 0)
	if err != nil || userID == 0 {
		return 0, ErrInvalidToken
	}
	return uint(userID), nil
}
