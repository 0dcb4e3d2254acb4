package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/anvydev/notekeeper/internal/common"
)

// Claims carries the identity embedded in a session token alongside the
// standard registered claims.
type Claims struct {
	jwt.RegisteredClaims
	UserID   int64  `json:"uid"`
	Username string `json:"username"`
}

// TokenService issues and verifies HS256-signed session tokens. The signing
// secret and validity window are fixed at construction, so instances are
// safe for concurrent use.
type TokenService struct {
	secret   []byte
	validity time.Duration
}

func NewTokenService(secret []byte, validity time.Duration) *TokenService {
	return &TokenService{secret: secret, validity: validity}
}

// Issue returns a signed token for the given identity, valid from now for
// the configured window. The jti claim gets a fresh UUID so a future
// denylist could key on individual tokens.
func (s *TokenService) Issue(userID int64, username string) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.validity)),
		},
		UserID:   userID,
		Username: username,
	})

	return token.SignedString(s.secret)
}

// Verify checks the signature and expiry of a token and returns the embedded
// identity. Failures map to common.ErrTokenExpired for a well-formed but
// stale token and common.ErrInvalidToken for everything else (bad shape,
// wrong signature, unexpected signing method).
func (s *TokenService) Verify(tokenString string) (int64, string, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, common.ErrInvalidToken
		}
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return 0, "", common.ErrTokenExpired
		}
		return 0, "", common.ErrInvalidToken
	}

	if !token.Valid {
		return 0, "", common.ErrInvalidToken
	}

	return claims.UserID, claims.Username, nil
}
