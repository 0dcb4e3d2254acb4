// Package services contains server-side business logic. This file implements
// AuthService, which orchestrates registration, login and logout: input
// validation, password hashing/verification and session token issuance.
package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/anvydev/notekeeper/internal/common"
	"github.com/anvydev/notekeeper/internal/server/auth"
	"github.com/anvydev/notekeeper/internal/server/models"
	"github.com/anvydev/notekeeper/internal/server/repositories/users"
)

// AuthService holds no per-request state; a single instance serves all
// requests concurrently.
type AuthService struct {
	users  users.Repository
	hasher *auth.PasswordHasher
	tokens *auth.TokenService
}

func NewAuthService(repo users.Repository, hasher *auth.PasswordHasher, tokens *auth.TokenService) *AuthService {
	return &AuthService{
		users:  repo,
		hasher: hasher,
		tokens: tokens,
	}
}

// Register creates a new account. Empty fields fail with ErrMissingField
// before any store call. Duplicate username/email is not pre-checked; the
// store's unique constraints reject it and the error surfaces as
// ErrStoreFailure.
func (s *AuthService) Register(ctx context.Context, username, email, password string) (int64, error) {
	if username == "" || email == "" || password == "" {
		return 0, common.ErrMissingField
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return 0, fmt.Errorf("%w: hashing: %v", common.ErrInternal, err)
	}

	user := &models.User{Username: username, Email: email, PasswordHash: hash}
	created, err := s.users.Create(ctx, user)
	if err != nil {
		if errors.Is(err, common.ErrStoreFailure) {
			return 0, err
		}
		return 0, fmt.Errorf("%w: creating user: %v", common.ErrInternal, err)
	}

	return created.ID, nil
}

// Login verifies the credentials for an email and, on success, returns a
// signed session token. The caller owns cookie placement; the service only
// produces the opaque token value.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	if email == "" || password == "" {
		return "", common.ErrMissingField
	}

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return "", common.ErrNotFound
		}
		return "", fmt.Errorf("%w: looking up user: %v", common.ErrInternal, err)
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		return "", common.ErrBadCredentials
	}

	token, err := s.tokens.Issue(user.ID, user.Username)
	if err != nil {
		return "", fmt.Errorf("%w: issuing token: %v", common.ErrInternal, err)
	}

	return token, nil
}

// Logout only validates that a token was presented. Tokens are self-contained
// and not tracked server-side, so a logged-out token stays valid until its
// natural expiry; the transport layer clears the cookie.
func (s *AuthService) Logout(presentedToken string) error {
	if presentedToken == "" {
		return common.ErrNoSession
	}
	return nil
}
