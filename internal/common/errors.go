// Package common defines sentinel errors shared across repository, service
// and transport layers. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// repository-level errors
	ErrNotFound     = errors.New("not found")
	ErrStoreFailure = errors.New("store failure")

	// validation errors
	ErrMissingField = errors.New("missing field")

	// credential errors
	ErrBadCredentials = errors.New("bad credentials")

	// token lifecycle errors
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")
	ErrNoSession    = errors.New("no session")

	// unexpected faults (hashing faults, store connectivity)
	ErrInternal = errors.New("internal error")
)
