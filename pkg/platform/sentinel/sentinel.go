package sentinel

import "errors"

// Sentinel errors for infrastructure facts. Stores and infrastructure layers return
// these (optionally wrapped) so services can translate them into domain errors.
//
// - ErrNotFound: row or key does not exist
// - ErrConflict: unique constraint hit (duplicate favorite, like, email, name)
// - ErrExpired: token has expired
// - ErrAlreadyUsed: refresh token already rotated
// - ErrInvalidState: entity in wrong state for requested operation
// - ErrUnavailable: cache or broker temporarily unavailable
//
// For validation errors (bad input, missing fields), use pkg/domain-errors directly.
var (
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
	ErrExpired      = errors.New("expired")
	ErrAlreadyUsed  = errors.New("already used")
	ErrInvalidState = errors.New("invalid state")
	ErrUnavailable  = errors.New("unavailable")
)
