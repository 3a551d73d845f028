package models

import "errors"

// Shared error taxonomy. Callers compare with errors.Is; repositories wrap
// driver failures so the transport error stays in the chain.
var (
	ErrUnauthenticated    = errors.New("unauthenticated")
	ErrSelfReaction       = errors.New("cannot react to own post")
	ErrPremiumRequired    = errors.New("premium required")
	ErrNotFound           = errors.New("not found")
	ErrStorageUnavailable = errors.New("storage unavailable")
	ErrInvalidInput       = errors.New("invalid input")
)
