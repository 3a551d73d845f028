package entitlements

import "github.com/google/uuid"

// Provider answers premium checks. The DB-backed implementation lives in
// repositories; the flag is persisted locally and flipped asynchronously
// when a purchase completes, so reads are cheap and may briefly lag.
type Provider interface {
	IsPremium(userID uuid.UUID) (bool, error)
}
