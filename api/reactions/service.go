package reactions

import (
	"fmt"

	"github.com/deepthansh-m/WhisperNet/api/entitlements"
	"github.com/deepthansh-m/WhisperNet/api/models"

	"github.com/google/uuid"
)

// Store is the single store operation the service needs.
type Store interface {
	IncrementReaction(id uuid.UUID, kind models.ReactionKind) error
}

// Service validates a reaction and applies it through the store's atomic
// increment. It never touches counters itself; a count only moves once
// the store confirms, so callers must not advance any local mirror before
// React returns nil.
type Service struct {
	store Store
}

func NewService(store Store) *Service {
	return &Service{store: store}
}

// React applies one reaction from reactorID to post. Rules are checked in
// order: own post, then identity, then tier, then the store write. Any
// store failure is returned to the caller, never swallowed.
func (s *Service) React(post models.Post, reactorID uuid.UUID, kind models.ReactionKind, isPremiumReactor bool) error {
	if post.AuthorID == reactorID {
		return models.ErrSelfReaction
	}
	if reactorID == uuid.Nil {
		return models.ErrUnauthenticated
	}
	if _, ok := models.ParseReactionKind(string(kind)); !ok {
		return models.ErrInvalidInput
	}
	if !entitlements.ReactionAllowed(kind, isPremiumReactor) {
		return models.ErrPremiumRequired
	}

	if err := s.store.IncrementReaction(post.ID, kind); err != nil {
		return fmt.Errorf("react %s on %s: %w", kind, post.ID, err)
	}
	return nil
}
