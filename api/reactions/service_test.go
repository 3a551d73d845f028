package reactions

import (
	"errors"
	"sync"
	"testing"

	"github.com/deepthansh-m/WhisperNet/api/models"

	"github.com/google/uuid"
)

type mockStore struct {
	mu          sync.Mutex
	calls       int
	counts      map[uuid.UUID]models.ReactionCounts
	incrementFn func(id uuid.UUID, kind models.ReactionKind) error
}

func newMockStore() *mockStore {
	return &mockStore{counts: make(map[uuid.UUID]models.ReactionCounts)}
}

func (m *mockStore) IncrementReaction(id uuid.UUID, kind models.ReactionKind) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	if m.incrementFn != nil {
		return m.incrementFn(id, kind)
	}
	m.counts[id] = m.counts[id].Add(kind)
	return nil
}

func freshPost(author uuid.UUID) models.Post {
	return models.Post{ID: uuid.New(), AuthorID: author, Text: "hey"}
}

func TestReactRejectsSelfReaction(t *testing.T) {
	store := newMockStore()
	svc := NewService(store)
	author := uuid.New()
	post := freshPost(author)

	err := svc.React(post, author, models.ReactionHeart, true)
	if !errors.Is(err, models.ErrSelfReaction) {
		t.Fatalf("err = %v, want ErrSelfReaction", err)
	}
	if store.calls != 0 {
		t.Fatal("store must not be called for a self reaction")
	}
}

func TestReactRejectsUnauthenticated(t *testing.T) {
	store := newMockStore()
	svc := NewService(store)

	err := svc.React(freshPost(uuid.New()), uuid.Nil, models.ReactionHeart, false)
	if !errors.Is(err, models.ErrUnauthenticated) {
		t.Fatalf("err = %v, want ErrUnauthenticated", err)
	}
	if store.calls != 0 {
		t.Fatal("store must not be called for an unauthenticated reactor")
	}
}

func TestReactRejectsExtendedKindsForFreeTier(t *testing.T) {
	store := newMockStore()
	svc := NewService(store)
	post := freshPost(uuid.New())

	extended := []models.ReactionKind{
		models.ReactionParty, models.ReactionCry, models.ReactionWow,
		models.ReactionAngry, models.ReactionLove, models.ReactionLaugh,
		models.ReactionPray,
	}
	for _, kind := range extended {
		err := svc.React(post, uuid.New(), kind, false)
		if !errors.Is(err, models.ErrPremiumRequired) {
			t.Errorf("React(%s, free) = %v, want ErrPremiumRequired", kind, err)
		}
	}
	if store.calls != 0 {
		t.Fatal("store must not be called for premium-gated kinds")
	}
}

func TestReactRejectsUnknownKind(t *testing.T) {
	store := newMockStore()
	svc := NewService(store)

	err := svc.React(freshPost(uuid.New()), uuid.New(), models.ReactionKind("sparkle"), true)
	if !errors.Is(err, models.ErrInvalidInput) {
		t.Fatalf("err = %v, want ErrInvalidInput", err)
	}
}

func TestReactBaseKindsWorkForFreeTier(t *testing.T) {
	store := newMockStore()
	svc := NewService(store)
	post := freshPost(uuid.New())

	for _, kind := range models.BaseReactionKinds {
		if err := svc.React(post, uuid.New(), kind, false); err != nil {
			t.Errorf("React(%s, free) = %v, want nil", kind, err)
		}
	}
	if got := store.counts[post.ID].Heart; got != 1 {
		t.Errorf("heart count = %d, want 1", got)
	}
}

func TestReactSurfacesStorageFailure(t *testing.T) {
	store := newMockStore()
	store.incrementFn = func(uuid.UUID, models.ReactionKind) error {
		return models.ErrStorageUnavailable
	}
	svc := NewService(store)

	err := svc.React(freshPost(uuid.New()), uuid.New(), models.ReactionHeart, false)
	if !errors.Is(err, models.ErrStorageUnavailable) {
		t.Fatalf("err = %v, want ErrStorageUnavailable in the chain", err)
	}
}

func TestReactSurfacesNotFound(t *testing.T) {
	store := newMockStore()
	store.incrementFn = func(uuid.UUID, models.ReactionKind) error {
		return models.ErrNotFound
	}
	svc := NewService(store)

	err := svc.React(freshPost(uuid.New()), uuid.New(), models.ReactionHeart, false)
	if !errors.Is(err, models.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound in the chain", err)
	}
}

func TestConcurrentReactionsAllLand(t *testing.T) {
	store := newMockStore()
	svc := NewService(store)
	post := freshPost(uuid.New())

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := svc.React(post, uuid.New(), models.ReactionHeart, false); err != nil {
				t.Errorf("concurrent React failed: %v", err)
			}
		}()
	}
	wg.Wait()

	if got := store.counts[post.ID].Heart; got != 10 {
		t.Fatalf("heart count = %d after ten concurrent reactions, want exactly 10", got)
	}
}
