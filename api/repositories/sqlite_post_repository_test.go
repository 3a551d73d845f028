package repositories

import (
	"database/sql"
	"errors"
	"sync"
	"testing"

	"github.com/deepthansh-m/WhisperNet/api/models"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
)

func newSQLiteTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	// Each new :memory: connection is a fresh empty database, so the
	// pool must stay on a single connection.
	db.SetMaxOpenConns(1)

	if err := InitSQLiteSchema(db); err != nil {
		t.Fatalf("init schema: %v", err)
	}
	return db
}

func TestSQLiteConcurrentIncrementsAllLand(t *testing.T) {
	db := newSQLiteTestDB(t)
	repo := NewSQLitePostRepository(db, nil)

	id, err := repo.CreatePost(models.NewPost{
		AuthorID: uuid.New(),
		Text:     "meet at the fountain",
		Location: models.Location{Latitude: 49.2827, Longitude: -123.1207},
		Theme:    models.ThemeDefault,
	})
	if err != nil {
		t.Fatalf("CreatePost: %v", err)
	}

	const n = 10
	errs := make(chan error, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs <- repo.IncrementReaction(id, models.ReactionHeart)
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		if err != nil {
			t.Fatalf("IncrementReaction: %v", err)
		}
	}

	post, err := repo.GetPost(id)
	if err != nil {
		t.Fatalf("GetPost: %v", err)
	}
	if got := post.Reactions.Get(models.ReactionHeart); got != n {
		t.Errorf("heart count = %d, want %d", got, n)
	}
	if got := post.Reactions.Get(models.ReactionSmile); got != 0 {
		t.Errorf("smile count = %d, want 0", got)
	}
}

func TestSQLiteIncrementReactionMissingPost(t *testing.T) {
	db := newSQLiteTestDB(t)
	repo := NewSQLitePostRepository(db, nil)

	err := repo.IncrementReaction(uuid.New(), models.ReactionHeart)
	if !errors.Is(err, models.ErrNotFound) {
		t.Errorf("IncrementReaction on missing post = %v, want ErrNotFound", err)
	}
}
