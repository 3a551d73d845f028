package repositories

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/deepthansh-m/WhisperNet/api/models"

	"github.com/google/uuid"
)

// SQLite implementation of PostRepository, for single-node deployments
// without a Postgres instance. Same schema and semantics; `?`
// placeholders instead of `$n`.
type sqlitePostRepository struct {
	db      *sql.DB
	changes *ChangeFeed
}

func NewSQLitePostRepository(db *sql.DB, changes *ChangeFeed) PostRepository {
	return &sqlitePostRepository{db: db, changes: changes}
}

func (r *sqlitePostRepository) CreatePost(p models.NewPost) (uuid.UUID, error) {
	if err := p.Validate(); err != nil {
		return uuid.Nil, err
	}

	const q = `
		INSERT INTO posts (id, author_id, text, latitude, longitude, timestamp, theme, is_priority)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`
	id := uuid.New()
	_, err := r.db.Exec(q, id, p.AuthorID, p.Text,
		p.Location.Latitude, p.Location.Longitude,
		time.Now().UnixMilli(), string(p.Theme), p.IsPriority)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: create post: %v", models.ErrStorageUnavailable, err)
	}

	r.notify()
	return id, nil
}

func (r *sqlitePostRepository) GetPost(id uuid.UUID) (*models.Post, error) {
	row := r.db.QueryRow(`SELECT `+postColumns+` FROM posts WHERE id = ?`, id)
	post, err := scanPost(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, models.ErrNotFound
		}
		return nil, fmt.Errorf("%w: get post: %v", models.ErrStorageUnavailable, err)
	}
	return post, nil
}

func (r *sqlitePostRepository) IncrementReaction(id uuid.UUID, kind models.ReactionKind) error {
	column := kind.Column()
	if column == "" {
		return models.ErrInvalidInput
	}

	q := fmt.Sprintf("UPDATE posts SET %s = %s + 1 WHERE id = ?", column, column)
	result, err := r.db.Exec(q, id)
	if err != nil {
		return fmt.Errorf("%w: increment reaction: %v", models.ErrStorageUnavailable, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: increment reaction: %v", models.ErrStorageUnavailable, err)
	}
	if affected == 0 {
		return models.ErrNotFound
	}

	r.notify()
	return nil
}

func (r *sqlitePostRepository) QueryPostsSince(cutoffMillis int64) ([]models.Post, error) {
	rows, err := r.db.Query(
		`SELECT `+postColumns+` FROM posts WHERE timestamp > ? ORDER BY timestamp DESC`,
		cutoffMillis,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: query posts: %v", models.ErrStorageUnavailable, err)
	}
	defer rows.Close()
	return collectPosts(rows)
}

func (r *sqlitePostRepository) QueryUserPosts(authorID uuid.UUID, cutoffMillis int64, limit int) ([]models.Post, error) {
	rows, err := r.db.Query(
		`SELECT `+postColumns+` FROM posts
		 WHERE author_id = ? AND timestamp > ?
		 ORDER BY timestamp DESC
		 LIMIT ?`,
		authorID, cutoffMillis, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: query user posts: %v", models.ErrStorageUnavailable, err)
	}
	defer rows.Close()
	return collectPosts(rows)
}

func (r *sqlitePostRepository) notify() {
	if r.changes != nil {
		r.changes.Broadcast()
	}
}
