package repositories

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/deepthansh-m/WhisperNet/api/models"

	"github.com/google/uuid"
)

// interface
type PostRepository interface {
	CreatePost(p models.NewPost) (uuid.UUID, error)
	GetPost(id uuid.UUID) (*models.Post, error)
	IncrementReaction(id uuid.UUID, kind models.ReactionKind) error
	QueryPostsSince(cutoffMillis int64) ([]models.Post, error)
	QueryUserPosts(authorID uuid.UUID, cutoffMillis int64, limit int) ([]models.Post, error)
}

const postColumns = `id, author_id, text, latitude, longitude, timestamp, theme, is_priority,
	heart_count, thumb_count, smile_count, party_count, cry_count,
	wow_count, angry_count, love_count, laugh_count, pray_count`

// Postgres implementation.
type postRepository struct {
	db      *sql.DB
	changes *ChangeFeed
}

// NewPostRepository returns a Postgres-backed store. changes may be nil
// when no live watchers exist.
func NewPostRepository(db *sql.DB, changes *ChangeFeed) PostRepository {
	return &postRepository{db: db, changes: changes}
}

func (r *postRepository) CreatePost(p models.NewPost) (uuid.UUID, error) {
	if err := p.Validate(); err != nil {
		return uuid.Nil, err
	}

	const q = `
		INSERT INTO posts (id, author_id, text, latitude, longitude, timestamp, theme, is_priority)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
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

func (r *postRepository) GetPost(id uuid.UUID) (*models.Post, error) {
	row := r.db.QueryRow(`SELECT `+postColumns+` FROM posts WHERE id = $1`, id)
	post, err := scanPost(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, models.ErrNotFound
		}
		return nil, fmt.Errorf("%w: get post: %v", models.ErrStorageUnavailable, err)
	}
	return post, nil
}

func (r *postRepository) IncrementReaction(id uuid.UUID, kind models.ReactionKind) error {
	column := kind.Column()
	if column == "" {
		return models.ErrInvalidInput
	}

	// Server-side atomic add; concurrent increments on the same field
	// serialize in the database and none are lost.
	q := fmt.Sprintf("UPDATE posts SET %s = %s + 1 WHERE id = $1", column, column)
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

func (r *postRepository) QueryPostsSince(cutoffMillis int64) ([]models.Post, error) {
	rows, err := r.db.Query(
		`SELECT `+postColumns+` FROM posts WHERE timestamp > $1 ORDER BY timestamp DESC`,
		cutoffMillis,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: query posts: %v", models.ErrStorageUnavailable, err)
	}
	defer rows.Close()
	return collectPosts(rows)
}

func (r *postRepository) QueryUserPosts(authorID uuid.UUID, cutoffMillis int64, limit int) ([]models.Post, error) {
	rows, err := r.db.Query(
		`SELECT `+postColumns+` FROM posts
		 WHERE author_id = $1 AND timestamp > $2
		 ORDER BY timestamp DESC
		 LIMIT $3`,
		authorID, cutoffMillis, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: query user posts: %v", models.ErrStorageUnavailable, err)
	}
	defer rows.Close()
	return collectPosts(rows)
}

func (r *postRepository) notify() {
	if r.changes != nil {
		r.changes.Broadcast()
	}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPost(row rowScanner) (*models.Post, error) {
	var post models.Post
	var theme string
	if err := row.Scan(
		&post.ID,
		&post.AuthorID,
		&post.Text,
		&post.Location.Latitude,
		&post.Location.Longitude,
		&post.CreatedAt,
		&theme,
		&post.IsPriority,
		&post.Reactions.Heart,
		&post.Reactions.Thumb,
		&post.Reactions.Smile,
		&post.Reactions.Party,
		&post.Reactions.Cry,
		&post.Reactions.Wow,
		&post.Reactions.Angry,
		&post.Reactions.Love,
		&post.Reactions.Laugh,
		&post.Reactions.Pray,
	); err != nil {
		return nil, err
	}
	post.Theme, _ = models.ParseTheme(theme)
	return &post, nil
}

func collectPosts(rows *sql.Rows) ([]models.Post, error) {
	var posts []models.Post
	for rows.Next() {
		post, err := scanPost(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scan post: %v", models.ErrStorageUnavailable, err)
		}
		posts = append(posts, *post)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterate posts: %v", models.ErrStorageUnavailable, err)
	}
	return posts, nil
}
