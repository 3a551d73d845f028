package repositories

import (
	"database/sql"
	"fmt"
)

const counterColumnsPG = `
	heart_count INTEGER NOT NULL DEFAULT 0 CHECK (heart_count >= 0),
	thumb_count INTEGER NOT NULL DEFAULT 0 CHECK (thumb_count >= 0),
	smile_count INTEGER NOT NULL DEFAULT 0 CHECK (smile_count >= 0),
	party_count INTEGER NOT NULL DEFAULT 0 CHECK (party_count >= 0),
	cry_count INTEGER NOT NULL DEFAULT 0 CHECK (cry_count >= 0),
	wow_count INTEGER NOT NULL DEFAULT 0 CHECK (wow_count >= 0),
	angry_count INTEGER NOT NULL DEFAULT 0 CHECK (angry_count >= 0),
	love_count INTEGER NOT NULL DEFAULT 0 CHECK (love_count >= 0),
	laugh_count INTEGER NOT NULL DEFAULT 0 CHECK (laugh_count >= 0),
	pray_count INTEGER NOT NULL DEFAULT 0 CHECK (pray_count >= 0)`

// InitPostgresSchema creates the tables if they do not exist yet.
func InitPostgresSchema(db *sql.DB) error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id UUID PRIMARY KEY,
			username TEXT NOT NULL UNIQUE,
			email TEXT NOT NULL UNIQUE,
			password_hash TEXT NOT NULL,
			is_premium BOOLEAN NOT NULL DEFAULT FALSE,
			created_at TIMESTAMP NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS posts (
			id UUID PRIMARY KEY,
			author_id UUID NOT NULL,
			text TEXT NOT NULL,
			latitude DOUBLE PRECISION NOT NULL,
			longitude DOUBLE PRECISION NOT NULL,
			timestamp BIGINT NOT NULL,
			theme TEXT NOT NULL DEFAULT 'default',
			is_priority BOOLEAN NOT NULL DEFAULT FALSE,` + counterColumnsPG + `
		)`,
		`CREATE INDEX IF NOT EXISTS idx_posts_timestamp ON posts (timestamp)`,
		`CREATE INDEX IF NOT EXISTS idx_posts_author ON posts (author_id, timestamp)`,
	}

	for _, q := range queries {
		if _, err := db.Exec(q); err != nil {
			return fmt.Errorf("init postgres schema: %w", err)
		}
	}
	return nil
}

// InitSQLiteSchema creates the tables if they do not exist yet. Booleans
// are stored as 0/1 integers.
func InitSQLiteSchema(db *sql.DB) error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id TEXT PRIMARY KEY,
			username TEXT NOT NULL UNIQUE,
			email TEXT NOT NULL UNIQUE,
			password_hash TEXT NOT NULL,
			is_premium INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE TABLE IF NOT EXISTS posts (
			id TEXT PRIMARY KEY,
			author_id TEXT NOT NULL,
			text TEXT NOT NULL,
			latitude REAL NOT NULL,
			longitude REAL NOT NULL,
			timestamp INTEGER NOT NULL,
			theme TEXT NOT NULL DEFAULT 'default',
			is_priority INTEGER NOT NULL DEFAULT 0,
			heart_count INTEGER NOT NULL DEFAULT 0,
			thumb_count INTEGER NOT NULL DEFAULT 0,
			smile_count INTEGER NOT NULL DEFAULT 0,
			party_count INTEGER NOT NULL DEFAULT 0,
			cry_count INTEGER NOT NULL DEFAULT 0,
			wow_count INTEGER NOT NULL DEFAULT 0,
			angry_count INTEGER NOT NULL DEFAULT 0,
			love_count INTEGER NOT NULL DEFAULT 0,
			laugh_count INTEGER NOT NULL DEFAULT 0,
			pray_count INTEGER NOT NULL DEFAULT 0
		)`,
		`CREATE INDEX IF NOT EXISTS idx_posts_timestamp ON posts (timestamp)`,
		`CREATE INDEX IF NOT EXISTS idx_posts_author ON posts (author_id, timestamp)`,
	}

	for _, q := range queries {
		if _, err := db.Exec(q); err != nil {
			return fmt.Errorf("init sqlite schema: %w", err)
		}
	}
	return nil
}
