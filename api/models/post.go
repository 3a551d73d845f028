package models

import (
	"math"
	"unicode/utf8"

	"github.com/google/uuid"
)

// MaxPostTextLen is the maximum post length in Unicode code points.
const MaxPostTextLen = 140

type Theme string

const (
	ThemeDefault  Theme = "default"
	ThemeSoftBlue Theme = "soft_blue"
	ThemeFieryRed Theme = "fiery_red"
)

func ParseTheme(s string) (Theme, bool) {
	switch Theme(s) {
	case ThemeDefault, ThemeSoftBlue, ThemeFieryRed:
		return Theme(s), true
	case "":
		return ThemeDefault, true
	}
	return ThemeDefault, false
}

type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Valid reports whether the location holds real WGS84 degrees.
func (l Location) Valid() bool {
	if math.IsNaN(l.Latitude) || math.IsNaN(l.Longitude) {
		return false
	}
	return l.Latitude >= -90 && l.Latitude <= 90 && l.Longitude >= -180 && l.Longitude <= 180
}

// Post is a stored ephemeral post. Identity fields are immutable after
// creation; only the reaction counters change, and only by atomic
// single-field increments in the store.
type Post struct {
	ID         uuid.UUID      `json:"id"`
	AuthorID   uuid.UUID      `json:"author_id"`
	Text       string         `json:"text"`
	Location   Location       `json:"location"`
	CreatedAt  int64          `json:"created_at"` // epoch millis
	Theme      Theme          `json:"theme"`
	IsPriority bool           `json:"is_priority"`
	Reactions  ReactionCounts `json:"reactions"`
}

// NewPost carries the creation-time fields of a post. Counters start at
// zero and the store assigns the id and timestamp.
type NewPost struct {
	AuthorID   uuid.UUID
	Text       string
	Location   Location
	Theme      Theme
	IsPriority bool
}

// Validate enforces the creation-time invariants. Text length is checked
// here once and never re-validated after.
func (p NewPost) Validate() error {
	if p.AuthorID == uuid.Nil {
		return ErrUnauthenticated
	}
	if p.Text == "" || utf8.RuneCountInString(p.Text) > MaxPostTextLen {
		return ErrInvalidInput
	}
	if !p.Location.Valid() {
		return ErrInvalidInput
	}
	if _, ok := ParseTheme(string(p.Theme)); !ok {
		return ErrInvalidInput
	}
	return nil
}

// SubscriberContext describes one viewer of the feed. It is rebuilt per
// query and never persisted.
type SubscriberContext struct {
	UserID    uuid.UUID
	Location  Location
	RadiusKm  float64
	IsPremium bool
}
