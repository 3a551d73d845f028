package models

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"
)

func validNewPost() NewPost {
	return NewPost{
		AuthorID: uuid.New(),
		Text:     "anyone up for coffee?",
		Location: Location{Latitude: 49.28, Longitude: -123.12},
		Theme:    ThemeDefault,
	}
}

func TestNewPostValidate(t *testing.T) {
	if err := validNewPost().Validate(); err != nil {
		t.Fatalf("valid post rejected: %v", err)
	}

	p := validNewPost()
	p.AuthorID = uuid.Nil
	if err := p.Validate(); !errors.Is(err, ErrUnauthenticated) {
		t.Errorf("empty author: err = %v, want ErrUnauthenticated", err)
	}

	p = validNewPost()
	p.Text = ""
	if err := p.Validate(); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("empty text: err = %v, want ErrInvalidInput", err)
	}

	// Length is counted in code points, not bytes.
	p = validNewPost()
	p.Text = strings.Repeat("é", 140)
	if err := p.Validate(); err != nil {
		t.Errorf("140 multibyte runes rejected: %v", err)
	}
	p.Text = strings.Repeat("é", 141)
	if err := p.Validate(); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("141 runes: err = %v, want ErrInvalidInput", err)
	}

	p = validNewPost()
	p.Location.Latitude = 91
	if err := p.Validate(); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("latitude 91: err = %v, want ErrInvalidInput", err)
	}
}

func TestParseReactionKind(t *testing.T) {
	if len(AllReactionKinds) != 10 {
		t.Fatalf("AllReactionKinds has %d entries, want 10", len(AllReactionKinds))
	}
	for _, k := range AllReactionKinds {
		got, ok := ParseReactionKind(string(k))
		if !ok || got != k {
			t.Errorf("ParseReactionKind(%q) = (%q, %v)", k, got, ok)
		}
		if k.Column() == "" {
			t.Errorf("kind %q has no counter column", k)
		}
	}
	if _, ok := ParseReactionKind("sparkle"); ok {
		t.Error("unknown kind accepted")
	}
}

func TestReactionCountsAddAndGet(t *testing.T) {
	var c ReactionCounts
	for _, k := range AllReactionKinds {
		c = c.Add(k)
	}
	for _, k := range AllReactionKinds {
		if c.Get(k) != 1 {
			t.Errorf("count for %q = %d, want 1", k, c.Get(k))
		}
	}
	if c.Total() != 10 {
		t.Errorf("total = %d, want 10", c.Total())
	}
}

func TestParseTheme(t *testing.T) {
	for _, s := range []string{"default", "soft_blue", "fiery_red"} {
		if _, ok := ParseTheme(s); !ok {
			t.Errorf("ParseTheme(%q) rejected", s)
		}
	}
	if theme, ok := ParseTheme(""); !ok || theme != ThemeDefault {
		t.Error("empty theme should fall back to default")
	}
	if _, ok := ParseTheme("neon"); ok {
		t.Error("unknown theme accepted")
	}
}
