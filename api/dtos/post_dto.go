package dtos

import (
	"github.com/deepthansh-m/WhisperNet/api/models"

	"github.com/google/uuid"
)

type CreatePostRequest struct {
	Text       string  `json:"text"`
	Latitude   float64 `json:"latitude"`
	Longitude  float64 `json:"longitude"`
	Theme      string  `json:"theme"`
	IsPriority bool    `json:"is_priority"`
}

type CreatePostResponse struct {
	ID uuid.UUID `json:"id"`
}

type Post struct {
	ID         uuid.UUID             `json:"id"`
	AuthorID   uuid.UUID             `json:"author_id"`
	Text       string                `json:"text"`
	Latitude   float64               `json:"latitude"`
	Longitude  float64               `json:"longitude"`
	CreatedAt  int64                 `json:"created_at"`
	Theme      string                `json:"theme"`
	IsPriority bool                  `json:"is_priority"`
	Reactions  models.ReactionCounts `json:"reactions"`
}

type GetFeedResponse struct {
	Posts []Post `json:"posts"`
}

type GetMyPostsResponse struct {
	Posts          []Post           `json:"posts"`
	ActiveCount    int              `json:"active_count"`
	ReactionTotal  int64            `json:"reaction_total"`
	ReactionTotals map[string]int64 `json:"reaction_totals"`
}

type ReactResponse struct {
	PostID    uuid.UUID             `json:"post_id"`
	Reactions models.ReactionCounts `json:"reactions"`
}

type EntitlementsResponse struct {
	IsPremium     bool     `json:"is_premium"`
	Themes        []string `json:"themes"`
	ReactionKinds []string `json:"reaction_kinds"`
	MinRadiusKm   float64  `json:"min_radius_km"`
	MaxRadiusKm   float64  `json:"max_radius_km"`
}

// FromModel flattens a stored post into its wire shape.
func FromModel(p models.Post) Post {
	return Post{
		ID:         p.ID,
		AuthorID:   p.AuthorID,
		Text:       p.Text,
		Latitude:   p.Location.Latitude,
		Longitude:  p.Location.Longitude,
		CreatedAt:  p.CreatedAt,
		Theme:      string(p.Theme),
		IsPriority: p.IsPriority,
		Reactions:  p.Reactions,
	}
}
