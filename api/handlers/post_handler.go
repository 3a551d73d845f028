package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/deepthansh-m/WhisperNet/api/auth"
	"github.com/deepthansh-m/WhisperNet/api/dtos"
	"github.com/deepthansh-m/WhisperNet/api/entitlements"
	"github.com/deepthansh-m/WhisperNet/api/feed"
	"github.com/deepthansh-m/WhisperNet/api/location"
	"github.com/deepthansh-m/WhisperNet/api/models"
	"github.com/deepthansh-m/WhisperNet/api/reactions"
	"github.com/deepthansh-m/WhisperNet/api/repositories"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

const myPostsLimit = 50

// POST /posts
func PostPostsHandler(postRepo repositories.PostRepository, provider entitlements.Provider, fixes *location.Cache) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := auth.UserIDFromContext(r.Context())

		var req dtos.CreatePostRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid request body", http.StatusBadRequest)
			return
		}

		theme, ok := models.ParseTheme(req.Theme)
		if !ok {
			http.Error(w, "unknown theme", http.StatusBadRequest)
			return
		}

		premium, err := premiumFor(provider, userID)
		if err != nil {
			writeError(w, err, "unable to create post")
			return
		}

		// Free-tier creators fall back to the defaults instead of being
		// rejected; the options were never theirs to pick.
		if !entitlements.ThemeAllowed(theme, premium) {
			theme = models.ThemeDefault
		}
		isPriority := req.IsPriority && premium

		post := models.NewPost{
			AuthorID:   userID,
			Text:       req.Text,
			Location:   models.Location{Latitude: req.Latitude, Longitude: req.Longitude},
			Theme:      theme,
			IsPriority: isPriority,
		}

		id, err := postRepo.CreatePost(post)
		if err != nil {
			writeError(w, err, "unable to create post")
			return
		}

		// A successful post doubles as a location fix.
		fixes.Record(userID, post.Location)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(dtos.CreatePostResponse{ID: id})
	}
}

// GET /posts/nearby
func GetPostsNearbyHandler(postRepo repositories.PostRepository, provider entitlements.Provider, fixes *location.Cache) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := auth.UserIDFromContext(r.Context())

		viewer, err := viewerFromRequest(r, userID, provider, fixes)
		if err != nil {
			writeError(w, err, "unable to resolve viewer")
			return
		}

		now := time.Now()
		posts, err := postRepo.QueryPostsSince(feed.CutoffMillis(now))
		if err != nil {
			writeError(w, err, "unable to fetch feed")
			return
		}

		visible := feed.ComputeFeed(posts, viewer, now)

		resp := dtos.GetFeedResponse{Posts: make([]dtos.Post, 0, len(visible))}
		for _, p := range visible {
			resp.Posts = append(resp.Posts, dtos.FromModel(p))
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(resp)
	}
}

// GET /posts/me
func GetPostsMeHandler(postRepo repositories.PostRepository, provider entitlements.Provider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := auth.UserIDFromContext(r.Context())

		premium, err := premiumFor(provider, userID)
		if err != nil {
			writeError(w, err, "unable to fetch posts")
			return
		}

		posts, err := postRepo.QueryUserPosts(userID, feed.CutoffMillis(time.Now()), myPostsLimit)
		if err != nil {
			writeError(w, err, "unable to fetch posts")
			return
		}

		resp := dtos.GetMyPostsResponse{
			Posts:          make([]dtos.Post, 0, len(posts)),
			ActiveCount:    len(posts),
			ReactionTotals: make(map[string]int64),
		}
		for _, p := range posts {
			resp.Posts = append(resp.Posts, dtos.FromModel(p))
			resp.ReactionTotal += p.Reactions.Total()
		}
		// The per-kind breakdown shows only the kinds the tier can see.
		for _, kind := range entitlements.AllowedReactionKinds(premium) {
			var total int64
			for _, p := range posts {
				total += int64(p.Reactions.Get(kind))
			}
			resp.ReactionTotals[string(kind)] = total
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(resp)
	}
}

// POST /posts/{postID}/reactions/{kind}
func PostReactionHandler(postRepo repositories.PostRepository, svc *reactions.Service, provider entitlements.Provider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := auth.UserIDFromContext(r.Context())

		postID, err := uuid.Parse(chi.URLParam(r, "postID"))
		if err != nil {
			http.Error(w, "invalid post id", http.StatusBadRequest)
			return
		}
		kind, ok := models.ParseReactionKind(chi.URLParam(r, "kind"))
		if !ok {
			http.Error(w, "unknown reaction kind", http.StatusBadRequest)
			return
		}

		post, err := postRepo.GetPost(postID)
		if err != nil {
			writeError(w, err, "unable to react")
			return
		}

		premium, err := premiumFor(provider, userID)
		if err != nil {
			writeError(w, err, "unable to react")
			return
		}

		if err := svc.React(*post, userID, kind, premium); err != nil {
			writeError(w, err, "unable to react")
			return
		}

		// Re-read so the response carries the confirmed counters rather
		// than an optimistic local bump.
		updated, err := postRepo.GetPost(postID)
		if err != nil {
			writeError(w, err, "unable to react")
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(dtos.ReactResponse{PostID: updated.ID, Reactions: updated.Reactions})
	}
}

// viewerFromRequest builds the subscriber context for a nearby query:
// coordinates from the query string or the last known fix, radius
// normalized to the caller's tier.
func viewerFromRequest(r *http.Request, userID uuid.UUID, provider entitlements.Provider, fixes *location.Cache) (models.SubscriberContext, error) {
	query := r.URL.Query()

	var loc *models.Location
	latStr, lonStr := query.Get("latitude"), query.Get("longitude")
	if latStr != "" || lonStr != "" {
		lat, err := strconv.ParseFloat(latStr, 64)
		if err != nil {
			return models.SubscriberContext{}, models.ErrInvalidInput
		}
		lon, err := strconv.ParseFloat(lonStr, 64)
		if err != nil {
			return models.SubscriberContext{}, models.ErrInvalidInput
		}
		l := models.Location{Latitude: lat, Longitude: lon}
		if !l.Valid() {
			return models.SubscriberContext{}, models.ErrInvalidInput
		}
		loc = &l
	}

	fix, err := fixes.Resolve(userID, loc)
	if err != nil {
		return models.SubscriberContext{}, err
	}

	var requestedRadius float64
	if s := query.Get("radius_km"); s != "" {
		requestedRadius, err = strconv.ParseFloat(s, 64)
		if err != nil {
			return models.SubscriberContext{}, models.ErrInvalidInput
		}
	}

	premium, err := premiumFor(provider, userID)
	if err != nil {
		return models.SubscriberContext{}, err
	}

	return models.SubscriberContext{
		UserID:    userID,
		Location:  fix.Location,
		RadiusKm:  entitlements.NormalizeRadius(requestedRadius, premium),
		IsPremium: premium,
	}, nil
}
