package router

import (
	"encoding/json"
	"net/http"

	"github.com/deepthansh-m/WhisperNet/api/auth"
	"github.com/deepthansh-m/WhisperNet/api/entitlements"
	"github.com/deepthansh-m/WhisperNet/api/feed"
	"github.com/deepthansh-m/WhisperNet/api/handlers"
	"github.com/deepthansh-m/WhisperNet/api/location"
	"github.com/deepthansh-m/WhisperNet/api/reactions"
	"github.com/deepthansh-m/WhisperNet/api/repositories"

	"github.com/go-chi/chi/v5"
)

func CreateRouter(
	userRepo repositories.UserRepository,
	postRepo repositories.PostRepository,
	provider entitlements.Provider,
	watcher *feed.Watcher,
	fixes *location.Cache,
) chi.Router {
	r := chi.NewRouter()
	reactionSvc := reactions.NewService(postRepo)

	// Simple health/test endpoint
	r.Get("/hello", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"message": "Hello, world!"})
	})

	r.Route("/auth", func(r chi.Router) {
		r.Post("/login", handlers.PostLoginHandler(userRepo))
		r.Post("/register", handlers.PostRegisterHandler(userRepo))
	})

	r.Group(func(r chi.Router) {
		r.Use(auth.AuthMiddleware)
		r.Route("/entitlements", func(r chi.Router) {
			r.Get("/", handlers.GetEntitlementsHandler(provider))
			r.Post("/activate", handlers.PostEntitlementsActivateHandler(userRepo))
		})
		r.Route("/posts", func(r chi.Router) {
			r.Post("/", handlers.PostPostsHandler(postRepo, provider, fixes))
			r.Get("/me", handlers.GetPostsMeHandler(postRepo, provider))
			r.Get("/nearby", handlers.GetPostsNearbyHandler(postRepo, provider, fixes))
			r.Get("/nearby/stream", handlers.GetPostsNearbyStreamHandler(watcher, provider, fixes))
			r.Post("/{postID}/reactions/{kind}", handlers.PostReactionHandler(postRepo, reactionSvc, provider))
		})
	})

	return r
}
