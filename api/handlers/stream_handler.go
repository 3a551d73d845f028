package handlers

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"github.com/deepthansh-m/WhisperNet/api/auth"
	"github.com/deepthansh-m/WhisperNet/api/dtos"
	"github.com/deepthansh-m/WhisperNet/api/entitlements"
	"github.com/deepthansh-m/WhisperNet/api/feed"
	"github.com/deepthansh-m/WhisperNet/api/location"
	"github.com/deepthansh-m/WhisperNet/api/models"
)

// GET /posts/nearby/stream
//
// Server-sent events; each event is a full feed snapshot. The watcher is
// cancelled when the client disconnects.
func GetPostsNearbyStreamHandler(watcher *feed.Watcher, provider entitlements.Provider, fixes *location.Cache) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := auth.UserIDFromContext(r.Context())

		viewer, err := viewerFromRequest(r, userID, provider, fixes)
		if err != nil {
			writeError(w, err, "unable to resolve viewer")
			return
		}

		flusher, ok := w.(http.Flusher)
		if !ok {
			http.Error(w, "streaming unsupported", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "text/event-stream")
		w.Header().Set("Cache-Control", "no-cache")
		w.Header().Set("Connection", "keep-alive")

		type event struct {
			posts []models.Post
			err   error
		}
		// Buffered, non-blocking delivery: a slow client only skips
		// intermediate snapshots, never blocks the watcher.
		events := make(chan event, 1)
		sub := watcher.Subscribe(viewer, func(posts []models.Post, err error) {
			select {
			case events <- event{posts: posts, err: err}:
			default:
			}
		})
		defer sub.Cancel()

		for {
			select {
			case <-r.Context().Done():
				return
			case ev := <-events:
				if ev.err != nil {
					log.Println("feed stream query:", ev.err)
					fmt.Fprintf(w, "event: error\ndata: %q\n\n", "feed temporarily unavailable")
					flusher.Flush()
					continue
				}
				resp := dtos.GetFeedResponse{Posts: make([]dtos.Post, 0, len(ev.posts))}
				for _, p := range ev.posts {
					resp.Posts = append(resp.Posts, dtos.FromModel(p))
				}
				payload, err := json.Marshal(resp)
				if err != nil {
					log.Println("encode feed snapshot:", err)
					continue
				}
				fmt.Fprintf(w, "data: %s\n\n", payload)
				flusher.Flush()
			}
		}
	}
}
