package feed

import (
	"sort"
	"time"

	"github.com/deepthansh-m/WhisperNet/api/geo"
	"github.com/deepthansh-m/WhisperNet/api/models"
)

// FreshnessWindow is how long a post stays visible in feed queries. It
// applies to everyone, authors included; the author exception below covers
// distance only.
const FreshnessWindow = time.Hour

// CutoffMillis returns the freshness cutoff for an evaluation instant.
// Posts must be strictly newer than the cutoff to appear.
func CutoffMillis(now time.Time) int64 {
	return now.Add(-FreshnessWindow).UnixMilli()
}

// ComputeFeed filters and orders posts for one viewer. Pure: no I/O, no
// mutation of the input slice. A post is kept when it is newer than the
// freshness cutoff and either within the viewer's radius or authored by
// the viewer. Results sort priority posts first, then newest first; the
// sort is stable so equal keys keep their input order across calls.
func ComputeFeed(posts []models.Post, viewer models.SubscriberContext, now time.Time) []models.Post {
	cutoff := CutoffMillis(now)

	visible := make([]models.Post, 0, len(posts))
	for _, p := range posts {
		if p.CreatedAt <= cutoff {
			continue
		}
		if p.AuthorID != viewer.UserID {
			d := geo.DistanceKm(viewer.Location.Latitude, viewer.Location.Longitude,
				p.Location.Latitude, p.Location.Longitude)
			if !(d <= viewer.RadiusKm) {
				continue
			}
		}
		visible = append(visible, p)
	}

	sort.SliceStable(visible, func(i, j int) bool {
		if visible[i].IsPriority != visible[j].IsPriority {
			return visible[i].IsPriority
		}
		return visible[i].CreatedAt > visible[j].CreatedAt
	})

	return visible
}
