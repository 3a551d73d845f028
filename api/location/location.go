package location

import (
	"errors"
	"sync"
	"time"

	"github.com/deepthansh-m/WhisperNet/api/models"

	"github.com/google/uuid"
)

// ErrNoFix means the caller sent no coordinates and no earlier fix is
// cached; the feed query is deferred until a fix arrives.
var ErrNoFix = errors.New("no location fix available")

// Fix is one best-effort location report.
type Fix struct {
	Location  models.Location
	Timestamp int64 // epoch millis
}

// Cache remembers the last known fix per user so a query without fresh
// coordinates can still run against the previous position.
type Cache struct {
	mu    sync.RWMutex
	fixes map[uuid.UUID]Fix
}

func NewCache() *Cache {
	return &Cache{fixes: make(map[uuid.UUID]Fix)}
}

// Record stores a fix for the user.
func (c *Cache) Record(userID uuid.UUID, loc models.Location) Fix {
	fix := Fix{Location: loc, Timestamp: time.Now().UnixMilli()}
	c.mu.Lock()
	c.fixes[userID] = fix
	c.mu.Unlock()
	return fix
}

// Resolve returns the usable fix for a query. A valid fresh location wins
// and is cached; otherwise the last known fix is used; with neither the
// query must be deferred.
func (c *Cache) Resolve(userID uuid.UUID, loc *models.Location) (Fix, error) {
	if loc != nil && loc.Valid() {
		return c.Record(userID, *loc), nil
	}

	c.mu.RLock()
	fix, ok := c.fixes[userID]
	c.mu.RUnlock()
	if !ok {
		return Fix{}, ErrNoFix
	}
	return fix, nil
}
