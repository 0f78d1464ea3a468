package dashboard

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"lakeside-exchange/marketplace-backend/internal/notifications"
)

const maxActivities = 200

// ActivityLog is the in-memory activity feed shown on the dashboard
// and the admin console. Newest entries first.
type ActivityLog struct {
	mu      sync.RWMutex
	entries []notifications.Event
}

func NewActivityLog() *ActivityLog {
	return &ActivityLog{}
}

// Record implements notifications.Recorder.
func (a *ActivityLog) Record(eventType, description string) {
	a.mu.Lock()
	defer a.mu.Unlock()

	entry := notifications.Event{
		ID:          "act-" + uuid.NewString()[:8],
		Type:        eventType,
		Description: description,
		CreatedAt:   time.Now(),
	}
	a.entries = append([]notifications.Event{entry}, a.entries...)
	if len(a.entries) > maxActivities {
		a.entries = a.entries[:maxActivities]
	}
}

// Seed preloads historical entries, oldest last.
func (a *ActivityLog) Seed(entries []notifications.Event) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.entries = append(a.entries, entries...)
}

// Recent returns up to n newest entries.
func (a *ActivityLog) Recent(n int) []notifications.Event {
	a.mu.RLock()
	defer a.mu.RUnlock()

	if n > len(a.entries) {
		n = len(a.entries)
	}
	out := make([]notifications.Event, n)
	copy(out, a.entries[:n])
	return out
}
