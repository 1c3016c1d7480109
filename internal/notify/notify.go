// Package notify holds transient toast notifications. Each toast expires on
// its own after the notifier's duration; nothing is ever persisted.
package notify

import (
	"cmp"
	"slices"
	"sync/atomic"
	"time"

	"github.com/patrickmn/go-cache"

	"github.com/muurk/motohub/internal/garage"
	"github.com/muurk/motohub/internal/logging"
)

// DefaultDuration is how long a toast stays visible when not configured.
const DefaultDuration = 4 * time.Second

// Toast is one notification.
type Toast struct {
	ID          string
	Title       string
	Description string
	Created     time.Time
	Expires     time.Time

	seq uint64
}

// Notifier issues and tracks toasts.
type Notifier struct {
	store    *cache.Cache
	duration time.Duration
	seq      atomic.Uint64
	now      func() time.Time
}

// New creates a notifier whose toasts live for d. A non-positive d means
// DefaultDuration.
//
// Expired toasts are dropped by Prune rather than a background janitor, so
// a Notifier owns no goroutines.
func New(d time.Duration) *Notifier {
	if d <= 0 {
		d = DefaultDuration
	}
	return &Notifier{
		store:    cache.New(d, 0),
		duration: d,
		now:      time.Now,
	}
}

// Duration returns the configured toast lifetime.
func (n *Notifier) Duration() time.Duration {
	return n.duration
}

// Notify adds a toast and returns it. Notify is fire-and-forget and cannot
// fail.
func (n *Notifier) Notify(title, description string) Toast {
	now := n.now()
	t := Toast{
		ID:          garage.NewID("toast"),
		Title:       title,
		Description: description,
		Created:     now,
		Expires:     now.Add(n.duration),
		seq:         n.seq.Add(1),
	}

	n.store.Set(t.ID, t, cache.DefaultExpiration)
	logging.LogNotification(title)
	return t
}

// Active returns the unexpired toasts, oldest first.
func (n *Notifier) Active() []Toast {
	items := n.store.Items()
	out := make([]Toast, 0, len(items))
	for _, it := range items {
		if t, ok := it.Object.(Toast); ok {
			out = append(out, t)
		}
	}
	slices.SortFunc(out, func(a, b Toast) int { return cmp.Compare(a.seq, b.seq) })
	return out
}

// Len returns the number of unexpired toasts.
func (n *Notifier) Len() int {
	return len(n.store.Items())
}

// Dismiss removes a toast before it expires.
func (n *Notifier) Dismiss(id string) {
	n.store.Delete(id)
}

// DismissAll removes every toast.
func (n *Notifier) DismissAll() {
	n.store.Flush()
}

// Prune drops expired toasts from the store.
func (n *Notifier) Prune() {
	n.store.DeleteExpired()
}
