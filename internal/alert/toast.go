package alert

import (
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
)

// DefaultToastTTL is how long a banner stays visible.
const DefaultToastTTL = 4 * time.Second

// Toast is one in-app banner.
type Toast struct {
	ID        string
	Kind      Kind
	Message   string
	CreatedAt time.Time
	ExpiresAt time.Time
}

// ToastQueue holds the stacked in-app banners. Banners expire on their own;
// nothing blocks waiting for them.
type ToastQueue struct {
	mu     sync.Mutex
	ttl    time.Duration
	now    func() time.Time
	toasts []Toast
}

// NewToastQueue creates a queue whose banners live for ttl.
// A non-positive ttl falls back to DefaultToastTTL.
func NewToastQueue(ttl time.Duration) *ToastQueue {
	if ttl <= 0 {
		ttl = DefaultToastTTL
	}
	return &ToastQueue{ttl: ttl, now: time.Now}
}

// Push adds a banner and returns it.
func (q *ToastQueue) Push(kind Kind, message string) Toast {
	q.mu.Lock()
	defer q.mu.Unlock()

	now := q.now()
	t := Toast{
		ID:        uuid.NewString(),
		Kind:      kind,
		Message:   message,
		CreatedAt: now,
		ExpiresAt: now.Add(q.ttl),
	}
	q.pruneLocked(now)
	q.toasts = append(q.toasts, t)
	return t
}

// Active returns the banners that have not expired, oldest first.
func (q *ToastQueue) Active() []Toast {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.pruneLocked(q.now())
	return slices.Clone(q.toasts)
}

// Dismiss removes a banner before it expires. It reports whether the id was active.
func (q *ToastQueue) Dismiss(id string) bool {
	q.mu.Lock()
	defer q.mu.Unlock()

	idx := slices.IndexFunc(q.toasts, func(t Toast) bool { return t.ID == id })
	if idx < 0 {
		return false
	}
	q.toasts = slices.Delete(q.toasts, idx, idx+1)
	return true
}

func (q *ToastQueue) pruneLocked(now time.Time) {
	q.toasts = slices.DeleteFunc(q.toasts, func(t Toast) bool {
		return !now.Before(t.ExpiresAt)
	})
}
