package alert

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os/exec"
	"strings"
	"sync"

	"golang.org/x/time/rate"
)

var (
	ErrPermissionDenied = errors.New("desktop notifications not permitted")
	ErrRateLimited      = errors.New("desktop notification rate limit exceeded")
)

// Permission is the user's one-time decision about desktop notifications.
type Permission string

const (
	PermissionDefault Permission = "default"
	PermissionGranted Permission = "granted"
	PermissionDenied  Permission = "denied"
)

// ParsePermission accepts granted, denied or default (case-insensitive).
func ParsePermission(s string) (Permission, error) {
	switch p := Permission(strings.ToLower(strings.TrimSpace(s))); p {
	case PermissionDefault, PermissionGranted, PermissionDenied:
		return p, nil
	case "":
		return PermissionDefault, nil
	default:
		return "", fmt.Errorf("unknown notification permission %q", s)
	}
}

// Runner executes an external command. It exists so tests can stand in for notify-send.
type Runner func(ctx context.Context, name string, args ...string) error

func execRunner(ctx context.Context, name string, args ...string) error {
	out, err := exec.CommandContext(ctx, name, args...).CombinedOutput()
	if err != nil {
		return fmt.Errorf("%s: %w: %s", name, err, strings.TrimSpace(string(out)))
	}
	return nil
}

// DesktopNotifier delivers alerts as OS-level notifications through notify-send.
// Delivery is best-effort: it needs permission and is throttled.
type DesktopNotifier struct {
	mu         sync.Mutex
	permission Permission
	prompt     func() Permission
	limiter    *rate.Limiter
	run        Runner
}

// DesktopOption configures a DesktopNotifier.
type DesktopOption func(*DesktopNotifier)

// WithRunner replaces the command runner.
func WithRunner(run Runner) DesktopOption {
	return func(d *DesktopNotifier) { d.run = run }
}

// WithPrompt sets how a default permission gets resolved on the first request.
func WithPrompt(prompt func() Permission) DesktopOption {
	return func(d *DesktopNotifier) { d.prompt = prompt }
}

// NewDesktopNotifier creates a notifier allowing perMinute notifications per
// minute with a burst of the same size. perMinute <= 0 disables throttling.
func NewDesktopNotifier(permission Permission, perMinute int, opts ...DesktopOption) *DesktopNotifier {
	limit := rate.Inf
	burst := 0
	if perMinute > 0 {
		limit = rate.Limit(float64(perMinute) / 60)
		burst = perMinute
	}
	d := &DesktopNotifier{
		permission: permission,
		prompt:     func() Permission { return PermissionDenied },
		limiter:    rate.NewLimiter(limit, burst),
		run:        execRunner,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Name identifies the channel in logs and metrics.
func (d *DesktopNotifier) Name() string { return "desktop" }

// RequestPermission resolves a default permission once. Granted and denied
// decisions are final and returned unchanged.
func (d *DesktopNotifier) RequestPermission() Permission {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.permission == PermissionDefault {
		d.permission = d.prompt()
		slog.Info("Desktop notification permission resolved", "permission", d.permission)
	}
	return d.permission
}

// Permission returns the current decision.
func (d *DesktopNotifier) Permission() Permission {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.permission
}

// Notify shows the alert on the desktop.
func (d *DesktopNotifier) Notify(ctx context.Context, a Alert) error {
	if d.Permission() != PermissionGranted {
		return ErrPermissionDenied
	}
	if !d.limiter.Allow() {
		return ErrRateLimited
	}
	if err := d.run(ctx, "notify-send", "--app-name=InventoryPro", Title, a.Message); err != nil {
		return fmt.Errorf("failed to show desktop notification: %w", err)
	}
	return nil
}
