package service

import (
	"context"
	"time"

	"github.com/soberpath/go-notification-service/internal/metrics"
	"github.com/soberpath/go-notification-service/internal/shared/logger"
)

// Gate decides at dispatch time whether sending is currently permitted
type Gate struct {
	prefs PreferencesStore
	log   *logger.Logger
	now   func() time.Time
}

// NewGate creates a new quiet-hours gate
func NewGate(prefs PreferencesStore, log *logger.Logger) *Gate {
	return &Gate{
		prefs: prefs,
		log:   log,
		now:   time.Now,
	}
}

// IsAllowed reports whether a notification may be sent to the user right
// now. Users without stored preferences are allowed. Sending requires at
// least one enabled channel regardless of quiet hours; quiet hours apply
// only when both bounds are set. A preferences read failure degrades to
// allowed rather than dropping the notification.
func (g *Gate) IsAllowed(ctx context.Context, userID string) bool {
	prefs, err := g.prefs.GetByUserID(ctx, userID)
	if err != nil {
		g.log.Warn("Failed to load preferences, allowing send", "error", err, "user_id", userID)
		return true
	}
	if prefs == nil {
		return true
	}

	if !prefs.AnyChannelEnabled() {
		metrics.NotificationsSuppressed.WithLabelValues("channels_disabled").Inc()
		return false
	}

	if !prefs.QuietHoursConfigured() {
		return true
	}

	if inQuietHours(prefs.QuietHoursStart, prefs.QuietHoursEnd, g.now().Format("15:04")) {
		metrics.NotificationsSuppressed.WithLabelValues("quiet_hours").Inc()
		return false
	}

	return true
}

// inQuietHours compares "HH:MM" strings, which order lexicographically.
// A non-wrapping window (start <= end) blocks inside [start, end] inclusive;
// an overnight window (start > end) blocks from start through midnight and
// up to end.
func inQuietHours(start, end, current string) bool {
	if start <= end {
		return current >= start && current <= end
	}
	return current >= start || current <= end
}
