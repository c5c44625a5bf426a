package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// NotificationsSent tracks successful channel deliveries
	NotificationsSent = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recovery_notifications_sent_total",
			Help: "Total number of notifications delivered, by channel",
		},
		[]string{"channel"},
	)

	// NotificationsFailed tracks failed channel deliveries
	NotificationsFailed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recovery_notifications_failed_total",
			Help: "Total number of failed delivery attempts, by channel",
		},
		[]string{"channel"},
	)

	// NotificationsSuppressed tracks sends blocked before dispatch
	NotificationsSuppressed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recovery_notifications_suppressed_total",
			Help: "Total number of notifications suppressed before dispatch",
		},
		[]string{"reason"}, // quiet_hours, channels_disabled
	)

	// ScheduleRebuilds tracks full schedule regenerations
	ScheduleRebuilds = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "recovery_schedule_rebuilds_total",
			Help: "Total number of per-user schedule set regenerations",
		},
	)

	// RateLimitExceeded tracks rate limit violations
	RateLimitExceeded = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recovery_rate_limit_exceeded_total",
			Help: "Total number of rate limit exceeded events",
		},
		[]string{"user_id"},
	)

	// PollerRuns tracks scheduler poll ticks
	PollerRuns = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "recovery_scheduler_polls_total",
			Help: "Total number of scheduler poll ticks",
		},
	)
)
