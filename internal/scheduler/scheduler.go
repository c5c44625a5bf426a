package scheduler

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/soberpath/go-notification-service/internal/domain"
	"github.com/soberpath/go-notification-service/internal/metrics"
	"github.com/soberpath/go-notification-service/internal/shared/logger"
)

const pollTimeout = 30 * time.Second

// ScheduleStore is the slice of the schedule repository the poller needs
type ScheduleStore interface {
	FindActive(ctx context.Context) ([]*domain.NotificationSchedule, error)
}

// Notifier sends one notification through the gated pipeline
type Notifier interface {
	Notify(ctx context.Context, userID string, trigger domain.TriggerType) (*domain.NotificationHistoryEntry, bool, error)
}

// PeakTimeScheduler fires pre-peak notifications. Rather than registering one
// cron entry per schedule, it polls the schedule collection once a minute and
// fires whichever schedules are due in that minute. Schedules change on every
// profile save, so the durable collection is the source of truth and the
// poller never needs re-registration.
type PeakTimeScheduler struct {
	cron      *cron.Cron
	schedules ScheduleStore
	notifier  Notifier
	log       *logger.Logger
	now       func() time.Time
}

// NewPeakTimeScheduler creates a new peak-time scheduler
func NewPeakTimeScheduler(schedules ScheduleStore, notifier Notifier, log *logger.Logger) *PeakTimeScheduler {
	return &PeakTimeScheduler{
		cron:      cron.New(),
		schedules: schedules,
		notifier:  notifier,
		log:       log,
		now:       time.Now,
	}
}

// Start begins the once-a-minute poll loop
func (s *PeakTimeScheduler) Start() error {
	if _, err := s.cron.AddFunc("* * * * *", s.poll); err != nil {
		return err
	}
	s.cron.Start()
	s.log.Info("Peak-time scheduler started")
	return nil
}

// Stop stops the scheduler
func (s *PeakTimeScheduler) Stop() {
	s.log.Info("Stopping peak-time scheduler")
	s.cron.Stop()
}

// poll loads active schedules and fires the ones due this minute
func (s *PeakTimeScheduler) poll() {
	metrics.PollerRuns.Inc()

	ctx, cancel := context.WithTimeout(context.Background(), pollTimeout)
	defer cancel()

	active, err := s.schedules.FindActive(ctx)
	if err != nil {
		s.log.Error("Failed to load active schedules", "error", err)
		return
	}

	now := s.now()
	for _, sched := range active {
		due, err := isDue(sched, now)
		if err != nil {
			s.log.Error("Skipping schedule with unparseable window", "error", err, "id", sched.ID.Hex())
			continue
		}
		if !due {
			continue
		}

		s.log.Info("Schedule due, sending pre-peak notification",
			"user_id", sched.UserID, "peak_time", sched.PeakTime, "offset_minutes", sched.OffsetMinutes)

		if _, _, err := s.notifier.Notify(ctx, sched.UserID, domain.TriggerPeakTime); err != nil {
			s.log.Error("Failed to send scheduled notification", "error", err, "user_id", sched.UserID)
		}
	}
}

// isDue reports whether the schedule's fire minute matches the given time
func isDue(sched *domain.NotificationSchedule, now time.Time) (bool, error) {
	fire, err := sched.FireMinute()
	if err != nil {
		return false, err
	}
	return fire == now.Hour()*60+now.Minute(), nil
}
