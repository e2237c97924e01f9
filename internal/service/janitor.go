package service

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// DefaultJanitorSchedule runs the sweep at the top of every hour.
const DefaultJanitorSchedule = "0 * * * *"

// SessionJanitor periodically abandons quizzes that were started long ago and never finished.
type SessionJanitor struct {
	quizRepo QuizRepository
	ttl      time.Duration
	schedule string
	now      func() time.Time
	logger   *zap.Logger
}

func NewSessionJanitor(quizRepo QuizRepository, ttl time.Duration, schedule string, logger *zap.Logger) *SessionJanitor {
	if schedule == "" {
		schedule = DefaultJanitorSchedule
	}
	return &SessionJanitor{
		quizRepo: quizRepo,
		ttl:      ttl,
		schedule: schedule,
		now:      time.Now,
		logger:   logger,
	}
}

// Start runs the sweep on schedule until ctx is done.
func (j *SessionJanitor) Start(ctx context.Context) error {
	c := cron.New(cron.WithLocation(time.UTC))

	_, err := c.AddFunc(j.schedule, func() {
		if _, err := j.Sweep(ctx); err != nil {
			j.logger.Error("failed to abandon stale sessions", zap.Error(err))
		}
	})
	if err != nil {
		return fmt.Errorf("add cron job: %w", err)
	}

	c.Start()
	j.logger.Info("session janitor started",
		zap.String("schedule", j.schedule),
		zap.Duration("ttl", j.ttl),
	)

	<-ctx.Done()

	<-c.Stop().Done()
	j.logger.Info("session janitor stopped")

	return nil
}

// Sweep abandons active sessions older than the TTL and returns how many were closed.
func (j *SessionJanitor) Sweep(ctx context.Context) (int64, error) {
	n, err := j.quizRepo.AbandonStale(ctx, j.now().Add(-j.ttl))
	if err != nil {
		return 0, err
	}

	if n > 0 {
		j.logger.Info("stale sessions abandoned", zap.Int64("count", n))
	}

	return n, nil
}
