package queue

import (
	"time"

	"github.com/hibiken/asynq"

	"cuentista-backend/internal/shared"
	"cuentista-backend/pkg/logger"
)

// Scheduler registers the periodic maintenance jobs.
type Scheduler struct {
	scheduler *asynq.Scheduler
}

func NewScheduler(redisAddr string) *Scheduler {
	return &Scheduler{
		scheduler: asynq.NewScheduler(
			asynq.RedisClientOpt{Addr: redisAddr},
			&asynq.SchedulerOpts{
				Location: time.UTC,
				LogLevel: asynq.InfoLevel,
			},
		),
	}
}

// RegisterMaintenanceJobs wires the cron entries. Expired OTP rows are
// retained at consumption time (the expired-otp path does not delete), so
// a sweeper is the only thing that removes them.
func (s *Scheduler) RegisterMaintenanceJobs() error {
	task := asynq.NewTask(shared.TypeCleanupExpiredOtps, nil)

	_, err := s.scheduler.Register(
		"0 * * * *", // hourly
		task,
		asynq.Queue(shared.QueueDefault),
		asynq.MaxRetry(1),
		asynq.Timeout(5*time.Minute),
	)
	if err != nil {
		logger.Error("failed to register otp cleanup job", err)
		return err
	}

	logger.Info("registered otp cleanup job: hourly", nil)
	return nil
}

func (s *Scheduler) Start() error {
	return s.scheduler.Start()
}

func (s *Scheduler) Shutdown() {
	s.scheduler.Shutdown()
}
