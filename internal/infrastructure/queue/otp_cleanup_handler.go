package queue

import (
	"context"
	"time"

	"github.com/hibiken/asynq"
	"github.com/rs/zerolog/log"

	"cuentista-backend/internal/domains/admin/repository"
)

// OtpCleanupHandler sweeps expired OTP rows. Runs on the schedule
// registered by Scheduler.RegisterMaintenanceJobs.
type OtpCleanupHandler struct {
	repo repository.RepositoryInterface
}

func NewOtpCleanupHandler(repo repository.RepositoryInterface) *OtpCleanupHandler {
	return &OtpCleanupHandler{repo: repo}
}

func (h *OtpCleanupHandler) ProcessTask(ctx context.Context, task *asynq.Task) error {
	deleted, err := h.repo.DeleteExpiredOtps(ctx, time.Now())
	if err != nil {
		return err
	}

	log.Info().Int64("deleted", deleted).Msg("Expired otp rows cleaned")
	return nil
}
