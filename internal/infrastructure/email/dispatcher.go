package email

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/hibiken/asynq"

	"cuentista-backend/internal/shared"
	"cuentista-backend/pkg/logger"
)

// Dispatcher enqueues email tasks for the worker. Request handlers treat
// dispatch as fire-and-forget: a broken queue must never fail the business
// operation that triggered the mail.
type Dispatcher struct {
	client *asynq.Client
}

func NewDispatcher(redisAddr string) *Dispatcher {
	return &Dispatcher{
		client: asynq.NewClient(asynq.RedisClientOpt{Addr: redisAddr}),
	}
}

func (d *Dispatcher) EnqueueInquiryNotification(ctx context.Context, data InquiryEmailData) error {
	return d.enqueue(ctx, shared.TypeSendInquiryEmail, data)
}

func (d *Dispatcher) EnqueueOtpEmail(ctx context.Context, data OtpEmailData) error {
	return d.enqueue(ctx, shared.TypeSendOtpEmail, data)
}

func (d *Dispatcher) enqueue(ctx context.Context, taskType string, payload interface{}) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal %s payload: %w", taskType, err)
	}

	task := asynq.NewTask(taskType, data)

	_, err = d.client.EnqueueContext(
		ctx,
		task,
		asynq.Queue(shared.QueueEmail),
		asynq.MaxRetry(3),
		asynq.Timeout(30*time.Second),
	)
	if err != nil {
		logger.Error("failed to enqueue email task", err)
		return fmt.Errorf("enqueue %s: %w", taskType, err)
	}

	return nil
}

func (d *Dispatcher) Close() error {
	return d.client.Close()
}
