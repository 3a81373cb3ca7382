package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/hibiken/asynq"
	"github.com/joho/godotenv"

	"cuentista-backend/internal/infrastructure/email"
	"cuentista-backend/internal/infrastructure/email/job"
	"cuentista-backend/internal/infrastructure/queue"
	"cuentista-backend/internal/shared"
	"cuentista-backend/pkg/container"
)

// The worker consumes the email queue and runs the periodic OTP sweep. It
// shares the container with the API so repositories and config stay in one
// place.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	c, err := container.NewContainer()
	if err != nil {
		log.Fatalf("failed to initialize container: %v", err)
	}
	defer c.Cleanup()

	emailService := email.NewSMTPEmailService(c.Config.SMTP.Host, c.Config.SMTP.Port, c.Config.SMTP.From)

	srv := asynq.NewServer(
		asynq.RedisClientOpt{Addr: c.Config.Redis.Host, Password: c.Config.Redis.Password, DB: c.Config.Redis.DB},
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				shared.QueueEmail:   6,
				shared.QueueDefault: 3,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.Handle(shared.TypeSendInquiryEmail, job.NewInquiryEmailHandler(emailService))
	mux.Handle(shared.TypeSendOtpEmail, job.NewOtpEmailHandler(emailService))
	mux.Handle(shared.TypeCleanupExpiredOtps, queue.NewOtpCleanupHandler(c.AdminRepo))

	scheduler := queue.NewScheduler(c.Config.Redis.Host)
	if err := scheduler.RegisterMaintenanceJobs(); err != nil {
		log.Fatalf("failed to register scheduled jobs: %v", err)
	}

	if err := srv.Start(mux); err != nil {
		log.Fatalf("failed to start worker: %v", err)
	}
	if err := scheduler.Start(); err != nil {
		log.Fatalf("failed to start scheduler: %v", err)
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("shutting down worker...")
	scheduler.Shutdown()
	srv.Shutdown()
	log.Println("worker stopped")
}
