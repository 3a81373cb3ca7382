package shared

// Asynq task types and queues.
const (
	TypeSendInquiryEmail   = "email:inquiry_notification"
	TypeSendOtpEmail       = "email:otp"
	TypeCleanupExpiredOtps = "otp:cleanup_expired"

	QueueEmail   = "email"
	QueueDefault = "default"
)
