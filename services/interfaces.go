package services

import (
	"context"
	"database/sql"
	"time"

	"gorm.io/gorm"

	"lms/models"
	courseModels "lms/models/course"
)

// TxRunner runs a function inside a storage transaction. *gorm.DB satisfies it.
type TxRunner interface {
	Transaction(fc func(tx *gorm.DB) error, opts ...*sql.TxOptions) error
}

// EmailSender delivers notification emails. Implementations are fire-and-forget
// so a mail outage can never fail the calling flow.
type EmailSender interface {
	SendWelcomeEmail(email, name string)
	SendEnrollmentConfirmation(user *models.User, c *courseModels.Course)
	SendCourseCompletedEmail(user *models.User, c *courseModels.Course)
	SendPaymentConfirmation(user *models.User, c *courseModels.Course, amount float64)
}

// PaymentCreator records payments for paid enrollments. CreatePayment inserts
// the pending row (inside the caller's transaction when tx is non-nil);
// RequestSnapToken contacts the gateway afterwards.
type PaymentCreator interface {
	CreatePayment(tx *gorm.DB, enrollmentID uint, amount float64) (*models.Payment, error)
	RequestSnapToken(payment *models.Payment) error
}

// Cache is a best-effort side channel. Readers must tolerate stale or missing
// entries.
type Cache interface {
	Get(ctx context.Context, key string, dest any) (bool, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	InvalidatePattern(ctx context.Context, pattern string) error
}
