package services

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"lms/apperrors"
	"lms/models"
	"lms/repository"
)

// PaymentGateway is the external checkout provider.
type PaymentGateway interface {
	CreateSnapToken(orderID string, grossAmount float64) (string, error)
}

// GatewayNotification is the webhook payload sent by the gateway.
type GatewayNotification struct {
	OrderID           string `json:"order_id"`
	TransactionID     string `json:"transaction_id"`
	TransactionStatus string `json:"transaction_status"`
	PaymentType       string `json:"payment_type"`
	FraudStatus       string `json:"fraud_status"`
	TransactionTime   string `json:"transaction_time"`
	SettlementTime    string `json:"settlement_time"`

	Raw []byte `json:"-"`
}

// PaymentService records payment rows and talks to the gateway.
type PaymentService struct {
	payments    repository.PaymentRepository
	enrollments repository.EnrollmentRepository
	users       repository.UserRepository
	courses     repository.CourseRepository
	gateway     PaymentGateway
	email       EmailSender
}

func NewPaymentService(
	payments repository.PaymentRepository,
	enrollments repository.EnrollmentRepository,
	users repository.UserRepository,
	courses repository.CourseRepository,
	gateway PaymentGateway,
	email EmailSender,
) *PaymentService {
	return &PaymentService{
		payments:    payments,
		enrollments: enrollments,
		users:       users,
		courses:     courses,
		gateway:     gateway,
		email:       email,
	}
}

// CreatePayment inserts a pending payment row. When tx is non-nil the insert
// joins the caller's transaction.
func (s *PaymentService) CreatePayment(tx *gorm.DB, enrollmentID uint, amount float64) (*models.Payment, error) {
	orderID := fmt.Sprintf("ORDER-%d-%s", enrollmentID, uuid.NewString())
	payment := models.NewPayment(enrollmentID, orderID, amount)

	repo := s.payments
	if tx != nil {
		repo = s.payments.WithTx(tx)
	}
	if err := repo.Create(payment); err != nil {
		return nil, err
	}
	return payment, nil
}

// RequestSnapToken fetches a checkout token from the gateway and stores it on
// the payment row.
func (s *PaymentService) RequestSnapToken(payment *models.Payment) error {
	token, err := s.gateway.CreateSnapToken(payment.OrderID, payment.GrossAmount)
	if err != nil {
		return err
	}
	payment.SnapToken = token
	return s.payments.Update(payment)
}

// ProcessWebhook applies a gateway status notification to the matching payment.
func (s *PaymentService) ProcessWebhook(notification GatewayNotification) (*models.Payment, error) {
	payment, err := s.payments.FindByOrderID(notification.OrderID)
	if err != nil {
		return nil, err
	}
	if payment == nil {
		return nil, apperrors.NotFound("Payment not found!")
	}

	wasSettled := payment.IsSettled()

	payment.ApplyGatewayUpdate(models.GatewayUpdate{
		TransactionID:     notification.TransactionID,
		TransactionStatus: mapTransactionStatus(notification.TransactionStatus),
		PaymentType:       notification.PaymentType,
		FraudStatus:       notification.FraudStatus,
		TransactionTime:   parseGatewayTime(notification.TransactionTime),
		SettlementTime:    parseGatewayTime(notification.SettlementTime),
		RawResponse:       notification.Raw,
	})

	if err := s.payments.Update(payment); err != nil {
		return nil, err
	}

	// Gateways retry notifications; only the first settlement gets the email.
	if payment.IsSettled() && !wasSettled {
		s.notifyPaymentConfirmed(payment)
	}
	return payment, nil
}

// GetEnrollmentPayments lists payment rows for one enrollment. Only the
// enrollment owner may read them.
func (s *PaymentService) GetEnrollmentPayments(enrollmentID, userID uint) ([]models.Payment, error) {
	enrollment, err := s.enrollments.FindByID(enrollmentID)
	if err != nil {
		return nil, err
	}
	if enrollment == nil {
		return nil, apperrors.NotFound("Enrollment not found!")
	}
	if enrollment.UserID != userID {
		return nil, apperrors.Ownership("Access denied!")
	}
	return s.payments.FindByEnrollmentID(enrollmentID)
}

func (s *PaymentService) notifyPaymentConfirmed(payment *models.Payment) {
	enrollment, err := s.enrollments.FindByID(payment.EnrollmentID)
	if err != nil || enrollment == nil {
		return
	}
	user, err := s.users.FindByID(enrollment.UserID)
	if err != nil || user == nil {
		return
	}
	c, err := s.courses.FindByID(enrollment.CourseID)
	if err != nil || c == nil {
		return
	}
	s.email.SendPaymentConfirmation(user, c, payment.GrossAmount)
}

func mapTransactionStatus(status string) string {
	switch status {
	case "capture", "settlement":
		return models.PaymentStatusSettlement
	case "deny":
		return models.PaymentStatusDeny
	case "cancel":
		return models.PaymentStatusCancel
	case "expire":
		return models.PaymentStatusExpire
	case "failure":
		return models.PaymentStatusFailure
	default:
		return models.PaymentStatusPending
	}
}

func parseGatewayTime(value string) *time.Time {
	if value == "" {
		return nil
	}
	parsed, err := time.Parse("2006-01-02 15:04:05", value)
	if err != nil {
		return nil
	}
	return &parsed
}
