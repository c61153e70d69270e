package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"lms/apperrors"
	"lms/models"
	courseModels "lms/models/course"
	"lms/repository"
)

type fakePaymentRepo struct {
	payments map[uint]*models.Payment
	nextID   uint
}

func (r *fakePaymentRepo) FindByOrderID(orderID string) (*models.Payment, error) {
	for _, p := range r.payments {
		if p.OrderID == orderID {
			return p, nil
		}
	}
	return nil, nil
}
func (r *fakePaymentRepo) FindByEnrollmentID(enrollmentID uint) ([]models.Payment, error) {
	var out []models.Payment
	for _, p := range r.payments {
		if p.EnrollmentID == enrollmentID {
			out = append(out, *p)
		}
	}
	return out, nil
}
func (r *fakePaymentRepo) Create(p *models.Payment) error {
	r.nextID++
	p.ID = r.nextID
	r.payments[p.ID] = p
	return nil
}
func (r *fakePaymentRepo) Update(p *models.Payment) error {
	r.payments[p.ID] = p
	return nil
}
func (r *fakePaymentRepo) WithTx(tx *gorm.DB) repository.PaymentRepository { return r }

type fakeGateway struct {
	tokens int
}

func (g *fakeGateway) CreateSnapToken(orderID string, grossAmount float64) (string, error) {
	g.tokens++
	return "snap-token", nil
}

type paymentFixture struct {
	service     *PaymentService
	payments    *fakePaymentRepo
	enrollments *fakeEnrollmentRepo
	users       *fakeUserRepo
	courses     *fakeCourseRepo
	gateway     *fakeGateway
	email       *fakeEmail
}

func newPaymentFixture(t *testing.T) *paymentFixture {
	t.Helper()
	f := &paymentFixture{
		payments:    &fakePaymentRepo{payments: map[uint]*models.Payment{}},
		enrollments: &fakeEnrollmentRepo{enrollments: map[uint]*courseModels.Enrollment{}},
		users:       &fakeUserRepo{users: map[uint]*models.User{}},
		courses:     &fakeCourseRepo{courses: map[uint]*courseModels.Course{}},
		gateway:     &fakeGateway{},
		email:       &fakeEmail{},
	}
	f.service = NewPaymentService(f.payments, f.enrollments, f.users, f.courses, f.gateway, f.email)

	f.users.users[1] = testUser(t, 1, models.RoleStudent)
	c := testPublishedCourse(t, 10, 49.99)
	c.ID = 2
	f.courses.courses[2] = c

	enrollment := courseModels.NewEnrollment(1, 2, mustMoney(t, 49.99))
	require.NoError(t, f.enrollments.Create(enrollment))

	return f
}

func mustMoney(t *testing.T, amount float64) models.Money {
	t.Helper()
	m, err := models.NewMoney(amount)
	require.NoError(t, err)
	return m
}

func TestGetEnrollmentPaymentsOwnerOnly(t *testing.T) {
	f := newPaymentFixture(t)

	payment, err := f.service.CreatePayment(nil, 1, 49.99)
	require.NoError(t, err)

	// Another authenticated user cannot read the owner's payments
	_, err = f.service.GetEnrollmentPayments(1, 2)
	assert.Equal(t, apperrors.KindOwnership, apperrors.KindOf(err))

	_, err = f.service.GetEnrollmentPayments(99, 1)
	assert.Equal(t, apperrors.KindNotFound, apperrors.KindOf(err))

	rows, err := f.service.GetEnrollmentPayments(1, 1)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, payment.OrderID, rows[0].OrderID)
}

func TestProcessWebhookSettlementSendsConfirmation(t *testing.T) {
	f := newPaymentFixture(t)

	payment, err := f.service.CreatePayment(nil, 1, 49.99)
	require.NoError(t, err)

	notification := GatewayNotification{
		OrderID:           payment.OrderID,
		TransactionID:     "tx-1",
		TransactionStatus: "settlement",
		SettlementTime:    "2026-08-29 10:30:00",
	}

	updated, err := f.service.ProcessWebhook(notification)
	require.NoError(t, err)
	assert.Equal(t, models.PaymentStatusSettlement, updated.TransactionStatus)
	require.NotNil(t, updated.SettlementTime)

	assert.Equal(t, 1, f.email.payments)
	assert.Equal(t, 49.99, f.email.lastAmount)

	// Gateways retry; a replayed settlement does not resend the email
	_, err = f.service.ProcessWebhook(notification)
	require.NoError(t, err)
	assert.Equal(t, 1, f.email.payments)
}

func TestProcessWebhookDenySendsNothing(t *testing.T) {
	f := newPaymentFixture(t)

	payment, err := f.service.CreatePayment(nil, 1, 49.99)
	require.NoError(t, err)

	updated, err := f.service.ProcessWebhook(GatewayNotification{
		OrderID:           payment.OrderID,
		TransactionStatus: "deny",
	})
	require.NoError(t, err)
	assert.Equal(t, models.PaymentStatusDeny, updated.TransactionStatus)
	assert.Zero(t, f.email.payments)
}

func TestProcessWebhookUnknownOrder(t *testing.T) {
	f := newPaymentFixture(t)

	_, err := f.service.ProcessWebhook(GatewayNotification{OrderID: "ORDER-missing"})
	assert.Equal(t, apperrors.KindNotFound, apperrors.KindOf(err))
}
