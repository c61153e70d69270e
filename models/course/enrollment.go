package course

import (
	"time"

	"gorm.io/gorm"

	"lms/apperrors"
	"lms/models"
)

const (
	EnrollmentActive    = "ACTIVE"
	EnrollmentCompleted = "COMPLETED"
	EnrollmentCancelled = "CANCELLED"
)

// Enrollment links one student to one course with payment and progress. Exactly
// one enrollment exists per (user, course) pair.
type Enrollment struct {
	gorm.Model
	UserID             uint       `json:"user_id" gorm:"index:idx_enrollment_user_course,unique;not null"`
	CourseID           uint       `json:"course_id" gorm:"index:idx_enrollment_user_course,unique;not null"`
	AmountPaid         float64    `json:"amount_paid" gorm:"not null;default:0"`
	Status             string     `json:"status" gorm:"default:'ACTIVE'"` // ACTIVE, COMPLETED, CANCELLED
	EnrolledAt         time.Time  `json:"enrolled_at" gorm:"not null"`
	CompletedAt        *time.Time `json:"completed_at"`
	ProgressPercentage int        `json:"progress_percentage" gorm:"default:0"`

	enrolledEventPending bool `gorm:"-" json:"-"`
}

// NewEnrollment creates an active enrollment with zero progress and raises
// user.enrolled. Negative amounts are rejected by Money before this point.
func NewEnrollment(userID, courseID uint, amountPaid models.Money) *Enrollment {
	return &Enrollment{
		UserID:               userID,
		CourseID:             courseID,
		AmountPaid:           amountPaid.Value(),
		Status:               EnrollmentActive,
		EnrolledAt:           time.Now(),
		enrolledEventPending: true,
	}
}

// UpdateProgress sets the aggregate percentage. Reaching 100 while active
// completes the enrollment.
func (e *Enrollment) UpdateProgress(percentage int) error {
	if percentage < 0 || percentage > 100 {
		return apperrors.Validation("Progress percentage must be between 0 and 100!")
	}

	e.ProgressPercentage = percentage

	if percentage == 100 && e.Status == EnrollmentActive {
		return e.Complete()
	}
	return nil
}

func (e *Enrollment) Complete() error {
	if e.Status != EnrollmentActive {
		return apperrors.Validation("Only active enrollments can be completed!")
	}
	now := time.Now()
	e.Status = EnrollmentCompleted
	e.CompletedAt = &now
	e.ProgressPercentage = 100
	return nil
}

func (e *Enrollment) Cancel() error {
	if e.Status == EnrollmentCancelled {
		return apperrors.Validation("Enrollment is already cancelled!")
	}
	e.Status = EnrollmentCancelled
	return nil
}

func (e *Enrollment) IsActive() bool {
	return e.Status == EnrollmentActive
}

func (e *Enrollment) IsCompleted() bool {
	return e.Status == EnrollmentCompleted
}

func (e *Enrollment) IsCancelled() bool {
	return e.Status == EnrollmentCancelled
}

// PullEvents returns the pending domain events and clears them. The enrolled
// event is materialized here so it carries the persisted row ID.
func (e *Enrollment) PullEvents() []models.DomainEvent {
	if !e.enrolledEventPending {
		return nil
	}
	e.enrolledEventPending = false
	return []models.DomainEvent{models.NewUserEnrolled(e.ID, e.UserID, e.CourseID, e.AmountPaid)}
}
