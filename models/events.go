package models

import "time"

// DomainEvent is an immutable fact raised by an entity method. Events are
// collected on the entity and dispatched after the change is persisted.
type DomainEvent interface {
	Name() string
	OccurredAt() time.Time
}

type UserRegistered struct {
	UserID     uint
	Email      string
	Role       string
	occurredAt time.Time
}

func NewUserRegistered(userID uint, email, role string) UserRegistered {
	return UserRegistered{UserID: userID, Email: email, Role: role, occurredAt: time.Now()}
}

func (e UserRegistered) Name() string          { return "user.registered" }
func (e UserRegistered) OccurredAt() time.Time { return e.occurredAt }

type UserEnrolled struct {
	EnrollmentID uint
	UserID       uint
	CourseID     uint
	AmountPaid   float64
	occurredAt   time.Time
}

func NewUserEnrolled(enrollmentID, userID, courseID uint, amountPaid float64) UserEnrolled {
	return UserEnrolled{
		EnrollmentID: enrollmentID,
		UserID:       userID,
		CourseID:     courseID,
		AmountPaid:   amountPaid,
		occurredAt:   time.Now(),
	}
}

func (e UserEnrolled) Name() string          { return "user.enrolled" }
func (e UserEnrolled) OccurredAt() time.Time { return e.occurredAt }

type CoursePublished struct {
	CourseID     uint
	Title        string
	InstructorID uint
	occurredAt   time.Time
}

func NewCoursePublished(courseID uint, title string, instructorID uint) CoursePublished {
	return CoursePublished{CourseID: courseID, Title: title, InstructorID: instructorID, occurredAt: time.Now()}
}

func (e CoursePublished) Name() string          { return "course.published" }
func (e CoursePublished) OccurredAt() time.Time { return e.occurredAt }
