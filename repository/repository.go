// Package repository abstracts persistence behind per-entity interfaces. The
// application services depend on these interfaces only; the GORM-backed
// implementations live alongside them. Lookups return (nil, nil) when no row
// matches so the services decide which absences are errors.
package repository

import (
	"time"

	"gorm.io/gorm"

	"lms/models"
	courseModels "lms/models/course"
)

type UserRepository interface {
	FindByID(id uint) (*models.User, error)
	FindByEmail(email string) (*models.User, error)
	Create(user *models.User) error
	Update(user *models.User) error
}

type CourseRepository interface {
	FindByID(id uint) (*courseModels.Course, error)
	FindPublished(page, limit int) ([]courseModels.Course, int64, error)
	FindByInstructor(instructorID uint) ([]courseModels.Course, error)
	GetCourseLessons(courseID uint) ([]courseModels.Lesson, error)
	Create(c *courseModels.Course) error
	Update(c *courseModels.Course) error
}

type LessonRepository interface {
	FindByID(id uint) (*courseModels.Lesson, error)
	FindByCourseID(courseID uint) ([]courseModels.Lesson, error)
	Create(l *courseModels.Lesson) error
	Update(l *courseModels.Lesson) error
	Delete(id uint) error
}

type EnrollmentRepository interface {
	FindByID(id uint) (*courseModels.Enrollment, error)
	FindByUserID(userID uint) ([]courseModels.Enrollment, error)
	FindByUserAndCourse(userID, courseID uint) (*courseModels.Enrollment, error)
	Create(e *courseModels.Enrollment) error
	Update(e *courseModels.Enrollment) error
	Delete(id uint) error
	// WithTx returns a copy bound to the given transaction handle.
	WithTx(tx *gorm.DB) EnrollmentRepository
}

type LessonProgressRepository interface {
	FindByEnrollmentID(enrollmentID uint) ([]courseModels.LessonProgress, error)
	FindByEnrollmentAndLesson(enrollmentID, lessonID uint) (*courseModels.LessonProgress, error)
	Create(p *courseModels.LessonProgress) error
	Update(p *courseModels.LessonProgress) error
	WithTx(tx *gorm.DB) LessonProgressRepository
}

type PaymentRepository interface {
	FindByOrderID(orderID string) (*models.Payment, error)
	FindByEnrollmentID(enrollmentID uint) ([]models.Payment, error)
	Create(p *models.Payment) error
	Update(p *models.Payment) error
	WithTx(tx *gorm.DB) PaymentRepository
}

type ReviewRepository interface {
	FindByID(id uint) (*models.Review, error)
	FindByCourseID(courseID uint, page, limit int) ([]models.Review, int64, error)
	FindByUserAndCourse(userID, courseID uint) (*models.Review, error)
	AverageRating(courseID uint) (float64, error)
	Create(r *models.Review) error
	Update(r *models.Review) error
}

type SessionRepository interface {
	FindByJTI(jti string) (*models.Session, error)
	FindByUserID(userID uint) ([]models.Session, error)
	Create(s *models.Session) error
	Update(s *models.Session) error
	DeleteExpired(before time.Time) (int64, error)
}

type CategoryRepository interface {
	FindAll() ([]models.Category, error)
	FindByID(id uint) (*models.Category, error)
	FindBySlug(slug string) (*models.Category, error)
	Create(c *models.Category) error
	Update(c *models.Category) error
}
