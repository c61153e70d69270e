package services

import (
	"log"

	"gorm.io/gorm"

	"lms/apperrors"
	"lms/models"
	courseModels "lms/models/course"
	"lms/repository"
)

// EnrollmentService orchestrates the enrollment lifecycle: enrolling, lesson
// progress updates, aggregate recalculation and cancellation.
type EnrollmentService struct {
	db             TxRunner
	enrollments    repository.EnrollmentRepository
	lessonProgress repository.LessonProgressRepository
	courses        repository.CourseRepository
	lessons        repository.LessonRepository
	users          repository.UserRepository
	payments       PaymentCreator
	events         EventDispatcher
	email          EmailSender
}

func NewEnrollmentService(
	db TxRunner,
	enrollments repository.EnrollmentRepository,
	lessonProgress repository.LessonProgressRepository,
	courses repository.CourseRepository,
	lessons repository.LessonRepository,
	users repository.UserRepository,
	payments PaymentCreator,
	events EventDispatcher,
	email EmailSender,
) *EnrollmentService {
	return &EnrollmentService{
		db:             db,
		enrollments:    enrollments,
		lessonProgress: lessonProgress,
		courses:        courses,
		lessons:        lessons,
		users:          users,
		payments:       payments,
		events:         events,
		email:          email,
	}
}

// EnrollmentProgress is the read model returned by GetEnrollmentProgress.
type EnrollmentProgress struct {
	Enrollment         *courseModels.Enrollment      `json:"enrollment"`
	LessonProgresses   []courseModels.LessonProgress `json:"lesson_progresses"`
	CompletedLessons   int                           `json:"completed_lessons"`
	TotalLessons       int                           `json:"total_lessons"`
	ProgressPercentage int                           `json:"progress_percentage"`
}

// EnrollCourse enrolls a user into a course. The enrollment row, the eager
// lesson-progress fan-out and the pending payment are written in a single
// transaction so a failure never leaves partial state behind.
func (s *EnrollmentService) EnrollCourse(userID, courseID uint) (*courseModels.Enrollment, error) {
	user, err := s.users.FindByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperrors.NotFound("User not found!")
	}

	c, err := s.courses.FindByID(courseID)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, apperrors.NotFound("Course not found!")
	}

	if !CanUserEnrollCourse(user, c) {
		return nil, apperrors.Validation("User cannot enroll in this course!")
	}

	existing, err := s.enrollments.FindByUserAndCourse(userID, courseID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperrors.Conflict("User already enrolled in this course!")
	}

	price := CalculateEnrollmentPrice(c, user)
	enrollment := courseModels.NewEnrollment(userID, courseID, price)

	lessons, err := s.lessons.FindByCourseID(courseID)
	if err != nil {
		return nil, err
	}

	var payment *models.Payment

	txErr := s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.enrollments.WithTx(tx).Create(enrollment); err != nil {
			return err
		}

		progressRepo := s.lessonProgress.WithTx(tx)
		for _, lesson := range lessons {
			if err := progressRepo.Create(courseModels.NewLessonProgress(enrollment.ID, lesson.ID)); err != nil {
				return err
			}
		}

		if !price.IsFree() {
			created, err := s.payments.CreatePayment(tx, enrollment.ID, price.Value())
			if err != nil {
				return err
			}
			payment = created
		}
		return nil
	})
	if txErr != nil {
		return nil, apperrors.Unexpected("Failed to enroll in course!", txErr)
	}

	// The gateway call stays outside the transaction. A gateway outage leaves
	// the payment pending and retryable, it never rolls back the enrollment.
	if payment != nil {
		if err := s.payments.RequestSnapToken(payment); err != nil {
			log.Printf("[ENROLLMENT] failed to request payment token for order %s: %v", payment.OrderID, err)
		}
	}

	for _, event := range enrollment.PullEvents() {
		s.events.Dispatch(event)
	}

	s.email.SendEnrollmentConfirmation(user, c)

	return enrollment, nil
}

// UpdateLessonProgress records the latest watch position for one lesson of an
// owned enrollment, then recalculates the aggregate percentage.
func (s *EnrollmentService) UpdateLessonProgress(enrollmentID, lessonID, userID uint, watchSeconds int) (*courseModels.LessonProgress, error) {
	if _, err := s.ownedEnrollment(enrollmentID, userID); err != nil {
		return nil, err
	}

	progress, err := s.lessonProgress.FindByEnrollmentAndLesson(enrollmentID, lessonID)
	if err != nil {
		return nil, err
	}
	if progress == nil {
		return nil, apperrors.NotFound("Lesson progress not found!")
	}

	if err := progress.UpdateWatchTime(watchSeconds); err != nil {
		return nil, err
	}

	if err := s.lessonProgress.Update(progress); err != nil {
		return nil, err
	}

	if err := s.recalculateEnrollmentProgress(enrollmentID); err != nil {
		return nil, err
	}

	return progress, nil
}

// CompleteLesson marks one lesson of an owned enrollment as completed, then
// recalculates the aggregate percentage.
func (s *EnrollmentService) CompleteLesson(enrollmentID, lessonID, userID uint) (*courseModels.LessonProgress, error) {
	if _, err := s.ownedEnrollment(enrollmentID, userID); err != nil {
		return nil, err
	}

	progress, err := s.lessonProgress.FindByEnrollmentAndLesson(enrollmentID, lessonID)
	if err != nil {
		return nil, err
	}
	if progress == nil {
		return nil, apperrors.NotFound("Lesson progress not found!")
	}

	progress.MarkAsCompleted()

	if err := s.lessonProgress.Update(progress); err != nil {
		return nil, err
	}

	if err := s.recalculateEnrollmentProgress(enrollmentID); err != nil {
		return nil, err
	}

	return progress, nil
}

// recalculateEnrollmentProgress reloads the lesson-progress rows, recomputes
// the percentage and persists the enrollment. Idempotent: running it twice in
// a row yields the same state. A vanished enrollment is a no-op.
func (s *EnrollmentService) recalculateEnrollmentProgress(enrollmentID uint) error {
	enrollment, err := s.enrollments.FindByID(enrollmentID)
	if err != nil {
		return err
	}
	if enrollment == nil {
		return nil
	}

	progresses, err := s.lessonProgress.FindByEnrollmentID(enrollmentID)
	if err != nil {
		return err
	}

	newProgress := CalculateCourseProgress(progresses, len(progresses))

	wasActive := enrollment.IsActive()

	if err := enrollment.UpdateProgress(newProgress); err != nil {
		return err
	}

	// UpdateProgress already completes at 100 while active; the guard keeps the
	// two paths agreeing without failing on a completed enrollment.
	if ShouldCompleteEnrollment(newProgress) && enrollment.IsActive() {
		if err := enrollment.Complete(); err != nil {
			return err
		}
	}

	if err := s.enrollments.Update(enrollment); err != nil {
		return err
	}

	if wasActive && enrollment.IsCompleted() {
		s.notifyCourseCompleted(enrollment)
	}
	return nil
}

func (s *EnrollmentService) notifyCourseCompleted(enrollment *courseModels.Enrollment) {
	user, err := s.users.FindByID(enrollment.UserID)
	if err != nil || user == nil {
		return
	}
	c, err := s.courses.FindByID(enrollment.CourseID)
	if err != nil || c == nil {
		return
	}
	s.email.SendCourseCompletedEmail(user, c)
}

// GetEnrollmentProgress returns the enrollment with all lesson-progress rows
// and completion counts. Ownership-checked.
func (s *EnrollmentService) GetEnrollmentProgress(enrollmentID, userID uint) (*EnrollmentProgress, error) {
	enrollment, err := s.ownedEnrollment(enrollmentID, userID)
	if err != nil {
		return nil, err
	}

	progresses, err := s.lessonProgress.FindByEnrollmentID(enrollmentID)
	if err != nil {
		return nil, err
	}

	completedLessons := 0
	for _, progress := range progresses {
		if progress.IsCompleted() {
			completedLessons++
		}
	}

	return &EnrollmentProgress{
		Enrollment:         enrollment,
		LessonProgresses:   progresses,
		CompletedLessons:   completedLessons,
		TotalLessons:       len(progresses),
		ProgressPercentage: enrollment.ProgressPercentage,
	}, nil
}

// GetUserEnrollments lists every enrollment of the user.
func (s *EnrollmentService) GetUserEnrollments(userID uint) ([]courseModels.Enrollment, error) {
	return s.enrollments.FindByUserID(userID)
}

// CancelEnrollment cancels an owned enrollment. Progress and amount paid keep
// their last values.
func (s *EnrollmentService) CancelEnrollment(enrollmentID, userID uint) (*courseModels.Enrollment, error) {
	enrollment, err := s.ownedEnrollment(enrollmentID, userID)
	if err != nil {
		return nil, err
	}

	if err := enrollment.Cancel(); err != nil {
		return nil, err
	}

	if err := s.enrollments.Update(enrollment); err != nil {
		return nil, err
	}
	return enrollment, nil
}

func (s *EnrollmentService) ownedEnrollment(enrollmentID, userID uint) (*courseModels.Enrollment, error) {
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
	return enrollment, nil
}
