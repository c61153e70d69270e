package course

import (
	"math"
	"time"

	"gorm.io/gorm"

	"lms/apperrors"
)

const (
	ProgressNotStarted = "NOT_STARTED"
	ProgressInProgress = "IN_PROGRESS"
	ProgressCompleted  = "COMPLETED"
)

// LessonProgress tracks one learner's interaction with one lesson. A row is
// created eagerly for every lesson of the course at enrollment time.
type LessonProgress struct {
	gorm.Model
	EnrollmentID         uint       `json:"enrollment_id" gorm:"index:idx_progress_enrollment_lesson,unique;not null"`
	LessonID             uint       `json:"lesson_id" gorm:"index:idx_progress_enrollment_lesson,unique;not null"`
	Status               string     `json:"status" gorm:"default:'NOT_STARTED'"` // NOT_STARTED, IN_PROGRESS, COMPLETED
	WatchDurationSeconds int        `json:"watch_duration_seconds" gorm:"default:0"`
	StartedAt            *time.Time `json:"started_at"`
	CompletedAt          *time.Time `json:"completed_at"`
}

func NewLessonProgress(enrollmentID, lessonID uint) *LessonProgress {
	return &LessonProgress{
		EnrollmentID: enrollmentID,
		LessonID:     lessonID,
		Status:       ProgressNotStarted,
	}
}

func (p *LessonProgress) MarkAsStarted() {
	if p.Status == ProgressNotStarted {
		now := time.Now()
		p.Status = ProgressInProgress
		p.StartedAt = &now
	}
}

// MarkAsCompleted is a guarded no-op when already completed. Completing a lesson
// that was never started backfills StartedAt to CompletedAt.
func (p *LessonProgress) MarkAsCompleted() {
	if p.Status != ProgressCompleted {
		now := time.Now()
		p.Status = ProgressCompleted
		p.CompletedAt = &now

		if p.StartedAt == nil {
			p.StartedAt = p.CompletedAt
		}
	}
}

// UpdateWatchTime records the latest watch position. The first update promotes
// NOT_STARTED to IN_PROGRESS.
func (p *LessonProgress) UpdateWatchTime(seconds int) error {
	if seconds < 0 {
		return apperrors.Validation("Watch duration cannot be negative!")
	}

	p.WatchDurationSeconds = seconds

	if p.Status == ProgressNotStarted {
		p.MarkAsStarted()
	}
	return nil
}

// CompletionPercentage derives the per-lesson percentage from watch time.
func (p *LessonProgress) CompletionPercentage(lessonDurationMinutes int) int {
	if p.Status == ProgressCompleted {
		return 100
	}
	if p.Status == ProgressNotStarted {
		return 0
	}
	if lessonDurationMinutes <= 0 {
		return 0
	}

	lessonDurationSeconds := float64(lessonDurationMinutes * 60)
	percentage := math.Min(float64(p.WatchDurationSeconds)/lessonDurationSeconds*100, 100)
	return int(math.Round(percentage))
}

func (p *LessonProgress) IsCompleted() bool {
	return p.Status == ProgressCompleted
}

func (p *LessonProgress) IsInProgress() bool {
	return p.Status == ProgressInProgress
}

func (p *LessonProgress) IsNotStarted() bool {
	return p.Status == ProgressNotStarted
}
