package services

import (
	"math"

	courseModels "lms/models/course"
)

// CalculateCourseProgress derives the aggregate completion percentage for an
// enrollment. Only fully completed lessons count; partial watch time shows up
// at the per-lesson level, not here.
func CalculateCourseProgress(progresses []courseModels.LessonProgress, totalLessons int) int {
	if totalLessons == 0 {
		return 0
	}

	completedLessons := 0
	for _, progress := range progresses {
		if progress.IsCompleted() {
			completedLessons++
		}
	}

	return int(math.Round(float64(completedLessons) / float64(totalLessons) * 100))
}

// ShouldCompleteEnrollment reports whether the given percentage completes the
// enrollment.
func ShouldCompleteEnrollment(progressPercentage int) bool {
	return progressPercentage >= 100
}
