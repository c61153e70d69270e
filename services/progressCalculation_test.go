package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	courseModels "lms/models/course"
)

func progressRows(completed, total int) []courseModels.LessonProgress {
	rows := make([]courseModels.LessonProgress, 0, total)
	for i := 0; i < total; i++ {
		p := courseModels.NewLessonProgress(1, uint(i+1))
		if i < completed {
			p.MarkAsCompleted()
		}
		rows = append(rows, *p)
	}
	return rows
}

func TestCalculateCourseProgress(t *testing.T) {
	tests := []struct {
		name      string
		completed int
		total     int
		want      int
	}{
		{"no lessons", 0, 0, 0},
		{"none completed", 0, 4, 0},
		{"three of four", 3, 4, 75},
		{"one of three rounds up", 1, 3, 33},
		{"two of three rounds up", 2, 3, 67},
		{"all completed", 4, 4, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalculateCourseProgress(progressRows(tt.completed, tt.total), tt.total)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestShouldCompleteEnrollment(t *testing.T) {
	assert.False(t, ShouldCompleteEnrollment(99))
	assert.True(t, ShouldCompleteEnrollment(100))
}
