package course

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLessonProgressNotStarted(t *testing.T) {
	p := NewLessonProgress(1, 2)

	assert.True(t, p.IsNotStarted())
	assert.Nil(t, p.StartedAt)
	assert.Nil(t, p.CompletedAt)
}

func TestUpdateWatchTimeAutoStarts(t *testing.T) {
	p := NewLessonProgress(1, 2)

	require.NoError(t, p.UpdateWatchTime(90))

	assert.True(t, p.IsInProgress())
	assert.Equal(t, 90, p.WatchDurationSeconds)
	require.NotNil(t, p.StartedAt)
}

func TestUpdateWatchTimeRejectsNegative(t *testing.T) {
	p := NewLessonProgress(1, 2)

	assert.Error(t, p.UpdateWatchTime(-5))
	assert.True(t, p.IsNotStarted())
}

func TestMarkAsCompletedBackfillsStartedAt(t *testing.T) {
	p := NewLessonProgress(1, 2)

	// Completing without ever watching
	p.MarkAsCompleted()

	assert.True(t, p.IsCompleted())
	require.NotNil(t, p.CompletedAt)
	require.NotNil(t, p.StartedAt)
	assert.Equal(t, p.CompletedAt, p.StartedAt)
}

func TestMarkAsCompletedIsIdempotent(t *testing.T) {
	p := NewLessonProgress(1, 2)
	p.MarkAsCompleted()
	first := *p.CompletedAt

	p.MarkAsCompleted()
	assert.Equal(t, first, *p.CompletedAt)
}

func TestCompletionPercentage(t *testing.T) {
	p := NewLessonProgress(1, 2)

	// Not started
	assert.Equal(t, 0, p.CompletionPercentage(10))

	// Halfway through a 10 minute lesson
	require.NoError(t, p.UpdateWatchTime(300))
	assert.Equal(t, 50, p.CompletionPercentage(10))

	// Watch time past the duration caps at 100
	require.NoError(t, p.UpdateWatchTime(900))
	assert.Equal(t, 100, p.CompletionPercentage(10))

	// Unknown duration yields 0 instead of dividing by zero
	assert.Equal(t, 0, p.CompletionPercentage(0))

	// Completed always reads 100
	p.MarkAsCompleted()
	assert.Equal(t, 100, p.CompletionPercentage(0))
}
