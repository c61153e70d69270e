package course

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lms/models"
)

func newTestEnrollment(t *testing.T) *Enrollment {
	t.Helper()
	price, err := models.NewMoney(49.99)
	require.NoError(t, err)
	return NewEnrollment(1, 2, price)
}

func TestNewEnrollmentStartsActive(t *testing.T) {
	e := newTestEnrollment(t)

	assert.Equal(t, EnrollmentActive, e.Status)
	assert.Equal(t, 0, e.ProgressPercentage)
	assert.Equal(t, 49.99, e.AmountPaid)
	assert.False(t, e.EnrolledAt.IsZero())
	assert.Nil(t, e.CompletedAt)
}

func TestUpdateProgressBounds(t *testing.T) {
	e := newTestEnrollment(t)

	assert.Error(t, e.UpdateProgress(-1))
	assert.Error(t, e.UpdateProgress(101))

	require.NoError(t, e.UpdateProgress(50))
	assert.Equal(t, 50, e.ProgressPercentage)
	assert.True(t, e.IsActive())
}

func TestUpdateProgressCompletesAtHundred(t *testing.T) {
	e := newTestEnrollment(t)

	require.NoError(t, e.UpdateProgress(100))

	assert.True(t, e.IsCompleted())
	assert.Equal(t, 100, e.ProgressPercentage)
	require.NotNil(t, e.CompletedAt)
}

func TestCompleteRequiresActive(t *testing.T) {
	e := newTestEnrollment(t)
	require.NoError(t, e.Complete())

	// Completing twice fails
	assert.Error(t, e.Complete())

	cancelled := newTestEnrollment(t)
	require.NoError(t, cancelled.Cancel())
	assert.Error(t, cancelled.Complete())
}

func TestCancelFromAnyStateExceptCancelled(t *testing.T) {
	active := newTestEnrollment(t)
	require.NoError(t, active.Cancel())
	assert.True(t, active.IsCancelled())

	// A completed enrollment can still be cancelled
	completed := newTestEnrollment(t)
	require.NoError(t, completed.Complete())
	require.NoError(t, completed.Cancel())
	assert.True(t, completed.IsCancelled())

	// But not twice
	assert.Error(t, active.Cancel())
}

func TestPullEventsCarriesPersistedID(t *testing.T) {
	e := newTestEnrollment(t)
	e.ID = 77

	events := e.PullEvents()
	require.Len(t, events, 1)

	enrolled, ok := events[0].(models.UserEnrolled)
	require.True(t, ok)
	assert.Equal(t, uint(77), enrolled.EnrollmentID)
	assert.Equal(t, uint(1), enrolled.UserID)
	assert.Equal(t, uint(2), enrolled.CourseID)

	// Events are drained after the first pull
	assert.Empty(t, e.PullEvents())
}
