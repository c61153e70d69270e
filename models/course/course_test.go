package course

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lms/models"
)

func newTestCourse(t *testing.T, amount float64) *Course {
	t.Helper()
	price, err := models.NewMoney(amount)
	require.NoError(t, err)
	c, err := NewCourse(10, 1, "Intro to Go", "Learn Go from scratch", price, 8, LevelBeginner)
	require.NoError(t, err)
	return c
}

func TestNewCourseValidation(t *testing.T) {
	price := models.ZeroMoney()

	_, err := NewCourse(10, 1, "", "desc", price, 8, LevelBeginner)
	assert.Error(t, err)

	_, err = NewCourse(10, 1, "Title", "desc", price, 0, LevelBeginner)
	assert.Error(t, err)

	_, err = NewCourse(10, 1, "Title", "desc", price, 8, "EXPERT")
	assert.Error(t, err)
}

func TestPublishLifecycle(t *testing.T) {
	c := newTestCourse(t, 0)
	c.ID = 5
	assert.True(t, c.IsDraft())
	assert.False(t, c.CanEnroll())

	require.NoError(t, c.Publish())
	assert.True(t, c.IsPublished())
	assert.True(t, c.CanEnroll())

	events := c.PullEvents()
	require.Len(t, events, 1)
	published, ok := events[0].(models.CoursePublished)
	require.True(t, ok)
	assert.Equal(t, uint(5), published.CourseID)
	assert.Equal(t, "Intro to Go", published.Title)

	// Publishing twice fails
	assert.Error(t, c.Publish())
}

func TestArchiveAndUnarchive(t *testing.T) {
	c := newTestCourse(t, 0)
	require.NoError(t, c.Publish())

	require.NoError(t, c.Archive())
	assert.True(t, c.IsArchived())
	assert.False(t, c.CanEnroll())

	require.NoError(t, c.Unarchive())
	assert.True(t, c.IsPublished())

	// A draft cannot be archived
	draft := newTestCourse(t, 0)
	assert.Error(t, draft.Archive())
}

func TestUpdateFrozenWhenPublished(t *testing.T) {
	c := newTestCourse(t, 0)
	require.NoError(t, c.Publish())

	newTitle := "Renamed"
	assert.Error(t, c.Update(&newTitle, nil, nil, nil))

	draft := newTestCourse(t, 0)
	require.NoError(t, draft.Update(&newTitle, nil, nil, nil))
	assert.Equal(t, "Renamed", draft.Title)
}

func TestIsFree(t *testing.T) {
	assert.True(t, newTestCourse(t, 0).IsFree())
	assert.False(t, newTestCourse(t, 49.99).IsFree())
}
