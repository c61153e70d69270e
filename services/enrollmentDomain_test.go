package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lms/models"
	courseModels "lms/models/course"
)

func testUser(t *testing.T, id uint, role string) *models.User {
	t.Helper()
	u, err := models.NewUser("user@example.com", "Alex", "Kim", "", role, "hash")
	require.NoError(t, err)
	u.ID = id
	return u
}

func testPublishedCourse(t *testing.T, instructorID uint, amount float64) *courseModels.Course {
	t.Helper()
	price, err := models.NewMoney(amount)
	require.NoError(t, err)
	c, err := courseModels.NewCourse(instructorID, 1, "Intro to Go", "Learn Go from scratch", price, 8, courseModels.LevelBeginner)
	require.NoError(t, err)
	require.NoError(t, c.Publish())
	c.PullEvents()
	return c
}

func TestCanUserEnrollCourse(t *testing.T) {
	student := testUser(t, 1, models.RoleStudent)
	instructor := testUser(t, 10, models.RoleInstructor)
	c := testPublishedCourse(t, 10, 49.99)

	assert.True(t, CanUserEnrollCourse(student, c))

	// Instructors never enroll in their own course
	assert.False(t, CanUserEnrollCourse(instructor, c))

	// But may enroll in someone else's
	other := testUser(t, 11, models.RoleInstructor)
	assert.True(t, CanUserEnrollCourse(other, c))

	// Deactivated accounts cannot enroll
	student.Deactivate()
	assert.False(t, CanUserEnrollCourse(student, c))

	// Drafts are not enrollable
	price := models.ZeroMoney()
	draft, err := courseModels.NewCourse(10, 1, "Draft", "Not published yet", price, 4, courseModels.LevelBeginner)
	require.NoError(t, err)
	active := testUser(t, 2, models.RoleStudent)
	assert.False(t, CanUserEnrollCourse(active, draft))
}

func TestCalculateEnrollmentPrice(t *testing.T) {
	c := testPublishedCourse(t, 10, 49.99)

	student := testUser(t, 1, models.RoleStudent)
	assert.Equal(t, 49.99, CalculateEnrollmentPrice(c, student).Value())

	// Instructor previewing another instructor's course pays nothing
	otherInstructor := testUser(t, 11, models.RoleInstructor)
	assert.True(t, CalculateEnrollmentPrice(c, otherInstructor).IsFree())

	// The course's own instructor would pay full price (enrollment is blocked
	// upstream anyway)
	owner := testUser(t, 10, models.RoleInstructor)
	assert.Equal(t, 49.99, CalculateEnrollmentPrice(c, owner).Value())
}
