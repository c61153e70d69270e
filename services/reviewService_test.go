package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lms/apperrors"
	"lms/models"
	courseModels "lms/models/course"
)

type fakeReviewRepo struct {
	reviews map[uint]*models.Review
	nextID  uint
}

func (r *fakeReviewRepo) FindByID(id uint) (*models.Review, error) { return r.reviews[id], nil }
func (r *fakeReviewRepo) FindByCourseID(courseID uint, page, limit int) ([]models.Review, int64, error) {
	var out []models.Review
	for _, review := range r.reviews {
		if review.CourseID == courseID {
			out = append(out, *review)
		}
	}
	return out, int64(len(out)), nil
}
func (r *fakeReviewRepo) FindByUserAndCourse(userID, courseID uint) (*models.Review, error) {
	for _, review := range r.reviews {
		if review.UserID == userID && review.CourseID == courseID {
			return review, nil
		}
	}
	return nil, nil
}
func (r *fakeReviewRepo) AverageRating(courseID uint) (float64, error) {
	sum, count := 0, 0
	for _, review := range r.reviews {
		if review.CourseID == courseID {
			sum += review.Rating
			count++
		}
	}
	if count == 0 {
		return 0, nil
	}
	return float64(sum) / float64(count), nil
}
func (r *fakeReviewRepo) Create(review *models.Review) error {
	r.nextID++
	review.ID = r.nextID
	r.reviews[review.ID] = review
	return nil
}
func (r *fakeReviewRepo) Update(review *models.Review) error {
	r.reviews[review.ID] = review
	return nil
}

type reviewFixture struct {
	service     *ReviewService
	reviews     *fakeReviewRepo
	courses     *fakeCourseRepo
	enrollments *fakeEnrollmentRepo
}

func newReviewFixture(t *testing.T) *reviewFixture {
	t.Helper()
	f := &reviewFixture{
		reviews:     &fakeReviewRepo{reviews: map[uint]*models.Review{}},
		courses:     &fakeCourseRepo{courses: map[uint]*courseModels.Course{}},
		enrollments: &fakeEnrollmentRepo{enrollments: map[uint]*courseModels.Enrollment{}},
	}
	f.service = NewReviewService(f.reviews, f.courses, f.enrollments)

	c := testPublishedCourse(t, 10, 0)
	c.ID = 2
	f.courses.courses[2] = c

	// User 1 is enrolled, user 3 is not
	require.NoError(t, f.enrollments.Create(courseModels.NewEnrollment(1, 2, models.ZeroMoney())))

	return f
}

func TestCreateReviewRequiresEnrollment(t *testing.T) {
	f := newReviewFixture(t)

	_, err := f.service.CreateReview(3, 2, 5, "Great course")
	assert.Equal(t, apperrors.KindOwnership, apperrors.KindOf(err))

	review, err := f.service.CreateReview(1, 2, 5, "Great course")
	require.NoError(t, err)
	assert.Equal(t, 5, review.Rating)
}

func TestCreateReviewRejectsDuplicate(t *testing.T) {
	f := newReviewFixture(t)

	_, err := f.service.CreateReview(1, 2, 4, "Solid")
	require.NoError(t, err)

	_, err = f.service.CreateReview(1, 2, 5, "Changed my mind")
	assert.Equal(t, apperrors.KindConflict, apperrors.KindOf(err))
}

func TestCreateReviewUnknownCourse(t *testing.T) {
	f := newReviewFixture(t)

	_, err := f.service.CreateReview(1, 99, 4, "Solid")
	assert.Equal(t, apperrors.KindNotFound, apperrors.KindOf(err))
}

func TestUpdateReviewOwnerOnly(t *testing.T) {
	f := newReviewFixture(t)

	review, err := f.service.CreateReview(1, 2, 3, "Okay")
	require.NoError(t, err)

	newRating := 5
	_, err = f.service.UpdateReview(review.ID, 99, &newRating, nil)
	assert.Equal(t, apperrors.KindOwnership, apperrors.KindOf(err))

	updated, err := f.service.UpdateReview(review.ID, 1, &newRating, nil)
	require.NoError(t, err)
	assert.Equal(t, 5, updated.Rating)
}

func TestGetCourseReviewsAverage(t *testing.T) {
	f := newReviewFixture(t)
	require.NoError(t, f.enrollments.Create(courseModels.NewEnrollment(5, 2, models.ZeroMoney())))

	_, err := f.service.CreateReview(1, 2, 4, "Good")
	require.NoError(t, err)
	_, err = f.service.CreateReview(5, 2, 5, "Excellent")
	require.NoError(t, err)

	result, err := f.service.GetCourseReviews(2, 1, 10)
	require.NoError(t, err)

	assert.Equal(t, int64(2), result.Total)
	assert.InDelta(t, 4.5, result.AverageRating, 0.001)
}
