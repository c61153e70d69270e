package services

import (
	"lms/apperrors"
	"lms/models"
	"lms/repository"
)

// CourseReviews is the read model for a course's review listing.
type CourseReviews struct {
	Reviews       []models.Review `json:"reviews"`
	AverageRating float64         `json:"average_rating"`
	Total         int64           `json:"total"`
	Page          int             `json:"page"`
	Limit         int             `json:"limit"`
}

// ReviewService guards who may review a course and keeps one review per
// (user, course) pair.
type ReviewService struct {
	reviews     repository.ReviewRepository
	courses     repository.CourseRepository
	enrollments repository.EnrollmentRepository
}

func NewReviewService(reviews repository.ReviewRepository, courses repository.CourseRepository, enrollments repository.EnrollmentRepository) *ReviewService {
	return &ReviewService{reviews: reviews, courses: courses, enrollments: enrollments}
}

func (s *ReviewService) CreateReview(userID, courseID uint, rating int, comment string) (*models.Review, error) {
	c, err := s.courses.FindByID(courseID)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, apperrors.NotFound("Course not found!")
	}

	enrollment, err := s.enrollments.FindByUserAndCourse(userID, courseID)
	if err != nil {
		return nil, err
	}
	if enrollment == nil {
		return nil, apperrors.Ownership("You must be enrolled to review this course!")
	}

	existing, err := s.reviews.FindByUserAndCourse(userID, courseID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperrors.Conflict("You have already reviewed this course!")
	}

	review, err := models.NewReview(userID, courseID, rating, comment)
	if err != nil {
		return nil, err
	}

	if err := s.reviews.Create(review); err != nil {
		return nil, err
	}
	return review, nil
}

func (s *ReviewService) UpdateReview(reviewID, userID uint, rating *int, comment *string) (*models.Review, error) {
	review, err := s.reviews.FindByID(reviewID)
	if err != nil {
		return nil, err
	}
	if review == nil {
		return nil, apperrors.NotFound("Review not found!")
	}
	if !review.CanEdit(userID) {
		return nil, apperrors.Ownership("Access denied!")
	}

	if err := review.Update(rating, comment); err != nil {
		return nil, err
	}

	if err := s.reviews.Update(review); err != nil {
		return nil, err
	}
	return review, nil
}

func (s *ReviewService) GetCourseReviews(courseID uint, page, limit int) (*CourseReviews, error) {
	reviews, total, err := s.reviews.FindByCourseID(courseID, page, limit)
	if err != nil {
		return nil, err
	}

	average, err := s.reviews.AverageRating(courseID)
	if err != nil {
		return nil, err
	}

	return &CourseReviews{
		Reviews:       reviews,
		AverageRating: average,
		Total:         total,
		Page:          page,
		Limit:         limit,
	}, nil
}
