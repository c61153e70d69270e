package models

import (
	"strings"

	"gorm.io/gorm"

	"lms/apperrors"
)

// Review is one student's rating of a course. One review per (user, course) pair.
type Review struct {
	gorm.Model
	UserID   uint   `json:"user_id" gorm:"index:idx_review_user_course,unique;not null"`
	CourseID uint   `json:"course_id" gorm:"index:idx_review_user_course,unique;not null"`
	Rating   int    `json:"rating" gorm:"not null"`
	Comment  string `json:"comment" gorm:"default:''"`
}

func NewReview(userID, courseID uint, rating int, comment string) (*Review, error) {
	if !isValidRating(rating) {
		return nil, apperrors.Validation("Rating must be between 1 and 5!")
	}
	return &Review{
		UserID:   userID,
		CourseID: courseID,
		Rating:   rating,
		Comment:  strings.TrimSpace(comment),
	}, nil
}

func isValidRating(rating int) bool {
	return rating >= 1 && rating <= 5
}

func (r *Review) Update(rating *int, comment *string) error {
	if rating != nil {
		if !isValidRating(*rating) {
			return apperrors.Validation("Rating must be between 1 and 5!")
		}
		r.Rating = *rating
	}
	if comment != nil {
		r.Comment = strings.TrimSpace(*comment)
	}
	return nil
}

func (r *Review) CanEdit(userID uint) bool {
	return r.UserID == userID
}
