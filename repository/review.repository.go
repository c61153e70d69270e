package repository

import (
	"errors"

	"gorm.io/gorm"

	"lms/models"
)

type gormReviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) ReviewRepository {
	return &gormReviewRepository{db: db}
}

func (r *gormReviewRepository) FindByID(id uint) (*models.Review, error) {
	var review models.Review
	if err := r.db.Where("id = ?", id).First(&review).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &review, nil
}

func (r *gormReviewRepository) FindByCourseID(courseID uint, page, limit int) ([]models.Review, int64, error) {
	offset := (page - 1) * limit

	query := r.db.Model(&models.Review{}).Where("course_id = ?", courseID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var reviews []models.Review
	if err := query.Offset(offset).Limit(limit).Order("created_at desc").Find(&reviews).Error; err != nil {
		return nil, 0, err
	}
	return reviews, total, nil
}

func (r *gormReviewRepository) FindByUserAndCourse(userID, courseID uint) (*models.Review, error) {
	var review models.Review
	if err := r.db.Where("user_id = ? AND course_id = ?", userID, courseID).First(&review).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &review, nil
}

func (r *gormReviewRepository) AverageRating(courseID uint) (float64, error) {
	var avg *float64
	err := r.db.Model(&models.Review{}).
		Where("course_id = ?", courseID).
		Select("AVG(rating)").
		Scan(&avg).Error
	if err != nil {
		return 0, err
	}
	if avg == nil {
		return 0, nil
	}
	return *avg, nil
}

func (r *gormReviewRepository) Create(review *models.Review) error {
	return r.db.Create(review).Error
}

func (r *gormReviewRepository) Update(review *models.Review) error {
	return r.db.Save(review).Error
}
