package repository

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"lms/models"
)

type gormSessionRepository struct {
	db *gorm.DB
}

func NewSessionRepository(db *gorm.DB) SessionRepository {
	return &gormSessionRepository{db: db}
}

func (r *gormSessionRepository) FindByJTI(jti string) (*models.Session, error) {
	var session models.Session
	if err := r.db.Where("jti = ?", jti).First(&session).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &session, nil
}

func (r *gormSessionRepository) FindByUserID(userID uint) ([]models.Session, error) {
	var sessions []models.Session
	if err := r.db.Where("user_id = ?", userID).Order("created_at desc").Find(&sessions).Error; err != nil {
		return nil, err
	}
	return sessions, nil
}

func (r *gormSessionRepository) Create(s *models.Session) error {
	return r.db.Create(s).Error
}

func (r *gormSessionRepository) Update(s *models.Session) error {
	return r.db.Save(s).Error
}

func (r *gormSessionRepository) DeleteExpired(before time.Time) (int64, error) {
	result := r.db.Where("expires_at < ?", before).Delete(&models.Session{})
	return result.RowsAffected, result.Error
}
