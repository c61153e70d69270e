package repository

import (
	"errors"

	"gorm.io/gorm"

	"lms/models"
)

type gormPaymentRepository struct {
	db *gorm.DB
}

func NewPaymentRepository(db *gorm.DB) PaymentRepository {
	return &gormPaymentRepository{db: db}
}

func (r *gormPaymentRepository) WithTx(tx *gorm.DB) PaymentRepository {
	return &gormPaymentRepository{db: tx}
}

func (r *gormPaymentRepository) FindByOrderID(orderID string) (*models.Payment, error) {
	var payment models.Payment
	if err := r.db.Where("order_id = ?", orderID).First(&payment).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &payment, nil
}

func (r *gormPaymentRepository) FindByEnrollmentID(enrollmentID uint) ([]models.Payment, error) {
	var payments []models.Payment
	if err := r.db.Where("enrollment_id = ?", enrollmentID).Order("created_at desc").Find(&payments).Error; err != nil {
		return nil, err
	}
	return payments, nil
}

func (r *gormPaymentRepository) Create(p *models.Payment) error {
	return r.db.Create(p).Error
}

func (r *gormPaymentRepository) Update(p *models.Payment) error {
	return r.db.Save(p).Error
}
