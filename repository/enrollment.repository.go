package repository

import (
	"errors"

	"gorm.io/gorm"

	courseModels "lms/models/course"
)

type gormEnrollmentRepository struct {
	db *gorm.DB
}

func NewEnrollmentRepository(db *gorm.DB) EnrollmentRepository {
	return &gormEnrollmentRepository{db: db}
}

func (r *gormEnrollmentRepository) WithTx(tx *gorm.DB) EnrollmentRepository {
	return &gormEnrollmentRepository{db: tx}
}

func (r *gormEnrollmentRepository) FindByID(id uint) (*courseModels.Enrollment, error) {
	var enrollment courseModels.Enrollment
	if err := r.db.Where("id = ?", id).First(&enrollment).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &enrollment, nil
}

func (r *gormEnrollmentRepository) FindByUserID(userID uint) ([]courseModels.Enrollment, error) {
	var enrollments []courseModels.Enrollment
	if err := r.db.Where("user_id = ?", userID).Order("created_at desc").Find(&enrollments).Error; err != nil {
		return nil, err
	}
	return enrollments, nil
}

func (r *gormEnrollmentRepository) FindByUserAndCourse(userID, courseID uint) (*courseModels.Enrollment, error) {
	var enrollment courseModels.Enrollment
	if err := r.db.Where("user_id = ? AND course_id = ?", userID, courseID).First(&enrollment).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &enrollment, nil
}

func (r *gormEnrollmentRepository) Create(e *courseModels.Enrollment) error {
	return r.db.Create(e).Error
}

func (r *gormEnrollmentRepository) Update(e *courseModels.Enrollment) error {
	return r.db.Save(e).Error
}

func (r *gormEnrollmentRepository) Delete(id uint) error {
	return r.db.Delete(&courseModels.Enrollment{}, id).Error
}

type gormLessonProgressRepository struct {
	db *gorm.DB
}

func NewLessonProgressRepository(db *gorm.DB) LessonProgressRepository {
	return &gormLessonProgressRepository{db: db}
}

func (r *gormLessonProgressRepository) WithTx(tx *gorm.DB) LessonProgressRepository {
	return &gormLessonProgressRepository{db: tx}
}

func (r *gormLessonProgressRepository) FindByEnrollmentID(enrollmentID uint) ([]courseModels.LessonProgress, error) {
	var progresses []courseModels.LessonProgress
	if err := r.db.Where("enrollment_id = ?", enrollmentID).Order("lesson_id asc").Find(&progresses).Error; err != nil {
		return nil, err
	}
	return progresses, nil
}

func (r *gormLessonProgressRepository) FindByEnrollmentAndLesson(enrollmentID, lessonID uint) (*courseModels.LessonProgress, error) {
	var progress courseModels.LessonProgress
	if err := r.db.Where("enrollment_id = ? AND lesson_id = ?", enrollmentID, lessonID).First(&progress).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &progress, nil
}

func (r *gormLessonProgressRepository) Create(p *courseModels.LessonProgress) error {
	return r.db.Create(p).Error
}

func (r *gormLessonProgressRepository) Update(p *courseModels.LessonProgress) error {
	return r.db.Save(p).Error
}
