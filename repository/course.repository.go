package repository

import (
	"errors"

	"gorm.io/gorm"

	courseModels "lms/models/course"
)

type gormCourseRepository struct {
	db *gorm.DB
}

func NewCourseRepository(db *gorm.DB) CourseRepository {
	return &gormCourseRepository{db: db}
}

func (r *gormCourseRepository) FindByID(id uint) (*courseModels.Course, error) {
	var c courseModels.Course
	if err := r.db.Where("id = ?", id).First(&c).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}

func (r *gormCourseRepository) FindPublished(page, limit int) ([]courseModels.Course, int64, error) {
	offset := (page - 1) * limit

	query := r.db.Model(&courseModels.Course{}).Where("status = ?", courseModels.StatusPublished)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var courses []courseModels.Course
	if err := query.Offset(offset).Limit(limit).Order("created_at desc").Find(&courses).Error; err != nil {
		return nil, 0, err
	}
	return courses, total, nil
}

func (r *gormCourseRepository) FindByInstructor(instructorID uint) ([]courseModels.Course, error) {
	var courses []courseModels.Course
	if err := r.db.Where("instructor_id = ?", instructorID).Order("created_at desc").Find(&courses).Error; err != nil {
		return nil, err
	}
	return courses, nil
}

func (r *gormCourseRepository) GetCourseLessons(courseID uint) ([]courseModels.Lesson, error) {
	var lessons []courseModels.Lesson
	if err := r.db.Where("course_id = ?", courseID).Order("order_number asc").Find(&lessons).Error; err != nil {
		return nil, err
	}
	return lessons, nil
}

func (r *gormCourseRepository) Create(c *courseModels.Course) error {
	return r.db.Create(c).Error
}

func (r *gormCourseRepository) Update(c *courseModels.Course) error {
	return r.db.Save(c).Error
}

type gormLessonRepository struct {
	db *gorm.DB
}

func NewLessonRepository(db *gorm.DB) LessonRepository {
	return &gormLessonRepository{db: db}
}

func (r *gormLessonRepository) FindByID(id uint) (*courseModels.Lesson, error) {
	var lesson courseModels.Lesson
	if err := r.db.Where("id = ?", id).First(&lesson).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &lesson, nil
}

func (r *gormLessonRepository) FindByCourseID(courseID uint) ([]courseModels.Lesson, error) {
	var lessons []courseModels.Lesson
	if err := r.db.Where("course_id = ?", courseID).Order("order_number asc").Find(&lessons).Error; err != nil {
		return nil, err
	}
	return lessons, nil
}

func (r *gormLessonRepository) Create(l *courseModels.Lesson) error {
	return r.db.Create(l).Error
}

func (r *gormLessonRepository) Update(l *courseModels.Lesson) error {
	return r.db.Save(l).Error
}

func (r *gormLessonRepository) Delete(id uint) error {
	return r.db.Delete(&courseModels.Lesson{}, id).Error
}
