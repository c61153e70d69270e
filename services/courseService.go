package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"lms/apperrors"
	"lms/models"
	courseModels "lms/models/course"
	"lms/repository"
)

const (
	courseListCacheKey     = "courses:published:page:%d:limit:%d"
	courseListCachePattern = "courses:published:*"
	courseListCacheTTL     = 5 * time.Minute
)

type CreateCourseCommand struct {
	CategoryID    uint
	Title         string
	Description   string
	Price         float64
	Thumbnail     string
	DurationHours int
	Level         string
}

type UpdateCourseCommand struct {
	Title         *string
	Description   *string
	Thumbnail     *string
	DurationHours *int
}

type LessonCommand struct {
	Title           string
	Description     string
	VideoURL        string
	Content         string
	OrderNumber     int
	DurationMinutes int
	IsPreview       bool
}

type UpdateLessonCommand struct {
	Title           *string
	Description     *string
	VideoURL        *string
	Content         *string
	DurationMinutes *int
	IsPreview       *bool
}

// CourseList is the cached read model for the public catalog.
type CourseList struct {
	Courses []courseModels.Course `json:"courses"`
	Total   int64                 `json:"total"`
	Page    int                   `json:"page"`
	Limit   int                   `json:"limit"`
}

// CourseDetail bundles a course with its lessons and review summary.
type CourseDetail struct {
	Course        *courseModels.Course  `json:"course"`
	Lessons       []courseModels.Lesson `json:"lessons"`
	AverageRating float64               `json:"average_rating"`
}

// CourseService manages the catalog: courses, lessons and categories.
type CourseService struct {
	courses    repository.CourseRepository
	lessons    repository.LessonRepository
	categories repository.CategoryRepository
	reviews    repository.ReviewRepository
	users      repository.UserRepository
	events     EventDispatcher
	cache      Cache
}

func NewCourseService(
	courses repository.CourseRepository,
	lessons repository.LessonRepository,
	categories repository.CategoryRepository,
	reviews repository.ReviewRepository,
	users repository.UserRepository,
	events EventDispatcher,
	cache Cache,
) *CourseService {
	return &CourseService{
		courses:    courses,
		lessons:    lessons,
		categories: categories,
		reviews:    reviews,
		users:      users,
		events:     events,
		cache:      cache,
	}
}

func (s *CourseService) CreateCourse(instructorID uint, cmd CreateCourseCommand) (*courseModels.Course, error) {
	instructor, err := s.users.FindByID(instructorID)
	if err != nil {
		return nil, err
	}
	if instructor == nil {
		return nil, apperrors.NotFound("User not found!")
	}
	if !instructor.CanCreateCourse() {
		return nil, apperrors.Ownership("Only active instructors can create courses!")
	}

	category, err := s.categories.FindByID(cmd.CategoryID)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, apperrors.NotFound("Category not found!")
	}

	price, err := models.NewMoney(cmd.Price)
	if err != nil {
		return nil, err
	}

	c, err := courseModels.NewCourse(instructorID, cmd.CategoryID, cmd.Title, cmd.Description, price, cmd.DurationHours, cmd.Level)
	if err != nil {
		return nil, err
	}
	c.Thumbnail = cmd.Thumbnail

	if err := s.courses.Create(c); err != nil {
		return nil, err
	}

	s.invalidateCatalogCache()
	return c, nil
}

func (s *CourseService) UpdateCourse(courseID, instructorID uint, cmd UpdateCourseCommand) (*courseModels.Course, error) {
	c, err := s.ownedCourse(courseID, instructorID)
	if err != nil {
		return nil, err
	}

	if err := c.Update(cmd.Title, cmd.Description, cmd.Thumbnail, cmd.DurationHours); err != nil {
		return nil, err
	}

	if err := s.courses.Update(c); err != nil {
		return nil, err
	}

	s.invalidateCatalogCache()
	return c, nil
}

// PublishCourse makes a draft course enrollable. A course without lessons
// cannot be published.
func (s *CourseService) PublishCourse(courseID, instructorID uint) (*courseModels.Course, error) {
	c, err := s.ownedCourse(courseID, instructorID)
	if err != nil {
		return nil, err
	}

	lessons, err := s.courses.GetCourseLessons(courseID)
	if err != nil {
		return nil, err
	}
	if len(lessons) == 0 {
		return nil, apperrors.Validation("Course needs at least one lesson before publishing!")
	}

	if err := c.Publish(); err != nil {
		return nil, err
	}

	if err := s.courses.Update(c); err != nil {
		return nil, err
	}

	for _, event := range c.PullEvents() {
		s.events.Dispatch(event)
	}

	s.invalidateCatalogCache()
	return c, nil
}

func (s *CourseService) ArchiveCourse(courseID, instructorID uint) (*courseModels.Course, error) {
	c, err := s.ownedCourse(courseID, instructorID)
	if err != nil {
		return nil, err
	}

	if err := c.Archive(); err != nil {
		return nil, err
	}

	if err := s.courses.Update(c); err != nil {
		return nil, err
	}

	s.invalidateCatalogCache()
	return c, nil
}

func (s *CourseService) UnarchiveCourse(courseID, instructorID uint) (*courseModels.Course, error) {
	c, err := s.ownedCourse(courseID, instructorID)
	if err != nil {
		return nil, err
	}

	if err := c.Unarchive(); err != nil {
		return nil, err
	}

	if err := s.courses.Update(c); err != nil {
		return nil, err
	}

	s.invalidateCatalogCache()
	return c, nil
}

func (s *CourseService) GetCourse(courseID uint) (*CourseDetail, error) {
	c, err := s.courses.FindByID(courseID)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, apperrors.NotFound("Course not found!")
	}

	lessons, err := s.courses.GetCourseLessons(courseID)
	if err != nil {
		return nil, err
	}

	average, err := s.reviews.AverageRating(courseID)
	if err != nil {
		return nil, err
	}

	return &CourseDetail{Course: c, Lessons: lessons, AverageRating: average}, nil
}

// ListPublishedCourses serves the public catalog, cached per page.
func (s *CourseService) ListPublishedCourses(page, limit int) (*CourseList, error) {
	key := fmt.Sprintf(courseListCacheKey, page, limit)

	var cached CourseList
	if hit, err := s.cache.Get(context.Background(), key, &cached); err == nil && hit {
		return &cached, nil
	}

	courses, total, err := s.courses.FindPublished(page, limit)
	if err != nil {
		return nil, err
	}

	list := &CourseList{Courses: courses, Total: total, Page: page, Limit: limit}

	if err := s.cache.Set(context.Background(), key, list, courseListCacheTTL); err != nil {
		log.Printf("[CATALOG] failed to cache course list: %v", err)
	}

	return list, nil
}

func (s *CourseService) GetInstructorCourses(instructorID uint) ([]courseModels.Course, error) {
	return s.courses.FindByInstructor(instructorID)
}

// AddLesson appends a lesson to a draft course.
func (s *CourseService) AddLesson(courseID, instructorID uint, cmd LessonCommand) (*courseModels.Lesson, error) {
	c, err := s.ownedCourse(courseID, instructorID)
	if err != nil {
		return nil, err
	}
	if c.IsPublished() {
		return nil, apperrors.Validation("Cannot update published course!")
	}

	lesson, err := courseModels.NewLesson(courseID, cmd.Title, cmd.Description, cmd.VideoURL, cmd.Content, cmd.OrderNumber, cmd.DurationMinutes, cmd.IsPreview)
	if err != nil {
		return nil, err
	}

	if err := s.lessons.Create(lesson); err != nil {
		return nil, err
	}
	return lesson, nil
}

func (s *CourseService) UpdateLesson(lessonID, instructorID uint, cmd UpdateLessonCommand) (*courseModels.Lesson, error) {
	lesson, err := s.lessons.FindByID(lessonID)
	if err != nil {
		return nil, err
	}
	if lesson == nil {
		return nil, apperrors.NotFound("Lesson not found!")
	}

	c, err := s.ownedCourse(lesson.CourseID, instructorID)
	if err != nil {
		return nil, err
	}
	if c.IsPublished() {
		return nil, apperrors.Validation("Cannot update published course!")
	}

	if err := lesson.Update(cmd.Title, cmd.Description, cmd.VideoURL, cmd.Content, cmd.DurationMinutes, cmd.IsPreview); err != nil {
		return nil, err
	}

	if err := s.lessons.Update(lesson); err != nil {
		return nil, err
	}
	return lesson, nil
}

func (s *CourseService) DeleteLesson(lessonID, instructorID uint) error {
	lesson, err := s.lessons.FindByID(lessonID)
	if err != nil {
		return err
	}
	if lesson == nil {
		return apperrors.NotFound("Lesson not found!")
	}

	c, err := s.ownedCourse(lesson.CourseID, instructorID)
	if err != nil {
		return err
	}
	if c.IsPublished() {
		return apperrors.Validation("Cannot update published course!")
	}

	return s.lessons.Delete(lessonID)
}

func (s *CourseService) GetCourseLessons(courseID uint) ([]courseModels.Lesson, error) {
	c, err := s.courses.FindByID(courseID)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, apperrors.NotFound("Course not found!")
	}
	return s.courses.GetCourseLessons(courseID)
}

func (s *CourseService) CreateCategory(name, description string) (*models.Category, error) {
	category, err := models.NewCategory(name, description)
	if err != nil {
		return nil, err
	}

	existing, err := s.categories.FindBySlug(category.Slug)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperrors.Conflict("Category already exists!")
	}

	if err := s.categories.Create(category); err != nil {
		return nil, err
	}
	return category, nil
}

func (s *CourseService) UpdateCategory(categoryID uint, name, description *string) (*models.Category, error) {
	category, err := s.categories.FindByID(categoryID)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, apperrors.NotFound("Category not found!")
	}

	if err := category.Rename(name, description); err != nil {
		return nil, err
	}

	if err := s.categories.Update(category); err != nil {
		return nil, err
	}
	return category, nil
}

func (s *CourseService) ListCategories() ([]models.Category, error) {
	return s.categories.FindAll()
}

// ownedCourse loads a course and checks the instructor owns it. Admins may
// manage any course.
func (s *CourseService) ownedCourse(courseID, instructorID uint) (*courseModels.Course, error) {
	c, err := s.courses.FindByID(courseID)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, apperrors.NotFound("Course not found!")
	}

	if c.InstructorID == instructorID {
		return c, nil
	}

	user, err := s.users.FindByID(instructorID)
	if err != nil {
		return nil, err
	}
	if user != nil && user.IsAdmin() {
		return c, nil
	}

	return nil, apperrors.Ownership("Access denied!")
}

// invalidateCatalogCache drops every cached catalog page. Best-effort; a read
// racing the invalidation can still observe a stale page until the TTL.
func (s *CourseService) invalidateCatalogCache() {
	if err := s.cache.InvalidatePattern(context.Background(), courseListCachePattern); err != nil {
		log.Printf("[CATALOG] failed to invalidate course list cache: %v", err)
	}
}
