package course

import (
	"strings"

	"gorm.io/gorm"

	"lms/apperrors"
	"lms/models"
)

const (
	StatusDraft     = "DRAFT"
	StatusPublished = "PUBLISHED"
	StatusArchived  = "ARCHIVED"

	LevelBeginner     = "BEGINNER"
	LevelIntermediate = "INTERMEDIATE"
	LevelAdvanced     = "ADVANCED"
)

// Course represents a learning course
type Course struct {
	gorm.Model
	InstructorID  uint    `json:"instructor_id" gorm:"index;not null"`
	CategoryID    uint    `json:"category_id" gorm:"index;not null"`
	Title         string  `json:"title" gorm:"not null"`
	Description   string  `json:"description" gorm:"default:''"`
	Price         float64 `json:"price" gorm:"not null;default:0"`
	Thumbnail     string  `json:"thumbnail" gorm:"default:''"`
	Status        string  `json:"status" gorm:"default:'DRAFT'"` // DRAFT, PUBLISHED, ARCHIVED
	DurationHours int     `json:"duration_hours" gorm:"default:0"`
	Level         string  `json:"level" gorm:"default:'BEGINNER'"` // BEGINNER, INTERMEDIATE, ADVANCED

	events []models.DomainEvent `gorm:"-" json:"-"`
}

func NewCourse(instructorID, categoryID uint, title, description string, price models.Money, durationHours int, level string) (*Course, error) {
	if strings.TrimSpace(title) == "" {
		return nil, apperrors.Validation("Course title is required!")
	}
	if durationHours <= 0 {
		return nil, apperrors.Validation("Course duration must be positive!")
	}
	if level != LevelBeginner && level != LevelIntermediate && level != LevelAdvanced {
		return nil, apperrors.Validation("Invalid course level!")
	}

	return &Course{
		InstructorID:  instructorID,
		CategoryID:    categoryID,
		Title:         strings.TrimSpace(title),
		Description:   strings.TrimSpace(description),
		Price:         price.Value(),
		Status:        StatusDraft,
		DurationHours: durationHours,
		Level:         level,
	}, nil
}

// Publish transitions a draft course to published and raises course.published.
func (c *Course) Publish() error {
	if c.Status != StatusDraft {
		return apperrors.Validation("Only draft courses can be published!")
	}
	c.Status = StatusPublished
	c.events = append(c.events, models.NewCoursePublished(c.ID, c.Title, c.InstructorID))
	return nil
}

func (c *Course) Archive() error {
	if c.Status == StatusArchived {
		return apperrors.Validation("Course is already archived!")
	}
	c.Status = StatusArchived
	return nil
}

func (c *Course) Unarchive() error {
	if c.Status != StatusArchived {
		return apperrors.Validation("Only archived courses can be unarchived!")
	}
	c.Status = StatusDraft
	return nil
}

func (c *Course) IsPublished() bool {
	return c.Status == StatusPublished
}

func (c *Course) IsDraft() bool {
	return c.Status == StatusDraft
}

func (c *Course) IsArchived() bool {
	return c.Status == StatusArchived
}

func (c *Course) IsFree() bool {
	return c.Price == 0
}

func (c *Course) CanEnroll() bool {
	return c.IsPublished()
}

// PriceMoney exposes the stored price as the Money value object.
func (c *Course) PriceMoney() models.Money {
	price, _ := models.NewMoney(c.Price)
	return price
}

// Update mutates editable fields. Published courses are frozen.
func (c *Course) Update(title, description, thumbnail *string, durationHours *int) error {
	if c.IsPublished() {
		return apperrors.Validation("Cannot update published course!")
	}

	if title != nil && strings.TrimSpace(*title) != "" {
		c.Title = strings.TrimSpace(*title)
	}
	if description != nil {
		c.Description = strings.TrimSpace(*description)
	}
	if thumbnail != nil {
		c.Thumbnail = *thumbnail
	}
	if durationHours != nil && *durationHours > 0 {
		c.DurationHours = *durationHours
	}
	return nil
}

// PullEvents returns the collected domain events and clears them.
func (c *Course) PullEvents() []models.DomainEvent {
	events := c.events
	c.events = nil
	return events
}
