package course

import (
	"strings"

	"gorm.io/gorm"

	"lms/apperrors"
)

type Lesson struct {
	gorm.Model
	CourseID        uint   `json:"course_id" gorm:"index;not null"`
	Title           string `json:"title" gorm:"not null"`
	Description     string `json:"description" gorm:"default:''"`
	VideoURL        string `json:"video_url" gorm:"default:''"`
	Content         string `json:"content" gorm:"default:''"`
	OrderNumber     int    `json:"order_number" gorm:"not null"`
	DurationMinutes int    `json:"duration_minutes" gorm:"not null"`
	IsPreview       bool   `json:"is_preview" gorm:"default:false"`
}

func NewLesson(courseID uint, title, description, videoURL, content string, orderNumber, durationMinutes int, isPreview bool) (*Lesson, error) {
	if strings.TrimSpace(title) == "" {
		return nil, apperrors.Validation("Lesson title is required!")
	}
	if orderNumber <= 0 {
		return nil, apperrors.Validation("Order number must be positive!")
	}
	if durationMinutes <= 0 {
		return nil, apperrors.Validation("Duration must be positive!")
	}

	return &Lesson{
		CourseID:        courseID,
		Title:           strings.TrimSpace(title),
		Description:     strings.TrimSpace(description),
		VideoURL:        videoURL,
		Content:         content,
		OrderNumber:     orderNumber,
		DurationMinutes: durationMinutes,
		IsPreview:       isPreview,
	}, nil
}

func (l *Lesson) Update(title, description, videoURL, content *string, durationMinutes *int, isPreview *bool) error {
	if title != nil && strings.TrimSpace(*title) != "" {
		l.Title = strings.TrimSpace(*title)
	}
	if description != nil {
		l.Description = strings.TrimSpace(*description)
	}
	if videoURL != nil {
		l.VideoURL = *videoURL
	}
	if content != nil {
		l.Content = *content
	}
	if durationMinutes != nil {
		if *durationMinutes <= 0 {
			return apperrors.Validation("Duration must be positive!")
		}
		l.DurationMinutes = *durationMinutes
	}
	if isPreview != nil {
		l.IsPreview = *isPreview
	}
	return nil
}
