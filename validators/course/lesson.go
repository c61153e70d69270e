package courseValidator

import (
	"github.com/gofiber/fiber/v2"

	"lms/middleware"
	"lms/services"
)

// CreateLessonRequest is the payload for adding a lesson to a draft course.
type CreateLessonRequest struct {
	Title           string `json:"title" validate:"required,min=3"`
	Description     string `json:"description"`
	VideoURL        string `json:"videoUrl" validate:"omitempty,url"`
	Content         string `json:"content"`
	OrderNumber     int    `json:"orderNumber" validate:"required,gte=1"`
	DurationMinutes int    `json:"durationMinutes" validate:"required,gte=1"`
	IsPreview       bool   `json:"isPreview"`
}

// UpdateLessonRequest carries only the fields being changed.
type UpdateLessonRequest struct {
	Title           *string `json:"title" validate:"omitempty,min=3"`
	Description     *string `json:"description"`
	VideoURL        *string `json:"videoUrl" validate:"omitempty,url"`
	Content         *string `json:"content"`
	DurationMinutes *int    `json:"durationMinutes" validate:"omitempty,gte=1"`
	IsPreview       *bool   `json:"isPreview"`
}

// CreateLesson validator middleware. A video URL, when present, must point at
// YouTube.
func CreateLesson() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreateLessonRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := middleware.ValidateStruct(reqData)
		if errors == nil {
			errors = make(map[string]string)
		}

		if reqData.VideoURL != "" && !services.IsValidYoutubeURL(reqData.VideoURL) {
			errors["videoUrl"] = "Video URL must be a valid YouTube link!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedLesson", reqData)
		return c.Next()
	}
}

// UpdateLesson validator middleware
func UpdateLesson() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(UpdateLessonRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := middleware.ValidateStruct(reqData)
		if errors == nil {
			errors = make(map[string]string)
		}

		if reqData.VideoURL != nil && *reqData.VideoURL != "" && !services.IsValidYoutubeURL(*reqData.VideoURL) {
			errors["videoUrl"] = "Video URL must be a valid YouTube link!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedLessonUpdate", reqData)
		return c.Next()
	}
}
