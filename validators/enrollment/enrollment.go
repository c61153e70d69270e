package enrollmentValidator

import (
	"github.com/gofiber/fiber/v2"

	"lms/middleware"
)

// EnrollRequest is the payload for enrolling in a course.
type EnrollRequest struct {
	CourseID uint `json:"courseId" validate:"required"`
}

// WatchTimeRequest reports seconds watched on a lesson.
type WatchTimeRequest struct {
	WatchedDuration int `json:"watchedDuration" validate:"gte=0"`
}

// Enroll validator middleware
func Enroll() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(EnrollRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if errors := middleware.ValidateStruct(reqData); errors != nil {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedEnroll", reqData)
		return c.Next()
	}
}

// UpdateWatchTime validator middleware
func UpdateWatchTime() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(WatchTimeRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if errors := middleware.ValidateStruct(reqData); errors != nil {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedWatchTime", reqData)
		return c.Next()
	}
}
