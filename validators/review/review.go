package reviewValidator

import (
	"github.com/gofiber/fiber/v2"

	"lms/middleware"
)

// CreateReviewRequest is the payload for reviewing a course.
type CreateReviewRequest struct {
	Rating  int    `json:"rating" validate:"required,gte=1,lte=5"`
	Comment string `json:"comment" validate:"max=2000"`
}

// UpdateReviewRequest carries only the fields being changed.
type UpdateReviewRequest struct {
	Rating  *int    `json:"rating" validate:"omitempty,gte=1,lte=5"`
	Comment *string `json:"comment" validate:"omitempty,max=2000"`
}

// CreateReview validator middleware
func CreateReview() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreateReviewRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if errors := middleware.ValidateStruct(reqData); errors != nil {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedReview", reqData)
		return c.Next()
	}
}

// UpdateReview validator middleware
func UpdateReview() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(UpdateReviewRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if errors := middleware.ValidateStruct(reqData); errors != nil {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedReviewUpdate", reqData)
		return c.Next()
	}
}
