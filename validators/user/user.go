package userValidator

import (
	"github.com/gofiber/fiber/v2"

	"lms/middleware"
)

// UpdateProfileRequest carries only the fields the user wants to change.
type UpdateProfileRequest struct {
	FirstName      *string `json:"firstName" validate:"omitempty,min=2"`
	LastName       *string `json:"lastName"`
	Phone          *string `json:"phone"`
	ProfilePicture *string `json:"profilePicture" validate:"omitempty,url"`
}

// UpdateProfile validator middleware
func UpdateProfile() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(UpdateProfileRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if errors := middleware.ValidateStruct(reqData); errors != nil {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedProfile", reqData)
		return c.Next()
	}
}
