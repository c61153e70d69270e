package courseValidator

import (
	"github.com/gofiber/fiber/v2"

	"lms/middleware"
)

// CreateCourseRequest is the payload for creating a draft course.
type CreateCourseRequest struct {
	CategoryID    uint    `json:"categoryId" validate:"required"`
	Title         string  `json:"title" validate:"required,min=3"`
	Description   string  `json:"description" validate:"required,min=5"`
	Price         float64 `json:"price" validate:"gte=0"`
	Thumbnail     string  `json:"thumbnail" validate:"omitempty,url"`
	DurationHours int     `json:"durationHours" validate:"required,gte=1"`
	Level         string  `json:"level" validate:"required,oneof=BEGINNER INTERMEDIATE ADVANCED"`
}

// UpdateCourseRequest carries only the fields being changed.
type UpdateCourseRequest struct {
	Title         *string `json:"title" validate:"omitempty,min=3"`
	Description   *string `json:"description" validate:"omitempty,min=5"`
	Thumbnail     *string `json:"thumbnail" validate:"omitempty,url"`
	DurationHours *int    `json:"durationHours" validate:"omitempty,gte=1"`
}

// ListCoursesRequest is the catalog pagination query.
type ListCoursesRequest struct {
	Page  int `query:"page"`
	Limit int `query:"limit"`
}

// CategoryRequest is the payload for creating a category.
type CategoryRequest struct {
	Name        string `json:"name" validate:"required,min=2"`
	Description string `json:"description"`
}

// UpdateCategoryRequest carries only the fields being changed.
type UpdateCategoryRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=2"`
	Description *string `json:"description"`
}

// CreateCourse validator middleware
func CreateCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreateCourseRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if errors := middleware.ValidateStruct(reqData); errors != nil {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCourse", reqData)
		return c.Next()
	}
}

// UpdateCourse validator middleware
func UpdateCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(UpdateCourseRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if errors := middleware.ValidateStruct(reqData); errors != nil {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCourseUpdate", reqData)
		return c.Next()
	}
}

// ListCourses validator middleware. Defaults page=1 limit=10, caps limit at 50.
func ListCourses() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(ListCoursesRequest)
		if err := c.QueryParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid query parameters!", nil)
		}

		if reqData.Page < 1 {
			reqData.Page = 1
		}
		if reqData.Limit < 1 {
			reqData.Limit = 10
		}
		if reqData.Limit > 50 {
			reqData.Limit = 50
		}

		c.Locals("validatedList", reqData)
		return c.Next()
	}
}

// CreateCategory validator middleware
func CreateCategory() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CategoryRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if errors := middleware.ValidateStruct(reqData); errors != nil {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCategory", reqData)
		return c.Next()
	}
}

// UpdateCategory validator middleware
func UpdateCategory() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(UpdateCategoryRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if errors := middleware.ValidateStruct(reqData); errors != nil {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCategoryUpdate", reqData)
		return c.Next()
	}
}
