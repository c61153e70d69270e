package courseController

import (
	"github.com/gofiber/fiber/v2"

	"lms/middleware"
	courseValidator "lms/validators/course"
)

func (ctrl *CourseController) CreateCategory(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedCategory").(*courseValidator.CategoryRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	category, err := ctrl.courses.CreateCategory(reqData.Name, reqData.Description)
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Category created successfully!", category)
}

func (ctrl *CourseController) UpdateCategory(c *fiber.Ctx) error {
	categoryID, err := c.ParamsInt("id")
	if err != nil || categoryID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid category id!", nil)
	}

	reqData, ok := c.Locals("validatedCategoryUpdate").(*courseValidator.UpdateCategoryRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	category, err := ctrl.courses.UpdateCategory(uint(categoryID), reqData.Name, reqData.Description)
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Category updated successfully!", category)
}

func (ctrl *CourseController) ListCategories(c *fiber.Ctx) error {
	categories, err := ctrl.courses.ListCategories()
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Categories fetched successfully!", categories)
}
