package courseController

import (
	"github.com/gofiber/fiber/v2"

	"lms/middleware"
	"lms/services"
	courseValidator "lms/validators/course"
)

func (ctrl *CourseController) AddLesson(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID, err := c.ParamsInt("id")
	if err != nil || courseID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid course id!", nil)
	}

	reqData, ok := c.Locals("validatedLesson").(*courseValidator.CreateLessonRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	lesson, err := ctrl.courses.AddLesson(uint(courseID), userID, services.LessonCommand{
		Title:           reqData.Title,
		Description:     reqData.Description,
		VideoURL:        reqData.VideoURL,
		Content:         reqData.Content,
		OrderNumber:     reqData.OrderNumber,
		DurationMinutes: reqData.DurationMinutes,
		IsPreview:       reqData.IsPreview,
	})
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Lesson added successfully!", lesson)
}

func (ctrl *CourseController) UpdateLesson(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	lessonID, err := c.ParamsInt("lessonId")
	if err != nil || lessonID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid lesson id!", nil)
	}

	reqData, ok := c.Locals("validatedLessonUpdate").(*courseValidator.UpdateLessonRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	lesson, err := ctrl.courses.UpdateLesson(uint(lessonID), userID, services.UpdateLessonCommand{
		Title:           reqData.Title,
		Description:     reqData.Description,
		VideoURL:        reqData.VideoURL,
		Content:         reqData.Content,
		DurationMinutes: reqData.DurationMinutes,
		IsPreview:       reqData.IsPreview,
	})
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Lesson updated successfully!", lesson)
}

func (ctrl *CourseController) DeleteLesson(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	lessonID, err := c.ParamsInt("lessonId")
	if err != nil || lessonID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid lesson id!", nil)
	}

	if err := ctrl.courses.DeleteLesson(uint(lessonID), userID); err != nil {
		return middleware.ErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Lesson deleted successfully!", nil)
}

func (ctrl *CourseController) GetLessons(c *fiber.Ctx) error {
	courseID, err := c.ParamsInt("id")
	if err != nil || courseID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid course id!", nil)
	}

	lessons, err := ctrl.courses.GetCourseLessons(uint(courseID))
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Lessons fetched successfully!", lessons)
}
