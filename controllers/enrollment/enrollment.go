package enrollmentController

import (
	"github.com/gofiber/fiber/v2"

	"lms/middleware"
	"lms/services"
	enrollmentValidator "lms/validators/enrollment"
)

// EnrollmentController exposes enrollment and lesson progress tracking.
type EnrollmentController struct {
	enrollments *services.EnrollmentService
}

func NewEnrollmentController(enrollments *services.EnrollmentService) *EnrollmentController {
	return &EnrollmentController{enrollments: enrollments}
}

func (ctrl *EnrollmentController) Enroll(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedEnroll").(*enrollmentValidator.EnrollRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	enrollment, err := ctrl.enrollments.EnrollCourse(userID, reqData.CourseID)
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Enrolled successfully!", enrollment)
}

func (ctrl *EnrollmentController) GetMyEnrollments(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	enrollments, err := ctrl.enrollments.GetUserEnrollments(userID)
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrollments fetched successfully!", enrollments)
}

func (ctrl *EnrollmentController) GetProgress(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	enrollmentID, err := c.ParamsInt("id")
	if err != nil || enrollmentID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid enrollment id!", nil)
	}

	progress, err := ctrl.enrollments.GetEnrollmentProgress(uint(enrollmentID), userID)
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Progress fetched successfully!", progress)
}

// UpdateLessonProgress records watch time on a lesson. Crossing the lesson's
// duration does not complete it; completion is an explicit action.
func (ctrl *EnrollmentController) UpdateLessonProgress(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	enrollmentID, err := c.ParamsInt("id")
	if err != nil || enrollmentID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid enrollment id!", nil)
	}

	lessonID, err := c.ParamsInt("lessonId")
	if err != nil || lessonID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid lesson id!", nil)
	}

	reqData, ok := c.Locals("validatedWatchTime").(*enrollmentValidator.WatchTimeRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	progress, err := ctrl.enrollments.UpdateLessonProgress(uint(enrollmentID), uint(lessonID), userID, reqData.WatchedDuration)
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Lesson progress updated!", progress)
}

func (ctrl *EnrollmentController) CompleteLesson(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	enrollmentID, err := c.ParamsInt("id")
	if err != nil || enrollmentID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid enrollment id!", nil)
	}

	lessonID, err := c.ParamsInt("lessonId")
	if err != nil || lessonID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid lesson id!", nil)
	}

	progress, err := ctrl.enrollments.CompleteLesson(uint(enrollmentID), uint(lessonID), userID)
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Lesson completed!", progress)
}

func (ctrl *EnrollmentController) CancelEnrollment(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	enrollmentID, err := c.ParamsInt("id")
	if err != nil || enrollmentID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid enrollment id!", nil)
	}

	enrollment, err := ctrl.enrollments.CancelEnrollment(uint(enrollmentID), userID)
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrollment cancelled.", enrollment)
}
