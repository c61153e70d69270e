package enrollmentRoutes

import (
	"github.com/gofiber/fiber/v2"

	enrollmentController "lms/controllers/enrollment"
	paymentController "lms/controllers/payment"
	enrollmentValidator "lms/validators/enrollment"
)

func SetupEnrollmentRoutes(app *fiber.App, ctrl *enrollmentController.EnrollmentController, payments *paymentController.PaymentController, protected fiber.Handler) {
	enrollGroup := app.Group("/enrollment")

	enrollGroup.Post("/", enrollmentValidator.Enroll(), protected, ctrl.Enroll)
	enrollGroup.Get("/list", protected, ctrl.GetMyEnrollments)
	enrollGroup.Get("/:id/progress", protected, ctrl.GetProgress)
	enrollGroup.Patch("/:id/lessons/:lessonId/watch", enrollmentValidator.UpdateWatchTime(), protected, ctrl.UpdateLessonProgress)
	enrollGroup.Patch("/:id/lessons/:lessonId/complete", protected, ctrl.CompleteLesson)
	enrollGroup.Delete("/:id", protected, ctrl.CancelEnrollment)
	enrollGroup.Get("/:id/payments", protected, payments.GetEnrollmentPayments)

	// Gateway webhook is unauthenticated; notifications are matched to known
	// orders by order_id only.
	app.Post("/payment/notification", payments.Webhook)
}
