package courseRoutes

import (
	"github.com/gofiber/fiber/v2"

	courseController "lms/controllers/course"
	reviewController "lms/controllers/review"
	"lms/middleware"
	"lms/models"
	courseValidator "lms/validators/course"
	reviewValidator "lms/validators/review"
)

// SetupCourseRoutes wires the catalog: courses, lessons, categories, reviews.
func SetupCourseRoutes(app *fiber.App, ctrl *courseController.CourseController, reviews *reviewController.ReviewController, protected fiber.Handler) {
	courseGroup := app.Group("/course")
	instructorOnly := middleware.RequireRoles(models.RoleInstructor, models.RoleAdmin)
	adminOnly := middleware.RequireRoles(models.RoleAdmin)

	// Public catalog
	courseGroup.Get("/list", courseValidator.ListCourses(), ctrl.ListCourses)
	courseGroup.Get("/:id", ctrl.GetCourse)
	courseGroup.Get("/:id/lessons", ctrl.GetLessons)
	courseGroup.Get("/:id/reviews", reviews.GetCourseReviews)

	// Instructor course management
	courseGroup.Post("/", courseValidator.CreateCourse(), protected, instructorOnly, ctrl.CreateCourse)
	courseGroup.Patch("/:id", courseValidator.UpdateCourse(), protected, instructorOnly, ctrl.UpdateCourse)
	courseGroup.Patch("/:id/publish", protected, instructorOnly, ctrl.PublishCourse)
	courseGroup.Patch("/:id/archive", protected, instructorOnly, ctrl.ArchiveCourse)
	courseGroup.Patch("/:id/unarchive", protected, instructorOnly, ctrl.UnarchiveCourse)
	courseGroup.Get("/mine/list", protected, instructorOnly, ctrl.GetMyCourses)

	// Lesson management
	courseGroup.Post("/:id/lessons", courseValidator.CreateLesson(), protected, instructorOnly, ctrl.AddLesson)
	courseGroup.Patch("/lessons/:lessonId", courseValidator.UpdateLesson(), protected, instructorOnly, ctrl.UpdateLesson)
	courseGroup.Delete("/lessons/:lessonId", protected, instructorOnly, ctrl.DeleteLesson)

	// Reviews
	courseGroup.Post("/:id/reviews", reviewValidator.CreateReview(), protected, reviews.CreateReview)
	courseGroup.Patch("/reviews/:reviewId", reviewValidator.UpdateReview(), protected, reviews.UpdateReview)

	// Categories
	categoryGroup := app.Group("/category")
	categoryGroup.Get("/list", ctrl.ListCategories)
	categoryGroup.Post("/", courseValidator.CreateCategory(), protected, adminOnly, ctrl.CreateCategory)
	categoryGroup.Patch("/:id", courseValidator.UpdateCategory(), protected, adminOnly, ctrl.UpdateCategory)
}
