package userRoutes

import (
	"github.com/gofiber/fiber/v2"

	userController "lms/controllers/user"
	"lms/middleware"
	"lms/models"
	userValidator "lms/validators/user"
)

func SetupUserRoutes(app *fiber.App, ctrl *userController.UserController, protected fiber.Handler) {
	userGroup := app.Group("/user")

	userGroup.Get("/profile", protected, ctrl.GetProfile)
	userGroup.Patch("/profile", userValidator.UpdateProfile(), protected, ctrl.UpdateProfile)

	// Admin-only account toggles
	adminOnly := middleware.RequireRoles(models.RoleAdmin)
	userGroup.Patch("/:id/activate", protected, adminOnly, ctrl.ActivateUser)
	userGroup.Patch("/:id/deactivate", protected, adminOnly, ctrl.DeactivateUser)
}
