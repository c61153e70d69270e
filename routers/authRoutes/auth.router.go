package authRoutes

import (
	"github.com/gofiber/fiber/v2"

	authController "lms/controllers/auth"
	authValidator "lms/validators/auth"
)

func SetupAuthRoutes(app *fiber.App, ctrl *authController.AuthController, protected fiber.Handler) {
	authGroup := app.Group("/auth")

	authGroup.Post("/register", authValidator.Register(), ctrl.Register)
	authGroup.Post("/login", authValidator.Login(), ctrl.Login)
	authGroup.Post("/logout", protected, ctrl.Logout)
	authGroup.Get("/sessions", protected, ctrl.GetSessions)
	authGroup.Delete("/sessions", protected, ctrl.RevokeAllSessions)
}
