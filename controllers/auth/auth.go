package authController

import (
	"github.com/gofiber/fiber/v2"

	"lms/middleware"
	"lms/services"
	authValidator "lms/validators/auth"
)

// AuthController exposes registration, login and session management.
type AuthController struct {
	auth     *services.AuthService
	sessions *services.SessionService
}

func NewAuthController(auth *services.AuthService, sessions *services.SessionService) *AuthController {
	return &AuthController{auth: auth, sessions: sessions}
}

func (ctrl *AuthController) Register(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedRegister").(*authValidator.RegisterRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	user, err := ctrl.auth.Register(services.RegisterCommand{
		Email:     reqData.Email,
		FirstName: reqData.FirstName,
		LastName:  reqData.LastName,
		Phone:     reqData.Phone,
		Password:  reqData.Password,
		Role:      reqData.Role,
	})
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "User registered successfully.", user)
}

func (ctrl *AuthController) Login(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedLogin").(*authValidator.LoginRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	token, user, err := ctrl.auth.Login(reqData.Email, reqData.Password, c.Get("User-Agent"), c.IP())
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Login successful!", fiber.Map{
		"token": token,
		"user":  user,
	})
}

func (ctrl *AuthController) Logout(c *fiber.Ctx) error {
	jti, ok := c.Locals("jti").(string)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	if err := ctrl.auth.Logout(jti); err != nil {
		return middleware.ErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Logged out successfully.", nil)
}

func (ctrl *AuthController) GetSessions(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	sessions, err := ctrl.sessions.GetUserActiveSessions(userID)
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Sessions fetched successfully!", sessions)
}

// RevokeAllSessions signs the user out everywhere, including this device.
func (ctrl *AuthController) RevokeAllSessions(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	revoked, err := ctrl.sessions.RevokeAllUserSessions(userID)
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "All sessions revoked.", fiber.Map{
		"revoked": revoked,
	})
}
