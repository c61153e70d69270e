package userController

import (
	"github.com/gofiber/fiber/v2"

	"lms/middleware"
	"lms/services"
	userValidator "lms/validators/user"
)

// UserController exposes profile reads/updates and admin activation toggles.
type UserController struct {
	users *services.UserService
}

func NewUserController(users *services.UserService) *UserController {
	return &UserController{users: users}
}

func (ctrl *UserController) GetProfile(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	user, err := ctrl.users.GetProfile(userID)
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Profile fetched successfully!", user)
}

func (ctrl *UserController) UpdateProfile(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedProfile").(*userValidator.UpdateProfileRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	user, err := ctrl.users.UpdateProfile(userID, services.UpdateProfileCommand{
		FirstName:      reqData.FirstName,
		LastName:       reqData.LastName,
		Phone:          reqData.Phone,
		ProfilePicture: reqData.ProfilePicture,
	})
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Profile updated successfully!", user)
}

// ActivateUser is an admin-only toggle.
func (ctrl *UserController) ActivateUser(c *fiber.Ctx) error {
	targetID, err := c.ParamsInt("id")
	if err != nil || targetID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid user id!", nil)
	}

	user, err := ctrl.users.ActivateUser(uint(targetID))
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "User activated successfully!", user)
}

// DeactivateUser is an admin-only toggle.
func (ctrl *UserController) DeactivateUser(c *fiber.Ctx) error {
	targetID, err := c.ParamsInt("id")
	if err != nil || targetID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid user id!", nil)
	}

	user, err := ctrl.users.DeactivateUser(uint(targetID))
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "User deactivated successfully!", user)
}
