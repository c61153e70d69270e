package reviewController

import (
	"github.com/gofiber/fiber/v2"

	"lms/middleware"
	"lms/services"
	reviewValidator "lms/validators/review"
)

// ReviewController exposes course reviews.
type ReviewController struct {
	reviews *services.ReviewService
}

func NewReviewController(reviews *services.ReviewService) *ReviewController {
	return &ReviewController{reviews: reviews}
}

func (ctrl *ReviewController) CreateReview(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID, err := c.ParamsInt("id")
	if err != nil || courseID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid course id!", nil)
	}

	reqData, ok := c.Locals("validatedReview").(*reviewValidator.CreateReviewRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	review, err := ctrl.reviews.CreateReview(userID, uint(courseID), reqData.Rating, reqData.Comment)
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Review submitted successfully!", review)
}

func (ctrl *ReviewController) UpdateReview(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reviewID, err := c.ParamsInt("reviewId")
	if err != nil || reviewID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid review id!", nil)
	}

	reqData, ok := c.Locals("validatedReviewUpdate").(*reviewValidator.UpdateReviewRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	review, err := ctrl.reviews.UpdateReview(uint(reviewID), userID, reqData.Rating, reqData.Comment)
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Review updated successfully!", review)
}

func (ctrl *ReviewController) GetCourseReviews(c *fiber.Ctx) error {
	courseID, err := c.ParamsInt("id")
	if err != nil || courseID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid course id!", nil)
	}

	page := c.QueryInt("page", 1)
	limit := c.QueryInt("limit", 10)
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 50 {
		limit = 10
	}

	reviews, err := ctrl.reviews.GetCourseReviews(uint(courseID), page, limit)
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Reviews fetched successfully!", reviews)
}
