package paymentController

import (
	"encoding/json"
	"log"

	"github.com/gofiber/fiber/v2"

	"lms/middleware"
	"lms/services"
)

// PaymentController handles gateway webhooks and payment lookups.
type PaymentController struct {
	payments *services.PaymentService
}

func NewPaymentController(payments *services.PaymentService) *PaymentController {
	return &PaymentController{payments: payments}
}

// Webhook receives transaction status notifications from the payment gateway.
// The raw body is kept alongside the parsed fields for the audit trail.
func (ctrl *PaymentController) Webhook(c *fiber.Ctx) error {
	body := c.Body()

	var notification services.GatewayNotification
	if err := json.Unmarshal(body, &notification); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid notification payload!", nil)
	}
	notification.Raw = append([]byte(nil), body...)

	payment, err := ctrl.payments.ProcessWebhook(notification)
	if err != nil {
		log.Printf("[PAYMENT] webhook for order %s failed: %v", notification.OrderID, err)
		return middleware.ErrorResponse(c, err)
	}

	log.Printf("[PAYMENT] order %s moved to %s", payment.OrderID, payment.TransactionStatus)
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Notification processed.", nil)
}

func (ctrl *PaymentController) GetEnrollmentPayments(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	enrollmentID, err := c.ParamsInt("id")
	if err != nil || enrollmentID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid enrollment id!", nil)
	}

	payments, err := ctrl.payments.GetEnrollmentPayments(uint(enrollmentID), userID)
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Payments fetched successfully!", payments)
}
