package utils

import (
	"encoding/base64"
	"fmt"

	"github.com/go-resty/resty/v2"

	"lms/config"
)

// SnapGateway requests payment tokens from the Midtrans Snap API.
type SnapGateway struct {
	client    *resty.Client
	serverKey string
}

func NewSnapGateway(cfg *config.Config) *SnapGateway {
	return &SnapGateway{
		client:    resty.New().SetBaseURL(cfg.PaymentSnapURL),
		serverKey: cfg.PaymentServerKey,
	}
}

type snapTokenRequest struct {
	TransactionDetails struct {
		OrderID     string  `json:"order_id"`
		GrossAmount float64 `json:"gross_amount"`
	} `json:"transaction_details"`
}

type snapTokenResponse struct {
	Token         string   `json:"token"`
	RedirectURL   string   `json:"redirect_url"`
	ErrorMessages []string `json:"error_messages"`
}

// CreateSnapToken requests a checkout token for a pending order.
func (g *SnapGateway) CreateSnapToken(orderID string, grossAmount float64) (string, error) {
	auth := base64.StdEncoding.EncodeToString([]byte(g.serverKey + ":"))

	var body snapTokenRequest
	body.TransactionDetails.OrderID = orderID
	body.TransactionDetails.GrossAmount = grossAmount

	var result snapTokenResponse
	resp, err := g.client.R().
		SetHeader("Authorization", "Basic "+auth).
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		SetResult(&result).
		Post("/transactions")
	if err != nil {
		return "", err
	}
	if resp.IsError() {
		if len(result.ErrorMessages) > 0 {
			return "", fmt.Errorf("payment gateway error: %s", result.ErrorMessages[0])
		}
		return "", fmt.Errorf("payment gateway error: %s", resp.Status())
	}
	if result.Token == "" {
		return "", fmt.Errorf("payment gateway returned empty token")
	}

	return result.Token, nil
}
