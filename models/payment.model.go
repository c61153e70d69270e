package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	PaymentStatusPending    = "PENDING"
	PaymentStatusSettlement = "SETTLEMENT"
	PaymentStatusDeny       = "DENY"
	PaymentStatusCancel     = "CANCEL"
	PaymentStatusExpire     = "EXPIRE"
	PaymentStatusFailure    = "FAILURE"
)

// Payment is the gateway-side record for one paid enrollment.
type Payment struct {
	gorm.Model
	EnrollmentID      uint           `json:"enrollment_id" gorm:"index;not null"`
	OrderID           string         `json:"order_id" gorm:"uniqueIndex;not null"`
	GrossAmount       float64        `json:"gross_amount" gorm:"not null"`
	TransactionID     string         `json:"transaction_id" gorm:"default:''"`
	TransactionStatus string         `json:"transaction_status" gorm:"default:'PENDING'"`
	PaymentType       string         `json:"payment_type" gorm:"default:''"`
	FraudStatus       string         `json:"fraud_status" gorm:"default:''"`
	SnapToken         string         `json:"snap_token" gorm:"default:''"`
	TransactionTime   *time.Time     `json:"transaction_time"`
	SettlementTime    *time.Time     `json:"settlement_time"`
	GatewayResponse   datatypes.JSON `json:"gateway_response"`
}

func NewPayment(enrollmentID uint, orderID string, grossAmount float64) *Payment {
	return &Payment{
		EnrollmentID:      enrollmentID,
		OrderID:           orderID,
		GrossAmount:       grossAmount,
		TransactionStatus: PaymentStatusPending,
	}
}

// GatewayUpdate carries the fields of a gateway webhook notification.
type GatewayUpdate struct {
	TransactionID     string
	TransactionStatus string
	PaymentType       string
	FraudStatus       string
	TransactionTime   *time.Time
	SettlementTime    *time.Time
	RawResponse       []byte
}

func (p *Payment) ApplyGatewayUpdate(update GatewayUpdate) {
	if update.TransactionID != "" {
		p.TransactionID = update.TransactionID
	}
	if update.TransactionStatus != "" {
		p.TransactionStatus = update.TransactionStatus
	}
	if update.PaymentType != "" {
		p.PaymentType = update.PaymentType
	}
	if update.FraudStatus != "" {
		p.FraudStatus = update.FraudStatus
	}
	if update.TransactionTime != nil {
		p.TransactionTime = update.TransactionTime
	}
	if update.SettlementTime != nil {
		p.SettlementTime = update.SettlementTime
	}
	if update.RawResponse != nil {
		p.GatewayResponse = datatypes.JSON(update.RawResponse)
	}
}

func (p *Payment) IsSettled() bool {
	return p.TransactionStatus == PaymentStatusSettlement
}
