package models

import (
	"fmt"
	"time"
)

// Payment status values. Only succeeded has transition semantics; anything
// else is recorded verbatim and leaves the order untouched.
const (
	PaymentStatusSucceeded = "succeeded"
)

// DefaultPaymentProvider is used when the caller does not name one.
const DefaultPaymentProvider = "manual"

type Payment struct {
	ID                string    `gorm:"primaryKey" json:"id"`
	OrderID           string    `json:"order_id"`
	Provider          string    `json:"provider"`
	ProviderPaymentID string    `json:"provider_payment_id,omitempty"`
	Amount            float64   `json:"amount"`
	Currency          string    `json:"currency"`
	Status            string    `json:"status"`
	CreatedAt         time.Time `json:"created_at"`
}

// NewPaymentID generates a payment identifier of the form PAY-<8 hex chars>.
func NewPaymentID() string {
	return fmt.Sprintf("PAY-%s", shortHex())
}
