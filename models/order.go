package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Order status constants
const (
	OrderStatusPending = "pending"
	OrderStatusPaid    = "paid"
)

// Default order values applied when the caller omits them
const (
	DefaultOrderAmount   = 399.0
	DefaultOrderCurrency = "INR"
)

type Order struct {
	ID           string    `gorm:"primaryKey" json:"id"`
	CustomerName string    `json:"customer_name,omitempty"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone,omitempty"`
	TotalAmount  float64   `json:"total_amount"`
	Currency     string    `json:"currency"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// NewOrderID generates an order identifier of the form ORD-<year>-<8 hex chars>.
func NewOrderID() string {
	return fmt.Sprintf("ORD-%d-%s", time.Now().Year(), shortHex())
}

// CustomerNameFrom builds a display name from optional first/last parts.
func CustomerNameFrom(firstName, lastName string) string {
	return strings.TrimSpace(strings.TrimSpace(firstName) + " " + strings.TrimSpace(lastName))
}

func shortHex() string {
	return strings.ReplaceAll(uuid.New().String(), "-", "")[:8]
}
