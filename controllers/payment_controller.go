package controllers

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/gin-gonic/gin"
	razorpay "github.com/razorpay/razorpay-go"

	"storefront/models"
	"storefront/storage"
	"storefront/utils"
)

// RecordPaymentRequest represents the payment submission body
type RecordPaymentRequest struct {
	OrderID           string   `json:"orderId" binding:"required"`
	Amount            *float64 `json:"amount"`
	Currency          string   `json:"currency"`
	Provider          string   `json:"provider"`
	ProviderPaymentID string   `json:"providerPaymentId"`
	Status            string   `json:"status"`
}

// RecordPayment persists a payment attempt against an existing order. A
// payment with status succeeded transitions the order to paid and triggers
// the confirmation email; the email is best-effort and its failure never
// affects the response.
func RecordPayment(c *gin.Context) {
	utils.LogInfo("RecordPayment called")
	var req RecordPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid payment request: %v", err)
		utils.BadRequest(c, "Invalid input. orderId is required", err.Error())
		return
	}

	order, err := store.FindOrder(req.OrderID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			utils.LogError("Payment submitted for unknown order: %s", req.OrderID)
			utils.NotFound(c, "Order not found")
			return
		}
		utils.LogError("Failed to look up order %s: %v", req.OrderID, err)
		utils.InternalServerError(c, "Failed to record payment")
		return
	}

	provider := req.Provider
	if provider == "" {
		provider = models.DefaultPaymentProvider
	}
	amount := order.TotalAmount
	if req.Amount != nil {
		amount = *req.Amount
	}
	currency := req.Currency
	if currency == "" {
		currency = order.Currency
	}

	// Status and amount are caller-supplied. Razorpay payments are the one
	// exception: when gateway credentials are configured the claim is checked
	// against the gateway before it is honored.
	if req.Status == models.PaymentStatusSucceeded && provider == "razorpay" && cfg.RazorpayConfigured() {
		if err := verifyRazorpayPayment(req.ProviderPaymentID, amount); err != nil {
			utils.LogError("Gateway verification failed for order %s: %v", order.ID, err)
			utils.RespondError(c, err)
			return
		}
		utils.LogInfo("Gateway verified payment %s for order %s", req.ProviderPaymentID, order.ID)
	}

	payment := models.Payment{
		ID:                models.NewPaymentID(),
		OrderID:           order.ID,
		Provider:          provider,
		ProviderPaymentID: req.ProviderPaymentID,
		Amount:            amount,
		Currency:          currency,
		Status:            req.Status,
		CreatedAt:         time.Now().UTC(),
	}

	if err := store.InsertPayment(&payment); err != nil {
		utils.LogError("Failed to insert payment for order %s: %v", order.ID, err)
		utils.InternalServerError(c, "Failed to record payment")
		return
	}

	if payment.Status == models.PaymentStatusSucceeded {
		if err := store.UpdateOrderStatus(order.ID, models.OrderStatusPaid); err != nil {
			utils.LogError("Failed to mark order %s paid: %v", order.ID, err)
			utils.InternalServerError(c, "Failed to record payment")
			return
		}
		order.Status = models.OrderStatusPaid
		utils.LogInfo("Order %s transitioned to paid by payment %s", order.ID, payment.ID)

		if messageID, err := utils.SendPaymentConfirmation(cfg, order, &payment); err != nil {
			utils.LogError("Confirmation email failed for order %s: %v", order.ID, err)
		} else {
			utils.LogInfo("Confirmation email dispatched for order %s (message %s)", order.ID, messageID)
		}
	}

	utils.Created(c, "Payment recorded", gin.H{
		"id":      payment.ID,
		"orderId": payment.OrderID,
		"status":  payment.Status,
	})
}

// fetchGatewayPayment retrieves a payment record from the razorpay gateway.
// Indirected through a variable so tests can substitute the gateway call.
var fetchGatewayPayment = func(providerPaymentID string) (map[string]interface{}, error) {
	client := razorpay.NewClient(cfg.RazorpayKeyID, cfg.RazorpayKeySecret)
	return client.Payment.Fetch(providerPaymentID, nil, nil)
}

// verifyRazorpayPayment fetches the payment from the gateway and confirms it
// was captured for the claimed amount. Razorpay reports amounts in paise.
func verifyRazorpayPayment(providerPaymentID string, amount float64) error {
	if providerPaymentID == "" {
		return utils.BadRequestError("providerPaymentId is required for razorpay payments", nil)
	}

	gatewayPayment, err := fetchGatewayPayment(providerPaymentID)
	if err != nil {
		return utils.BadRequestError("Unable to verify payment with gateway", err)
	}

	status, _ := gatewayPayment["status"].(string)
	if status != "captured" {
		return utils.BadRequestError(fmt.Sprintf("Gateway reports payment status %q, not captured", status), nil)
	}

	gatewayAmount, _ := gatewayPayment["amount"].(float64)
	if math.Abs(gatewayAmount-amount*100) >= 1 {
		return utils.BadRequestError("Gateway amount does not match submitted amount", nil)
	}
	return nil
}
