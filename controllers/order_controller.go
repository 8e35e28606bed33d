package controllers

import (
	"time"

	"github.com/gin-gonic/gin"

	"storefront/models"
	"storefront/utils"
)

// SubmitOrderRequest represents the public order submission body
type SubmitOrderRequest struct {
	FirstName   string   `json:"firstName"`
	LastName    string   `json:"lastName"`
	Email       string   `json:"email"`
	Phone       string   `json:"phone"`
	TotalAmount *float64 `json:"totalAmount"`
	Currency    string   `json:"currency"`
}

// SubmitOrder creates a pending order. Only the email is required; everything
// else falls back to documented defaults. Repeated submissions with identical
// data create distinct orders.
func SubmitOrder(c *gin.Context) {
	utils.LogInfo("SubmitOrder called")
	var req SubmitOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid order request: %v", err)
		utils.BadRequest(c, "Invalid input", err.Error())
		return
	}

	var validationErrors utils.FieldValidationErrors
	if req.Email == "" {
		validationErrors = append(validationErrors, utils.FieldValidationError{Field: "email", Message: "Email is required"})
	} else if ok, msg := utils.ValidateEmail(req.Email); !ok {
		validationErrors = append(validationErrors, utils.FieldValidationError{Field: "email", Message: msg})
	}
	if ok, msg := utils.ValidateName(req.FirstName); !ok {
		validationErrors = append(validationErrors, utils.FieldValidationError{Field: "firstName", Message: msg})
	}
	if ok, msg := utils.ValidateName(req.LastName); !ok {
		validationErrors = append(validationErrors, utils.FieldValidationError{Field: "lastName", Message: msg})
	}
	if ok, msg := utils.ValidatePhone(req.Phone); !ok {
		validationErrors = append(validationErrors, utils.FieldValidationError{Field: "phone", Message: msg})
	}
	if req.TotalAmount != nil {
		if ok, msg := utils.ValidateAmount(*req.TotalAmount); !ok {
			validationErrors = append(validationErrors, utils.FieldValidationError{Field: "totalAmount", Message: msg})
		}
	}
	if len(validationErrors) > 0 {
		utils.LogError("Order validation failed: %v", validationErrors)
		utils.BadRequest(c, "Invalid input", validationErrors)
		return
	}

	amount := models.DefaultOrderAmount
	if req.TotalAmount != nil {
		amount = *req.TotalAmount
	}
	currency := req.Currency
	if currency == "" {
		currency = models.DefaultOrderCurrency
	}

	now := time.Now().UTC()
	order := models.Order{
		ID:           models.NewOrderID(),
		CustomerName: models.CustomerNameFrom(req.FirstName, req.LastName),
		Email:        req.Email,
		Phone:        req.Phone,
		TotalAmount:  amount,
		Currency:     currency,
		Status:       models.OrderStatusPending,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := store.CreateOrder(&order); err != nil {
		utils.LogError("Failed to create order: %v", err)
		utils.InternalServerError(c, "Failed to create order")
		return
	}

	utils.LogInfo("Order created: %s for %s", order.ID, order.Email)
	utils.Created(c, "Order created", gin.H{
		"id":     order.ID,
		"status": order.Status,
	})
}
