package controllers

import (
	"errors"
	"net/http"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront/config"
	"storefront/models"
	"storefront/storage"
	"storefront/utils"
)

func newPaymentTestRouter(t *testing.T, withGatewayKeys bool) *gin.Engine {
	gin.SetMode(gin.TestMode)

	c := &config.Config{
		StorageMode:   config.StorageModeFile,
		DataFile:      filepath.Join(t.TempDir(), "orders.json"),
		SessionSecret: "test-secret",
		AdminUsername: "admin",
		AdminPassword: "Password123!",
	}
	if withGatewayKeys {
		c.RazorpayKeyID = "rzp_test_key"
		c.RazorpayKeySecret = "rzp_test_secret"
	}

	s, err := storage.New(c)
	require.NoError(t, err)
	require.NoError(t, Init(s, c))

	router := gin.New()
	router.POST("/api/payments", RecordPayment)
	return router
}

// stubGateway replaces the gateway fetch for the duration of a test.
func stubGateway(t *testing.T, fn func(string) (map[string]interface{}, error)) {
	orig := fetchGatewayPayment
	fetchGatewayPayment = fn
	t.Cleanup(func() { fetchGatewayPayment = orig })
}

func seedOrder(t *testing.T) *models.Order {
	now := time.Now().UTC()
	order := &models.Order{
		ID:           models.NewOrderID(),
		CustomerName: "Priya Shah",
		Email:        "a@b.com",
		TotalAmount:  399,
		Currency:     models.DefaultOrderCurrency,
		Status:       models.OrderStatusPending,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	require.NoError(t, store.CreateOrder(order))
	return order
}

func razorpayBody(orderID, providerPaymentID string) gin.H {
	body := gin.H{
		"orderId":  orderID,
		"provider": "razorpay",
		"status":   models.PaymentStatusSucceeded,
		"amount":   399,
	}
	if providerPaymentID != "" {
		body["providerPaymentId"] = providerPaymentID
	}
	return body
}

// requireOrderUntouched asserts the order is still pending and no payment
// record was written.
func requireOrderUntouched(t *testing.T, orderID string) {
	order, err := store.FindOrder(orderID)
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusPending, order.Status)

	payments, err := store.ListPayments(10)
	require.NoError(t, err)
	assert.Empty(t, payments)
}

func TestRazorpayPaymentRequiresProviderID(t *testing.T) {
	router := newPaymentTestRouter(t, true)
	stubGateway(t, func(string) (map[string]interface{}, error) {
		t.Fatal("gateway must not be contacted without a providerPaymentId")
		return nil, nil
	})
	order := seedOrder(t)

	resp := utils.MakeTestRequest(t, router, utils.TestRequest{
		Method: "POST",
		Path:   "/api/payments",
		Body:   razorpayBody(order.ID, ""),
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	requireOrderUntouched(t, order.ID)
}

func TestRazorpayPaymentRejectedWhenNotCaptured(t *testing.T) {
	router := newPaymentTestRouter(t, true)
	stubGateway(t, func(id string) (map[string]interface{}, error) {
		assert.Equal(t, "pay_abc123", id)
		return map[string]interface{}{"status": "authorized", "amount": 39900.0}, nil
	})
	order := seedOrder(t)

	resp := utils.MakeTestRequest(t, router, utils.TestRequest{
		Method: "POST",
		Path:   "/api/payments",
		Body:   razorpayBody(order.ID, "pay_abc123"),
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	requireOrderUntouched(t, order.ID)
}

func TestRazorpayPaymentRejectedOnAmountMismatch(t *testing.T) {
	router := newPaymentTestRouter(t, true)
	stubGateway(t, func(string) (map[string]interface{}, error) {
		// Gateway captured 100.00, the caller claims 399.00.
		return map[string]interface{}{"status": "captured", "amount": 10000.0}, nil
	})
	order := seedOrder(t)

	resp := utils.MakeTestRequest(t, router, utils.TestRequest{
		Method: "POST",
		Path:   "/api/payments",
		Body:   razorpayBody(order.ID, "pay_abc123"),
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	requireOrderUntouched(t, order.ID)
}

func TestRazorpayPaymentRejectedOnGatewayError(t *testing.T) {
	router := newPaymentTestRouter(t, true)
	stubGateway(t, func(string) (map[string]interface{}, error) {
		return nil, errors.New("gateway unreachable")
	})
	order := seedOrder(t)

	resp := utils.MakeTestRequest(t, router, utils.TestRequest{
		Method: "POST",
		Path:   "/api/payments",
		Body:   razorpayBody(order.ID, "pay_abc123"),
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	requireOrderUntouched(t, order.ID)
}

func TestRazorpayCapturedPaymentAccepted(t *testing.T) {
	router := newPaymentTestRouter(t, true)
	stubGateway(t, func(string) (map[string]interface{}, error) {
		return map[string]interface{}{"status": "captured", "amount": 39900.0}, nil
	})
	order := seedOrder(t)

	resp := utils.MakeTestRequest(t, router, utils.TestRequest{
		Method: "POST",
		Path:   "/api/payments",
		Body:   razorpayBody(order.ID, "pay_abc123"),
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	updated, err := store.FindOrder(order.ID)
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusPaid, updated.Status)

	payments, err := store.ListPayments(10)
	require.NoError(t, err)
	require.Len(t, payments, 1)
	assert.Equal(t, "pay_abc123", payments[0].ProviderPaymentID)
}

func TestRazorpayVerificationSkippedWithoutKeys(t *testing.T) {
	router := newPaymentTestRouter(t, false)
	stubGateway(t, func(string) (map[string]interface{}, error) {
		t.Fatal("gateway must not be contacted when no keys are configured")
		return nil, nil
	})
	order := seedOrder(t)

	resp := utils.MakeTestRequest(t, router, utils.TestRequest{
		Method: "POST",
		Path:   "/api/payments",
		Body:   razorpayBody(order.ID, "pay_abc123"),
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	updated, err := store.FindOrder(order.ID)
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusPaid, updated.Status)
}
