package storage

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront/models"
)

func newTestOrder(id string, createdAt time.Time) *models.Order {
	return &models.Order{
		ID:          id,
		Email:       "customer@example.com",
		TotalAmount: models.DefaultOrderAmount,
		Currency:    models.DefaultOrderCurrency,
		Status:      models.OrderStatusPending,
		CreatedAt:   createdAt,
		UpdatedAt:   createdAt,
	}
}

func TestFileStoreCreateAndFindOrder(t *testing.T) {
	store, err := NewFileStore(filepath.Join(t.TempDir(), "orders.json"))
	require.NoError(t, err)

	order := newTestOrder("ORD-2026-aabbccdd", time.Now().UTC())
	require.NoError(t, store.CreateOrder(order))

	found, err := store.FindOrder(order.ID)
	require.NoError(t, err)
	assert.Equal(t, order.ID, found.ID)
	assert.Equal(t, models.OrderStatusPending, found.Status)

	_, err = store.FindOrder("ORD-2026-00000000")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFileStoreUpdateOrderStatus(t *testing.T) {
	store, err := NewFileStore(filepath.Join(t.TempDir(), "orders.json"))
	require.NoError(t, err)

	order := newTestOrder("ORD-2026-aabbccdd", time.Now().UTC())
	require.NoError(t, store.CreateOrder(order))

	require.NoError(t, store.UpdateOrderStatus(order.ID, models.OrderStatusPaid))

	found, err := store.FindOrder(order.ID)
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusPaid, found.Status)
	assert.True(t, found.UpdatedAt.After(found.CreatedAt) || found.UpdatedAt.Equal(found.CreatedAt))

	assert.ErrorIs(t, store.UpdateOrderStatus("ORD-2026-00000000", models.OrderStatusPaid), ErrNotFound)
}

func TestFileStoreListOrdersNewestFirst(t *testing.T) {
	store, err := NewFileStore(filepath.Join(t.TempDir(), "orders.json"))
	require.NoError(t, err)

	base := time.Now().UTC()
	require.NoError(t, store.CreateOrder(newTestOrder("ORD-2026-00000001", base.Add(-2*time.Hour))))
	require.NoError(t, store.CreateOrder(newTestOrder("ORD-2026-00000002", base)))
	require.NoError(t, store.CreateOrder(newTestOrder("ORD-2026-00000003", base.Add(-time.Hour))))

	orders, err := store.ListOrders()
	require.NoError(t, err)
	require.Len(t, orders, 3)
	assert.Equal(t, "ORD-2026-00000002", orders[0].ID)
	assert.Equal(t, "ORD-2026-00000003", orders[1].ID)
	assert.Equal(t, "ORD-2026-00000001", orders[2].ID)
}

func TestFileStoreListPaymentsLimit(t *testing.T) {
	store, err := NewFileStore(filepath.Join(t.TempDir(), "orders.json"))
	require.NoError(t, err)

	base := time.Now().UTC()
	for i := 0; i < 12; i++ {
		payment := &models.Payment{
			ID:        models.NewPaymentID(),
			OrderID:   "ORD-2026-aabbccdd",
			Provider:  models.DefaultPaymentProvider,
			Amount:    100,
			Currency:  "INR",
			Status:    models.PaymentStatusSucceeded,
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		}
		require.NoError(t, store.InsertPayment(payment))
	}

	payments, err := store.ListPayments(10)
	require.NoError(t, err)
	require.Len(t, payments, 10)
	// Newest first
	assert.True(t, payments[0].CreatedAt.After(payments[9].CreatedAt))
}

func TestFileStoreStats(t *testing.T) {
	store, err := NewFileStore(filepath.Join(t.TempDir(), "orders.json"))
	require.NoError(t, err)

	now := time.Now().UTC()
	paid := newTestOrder("ORD-2026-00000001", now)
	paid.Status = models.OrderStatusPaid
	require.NoError(t, store.CreateOrder(paid))
	require.NoError(t, store.CreateOrder(newTestOrder("ORD-2026-00000002", now)))

	require.NoError(t, store.InsertPayment(&models.Payment{
		ID: "PAY-00000001", OrderID: paid.ID, Amount: 399,
		Status: models.PaymentStatusSucceeded, CreatedAt: now,
	}))
	require.NoError(t, store.InsertPayment(&models.Payment{
		ID: "PAY-00000002", OrderID: paid.ID, Amount: 250,
		Status: "failed", CreatedAt: now,
	}))

	stats, err := store.Stats()
	require.NoError(t, err)
	assert.Equal(t, int64(2), stats.TotalOrders)
	assert.Equal(t, int64(1), stats.PaidOrders)
	assert.Equal(t, 399.0, stats.TotalRevenue)
}

func TestFileStoreReloadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "orders.json")

	store, err := NewFileStore(path)
	require.NoError(t, err)

	order := newTestOrder("ORD-2026-aabbccdd", time.Now().UTC())
	require.NoError(t, store.CreateOrder(order))
	require.NoError(t, store.InsertPayment(&models.Payment{
		ID: "PAY-00000001", OrderID: order.ID, Amount: 399,
		Status: models.PaymentStatusSucceeded, CreatedAt: time.Now().UTC(),
	}))

	reloaded, err := NewFileStore(path)
	require.NoError(t, err)

	found, err := reloaded.FindOrder(order.ID)
	require.NoError(t, err)
	assert.Equal(t, order.Email, found.Email)

	payments, err := reloaded.ListPayments(0)
	require.NoError(t, err)
	assert.Len(t, payments, 1)
}

func TestFileStorePersistsParseableDocument(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "orders.json")

	store, err := NewFileStore(path)
	require.NoError(t, err)
	require.NoError(t, store.CreateOrder(newTestOrder("ORD-2026-aabbccdd", time.Now().UTC())))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var doc map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.Contains(t, doc, "orders")
	assert.Contains(t, doc, "payments")

	// The temp file used for the atomic replace must not linger.
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestFileStoreRejectsCorruptDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "orders.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))

	_, err := NewFileStore(path)
	assert.Error(t, err)
}
