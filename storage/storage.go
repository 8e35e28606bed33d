package storage

import (
	"errors"
	"fmt"

	"storefront/config"
	"storefront/models"
)

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("record not found")

// StoreStats holds the aggregate figures shown on the admin dashboard.
type StoreStats struct {
	TotalOrders  int64   `json:"totalOrders"`
	PaidOrders   int64   `json:"paidOrders"`
	TotalRevenue float64 `json:"totalRevenue"`
}

// Store is the uniform persistence contract for orders and payments. Two
// implementations exist: a Postgres-backed store and a whole-file JSON store.
// The mode is fixed once at process start.
type Store interface {
	CreateOrder(order *models.Order) error
	FindOrder(id string) (*models.Order, error)
	UpdateOrderStatus(id, status string) error
	ListOrders() ([]models.Order, error)
	InsertPayment(payment *models.Payment) error
	ListPayments(limit int) ([]models.Payment, error)
	Stats() (*StoreStats, error)
	Close() error
}

// New selects and opens the store named by the configuration.
func New(cfg *config.Config) (Store, error) {
	switch cfg.StorageMode {
	case config.StorageModePostgres:
		return NewPostgresStore(cfg.DatabaseURL)
	case config.StorageModeFile:
		return NewFileStore(cfg.DataFile)
	default:
		return nil, fmt.Errorf("unknown storage mode %q", cfg.StorageMode)
	}
}
