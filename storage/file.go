package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"storefront/models"
)

// fileDocument is the on-disk shape: a single JSON document holding both
// collections, rewritten in full on every mutation.
type fileDocument struct {
	Orders   []models.Order   `json:"orders"`
	Payments []models.Payment `json:"payments"`
}

// FileStore keeps both collections in memory behind a mutex and persists the
// whole document to a single JSON file after every mutation. The write goes to
// a temp file in the same directory and is renamed into place, so a crash
// mid-write never leaves a corrupt document behind.
type FileStore struct {
	mu       sync.Mutex
	path     string
	orders   []models.Order
	payments []models.Payment
}

// NewFileStore opens the store at path, loading any existing document.
func NewFileStore(path string) (*FileStore, error) {
	s := &FileStore{path: path}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read data file: %w", err)
	}

	var doc fileDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse data file %s: %w", path, err)
	}
	s.orders = doc.Orders
	s.payments = doc.Payments
	return s, nil
}

func (s *FileStore) CreateOrder(order *models.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.orders = append(s.orders, *order)
	return s.persistLocked()
}

func (s *FileStore) FindOrder(id string) (*models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.orders {
		if s.orders[i].ID == id {
			order := s.orders[i]
			return &order, nil
		}
	}
	return nil, ErrNotFound
}

func (s *FileStore) UpdateOrderStatus(id, status string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.orders {
		if s.orders[i].ID == id {
			s.orders[i].Status = status
			s.orders[i].UpdatedAt = time.Now().UTC()
			return s.persistLocked()
		}
	}
	return ErrNotFound
}

func (s *FileStore) ListOrders() ([]models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	orders := make([]models.Order, len(s.orders))
	copy(orders, s.orders)
	sort.SliceStable(orders, func(i, j int) bool {
		return orders[i].CreatedAt.After(orders[j].CreatedAt)
	})
	return orders, nil
}

func (s *FileStore) InsertPayment(payment *models.Payment) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.payments = append(s.payments, *payment)
	return s.persistLocked()
}

func (s *FileStore) ListPayments(limit int) ([]models.Payment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	payments := make([]models.Payment, len(s.payments))
	copy(payments, s.payments)
	sort.SliceStable(payments, func(i, j int) bool {
		return payments[i].CreatedAt.After(payments[j].CreatedAt)
	})
	if limit > 0 && len(payments) > limit {
		payments = payments[:limit]
	}
	return payments, nil
}

func (s *FileStore) Stats() (*StoreStats, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stats := &StoreStats{TotalOrders: int64(len(s.orders))}
	for i := range s.orders {
		if s.orders[i].Status == models.OrderStatusPaid {
			stats.PaidOrders++
		}
	}
	for i := range s.payments {
		if s.payments[i].Status == models.PaymentStatusSucceeded {
			stats.TotalRevenue += s.payments[i].Amount
		}
	}
	return stats, nil
}

func (s *FileStore) Close() error {
	return nil
}

// persistLocked rewrites the backing file. Callers must hold s.mu.
func (s *FileStore) persistLocked() error {
	doc := fileDocument{Orders: s.orders, Payments: s.payments}
	if doc.Orders == nil {
		doc.Orders = []models.Order{}
	}
	if doc.Payments == nil {
		doc.Payments = []models.Payment{}
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode data file: %w", err)
	}

	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, ".orders-*.json")
	if err != nil {
		return fmt.Errorf("failed to create temp data file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to write data file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to close temp data file: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to replace data file: %w", err)
	}
	return nil
}
