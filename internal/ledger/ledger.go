package ledger

import (
	"time" // Order timestamps

	"ordering_system/internal/domain" // Models and errors

	"github.com/google/uuid"     // Order identifiers
	"github.com/sirupsen/logrus" // Structured logging
)

// Resolver maps a session token to its owning username.
type Resolver interface {
	Resolve(token string) (username string, ok bool)
}

// Records is the slice of the user store the ledger writes through.
type Records interface {
	AppendOrder(username string, rec domain.OrderRecord) error
	History(username string) ([]domain.OrderRecord, bool)
}

// Ledger appends completed orders to a user's history. Orders are
// immutable once committed; nothing here mutates or removes a record.
type Ledger struct {
	records  Records
	sessions Resolver
}

// New returns a ledger over the given store and session resolver
func New(records Records, sessions Resolver) *Ledger {
	return &Ledger{records: records, sessions: sessions}
}

// Commit validates the session and appends a new order with status
// "Order Placed". No partial order is created on any failure path.
func (l *Ledger) Commit(token string, cart []domain.CartLine, total float64, currencySymbol, restaurantID string) (domain.OrderRecord, error) {
	username, ok := l.sessions.Resolve(token)
	if !ok {
		return domain.OrderRecord{}, domain.ErrSessionInvalid
	}
	if len(cart) == 0 {
		return domain.OrderRecord{}, domain.ErrEmptyCart
	}
	if _, ok := domain.Restaurants[restaurantID]; !ok {
		return domain.OrderRecord{}, domain.ErrUnknownVendor
	}
	rec := domain.OrderRecord{
		OrderID:      uuid.NewString(),
		Date:         time.Now().Format(time.RFC3339),
		Items:        append([]domain.CartLine(nil), cart...),
		Total:        total,
		Currency:     currencySymbol,
		RestaurantID: restaurantID,
		Status:       domain.StatusPlaced,
	}
	if err := l.records.AppendOrder(username, rec); err != nil {
		logrus.WithFields(logrus.Fields{
			"username": username,
			"order_id": rec.OrderID,
			"error":    err.Error(),
		}).Error("Order commit failed")
		return domain.OrderRecord{}, err
	}
	logrus.WithFields(logrus.Fields{
		"username":      username,
		"order_id":      rec.OrderID,
		"restaurant_id": restaurantID,
		"total":         total,
		"timestamp":     rec.Date,
	}).Info("Order committed")
	return rec, nil
}

// History returns the user's orders in the order they were committed.
// Most-recent-first presentation is the caller's concern.
func (l *Ledger) History(token string) ([]domain.OrderRecord, error) {
	username, ok := l.sessions.Resolve(token)
	if !ok {
		return nil, domain.ErrSessionInvalid
	}
	orders, ok := l.records.History(username)
	if !ok {
		return nil, domain.ErrSessionInvalid
	}
	return orders, nil
}
