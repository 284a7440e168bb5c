package ledger

import (
	"testing"

	"ordering_system/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeResolver struct {
	username string
	ok       bool
}

func (f fakeResolver) Resolve(token string) (string, bool) { return f.username, f.ok }

type fakeRecords struct {
	orders    map[string][]domain.OrderRecord
	appendErr error
}

func newFakeRecords() *fakeRecords {
	return &fakeRecords{orders: make(map[string][]domain.OrderRecord)}
}

func (f *fakeRecords) AppendOrder(username string, rec domain.OrderRecord) error {
	if f.appendErr != nil {
		return f.appendErr
	}
	f.orders[username] = append(f.orders[username], rec)
	return nil
}

func (f *fakeRecords) History(username string) ([]domain.OrderRecord, bool) {
	orders, ok := f.orders[username]
	if !ok {
		return nil, false
	}
	return orders, true
}

var testCart = []domain.CartLine{{Item: "Margherita Pizza", Price: 299, Quantity: 2, Veg: true}}

func TestCommit(t *testing.T) {
	records := newFakeRecords()
	l := New(records, fakeResolver{username: "alice", ok: true})

	rec, err := l.Commit("token", testCart, 648, "₹", "1")
	require.NoError(t, err)

	assert.NotEmpty(t, rec.OrderID)
	assert.NotEmpty(t, rec.Date)
	assert.Equal(t, domain.StatusPlaced, rec.Status)
	assert.Equal(t, 648.0, rec.Total)
	assert.Equal(t, "₹", rec.Currency)
	assert.Equal(t, "1", rec.RestaurantID)
	assert.Equal(t, testCart, rec.Items)
	assert.Len(t, records.orders["alice"], 1)

	other, err := l.Commit("token", testCart, 648, "₹", "1")
	require.NoError(t, err)
	assert.NotEqual(t, rec.OrderID, other.OrderID)
}

func TestCommitInvalidSession(t *testing.T) {
	records := newFakeRecords()
	records.orders["alice"] = []domain.OrderRecord{{OrderID: "existing"}}
	l := New(records, fakeResolver{ok: false})

	_, err := l.Commit("expired", testCart, 648, "₹", "1")
	assert.ErrorIs(t, err, domain.ErrSessionInvalid)

	// Target user's history is untouched
	assert.Len(t, records.orders["alice"], 1)
}

func TestCommitEmptyCart(t *testing.T) {
	records := newFakeRecords()
	l := New(records, fakeResolver{username: "alice", ok: true})

	_, err := l.Commit("token", nil, 0, "₹", "1")
	assert.ErrorIs(t, err, domain.ErrEmptyCart)
	assert.Empty(t, records.orders["alice"])
}

func TestCommitUnknownVendor(t *testing.T) {
	records := newFakeRecords()
	l := New(records, fakeResolver{username: "alice", ok: true})

	_, err := l.Commit("token", testCart, 648, "₹", "99")
	assert.ErrorIs(t, err, domain.ErrUnknownVendor)
	assert.Empty(t, records.orders["alice"])
}

func TestHistoryChronological(t *testing.T) {
	records := newFakeRecords()
	l := New(records, fakeResolver{username: "alice", ok: true})

	first, err := l.Commit("token", testCart, 100, "₹", "1")
	require.NoError(t, err)
	second, err := l.Commit("token", testCart, 200, "₹", "2")
	require.NoError(t, err)

	orders, err := l.History("token")
	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.Equal(t, first.OrderID, orders[0].OrderID)
	assert.Equal(t, second.OrderID, orders[1].OrderID)
}

func TestHistoryInvalidSession(t *testing.T) {
	l := New(newFakeRecords(), fakeResolver{ok: false})

	orders, err := l.History("expired")
	assert.ErrorIs(t, err, domain.ErrSessionInvalid)
	assert.Nil(t, orders)
}
