package pricing

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"ordering_system/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubtotal(t *testing.T) {
	cart := []domain.CartLine{
		{Item: "Margherita Pizza", Price: 10, Quantity: 2},
		{Item: "Garlic Bread", Price: 5, Quantity: 1},
	}
	assert.Equal(t, 25.0, Subtotal(cart))
	assert.Equal(t, 0.0, Subtotal(nil))
}

func TestApplyPromo(t *testing.T) {
	discount, msg, err := ApplyPromo(100, "HUNGRY")
	require.NoError(t, err)
	assert.Equal(t, 15.0, discount)
	assert.Contains(t, msg, "HUNGRY")

	// Codes are case-normalized
	discount, _, err = ApplyPromo(100, "  hungry ")
	require.NoError(t, err)
	assert.Equal(t, 15.0, discount)

	discount, msg, err = ApplyPromo(100, "BOGUS")
	assert.ErrorIs(t, err, domain.ErrInvalidPromoCode)
	assert.Equal(t, 0.0, discount)
	assert.Contains(t, msg, "Invalid")
}

func TestApplyPromoNeverExceedsSubtotal(t *testing.T) {
	for code := range domain.PromoCodes {
		discount, _, err := ApplyPromo(10, code)
		require.NoError(t, err)
		assert.LessOrEqual(t, discount, 10.0, "code %s", code)
	}
}

func TestGrandTotal(t *testing.T) {
	assert.Equal(t, 90.0, GrandTotal(100, 20, 10))
}

func newRateServer(t *testing.T, handler http.HandlerFunc) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return srv
}

func TestConvertLiveRate(t *testing.T) {
	srv := newRateServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"conversion_rates":{"USD":0.012,"EUR":0.011}}`))
	})
	engine := NewEngine(NewRateClient(srv.URL, "key", "INR", time.Second, time.Minute), 50)

	amount, live := engine.Convert(context.Background(), 1000, "USD")
	assert.True(t, live)
	assert.InDelta(t, 12.0, amount, 1e-9)

	// Base currency needs no lookup
	amount, live = engine.Convert(context.Background(), 1000, "INR")
	assert.True(t, live)
	assert.Equal(t, 1000.0, amount)
}

func TestConvertFallsBackToDefaultRate(t *testing.T) {
	cases := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{"server error", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}},
		{"garbage body", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("not json at all"))
		}},
		{"missing currency", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"conversion_rates":{"EUR":0.011}}`))
		}},
		{"non-positive rate", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"conversion_rates":{"USD":0}}`))
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			srv := newRateServer(t, tc.handler)
			engine := NewEngine(NewRateClient(srv.URL, "key", "INR", time.Second, time.Minute), 50)

			amount, live := engine.Convert(context.Background(), 1000, "USD")
			assert.False(t, live)
			assert.Equal(t, 1000.0, amount) // rate 1, no conversion
		})
	}
}

func TestConvertUnreachableCollaborator(t *testing.T) {
	// Nothing listens here; the dial fails fast
	engine := NewEngine(NewRateClient("http://127.0.0.1:1", "key", "INR", 200*time.Millisecond, time.Minute), 50)

	amount, live := engine.Convert(context.Background(), 500, "USD")
	assert.False(t, live)
	assert.Equal(t, 500.0, amount)
}

func TestRateCaching(t *testing.T) {
	calls := 0
	srv := newRateServer(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.Write([]byte(`{"conversion_rates":{"USD":0.012}}`))
	})
	client := NewRateClient(srv.URL, "key", "INR", time.Second, time.Minute)

	for i := 0; i < 3; i++ {
		rate, live := client.Rate(context.Background(), "USD")
		assert.True(t, live)
		assert.Equal(t, 0.012, rate)
	}
	assert.Equal(t, 1, calls, "subsequent lookups served from cache")
}

func TestDeliveryFee(t *testing.T) {
	srv := newRateServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"conversion_rates":{"USD":0.02}}`))
	})
	engine := NewEngine(NewRateClient(srv.URL, "key", "INR", time.Second, time.Minute), 50)

	fee, live := engine.DeliveryFee(context.Background(), "USD")
	assert.True(t, live)
	assert.InDelta(t, 1.0, fee, 1e-9)
}
