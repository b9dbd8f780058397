package remote

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"shelter/config"
	"shelter/internal/domain/service"
	"shelter/internal/upstream"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBillingClientForTest(t *testing.T, handler http.Handler) service.BillingService {
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cfg := &config.Config{}
	cfg.Upstreams.Billing = config.UpstreamConfig{
		BaseURL: server.URL,
		Timeout: time.Second,
	}

	return NewBillingClient(cfg)
}

func TestBillingClient_ListProducts(t *testing.T) {
	first := uuid.New()
	second := uuid.New()
	breedID := uuid.New()

	client := newBillingClientForTest(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/products", r.URL.Path)
		assert.Equal(t, "5", r.URL.Query().Get("skip"))
		assert.Equal(t, "2", r.URL.Query().Get("limit"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"products":[` +
			`{"id":"` + first.String() + `","breed_id":"` + breedID.String() + `"},` +
			`{"id":"` + second.String() + `","breed_id":"` + breedID.String() + `"}]}`))
	}))

	products, err := client.ListProducts(context.Background(), 5, 2)
	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, first, products[0].ID)
	assert.Equal(t, breedID, products[0].BreedID)
	assert.Equal(t, second, products[1].ID)
}

func TestBillingClient_GetProduct_NotFoundIsPermanent(t *testing.T) {
	client := newBillingClientForTest(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "product not found", http.StatusNotFound)
	}))

	_, err := client.GetProduct(context.Background(), uuid.New())
	require.Error(t, err)
	assert.ErrorIs(t, err, service.ErrProductNotFound)
	assert.True(t, upstream.IsDomain(err))
}

func TestBillingClient_GetProduct_ServerErrorIsTransient(t *testing.T) {
	client := newBillingClientForTest(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "temporarily out of cats", http.StatusInternalServerError)
	}))

	_, err := client.GetProduct(context.Background(), uuid.New())
	require.Error(t, err)
	assert.False(t, upstream.IsDomain(err))
	assert.Contains(t, err.Error(), "upstream responded 500")
}

func TestBillingClient_GetProduct_ConnectionFailureIsTransient(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	server.Close() // Nothing listens on the address anymore.

	cfg := &config.Config{}
	cfg.Upstreams.Billing = config.UpstreamConfig{BaseURL: server.URL, Timeout: time.Second}
	client := NewBillingClient(cfg)

	_, err := client.GetProduct(context.Background(), uuid.New())
	require.Error(t, err)
	assert.False(t, upstream.IsDomain(err))
}

func TestBillingClient_GetProduct_MalformedBodyIsTransient(t *testing.T) {
	client := newBillingClientForTest(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id": truncated`))
	}))

	_, err := client.GetProduct(context.Background(), uuid.New())
	require.Error(t, err)
	assert.False(t, upstream.IsDomain(err))
}

func TestBillingClient_SellProduct(t *testing.T) {
	catID := uuid.New()
	billID := uuid.New()

	client := newBillingClientForTest(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/products/"+catID.String()+"/sell", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"` + billID.String() + `","product_id":"` + catID.String() + `",` +
			`"price":750,"created_at":"2026-08-30T12:00:00Z"}`))
	}))

	bill, err := client.SellProduct(context.Background(), catID, 750)
	require.NoError(t, err)
	assert.Equal(t, billID, bill.ID)
	assert.Equal(t, catID, bill.ProductID)
	assert.Equal(t, 750.0, bill.Price)
}
