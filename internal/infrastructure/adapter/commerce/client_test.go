package commerce_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/webpay-reconciler/internal/domain/entity"
	errs "github.com/amirhossein-jamali/webpay-reconciler/internal/domain/error"
	"github.com/amirhossein-jamali/webpay-reconciler/internal/infrastructure/adapter/commerce"
	"github.com/amirhossein-jamali/webpay-reconciler/internal/infrastructure/adapter/logger"
)

func newClient(t *testing.T, mux *http.ServeMux) *commerce.Client {
	t.Helper()
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	return commerce.NewClient(commerce.Config{
		BaseURL:       srv.URL,
		APIKey:        "shop-key",
		Timeout:       time.Second,
		RetryAttempts: 2,
	}, srv.Client(), logger.NewNoopLogger())
}

func TestClient_GetCartAndTotal(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /carts/45", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "shop-key", r.Header.Get("X-Api-Key"))
		_, _ = w.Write([]byte(`{"id":45,"customer_id":9,"currency_id":1}`))
	})
	mux.HandleFunc("GET /carts/45/total", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"products":"10000","shipping":2000}`))
	})
	client := newClient(t, mux)

	cart, err := client.GetCart(context.Background(), 45)
	require.NoError(t, err)
	assert.Equal(t, int64(45), cart.ID)
	assert.Equal(t, int64(9), cart.CustomerID)

	total, err := client.ComputeCartTotal(context.Background(), cart)
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(12000).Equal(total.Total()))
	assert.True(t, total.HasShipping())
}

func TestClient_GetCartNotFound(t *testing.T) {
	client := newClient(t, http.NewServeMux())

	_, err := client.GetCart(context.Background(), 1)
	assert.ErrorIs(t, err, errs.ErrInvalidCart)
}

func TestClient_FulfillOrderIsSentOnce(t *testing.T) {
	var calls int32
	mux := http.NewServeMux()
	mux.HandleFunc("POST /orders", func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusBadGateway)
	})
	client := newClient(t, mux)

	_, err := client.FulfillOrder(context.Background(), entity.FulfillmentRequest{CartID: 45})
	assert.ErrorIs(t, err, errs.ErrCommerceRequest)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestClient_FulfillOrder(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /orders", func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, float64(45), body["cart_id"])
		assert.Equal(t, "2", body["status"])
		assert.Equal(t, "Webpay", body["payment_module"])
		assert.Equal(t, "tok-1", body["transaction_id"])
		_, _ = w.Write([]byte(`{"order_id":501}`))
	})
	client := newClient(t, mux)

	orderID, err := client.FulfillOrder(context.Background(), entity.FulfillmentRequest{
		CartID:             45,
		StatusAfterPayment: "2",
		Amount:             decimal.NewFromInt(12000),
		Metadata:           entity.PaymentMetadata{ModuleName: "Webpay", Message: "ok", Token: "tok-1"},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(501), orderID)
}

func TestClient_ReadsRetryServerErrors(t *testing.T) {
	var calls int32
	mux := http.NewServeMux()
	mux.HandleFunc("GET /customers/9", func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) == 1 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		_, _ = w.Write([]byte(`{"id":9,"secure_key":"abc","email":"a@b.cl"}`))
	})
	client := newClient(t, mux)

	customer, err := client.GetCustomer(context.Background(), 9)
	require.NoError(t, err)
	assert.Equal(t, "abc", customer.SecureKey)
	assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
}

func TestClient_AttachPaymentMetadata(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /orders/501/payment", func(w http.ResponseWriter, r *http.Request) {
		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "**** **** **** 6623", body["card_number"])
		assert.Equal(t, "1213", body["authorization_code"])
		w.WriteHeader(http.StatusNoContent)
	})
	client := newClient(t, mux)

	err := client.AttachPaymentMetadata(context.Background(), 501, entity.OrderPaymentDetails{
		CardNumberMasked:  "**** **** **** 6623",
		AuthorizationCode: "1213",
		TransactionID:     "tok-1",
	})
	assert.NoError(t, err)
}
