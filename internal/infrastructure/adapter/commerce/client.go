package commerce

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/amirhossein-jamali/webpay-reconciler/internal/domain/entity"
	errs "github.com/amirhossein-jamali/webpay-reconciler/internal/domain/error"
	commerceport "github.com/amirhossein-jamali/webpay-reconciler/internal/domain/port/commerce"
	coreport "github.com/amirhossein-jamali/webpay-reconciler/internal/domain/port/core"
	"github.com/amirhossein-jamali/webpay-reconciler/internal/infrastructure/adapter/resilience"
)

const headerAPIKey = "X-Api-Key"

// Config holds the shop backend endpoint settings
type Config struct {
	BaseURL       string
	APIKey        string
	Timeout       time.Duration
	RetryAttempts int
}

// Client implements commerce.Store against the shop's JSON API
type Client struct {
	baseURL string
	apiKey  string
	logger  coreport.Logger
	reads   resilience.HTTPClient
	writes  resilience.HTTPClient
}

var _ commerceport.Store = (*Client)(nil)

// NewClient creates a shop backend client. Writes are sent once.
func NewClient(config Config, httpClient *http.Client, logger coreport.Logger) *Client {
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	breaker := resilience.NewBreaker(resilience.BreakerSettings{
		Target:      "commerce",
		MinRequests: 5,
		Cooldown:    30 * time.Second,
	}, logger)

	return &Client{
		baseURL: strings.TrimRight(config.BaseURL, "/"),
		apiKey:  config.APIKey,
		logger:  logger,
		reads: resilience.HTTPClient{
			Client:      httpClient,
			Breaker:     breaker,
			Target:      "commerce",
			BaseBackoff: 100 * time.Millisecond,
			MaxAttempts: config.RetryAttempts,
			Jitter:      0.2,
			Timeout:     config.Timeout,
		},
		writes: resilience.HTTPClient{
			Client:      httpClient,
			Breaker:     breaker,
			Target:      "commerce_write",
			MaxAttempts: 1,
			Timeout:     config.Timeout,
		},
	}
}

type cartResponse struct {
	ID         int64 `json:"id"`
	CustomerID int64 `json:"customer_id"`
	CurrencyID int64 `json:"currency_id"`
}

type cartTotalResponse struct {
	Products decimal.Decimal `json:"products"`
	Shipping decimal.Decimal `json:"shipping"`
}

type fulfillRequest struct {
	CartID        int64           `json:"cart_id"`
	Status        string          `json:"status"`
	Amount        decimal.Decimal `json:"amount"`
	PaymentModule string          `json:"payment_module"`
	Message       string          `json:"message"`
	TransactionID string          `json:"transaction_id"`
}

type fulfillResponse struct {
	OrderID int64 `json:"order_id"`
}

type customerResponse struct {
	ID        int64  `json:"id"`
	SecureKey string `json:"secure_key"`
	Email     string `json:"email"`
}

type paymentRequest struct {
	CardNumber        string `json:"card_number"`
	AuthorizationCode string `json:"authorization_code"`
	TransactionID     string `json:"transaction_id"`
}

// errNotFound marks a 404 from the shop
var errNotFound = errors.New("not found")

// GetCart loads a cart by ID
func (c *Client) GetCart(ctx context.Context, cartID int64) (*entity.Cart, error) {
	var resp cartResponse
	if err := c.do(ctx, c.reads, http.MethodGet, fmt.Sprintf("/carts/%d", cartID), nil, &resp); err != nil {
		if errors.Is(err, errNotFound) {
			return nil, fmt.Errorf("%w: cart %d not found", errs.ErrInvalidCart, cartID)
		}
		return nil, err
	}
	return &entity.Cart{
		ID:         resp.ID,
		CustomerID: resp.CustomerID,
		CurrencyID: resp.CurrencyID,
	}, nil
}

// ComputeCartTotal asks the shop to recompute the order total from the live cart
func (c *Client) ComputeCartTotal(ctx context.Context, cart *entity.Cart) (entity.CartTotal, error) {
	var resp cartTotalResponse
	if err := c.do(ctx, c.reads, http.MethodGet, fmt.Sprintf("/carts/%d/total", cart.ID), nil, &resp); err != nil {
		if errors.Is(err, errNotFound) {
			return entity.CartTotal{}, fmt.Errorf("%w: cart %d not found", errs.ErrInvalidCart, cart.ID)
		}
		return entity.CartTotal{}, err
	}
	return entity.CartTotal{Products: resp.Products, Shipping: resp.Shipping}, nil
}

// FulfillOrder turns the paid cart into an order
func (c *Client) FulfillOrder(ctx context.Context, req entity.FulfillmentRequest) (int64, error) {
	body := fulfillRequest{
		CartID:        req.CartID,
		Status:        req.StatusAfterPayment,
		Amount:        req.Amount,
		PaymentModule: req.Metadata.ModuleName,
		Message:       req.Metadata.Message,
		TransactionID: req.Metadata.Token,
	}

	var resp fulfillResponse
	if err := c.do(ctx, c.writes, http.MethodPost, "/orders", body, &resp); err != nil {
		return 0, err
	}
	if resp.OrderID <= 0 {
		return 0, fmt.Errorf("%w: order id missing from response", errs.ErrCommerceRequest)
	}

	c.logger.Info("Order created for paid cart", map[string]any{
		"cart_id":  req.CartID,
		"order_id": resp.OrderID,
	})
	return resp.OrderID, nil
}

// GetCustomer loads the cart owner
func (c *Client) GetCustomer(ctx context.Context, customerID int64) (*entity.Customer, error) {
	var resp customerResponse
	if err := c.do(ctx, c.reads, http.MethodGet, fmt.Sprintf("/customers/%d", customerID), nil, &resp); err != nil {
		return nil, err
	}
	return &entity.Customer{ID: resp.ID, SecureKey: resp.SecureKey, Email: resp.Email}, nil
}

// AttachPaymentMetadata stores the masked card and authorization code on the order payment
func (c *Client) AttachPaymentMetadata(ctx context.Context, orderID int64, details entity.OrderPaymentDetails) error {
	body := paymentRequest{
		CardNumber:        details.CardNumberMasked,
		AuthorizationCode: details.AuthorizationCode,
		TransactionID:     details.TransactionID,
	}
	return c.do(ctx, c.writes, http.MethodPost, fmt.Sprintf("/orders/%d/payment", orderID), body, nil)
}

func (c *Client) do(ctx context.Context, hc resilience.HTTPClient, method, path string, in any, out any) error {
	var reader io.Reader = http.NoBody
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("%w: encode request: %w", errs.ErrCommerceRequest, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("%w: build request: %w", errs.ErrCommerceRequest, err)
	}
	req.Header.Set(headerAPIKey, c.apiKey)
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := hc.Do(ctx, req)
	if err != nil {
		return fmt.Errorf("%w: %s %s: %w", errs.ErrCommerceRequest, method, path, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return fmt.Errorf("%w: %s %s: %w", errs.ErrCommerceRequest, method, path, errNotFound)
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		return fmt.Errorf("%w: %s %s: status %d", errs.ErrCommerceRequest, method, path, resp.StatusCode)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: decode %s: %w", errs.ErrCommerceRequest, path, err)
	}
	return nil
}
