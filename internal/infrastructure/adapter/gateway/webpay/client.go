package webpay

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/amirhossein-jamali/webpay-reconciler/internal/domain/entity"
	errs "github.com/amirhossein-jamali/webpay-reconciler/internal/domain/error"
	coreport "github.com/amirhossein-jamali/webpay-reconciler/internal/domain/port/core"
	"github.com/amirhossein-jamali/webpay-reconciler/internal/domain/port/gateway"
	"github.com/amirhossein-jamali/webpay-reconciler/internal/infrastructure/adapter/resilience"
)

const (
	transactionsPath = "/rswebpaytransaction/api/webpay/v1.2/transactions"

	headerAPIKeyID     = "Tbk-Api-Key-Id"
	headerAPIKeySecret = "Tbk-Api-Key-Secret"
)

// Config holds credentials and transport settings for the Webpay REST API
type Config struct {
	BaseURL          string
	CommerceCode     string
	APIKey           string
	MallCommerceCode string
	MallAPIKey       string
	Timeout          time.Duration
	RetryAttempts    int
	RetryBaseDelay   time.Duration
	BreakerThreshold int
	BreakerCooldown  time.Duration
}

// Client implements gateway.PaymentGateway over HTTP
type Client struct {
	config Config
	logger coreport.Logger
	// commit is never retried: a second commit of the same token is rejected by the
	// provider and the first answer would be lost
	commit resilience.HTTPClient
	other  resilience.HTTPClient
}

var _ gateway.PaymentGateway = (*Client)(nil)

// NewClient creates a Webpay client. Commit and the other calls share one breaker.
func NewClient(config Config, httpClient *http.Client, logger coreport.Logger) *Client {
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	config.BaseURL = strings.TrimRight(config.BaseURL, "/")
	if config.MallAPIKey == "" {
		config.MallAPIKey = config.APIKey
	}

	breaker := resilience.NewBreaker(resilience.BreakerSettings{
		Target:      "webpay",
		MinRequests: config.BreakerThreshold,
		Cooldown:    config.BreakerCooldown,
	}, logger)

	return &Client{
		config: config,
		logger: logger,
		commit: resilience.HTTPClient{
			Client:      httpClient,
			Breaker:     breaker,
			Target:      "webpay_commit",
			MaxAttempts: 1,
			Timeout:     config.Timeout,
		},
		other: resilience.HTTPClient{
			Client:      httpClient,
			Breaker:     breaker,
			Target:      "webpay",
			BaseBackoff: config.RetryBaseDelay,
			MaxAttempts: config.RetryAttempts,
			Jitter:      0.2,
			Timeout:     config.Timeout,
		},
	}
}

// Create starts a single-commerce or mall transaction
func (c *Client) Create(ctx context.Context, req gateway.CreateRequest) (*gateway.CreateResponse, error) {
	body := createRequest{
		BuyOrder:  req.BuyOrder,
		SessionID: req.SessionID,
		ReturnURL: req.ReturnURL,
	}
	if req.Product == entity.ProductWebpayMall {
		for _, leg := range req.Legs {
			body.Details = append(body.Details, createDetails{
				Amount:       entity.GatewayAmount(leg.Amount),
				CommerceCode: leg.CommerceCode,
				BuyOrder:     leg.BuyOrder,
			})
		}
	} else {
		body.Amount = entity.GatewayAmount(req.Amount)
	}

	c.logger.Info("Creating gateway transaction", map[string]any{
		"buy_order":  req.BuyOrder,
		"session_id": req.SessionID,
		"product":    string(req.Product),
		"amount":     entity.FormatAmount(req.Amount),
		"legs":       len(req.Legs),
	})

	var resp createResponse
	if _, err := c.call(ctx, c.other, req.Product, http.MethodPost, transactionsPath, body, &resp); err != nil {
		return nil, errs.NewGatewayRequestError("create", "", req.BuyOrder, err)
	}
	if resp.Token == "" || resp.URL == "" {
		return nil, errs.NewGatewayRequestError("create", "", req.BuyOrder, errors.New("response without token or url"))
	}

	return &gateway.CreateResponse{Token: resp.Token, URL: resp.URL}, nil
}

// Commit confirms the transaction and returns one leg per authorization unit
func (c *Client) Commit(ctx context.Context, product entity.Product, token string) (*entity.CommitResult, error) {
	c.logger.Info("Committing gateway transaction", map[string]any{
		"token":   token,
		"product": string(product),
	})

	var resp commitResponse
	raw, err := c.call(ctx, c.commit, product, http.MethodPut, transactionsPath+"/"+url.PathEscape(token), nil, &resp)
	if err != nil {
		return nil, errs.NewGatewayRequestError("commit", token, "", err)
	}

	result := &entity.CommitResult{
		VCI:        resp.VCI,
		CardNumber: resp.CardDetail.CardNumber,
		Raw:        raw,
	}

	if product == entity.ProductWebpayMall {
		for _, d := range resp.Details {
			result.Legs = append(result.Legs, entity.Leg{
				CommerceCode:      d.CommerceCode,
				BuyOrder:          d.BuyOrder,
				Amount:            decimal.NewFromInt(d.Amount),
				ResponseCode:      d.ResponseCode,
				Status:            d.Status,
				AuthorizationCode: d.AuthorizationCode,
			})
		}
	} else if resp.ResponseCode != nil {
		result.Legs = []entity.Leg{{
			CommerceCode:      c.config.CommerceCode,
			BuyOrder:          resp.BuyOrder,
			Amount:            decimal.NewFromInt(resp.Amount),
			ResponseCode:      *resp.ResponseCode,
			Status:            resp.Status,
			AuthorizationCode: resp.AuthorizationCode,
		}}
	}

	if len(result.Legs) == 0 {
		return nil, errs.NewGatewayRequestError("commit", token, resp.BuyOrder, errors.New("response without authorization details"))
	}

	c.logger.Info("Gateway commit answered", map[string]any{
		"token":    token,
		"vci":      resp.VCI,
		"legs":     len(result.Legs),
		"integral": result.IsIntegral(),
	})
	return result, nil
}

// Refund reverses one authorized leg
func (c *Client) Refund(ctx context.Context, req gateway.RefundRequest) (*entity.RefundResult, error) {
	body := refundRequest{Amount: entity.GatewayAmount(req.Amount)}
	if req.Product == entity.ProductWebpayMall {
		body.BuyOrder = req.BuyOrder
		body.CommerceCode = req.CommerceCode
	}

	var resp refundResponse
	path := transactionsPath + "/" + url.PathEscape(req.Token) + "/refunds"
	if _, err := c.call(ctx, c.other, req.Product, http.MethodPost, path, body, &resp); err != nil {
		return nil, errs.NewGatewayRequestError("refund", req.Token, req.BuyOrder, err)
	}

	return &entity.RefundResult{
		Type:              resp.Type,
		AuthorizationCode: resp.AuthorizationCode,
		ResponseCode:      resp.ResponseCode,
		Balance:           decimal.NewFromFloat(resp.Balance),
		NullifiedAmount:   decimal.NewFromFloat(resp.NullifiedAmount),
	}, nil
}

func (c *Client) credentials(product entity.Product) (string, string) {
	if product == entity.ProductWebpayMall {
		return c.config.MallCommerceCode, c.config.MallAPIKey
	}
	return c.config.CommerceCode, c.config.APIKey
}

// call sends a JSON request and decodes a 2xx answer into out. It returns the raw body.
func (c *Client) call(ctx context.Context, hc resilience.HTTPClient, product entity.Product, method, path string, in any, out any) ([]byte, error) {
	var reader io.Reader = http.NoBody
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return nil, fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.config.BaseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	commerceCode, apiKey := c.credentials(product)
	req.Header.Set(headerAPIKeyID, commerceCode)
	req.Header.Set(headerAPIKeySecret, apiKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := hc.Do(ctx, req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var apiErr errorResponse
		if json.Unmarshal(raw, &apiErr) == nil && apiErr.ErrorMessage != "" {
			return nil, fmt.Errorf("status %d: %s", resp.StatusCode, apiErr.ErrorMessage)
		}
		return nil, fmt.Errorf("status %d", resp.StatusCode)
	}

	if out != nil && len(raw) > 0 {
		if err := json.Unmarshal(raw, out); err != nil {
			return nil, fmt.Errorf("decode response: %w", err)
		}
	}
	return raw, nil
}
