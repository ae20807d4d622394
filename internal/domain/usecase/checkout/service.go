package checkout

import (
	"context"
	"fmt"
	"math/rand/v2"

	"github.com/amirhossein-jamali/webpay-reconciler/internal/domain/entity"
	errs "github.com/amirhossein-jamali/webpay-reconciler/internal/domain/error"
	"github.com/amirhossein-jamali/webpay-reconciler/internal/domain/port/commerce"
	coreport "github.com/amirhossein-jamali/webpay-reconciler/internal/domain/port/core"
	"github.com/amirhossein-jamali/webpay-reconciler/internal/domain/port/gateway"
	"github.com/amirhossein-jamali/webpay-reconciler/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/webpay-reconciler/internal/domain/port/usecase"
)

// Buy order suffixes for mall legs
const (
	ProductsLegSuffix = "-PRD"
	ShippingLegSuffix = "-DLV"
)

// maxBuyOrderRandom bounds the random part of buy orders and session ids
const maxBuyOrderRandom = 10000

// Config holds the commerce codes and return URLs used when creating transactions
type Config struct {
	ModuleActive             bool
	Environment              entity.Environment
	CommerceCode             string
	MallCommerceCode         string
	MallProductsCommerceCode string
	MallShippingCommerceCode string
	ReturnURL                string
	MallReturnURL            string
}

// Service creates gateway transactions for carts
type Service struct {
	transactionRepo persistence.TransactionRepository
	gateway         gateway.PaymentGateway
	store           commerce.Store
	timeProvider    coreport.TimeProvider
	logger          coreport.Logger
	config          Config
	randomInt       func(n int) int
}

// NewService creates a new checkout service
func NewService(
	transactionRepo persistence.TransactionRepository,
	gw gateway.PaymentGateway,
	store commerce.Store,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
	config Config,
) *Service {
	return &Service{
		transactionRepo: transactionRepo,
		gateway:         gw,
		store:           store,
		timeProvider:    timeProvider,
		logger:          logger,
		config:          config,
		randomInt:       rand.IntN,
	}
}

// StartPayment creates a gateway transaction for the cart and stores an INITIALIZED record
func (s *Service) StartPayment(ctx context.Context, cartID int64) (*usecase.StartPaymentResult, error) {
	if !s.config.ModuleActive {
		return nil, errs.ErrModuleInactive
	}
	if cartID <= 0 {
		return nil, fmt.Errorf("%w: cart id must be positive", errs.ErrInvalidCart)
	}

	if approved, err := s.transactionRepo.FindApprovedForCart(ctx, cartID, 0); err == nil {
		return nil, fmt.Errorf("%w: cart %d already paid with token %s",
			errs.ErrDuplicateTransaction, cartID, approved.Token)
	} else if !errs.IsNotFoundError(err) {
		return nil, err
	}

	cart, err := s.store.GetCart(ctx, cartID)
	if err != nil {
		return nil, err
	}
	total, err := s.store.ComputeCartTotal(ctx, cart)
	if err != nil {
		return nil, err
	}
	amount := total.Total()
	if !amount.IsPositive() {
		return nil, fmt.Errorf("%w: cart %d total is %s", errs.ErrInvalidAmount, cartID, entity.FormatAmount(amount))
	}

	buyOrder := fmt.Sprintf("ps:%d:%d", s.random(), cartID)
	sessionID := fmt.Sprintf("ps:sessionId:%d:%d", s.random(), cartID)
	req := s.buildCreateRequest(buyOrder, sessionID, total)

	s.logger.Info("Creating gateway transaction", map[string]any{
		"cart_id":   cartID,
		"buy_order": buyOrder,
		"amount":    entity.FormatAmount(amount),
		"product":   string(req.Product),
	})

	resp, err := s.gateway.Create(ctx, req)
	if err != nil {
		return nil, err
	}

	commerceCode := s.config.CommerceCode
	if req.Product == entity.ProductWebpayMall {
		commerceCode = s.config.MallCommerceCode
	}

	txn, err := entity.NewTransaction(
		resp.Token,
		buyOrder,
		sessionID,
		cartID,
		amount,
		commerceCode,
		s.timeProvider,
		entity.WithProduct(req.Product),
		entity.WithEnvironment(s.config.Environment),
	)
	if err != nil {
		return nil, err
	}

	if err := s.transactionRepo.Create(ctx, txn); err != nil {
		s.logger.Error("Gateway transaction created but not stored", map[string]any{
			"token":     resp.Token,
			"buy_order": buyOrder,
			"error":     err.Error(),
		})
		return nil, err
	}

	return &usecase.StartPaymentResult{
		Token:       resp.Token,
		RedirectURL: resp.URL,
		BuyOrder:    buyOrder,
		Product:     req.Product,
		Amount:      entity.FormatAmount(amount),
	}, nil
}

// GetTransaction returns the stored record for a token
func (s *Service) GetTransaction(ctx context.Context, token string) (*entity.Transaction, error) {
	if token == "" {
		return nil, fmt.Errorf("%w: token is required", errs.ErrInvalidRequest)
	}
	return s.transactionRepo.FindByToken(ctx, token)
}

// buildCreateRequest uses a mall transaction when shipping must go to its own commerce code
func (s *Service) buildCreateRequest(buyOrder, sessionID string, total entity.CartTotal) gateway.CreateRequest {
	if !total.HasShipping() {
		return gateway.CreateRequest{
			Product:   entity.ProductWebpayPlus,
			BuyOrder:  buyOrder,
			SessionID: sessionID,
			Amount:    total.Total(),
			ReturnURL: s.config.ReturnURL,
		}
	}

	return gateway.CreateRequest{
		Product:   entity.ProductWebpayMall,
		BuyOrder:  buyOrder,
		SessionID: sessionID,
		Amount:    total.Total(),
		ReturnURL: s.config.MallReturnURL,
		Legs: []gateway.LegRequest{
			{
				CommerceCode: s.config.MallProductsCommerceCode,
				BuyOrder:     buyOrder + ProductsLegSuffix,
				Amount:       total.Products,
			},
			{
				CommerceCode: s.config.MallShippingCommerceCode,
				BuyOrder:     buyOrder + ShippingLegSuffix,
				Amount:       total.Shipping,
			},
		},
	}
}

func (s *Service) random() int {
	return s.randomInt(maxBuyOrderRandom) + 1
}
