package checkout

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/webpay-reconciler/internal/domain/entity"
	errs "github.com/amirhossein-jamali/webpay-reconciler/internal/domain/error"
	"github.com/amirhossein-jamali/webpay-reconciler/internal/domain/port/gateway"
	mockcommerce "github.com/amirhossein-jamali/webpay-reconciler/mocks/port/commerce"
	mockcore "github.com/amirhossein-jamali/webpay-reconciler/mocks/port/core"
	mockgateway "github.com/amirhossein-jamali/webpay-reconciler/mocks/port/gateway"
	mockpersistence "github.com/amirhossein-jamali/webpay-reconciler/mocks/port/persistence"
)

var testConfig = Config{
	ModuleActive:             true,
	Environment:              entity.EnvironmentIntegration,
	CommerceCode:             "597055555532",
	MallCommerceCode:         "597055555535",
	MallProductsCommerceCode: "597055555536",
	MallShippingCommerceCode: "597055555537",
	ReturnURL:                "https://shop.test/webpay/return",
	MallReturnURL:            "https://shop.test/webpay/mall/return",
}

type checkoutFixture struct {
	repo    *mockpersistence.MockTransactionRepository
	gateway *mockgateway.MockPaymentGateway
	store   *mockcommerce.MockStore
	service *Service
}

func newCheckoutFixture(t *testing.T, config Config) *checkoutFixture {
	f := &checkoutFixture{
		repo:    mockpersistence.NewMockTransactionRepository(t),
		gateway: mockgateway.NewMockPaymentGateway(t),
		store:   mockcommerce.NewMockStore(t),
	}
	clock := mockcore.NewMockTimeProvider(t)
	clock.On("Now").Return(time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)).Maybe()
	logger := mockcore.NewMockLogger(t)
	logger.On("Info", mock.Anything, mock.Anything).Return().Maybe()
	logger.On("Error", mock.Anything, mock.Anything).Return().Maybe()

	f.service = NewService(f.repo, f.gateway, f.store, clock, logger, config)
	f.service.randomInt = func(n int) int { return 122 }
	return f
}

func (f *checkoutFixture) expectCart(cartID int64, products, shipping int64) {
	cart := &entity.Cart{ID: cartID, CustomerID: 9}
	f.repo.EXPECT().FindApprovedForCart(mock.Anything, cartID, uint64(0)).Return(nil, errs.ErrTransactionNotFound).Once()
	f.store.EXPECT().GetCart(mock.Anything, cartID).Return(cart, nil).Once()
	f.store.EXPECT().ComputeCartTotal(mock.Anything, cart).Return(entity.CartTotal{
		Products: decimal.NewFromInt(products),
		Shipping: decimal.NewFromInt(shipping),
	}, nil).Once()
}

func TestService_StartPayment_SingleCommerce(t *testing.T) {
	f := newCheckoutFixture(t, testConfig)
	f.expectCart(45, 10000, 0)

	f.gateway.EXPECT().Create(mock.Anything, gateway.CreateRequest{
		Product:   entity.ProductWebpayPlus,
		BuyOrder:  "ps:123:45",
		SessionID: "ps:sessionId:123:45",
		Amount:    decimal.NewFromInt(10000),
		ReturnURL: "https://shop.test/webpay/return",
	}).Return(&gateway.CreateResponse{Token: "tok-1", URL: "https://gw.test/form"}, nil).Once()

	var stored *entity.Transaction
	f.repo.EXPECT().Create(mock.Anything, mock.Anything).
		Run(func(_ context.Context, txn *entity.Transaction) { stored = txn }).
		Return(nil).Once()

	result, err := f.service.StartPayment(context.Background(), 45)

	require.NoError(t, err)
	assert.Equal(t, "tok-1", result.Token)
	assert.Equal(t, "https://gw.test/form", result.RedirectURL)
	assert.Equal(t, "ps:123:45", result.BuyOrder)
	assert.Equal(t, entity.ProductWebpayPlus, result.Product)
	assert.Equal(t, "10000", result.Amount)

	require.NotNil(t, stored)
	assert.Equal(t, entity.StatusInitialized, stored.Status)
	assert.Equal(t, "597055555532", stored.CommerceCode)
	assert.True(t, stored.Amount().Equal(decimal.NewFromInt(10000)))
}

func TestService_StartPayment_MallWhenShippingIsCharged(t *testing.T) {
	f := newCheckoutFixture(t, testConfig)
	f.expectCart(45, 8000, 2000)

	f.gateway.EXPECT().Create(mock.Anything, mock.MatchedBy(func(req gateway.CreateRequest) bool {
		return req.Product == entity.ProductWebpayMall &&
			req.ReturnURL == "https://shop.test/webpay/mall/return" &&
			len(req.Legs) == 2 &&
			req.Legs[0].BuyOrder == "ps:123:45-PRD" &&
			req.Legs[0].CommerceCode == "597055555536" &&
			req.Legs[0].Amount.Equal(decimal.NewFromInt(8000)) &&
			req.Legs[1].BuyOrder == "ps:123:45-DLV" &&
			req.Legs[1].CommerceCode == "597055555537" &&
			req.Legs[1].Amount.Equal(decimal.NewFromInt(2000))
	})).Return(&gateway.CreateResponse{Token: "tok-2", URL: "https://gw.test/form"}, nil).Once()
	f.repo.EXPECT().Create(mock.Anything, mock.MatchedBy(func(txn *entity.Transaction) bool {
		return txn.IsMall() && txn.CommerceCode == "597055555535" && txn.Amount().Equal(decimal.NewFromInt(10000))
	})).Return(nil).Once()

	result, err := f.service.StartPayment(context.Background(), 45)

	require.NoError(t, err)
	assert.Equal(t, entity.ProductWebpayMall, result.Product)
}

func TestService_StartPayment_Rejections(t *testing.T) {
	t.Run("module inactive", func(t *testing.T) {
		config := testConfig
		config.ModuleActive = false
		f := newCheckoutFixture(t, config)

		_, err := f.service.StartPayment(context.Background(), 45)
		assert.ErrorIs(t, err, errs.ErrModuleInactive)
	})

	t.Run("invalid cart id", func(t *testing.T) {
		f := newCheckoutFixture(t, testConfig)

		_, err := f.service.StartPayment(context.Background(), 0)
		assert.ErrorIs(t, err, errs.ErrInvalidCart)
	})

	t.Run("cart already paid", func(t *testing.T) {
		f := newCheckoutFixture(t, testConfig)
		paid := entity.RestoreTransaction(entity.Transaction{Token: "tok-0", Status: entity.StatusApproved}, decimal.NewFromInt(1))
		f.repo.EXPECT().FindApprovedForCart(mock.Anything, int64(45), uint64(0)).Return(paid, nil).Once()

		_, err := f.service.StartPayment(context.Background(), 45)
		assert.ErrorIs(t, err, errs.ErrDuplicateTransaction)
	})

	t.Run("empty cart", func(t *testing.T) {
		f := newCheckoutFixture(t, testConfig)
		f.expectCart(45, 0, 0)

		_, err := f.service.StartPayment(context.Background(), 45)
		assert.ErrorIs(t, err, errs.ErrInvalidAmount)
		f.gateway.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestService_StartPayment_StoreFailure(t *testing.T) {
	f := newCheckoutFixture(t, testConfig)
	f.expectCart(45, 10000, 0)
	f.gateway.EXPECT().Create(mock.Anything, mock.Anything).
		Return(&gateway.CreateResponse{Token: "tok-1", URL: "https://gw.test/form"}, nil).Once()
	f.repo.EXPECT().Create(mock.Anything, mock.Anything).Return(errs.ErrStorage).Once()

	result, err := f.service.StartPayment(context.Background(), 45)

	assert.Nil(t, result)
	assert.ErrorIs(t, err, errs.ErrStorage)
}

func TestService_GetTransaction(t *testing.T) {
	f := newCheckoutFixture(t, testConfig)
	txn := entity.RestoreTransaction(entity.Transaction{Token: "tok-1"}, decimal.NewFromInt(10000))
	f.repo.EXPECT().FindByToken(mock.Anything, "tok-1").Return(txn, nil).Once()

	got, err := f.service.GetTransaction(context.Background(), "tok-1")
	require.NoError(t, err)
	assert.Same(t, txn, got)

	_, err = f.service.GetTransaction(context.Background(), "")
	assert.ErrorIs(t, err, errs.ErrInvalidRequest)
}
