package reconciliation

import (
	"context"
	"errors"
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

var fixedNow = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

type engineFixture struct {
	repo    *mockpersistence.MockTransactionRepository
	gateway *mockgateway.MockPaymentGateway
	store   *mockcommerce.MockStore
	clock   *mockcore.MockTimeProvider
	logger  *mockcore.MockLogger
	metrics *mockcore.MockMetricsRecorder
	engine  *Engine
}

func newEngineFixture(t *testing.T) *engineFixture {
	f := &engineFixture{
		repo:    mockpersistence.NewMockTransactionRepository(t),
		gateway: mockgateway.NewMockPaymentGateway(t),
		store:   mockcommerce.NewMockStore(t),
		clock:   mockcore.NewMockTimeProvider(t),
		logger:  mockcore.NewMockLogger(t),
		metrics: mockcore.NewMockMetricsRecorder(t),
	}
	f.clock.On("Now").Return(fixedNow).Maybe()
	allowLogging(f.logger)

	f.engine = NewEngine(f.repo, f.gateway, f.store, f.clock, f.logger, f.metrics, "PS_OS_PAYMENT")
	return f
}

func allowLogging(logger *mockcore.MockLogger) {
	for _, level := range []string{"Debug", "Info", "Warn", "Error"} {
		logger.On(level, mock.Anything, mock.Anything).Return().Maybe()
	}
	logger.On("With", mock.Anything).Return(logger).Maybe()
}

func record(token, buyOrder string, cartID, amount int64, status entity.TransactionStatus, product entity.Product) *entity.Transaction {
	return entity.RestoreTransaction(entity.Transaction{
		ID:          7,
		Token:       token,
		BuyOrder:    buyOrder,
		SessionID:   "ps:sessionId:99:45",
		CartID:      cartID,
		Status:      status,
		Environment: entity.EnvironmentIntegration,
		Product:     product,
		CreatedAt:   fixedNow,
		UpdatedAt:   fixedNow,
		Version:     1,
	}, decimal.NewFromInt(amount))
}

func leg(buyOrder, commerceCode string, amount int64, code int, status, auth string) entity.Leg {
	return entity.Leg{
		CommerceCode:      commerceCode,
		BuyOrder:          buyOrder,
		Amount:            decimal.NewFromInt(amount),
		ResponseCode:      code,
		Status:            status,
		AuthorizationCode: auth,
	}
}

func strPtr(s string) *string { return &s }

func normalPayload(token string) entity.CallbackPayload {
	return entity.CallbackPayload{SuccessToken: strPtr(token)}
}

func (f *engineFixture) expectFreshCart(cartID, customerID int64, products, shipping int64) *entity.Cart {
	cart := &entity.Cart{ID: cartID, CustomerID: customerID, CurrencyID: 1}
	f.repo.EXPECT().FindApprovedForCart(mock.Anything, cartID, uint64(7)).Return(nil, errs.ErrTransactionNotFound)
	f.store.EXPECT().GetCart(mock.Anything, cartID).Return(cart, nil)
	f.store.EXPECT().ComputeCartTotal(mock.Anything, cart).Return(entity.CartTotal{
		Products: decimal.NewFromInt(products),
		Shipping: decimal.NewFromInt(shipping),
	}, nil)
	return cart
}

func (f *engineFixture) captureSaves(times int) *[]entity.TransactionStatus {
	var statuses []entity.TransactionStatus
	f.repo.EXPECT().Save(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, txn *entity.Transaction) error {
			statuses = append(statuses, txn.Status)
			return nil
		}).Times(times)
	return &statuses
}

func TestEngine_Reconcile_InvalidPayload(t *testing.T) {
	f := newEngineFixture(t)

	testCases := []struct {
		name    string
		payload entity.CallbackPayload
	}{
		{name: "empty payload", payload: entity.CallbackPayload{}},
		{name: "buy order only", payload: entity.CallbackPayload{BuyOrder: strPtr("ps:1:2")}},
		{name: "token and session", payload: entity.CallbackPayload{SuccessToken: strPtr("t"), SessionID: strPtr("s")}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			outcome, err := f.engine.Reconcile(context.Background(), tc.payload)
			assert.Nil(t, outcome)
			assert.ErrorIs(t, err, errs.ErrClassification)
		})
	}
}

func TestEngine_Normal_SingleLegApproved(t *testing.T) {
	f := newEngineFixture(t)
	txn := record("tok-1", "ps:123:45", 45, 10000, entity.StatusInitialized, entity.ProductWebpayPlus)

	f.repo.EXPECT().FindByToken(mock.Anything, "tok-1").Return(txn, nil).Once()
	cart := f.expectFreshCart(45, 9, 10000, 0)
	f.gateway.EXPECT().Commit(mock.Anything, entity.ProductWebpayPlus, "tok-1").Return(&entity.CommitResult{
		Legs:       []entity.Leg{leg("ps:123:45", "597055555532", 10000, 0, entity.LegStatusAuthorized, "1213")},
		VCI:        "TSY",
		CardNumber: "6623",
		Raw:        []byte(`{"status":"AUTHORIZED"}`),
	}, nil).Once()
	statuses := f.captureSaves(2)
	f.store.EXPECT().FulfillOrder(mock.Anything, mock.MatchedBy(func(req entity.FulfillmentRequest) bool {
		return req.CartID == 45 &&
			req.Amount.Equal(decimal.NewFromInt(10000)) &&
			req.StatusAfterPayment == "PS_OS_PAYMENT" &&
			req.Metadata.Token == "tok-1"
	})).Return(int64(501), nil).Once()
	f.store.EXPECT().AttachPaymentMetadata(mock.Anything, int64(501), entity.OrderPaymentDetails{
		CardNumberMasked:  "**** **** **** 6623",
		AuthorizationCode: "1213",
		TransactionID:     "tok-1",
	}).Return(nil).Once()
	f.store.EXPECT().GetCustomer(mock.Anything, int64(9)).Return(&entity.Customer{ID: 9, SecureKey: "k"}, nil).Once()

	outcome, err := f.engine.Reconcile(context.Background(), normalPayload("tok-1"))

	require.NoError(t, err)
	require.True(t, outcome.IsSuccess())
	assert.False(t, outcome.Replayed)
	assert.Same(t, cart, outcome.Cart)
	require.NotNil(t, outcome.Cart.OrderID)
	assert.Equal(t, int64(501), *outcome.Cart.OrderID)
	assert.Equal(t, "k", outcome.Cart.Customer.SecureKey)
	assert.Equal(t, []entity.TransactionStatus{entity.StatusApproved, entity.StatusApproved}, *statuses)
	assert.Equal(t, entity.StatusApproved, txn.Status)
	require.NotNil(t, txn.ResponseCode)
	assert.Equal(t, 0, *txn.ResponseCode)
	require.NotNil(t, txn.OrderID)
	assert.Equal(t, int64(501), *txn.OrderID)
}

func TestEngine_Normal_ReplayApproved(t *testing.T) {
	f := newEngineFixture(t)
	txn := record("tok-1", "ps:123:45", 45, 10000, entity.StatusApproved, entity.ProductWebpayPlus)
	txn.AttachOrder(501)

	f.repo.EXPECT().FindByToken(mock.Anything, "tok-1").Return(txn, nil).Once()
	f.store.EXPECT().GetCart(mock.Anything, int64(45)).Return(&entity.Cart{ID: 45, CustomerID: 9}, nil).Once()
	f.store.EXPECT().GetCustomer(mock.Anything, int64(9)).Return(&entity.Customer{ID: 9}, nil).Once()

	outcome, err := f.engine.Reconcile(context.Background(), normalPayload("tok-1"))

	require.NoError(t, err)
	assert.True(t, outcome.IsSuccess())
	assert.True(t, outcome.Replayed)
	require.NotNil(t, outcome.Cart.OrderID)
	assert.Equal(t, int64(501), *outcome.Cart.OrderID)
	f.gateway.AssertNotCalled(t, "Commit", mock.Anything, mock.Anything, mock.Anything)
	f.gateway.AssertNotCalled(t, "Refund", mock.Anything, mock.Anything)
	f.repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestEngine_ReplayTerminalStatuses(t *testing.T) {
	code := -1
	testCases := []struct {
		name            string
		status          entity.TransactionStatus
		payload         entity.CallbackPayload
		byBuyOrder      bool
		responseCode    *int
		expectedMessage string
	}{
		{
			name:            "failed replays decline",
			status:          entity.StatusFailed,
			payload:         normalPayload("tok-1"),
			responseCode:    &code,
			expectedMessage: MessageFailed,
		},
		{
			name:            "aborted replays cancellation",
			status:          entity.StatusAbortedByUser,
			payload:         entity.CallbackPayload{AbortToken: strPtr("tok-1"), SessionID: strPtr("s")},
			expectedMessage: MessageCanceledByUser,
		},
		{
			name:            "timeout replays inactivity",
			status:          entity.StatusTimeout,
			payload:         entity.CallbackPayload{SessionID: strPtr("s"), BuyOrder: strPtr("ps:123:45")},
			byBuyOrder:      true,
			expectedMessage: MessageTimeout,
		},
		{
			name:            "error replays form error",
			status:          entity.StatusError,
			payload:         entity.CallbackPayload{SuccessToken: strPtr("tok-1"), AbortToken: strPtr("tok-1")},
			expectedMessage: MessageFormError,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			f := newEngineFixture(t)
			txn := record("tok-1", "ps:123:45", 45, 10000, tc.status, entity.ProductWebpayPlus)
			txn.ResponseCode = tc.responseCode

			if tc.byBuyOrder {
				f.repo.EXPECT().FindByBuyOrder(mock.Anything, "ps:123:45").Return(txn, nil).Once()
			} else {
				f.repo.EXPECT().FindByToken(mock.Anything, "tok-1").Return(txn, nil).Once()
			}

			outcome, err := f.engine.Reconcile(context.Background(), tc.payload)

			require.NoError(t, err)
			assert.True(t, outcome.Replayed)
			assert.Equal(t, tc.status, outcome.Status)
			assert.Equal(t, tc.expectedMessage, outcome.Message)
			assert.Equal(t, tc.responseCode, outcome.ResponseCode)
			assert.Equal(t, tc.status, txn.Status)
		})
	}
}

func TestEngine_Normal_CartManipulated(t *testing.T) {
	f := newEngineFixture(t)
	txn := record("tok-1", "ps:123:45", 45, 10000, entity.StatusInitialized, entity.ProductWebpayPlus)

	f.repo.EXPECT().FindByToken(mock.Anything, "tok-1").Return(txn, nil).Once()
	f.expectFreshCart(45, 9, 12000, 0)
	statuses := f.captureSaves(1)

	outcome, err := f.engine.Reconcile(context.Background(), normalPayload("tok-1"))

	require.NoError(t, err)
	assert.Equal(t, entity.StatusFailed, outcome.Status)
	assert.Equal(t, MessageCartManipulated, outcome.Message)
	assert.Equal(t, []entity.TransactionStatus{entity.StatusFailed}, *statuses)
	assert.JSONEq(t, `{"error":"cart manipulated"}`, string(txn.RawGatewayResponse))
	f.gateway.AssertNotCalled(t, "Commit", mock.Anything, mock.Anything, mock.Anything)
}

func TestEngine_Normal_DuplicateCart(t *testing.T) {
	f := newEngineFixture(t)
	txn := record("tok-2", "ps:77:45", 45, 10000, entity.StatusInitialized, entity.ProductWebpayPlus)
	other := record("tok-1", "ps:123:45", 45, 10000, entity.StatusApproved, entity.ProductWebpayPlus)

	f.repo.EXPECT().FindByToken(mock.Anything, "tok-2").Return(txn, nil).Once()
	f.repo.EXPECT().FindApprovedForCart(mock.Anything, int64(45), uint64(7)).Return(other, nil).Once()
	statuses := f.captureSaves(1)

	outcome, err := f.engine.Reconcile(context.Background(), normalPayload("tok-2"))

	require.NoError(t, err)
	assert.Equal(t, MessageDuplicateCart, outcome.Message)
	assert.Equal(t, []entity.TransactionStatus{entity.StatusFailed}, *statuses)
	f.store.AssertNotCalled(t, "GetCart", mock.Anything, mock.Anything)
	f.gateway.AssertNotCalled(t, "Commit", mock.Anything, mock.Anything, mock.Anything)
	f.store.AssertNotCalled(t, "FulfillOrder", mock.Anything, mock.Anything)
}

func TestEngine_Normal_ConcurrentApprovalForCartIsRefunded(t *testing.T) {
	f := newEngineFixture(t)
	txn := record("tok-2", "ps:77:45", 45, 10000, entity.StatusInitialized, entity.ProductWebpayPlus)

	f.repo.EXPECT().FindByToken(mock.Anything, "tok-2").Return(txn, nil).Once()
	f.expectFreshCart(45, 9, 10000, 0)
	f.gateway.EXPECT().Commit(mock.Anything, entity.ProductWebpayPlus, "tok-2").Return(&entity.CommitResult{
		Legs:       []entity.Leg{leg("ps:77:45", "597055555532", 10000, 0, entity.LegStatusAuthorized, "1213")},
		CardNumber: "6623",
	}, nil).Once()

	var saved []entity.TransactionStatus
	f.repo.EXPECT().Save(mock.Anything, txn).
		RunAndReturn(func(_ context.Context, txn *entity.Transaction) error {
			saved = append(saved, txn.Status)
			if txn.Status == entity.StatusApproved {
				return errs.ErrDuplicateTransaction
			}
			return nil
		}).Times(2)
	f.gateway.EXPECT().Refund(mock.Anything, gateway.RefundRequest{
		Product:      entity.ProductWebpayPlus,
		Token:        "tok-2",
		BuyOrder:     "ps:77:45",
		CommerceCode: "597055555532",
		Amount:       decimal.NewFromInt(10000),
	}).Return(&entity.RefundResult{Type: "REVERSED"}, nil).Once()
	f.metrics.EXPECT().RecordRefund(true).Return().Once()

	outcome, err := f.engine.Reconcile(context.Background(), normalPayload("tok-2"))

	require.NoError(t, err)
	assert.Equal(t, entity.StatusFailed, outcome.Status)
	assert.Equal(t, MessageDuplicateCart, outcome.Message)
	assert.Equal(t, []entity.TransactionStatus{entity.StatusApproved, entity.StatusFailed}, saved)
	assert.Equal(t, entity.StatusFailed, txn.Status)
	f.store.AssertNotCalled(t, "FulfillOrder", mock.Anything, mock.Anything)
	f.metrics.AssertNotCalled(t, "RecordReconciliationGap", mock.Anything)
}

func TestEngine_Normal_RefundReportIsLogged(t *testing.T) {
	f := newEngineFixture(t)
	observedLogger := mockcore.NewMockLogger(t)
	for _, level := range []string{"Debug", "Info", "Warn"} {
		observedLogger.On(level, mock.Anything, mock.Anything).Return().Maybe()
	}
	observedLogger.On("With", mock.Anything).Return(observedLogger).Maybe()
	var reported map[string]any
	observedLogger.On("Error", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			if args.String(0) == "Some authorized legs were not refunded, manual follow-up required" {
				reported = args.Get(1).(map[string]any)
			}
		}).Return()
	f.engine = NewEngine(f.repo, f.gateway, f.store, f.clock, observedLogger, f.metrics, "PS_OS_PAYMENT")

	txn := record("tok-1", "ps:123:45", 45, 10000, entity.StatusInitialized, entity.ProductWebpayMall)
	f.repo.EXPECT().FindByToken(mock.Anything, "tok-1").Return(txn, nil).Once()
	f.expectFreshCart(45, 9, 10000, 0)
	f.gateway.EXPECT().Commit(mock.Anything, entity.ProductWebpayMall, "tok-1").Return(&entity.CommitResult{
		Legs: []entity.Leg{
			leg("ps:123:45-PRD", "111", 8000, 0, entity.LegStatusAuthorized, "1"),
			leg("ps:123:45-DLV", "222", 1000, 0, entity.LegStatusAuthorized, "2"),
			leg("ps:123:45-FEE", "333", 1000, -1, "FAILED", ""),
		},
	}, nil).Once()
	f.captureSaves(1)
	f.gateway.EXPECT().Refund(mock.Anything, mock.MatchedBy(func(req gateway.RefundRequest) bool {
		return req.BuyOrder == "ps:123:45-PRD"
	})).Return(&entity.RefundResult{Type: "REVERSED"}, nil).Once()
	f.gateway.EXPECT().Refund(mock.Anything, mock.MatchedBy(func(req gateway.RefundRequest) bool {
		return req.BuyOrder == "ps:123:45-DLV"
	})).Return(nil, errs.NewGatewayRequestError("refund", "tok-1", "ps:123:45-DLV", errors.New("timeout"))).Once()
	f.metrics.EXPECT().RecordRefund(true).Return().Once()
	f.metrics.EXPECT().RecordRefund(false).Return().Once()

	_, err := f.engine.Reconcile(context.Background(), normalPayload("tok-1"))

	require.NoError(t, err)
	require.NotNil(t, reported)
	assert.Equal(t, []string{"ps:123:45-PRD"}, reported["refunded"])
	assert.Equal(t, []string{"ps:123:45-DLV"}, reported["refund_failed"])
}

func TestEngine_Normal_MallPartialAuthorization(t *testing.T) {
	f := newEngineFixture(t)
	txn := record("tok-1", "ps:123:45", 45, 10000, entity.StatusInitialized, entity.ProductWebpayMall)

	f.repo.EXPECT().FindByToken(mock.Anything, "tok-1").Return(txn, nil).Once()
	f.expectFreshCart(45, 9, 8000, 2000)
	f.gateway.EXPECT().Commit(mock.Anything, entity.ProductWebpayMall, "tok-1").Return(&entity.CommitResult{
		Legs: []entity.Leg{
			leg("ps:123:45-PRD", "597055555536", 8000, 0, entity.LegStatusAuthorized, "1415"),
			leg("ps:123:45-DLV", "597055555537", 2000, -1, "FAILED", ""),
		},
		CardNumber: "6623",
	}, nil).Once()
	statuses := f.captureSaves(1)
	f.gateway.EXPECT().Refund(mock.Anything, gateway.RefundRequest{
		Product:      entity.ProductWebpayMall,
		Token:        "tok-1",
		BuyOrder:     "ps:123:45-PRD",
		CommerceCode: "597055555536",
		Amount:       decimal.NewFromInt(8000),
	}).Return(&entity.RefundResult{Type: "REVERSED"}, nil).Once()
	f.metrics.EXPECT().RecordRefund(true).Return().Once()

	outcome, err := f.engine.Reconcile(context.Background(), normalPayload("tok-1"))

	require.NoError(t, err)
	assert.Equal(t, entity.StatusFailed, outcome.Status)
	assert.Equal(t, MessageFailed, outcome.Message)
	require.NotNil(t, outcome.ResponseCode)
	assert.Equal(t, -1, *outcome.ResponseCode)
	assert.Equal(t, []entity.TransactionStatus{entity.StatusFailed}, *statuses)
	f.store.AssertNotCalled(t, "FulfillOrder", mock.Anything, mock.Anything)
}

func TestEngine_Normal_RefundFailureDoesNotBlock(t *testing.T) {
	f := newEngineFixture(t)
	txn := record("tok-1", "ps:123:45", 45, 10000, entity.StatusInitialized, entity.ProductWebpayMall)

	f.repo.EXPECT().FindByToken(mock.Anything, "tok-1").Return(txn, nil).Once()
	f.expectFreshCart(45, 9, 10000, 0)
	f.gateway.EXPECT().Commit(mock.Anything, entity.ProductWebpayMall, "tok-1").Return(&entity.CommitResult{
		Legs: []entity.Leg{
			leg("ps:123:45-A", "111", 4000, 0, entity.LegStatusAuthorized, "1"),
			leg("ps:123:45-B", "222", 4000, 0, entity.LegStatusAuthorized, "2"),
			leg("ps:123:45-C", "333", 2000, -3, "FAILED", ""),
		},
	}, nil).Once()
	f.captureSaves(1)
	f.gateway.EXPECT().Refund(mock.Anything, mock.MatchedBy(func(req gateway.RefundRequest) bool {
		return req.BuyOrder == "ps:123:45-A"
	})).Return(nil, errs.NewGatewayRequestError("refund", "tok-1", "ps:123:45-A", errors.New("timeout"))).Once()
	f.gateway.EXPECT().Refund(mock.Anything, mock.MatchedBy(func(req gateway.RefundRequest) bool {
		return req.BuyOrder == "ps:123:45-B"
	})).Return(&entity.RefundResult{Type: "REVERSED"}, nil).Once()
	f.metrics.EXPECT().RecordRefund(false).Return().Once()
	f.metrics.EXPECT().RecordRefund(true).Return().Once()

	outcome, err := f.engine.Reconcile(context.Background(), normalPayload("tok-1"))

	require.NoError(t, err)
	assert.Equal(t, entity.StatusFailed, outcome.Status)
	require.NotNil(t, outcome.ResponseCode)
	assert.Equal(t, -3, *outcome.ResponseCode)
}

func TestEngine_Normal_SingleLegDeclined(t *testing.T) {
	f := newEngineFixture(t)
	txn := record("tok-1", "ps:123:45", 45, 10000, entity.StatusInitialized, entity.ProductWebpayPlus)

	f.repo.EXPECT().FindByToken(mock.Anything, "tok-1").Return(txn, nil).Once()
	f.expectFreshCart(45, 9, 10000, 0)
	f.gateway.EXPECT().Commit(mock.Anything, entity.ProductWebpayPlus, "tok-1").Return(&entity.CommitResult{
		Legs: []entity.Leg{leg("ps:123:45", "597055555532", 10000, -1, "FAILED", "")},
	}, nil).Once()
	f.captureSaves(1)

	outcome, err := f.engine.Reconcile(context.Background(), normalPayload("tok-1"))

	require.NoError(t, err)
	assert.Equal(t, MessageFailed, outcome.Message)
	assert.Equal(t, entity.StatusFailed, txn.Status)
	require.NotNil(t, txn.ResponseCode)
	assert.Equal(t, -1, *txn.ResponseCode)
	f.gateway.AssertNotCalled(t, "Refund", mock.Anything, mock.Anything)
}

func TestEngine_Normal_CommitErrorLeavesRecordUntouched(t *testing.T) {
	f := newEngineFixture(t)
	txn := record("tok-1", "ps:123:45", 45, 10000, entity.StatusInitialized, entity.ProductWebpayPlus)

	f.repo.EXPECT().FindByToken(mock.Anything, "tok-1").Return(txn, nil).Once()
	f.expectFreshCart(45, 9, 10000, 0)
	f.gateway.EXPECT().Commit(mock.Anything, entity.ProductWebpayPlus, "tok-1").
		Return(nil, errs.NewGatewayRequestError("commit", "tok-1", "", errors.New("503"))).Once()

	outcome, err := f.engine.Reconcile(context.Background(), normalPayload("tok-1"))

	assert.Nil(t, outcome)
	assert.ErrorIs(t, err, errs.ErrGatewayRequest)
	assert.Equal(t, entity.StatusInitialized, txn.Status)
	f.repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestEngine_Normal_SaveFailureAfterCommitIsGap(t *testing.T) {
	f := newEngineFixture(t)
	txn := record("tok-1", "ps:123:45", 45, 10000, entity.StatusInitialized, entity.ProductWebpayPlus)

	f.repo.EXPECT().FindByToken(mock.Anything, "tok-1").Return(txn, nil).Once()
	f.expectFreshCart(45, 9, 10000, 0)
	f.gateway.EXPECT().Commit(mock.Anything, entity.ProductWebpayPlus, "tok-1").Return(&entity.CommitResult{
		Legs: []entity.Leg{leg("ps:123:45", "597055555532", 10000, 0, entity.LegStatusAuthorized, "1213")},
	}, nil).Once()
	f.repo.EXPECT().Save(mock.Anything, txn).Return(errs.ErrStorage).Once()
	f.metrics.EXPECT().RecordReconciliationGap("save_approved").Return().Once()

	outcome, err := f.engine.Reconcile(context.Background(), normalPayload("tok-1"))

	assert.Nil(t, outcome)
	require.Error(t, err)
	assert.True(t, errs.IsReconciliationGap(err))
	assert.ErrorIs(t, err, errs.ErrStorage)

	var gapErr *errs.ReconciliationGapError
	require.ErrorAs(t, err, &gapErr)
	assert.Equal(t, "10000", gapErr.Amount)
	assert.Equal(t, "ps:123:45", gapErr.BuyOrder)
	assert.Equal(t, string(entity.StatusApproved), gapErr.Status)
	f.store.AssertNotCalled(t, "FulfillOrder", mock.Anything, mock.Anything)
}

func TestEngine_Normal_FulfillmentFailureIsGap(t *testing.T) {
	f := newEngineFixture(t)
	txn := record("tok-1", "ps:123:45", 45, 10000, entity.StatusInitialized, entity.ProductWebpayPlus)

	f.repo.EXPECT().FindByToken(mock.Anything, "tok-1").Return(txn, nil).Once()
	f.expectFreshCart(45, 9, 10000, 0)
	f.gateway.EXPECT().Commit(mock.Anything, entity.ProductWebpayPlus, "tok-1").Return(&entity.CommitResult{
		Legs: []entity.Leg{leg("ps:123:45", "597055555532", 10000, 0, entity.LegStatusAuthorized, "1213")},
	}, nil).Once()
	f.captureSaves(1)
	f.store.EXPECT().FulfillOrder(mock.Anything, mock.Anything).Return(int64(0), errs.ErrCommerceRequest).Once()
	f.metrics.EXPECT().RecordReconciliationGap("fulfill_order").Return().Once()

	_, err := f.engine.Reconcile(context.Background(), normalPayload("tok-1"))

	assert.True(t, errs.IsReconciliationGap(err))
	assert.Equal(t, entity.StatusApproved, txn.Status)
}

func TestEngine_Normal_ConcurrentDeliveryReplays(t *testing.T) {
	f := newEngineFixture(t)
	txn := record("tok-1", "ps:123:45", 45, 10000, entity.StatusInitialized, entity.ProductWebpayPlus)
	code := -1
	winner := record("tok-1", "ps:123:45", 45, 10000, entity.StatusFailed, entity.ProductWebpayPlus)
	winner.ResponseCode = &code

	f.repo.EXPECT().FindByToken(mock.Anything, "tok-1").Return(txn, nil).Once()
	f.expectFreshCart(45, 9, 10000, 0)
	f.gateway.EXPECT().Commit(mock.Anything, entity.ProductWebpayPlus, "tok-1").Return(&entity.CommitResult{
		Legs: []entity.Leg{leg("ps:123:45", "597055555532", 10000, -1, "FAILED", "")},
	}, nil).Once()
	f.repo.EXPECT().Save(mock.Anything, txn).Return(errs.ErrConcurrentModification).Once()
	f.repo.EXPECT().FindByToken(mock.Anything, "tok-1").Return(winner, nil).Once()

	outcome, err := f.engine.Reconcile(context.Background(), normalPayload("tok-1"))

	require.NoError(t, err)
	assert.True(t, outcome.Replayed)
	assert.Equal(t, entity.StatusFailed, outcome.Status)
	assert.Equal(t, MessageFailed, outcome.Message)
	f.gateway.AssertNotCalled(t, "Refund", mock.Anything, mock.Anything)
}

func TestEngine_Normal_TokenNotFound(t *testing.T) {
	f := newEngineFixture(t)
	f.repo.EXPECT().FindByToken(mock.Anything, "missing").Return(nil, errs.ErrTransactionNotFound).Once()

	outcome, err := f.engine.Reconcile(context.Background(), normalPayload("missing"))

	assert.Nil(t, outcome)
	assert.True(t, errs.IsNotFoundError(err))
}

func TestEngine_UserTerminalFlows(t *testing.T) {
	testCases := []struct {
		name            string
		payload         entity.CallbackPayload
		expectedStatus  entity.TransactionStatus
		expectedMessage string
	}{
		{
			name:            "aborted by user",
			payload:         entity.CallbackPayload{AbortToken: strPtr("tok-1"), SessionID: strPtr("s"), BuyOrder: strPtr("ps:123:45")},
			expectedStatus:  entity.StatusAbortedByUser,
			expectedMessage: MessageCanceledByUser,
		},
		{
			name:            "form error",
			payload:         entity.CallbackPayload{SuccessToken: strPtr("tok-1"), AbortToken: strPtr("tok-1"), SessionID: strPtr("s")},
			expectedStatus:  entity.StatusError,
			expectedMessage: MessageFormError,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			f := newEngineFixture(t)
			txn := record("tok-1", "ps:123:45", 45, 10000, entity.StatusInitialized, entity.ProductWebpayPlus)
			f.repo.EXPECT().FindByToken(mock.Anything, "tok-1").Return(txn, nil).Once()
			statuses := f.captureSaves(1)

			outcome, err := f.engine.Reconcile(context.Background(), tc.payload)

			require.NoError(t, err)
			assert.Equal(t, tc.expectedStatus, outcome.Status)
			assert.Equal(t, tc.expectedMessage, outcome.Message)
			assert.Equal(t, []entity.TransactionStatus{tc.expectedStatus}, *statuses)
			f.gateway.AssertNotCalled(t, "Commit", mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestEngine_Timeout(t *testing.T) {
	t.Run("marks record as timed out", func(t *testing.T) {
		f := newEngineFixture(t)
		txn := record("tok-1", "ps:123:45", 45, 10000, entity.StatusInitialized, entity.ProductWebpayPlus)
		f.repo.EXPECT().FindByBuyOrder(mock.Anything, "ps:123:45").Return(txn, nil).Once()
		statuses := f.captureSaves(1)

		outcome, err := f.engine.Reconcile(context.Background(), entity.CallbackPayload{
			SessionID: strPtr("s"),
			BuyOrder:  strPtr("ps:123:45"),
		})

		require.NoError(t, err)
		assert.Equal(t, MessageTimeout, outcome.Message)
		assert.Equal(t, []entity.TransactionStatus{entity.StatusTimeout}, *statuses)
	})

	t.Run("unknown buy order changes nothing", func(t *testing.T) {
		f := newEngineFixture(t)
		f.repo.EXPECT().FindByBuyOrder(mock.Anything, "ps:9:9").Return(nil, errs.ErrTransactionNotFound).Once()

		outcome, err := f.engine.Reconcile(context.Background(), entity.CallbackPayload{
			SessionID: strPtr("s"),
			BuyOrder:  strPtr("ps:9:9"),
		})

		require.NoError(t, err)
		assert.Equal(t, entity.StatusTimeout, outcome.Status)
		assert.Equal(t, MessageTimeout, outcome.Message)
		f.repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("missing buy order changes nothing", func(t *testing.T) {
		f := newEngineFixture(t)

		outcome, err := f.engine.Reconcile(context.Background(), entity.CallbackPayload{SessionID: strPtr("s")})

		require.NoError(t, err)
		assert.Equal(t, MessageTimeout, outcome.Message)
	})
}

func TestEngine_Aborted_StorageFailure(t *testing.T) {
	f := newEngineFixture(t)
	txn := record("tok-1", "ps:123:45", 45, 10000, entity.StatusInitialized, entity.ProductWebpayPlus)
	f.repo.EXPECT().FindByToken(mock.Anything, "tok-1").Return(txn, nil).Once()
	f.repo.EXPECT().Save(mock.Anything, txn).Return(errs.ErrStorage).Once()

	outcome, err := f.engine.Reconcile(context.Background(), entity.CallbackPayload{
		AbortToken: strPtr("tok-1"),
		SessionID:  strPtr("s"),
	})

	assert.Nil(t, outcome)
	assert.ErrorIs(t, err, errs.ErrStorage)
	assert.False(t, errs.IsReconciliationGap(err))
}
