package reconciliation

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/webpay-reconciler/internal/domain/entity"
	errs "github.com/amirhossein-jamali/webpay-reconciler/internal/domain/error"
	mockcommerce "github.com/amirhossein-jamali/webpay-reconciler/mocks/port/commerce"
	mockcore "github.com/amirhossein-jamali/webpay-reconciler/mocks/port/core"
	mockgateway "github.com/amirhossein-jamali/webpay-reconciler/mocks/port/gateway"
	mockpersistence "github.com/amirhossein-jamali/webpay-reconciler/mocks/port/persistence"
	mockpresenter "github.com/amirhossein-jamali/webpay-reconciler/mocks/port/presenter"
)

type serviceFixture struct {
	repo      *mockpersistence.MockTransactionRepository
	gateway   *mockgateway.MockPaymentGateway
	store     *mockcommerce.MockStore
	metrics   *mockcore.MockMetricsRecorder
	presenter *mockpresenter.MockOutcomePresenter
	service   *Service
}

func newServiceFixture(t *testing.T, config Config) *serviceFixture {
	f := &serviceFixture{
		repo:      mockpersistence.NewMockTransactionRepository(t),
		gateway:   mockgateway.NewMockPaymentGateway(t),
		store:     mockcommerce.NewMockStore(t),
		metrics:   mockcore.NewMockMetricsRecorder(t),
		presenter: mockpresenter.NewMockOutcomePresenter(t),
	}
	clock := mockcore.NewMockTimeProvider(t)
	clock.On("Now").Return(fixedNow).Maybe()
	logger := mockcore.NewMockLogger(t)
	allowLogging(logger)

	f.service = NewService(f.repo, f.gateway, f.store, clock, logger, f.metrics, config)
	return f
}

func TestService_HandleCallback_ModuleInactive(t *testing.T) {
	f := newServiceFixture(t, Config{ModuleActive: false})
	f.presenter.EXPECT().PresentError(mock.Anything, MessageException, (*int)(nil)).Return().Once()

	outcome, err := f.service.HandleCallback(context.Background(), normalPayload("tok-1"), f.presenter)

	assert.Nil(t, outcome)
	assert.ErrorIs(t, err, errs.ErrModuleInactive)
	f.repo.AssertNotCalled(t, "FindByToken", mock.Anything, mock.Anything)
}

func TestService_HandleCallback_InvalidPayload(t *testing.T) {
	f := newServiceFixture(t, Config{ModuleActive: true, SerializeDeliveries: true})
	f.presenter.EXPECT().PresentError(mock.Anything, MessageException, (*int)(nil)).Return().Once()
	f.metrics.EXPECT().RecordOutcome("invalid", "EXCEPTION", false).Return().Once()

	outcome, err := f.service.HandleCallback(context.Background(), entity.CallbackPayload{}, f.presenter)

	assert.Nil(t, outcome)
	assert.ErrorIs(t, err, errs.ErrClassification)
}

func TestService_HandleCallback_PresentsAfterPersisting(t *testing.T) {
	f := newServiceFixture(t, Config{ModuleActive: true, SerializeDeliveries: true, StatusAfterPayment: "2"})
	txn := record("tok-1", "ps:123:45", 45, 10000, entity.StatusInitialized, entity.ProductWebpayPlus)
	cart := &entity.Cart{ID: 45, CustomerID: 9}

	var events []string
	f.repo.EXPECT().FindByToken(mock.Anything, "tok-1").Return(txn, nil).Once()
	f.repo.EXPECT().FindApprovedForCart(mock.Anything, int64(45), uint64(7)).Return(nil, errs.ErrTransactionNotFound).Once()
	f.store.EXPECT().GetCart(mock.Anything, int64(45)).Return(cart, nil).Once()
	f.store.EXPECT().ComputeCartTotal(mock.Anything, cart).Return(entity.CartTotal{Products: decimal.NewFromInt(10000)}, nil).Once()
	f.gateway.EXPECT().Commit(mock.Anything, entity.ProductWebpayPlus, "tok-1").Return(&entity.CommitResult{
		Legs: []entity.Leg{leg("ps:123:45", "597055555532", 10000, 0, entity.LegStatusAuthorized, "1213")},
	}, nil).Once()
	f.repo.EXPECT().Save(mock.Anything, txn).Run(func(_ context.Context, _ *entity.Transaction) {
		events = append(events, "save")
	}).Return(nil).Twice()
	f.store.EXPECT().FulfillOrder(mock.Anything, mock.Anything).Return(int64(501), nil).Once()
	f.store.EXPECT().AttachPaymentMetadata(mock.Anything, int64(501), mock.Anything).Return(nil).Once()
	f.store.EXPECT().GetCustomer(mock.Anything, int64(9)).Return(&entity.Customer{ID: 9}, nil).Once()
	f.metrics.EXPECT().RecordOutcome("normal", "APPROVED", false).Return().Once()
	f.presenter.EXPECT().PresentSuccess(mock.Anything, cart).Run(func(_ context.Context, _ *entity.Cart) {
		events = append(events, "present")
	}).Return().Once()

	outcome, err := f.service.HandleCallback(context.Background(), normalPayload("tok-1"), f.presenter)

	require.NoError(t, err)
	assert.True(t, outcome.IsSuccess())
	assert.Equal(t, []string{"save", "save", "present"}, events)
	assert.Equal(t, 0, f.service.sequencer.Pending())
}

func TestService_HandleCallback_PresentsErrorOutcome(t *testing.T) {
	f := newServiceFixture(t, Config{ModuleActive: true})
	txn := record("tok-1", "ps:123:45", 45, 10000, entity.StatusInitialized, entity.ProductWebpayPlus)
	f.repo.EXPECT().FindByToken(mock.Anything, "tok-1").Return(txn, nil).Once()
	f.repo.EXPECT().Save(mock.Anything, txn).Return(nil).Once()
	f.metrics.EXPECT().RecordOutcome("aborted", "ABORTED_BY_USER", false).Return().Once()
	f.presenter.EXPECT().PresentError(mock.Anything, MessageCanceledByUser, (*int)(nil)).Return().Once()

	outcome, err := f.service.HandleCallback(context.Background(), entity.CallbackPayload{
		AbortToken: strPtr("tok-1"),
		SessionID:  strPtr("s"),
	}, f.presenter)

	require.NoError(t, err)
	assert.Equal(t, entity.StatusAbortedByUser, outcome.Status)
}

func TestService_HandleCallback_ReplayIsCounted(t *testing.T) {
	f := newServiceFixture(t, Config{ModuleActive: true, SerializeDeliveries: true})
	txn := record("tok-1", "ps:123:45", 45, 10000, entity.StatusTimeout, entity.ProductWebpayPlus)
	f.repo.EXPECT().FindByBuyOrder(mock.Anything, "ps:123:45").Return(txn, nil).Once()
	f.metrics.EXPECT().RecordOutcome("timeout", "TIMEOUT", true).Return().Once()
	f.presenter.EXPECT().PresentError(mock.Anything, MessageTimeout, (*int)(nil)).Return().Once()

	outcome, err := f.service.HandleCallback(context.Background(), entity.CallbackPayload{
		SessionID: strPtr("s"),
		BuyOrder:  strPtr("ps:123:45"),
	}, f.presenter)

	require.NoError(t, err)
	assert.True(t, outcome.Replayed)
}
