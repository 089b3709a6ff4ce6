package orders

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/afeayo2/Econmmerce/internal/application/notification"
	"github.com/afeayo2/Econmmerce/internal/domain/order"
	"github.com/afeayo2/Econmmerce/internal/domain/product"
	"github.com/afeayo2/Econmmerce/internal/infrastructure/encoding/avro"
	"github.com/afeayo2/Econmmerce/pkg/logger"
)

type MockOrderRepo struct {
	mock.Mock
}

func (m *MockOrderRepo) Save(ctx context.Context, o *order.Order) error {
	return m.Called(ctx, o).Error(0)
}

func (m *MockOrderRepo) FindByID(ctx context.Context, id string) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepo) FindByCustomer(ctx context.Context, customerID string) ([]*order.Order, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderRepo) FindAll(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

type MockProductRepo struct {
	mock.Mock
}

func (m *MockProductRepo) Save(ctx context.Context, p *product.Product) error {
	return m.Called(ctx, p).Error(0)
}

func (m *MockProductRepo) FindByID(ctx context.Context, id string) (*product.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*product.Product), args.Error(1)
}

func (m *MockProductRepo) FindAll(ctx context.Context) ([]*product.Product, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*product.Product), args.Error(1)
}

func (m *MockProductRepo) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockProductRepo) DecrementStock(ctx context.Context, id string, quantity int) (bool, error) {
	args := m.Called(ctx, id, quantity)
	return args.Bool(0), args.Error(1)
}

func (m *MockProductRepo) IncrementStock(ctx context.Context, id string, quantity int) error {
	return m.Called(ctx, id, quantity).Error(0)
}

type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) PublishNotification(ctx context.Context, payload []byte) error {
	return m.Called(ctx, payload).Error(0)
}

func newTestService(t *testing.T, ordersRepo *MockOrderRepo, products *MockProductRepo, publisher *MockPublisher) *StatusService {
	t.Helper()
	codec, err := avro.NewCodec(avro.EmailMessageSchema)
	require.NoError(t, err)
	dispatcher := notification.NewDispatcher(codec, publisher, logger.NewNop())
	return NewStatusService(ordersRepo, products, dispatcher, logger.NewNop())
}

func confirmedOrder() *order.Order {
	return &order.Order{
		ID:            "o1",
		CustomerID:    "c1",
		CustomerName:  "Ada",
		Email:         "ada@example.com",
		Address:       "12 Main St",
		Items:         []order.LineItem{{ProductID: "p1", Name: "Ring", Price: 1000, Quantity: 2}},
		TotalAmount:   2000,
		PaymentMethod: order.PaymentMethodPaystack,
		PaymentStatus: order.PaymentPaid,
		Status:        order.StatusConfirmed,
	}
}

func statusPtr(s order.Status) *order.Status { return &s }

func paymentStatusPtr(s order.PaymentStatus) *order.PaymentStatus { return &s }

func decodeMessage(t *testing.T, payload []byte) notification.Message {
	t.Helper()
	codec, err := avro.NewCodec(avro.EmailMessageSchema)
	require.NoError(t, err)
	data, err := codec.DecodeJSON(payload)
	require.NoError(t, err)
	var msg notification.Message
	require.NoError(t, json.Unmarshal(data, &msg))
	return msg
}

func TestUpdate_OrderNotFound(t *testing.T) {
	ordersRepo := new(MockOrderRepo)
	svc := newTestService(t, ordersRepo, new(MockProductRepo), new(MockPublisher))

	ordersRepo.On("FindByID", mock.Anything, "ghost").Return(nil, nil)

	_, err := svc.Update(context.Background(), UpdateCommand{OrderID: "ghost", Status: statusPtr(order.StatusConfirmed)})

	assert.ErrorIs(t, err, order.ErrOrderNotFound)
}

func TestUpdate_ShippedWithTracking(t *testing.T) {
	ordersRepo := new(MockOrderRepo)
	publisher := new(MockPublisher)
	svc := newTestService(t, ordersRepo, new(MockProductRepo), publisher)

	o := confirmedOrder()
	eta := time.Date(2026, 9, 12, 0, 0, 0, 0, time.UTC)
	shipping := &order.Shipping{Courier: "DHL", TrackingNo: "TRK-42", EstimatedDelivery: &eta}

	ordersRepo.On("FindByID", mock.Anything, "o1").Return(o, nil)
	ordersRepo.On("Save", mock.Anything, o).Return(nil)
	publisher.On("PublishNotification", mock.Anything, mock.Anything).Return(nil).Once()

	updated, err := svc.Update(context.Background(), UpdateCommand{
		OrderID:  "o1",
		Status:   statusPtr(order.StatusShipped),
		Shipping: shipping,
	})

	require.NoError(t, err)
	assert.Equal(t, order.StatusShipped, updated.Status)
	require.NotNil(t, updated.Shipping)
	assert.Equal(t, "TRK-42", updated.Shipping.TrackingNo)

	publisher.AssertNumberOfCalls(t, "PublishNotification", 1)
	msg := decodeMessage(t, publisher.Calls[0].Arguments.Get(1).([]byte))
	assert.Equal(t, "ada@example.com", msg.To)
	assert.Contains(t, msg.Subject, "shipped")
	assert.Contains(t, msg.HTML, "TRK-42")
}

func TestUpdate_IllegalTransitionRejected(t *testing.T) {
	ordersRepo := new(MockOrderRepo)
	publisher := new(MockPublisher)
	svc := newTestService(t, ordersRepo, new(MockProductRepo), publisher)

	o := confirmedOrder()
	o.Status = order.StatusPending
	ordersRepo.On("FindByID", mock.Anything, "o1").Return(o, nil)

	_, err := svc.Update(context.Background(), UpdateCommand{
		OrderID: "o1",
		Status:  statusPtr(order.StatusDelivered),
	})

	assert.ErrorIs(t, err, order.ErrInvalidTransition)
	ordersRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	publisher.AssertNotCalled(t, "PublishNotification", mock.Anything, mock.Anything)
}

func TestUpdate_CancelRestocksItems(t *testing.T) {
	ordersRepo := new(MockOrderRepo)
	products := new(MockProductRepo)
	publisher := new(MockPublisher)
	svc := newTestService(t, ordersRepo, products, publisher)

	o := confirmedOrder()
	ordersRepo.On("FindByID", mock.Anything, "o1").Return(o, nil)
	ordersRepo.On("Save", mock.Anything, o).Return(nil)
	products.On("IncrementStock", mock.Anything, "p1", 2).Return(nil)
	publisher.On("PublishNotification", mock.Anything, mock.Anything).Return(nil)

	updated, err := svc.Update(context.Background(), UpdateCommand{
		OrderID: "o1",
		Status:  statusPtr(order.StatusCancelled),
	})

	require.NoError(t, err)
	assert.Equal(t, order.StatusCancelled, updated.Status)
	products.AssertExpectations(t)
}

func TestUpdate_PaymentStatusOnly_NoNotification(t *testing.T) {
	ordersRepo := new(MockOrderRepo)
	publisher := new(MockPublisher)
	svc := newTestService(t, ordersRepo, new(MockProductRepo), publisher)

	o := confirmedOrder()
	o.PaymentStatus = order.PaymentPending
	ordersRepo.On("FindByID", mock.Anything, "o1").Return(o, nil)
	ordersRepo.On("Save", mock.Anything, o).Return(nil)

	updated, err := svc.Update(context.Background(), UpdateCommand{
		OrderID:       "o1",
		PaymentStatus: paymentStatusPtr(order.PaymentPaid),
	})

	require.NoError(t, err)
	assert.Equal(t, order.PaymentPaid, updated.PaymentStatus)
	publisher.AssertNotCalled(t, "PublishNotification", mock.Anything, mock.Anything)
}

func TestUpdate_NotificationFailureDoesNotFailRequest(t *testing.T) {
	ordersRepo := new(MockOrderRepo)
	publisher := new(MockPublisher)
	svc := newTestService(t, ordersRepo, new(MockProductRepo), publisher)

	o := confirmedOrder()
	o.Status = order.StatusPending
	ordersRepo.On("FindByID", mock.Anything, "o1").Return(o, nil)
	ordersRepo.On("Save", mock.Anything, o).Return(nil)
	publisher.On("PublishNotification", mock.Anything, mock.Anything).Return(errors.New("broker down"))

	updated, err := svc.Update(context.Background(), UpdateCommand{
		OrderID: "o1",
		Status:  statusPtr(order.StatusConfirmed),
	})

	require.NoError(t, err)
	assert.Equal(t, order.StatusConfirmed, updated.Status)
}
