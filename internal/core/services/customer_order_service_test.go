package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/facturio/facturio/internal/apperrors"
	"github.com/facturio/facturio/internal/core/domain"
	portsrepo "github.com/facturio/facturio/internal/core/ports/repositories"
	portssvc "github.com/facturio/facturio/internal/core/ports/services"
	"github.com/facturio/facturio/internal/core/services"
	"github.com/facturio/facturio/internal/dto"
)

// MockCustomerOrderRepository is a mock type for the CustomerOrderRepositoryFacade interface
type MockCustomerOrderRepository struct {
	mock.Mock
}

func (m *MockCustomerOrderRepository) FindCustomerOrderByID(ctx context.Context, orderID string) (*domain.CustomerOrder, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CustomerOrder), args.Error(1)
}

func (m *MockCustomerOrderRepository) FindCustomerOrderWithItems(ctx context.Context, orderID string) (*domain.CustomerOrder, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CustomerOrder), args.Error(1)
}

func (m *MockCustomerOrderRepository) FindCustomerOrderItems(ctx context.Context, orderID string) ([]domain.LineItem, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LineItem), args.Error(1)
}

func (m *MockCustomerOrderRepository) ListCustomerOrders(ctx context.Context, filter portsrepo.ListOrdersFilter) ([]domain.CustomerOrder, int64, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]domain.CustomerOrder), args.Get(1).(int64), args.Error(2)
}

func (m *MockCustomerOrderRepository) CreateCustomerOrder(ctx context.Context, order domain.CustomerOrder) (*domain.CustomerOrder, error) {
	args := m.Called(ctx, order)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CustomerOrder), args.Error(1)
}

func (m *MockCustomerOrderRepository) UpdateCustomerOrder(ctx context.Context, order domain.CustomerOrder) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

func (m *MockCustomerOrderRepository) AddCustomerOrderItem(ctx context.Context, item domain.LineItem) (*domain.CustomerOrder, error) {
	args := m.Called(ctx, item)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CustomerOrder), args.Error(1)
}

func (m *MockCustomerOrderRepository) UpdateCustomerOrderItem(ctx context.Context, item domain.LineItem) (*domain.CustomerOrder, error) {
	args := m.Called(ctx, item)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CustomerOrder), args.Error(1)
}

func (m *MockCustomerOrderRepository) DeleteCustomerOrderItem(ctx context.Context, orderID, itemID string) (*domain.CustomerOrder, error) {
	args := m.Called(ctx, orderID, itemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CustomerOrder), args.Error(1)
}

type CustomerOrderServiceTestSuite struct {
	suite.Suite
	mockOrderRepo *MockCustomerOrderRepository
	service       portssvc.CustomerOrderSvcFacade
	ctx           context.Context
}

func (s *CustomerOrderServiceTestSuite) SetupTest() {
	s.mockOrderRepo = new(MockCustomerOrderRepository)
	s.service = services.NewCustomerOrderService(s.mockOrderRepo)
	s.ctx = context.Background()
}

func TestCustomerOrderServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CustomerOrderServiceTestSuite))
}

func draftCustomerOrder(orderID string) *domain.CustomerOrder {
	return &domain.CustomerOrder{
		OrderID:   orderID,
		Number:    "CMD-00003",
		ClientID:  uuid.NewString(),
		OrderDate: time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC),
		Status:    domain.CustomerOrderStatusDraft,
	}
}

func (s *CustomerOrderServiceTestSuite) TestCreateCustomerOrder_Success() {
	var captured domain.CustomerOrder
	numbered := draftCustomerOrder(uuid.NewString())
	numbered.Number = "CMD-00001"

	s.mockOrderRepo.On("CreateCustomerOrder", s.ctx, mock.AnythingOfType("domain.CustomerOrder")).
		Run(func(args mock.Arguments) {
			captured = args.Get(1).(domain.CustomerOrder)
		}).
		Return(numbered, nil).Once()

	req := dto.CreateCustomerOrderRequest{
		ClientID:    "client-1",
		OrderDate:   "2025-04-01",
		Description: "Spring restock",
	}
	created, err := s.service.CreateCustomerOrder(s.ctx, req, "testuser")

	s.Require().NoError(err)
	s.Equal("CMD-00001", created.Number)
	s.Equal(domain.CustomerOrderStatusDraft, captured.Status)
	s.Equal("client-1", captured.ClientID)
	s.True(captured.Subtotal.IsZero())
	s.True(captured.Total.IsZero())
	s.Equal("testuser", captured.CreatedBy)
	s.Equal("testuser", captured.LastUpdatedBy)
	s.mockOrderRepo.AssertExpectations(s.T())
}

func (s *CustomerOrderServiceTestSuite) TestCreateCustomerOrder_InvalidOrderDate() {
	req := dto.CreateCustomerOrderRequest{ClientID: "client-1", OrderDate: "01/04/2025"}

	created, err := s.service.CreateCustomerOrder(s.ctx, req, "testuser")

	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrValidation)
	s.Nil(created)
	s.mockOrderRepo.AssertNotCalled(s.T(), "CreateCustomerOrder", mock.Anything, mock.Anything)
}

func (s *CustomerOrderServiceTestSuite) TestTransitionCustomerOrder_DraftToPending() {
	orderID := uuid.NewString()
	s.mockOrderRepo.On("FindCustomerOrderByID", s.ctx, orderID).Return(draftCustomerOrder(orderID), nil).Once()
	s.mockOrderRepo.On("UpdateCustomerOrder", s.ctx, mock.MatchedBy(func(o domain.CustomerOrder) bool {
		return o.Status == domain.CustomerOrderStatusPending
	})).Return(nil).Once()

	updated, err := s.service.TransitionCustomerOrder(s.ctx, orderID, domain.CustomerOrderStatusPending, "testuser")

	s.Require().NoError(err)
	s.Equal(domain.CustomerOrderStatusPending, updated.Status)
	s.mockOrderRepo.AssertExpectations(s.T())
}

func (s *CustomerOrderServiceTestSuite) TestTransitionCustomerOrder_DraftToCompletedRejected() {
	orderID := uuid.NewString()
	s.mockOrderRepo.On("FindCustomerOrderByID", s.ctx, orderID).Return(draftCustomerOrder(orderID), nil).Once()

	updated, err := s.service.TransitionCustomerOrder(s.ctx, orderID, domain.CustomerOrderStatusCompleted, "testuser")

	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrInvalidTransition)
	s.Nil(updated)
	s.mockOrderRepo.AssertNotCalled(s.T(), "UpdateCustomerOrder", mock.Anything, mock.Anything)
}

func (s *CustomerOrderServiceTestSuite) TestTransitionCustomerOrder_UnknownStatus() {
	updated, err := s.service.TransitionCustomerOrder(s.ctx, uuid.NewString(), domain.CustomerOrderStatus("shipped"), "testuser")

	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrValidation)
	s.Nil(updated)
	s.mockOrderRepo.AssertNotCalled(s.T(), "FindCustomerOrderByID", mock.Anything, mock.Anything)
}

func (s *CustomerOrderServiceTestSuite) TestUpdateCustomerOrder_RejectsConfirmed() {
	orderID := uuid.NewString()
	order := draftCustomerOrder(orderID)
	order.Status = domain.CustomerOrderStatusConfirmed
	s.mockOrderRepo.On("FindCustomerOrderByID", s.ctx, orderID).Return(order, nil).Once()

	desc := "new description"
	updated, err := s.service.UpdateCustomerOrder(s.ctx, orderID, dto.UpdateCustomerOrderRequest{Description: &desc}, "testuser")

	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrConflict)
	s.Nil(updated)
	s.mockOrderRepo.AssertNotCalled(s.T(), "UpdateCustomerOrder", mock.Anything, mock.Anything)
}

func (s *CustomerOrderServiceTestSuite) TestAddCustomerOrderItem_ComputesAmounts() {
	orderID := uuid.NewString()
	s.mockOrderRepo.On("FindCustomerOrderByID", s.ctx, orderID).Return(draftCustomerOrder(orderID), nil).Once()
	s.mockOrderRepo.On("AddCustomerOrderItem", s.ctx, mock.MatchedBy(func(item domain.LineItem) bool {
		return item.DocumentID == orderID &&
			item.Subtotal.Equal(decimal.RequireFromString("33.33")) &&
			item.Tax.Equal(decimal.RequireFromString("6.67")) &&
			item.Total.Equal(decimal.RequireFromString("40"))
	})).Return(draftCustomerOrder(orderID), nil).Once()

	req := dto.AddItemRequest{
		Description: "Widget",
		Quantity:    decimal.RequireFromString("2"),
		UnitPrice:   decimal.RequireFromString("16.665"),
		TaxRate:     decimal.RequireFromString("20"),
	}
	_, err := s.service.AddCustomerOrderItem(s.ctx, orderID, req, "testuser")

	s.Require().NoError(err)
	s.mockOrderRepo.AssertExpectations(s.T())
}

func (s *CustomerOrderServiceTestSuite) TestAddCustomerOrderItem_RejectsNonDraft() {
	orderID := uuid.NewString()
	order := draftCustomerOrder(orderID)
	order.Status = domain.CustomerOrderStatusPending
	s.mockOrderRepo.On("FindCustomerOrderByID", s.ctx, orderID).Return(order, nil).Once()

	req := dto.AddItemRequest{
		Description: "Widget",
		Quantity:    decimal.RequireFromString("1"),
		UnitPrice:   decimal.RequireFromString("10"),
	}
	_, err := s.service.AddCustomerOrderItem(s.ctx, orderID, req, "testuser")

	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrConflict)
	s.mockOrderRepo.AssertNotCalled(s.T(), "AddCustomerOrderItem", mock.Anything, mock.Anything)
}

func (s *CustomerOrderServiceTestSuite) TestRemoveCustomerOrderItem_UnknownItem() {
	orderID := uuid.NewString()
	itemID := uuid.NewString()
	s.mockOrderRepo.On("FindCustomerOrderByID", s.ctx, orderID).Return(draftCustomerOrder(orderID), nil).Once()
	s.mockOrderRepo.On("DeleteCustomerOrderItem", s.ctx, orderID, itemID).Return(nil, apperrors.ErrNotFound).Once()

	updated, err := s.service.RemoveCustomerOrderItem(s.ctx, orderID, itemID, "testuser")

	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrNotFound)
	s.Nil(updated)
	s.mockOrderRepo.AssertExpectations(s.T())
}

func (s *CustomerOrderServiceTestSuite) TestListCustomerOrders_RejectsUnknownStatus() {
	params := dto.ListOrdersParams{Status: "archived"}

	orders, total, err := s.service.ListCustomerOrders(s.ctx, params)

	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrValidation)
	s.Nil(orders)
	s.Zero(total)
	s.mockOrderRepo.AssertNotCalled(s.T(), "ListCustomerOrders", mock.Anything, mock.Anything)
}
