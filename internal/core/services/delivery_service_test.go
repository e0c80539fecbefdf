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

// MockDeliveryRepository is a mock type for the DeliveryRepositoryFacade interface
type MockDeliveryRepository struct {
	mock.Mock
}

func (m *MockDeliveryRepository) FindDeliveryByID(ctx context.Context, deliveryID string) (*domain.DeliveryNote, error) {
	args := m.Called(ctx, deliveryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DeliveryNote), args.Error(1)
}

func (m *MockDeliveryRepository) FindDeliveryWithItems(ctx context.Context, deliveryID string) (*domain.DeliveryNote, error) {
	args := m.Called(ctx, deliveryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DeliveryNote), args.Error(1)
}

func (m *MockDeliveryRepository) ListDeliveries(ctx context.Context, filter portsrepo.ListDeliveriesFilter) ([]domain.DeliveryNote, int64, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]domain.DeliveryNote), args.Get(1).(int64), args.Error(2)
}

func (m *MockDeliveryRepository) CreateDelivery(ctx context.Context, delivery domain.DeliveryNote) (*domain.DeliveryNote, error) {
	args := m.Called(ctx, delivery)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DeliveryNote), args.Error(1)
}

func (m *MockDeliveryRepository) UpdateDelivery(ctx context.Context, delivery domain.DeliveryNote) error {
	args := m.Called(ctx, delivery)
	return args.Error(0)
}

func (m *MockDeliveryRepository) AddDeliveryItem(ctx context.Context, item domain.DeliveryItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockDeliveryRepository) UpdateDeliveryItem(ctx context.Context, item domain.DeliveryItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockDeliveryRepository) DeleteDeliveryItem(ctx context.Context, deliveryID, itemID string) error {
	args := m.Called(ctx, deliveryID, itemID)
	return args.Error(0)
}

// --- Test Suite Setup ---

type DeliveryServiceTestSuite struct {
	suite.Suite
	mockDeliveryRepo *MockDeliveryRepository
	mockInvoiceRepo  *MockInvoiceRepository
	service          portssvc.DeliverySvcFacade
}

func (suite *DeliveryServiceTestSuite) SetupTest() {
	suite.mockDeliveryRepo = new(MockDeliveryRepository)
	suite.mockInvoiceRepo = new(MockInvoiceRepository)
	suite.service = services.NewDeliveryService(suite.mockDeliveryRepo, suite.mockInvoiceRepo)
}

// --- Test Cases ---

func (suite *DeliveryServiceTestSuite) TestAddDeliveryItem_Success() {
	ctx := context.Background()
	deliveryID := uuid.NewString()
	note := &domain.DeliveryNote{DeliveryID: deliveryID, Number: "BL-00001"}

	suite.mockDeliveryRepo.On("FindDeliveryByID", ctx, deliveryID).Return(note, nil).Once()
	suite.mockDeliveryRepo.On("AddDeliveryItem", ctx, mock.MatchedBy(func(item domain.DeliveryItem) bool {
		return item.DeliveryID == deliveryID &&
			item.QuantityOrdered.Equal(decimal.RequireFromString("10")) &&
			item.QuantityDelivered.Equal(decimal.RequireFromString("4"))
	})).Return(nil).Once()
	suite.mockDeliveryRepo.On("FindDeliveryWithItems", ctx, deliveryID).Return(note, nil).Once()

	req := dto.AddDeliveryItemRequest{
		Description:       "Pallet of widgets",
		QuantityOrdered:   decimal.RequireFromString("10"),
		QuantityDelivered: decimal.RequireFromString("4"),
		UnitPrice:         decimal.RequireFromString("2.50"),
	}
	_, err := suite.service.AddDeliveryItem(ctx, deliveryID, req, "user-1")

	suite.Require().NoError(err)
	suite.mockDeliveryRepo.AssertExpectations(suite.T())
}

func (suite *DeliveryServiceTestSuite) TestAddDeliveryItem_RejectsZeroOrdered() {
	ctx := context.Background()
	deliveryID := uuid.NewString()
	note := &domain.DeliveryNote{DeliveryID: deliveryID, Number: "BL-00002"}

	suite.mockDeliveryRepo.On("FindDeliveryByID", ctx, deliveryID).Return(note, nil).Once()

	req := dto.AddDeliveryItemRequest{
		Description:     "Nothing",
		QuantityOrdered: decimal.Zero,
	}
	_, err := suite.service.AddDeliveryItem(ctx, deliveryID, req, "user-1")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockDeliveryRepo.AssertNotCalled(suite.T(), "AddDeliveryItem", mock.Anything, mock.Anything)
}

func (suite *DeliveryServiceTestSuite) TestAddDeliveryItem_RejectsOverDelivery() {
	ctx := context.Background()
	deliveryID := uuid.NewString()
	note := &domain.DeliveryNote{DeliveryID: deliveryID, Number: "BL-00003"}

	suite.mockDeliveryRepo.On("FindDeliveryByID", ctx, deliveryID).Return(note, nil).Once()

	req := dto.AddDeliveryItemRequest{
		Description:       "Too much",
		QuantityOrdered:   decimal.RequireFromString("5"),
		QuantityDelivered: decimal.RequireFromString("6"),
	}
	_, err := suite.service.AddDeliveryItem(ctx, deliveryID, req, "user-1")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *DeliveryServiceTestSuite) TestUpdateDeliveryItem_ValidatesCombinedQuantities() {
	ctx := context.Background()
	deliveryID := uuid.NewString()
	note := &domain.DeliveryNote{
		DeliveryID: deliveryID,
		Number:     "BL-00004",
		Items: []domain.DeliveryItem{{
			ItemID:            "item-1",
			DeliveryID:        deliveryID,
			QuantityOrdered:   decimal.RequireFromString("10"),
			QuantityDelivered: decimal.RequireFromString("4"),
		}},
	}

	suite.mockDeliveryRepo.On("FindDeliveryWithItems", ctx, deliveryID).Return(note, nil).Once()

	// lowering the ordered quantity below the delivered quantity must fail
	ordered := decimal.RequireFromString("3")
	req := dto.UpdateDeliveryItemRequest{QuantityOrdered: &ordered}
	_, err := suite.service.UpdateDeliveryItem(ctx, deliveryID, "item-1", req, "user-1")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockDeliveryRepo.AssertNotCalled(suite.T(), "UpdateDeliveryItem", mock.Anything, mock.Anything)
}

func (suite *DeliveryServiceTestSuite) TestUpdateDeliveryItem_UnknownItem() {
	ctx := context.Background()
	deliveryID := uuid.NewString()
	note := &domain.DeliveryNote{DeliveryID: deliveryID, Number: "BL-00005"}

	suite.mockDeliveryRepo.On("FindDeliveryWithItems", ctx, deliveryID).Return(note, nil).Once()

	delivered := decimal.RequireFromString("1")
	req := dto.UpdateDeliveryItemRequest{QuantityDelivered: &delivered}
	_, err := suite.service.UpdateDeliveryItem(ctx, deliveryID, "missing", req, "user-1")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *DeliveryServiceTestSuite) TestRemoveDeliveryItem_Success() {
	ctx := context.Background()
	deliveryID := uuid.NewString()
	note := &domain.DeliveryNote{DeliveryID: deliveryID, Number: "BL-00006"}

	suite.mockDeliveryRepo.On("DeleteDeliveryItem", ctx, deliveryID, "item-1").Return(nil).Once()
	suite.mockDeliveryRepo.On("FindDeliveryWithItems", ctx, deliveryID).Return(note, nil).Once()

	_, err := suite.service.RemoveDeliveryItem(ctx, deliveryID, "item-1", "user-1")

	suite.Require().NoError(err)
	suite.mockDeliveryRepo.AssertExpectations(suite.T())
}

func (suite *DeliveryServiceTestSuite) TestCreateDeliveryNote_ValidatesLinkedInvoice() {
	ctx := context.Background()
	invoiceID := uuid.NewString()

	suite.mockInvoiceRepo.On("FindInvoiceByID", ctx, invoiceID).
		Return(nil, apperrors.ErrNotFound).Once()

	req := dto.CreateDeliveryNoteRequest{
		ClientID:     uuid.NewString(),
		InvoiceID:    &invoiceID,
		DeliveryDate: "2025-05-01",
	}
	_, err := suite.service.CreateDeliveryNote(ctx, req, "user-1")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockDeliveryRepo.AssertNotCalled(suite.T(), "CreateDelivery", mock.Anything, mock.Anything)
}

func (suite *DeliveryServiceTestSuite) TestCreateDeliveryNote_Success() {
	ctx := context.Background()
	req := dto.CreateDeliveryNoteRequest{
		ClientID:     uuid.NewString(),
		DeliveryDate: "2025-05-01",
	}

	numbered := &domain.DeliveryNote{DeliveryID: uuid.NewString(), Number: "BL-00007"}
	var captured domain.DeliveryNote
	suite.mockDeliveryRepo.On("CreateDelivery", ctx, mock.AnythingOfType("domain.DeliveryNote")).
		Run(func(args mock.Arguments) {
			captured = args.Get(1).(domain.DeliveryNote)
		}).
		Return(numbered, nil).Once()

	created, err := suite.service.CreateDeliveryNote(ctx, req, "user-1")

	suite.Require().NoError(err)
	suite.Equal("BL-00007", created.Number)
	suite.Equal(req.ClientID, captured.ClientID)
	suite.Equal(time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC), captured.DeliveryDate)
	suite.mockDeliveryRepo.AssertExpectations(suite.T())
}

// --- Run Test Suite ---

func TestDeliveryService(t *testing.T) {
	suite.Run(t, new(DeliveryServiceTestSuite))
}
