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

// MockProformaRepository is a mock type for the ProformaRepositoryFacade interface
type MockProformaRepository struct {
	mock.Mock
}

func (m *MockProformaRepository) FindProformaByID(ctx context.Context, proformaID string) (*domain.ProformaInvoice, error) {
	args := m.Called(ctx, proformaID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ProformaInvoice), args.Error(1)
}

func (m *MockProformaRepository) FindProformaWithItems(ctx context.Context, proformaID string) (*domain.ProformaInvoice, error) {
	args := m.Called(ctx, proformaID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ProformaInvoice), args.Error(1)
}

func (m *MockProformaRepository) FindProformaItems(ctx context.Context, proformaID string) ([]domain.LineItem, error) {
	args := m.Called(ctx, proformaID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LineItem), args.Error(1)
}

func (m *MockProformaRepository) ListProformas(ctx context.Context, filter portsrepo.ListProformasFilter) ([]domain.ProformaInvoice, int64, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]domain.ProformaInvoice), args.Get(1).(int64), args.Error(2)
}

func (m *MockProformaRepository) CreateProforma(ctx context.Context, proforma domain.ProformaInvoice) (*domain.ProformaInvoice, error) {
	args := m.Called(ctx, proforma)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ProformaInvoice), args.Error(1)
}

func (m *MockProformaRepository) UpdateProforma(ctx context.Context, proforma domain.ProformaInvoice) error {
	args := m.Called(ctx, proforma)
	return args.Error(0)
}

func (m *MockProformaRepository) AddProformaItem(ctx context.Context, item domain.LineItem) (*domain.ProformaInvoice, error) {
	args := m.Called(ctx, item)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ProformaInvoice), args.Error(1)
}

func (m *MockProformaRepository) UpdateProformaItem(ctx context.Context, item domain.LineItem) (*domain.ProformaInvoice, error) {
	args := m.Called(ctx, item)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ProformaInvoice), args.Error(1)
}

func (m *MockProformaRepository) DeleteProformaItem(ctx context.Context, proformaID, itemID string) (*domain.ProformaInvoice, error) {
	args := m.Called(ctx, proformaID, itemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ProformaInvoice), args.Error(1)
}

// --- Test Suite Setup ---

type ProformaServiceTestSuite struct {
	suite.Suite
	mockProformaRepo *MockProformaRepository
	mockInvoiceRepo  *MockInvoiceRepository
	service          portssvc.ProformaSvcFacade
}

func (suite *ProformaServiceTestSuite) SetupTest() {
	suite.mockProformaRepo = new(MockProformaRepository)
	suite.mockInvoiceRepo = new(MockInvoiceRepository)
	suite.service = services.NewProformaService(suite.mockProformaRepo, suite.mockInvoiceRepo)
}

// --- Test Cases ---

func (suite *ProformaServiceTestSuite) TestCreateProforma_Success() {
	ctx := context.Background()
	req := dto.CreateProformaRequest{
		ClientID:   uuid.NewString(),
		IssueDate:  "2025-02-01",
		ExpiryDate: "2025-03-01",
	}

	numbered := &domain.ProformaInvoice{Number: "PRO-00001", Status: domain.ProformaStatusDraft}
	var captured domain.ProformaInvoice
	suite.mockProformaRepo.On("CreateProforma", ctx, mock.AnythingOfType("domain.ProformaInvoice")).
		Run(func(args mock.Arguments) {
			captured = args.Get(1).(domain.ProformaInvoice)
		}).
		Return(numbered, nil).Once()

	created, err := suite.service.CreateProforma(ctx, req, "user-1")

	suite.Require().NoError(err)
	suite.Equal("PRO-00001", created.Number)
	suite.Equal(domain.ProformaStatusDraft, captured.Status)
	suite.Equal(req.ClientID, captured.ClientID)
	suite.True(captured.Total.IsZero())
	suite.mockProformaRepo.AssertExpectations(suite.T())
}

func (suite *ProformaServiceTestSuite) TestTransitionProforma_SentToAccepted() {
	ctx := context.Background()
	proformaID := uuid.NewString()
	sent := &domain.ProformaInvoice{ProformaID: proformaID, Number: "PRO-00002", Status: domain.ProformaStatusSent}

	suite.mockProformaRepo.On("FindProformaByID", ctx, proformaID).Return(sent, nil).Once()
	suite.mockProformaRepo.On("UpdateProforma", ctx, mock.AnythingOfType("domain.ProformaInvoice")).Return(nil).Once()

	updated, err := suite.service.TransitionProforma(ctx, proformaID, domain.ProformaStatusAccepted, "user-1")

	suite.Require().NoError(err)
	suite.Equal(domain.ProformaStatusAccepted, updated.Status)
	suite.mockProformaRepo.AssertExpectations(suite.T())
}

func (suite *ProformaServiceTestSuite) TestTransitionProforma_DraftToAcceptedRejected() {
	ctx := context.Background()
	proformaID := uuid.NewString()
	draft := &domain.ProformaInvoice{ProformaID: proformaID, Number: "PRO-00003", Status: domain.ProformaStatusDraft}

	suite.mockProformaRepo.On("FindProformaByID", ctx, proformaID).Return(draft, nil).Once()

	_, err := suite.service.TransitionProforma(ctx, proformaID, domain.ProformaStatusAccepted, "user-1")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrInvalidTransition)
	suite.mockProformaRepo.AssertNotCalled(suite.T(), "UpdateProforma", mock.Anything, mock.Anything)
}

func (suite *ProformaServiceTestSuite) TestConvertToInvoice_CopiesItemsAndTotals() {
	ctx := context.Background()
	proformaID := uuid.NewString()
	clientID := uuid.NewString()

	item1, err := domain.NewLineItem(uuid.NewString(), proformaID, "A", decimal.RequireFromString("2"), decimal.RequireFromString("16.665"), decimal.RequireFromString("20"), nil, time.Now())
	suite.Require().NoError(err)
	item2, err := domain.NewLineItem(uuid.NewString(), proformaID, "B", decimal.RequireFromString("2"), decimal.RequireFromString("16.665"), decimal.RequireFromString("20"), nil, time.Now())
	suite.Require().NoError(err)

	accepted := &domain.ProformaInvoice{
		ProformaID:  proformaID,
		Number:      "PRO-00004",
		ClientID:    clientID,
		Status:      domain.ProformaStatusAccepted,
		Description: "Quoted work",
		Items:       []domain.LineItem{item1, item2},
	}
	accepted.DocumentTotals = domain.SumLineItems(accepted.Items)

	numbered := &domain.Invoice{InvoiceID: uuid.NewString(), Number: "INV-00010", Status: domain.InvoiceStatusDraft}
	var captured domain.Invoice
	suite.mockProformaRepo.On("FindProformaWithItems", ctx, proformaID).Return(accepted, nil).Once()
	suite.mockInvoiceRepo.On("CreateInvoice", ctx, mock.AnythingOfType("domain.Invoice")).
		Run(func(args mock.Arguments) {
			captured = args.Get(1).(domain.Invoice)
		}).
		Return(numbered, nil).Once()

	created, err := suite.service.ConvertToInvoice(ctx, proformaID, dto.ConvertProformaRequest{}, "user-1")

	suite.Require().NoError(err)
	suite.Equal("INV-00010", created.Number)

	suite.Equal(clientID, captured.ClientID)
	suite.Equal(domain.InvoiceStatusDraft, captured.Status)
	suite.Equal("Quoted work", captured.Description)
	suite.Len(captured.Items, 2)
	// items are fresh copies owned by the invoice
	suite.NotEqual(item1.ItemID, captured.Items[0].ItemID)
	suite.Equal(captured.InvoiceID, captured.Items[0].DocumentID)
	suite.True(captured.Subtotal.Equal(decimal.RequireFromString("66.66")))
	suite.True(captured.TaxAmount.Equal(decimal.RequireFromString("13.34")))
	suite.True(captured.Total.Equal(decimal.RequireFromString("80.00")))
	// default due date is 30 days after the invoice date
	suite.Equal(captured.InvoiceDate.AddDate(0, 0, 30), captured.DueDate)
	suite.mockProformaRepo.AssertExpectations(suite.T())
	suite.mockInvoiceRepo.AssertExpectations(suite.T())
}

func (suite *ProformaServiceTestSuite) TestConvertToInvoice_RequiresAccepted() {
	ctx := context.Background()
	proformaID := uuid.NewString()
	sent := &domain.ProformaInvoice{ProformaID: proformaID, Number: "PRO-00005", Status: domain.ProformaStatusSent}

	suite.mockProformaRepo.On("FindProformaWithItems", ctx, proformaID).Return(sent, nil).Once()

	_, err := suite.service.ConvertToInvoice(ctx, proformaID, dto.ConvertProformaRequest{}, "user-1")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrConflict)
	suite.mockInvoiceRepo.AssertNotCalled(suite.T(), "CreateInvoice", mock.Anything, mock.Anything)
}

func (suite *ProformaServiceTestSuite) TestUpdateProformaItem_RecomputesAmounts() {
	ctx := context.Background()
	proformaID := uuid.NewString()
	draft := &domain.ProformaInvoice{ProformaID: proformaID, Number: "PRO-00006", Status: domain.ProformaStatusDraft}

	item, err := domain.NewLineItem("item-1", proformaID, "A", decimal.RequireFromString("1"), decimal.RequireFromString("10"), decimal.RequireFromString("20"), nil, time.Now())
	suite.Require().NoError(err)

	suite.mockProformaRepo.On("FindProformaByID", ctx, proformaID).Return(draft, nil).Once()
	suite.mockProformaRepo.On("FindProformaItems", ctx, proformaID).Return([]domain.LineItem{item}, nil).Once()
	suite.mockProformaRepo.On("UpdateProformaItem", ctx, mock.MatchedBy(func(it domain.LineItem) bool {
		return it.Quantity.Equal(decimal.RequireFromString("3")) &&
			it.Subtotal.Equal(decimal.RequireFromString("30")) &&
			it.Tax.Equal(decimal.RequireFromString("6"))
	})).Return(draft, nil).Once()

	qty := decimal.RequireFromString("3")
	_, err = suite.service.UpdateProformaItem(ctx, proformaID, "item-1", dto.UpdateItemRequest{Quantity: &qty}, "user-1")

	suite.Require().NoError(err)
	suite.mockProformaRepo.AssertExpectations(suite.T())
}

// --- Run Test Suite ---

func TestProformaService(t *testing.T) {
	suite.Run(t, new(ProformaServiceTestSuite))
}
