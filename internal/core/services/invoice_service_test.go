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

// MockInvoiceRepository is a mock type for the InvoiceRepositoryFacade interface
type MockInvoiceRepository struct {
	mock.Mock
}

func (m *MockInvoiceRepository) FindInvoiceByID(ctx context.Context, invoiceID string) (*domain.Invoice, error) {
	args := m.Called(ctx, invoiceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Invoice), args.Error(1)
}

func (m *MockInvoiceRepository) FindInvoiceWithItems(ctx context.Context, invoiceID string) (*domain.Invoice, error) {
	args := m.Called(ctx, invoiceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Invoice), args.Error(1)
}

func (m *MockInvoiceRepository) FindInvoiceItems(ctx context.Context, invoiceID string) ([]domain.LineItem, error) {
	args := m.Called(ctx, invoiceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LineItem), args.Error(1)
}

func (m *MockInvoiceRepository) ListInvoices(ctx context.Context, filter portsrepo.ListInvoicesFilter) ([]domain.Invoice, int64, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]domain.Invoice), args.Get(1).(int64), args.Error(2)
}

func (m *MockInvoiceRepository) CreateInvoice(ctx context.Context, invoice domain.Invoice) (*domain.Invoice, error) {
	args := m.Called(ctx, invoice)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Invoice), args.Error(1)
}

func (m *MockInvoiceRepository) UpdateInvoice(ctx context.Context, invoice domain.Invoice) error {
	args := m.Called(ctx, invoice)
	return args.Error(0)
}

func (m *MockInvoiceRepository) AddInvoiceItem(ctx context.Context, item domain.LineItem) (*domain.Invoice, error) {
	args := m.Called(ctx, item)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Invoice), args.Error(1)
}

func (m *MockInvoiceRepository) UpdateInvoiceItem(ctx context.Context, item domain.LineItem) (*domain.Invoice, error) {
	args := m.Called(ctx, item)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Invoice), args.Error(1)
}

func (m *MockInvoiceRepository) DeleteInvoiceItem(ctx context.Context, invoiceID, itemID string) (*domain.Invoice, error) {
	args := m.Called(ctx, invoiceID, itemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Invoice), args.Error(1)
}

// --- Test Suite Setup ---

type InvoiceServiceTestSuite struct {
	suite.Suite
	mockRepo *MockInvoiceRepository
	service  portssvc.InvoiceSvcFacade
}

func (suite *InvoiceServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockInvoiceRepository)
	suite.service = services.NewInvoiceService(suite.mockRepo)
}

// --- Test Cases ---

func (suite *InvoiceServiceTestSuite) TestCreateInvoice_Success() {
	ctx := context.Background()
	userID := uuid.NewString()
	req := dto.CreateInvoiceRequest{
		ClientID:    uuid.NewString(),
		InvoiceDate: "2025-03-01",
		DueDate:     "2025-03-31",
		Description: "March services",
	}

	numbered := &domain.Invoice{Number: "INV-00001", Status: domain.InvoiceStatusDraft}
	var captured domain.Invoice
	suite.mockRepo.On("CreateInvoice", ctx, mock.AnythingOfType("domain.Invoice")).
		Run(func(args mock.Arguments) {
			captured = args.Get(1).(domain.Invoice)
		}).
		Return(numbered, nil).Once()

	created, err := suite.service.CreateInvoice(ctx, req, userID)

	suite.Require().NoError(err)
	suite.Require().NotNil(created)
	suite.Equal("INV-00001", created.Number)

	// the document handed to the repository is a zero-value draft
	suite.NotEmpty(captured.InvoiceID)
	suite.Empty(captured.Number)
	suite.Equal(domain.InvoiceStatusDraft, captured.Status)
	suite.Equal(req.ClientID, captured.ClientID)
	suite.True(captured.PaidAmount.IsZero())
	suite.True(captured.Total.IsZero())
	suite.Equal(userID, captured.CreatedBy)
	suite.Equal(userID, captured.LastUpdatedBy)
	suite.WithinDuration(time.Now(), captured.CreatedAt, time.Second)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *InvoiceServiceTestSuite) TestCreateInvoice_RetriesOnNumberingConflict() {
	ctx := context.Background()
	req := dto.CreateInvoiceRequest{
		ClientID:    uuid.NewString(),
		InvoiceDate: "2025-03-01",
		DueDate:     "2025-03-31",
	}

	numbered := &domain.Invoice{InvoiceID: uuid.NewString(), Number: "INV-00002", Status: domain.InvoiceStatusDraft}
	suite.mockRepo.On("CreateInvoice", ctx, mock.AnythingOfType("domain.Invoice")).
		Return(nil, apperrors.ErrNumberingConflict).Once()
	suite.mockRepo.On("CreateInvoice", ctx, mock.AnythingOfType("domain.Invoice")).
		Return(numbered, nil).Once()

	created, err := suite.service.CreateInvoice(ctx, req, "user-1")

	suite.Require().NoError(err)
	suite.Equal("INV-00002", created.Number)
	suite.mockRepo.AssertNumberOfCalls(suite.T(), "CreateInvoice", 2)
}

func (suite *InvoiceServiceTestSuite) TestCreateInvoice_GivesUpAfterSecondConflict() {
	ctx := context.Background()
	req := dto.CreateInvoiceRequest{
		ClientID:    uuid.NewString(),
		InvoiceDate: "2025-03-01",
		DueDate:     "2025-03-31",
	}

	suite.mockRepo.On("CreateInvoice", ctx, mock.AnythingOfType("domain.Invoice")).
		Return(nil, apperrors.ErrNumberingConflict).Twice()

	_, err := suite.service.CreateInvoice(ctx, req, "user-1")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNumberingConflict)
	suite.mockRepo.AssertNumberOfCalls(suite.T(), "CreateInvoice", 2)
}

func (suite *InvoiceServiceTestSuite) TestCreateInvoice_DueDateBeforeInvoiceDate() {
	ctx := context.Background()
	req := dto.CreateInvoiceRequest{
		ClientID:    uuid.NewString(),
		InvoiceDate: "2025-03-31",
		DueDate:     "2025-03-01",
	}

	_, err := suite.service.CreateInvoice(ctx, req, "user-1")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "CreateInvoice", mock.Anything, mock.Anything)
}

func (suite *InvoiceServiceTestSuite) TestUpdateInvoice_RejectsNonDraft() {
	ctx := context.Background()
	invoiceID := uuid.NewString()
	sent := &domain.Invoice{InvoiceID: invoiceID, Number: "INV-00003", Status: domain.InvoiceStatusSent}

	suite.mockRepo.On("FindInvoiceByID", ctx, invoiceID).Return(sent, nil).Once()

	desc := "changed"
	_, err := suite.service.UpdateInvoice(ctx, invoiceID, dto.UpdateInvoiceRequest{Description: &desc}, "user-1")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrConflict)
	suite.mockRepo.AssertNotCalled(suite.T(), "UpdateInvoice", mock.Anything, mock.Anything)
}

func (suite *InvoiceServiceTestSuite) TestTransitionInvoice_DraftToSentStampsSentAt() {
	ctx := context.Background()
	invoiceID := uuid.NewString()
	draft := &domain.Invoice{InvoiceID: invoiceID, Number: "INV-00004", Status: domain.InvoiceStatusDraft}

	suite.mockRepo.On("FindInvoiceByID", ctx, invoiceID).Return(draft, nil).Once()
	suite.mockRepo.On("UpdateInvoice", ctx, mock.AnythingOfType("domain.Invoice")).Return(nil).Once()

	updated, err := suite.service.TransitionInvoice(ctx, invoiceID, domain.InvoiceStatusSent, "user-1")

	suite.Require().NoError(err)
	suite.Equal(domain.InvoiceStatusSent, updated.Status)
	suite.Require().NotNil(updated.SentAt)
	suite.WithinDuration(time.Now(), *updated.SentAt, time.Second)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *InvoiceServiceTestSuite) TestTransitionInvoice_RejectsInvalidTransition() {
	ctx := context.Background()
	invoiceID := uuid.NewString()
	draft := &domain.Invoice{InvoiceID: invoiceID, Number: "INV-00005", Status: domain.InvoiceStatusDraft}

	suite.mockRepo.On("FindInvoiceByID", ctx, invoiceID).Return(draft, nil).Once()

	_, err := suite.service.TransitionInvoice(ctx, invoiceID, domain.InvoiceStatusPaid, "user-1")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrInvalidTransition)
	suite.mockRepo.AssertNotCalled(suite.T(), "UpdateInvoice", mock.Anything, mock.Anything)
}

func (suite *InvoiceServiceTestSuite) TestMarkInvoicePaid_ForcesLedgerOverride() {
	ctx := context.Background()
	invoiceID := uuid.NewString()
	sent := &domain.Invoice{InvoiceID: invoiceID, Number: "INV-00006", Status: domain.InvoiceStatusSent}
	sent.Total = decimal.RequireFromString("150.00")

	suite.mockRepo.On("FindInvoiceByID", ctx, invoiceID).Return(sent, nil).Once()
	suite.mockRepo.On("UpdateInvoice", ctx, mock.AnythingOfType("domain.Invoice")).Return(nil).Once()

	updated, err := suite.service.MarkInvoicePaid(ctx, invoiceID, "user-1")

	suite.Require().NoError(err)
	suite.Equal(domain.InvoiceStatusPaid, updated.Status)
	suite.True(updated.PaidAmount.Equal(updated.Total))
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *InvoiceServiceTestSuite) TestAddInvoiceItem_RejectsNonDraft() {
	ctx := context.Background()
	invoiceID := uuid.NewString()
	paid := &domain.Invoice{InvoiceID: invoiceID, Number: "INV-00007", Status: domain.InvoiceStatusPaid}

	suite.mockRepo.On("FindInvoiceByID", ctx, invoiceID).Return(paid, nil).Once()

	req := dto.AddItemRequest{
		Description: "Widget",
		Quantity:    decimal.RequireFromString("2"),
		UnitPrice:   decimal.RequireFromString("10"),
		TaxRate:     decimal.RequireFromString("20"),
	}
	_, err := suite.service.AddInvoiceItem(ctx, invoiceID, req, "user-1")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrConflict)
	suite.mockRepo.AssertNotCalled(suite.T(), "AddInvoiceItem", mock.Anything, mock.Anything)
}

func (suite *InvoiceServiceTestSuite) TestAddInvoiceItem_ComputesAmounts() {
	ctx := context.Background()
	invoiceID := uuid.NewString()
	draft := &domain.Invoice{InvoiceID: invoiceID, Number: "INV-00008", Status: domain.InvoiceStatusDraft}

	suite.mockRepo.On("FindInvoiceByID", ctx, invoiceID).Return(draft, nil).Once()
	suite.mockRepo.On("AddInvoiceItem", ctx, mock.MatchedBy(func(item domain.LineItem) bool {
		return item.Subtotal.Equal(decimal.RequireFromString("33.33")) &&
			item.Tax.Equal(decimal.RequireFromString("6.67")) &&
			item.Total.Equal(decimal.RequireFromString("40.00"))
	})).Return(draft, nil).Once()

	req := dto.AddItemRequest{
		Description: "Widget",
		Quantity:    decimal.RequireFromString("2"),
		UnitPrice:   decimal.RequireFromString("16.665"),
		TaxRate:     decimal.RequireFromString("20"),
	}
	_, err := suite.service.AddInvoiceItem(ctx, invoiceID, req, "user-1")

	suite.Require().NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *InvoiceServiceTestSuite) TestListInvoices_RejectsUnknownStatus() {
	ctx := context.Background()

	_, _, err := suite.service.ListInvoices(ctx, dto.ListInvoicesParams{Status: "bogus"}, time.Now())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "ListInvoices", mock.Anything, mock.Anything)
}

// --- Run Test Suite ---

func TestInvoiceService(t *testing.T) {
	suite.Run(t, new(InvoiceServiceTestSuite))
}
