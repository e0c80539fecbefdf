package services_test

import (
	"context"
	"testing"

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

// MockPaymentRepository is a mock type for the PaymentRepositoryFacade interface
type MockPaymentRepository struct {
	mock.Mock
}

func (m *MockPaymentRepository) FindPaymentByID(ctx context.Context, paymentID string) (*domain.Payment, error) {
	args := m.Called(ctx, paymentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Payment), args.Error(1)
}

func (m *MockPaymentRepository) FindPaymentsByInvoiceID(ctx context.Context, invoiceID string) ([]domain.Payment, error) {
	args := m.Called(ctx, invoiceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Payment), args.Error(1)
}

func (m *MockPaymentRepository) ListPayments(ctx context.Context, filter portsrepo.ListPaymentsFilter) ([]domain.Payment, int64, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]domain.Payment), args.Get(1).(int64), args.Error(2)
}

func (m *MockPaymentRepository) SavePaymentAndReconcile(ctx context.Context, payment domain.Payment) (*domain.Invoice, error) {
	args := m.Called(ctx, payment)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Invoice), args.Error(1)
}

func (m *MockPaymentRepository) DeletePaymentAndReconcile(ctx context.Context, paymentID string) (*domain.Invoice, error) {
	args := m.Called(ctx, paymentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Invoice), args.Error(1)
}

// --- Test Suite Setup ---

type PaymentServiceTestSuite struct {
	suite.Suite
	mockPaymentRepo *MockPaymentRepository
	mockInvoiceRepo *MockInvoiceRepository
	service         portssvc.PaymentSvcFacade
}

func (suite *PaymentServiceTestSuite) SetupTest() {
	suite.mockPaymentRepo = new(MockPaymentRepository)
	suite.mockInvoiceRepo = new(MockInvoiceRepository)
	suite.service = services.NewPaymentService(suite.mockPaymentRepo, suite.mockInvoiceRepo)
}

// --- Test Cases ---

func (suite *PaymentServiceTestSuite) TestRecordPayment_Success() {
	ctx := context.Background()
	invoiceID := uuid.NewString()
	sent := &domain.Invoice{InvoiceID: invoiceID, Number: "INV-00001", Status: domain.InvoiceStatusSent}
	sent.Total = decimal.RequireFromString("100.00")

	reconciled := &domain.Invoice{InvoiceID: invoiceID, Number: "INV-00001", Status: domain.InvoiceStatusPartial}
	reconciled.Total = sent.Total
	reconciled.PaidAmount = decimal.RequireFromString("40.00")

	suite.mockInvoiceRepo.On("FindInvoiceByID", ctx, invoiceID).Return(sent, nil).Once()
	suite.mockPaymentRepo.On("SavePaymentAndReconcile", ctx, mock.MatchedBy(func(p domain.Payment) bool {
		return p.InvoiceID == invoiceID && p.Amount.Equal(decimal.RequireFromString("40.00")) &&
			p.Method == domain.PaymentMethodBankTransfer
	})).Return(reconciled, nil).Once()

	req := dto.RecordPaymentRequest{
		PaymentDate: "2025-04-10",
		Amount:      decimal.RequireFromString("40.00"),
		Method:      string(domain.PaymentMethodBankTransfer),
		Reference:   "WIRE-123",
	}
	payment, invoice, err := suite.service.RecordPayment(ctx, invoiceID, req, "user-1")

	suite.Require().NoError(err)
	suite.Require().NotNil(payment)
	suite.NotEmpty(payment.PaymentID)
	suite.Equal(invoiceID, payment.InvoiceID)
	suite.Equal(domain.InvoiceStatusPartial, invoice.Status)
	suite.True(invoice.PaidAmount.Equal(decimal.RequireFromString("40.00")))
	suite.mockPaymentRepo.AssertExpectations(suite.T())
}

func (suite *PaymentServiceTestSuite) TestRecordPayment_RejectsDraftInvoice() {
	ctx := context.Background()
	invoiceID := uuid.NewString()
	draft := &domain.Invoice{InvoiceID: invoiceID, Number: "INV-00002", Status: domain.InvoiceStatusDraft}

	suite.mockInvoiceRepo.On("FindInvoiceByID", ctx, invoiceID).Return(draft, nil).Once()

	req := dto.RecordPaymentRequest{
		PaymentDate: "2025-04-10",
		Amount:      decimal.RequireFromString("40.00"),
		Method:      string(domain.PaymentMethodCash),
	}
	_, _, err := suite.service.RecordPayment(ctx, invoiceID, req, "user-1")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrConflict)
	suite.mockPaymentRepo.AssertNotCalled(suite.T(), "SavePaymentAndReconcile", mock.Anything, mock.Anything)
}

func (suite *PaymentServiceTestSuite) TestRecordPayment_RejectsCancelledInvoice() {
	ctx := context.Background()
	invoiceID := uuid.NewString()
	cancelled := &domain.Invoice{InvoiceID: invoiceID, Number: "INV-00003", Status: domain.InvoiceStatusCancelled}

	suite.mockInvoiceRepo.On("FindInvoiceByID", ctx, invoiceID).Return(cancelled, nil).Once()

	req := dto.RecordPaymentRequest{
		PaymentDate: "2025-04-10",
		Amount:      decimal.RequireFromString("40.00"),
		Method:      string(domain.PaymentMethodCash),
	}
	_, _, err := suite.service.RecordPayment(ctx, invoiceID, req, "user-1")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrConflict)
}

func (suite *PaymentServiceTestSuite) TestRecordPayment_RejectsNonPositiveAmount() {
	ctx := context.Background()
	invoiceID := uuid.NewString()
	sent := &domain.Invoice{InvoiceID: invoiceID, Number: "INV-00004", Status: domain.InvoiceStatusSent}

	suite.mockInvoiceRepo.On("FindInvoiceByID", ctx, invoiceID).Return(sent, nil).Once()

	req := dto.RecordPaymentRequest{
		PaymentDate: "2025-04-10",
		Amount:      decimal.Zero,
		Method:      string(domain.PaymentMethodCash),
	}
	_, _, err := suite.service.RecordPayment(ctx, invoiceID, req, "user-1")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockPaymentRepo.AssertNotCalled(suite.T(), "SavePaymentAndReconcile", mock.Anything, mock.Anything)
}

func (suite *PaymentServiceTestSuite) TestRecordPayment_RejectsUnknownMethod() {
	ctx := context.Background()
	invoiceID := uuid.NewString()
	sent := &domain.Invoice{InvoiceID: invoiceID, Number: "INV-00005", Status: domain.InvoiceStatusSent}

	suite.mockInvoiceRepo.On("FindInvoiceByID", ctx, invoiceID).Return(sent, nil).Once()

	req := dto.RecordPaymentRequest{
		PaymentDate: "2025-04-10",
		Amount:      decimal.RequireFromString("10"),
		Method:      "barter",
	}
	_, _, err := suite.service.RecordPayment(ctx, invoiceID, req, "user-1")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *PaymentServiceTestSuite) TestDeletePayment_ReturnsReconciledInvoice() {
	ctx := context.Background()
	paymentID := uuid.NewString()

	reconciled := &domain.Invoice{InvoiceID: uuid.NewString(), Number: "INV-00006", Status: domain.InvoiceStatusSent}
	reconciled.PaidAmount = decimal.Zero

	suite.mockPaymentRepo.On("DeletePaymentAndReconcile", ctx, paymentID).Return(reconciled, nil).Once()

	invoice, err := suite.service.DeletePayment(ctx, paymentID, "user-1")

	suite.Require().NoError(err)
	suite.Equal(domain.InvoiceStatusSent, invoice.Status)
	suite.True(invoice.PaidAmount.IsZero())
	suite.mockPaymentRepo.AssertExpectations(suite.T())
}

func (suite *PaymentServiceTestSuite) TestDeletePayment_NotFound() {
	ctx := context.Background()
	paymentID := uuid.NewString()

	suite.mockPaymentRepo.On("DeletePaymentAndReconcile", ctx, paymentID).
		Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.DeletePayment(ctx, paymentID, "user-1")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *PaymentServiceTestSuite) TestListPaymentsForInvoice_RequiresInvoice() {
	ctx := context.Background()
	invoiceID := uuid.NewString()

	suite.mockInvoiceRepo.On("FindInvoiceByID", ctx, invoiceID).
		Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.ListPaymentsForInvoice(ctx, invoiceID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockPaymentRepo.AssertNotCalled(suite.T(), "FindPaymentsByInvoiceID", mock.Anything, mock.Anything)
}

// --- Run Test Suite ---

func TestPaymentService(t *testing.T) {
	suite.Run(t, new(PaymentServiceTestSuite))
}
