package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/facturio/facturio/internal/apperrors"
	"github.com/facturio/facturio/internal/core/domain"
	portssvc "github.com/facturio/facturio/internal/core/ports/services"
	"github.com/facturio/facturio/internal/dto"
)

// --- Mock InvoiceService ---
type MockInvoiceService struct {
	mock.Mock
}

func (m *MockInvoiceService) GetInvoiceByID(ctx context.Context, invoiceID string) (*domain.Invoice, error) {
	args := m.Called(ctx, invoiceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Invoice), args.Error(1)
}
func (m *MockInvoiceService) GetInvoiceWithItems(ctx context.Context, invoiceID string) (*domain.Invoice, error) {
	args := m.Called(ctx, invoiceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Invoice), args.Error(1)
}
func (m *MockInvoiceService) ListInvoices(ctx context.Context, params dto.ListInvoicesParams, today time.Time) ([]domain.Invoice, int64, error) {
	args := m.Called(ctx, params, today)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]domain.Invoice), args.Get(1).(int64), args.Error(2)
}
func (m *MockInvoiceService) CreateInvoice(ctx context.Context, req dto.CreateInvoiceRequest, userID string) (*domain.Invoice, error) {
	args := m.Called(ctx, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Invoice), args.Error(1)
}
func (m *MockInvoiceService) UpdateInvoice(ctx context.Context, invoiceID string, req dto.UpdateInvoiceRequest, userID string) (*domain.Invoice, error) {
	args := m.Called(ctx, invoiceID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Invoice), args.Error(1)
}
func (m *MockInvoiceService) TransitionInvoice(ctx context.Context, invoiceID string, target domain.InvoiceStatus, userID string) (*domain.Invoice, error) {
	args := m.Called(ctx, invoiceID, target, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Invoice), args.Error(1)
}
func (m *MockInvoiceService) MarkInvoicePaid(ctx context.Context, invoiceID string, userID string) (*domain.Invoice, error) {
	args := m.Called(ctx, invoiceID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Invoice), args.Error(1)
}
func (m *MockInvoiceService) AddInvoiceItem(ctx context.Context, invoiceID string, req dto.AddItemRequest, userID string) (*domain.Invoice, error) {
	args := m.Called(ctx, invoiceID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Invoice), args.Error(1)
}
func (m *MockInvoiceService) UpdateInvoiceItem(ctx context.Context, invoiceID string, itemID string, req dto.UpdateItemRequest, userID string) (*domain.Invoice, error) {
	args := m.Called(ctx, invoiceID, itemID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Invoice), args.Error(1)
}
func (m *MockInvoiceService) RemoveInvoiceItem(ctx context.Context, invoiceID string, itemID string, userID string) (*domain.Invoice, error) {
	args := m.Called(ctx, invoiceID, itemID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Invoice), args.Error(1)
}

var _ portssvc.InvoiceSvcFacade = (*MockInvoiceService)(nil)

// --- Mock PaymentService ---
type MockPaymentService struct {
	mock.Mock
}

func (m *MockPaymentService) ListPaymentsForInvoice(ctx context.Context, invoiceID string) ([]domain.Payment, error) {
	args := m.Called(ctx, invoiceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Payment), args.Error(1)
}
func (m *MockPaymentService) RecordPayment(ctx context.Context, invoiceID string, req dto.RecordPaymentRequest, userID string) (*domain.Payment, *domain.Invoice, error) {
	args := m.Called(ctx, invoiceID, req, userID)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).(*domain.Payment), args.Get(1).(*domain.Invoice), args.Error(2)
}
func (m *MockPaymentService) DeletePayment(ctx context.Context, paymentID string, userID string) (*domain.Invoice, error) {
	args := m.Called(ctx, paymentID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Invoice), args.Error(1)
}

var _ portssvc.PaymentSvcFacade = (*MockPaymentService)(nil)

// --- Mock ExportService ---
type MockExportService struct {
	mock.Mock
}

func (m *MockExportService) RenderInvoicePDF(ctx context.Context, invoiceID string) ([]byte, error) {
	args := m.Called(ctx, invoiceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}
func (m *MockExportService) RenderProformaPDF(ctx context.Context, proformaID string) ([]byte, error) {
	args := m.Called(ctx, proformaID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}
func (m *MockExportService) ExportInvoicesExcel(ctx context.Context, today time.Time) ([]byte, error) {
	args := m.Called(ctx, today)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

var _ portssvc.ExportService = (*MockExportService)(nil)

// --- Test Suite ---
type InvoiceHandlerTestSuite struct {
	suite.Suite
	router             *gin.Engine
	mockInvoiceService *MockInvoiceService
	mockPaymentService *MockPaymentService
	mockExportService  *MockExportService
}

func (suite *InvoiceHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()

	suite.mockInvoiceService = new(MockInvoiceService)
	suite.mockPaymentService = new(MockPaymentService)
	suite.mockExportService = new(MockExportService)

	v1 := suite.router.Group("/api/v1")
	registerInvoiceRoutes(v1, suite.mockInvoiceService, suite.mockPaymentService, suite.mockExportService)
}

func (suite *InvoiceHandlerTestSuite) performRequest(method, path string, body any, headers map[string]string) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		suite.Require().NoError(json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

// --- Test Cases ---

func (suite *InvoiceHandlerTestSuite) TestCreateInvoice_Success() {
	body := dto.CreateInvoiceRequest{
		ClientID:    uuid.NewString(),
		InvoiceDate: "2025-03-01",
		DueDate:     "2025-03-31",
	}
	created := &domain.Invoice{
		InvoiceID: uuid.NewString(),
		Number:    "INV-00001",
		ClientID:  body.ClientID,
		Status:    domain.InvoiceStatusDraft,
	}

	suite.mockInvoiceService.On("CreateInvoice", mock.Anything, body, "system").
		Return(created, nil).Once()

	w := suite.performRequest(http.MethodPost, "/api/v1/invoices", body, nil)

	suite.Equal(http.StatusCreated, w.Code)
	var resp dto.InvoiceResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("INV-00001", resp.Number)
	suite.Equal("draft", resp.Status)
	suite.mockInvoiceService.AssertExpectations(suite.T())
}

func (suite *InvoiceHandlerTestSuite) TestCreateInvoice_ActorHeaderIsAudited() {
	body := dto.CreateInvoiceRequest{
		ClientID:    uuid.NewString(),
		InvoiceDate: "2025-03-01",
		DueDate:     "2025-03-31",
	}
	created := &domain.Invoice{InvoiceID: uuid.NewString(), Number: "INV-00002", Status: domain.InvoiceStatusDraft}

	suite.mockInvoiceService.On("CreateInvoice", mock.Anything, body, "alice").
		Return(created, nil).Once()

	w := suite.performRequest(http.MethodPost, "/api/v1/invoices", body, map[string]string{"X-Actor": "alice"})

	suite.Equal(http.StatusCreated, w.Code)
	suite.mockInvoiceService.AssertExpectations(suite.T())
}

func (suite *InvoiceHandlerTestSuite) TestCreateInvoice_MissingClientID() {
	w := suite.performRequest(http.MethodPost, "/api/v1/invoices", map[string]string{
		"invoiceDate": "2025-03-01",
		"dueDate":     "2025-03-31",
	}, nil)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockInvoiceService.AssertNotCalled(suite.T(), "CreateInvoice", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *InvoiceHandlerTestSuite) TestGetInvoice_NotFound() {
	invoiceID := uuid.NewString()
	suite.mockInvoiceService.On("GetInvoiceWithItems", mock.Anything, invoiceID).
		Return(nil, fmt.Errorf("%w: invoice %s", apperrors.ErrNotFound, invoiceID)).Once()

	w := suite.performRequest(http.MethodGet, "/api/v1/invoices/"+invoiceID, nil, nil)

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *InvoiceHandlerTestSuite) TestTransitionInvoice_ConflictMapsTo409() {
	invoiceID := uuid.NewString()
	suite.mockInvoiceService.On("TransitionInvoice", mock.Anything, invoiceID, domain.InvoiceStatusPaid, "system").
		Return(nil, fmt.Errorf("%w: no", apperrors.ErrInvalidTransition)).Once()

	w := suite.performRequest(http.MethodPost, "/api/v1/invoices/"+invoiceID+"/status", dto.TransitionRequest{Status: "paid"}, nil)

	suite.Equal(http.StatusConflict, w.Code)
}

func (suite *InvoiceHandlerTestSuite) TestRecordPayment_ReturnsLedgerAndInvoice() {
	invoiceID := uuid.NewString()
	req := dto.RecordPaymentRequest{
		PaymentDate: "2025-04-10",
		Amount:      decimal.RequireFromString("40"),
		Method:      "cash",
	}
	payment := &domain.Payment{
		PaymentID:   uuid.NewString(),
		InvoiceID:   invoiceID,
		PaymentDate: time.Date(2025, 4, 10, 0, 0, 0, 0, time.UTC),
		Amount:      req.Amount,
		Method:      domain.PaymentMethodCash,
	}
	invoice := &domain.Invoice{InvoiceID: invoiceID, Number: "INV-00003", Status: domain.InvoiceStatusPartial}
	invoice.PaidAmount = req.Amount

	suite.mockPaymentService.On("RecordPayment", mock.Anything, invoiceID, req, "system").
		Return(payment, invoice, nil).Once()

	w := suite.performRequest(http.MethodPost, "/api/v1/invoices/"+invoiceID+"/payments", req, nil)

	suite.Equal(http.StatusCreated, w.Code)
	var resp dto.RecordPaymentResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(payment.PaymentID, resp.Payment.PaymentID)
	suite.Equal("partial", resp.Invoice.Status)
	suite.mockPaymentService.AssertExpectations(suite.T())
}

func (suite *InvoiceHandlerTestSuite) TestRecordPayment_DraftConflict() {
	invoiceID := uuid.NewString()
	req := dto.RecordPaymentRequest{
		PaymentDate: "2025-04-10",
		Amount:      decimal.RequireFromString("40"),
		Method:      "cash",
	}

	suite.mockPaymentService.On("RecordPayment", mock.Anything, invoiceID, req, "system").
		Return(nil, nil, fmt.Errorf("%w: draft", apperrors.ErrConflict)).Once()

	w := suite.performRequest(http.MethodPost, "/api/v1/invoices/"+invoiceID+"/payments", req, nil)

	suite.Equal(http.StatusConflict, w.Code)
}

func (suite *InvoiceHandlerTestSuite) TestDeletePayment_Success() {
	paymentID := uuid.NewString()
	invoice := &domain.Invoice{InvoiceID: uuid.NewString(), Number: "INV-00004", Status: domain.InvoiceStatusSent}

	suite.mockPaymentService.On("DeletePayment", mock.Anything, paymentID, "system").
		Return(invoice, nil).Once()

	w := suite.performRequest(http.MethodDelete, "/api/v1/payments/"+paymentID, nil, nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.InvoiceResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("sent", resp.Status)
}

func (suite *InvoiceHandlerTestSuite) TestDownloadInvoicePDF() {
	invoiceID := uuid.NewString()
	pdf := []byte("%PDF-1.4 fake")

	suite.mockExportService.On("RenderInvoicePDF", mock.Anything, invoiceID).
		Return(pdf, nil).Once()

	w := suite.performRequest(http.MethodGet, "/api/v1/invoices/"+invoiceID+"/pdf", nil, nil)

	suite.Equal(http.StatusOK, w.Code)
	suite.Equal("application/pdf", w.Header().Get("Content-Type"))
	suite.Equal(pdf, w.Body.Bytes())
}

func (suite *InvoiceHandlerTestSuite) TestAddItem_InvalidBody() {
	invoiceID := uuid.NewString()

	w := suite.performRequest(http.MethodPost, "/api/v1/invoices/"+invoiceID+"/items", map[string]string{}, nil)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockInvoiceService.AssertNotCalled(suite.T(), "AddInvoiceItem", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *InvoiceHandlerTestSuite) TestListInvoices_ReturnsPage() {
	inv := domain.Invoice{InvoiceID: uuid.NewString(), Number: "INV-00005", Status: domain.InvoiceStatusSent}

	suite.mockInvoiceService.On("ListInvoices", mock.Anything, mock.AnythingOfType("dto.ListInvoicesParams"), mock.AnythingOfType("time.Time")).
		Return([]domain.Invoice{inv}, int64(1), nil).Once()

	w := suite.performRequest(http.MethodGet, "/api/v1/invoices?status=sent&page=1&limit=20", nil, nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.ListInvoicesResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(int64(1), resp.Total)
	suite.Len(resp.Invoices, 1)
	suite.Equal("INV-00005", resp.Invoices[0].Number)
}

// --- Run Test Suite ---

func TestInvoiceHandler(t *testing.T) {
	suite.Run(t, new(InvoiceHandlerTestSuite))
}
