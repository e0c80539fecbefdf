package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/facturio/facturio/internal/apperrors"
	"github.com/facturio/facturio/internal/core/domain"
	portsrepo "github.com/facturio/facturio/internal/core/ports/repositories"
	"github.com/facturio/facturio/internal/dto"
	"github.com/facturio/facturio/internal/middleware"
)

type supplierService struct {
	supplierRepo portsrepo.SupplierRepository
}

// NewSupplierService builds the supplier directory service.
func NewSupplierService(repo portsrepo.SupplierRepository) *supplierService {
	return &supplierService{supplierRepo: repo}
}

func (s *supplierService) CreateSupplier(ctx context.Context, req dto.CreateSupplierRequest, userID string) (*domain.Supplier, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	now := time.Now()
	supplier := domain.Supplier{
		SupplierID:    uuid.NewString(),
		Name:          req.Name,
		Company:       req.Company,
		Email:         req.Email,
		Phone:         req.Phone,
		Address:       req.Address,
		City:          req.City,
		PostalCode:    req.PostalCode,
		Country:       req.Country,
		TaxID:         req.TaxID,
		ContactPerson: req.ContactPerson,
		PaymentTerms:  req.PaymentTerms,
		IsActive:      true,
		Notes:         req.Notes,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}
	if err := s.supplierRepo.SaveSupplier(ctx, supplier); err != nil {
		logger.Error("Failed to save supplier", slog.String("error", err.Error()), slog.String("supplier_id", supplier.SupplierID))
		return nil, err
	}

	logger.Info("Supplier created", slog.String("supplier_id", supplier.SupplierID))
	return &supplier, nil
}

func (s *supplierService) GetSupplierByID(ctx context.Context, supplierID string) (*domain.Supplier, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	supplier, err := s.supplierRepo.FindSupplierByID(ctx, supplierID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to find supplier", slog.String("error", err.Error()), slog.String("supplier_id", supplierID))
		}
		return nil, err
	}
	return supplier, nil
}

func (s *supplierService) ListSuppliers(ctx context.Context, params dto.ListSuppliersParams) ([]domain.Supplier, int64, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	params.Normalize()

	filter := portsrepo.ListPartiesFilter{
		Search:     params.Search,
		ActiveOnly: params.ActiveOnly,
		Page:       params.Page,
		Limit:      params.Limit,
	}
	suppliers, total, err := s.supplierRepo.ListSuppliers(ctx, filter)
	if err != nil {
		logger.Error("Failed to list suppliers", slog.String("error", err.Error()))
		return nil, 0, fmt.Errorf("failed to list suppliers: %w", err)
	}
	if suppliers == nil {
		suppliers = []domain.Supplier{}
	}
	return suppliers, total, nil
}

func (s *supplierService) UpdateSupplier(ctx context.Context, supplierID string, req dto.UpdateSupplierRequest, userID string) (*domain.Supplier, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	supplier, err := s.supplierRepo.FindSupplierByID(ctx, supplierID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		if *req.Name == "" {
			return nil, fmt.Errorf("%w: supplier name must not be empty", apperrors.ErrValidation)
		}
		supplier.Name = *req.Name
	}
	if req.Company != nil {
		supplier.Company = *req.Company
	}
	if req.Email != nil {
		supplier.Email = *req.Email
	}
	if req.Phone != nil {
		supplier.Phone = *req.Phone
	}
	if req.Address != nil {
		supplier.Address = *req.Address
	}
	if req.City != nil {
		supplier.City = *req.City
	}
	if req.PostalCode != nil {
		supplier.PostalCode = *req.PostalCode
	}
	if req.Country != nil {
		supplier.Country = *req.Country
	}
	if req.TaxID != nil {
		supplier.TaxID = *req.TaxID
	}
	if req.ContactPerson != nil {
		supplier.ContactPerson = *req.ContactPerson
	}
	if req.PaymentTerms != nil {
		supplier.PaymentTerms = *req.PaymentTerms
	}
	if req.Notes != nil {
		supplier.Notes = *req.Notes
	}
	if req.IsActive != nil {
		supplier.IsActive = *req.IsActive
	}
	supplier.LastUpdatedAt = time.Now()
	supplier.LastUpdatedBy = userID

	if err := s.supplierRepo.UpdateSupplier(ctx, *supplier); err != nil {
		logger.Error("Failed to update supplier", slog.String("error", err.Error()), slog.String("supplier_id", supplierID))
		return nil, err
	}
	return supplier, nil
}

func (s *supplierService) DeactivateSupplier(ctx context.Context, supplierID string, userID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := s.supplierRepo.DeactivateSupplier(ctx, supplierID, userID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to deactivate supplier", slog.String("error", err.Error()), slog.String("supplier_id", supplierID))
		}
		return err
	}
	logger.Info("Supplier deactivated", slog.String("supplier_id", supplierID))
	return nil
}
