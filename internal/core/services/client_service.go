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

type clientService struct {
	clientRepo portsrepo.ClientRepository
}

// NewClientService builds the client directory service.
func NewClientService(repo portsrepo.ClientRepository) *clientService {
	return &clientService{clientRepo: repo}
}

func (s *clientService) CreateClient(ctx context.Context, req dto.CreateClientRequest, userID string) (*domain.Client, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	now := time.Now()
	client := domain.Client{
		ClientID:      uuid.NewString(),
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
		CreditLimit:   req.CreditLimit,
		IsActive:      true,
		Notes:         req.Notes,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}
	if err := s.clientRepo.SaveClient(ctx, client); err != nil {
		logger.Error("Failed to save client", slog.String("error", err.Error()), slog.String("client_id", client.ClientID))
		return nil, err
	}

	logger.Info("Client created", slog.String("client_id", client.ClientID))
	return &client, nil
}

func (s *clientService) GetClientByID(ctx context.Context, clientID string) (*domain.Client, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	client, err := s.clientRepo.FindClientByID(ctx, clientID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to find client", slog.String("error", err.Error()), slog.String("client_id", clientID))
		}
		return nil, err
	}
	return client, nil
}

func (s *clientService) ListClients(ctx context.Context, params dto.ListClientsParams) ([]domain.Client, int64, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	params.Normalize()

	filter := portsrepo.ListPartiesFilter{
		Search:     params.Search,
		ActiveOnly: params.ActiveOnly,
		Page:       params.Page,
		Limit:      params.Limit,
	}
	clients, total, err := s.clientRepo.ListClients(ctx, filter)
	if err != nil {
		logger.Error("Failed to list clients", slog.String("error", err.Error()))
		return nil, 0, fmt.Errorf("failed to list clients: %w", err)
	}
	if clients == nil {
		clients = []domain.Client{}
	}
	return clients, total, nil
}

func (s *clientService) UpdateClient(ctx context.Context, clientID string, req dto.UpdateClientRequest, userID string) (*domain.Client, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	client, err := s.clientRepo.FindClientByID(ctx, clientID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		if *req.Name == "" {
			return nil, fmt.Errorf("%w: client name must not be empty", apperrors.ErrValidation)
		}
		client.Name = *req.Name
	}
	if req.Company != nil {
		client.Company = *req.Company
	}
	if req.Email != nil {
		client.Email = *req.Email
	}
	if req.Phone != nil {
		client.Phone = *req.Phone
	}
	if req.Address != nil {
		client.Address = *req.Address
	}
	if req.City != nil {
		client.City = *req.City
	}
	if req.PostalCode != nil {
		client.PostalCode = *req.PostalCode
	}
	if req.Country != nil {
		client.Country = *req.Country
	}
	if req.TaxID != nil {
		client.TaxID = *req.TaxID
	}
	if req.ContactPerson != nil {
		client.ContactPerson = *req.ContactPerson
	}
	if req.PaymentTerms != nil {
		client.PaymentTerms = *req.PaymentTerms
	}
	if req.CreditLimit != nil {
		client.CreditLimit = req.CreditLimit
	}
	if req.Notes != nil {
		client.Notes = *req.Notes
	}
	if req.IsActive != nil {
		client.IsActive = *req.IsActive
	}
	client.LastUpdatedAt = time.Now()
	client.LastUpdatedBy = userID

	if err := s.clientRepo.UpdateClient(ctx, *client); err != nil {
		logger.Error("Failed to update client", slog.String("error", err.Error()), slog.String("client_id", clientID))
		return nil, err
	}
	return client, nil
}

func (s *clientService) DeactivateClient(ctx context.Context, clientID string, userID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := s.clientRepo.DeactivateClient(ctx, clientID, userID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to deactivate client", slog.String("error", err.Error()), slog.String("client_id", clientID))
		}
		return err
	}
	logger.Info("Client deactivated", slog.String("client_id", clientID))
	return nil
}
