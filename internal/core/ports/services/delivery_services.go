package services

import (
	"context"

	"github.com/facturio/facturio/internal/core/domain"
	"github.com/facturio/facturio/internal/dto"
)

// DeliverySvcFacade defines the operations available on delivery notes.
type DeliverySvcFacade interface {
	// GetDeliveryNoteByID retrieves a delivery note header by its identifier.
	GetDeliveryNoteByID(ctx context.Context, deliveryID string) (*domain.DeliveryNote, error)

	// GetDeliveryNoteWithItems retrieves a delivery note with its items.
	GetDeliveryNoteWithItems(ctx context.Context, deliveryID string) (*domain.DeliveryNote, error)

	// ListDeliveryNotes retrieves a paginated, filtered list of delivery notes.
	ListDeliveryNotes(ctx context.Context, params dto.ListDeliveryNotesParams) ([]domain.DeliveryNote, int64, error)

	// CreateDeliveryNote persists a new delivery note with a freshly allocated number.
	CreateDeliveryNote(ctx context.Context, req dto.CreateDeliveryNoteRequest, userID string) (*domain.DeliveryNote, error)

	// UpdateDeliveryNote updates the editable header fields of a delivery note.
	UpdateDeliveryNote(ctx context.Context, deliveryID string, req dto.UpdateDeliveryNoteRequest, userID string) (*domain.DeliveryNote, error)

	// AddDeliveryItem appends an item row to a delivery note.
	AddDeliveryItem(ctx context.Context, deliveryID string, req dto.AddDeliveryItemRequest, userID string) (*domain.DeliveryNote, error)

	// UpdateDeliveryItem edits an item row, typically to record the
	// delivered quantity.
	UpdateDeliveryItem(ctx context.Context, deliveryID string, itemID string, req dto.UpdateDeliveryItemRequest, userID string) (*domain.DeliveryNote, error)

	// RemoveDeliveryItem deletes an item row from a delivery note.
	RemoveDeliveryItem(ctx context.Context, deliveryID string, itemID string, userID string) (*domain.DeliveryNote, error)
}
