package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/facturio/facturio/internal/apperrors"
	"github.com/facturio/facturio/internal/core/domain"
)

// createWithNumberRetry runs a document creation that allocates a sequential
// number inside its transaction. When two requests race for the same number
// the repository reports ErrNumberingConflict; a single retry re-reads the
// sequence and succeeds unless the table is under sustained contention.
func createWithNumberRetry[T any](ctx context.Context, doc T, create func(context.Context, T) (*T, error)) (*T, error) {
	created, err := create(ctx, doc)
	if err == nil {
		return created, nil
	}
	if !errors.Is(err, apperrors.ErrNumberingConflict) {
		return nil, err
	}
	return create(ctx, doc)
}

// derefOr returns the pointed-to string, or the fallback for nil.
func derefOr(s *string, fallback string) string {
	if s == nil {
		return fallback
	}
	return *s
}

// pickItem finds a line item by ID within a document's item set.
func pickItem(items []domain.LineItem, itemID string) (*domain.LineItem, error) {
	for i := range items {
		if items[i].ItemID == itemID {
			return &items[i], nil
		}
	}
	return nil, fmt.Errorf("%w: line item %s", apperrors.ErrNotFound, itemID)
}
