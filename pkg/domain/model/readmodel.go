package model

import (
	"context"
	"errors"
)

var ErrOptimisticLock = errors.New("merchandise has been modified by another transaction")

type ProductNamesReader interface {
	ReadProductNames(ctx context.Context) (ProductNames, error)
}

// DisplayOrderReader returns the position for the next product to be added.
type DisplayOrderReader interface {
	ReadDisplayOrder(ctx context.Context) (DisplayOrder, error)
}

// MerchandiseRepository restores the aggregate and projects its events.
// Save methods must apply atomically and fail with ErrOptimisticLock
// when the stored version differs from expectedVersion.
type MerchandiseRepository interface {
	Restore(ctx context.Context) (Merchandise, error)
	SaveProduct(ctx context.Context, event ProductAdded, expectedVersion int) error
	SaveState(ctx context.Context, merchandise Merchandise, expectedVersion int) error
}
