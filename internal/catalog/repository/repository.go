package repository

import (
	"context"

	"github.com/smesiteli/storefront/internal/catalog/domain"
)

// CatalogRepository is the read-only source of the category and product
// sets. Implementations return the sets in their natural display order;
// query logic (slug lookup, category filter) lives in the service on top
// of an immutable snapshot.
type CatalogRepository interface {
	ListCategories(ctx context.Context) ([]domain.Category, error)
	ListProducts(ctx context.Context) ([]domain.Product, error)
}
