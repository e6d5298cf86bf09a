package repository

import (
	"context"
	"fmt"

	"github.com/smesiteli/storefront/internal/catalog/domain"
)

type memoryCatalogRepository struct {
	categories []domain.Category
	products   []domain.Product
}

// NewMemoryRepository wraps fixed category/product sets. The sets are
// validated once here so every later query can trust them: unique ids and
// slugs, non-empty image lists, every product category resolving to a
// known category slug.
func NewMemoryRepository(categories []domain.Category, products []domain.Product) (CatalogRepository, error) {
	if err := validate(categories, products); err != nil {
		return nil, err
	}
	return &memoryCatalogRepository{categories: categories, products: products}, nil
}

// NewSeededMemoryRepository returns the repository backed by the built-in
// storefront data set.
func NewSeededMemoryRepository() CatalogRepository {
	repo, err := NewMemoryRepository(SeedCategories(), SeedProducts())
	if err != nil {
		// The seed set is compiled in; failing validation is a programming error.
		panic(err)
	}
	return repo
}

func (r *memoryCatalogRepository) ListCategories(ctx context.Context) ([]domain.Category, error) {
	out := make([]domain.Category, len(r.categories))
	copy(out, r.categories)
	return out, nil
}

func (r *memoryCatalogRepository) ListProducts(ctx context.Context) ([]domain.Product, error) {
	out := make([]domain.Product, len(r.products))
	copy(out, r.products)
	return out, nil
}

func validate(categories []domain.Category, products []domain.Product) error {
	catIDs := make(map[string]bool, len(categories))
	catSlugs := make(map[string]bool, len(categories))
	for _, c := range categories {
		if catIDs[c.ID] {
			return fmt.Errorf("duplicate category id %q", c.ID)
		}
		if catSlugs[c.Slug] {
			return fmt.Errorf("duplicate category slug %q", c.Slug)
		}
		catIDs[c.ID] = true
		catSlugs[c.Slug] = true
	}

	prodIDs := make(map[string]bool, len(products))
	prodSlugs := make(map[string]bool, len(products))
	for _, p := range products {
		if prodIDs[p.ID] {
			return fmt.Errorf("duplicate product id %q", p.ID)
		}
		if prodSlugs[p.Slug] {
			return fmt.Errorf("duplicate product slug %q", p.Slug)
		}
		prodIDs[p.ID] = true
		prodSlugs[p.Slug] = true

		if !catSlugs[p.Category] {
			return fmt.Errorf("product %q references unknown category %q", p.ID, p.Category)
		}
		if len(p.Images) == 0 {
			return fmt.Errorf("product %q has no images", p.ID)
		}
		if p.Price < 0 {
			return fmt.Errorf("product %q has negative price %d", p.ID, p.Price)
		}
	}
	return nil
}
