package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/smesiteli/storefront/internal/catalog/domain"
)

func TestSeededMemoryRepository(t *testing.T) {
	repo := NewSeededMemoryRepository()
	ctx := context.TODO()

	categories, err := repo.ListCategories(ctx)
	assert.NoError(t, err)
	assert.Len(t, categories, 4)

	products, err := repo.ListProducts(ctx)
	assert.NoError(t, err)
	assert.Len(t, products, 6)

	t.Run("Listing returns copies of the backing set", func(t *testing.T) {
		first, _ := repo.ListProducts(ctx)
		first[0].Name = "mutated"

		again, _ := repo.ListProducts(ctx)
		assert.NotEqual(t, "mutated", again[0].Name)
	})
}

func TestNewMemoryRepositoryValidation(t *testing.T) {
	categories := []domain.Category{{ID: "c1", Name: "Cat", Slug: "cat"}}
	valid := domain.Product{
		ID: "p1", Name: "P", Slug: "p", Price: 100,
		Images: []string{"https://img.test/p"}, Category: "cat",
	}

	t.Run("Accepts a consistent set", func(t *testing.T) {
		repo, err := NewMemoryRepository(categories, []domain.Product{valid})
		assert.NoError(t, err)
		assert.NotNil(t, repo)
	})

	t.Run("Rejects duplicate product slug", func(t *testing.T) {
		dup := valid
		dup.ID = "p2"
		_, err := NewMemoryRepository(categories, []domain.Product{valid, dup})
		assert.ErrorContains(t, err, "duplicate product slug")
	})

	t.Run("Rejects unknown category reference", func(t *testing.T) {
		orphan := valid
		orphan.Category = "ghost"
		_, err := NewMemoryRepository(categories, []domain.Product{orphan})
		assert.ErrorContains(t, err, "unknown category")
	})

	t.Run("Rejects product without images", func(t *testing.T) {
		bare := valid
		bare.Images = nil
		_, err := NewMemoryRepository(categories, []domain.Product{bare})
		assert.ErrorContains(t, err, "no images")
	})

	t.Run("Rejects duplicate category slug", func(t *testing.T) {
		dupCats := append(categories, domain.Category{ID: "c2", Name: "Cat 2", Slug: "cat"})
		_, err := NewMemoryRepository(dupCats, nil)
		assert.ErrorContains(t, err, "duplicate category slug")
	})
}
