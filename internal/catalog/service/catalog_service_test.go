package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/smesiteli/storefront/internal/catalog/domain"
	"github.com/smesiteli/storefront/internal/catalog/repository/mocks"
)

var testCategories = []domain.Category{
	{ID: "kitchen", Name: "Kitchen Faucets", Slug: "kitchen"},
	{ID: "shower", Name: "Shower Faucets", Slug: "shower"},
}

var testProducts = []domain.Product{
	{ID: "1", Name: "Faucet A", Slug: "faucet-a", Category: "kitchen", Price: 100, Availability: true},
	{ID: "2", Name: "Faucet B", Slug: "faucet-b", Category: "shower", Price: 200, Availability: false},
	{ID: "3", Name: "Faucet C", Slug: "faucet-c", Category: "kitchen", Price: 300, Availability: true},
}

func newTestService(t *testing.T) CatalogService {
	t.Helper()
	mockRepo := new(mocks.MockCatalogRepository)
	mockRepo.On("ListCategories", mock.Anything).Return(testCategories, nil).Once()
	mockRepo.On("ListProducts", mock.Anything).Return(testProducts, nil).Once()

	svc, err := NewCatalogService(mockRepo, "")
	assert.NoError(t, err)
	t.Cleanup(svc.Close)
	return svc
}

func TestCatalogService_FindCategoryBySlug(t *testing.T) {
	svc := newTestService(t)
	ctx := context.TODO()

	t.Run("Known slug", func(t *testing.T) {
		category, err := svc.FindCategoryBySlug(ctx, "shower")
		assert.NoError(t, err)
		assert.Equal(t, "Shower Faucets", category.Name)
	})

	t.Run("Unknown slug", func(t *testing.T) {
		category, err := svc.FindCategoryBySlug(ctx, "garden")
		assert.Nil(t, category)
		assert.ErrorIs(t, err, ErrCategoryNotFound)
	})
}

func TestCatalogService_GetProductBySlug(t *testing.T) {
	svc := newTestService(t)
	ctx := context.TODO()

	t.Run("Every product resolves to itself", func(t *testing.T) {
		for _, want := range testProducts {
			got, err := svc.GetProductBySlug(ctx, want.Slug)
			assert.NoError(t, err)
			assert.Equal(t, want, *got)
		}
	})

	t.Run("Unknown slug", func(t *testing.T) {
		got, err := svc.GetProductBySlug(ctx, "no-such-faucet")
		assert.Nil(t, got)
		assert.ErrorIs(t, err, ErrProductNotFound)
	})
}

func TestCatalogService_GetProductByID(t *testing.T) {
	svc := newTestService(t)
	ctx := context.TODO()

	got, err := svc.GetProductByID(ctx, "2")
	assert.NoError(t, err)
	assert.Equal(t, "faucet-b", got.Slug)

	_, err = svc.GetProductByID(ctx, "999")
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestCatalogService_GetProductsByCategory(t *testing.T) {
	svc := newTestService(t)
	ctx := context.TODO()

	t.Run("Only and all matching products, original order", func(t *testing.T) {
		products := svc.GetProductsByCategory(ctx, "kitchen")
		assert.Len(t, products, 2)
		assert.Equal(t, "faucet-a", products[0].Slug)
		assert.Equal(t, "faucet-c", products[1].Slug)
	})

	t.Run("Unknown category yields empty list", func(t *testing.T) {
		products := svc.GetProductsByCategory(ctx, "garden")
		assert.Empty(t, products)
		assert.NotNil(t, products)
	})
}

func TestCatalogService_GetAvailableProducts(t *testing.T) {
	svc := newTestService(t)

	products := svc.GetAvailableProducts(context.TODO())
	assert.Len(t, products, 2)
	for _, p := range products {
		assert.True(t, p.Availability)
	}
}

func TestCatalogService_Refresh(t *testing.T) {
	mockRepo := new(mocks.MockCatalogRepository)
	mockRepo.On("ListCategories", mock.Anything).Return(testCategories, nil).Twice()
	mockRepo.On("ListProducts", mock.Anything).Return(testProducts, nil).Once()
	ctx := context.TODO()

	svc, err := NewCatalogService(mockRepo, "")
	assert.NoError(t, err)
	defer svc.Close()

	t.Run("Failure keeps the previous snapshot", func(t *testing.T) {
		mockRepo.On("ListProducts", mock.Anything).Return(nil, errors.New("db down")).Once()

		err := svc.Refresh(ctx)
		assert.Error(t, err)
		assert.Len(t, svc.ListProducts(ctx), len(testProducts))
	})

	mockRepo.AssertExpectations(t)
}

func TestCatalogService_InitialLoadFailure(t *testing.T) {
	mockRepo := new(mocks.MockCatalogRepository)
	mockRepo.On("ListCategories", mock.Anything).Return(nil, errors.New("db down")).Once()

	svc, err := NewCatalogService(mockRepo, "")
	assert.Nil(t, svc)
	assert.Error(t, err)
}
