package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/smesiteli/storefront/internal/catalog/domain"
)

type MockCatalogRepository struct {
	mock.Mock
}

func (m *MockCatalogRepository) ListCategories(ctx context.Context) ([]domain.Category, error) {
	args := m.Called(ctx)
	if res := args.Get(0); res != nil {
		return res.([]domain.Category), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockCatalogRepository) ListProducts(ctx context.Context) ([]domain.Product, error) {
	args := m.Called(ctx)
	if res := args.Get(0); res != nil {
		return res.([]domain.Product), args.Error(1)
	}
	return nil, args.Error(1)
}
