package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/smesiteli/storefront/internal/catalog/domain"
)

type MockProductGetter struct {
	mock.Mock
}

func (m *MockProductGetter) GetProductByID(ctx context.Context, id string) (*domain.Product, error) {
	args := m.Called(ctx, id)
	if res := args.Get(0); res != nil {
		return res.(*domain.Product), args.Error(1)
	}
	return nil, args.Error(1)
}
