package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/smesiteli/storefront/internal/cart/domain"
)

type MockCartRepository struct {
	mock.Mock
}

func (m *MockCartRepository) GetCart(ctx context.Context, id string) (*domain.Cart, error) {
	args := m.Called(ctx, id)
	if res := args.Get(0); res != nil {
		return res.(*domain.Cart), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockCartRepository) SaveCart(ctx context.Context, cart *domain.Cart) error {
	args := m.Called(ctx, cart)
	return args.Error(0)
}

func (m *MockCartRepository) DeleteCart(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
