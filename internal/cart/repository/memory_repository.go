package repository

import (
	"context"
	"sync"

	"github.com/smesiteli/storefront/internal/cart/domain"
)

// memoryCartRepository is the fallback cart store for deployments without
// Redis. Carts live for the process lifetime and are never evicted.
type memoryCartRepository struct {
	mu    sync.RWMutex
	carts map[string]domain.Cart
}

func NewMemoryCartRepository() CartRepository {
	return &memoryCartRepository{carts: make(map[string]domain.Cart)}
}

func (r *memoryCartRepository) GetCart(ctx context.Context, id string) (*domain.Cart, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	cart, ok := r.carts[id]
	if !ok {
		return nil, ErrCartNotFound
	}
	return &cart, nil
}

func (r *memoryCartRepository) SaveCart(ctx context.Context, cart *domain.Cart) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.carts[cart.ID] = *cart
	return nil
}

func (r *memoryCartRepository) DeleteCart(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.carts, id)
	return nil
}
