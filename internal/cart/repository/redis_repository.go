package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/smesiteli/storefront/internal/cart/domain"
	"github.com/smesiteli/storefront/internal/platform/logger"
)

var ErrCartNotFound = errors.New("cart not found")

// CartRepository stores Cart values by id. It holds no cart logic; the
// ledger computes transitions and the repository only persists results.
type CartRepository interface {
	GetCart(ctx context.Context, id string) (*domain.Cart, error)
	SaveCart(ctx context.Context, cart *domain.Cart) error
	DeleteCart(ctx context.Context, id string) error
}

const cartKeyPrefix = "cart:"

type redisCartRepository struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisCartRepository stores carts as JSON under "cart:<id>" with the
// given TTL. Each save renews the TTL, so only abandoned carts expire.
func NewRedisCartRepository(client *redis.Client, ttl time.Duration) CartRepository {
	return &redisCartRepository{client: client, ttl: ttl}
}

func (r *redisCartRepository) GetCart(ctx context.Context, id string) (*domain.Cart, error) {
	data, err := r.client.Get(ctx, cartKeyPrefix+id).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrCartNotFound
		}
		logger.Error("GetCart: redis get failed", err)
		return nil, err
	}

	var cart domain.Cart
	if err := json.Unmarshal(data, &cart); err != nil {
		logger.Error("GetCart: failed to decode stored cart "+id, err)
		return nil, err
	}
	return &cart, nil
}

func (r *redisCartRepository) SaveCart(ctx context.Context, cart *domain.Cart) error {
	data, err := json.Marshal(cart)
	if err != nil {
		logger.Error("SaveCart: failed to encode cart "+cart.ID, err)
		return err
	}
	if err := r.client.Set(ctx, cartKeyPrefix+cart.ID, data, r.ttl).Err(); err != nil {
		logger.Error("SaveCart: redis set failed", err)
		return err
	}
	return nil
}

func (r *redisCartRepository) DeleteCart(ctx context.Context, id string) error {
	if err := r.client.Del(ctx, cartKeyPrefix+id).Err(); err != nil {
		logger.Error("DeleteCart: redis del failed", err)
		return err
	}
	return nil
}
