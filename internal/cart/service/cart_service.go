package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/smesiteli/storefront/internal/cart/domain"
	"github.com/smesiteli/storefront/internal/cart/ledger"
	"github.com/smesiteli/storefront/internal/cart/repository"
	catalogdomain "github.com/smesiteli/storefront/internal/catalog/domain"
	"github.com/smesiteli/storefront/internal/platform/logger"
)

var (
	ErrCartNotFound   = repository.ErrCartNotFound
	ErrUnknownProduct = errors.New("unknown product")
)

// ProductGetter is the slice of the catalog service the cart needs:
// resolving a product id to its current name, image and price at add time.
type ProductGetter interface {
	GetProductByID(ctx context.Context, id string) (*catalogdomain.Product, error)
}

type CartService interface {
	CreateCart(ctx context.Context) (*domain.Cart, error)
	GetCart(ctx context.Context, id string) (*domain.Cart, error)
	AddProduct(ctx context.Context, cartID, productID string) (*domain.Cart, error)
	UpdateQuantity(ctx context.Context, cartID, productID string, quantity int) (*domain.Cart, error)
	RemoveProduct(ctx context.Context, cartID, productID string) (*domain.Cart, error)
	ClearCart(ctx context.Context, cartID string) (*domain.Cart, error)
}

type cartServiceImpl struct {
	repo    repository.CartRepository
	catalog ProductGetter
}

func NewCartService(repo repository.CartRepository, catalog ProductGetter) CartService {
	return &cartServiceImpl{repo: repo, catalog: catalog}
}

func (s *cartServiceImpl) CreateCart(ctx context.Context) (*domain.Cart, error) {
	cart := ledger.Clear()
	cart.ID = uuid.NewString()
	if err := s.repo.SaveCart(ctx, &cart); err != nil {
		return nil, fmt.Errorf("failed to create cart: %w", err)
	}
	logger.Info("Created cart %s", cart.ID)
	return &cart, nil
}

func (s *cartServiceImpl) GetCart(ctx context.Context, id string) (*domain.Cart, error) {
	return s.repo.GetCart(ctx, id)
}

// AddProduct adds one unit of the product to the cart, copying the
// product's current name, primary image and price into the cart line.
func (s *cartServiceImpl) AddProduct(ctx context.Context, cartID, productID string) (*domain.Cart, error) {
	cart, err := s.repo.GetCart(ctx, cartID)
	if err != nil {
		return nil, err
	}

	product, err := s.catalog.GetProductByID(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrUnknownProduct, productID)
	}

	item := domain.CartItem{
		ProductID:   product.ID,
		ProductName: product.Name,
		Price:       product.Price,
	}
	if len(product.Images) > 0 {
		item.ProductImage = product.Images[0]
	}

	updated := ledger.AddItem(*cart, item)
	if err := s.repo.SaveCart(ctx, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (s *cartServiceImpl) UpdateQuantity(ctx context.Context, cartID, productID string, quantity int) (*domain.Cart, error) {
	cart, err := s.repo.GetCart(ctx, cartID)
	if err != nil {
		return nil, err
	}

	updated := ledger.UpdateQuantity(*cart, productID, quantity)
	if err := s.repo.SaveCart(ctx, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (s *cartServiceImpl) RemoveProduct(ctx context.Context, cartID, productID string) (*domain.Cart, error) {
	cart, err := s.repo.GetCart(ctx, cartID)
	if err != nil {
		return nil, err
	}

	updated := ledger.RemoveItem(*cart, productID)
	if err := s.repo.SaveCart(ctx, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// ClearCart resets the cart to the canonical empty state while keeping
// its id, so the caller's session stays valid.
func (s *cartServiceImpl) ClearCart(ctx context.Context, cartID string) (*domain.Cart, error) {
	cart, err := s.repo.GetCart(ctx, cartID)
	if err != nil {
		return nil, err
	}

	cleared := ledger.Clear()
	cleared.ID = cart.ID
	if err := s.repo.SaveCart(ctx, &cleared); err != nil {
		return nil, err
	}
	return &cleared, nil
}
