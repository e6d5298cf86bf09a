package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/smesiteli/storefront/internal/cart/domain"
	"github.com/smesiteli/storefront/internal/cart/repository"
	repoMocks "github.com/smesiteli/storefront/internal/cart/repository/mocks"
	svcMocks "github.com/smesiteli/storefront/internal/cart/service/mocks"
	catalogdomain "github.com/smesiteli/storefront/internal/catalog/domain"
	catalogservice "github.com/smesiteli/storefront/internal/catalog/service"
)

var testProduct = &catalogdomain.Product{
	ID:       "p1",
	Name:     "Faucet A",
	Slug:     "faucet-a",
	Price:    100,
	Images:   []string{"https://img.test/a", "https://img.test/b"},
	Category: "kitchen",
}

func emptyCart(id string) *domain.Cart {
	return &domain.Cart{ID: id, Items: []domain.CartItem{}, Total: 0}
}

func TestCartService_CreateCart(t *testing.T) {
	mockRepo := new(repoMocks.MockCartRepository)
	mockCatalog := new(svcMocks.MockProductGetter)
	svc := NewCartService(mockRepo, mockCatalog)
	ctx := context.TODO()

	mockRepo.On("SaveCart", ctx, mock.MatchedBy(func(c *domain.Cart) bool {
		return c.ID != "" && len(c.Items) == 0 && c.Total == 0
	})).Return(nil).Once()

	cart, err := svc.CreateCart(ctx)
	assert.NoError(t, err)
	assert.NotEmpty(t, cart.ID)
	assert.Empty(t, cart.Items)
	mockRepo.AssertExpectations(t)
}

func TestCartService_AddProduct(t *testing.T) {
	ctx := context.TODO()

	t.Run("First add creates a line with quantity 1", func(t *testing.T) {
		mockRepo := new(repoMocks.MockCartRepository)
		mockCatalog := new(svcMocks.MockProductGetter)
		svc := NewCartService(mockRepo, mockCatalog)

		mockRepo.On("GetCart", ctx, "c1").Return(emptyCart("c1"), nil).Once()
		mockCatalog.On("GetProductByID", ctx, "p1").Return(testProduct, nil).Once()
		mockRepo.On("SaveCart", ctx, mock.Anything).Return(nil).Once()

		cart, err := svc.AddProduct(ctx, "c1", "p1")
		assert.NoError(t, err)
		if assert.Len(t, cart.Items, 1) {
			line := cart.Items[0]
			assert.Equal(t, "p1", line.ProductID)
			assert.Equal(t, "Faucet A", line.ProductName)
			assert.Equal(t, "https://img.test/a", line.ProductImage)
			assert.Equal(t, 1, line.Quantity)
		}
		assert.Equal(t, int64(100), cart.Total)
		mockRepo.AssertExpectations(t)
		mockCatalog.AssertExpectations(t)
	})

	t.Run("Second add increments the existing line", func(t *testing.T) {
		mockRepo := new(repoMocks.MockCartRepository)
		mockCatalog := new(svcMocks.MockProductGetter)
		svc := NewCartService(mockRepo, mockCatalog)

		existing := &domain.Cart{ID: "c1", Items: []domain.CartItem{
			{ProductID: "p1", ProductName: "Faucet A", Price: 100, Quantity: 1},
		}, Total: 100}
		mockRepo.On("GetCart", ctx, "c1").Return(existing, nil).Once()
		mockCatalog.On("GetProductByID", ctx, "p1").Return(testProduct, nil).Once()
		mockRepo.On("SaveCart", ctx, mock.Anything).Return(nil).Once()

		cart, err := svc.AddProduct(ctx, "c1", "p1")
		assert.NoError(t, err)
		assert.Len(t, cart.Items, 1)
		assert.Equal(t, 2, cart.Items[0].Quantity)
		assert.Equal(t, int64(200), cart.Total)
	})

	t.Run("Unknown product", func(t *testing.T) {
		mockRepo := new(repoMocks.MockCartRepository)
		mockCatalog := new(svcMocks.MockProductGetter)
		svc := NewCartService(mockRepo, mockCatalog)

		mockRepo.On("GetCart", ctx, "c1").Return(emptyCart("c1"), nil).Once()
		mockCatalog.On("GetProductByID", ctx, "nope").Return(nil, catalogservice.ErrProductNotFound).Once()

		cart, err := svc.AddProduct(ctx, "c1", "nope")
		assert.Nil(t, cart)
		assert.ErrorIs(t, err, ErrUnknownProduct)
	})

	t.Run("Missing cart", func(t *testing.T) {
		mockRepo := new(repoMocks.MockCartRepository)
		mockCatalog := new(svcMocks.MockProductGetter)
		svc := NewCartService(mockRepo, mockCatalog)

		mockRepo.On("GetCart", ctx, "gone").Return(nil, repository.ErrCartNotFound).Once()

		cart, err := svc.AddProduct(ctx, "gone", "p1")
		assert.Nil(t, cart)
		assert.ErrorIs(t, err, ErrCartNotFound)
	})
}

func TestCartService_UpdateQuantity(t *testing.T) {
	ctx := context.TODO()
	existing := &domain.Cart{ID: "c1", Items: []domain.CartItem{
		{ProductID: "p1", Price: 100, Quantity: 2},
	}, Total: 200}

	t.Run("Sets absolute quantity", func(t *testing.T) {
		mockRepo := new(repoMocks.MockCartRepository)
		svc := NewCartService(mockRepo, new(svcMocks.MockProductGetter))

		mockRepo.On("GetCart", ctx, "c1").Return(existing, nil).Once()
		mockRepo.On("SaveCart", ctx, mock.Anything).Return(nil).Once()

		cart, err := svc.UpdateQuantity(ctx, "c1", "p1", 5)
		assert.NoError(t, err)
		assert.Equal(t, 5, cart.Items[0].Quantity)
		assert.Equal(t, int64(500), cart.Total)
	})

	t.Run("Zero removes the line", func(t *testing.T) {
		mockRepo := new(repoMocks.MockCartRepository)
		svc := NewCartService(mockRepo, new(svcMocks.MockProductGetter))

		mockRepo.On("GetCart", ctx, "c1").Return(existing, nil).Once()
		mockRepo.On("SaveCart", ctx, mock.Anything).Return(nil).Once()

		cart, err := svc.UpdateQuantity(ctx, "c1", "p1", 0)
		assert.NoError(t, err)
		assert.Empty(t, cart.Items)
		assert.Equal(t, int64(0), cart.Total)
	})
}

func TestCartService_RemoveProduct(t *testing.T) {
	ctx := context.TODO()
	mockRepo := new(repoMocks.MockCartRepository)
	svc := NewCartService(mockRepo, new(svcMocks.MockProductGetter))

	existing := &domain.Cart{ID: "c1", Items: []domain.CartItem{
		{ProductID: "p1", Price: 100, Quantity: 1},
		{ProductID: "p2", Price: 200, Quantity: 3},
	}, Total: 700}
	mockRepo.On("GetCart", ctx, "c1").Return(existing, nil).Once()
	mockRepo.On("SaveCart", ctx, mock.Anything).Return(nil).Once()

	cart, err := svc.RemoveProduct(ctx, "c1", "p2")
	assert.NoError(t, err)
	assert.Len(t, cart.Items, 1)
	assert.Equal(t, "p1", cart.Items[0].ProductID)
	assert.Equal(t, int64(100), cart.Total)
}

func TestCartService_ClearCart(t *testing.T) {
	ctx := context.TODO()
	mockRepo := new(repoMocks.MockCartRepository)
	svc := NewCartService(mockRepo, new(svcMocks.MockProductGetter))

	existing := &domain.Cart{ID: "c1", Items: []domain.CartItem{
		{ProductID: "p1", Price: 100, Quantity: 4},
	}, Total: 400}
	mockRepo.On("GetCart", ctx, "c1").Return(existing, nil).Once()
	mockRepo.On("SaveCart", ctx, mock.MatchedBy(func(c *domain.Cart) bool {
		return c.ID == "c1" && len(c.Items) == 0 && c.Total == 0
	})).Return(nil).Once()

	cart, err := svc.ClearCart(ctx, "c1")
	assert.NoError(t, err)
	assert.Equal(t, "c1", cart.ID)
	assert.Empty(t, cart.Items)
	assert.Equal(t, int64(0), cart.Total)
	mockRepo.AssertExpectations(t)
}
