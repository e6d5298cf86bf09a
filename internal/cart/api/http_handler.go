package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/smesiteli/storefront/internal/cart/service"
	"github.com/smesiteli/storefront/internal/platform/logger"
)

type CartHandler struct {
	cartService service.CartService
}

func NewCartHandler(cs service.CartService) *CartHandler {
	return &CartHandler{cartService: cs}
}

func (h *CartHandler) RegisterRoutes(router *gin.RouterGroup) {
	cartRoutes := router.Group("/carts")
	{
		cartRoutes.POST("", h.CreateCart)
		cartRoutes.POST("/", h.CreateCart)
		cartRoutes.GET("/:id", h.GetCart)
		cartRoutes.DELETE("/:id", h.ClearCart)
		cartRoutes.POST("/:id/items", h.AddItem)
		cartRoutes.PATCH("/:id/items/:productId", h.UpdateQuantity)
		cartRoutes.DELETE("/:id/items/:productId", h.RemoveItem)
	}
}

type addItemRequest struct {
	ProductID string `json:"product_id" binding:"required"`
}

type updateQuantityRequest struct {
	// Zero and negative values remove the line, so no gt=0 binding here.
	Quantity int `json:"quantity"`
}

func (h *CartHandler) CreateCart(c *gin.Context) {
	cart, err := h.cartService.CreateCart(c.Request.Context())
	if err != nil {
		logger.Error("CreateCart: service error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create cart"})
		return
	}
	c.JSON(http.StatusCreated, cart)
}

func (h *CartHandler) GetCart(c *gin.Context) {
	cart, err := h.cartService.GetCart(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.renderCartError(c, "GetCart", err)
		return
	}
	c.JSON(http.StatusOK, cart)
}

func (h *CartHandler) AddItem(c *gin.Context) {
	var req addItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	cart, err := h.cartService.AddProduct(c.Request.Context(), c.Param("id"), req.ProductID)
	if err != nil {
		if errors.Is(err, service.ErrUnknownProduct) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
			return
		}
		h.renderCartError(c, "AddItem", err)
		return
	}
	c.JSON(http.StatusOK, cart)
}

func (h *CartHandler) UpdateQuantity(c *gin.Context) {
	var req updateQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	cart, err := h.cartService.UpdateQuantity(c.Request.Context(), c.Param("id"), c.Param("productId"), req.Quantity)
	if err != nil {
		h.renderCartError(c, "UpdateQuantity", err)
		return
	}
	c.JSON(http.StatusOK, cart)
}

func (h *CartHandler) RemoveItem(c *gin.Context) {
	cart, err := h.cartService.RemoveProduct(c.Request.Context(), c.Param("id"), c.Param("productId"))
	if err != nil {
		h.renderCartError(c, "RemoveItem", err)
		return
	}
	c.JSON(http.StatusOK, cart)
}

func (h *CartHandler) ClearCart(c *gin.Context) {
	cart, err := h.cartService.ClearCart(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.renderCartError(c, "ClearCart", err)
		return
	}
	c.JSON(http.StatusOK, cart)
}

func (h *CartHandler) renderCartError(c *gin.Context, op string, err error) {
	if errors.Is(err, service.ErrCartNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	logger.Error(op+": service error", err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Cart operation failed"})
}
