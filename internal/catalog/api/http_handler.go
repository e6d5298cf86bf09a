package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/smesiteli/storefront/internal/catalog/service"
	"github.com/smesiteli/storefront/internal/schemaorg"
)

type CatalogHandler struct {
	catalogService service.CatalogService
	schema         *schemaorg.Builder
}

func NewCatalogHandler(cs service.CatalogService, schema *schemaorg.Builder) *CatalogHandler {
	return &CatalogHandler{catalogService: cs, schema: schema}
}

func (h *CatalogHandler) RegisterRoutes(router *gin.RouterGroup) {
	categoryRoutes := router.Group("/categories")
	{
		categoryRoutes.GET("", h.ListCategories)
		categoryRoutes.GET("/", h.ListCategories)
		categoryRoutes.GET("/:slug", h.GetCategory)
		categoryRoutes.GET("/:slug/products", h.ListCategoryProducts)
	}

	productRoutes := router.Group("/products")
	{
		productRoutes.GET("", h.ListProducts)
		productRoutes.GET("/", h.ListProducts)
		productRoutes.GET("/:slug", h.GetProduct)
		productRoutes.GET("/:slug/schema", h.GetProductSchema)
		productRoutes.GET("/:slug/breadcrumbs", h.GetProductBreadcrumbs)
	}

	seoRoutes := router.Group("/seo")
	{
		seoRoutes.GET("/organization", h.GetOrganizationSchema)
		seoRoutes.GET("/website", h.GetWebSiteSchema)
	}
}

func (h *CatalogHandler) ListCategories(c *gin.Context) {
	c.JSON(http.StatusOK, h.catalogService.ListCategories(c.Request.Context()))
}

func (h *CatalogHandler) GetCategory(c *gin.Context) {
	category, err := h.catalogService.FindCategoryBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, category)
}

// ListCategoryProducts returns the products of a category. An unknown
// category slug yields an empty list, not a 404; the category page itself
// decides how to render the absence.
func (h *CatalogHandler) ListCategoryProducts(c *gin.Context) {
	products := h.catalogService.GetProductsByCategory(c.Request.Context(), c.Param("slug"))
	c.JSON(http.StatusOK, products)
}

func (h *CatalogHandler) ListProducts(c *gin.Context) {
	ctx := c.Request.Context()
	if c.Query("available") == "true" {
		c.JSON(http.StatusOK, h.catalogService.GetAvailableProducts(ctx))
		return
	}
	c.JSON(http.StatusOK, h.catalogService.ListProducts(ctx))
}

func (h *CatalogHandler) GetProduct(c *gin.Context) {
	product, err := h.catalogService.GetProductBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, product)
}

func (h *CatalogHandler) GetProductSchema(c *gin.Context) {
	product, err := h.catalogService.GetProductBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, h.schema.Product(*product))
}

// GetProductBreadcrumbs builds the Home > Category > Product trail for a
// product page. The last entry has no URL, marking the current page.
func (h *CatalogHandler) GetProductBreadcrumbs(c *gin.Context) {
	ctx := c.Request.Context()
	product, err := h.catalogService.GetProductBySlug(ctx, c.Param("slug"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	trail := []schemaorg.Breadcrumb{{Name: "Home", URL: "/"}}
	if category, err := h.catalogService.FindCategoryBySlug(ctx, product.Category); err == nil {
		trail = append(trail, schemaorg.Breadcrumb{Name: category.Name, URL: "/categories/" + category.Slug})
	}
	trail = append(trail, schemaorg.Breadcrumb{Name: product.Name})

	c.JSON(http.StatusOK, h.schema.Breadcrumbs(trail))
}

func (h *CatalogHandler) GetOrganizationSchema(c *gin.Context) {
	c.JSON(http.StatusOK, h.schema.Organization())
}

func (h *CatalogHandler) GetWebSiteSchema(c *gin.Context) {
	c.JSON(http.StatusOK, h.schema.WebSite())
}
