package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/HectorSandate/Hilosaki/apperrors"
	"github.com/HectorSandate/Hilosaki/services"
)

func respondError(c *gin.Context, err error) {
	status, body := apperrors.HTTPStatus(err)
	c.JSON(status, body)
}

// GET /products and GET /services — same listing, different kind.
func GetStorefront(catalog *services.ProductCatalogGuard, isService bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		products, err := catalog.ListStorefront(c.Request.Context(), isService)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, products)
	}
}

// GET /products/:id
func GetProductByID(catalog *services.ProductCatalogGuard) gin.HandlerFunc {
	return func(c *gin.Context) {
		product, err := catalog.GetProduct(c.Request.Context(), c.Param("id"))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, product)
	}
}

// GET /categories
func GetAllCategories(catalog *services.ProductCatalogGuard) gin.HandlerFunc {
	return func(c *gin.Context) {
		categories, err := catalog.ListCategories(c.Request.Context())
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, categories)
	}
}
