package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/HectorSandate/Hilosaki/middleware"
	"github.com/HectorSandate/Hilosaki/models"
	"github.com/HectorSandate/Hilosaki/services"
)

type VisibilityInput struct {
	Visibility string `json:"visibility" binding:"required"`
}

type CategoryInput struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

// POST /admin/products
func CreateProduct(catalog *services.ProductCatalogGuard) gin.HandlerFunc {
	return func(c *gin.Context) {
		auth, _ := middleware.AuthFrom(c)

		var input services.ProductInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		product, err := catalog.CreateProduct(c.Request.Context(), auth, input)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, product)
	}
}

// PUT /admin/products/:id
func UpdateProduct(catalog *services.ProductCatalogGuard) gin.HandlerFunc {
	return func(c *gin.Context) {
		auth, _ := middleware.AuthFrom(c)

		var input services.ProductInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		product, err := catalog.UpdateProduct(c.Request.Context(), auth, c.Param("id"), input)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, product)
	}
}

// GET /admin/products — disabled rows included.
func GetProducts(catalog *services.ProductCatalogGuard) gin.HandlerFunc {
	return func(c *gin.Context) {
		auth, _ := middleware.AuthFrom(c)

		products, err := catalog.ListAdmin(c.Request.Context(), auth)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, products)
	}
}

// PUT /admin/products/:id/visibility — reversible enable/disable.
func SetProductVisibility(catalog *services.ProductCatalogGuard) gin.HandlerFunc {
	return func(c *gin.Context) {
		auth, _ := middleware.AuthFrom(c)

		var input VisibilityInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		err := catalog.SetVisibility(c.Request.Context(), auth, c.Param("id"), models.Visibility(input.Visibility))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Product visibility updated"})
	}
}

// DELETE /admin/products/:id — irreversible removal of the row.
func DeleteProduct(catalog *services.ProductCatalogGuard) gin.HandlerFunc {
	return func(c *gin.Context) {
		auth, _ := middleware.AuthFrom(c)

		if err := catalog.HardDelete(c.Request.Context(), auth, c.Param("id")); err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Product deleted permanently"})
	}
}

// POST /admin/categories
func CreateCategory(catalog *services.ProductCatalogGuard) gin.HandlerFunc {
	return func(c *gin.Context) {
		auth, _ := middleware.AuthFrom(c)

		var input CategoryInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		category, err := catalog.CreateCategory(c.Request.Context(), auth, input.Name, input.Description)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, category)
	}
}

// DELETE /admin/categories/:id
func DeleteCategory(catalog *services.ProductCatalogGuard) gin.HandlerFunc {
	return func(c *gin.Context) {
		auth, _ := middleware.AuthFrom(c)

		if err := catalog.DeleteCategory(c.Request.Context(), auth, c.Param("id")); err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Category deleted"})
	}
}
