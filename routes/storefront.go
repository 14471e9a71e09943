package routes

import (
	"github.com/gin-gonic/gin"

	productcontroller "github.com/HectorSandate/Hilosaki/controllers/product"
)

// SetupStorefrontRoutes registers the public, unauthenticated catalog views.
func SetupStorefrontRoutes(r *gin.Engine, d *Deps) {
	r.GET("/products", productcontroller.GetStorefront(d.Catalog, false))
	r.GET("/services", productcontroller.GetStorefront(d.Catalog, true))
	r.GET("/products/:id", productcontroller.GetProductByID(d.Catalog))
	r.GET("/categories", productcontroller.GetAllCategories(d.Catalog))
}
