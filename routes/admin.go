package routes

import (
	"github.com/gin-gonic/gin"

	orderControllers "github.com/HectorSandate/Hilosaki/controllers/order"
	productcontroller "github.com/HectorSandate/Hilosaki/controllers/product"
	statsControllers "github.com/HectorSandate/Hilosaki/controllers/stats"
	"github.com/HectorSandate/Hilosaki/middleware"
)

// SetupAdminRoutes registers all "/admin/*" endpoints. Requires an admin
// session.
func SetupAdminRoutes(r *gin.Engine, d *Deps) {
	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.RequireAuth(d.JWTSecret), middleware.RequireAdmin)
	{
		productAdmin := adminGroup.Group("/products")
		{
			productAdmin.POST("", productcontroller.CreateProduct(d.Catalog))
			productAdmin.PUT("/:id", productcontroller.UpdateProduct(d.Catalog))
			productAdmin.GET("", productcontroller.GetProducts(d.Catalog))
			productAdmin.PUT("/:id/visibility", productcontroller.SetProductVisibility(d.Catalog))
			productAdmin.DELETE("/:id", productcontroller.DeleteProduct(d.Catalog))
		}

		categoryAdmin := adminGroup.Group("/categories")
		{
			categoryAdmin.POST("", productcontroller.CreateCategory(d.Catalog))
			categoryAdmin.DELETE("/:id", productcontroller.DeleteCategory(d.Catalog))
		}

		orderAdmin := adminGroup.Group("/orders")
		{
			orderAdmin.GET("", orderControllers.GetAllOrders(d.Orders))
			orderAdmin.PUT("/:orderID/status", orderControllers.UpdateOrderStatus(d.Lifecycle))
			orderAdmin.GET("/export-excel", orderControllers.ExportOrdersToExcel(d.Orders))

			// websocket feed of new orders and status changes
			orderAdmin.GET("/ws", d.Hub.HandleOrderFeed)
		}

		adminGroup.GET("/stats", statsControllers.GetStats(d.Stats))
	}
}
