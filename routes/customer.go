package routes

import (
	"github.com/gin-gonic/gin"

	cartControllers "github.com/HectorSandate/Hilosaki/controllers/cart"
	orderControllers "github.com/HectorSandate/Hilosaki/controllers/order"
	"github.com/HectorSandate/Hilosaki/middleware"
)

// SetupCustomerRoutes registers the JWT-protected cart and order endpoints.
func SetupCustomerRoutes(r *gin.Engine, d *Deps) {
	authed := r.Group("/")
	authed.Use(middleware.RequireAuth(d.JWTSecret))
	{
		cart := authed.Group("/cart")
		{
			cart.GET("", cartControllers.GetCart(d.Cart))
			cart.DELETE("", cartControllers.ClearCart(d.Cart))
			cart.POST("/items", cartControllers.AddToCart(d.Cart))
			cart.PUT("/items/:item_id", cartControllers.SetQuantity(d.Cart))
			cart.DELETE("/items/:item_id", cartControllers.DeleteCartItem(d.Cart))

			// realtime cart badge; re-fetches the count snapshot per change
			cart.GET("/ws/count", d.CartCount.Handle)
		}

		orders := authed.Group("/orders")
		{
			orders.POST("/checkout", orderControllers.Checkout(d.Checkout))
			orders.GET("", orderControllers.GetMyOrders(d.Orders))
			orders.GET("/:orderID", orderControllers.GetOrderByID(d.Orders))
		}
	}
}
