package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/HectorSandate/Hilosaki/realtime"
	"github.com/HectorSandate/Hilosaki/repository"
	"github.com/HectorSandate/Hilosaki/services"
)

// Deps bundles everything the route groups wire handlers to.
type Deps struct {
	JWTSecret string

	Cart      *services.CartStore
	Checkout  *services.CheckoutCoordinator
	Lifecycle *services.OrderLifecycleManager
	Catalog   *services.ProductCatalogGuard
	Stats     *services.StatsAggregator
	Orders    repository.Orders

	Hub       *realtime.Hub
	CartCount *realtime.CartCountSocket
}

// SetupRoutes is the single entry-point that wires up the storefront,
// customer, and admin route groups.
func SetupRoutes(r *gin.Engine, d *Deps) {
	SetupStorefrontRoutes(r, d)
	SetupCustomerRoutes(r, d)
	SetupAdminRoutes(r, d)
}
