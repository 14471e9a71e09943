package orderControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/HectorSandate/Hilosaki/apperrors"
	"github.com/HectorSandate/Hilosaki/middleware"
	"github.com/HectorSandate/Hilosaki/models"
	"github.com/HectorSandate/Hilosaki/repository"
	"github.com/HectorSandate/Hilosaki/services"
)

type UpdateOrderStatusRequest struct {
	Status         string `json:"status" binding:"required"`
	ExpectedStatus string `json:"expected_status" binding:"required"`
}

func respondError(c *gin.Context, err error) {
	status, body := apperrors.HTTPStatus(err)
	c.JSON(status, body)
}

// POST /orders/checkout
func Checkout(checkout *services.CheckoutCoordinator) gin.HandlerFunc {
	return func(c *gin.Context) {
		auth, ok := middleware.AuthFrom(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		var input services.CheckoutInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		order, err := checkout.Checkout(c.Request.Context(), auth, input)
		if err != nil {
			middleware.RecordOrderOperation("checkout", "failed")
			respondError(c, err)
			return
		}
		middleware.RecordOrderOperation("checkout", "success")
		c.JSON(http.StatusCreated, order)
	}
}

// GET /orders — the caller's own order history.
func GetMyOrders(orders repository.Orders) gin.HandlerFunc {
	return func(c *gin.Context) {
		auth, ok := middleware.AuthFrom(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		rows, err := orders.ListByUser(c.Request.Context(), auth.UserID)
		if err != nil {
			respondError(c, apperrors.Persistence("list orders", err))
			return
		}
		c.JSON(http.StatusOK, rows)
	}
}

// GET /orders/:orderID — owners and admins only.
func GetOrderByID(orders repository.Orders) gin.HandlerFunc {
	return func(c *gin.Context) {
		auth, ok := middleware.AuthFrom(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		order, err := orders.GetByID(c.Request.Context(), c.Param("orderID"))
		if err == repository.ErrNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
			return
		}
		if err != nil {
			respondError(c, apperrors.Persistence("load order", err))
			return
		}
		if order.UserID != auth.UserID && !auth.IsAdmin() {
			respondError(c, &apperrors.PermissionError{Action: "view this order"})
			return
		}
		c.JSON(http.StatusOK, order)
	}
}

// GET /admin/orders?status=pending
func GetAllOrders(orders repository.Orders) gin.HandlerFunc {
	return func(c *gin.Context) {
		status := models.OrderStatus(c.Query("status"))
		if status != "" && !status.Valid() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "unknown status filter"})
			return
		}

		rows, err := orders.ListAll(c.Request.Context(), status)
		if err != nil {
			respondError(c, apperrors.Persistence("list orders", err))
			return
		}
		c.JSON(http.StatusOK, rows)
	}
}

// PUT /admin/orders/:orderID/status
func UpdateOrderStatus(lifecycle *services.OrderLifecycleManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		auth, ok := middleware.AuthFrom(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		var req UpdateOrderStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		err := lifecycle.Transition(
			c.Request.Context(),
			auth,
			c.Param("orderID"),
			models.OrderStatus(req.Status),
			models.OrderStatus(req.ExpectedStatus),
		)
		if err != nil {
			middleware.RecordOrderOperation("transition", "failed")
			respondError(c, err)
			return
		}
		middleware.RecordOrderOperation("transition", req.Status)
		c.JSON(http.StatusOK, gin.H{"message": "Order status updated successfully"})
	}
}
