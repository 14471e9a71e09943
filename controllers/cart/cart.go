package cartControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/HectorSandate/Hilosaki/apperrors"
	"github.com/HectorSandate/Hilosaki/middleware"
	"github.com/HectorSandate/Hilosaki/services"
)

type AddItemInput struct {
	ProductID string `json:"product_id" binding:"required"`
	Quantity  int    `json:"quantity" binding:"required,min=1"`
}

type SetQuantityInput struct {
	Quantity int `json:"quantity"`
}

func respondError(c *gin.Context, err error) {
	status, body := apperrors.HTTPStatus(err)
	c.JSON(status, body)
}

// POST /cart/items
func AddToCart(cart *services.CartStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		auth, ok := middleware.AuthFrom(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		var input AddItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		if err := cart.AddItem(c.Request.Context(), auth.UserID, input.ProductID, input.Quantity); err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, gin.H{"message": "Item added to cart"})
	}
}

// PUT /cart/items/:item_id
func SetQuantity(cart *services.CartStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		auth, ok := middleware.AuthFrom(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		var input SetQuantityInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		if err := cart.SetQuantity(c.Request.Context(), auth.UserID, c.Param("item_id"), input.Quantity); err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Cart updated"})
	}
}

// DELETE /cart/items/:item_id
func DeleteCartItem(cart *services.CartStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		auth, ok := middleware.AuthFrom(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		if err := cart.RemoveItem(c.Request.Context(), auth.UserID, c.Param("item_id")); err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Cart item deleted"})
	}
}

// GET /cart
func GetCart(cart *services.CartStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		auth, ok := middleware.AuthFrom(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		items, err := cart.ListItems(c.Request.Context(), auth.UserID)
		if err != nil {
			respondError(c, err)
			return
		}
		total, err := cart.Total(c.Request.Context(), auth.UserID)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"items": items, "total": total})
	}
}

// DELETE /cart
func ClearCart(cart *services.CartStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		auth, ok := middleware.AuthFrom(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		if err := cart.Clear(c.Request.Context(), auth.UserID); err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Cart cleared"})
	}
}
