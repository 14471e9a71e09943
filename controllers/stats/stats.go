package statsControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/HectorSandate/Hilosaki/apperrors"
	"github.com/HectorSandate/Hilosaki/middleware"
	"github.com/HectorSandate/Hilosaki/services"
)

// GET /admin/stats
func GetStats(stats *services.StatsAggregator) gin.HandlerFunc {
	return func(c *gin.Context) {
		auth, ok := middleware.AuthFrom(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		overview, err := stats.Overview(c.Request.Context(), auth)
		if err != nil {
			status, body := apperrors.HTTPStatus(err)
			c.JSON(status, body)
			return
		}
		c.JSON(http.StatusOK, overview)
	}
}
