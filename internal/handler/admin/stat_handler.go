package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetServerStats 后台仪表盘统计数据
func (h *Handler) GetServerStats(c *gin.Context) {
	stats, err := h.service.GetServerStatsForAdmin()
	if err != nil {
		writeServiceError(c, err, "获取统计数据失败")
		return
	}
	c.JSON(http.StatusOK, stats)
}
