package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pgy/step-scheduler/pkg/api/dto"
)

// HealthHandler 健康检查处理器
type HealthHandler struct {
	version string
}

// NewHealthHandler 创建HealthHandler
func NewHealthHandler(version string) *HealthHandler {
	return &HealthHandler{version: version}
}

// Health 健康检查
// GET /health
func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, dto.NewSuccessResponse(dto.HealthResponse{
		Status:  "ok",
		Version: h.version,
	}))
}

// Ready 就绪检查
// GET /ready
// 调度器是纯内存计算，没有外部依赖，服务启动即就绪
func (h *HealthHandler) Ready(c *gin.Context) {
	c.JSON(http.StatusOK, dto.NewSuccessResponse(dto.HealthResponse{
		Status:  "ready",
		Version: h.version,
	}))
}
