package api

import (
	"github.com/gin-gonic/gin"

	"github.com/pgy/step-scheduler/pkg/api/handler"
	"github.com/pgy/step-scheduler/pkg/api/middleware"
)

// SetupRouter 设置路由
func SetupRouter(version string) *gin.Engine {
	// 设置gin模式
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()

	// 全局中间件
	router.Use(middleware.Recovery())
	router.Use(middleware.Logger())
	router.Use(middleware.CORS())

	// 创建handlers
	scheduleHandler := handler.NewScheduleHandler()
	healthHandler := handler.NewHealthHandler(version)

	// 健康检查路由（不带前缀）
	router.GET("/health", healthHandler.Health)
	router.GET("/ready", healthHandler.Ready)

	// API v1 路由组
	v1 := router.Group("/api/v1")
	{
		v1.POST("/schedules", scheduleHandler.Create)
	}

	return router
}
