package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/pgy/step-scheduler/pkg/api/dto"
	"github.com/pgy/step-scheduler/pkg/core/graph"
	"github.com/pgy/step-scheduler/pkg/core/scheduler"
)

// ScheduleHandler 调度API处理器
// 每个请求独立构建和消耗自己的图实例，无共享可变状态
type ScheduleHandler struct{}

// NewScheduleHandler 创建ScheduleHandler
func NewScheduleHandler() *ScheduleHandler {
	return &ScheduleHandler{}
}

// Create 创建调度
// POST /api/v1/schedules
func (h *ScheduleHandler) Create(c *gin.Context) {
	var req dto.ScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(400, fmt.Sprintf("请求体解析失败: %v", err)))
		return
	}

	edges := make([]graph.Edge, 0, len(req.Steps))
	for _, s := range req.Steps {
		edges = append(edges, graph.Edge{Before: s.Before, After: s.After})
	}

	g, err := graph.BuildWithVertices(req.Vertices, edges)
	if err != nil {
		var malformed *graph.MalformedInputError
		if errors.As(err, &malformed) {
			c.JSON(http.StatusBadRequest, dto.NewErrorResponse(400, malformed.Error()))
			return
		}
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse(500, fmt.Sprintf("构建依赖图失败: %v", err)))
		return
	}

	order, err := scheduler.Schedule(g)
	if err != nil {
		var cycle *scheduler.CycleError
		if errors.As(err, &cycle) {
			c.JSON(http.StatusUnprocessableEntity, dto.NewCycleErrorResponse(422, cycle.Error(), cycle.Unresolved))
			return
		}
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse(500, fmt.Sprintf("调度失败: %v", err)))
		return
	}

	c.JSON(http.StatusOK, dto.NewSuccessResponse(dto.ScheduleResult{
		ScheduleID: uuid.NewString(),
		Order:      order.Steps(),
		Rendered:   order.String(),
		StepCount:  order.Len(),
	}))
}
