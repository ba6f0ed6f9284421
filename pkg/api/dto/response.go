package dto

// APIResponse 通用API响应结构
type APIResponse[T any] struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    T      `json:"data,omitempty"`
}

// NewSuccessResponse 创建成功响应
func NewSuccessResponse[T any](data T) APIResponse[T] {
	return APIResponse[T]{
		Code:    0,
		Message: "success",
		Data:    data,
	}
}

// NewErrorResponse 创建错误响应
func NewErrorResponse(code int, message string) APIResponse[any] {
	return APIResponse[any]{
		Code:    code,
		Message: message,
	}
}

// NewCycleErrorResponse 创建循环依赖错误响应
// 携带从未被调度的顶点集合作为诊断信息
func NewCycleErrorResponse(code int, message string, unresolved []string) APIResponse[CycleDetail] {
	return APIResponse[CycleDetail]{
		Code:    code,
		Message: message,
		Data:    CycleDetail{Unresolved: unresolved},
	}
}

// CycleDetail 循环依赖诊断信息
type CycleDetail struct {
	Unresolved []string `json:"unresolved"`
}

// ScheduleResult 调度结果
type ScheduleResult struct {
	ScheduleID string   `json:"schedule_id"` // 本次调度的唯一ID
	Order      []string `json:"order"`       // 调度顺序的步骤ID列表
	Rendered   string   `json:"rendered"`    // 拼接后的展示字符串
	StepCount  int      `json:"step_count"`  // 顶点总数
}

// HealthResponse 健康检查响应
type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}
