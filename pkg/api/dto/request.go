package dto

// StepPair 依赖对（前置步骤必须先于后置步骤被调度）
type StepPair struct {
	Before string `json:"before"`
	After  string `json:"after"`
}

// ScheduleRequest 创建调度请求
// Steps为空时返回空调度序列（零顶点的图不是错误）
type ScheduleRequest struct {
	Vertices []string   `json:"vertices" binding:"omitempty"`
	Steps    []StepPair `json:"steps" binding:"omitempty"`
}
