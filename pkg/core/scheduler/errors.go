package scheduler

import (
	"fmt"
	"strings"
)

// CycleError 循环依赖错误（对外导出）
// 依赖图无法被完全调度时返回，携带从未被调度的顶点集合作为诊断信息
// 该失败路径不输出任何部分调度结果
type CycleError struct {
	Unresolved []string // 从未被调度的顶点ID（字典序排列）
}

// Error 实现error接口
func (e *CycleError) Error() string {
	return fmt.Sprintf("检测到循环依赖，无法完成调度，未解析的步骤: [%s]", strings.Join(e.Unresolved, ", "))
}
