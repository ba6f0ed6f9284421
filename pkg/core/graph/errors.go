package graph

import "fmt"

// MalformedInputError 非法输入错误（对外导出）
// 依赖对中出现空白或包含空白字符的步骤标识符时返回，并指明出错的依赖对
type MalformedInputError struct {
	Before string // 出错依赖对的前置侧
	After  string // 出错依赖对的后置侧
}

// Error 实现error接口
func (e *MalformedInputError) Error() string {
	return fmt.Sprintf("非法依赖对: (%q, %q)，步骤标识符必须为非空token", e.Before, e.After)
}
