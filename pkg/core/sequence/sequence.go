package sequence

import "strings"

// Schedule 调度结果序列（对外导出）
// 按调度顺序排列的步骤ID列表；一旦产出即视为不可变，访问方法均返回副本
type Schedule []string

// Steps 获取步骤ID序列副本
func (s Schedule) Steps() []string {
	out := make([]string, len(s))
	copy(out, s)
	return out
}

// String 将序列渲染为单个拼接字符串（用于展示）
func (s Schedule) String() string {
	return strings.Join(s, "")
}

// Join 使用指定分隔符渲染序列
func (s Schedule) Join(sep string) string {
	return strings.Join(s, sep)
}

// Len 序列长度
func (s Schedule) Len() int {
	return len(s)
}
