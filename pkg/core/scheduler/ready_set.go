package scheduler

import (
	"github.com/emirpasic/gods/trees/binaryheap"
	"github.com/emirpasic/gods/utils"
)

// ReadySet 就绪集合（对外导出）
// 保存所有前置步骤已全部满足、但尚未被调度的步骤
// 内部使用按步骤ID排序的二叉堆，每次取出的都是字典序最小的成员
// 注意：不能用普通队列代替，按入队顺序出队无法保证字典序tie-break
type ReadySet struct {
	heap *binaryheap.Heap
}

// NewReadySet 创建空就绪集合（对外导出）
func NewReadySet() *ReadySet {
	return &ReadySet{
		heap: binaryheap.NewWith(utils.StringComparator),
	}
}

// Push 加入一个就绪步骤
// 每个步骤在入度首次降为0时恰好加入一次
func (rs *ReadySet) Push(id string) {
	rs.heap.Push(id)
}

// Pop 取出字典序最小的就绪步骤
// 返回步骤ID和集合是否非空
func (rs *ReadySet) Pop() (string, bool) {
	v, ok := rs.heap.Pop()
	if !ok {
		return "", false
	}
	return v.(string), true
}

// Peek 查看字典序最小的就绪步骤（不取出）
func (rs *ReadySet) Peek() (string, bool) {
	v, ok := rs.heap.Peek()
	if !ok {
		return "", false
	}
	return v.(string), true
}

// Len 当前就绪步骤数量
func (rs *ReadySet) Len() int {
	return rs.heap.Size()
}

// Empty 集合是否为空
func (rs *ReadySet) Empty() bool {
	return rs.heap.Empty()
}
