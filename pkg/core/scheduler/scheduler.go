package scheduler

import (
	"sort"

	"github.com/pgy/step-scheduler/pkg/core/graph"
	"github.com/pgy/step-scheduler/pkg/core/sequence"
)

// Schedule 执行确定性拓扑调度（对外导出）
// 使用带字典序tie-break的Kahn算法：就绪集合中同时存在多个可调度步骤时，
// 永远先取出步骤ID字典序最小的那个，因此对同一输入的结果是唯一且可复现的
// 调度过程会消耗图中的入度计数，调用方不应复用传入的图实例
// 成功时返回长度等于顶点总数的完整调度序列；
// 图中存在循环依赖时返回 *CycleError，不输出任何部分结果
// 复杂度: O(V log V + E)
func Schedule(g *graph.Graph) (sequence.Schedule, error) {
	ready := NewReadySet()

	// 1. 所有入度为0的顶点进入就绪集合
	for id, node := range g.Nodes {
		if node.InDegree == 0 {
			ready.Push(id)
		}
	}

	order := make(sequence.Schedule, 0, g.VertexCount())

	// 2. 每次取出字典序最小的就绪步骤，并解除其下游步骤的前置依赖
	for {
		id, ok := ready.Pop()
		if !ok {
			break
		}
		order = append(order, id)

		node := g.Nodes[id]
		for _, childID := range node.OutEdges {
			child := g.Nodes[childID]
			child.InDegree--
			if child.InDegree == 0 {
				ready.Push(childID)
			}
		}
	}

	// 3. 就绪集合耗尽后仍有未调度的顶点，说明剩余顶点构成一个或多个循环
	if order.Len() < g.VertexCount() {
		return nil, newCycleError(g, order)
	}

	return order, nil
}

// newCycleError 收集从未被调度的顶点集合（内部方法）
// 结果按字典序排列，保证同一输入产生完全相同的错误信息
func newCycleError(g *graph.Graph, scheduled sequence.Schedule) *CycleError {
	done := make(map[string]struct{}, scheduled.Len())
	for _, id := range scheduled {
		done[id] = struct{}{}
	}

	unresolved := make([]string, 0, g.VertexCount()-scheduled.Len())
	for id := range g.Nodes {
		if _, ok := done[id]; !ok {
			unresolved = append(unresolved, id)
		}
	}
	sort.Strings(unresolved)

	return &CycleError{Unresolved: unresolved}
}
