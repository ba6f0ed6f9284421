package graph

// Edge 依赖边（对外导出）
// 表示有序依赖对 (Before, After)：Before 必须严格先于 After 被调度
type Edge struct {
	Before string // 前置步骤ID
	After  string // 后置步骤ID
}

// Node 依赖图节点结构（对外导出）
type Node struct {
	ID       string   // 步骤ID
	InDegree int      // 入度（尚未满足的前置步骤数量）
	OutEdges []string // 出边（依赖该步骤的下游步骤ID列表）
}

// Graph 依赖图结构（对外导出）
// 顶点集是所有依赖对中出现过的步骤的并集
type Graph struct {
	Nodes map[string]*Node // 步骤ID -> 节点
}

// NewGraph 创建空依赖图（对外导出）
func NewGraph() *Graph {
	return &Graph{
		Nodes: make(map[string]*Node),
	}
}

// VertexCount 获取顶点总数
func (g *Graph) VertexCount() int {
	return len(g.Nodes)
}

// GetNode 获取指定节点
func (g *Graph) GetNode(id string) (*Node, bool) {
	node, ok := g.Nodes[id]
	return node, ok
}

// ensureNode 确保指定顶点存在于顶点集中（内部方法）
func (g *Graph) ensureNode(id string) *Node {
	node, ok := g.Nodes[id]
	if !ok {
		node = &Node{
			ID:       id,
			OutEdges: make([]string, 0),
		}
		g.Nodes[id] = node
	}
	return node
}
