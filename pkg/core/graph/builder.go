package graph

import "strings"

// Build 从依赖对序列构建依赖图（对外导出）
// edges: (前置, 后置) 依赖对列表
// 重复的依赖对会被合并，入度不重复计数；空列表返回零顶点的空图
// 任一依赖对包含非法标识符时返回 *MalformedInputError
func Build(edges []Edge) (*Graph, error) {
	return BuildWithVertices(nil, edges)
}

// BuildWithVertices 从显式顶点列表与依赖对序列构建依赖图（对外导出）
// vertices: 额外命名的顶点（可为nil），用于声明没有任何边的孤立步骤
// edges: (前置, 后置) 依赖对列表
func BuildWithVertices(vertices []string, edges []Edge) (*Graph, error) {
	g := NewGraph()

	for _, id := range vertices {
		if !validToken(id) {
			return nil, &MalformedInputError{Before: id, After: id}
		}
		g.ensureNode(id)
	}

	seen := make(map[Edge]struct{}, len(edges))
	for _, e := range edges {
		if !validToken(e.Before) || !validToken(e.After) {
			return nil, &MalformedInputError{Before: e.Before, After: e.After}
		}

		// 依赖对两侧都进入顶点集，即使该步骤没有其他边
		before := g.ensureNode(e.Before)
		after := g.ensureNode(e.After)

		// 重复的依赖对幂等，跳过
		if _, dup := seen[e]; dup {
			continue
		}
		seen[e] = struct{}{}

		before.OutEdges = append(before.OutEdges, e.After)
		after.InDegree++
	}

	return g, nil
}

// validToken 校验步骤标识符是否为合法token（非空且不含空白字符）
func validToken(id string) bool {
	if id == "" {
		return false
	}
	return !strings.ContainsAny(id, " \t\r\n")
}
