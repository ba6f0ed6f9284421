package scheduler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pgy/step-scheduler/pkg/core/graph"
)

// exampleEdges 七步示例图: C→A, C→F, A→B, A→D, B→E, D→E, F→E
func exampleEdges() []graph.Edge {
	return []graph.Edge{
		{Before: "C", After: "A"},
		{Before: "C", After: "F"},
		{Before: "A", After: "B"},
		{Before: "A", After: "D"},
		{Before: "B", After: "E"},
		{Before: "D", After: "E"},
		{Before: "F", After: "E"},
	}
}

func TestSchedule_Example(t *testing.T) {
	g, err := graph.Build(exampleEdges())
	require.NoError(t, err)

	order, err := Schedule(g)
	require.NoError(t, err)

	assert.Equal(t, []string{"C", "A", "B", "D", "F", "E"}, order.Steps())
	assert.Equal(t, "CABDFE", order.String())
}

func TestSchedule_Validity(t *testing.T) {
	// 每条依赖边 (A, B) 中，A在结果中的位置必须严格小于B
	edges := exampleEdges()
	g, err := graph.Build(edges)
	require.NoError(t, err)

	order, err := Schedule(g)
	require.NoError(t, err)

	position := make(map[string]int, order.Len())
	for i, id := range order.Steps() {
		position[id] = i
	}
	for _, e := range edges {
		assert.Less(t, position[e.Before], position[e.After],
			"边 (%s, %s) 的顺序被违反", e.Before, e.After)
	}
}

func TestSchedule_Completeness(t *testing.T) {
	// 无环输入的输出长度等于顶点总数
	g, err := graph.Build(exampleEdges())
	require.NoError(t, err)
	total := g.VertexCount()

	order, err := Schedule(g)
	require.NoError(t, err)
	assert.Equal(t, total, order.Len())
}

func TestSchedule_LexicographicTieBreak(t *testing.T) {
	// 同时就绪的步骤中必须先调度字典序最小者，
	// 而不是按发现顺序或入队顺序
	g, err := graph.BuildWithVertices([]string{"b"}, []graph.Edge{
		{Before: "d", After: "a"},
		{Before: "d", After: "c"},
	})
	require.NoError(t, err)

	order, err := Schedule(g)
	require.NoError(t, err)

	// 初始就绪集合为 {b, d}：b先出；d解锁a和c之后，a先于c
	assert.Equal(t, "bdac", order.String())
}

func TestSchedule_LateSmallStep(t *testing.T) {
	// 后解锁的步骤如果字典序更小，必须插队到已就绪的大步骤之前
	g, err := graph.Build([]graph.Edge{
		{Before: "b", After: "a"},
		{Before: "b", After: "z"},
		{Before: "y", After: "z"},
	})
	require.NoError(t, err)

	order, err := Schedule(g)
	require.NoError(t, err)

	// 初始就绪 {b, y}：b出后a就绪，a排在y之前
	assert.Equal(t, "bayz", order.String())
}

func TestSchedule_Deterministic(t *testing.T) {
	// 相同输入多次调度产生完全相同的结果
	var first string
	for i := 0; i < 10; i++ {
		g, err := graph.Build(exampleEdges())
		require.NoError(t, err)

		order, err := Schedule(g)
		require.NoError(t, err)

		if i == 0 {
			first = order.String()
			continue
		}
		assert.Equal(t, first, order.String())
	}
}

func TestSchedule_DuplicateEdges(t *testing.T) {
	// 重复边列表与去重后的列表产生相同的调度
	edges := append(exampleEdges(), exampleEdges()...)
	g, err := graph.Build(edges)
	require.NoError(t, err)

	order, err := Schedule(g)
	require.NoError(t, err)
	assert.Equal(t, "CABDFE", order.String())
}

func TestSchedule_IsolatedVertex(t *testing.T) {
	g, err := graph.BuildWithVertices([]string{"X"}, nil)
	require.NoError(t, err)

	order, err := Schedule(g)
	require.NoError(t, err)
	assert.Equal(t, []string{"X"}, order.Steps())
}

func TestSchedule_EmptyGraph(t *testing.T) {
	g, err := graph.Build(nil)
	require.NoError(t, err)

	order, err := Schedule(g)
	require.NoError(t, err)
	assert.Equal(t, 0, order.Len())
	assert.Equal(t, "", order.String())
}

func TestSchedule_Cycle(t *testing.T) {
	g, err := graph.Build([]graph.Edge{
		{Before: "A", After: "B"},
		{Before: "B", After: "A"},
	})
	require.NoError(t, err)

	order, err := Schedule(g)
	assert.Nil(t, order)

	var cycle *CycleError
	require.ErrorAs(t, err, &cycle)
	assert.Equal(t, []string{"A", "B"}, cycle.Unresolved)
}

func TestSchedule_CycleWithSchedulablePrefix(t *testing.T) {
	// 部分顶点可调度但图中存在循环时，不能输出部分结果
	g, err := graph.Build([]graph.Edge{
		{Before: "A", After: "B"},
		{Before: "C", After: "D"},
		{Before: "D", After: "C"},
	})
	require.NoError(t, err)

	order, err := Schedule(g)
	assert.Nil(t, order)

	var cycle *CycleError
	require.ErrorAs(t, err, &cycle)
	// 诊断信息只包含从未被调度的顶点，按字典序排列
	assert.Equal(t, []string{"C", "D"}, cycle.Unresolved)
}

func TestSchedule_SelfLoop(t *testing.T) {
	g, err := graph.Build([]graph.Edge{{Before: "A", After: "A"}})
	require.NoError(t, err)

	order, err := Schedule(g)
	assert.Nil(t, order)

	var cycle *CycleError
	require.ErrorAs(t, err, &cycle)
	assert.Equal(t, []string{"A"}, cycle.Unresolved)
}

func TestReadySet_PopsLexicographicMinimum(t *testing.T) {
	rs := NewReadySet()
	for _, id := range []string{"delta", "alpha", "charlie", "bravo"} {
		rs.Push(id)
	}

	assert.Equal(t, 4, rs.Len())

	min, ok := rs.Peek()
	require.True(t, ok)
	assert.Equal(t, "alpha", min)

	var popped []string
	for !rs.Empty() {
		id, ok := rs.Pop()
		require.True(t, ok)
		popped = append(popped, id)
	}
	assert.Equal(t, []string{"alpha", "bravo", "charlie", "delta"}, popped)

	_, ok = rs.Pop()
	assert.False(t, ok)
}

func TestReadySet_InterleavedPushPop(t *testing.T) {
	// Pop之后加入更小的成员，下一次Pop必须取到它
	rs := NewReadySet()
	rs.Push("m")
	rs.Push("x")

	id, _ := rs.Pop()
	assert.Equal(t, "m", id)

	rs.Push("a")
	id, _ = rs.Pop()
	assert.Equal(t, "a", id)

	id, _ = rs.Pop()
	assert.Equal(t, "x", id)
}
