package sequence

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSchedule_String(t *testing.T) {
	s := Schedule{"C", "A", "B", "D", "F", "E"}
	assert.Equal(t, "CABDFE", s.String())
}

func TestSchedule_Join(t *testing.T) {
	s := Schedule{"build", "test", "deploy"}
	assert.Equal(t, "build -> test -> deploy", s.Join(" -> "))
}

func TestSchedule_Empty(t *testing.T) {
	var s Schedule
	assert.Equal(t, 0, s.Len())
	assert.Equal(t, "", s.String())
	assert.Empty(t, s.Steps())
}

func TestSchedule_StepsReturnsCopy(t *testing.T) {
	// 序列一旦产出即不可变，访问方法返回副本
	s := Schedule{"A", "B"}
	steps := s.Steps()
	steps[0] = "Z"

	assert.Equal(t, "AB", s.String())
}
