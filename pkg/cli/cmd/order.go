package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/pgy/step-scheduler/pkg/cli/output"
	"github.com/pgy/step-scheduler/pkg/core/graph"
	"github.com/pgy/step-scheduler/pkg/core/scheduler"
	"github.com/pgy/step-scheduler/pkg/parser"
)

var (
	orderYAML      bool
	orderSeparator string
)

// orderCmd 计算调度顺序
var orderCmd = &cobra.Command{
	Use:   "order [file]",
	Short: "计算依赖约束的确定性调度顺序",
	Long: `从文件或标准输入读取依赖约束，输出唯一确定的调度顺序。

文本格式（默认）：每行两个以空白分隔的token表示 (前置, 后置) 依赖对，
单个token表示孤立步骤，#开头的行为注释。

YAML格式（--yaml）：
  vertices: [X]
  steps:
    - {before: C, after: A}`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		vertices, edges, err := readInput(args)
		if err != nil {
			output.Error("读取输入失败: %v", err)
			return err
		}

		g, err := graph.BuildWithVertices(vertices, edges)
		if err != nil {
			output.Error("构建依赖图失败: %v", err)
			return err
		}

		order, err := scheduler.Schedule(g)
		if err != nil {
			var cycle *scheduler.CycleError
			if errors.As(err, &cycle) {
				output.Error("%v", cycle)
				return err
			}
			output.Error("调度失败: %v", err)
			return err
		}

		switch {
		case outputJSON:
			return output.PrintJSON(map[string]interface{}{
				"order":      order.Steps(),
				"rendered":   order.String(),
				"step_count": order.Len(),
			})
		case outputTable:
			table := output.NewTable([]string{"POSITION", "STEP"})
			for i, id := range order.Steps() {
				table.AddRow([]string{strconv.Itoa(i + 1), id})
			}
			table.Render()
			return nil
		default:
			fmt.Println(order.Join(orderSeparator))
			return nil
		}
	},
}

// readInput 从文件或标准输入读取依赖约束
func readInput(args []string) ([]string, []graph.Edge, error) {
	var r io.Reader = os.Stdin
	if len(args) == 1 {
		f, err := os.Open(args[0])
		if err != nil {
			return nil, nil, err
		}
		defer f.Close()
		r = f
	}

	if orderYAML {
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, nil, err
		}
		return parser.ParseYAML(data)
	}
	return parser.ParsePairs(r)
}

func init() {
	orderCmd.Flags().BoolVar(&orderYAML, "yaml", false, "输入为YAML格式")
	orderCmd.Flags().StringVar(&orderSeparator, "separator", "", "输出步骤之间的分隔符")
}
