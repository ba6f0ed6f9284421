package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var (
	// 全局变量
	outputJSON  bool
	outputTable bool
)

// rootCmd 根命令
var rootCmd = &cobra.Command{
	Use:   "step-scheduler",
	Short: "Step Scheduler CLI - 确定性依赖调度命令行工具",
	Long: `Step Scheduler CLI 是一个依赖调度命令行工具。

给定一组"A必须先于B"的依赖约束，计算唯一确定的全序：
既满足所有约束，又在多个步骤同时可调度时永远优先选择字典序最小的那个。

使用示例：
  # 从文件计算调度顺序（每行: 前置步骤 后置步骤）
  step-scheduler order deps.txt

  # 从标准输入读取YAML格式的依赖列表
  step-scheduler order --yaml < deps.yaml

  # 启动HTTP API服务
  step-scheduler server start --port 8080`,
}

// Execute 执行根命令
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	// 全局参数
	rootCmd.PersistentFlags().BoolVarP(&outputJSON, "json", "j", false, "使用JSON格式输出")
	rootCmd.PersistentFlags().BoolVarP(&outputTable, "table", "t", false, "使用表格格式输出")

	// 添加子命令
	rootCmd.AddCommand(orderCmd)
	rootCmd.AddCommand(serverCmd)
	rootCmd.AddCommand(versionCmd)
}
