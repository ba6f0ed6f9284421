package parser

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/pgy/step-scheduler/pkg/core/graph"
)

// ParsePairs 从纯文本解析依赖对（对外导出）
// 每行一条记录：两个以空白分隔的token表示一个 (前置, 后置) 依赖对，
// 单个token表示一个没有任何边的孤立步骤
// 空行和以#开头的注释行会被跳过
// 返回孤立顶点列表与依赖对列表
func ParsePairs(r io.Reader) ([]string, []graph.Edge, error) {
	var vertices []string
	var edges []graph.Edge

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Fields(line)
		switch len(fields) {
		case 1:
			vertices = append(vertices, fields[0])
		case 2:
			edges = append(edges, graph.Edge{Before: fields[0], After: fields[1]})
		default:
			return nil, nil, fmt.Errorf("第%d行格式错误: 期望1或2个字段，实际%d个", lineNo, len(fields))
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, nil, fmt.Errorf("读取输入失败: %w", err)
	}

	return vertices, edges, nil
}

// YAMLInput YAML格式输入结构（对外导出）
type YAMLInput struct {
	Vertices []string   `yaml:"vertices,omitempty"` // 孤立步骤列表（可省略）
	Steps    []YAMLStep `yaml:"steps"`              // 依赖对列表
}

// YAMLStep YAML格式的依赖对
type YAMLStep struct {
	Before string `yaml:"before"`
	After  string `yaml:"after"`
}

// ParseYAML 从YAML文档解析依赖对（对外导出）
// 文档格式:
//
//	vertices: [X]
//	steps:
//	  - {before: C, after: A}
func ParseYAML(data []byte) ([]string, []graph.Edge, error) {
	var input YAMLInput
	if err := yaml.Unmarshal(data, &input); err != nil {
		return nil, nil, fmt.Errorf("解析YAML失败: %w", err)
	}

	edges := make([]graph.Edge, 0, len(input.Steps))
	for _, s := range input.Steps {
		edges = append(edges, graph.Edge{Before: s.Before, After: s.After})
	}

	return input.Vertices, edges, nil
}
