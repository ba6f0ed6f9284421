package output

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
)

// Table 简单表格输出
type Table struct {
	headers []string
	rows    [][]string
	widths  []int
}

// NewTable 创建表格
func NewTable(headers []string) *Table {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = len(h)
	}
	return &Table{
		headers: headers,
		widths:  widths,
	}
}

// AddRow 添加行
func (t *Table) AddRow(row []string) {
	// 更新列宽
	for i, cell := range row {
		if i < len(t.widths) && len(cell) > t.widths[i] {
			t.widths[i] = len(cell)
		}
	}
	t.rows = append(t.rows, row)
}

// Render 渲染表格到标准输出
func (t *Table) Render() {
	t.RenderTo(os.Stdout)
}

// RenderTo 渲染表格到指定Writer
func (t *Table) RenderTo(w io.Writer) {
	// 表头
	headerColor := color.New(color.FgCyan, color.Bold)
	for i, h := range t.headers {
		headerColor.Fprintf(w, "%-*s  ", t.widths[i], h)
	}
	fmt.Fprintln(w)

	// 分隔线
	for i := range t.headers {
		fmt.Fprint(w, strings.Repeat("-", t.widths[i]), "  ")
	}
	fmt.Fprintln(w)

	// 数据行
	for _, row := range t.rows {
		for i, cell := range row {
			if i < len(t.widths) {
				fmt.Fprintf(w, "%-*s  ", t.widths[i], cell)
			}
		}
		fmt.Fprintln(w)
	}
}
