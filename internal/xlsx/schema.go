package xlsx

import (
	"fmt"
	"regexp"
	"strings"
)

// SchemaError 必要列缺失（列级 all-or-nothing 校验，区别于行级容错）
type SchemaError struct {
	Missing []string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("上传文件缺少必要列: %s", strings.Join(e.Missing, ", "))
}

// Schema 表头规范化规则
type Schema struct {
	Canonical func(string) string // 表头规范化函数
	Rename    map[string]string   // 规范化后的别名 → 目标列名
	Drop      []string            // 规范化后丢弃的列
	Required  []string            // 必要列（缺任一列即整体失败）
	Optional  []string            // 可选列（缺失时补为缺失标记）
}

// Row 规范化后的单行数据
// Index 为数据行在源文件中的 1 基序号（表头行不计）
type Row struct {
	Index int
	Cells map[string]CellValue
}

// Get 按规范列名取值，列不存在时返回缺失标记
func (r Row) Get(name string) CellValue {
	if v, ok := r.Cells[name]; ok {
		return v
	}
	return Absent()
}

// Apply 对 Table 应用表头规范化并校验必要列
// 返回的行序与源文件一致；必要列缺失返回 *SchemaError
func (s *Schema) Apply(t *Table) ([]Row, error) {
	// 原始列号 → 规范列名（命中 Drop 的列直接排除）
	drop := make(map[string]bool, len(s.Drop))
	for _, d := range s.Drop {
		drop[d] = true
	}

	colName := make(map[int]string, len(t.Headers))
	present := make(map[string]bool, len(t.Headers))
	for i, h := range t.Headers {
		name := s.Canonical(h)
		if renamed, ok := s.Rename[name]; ok {
			name = renamed
		}
		if name == "" || drop[name] {
			continue
		}
		colName[i] = name
		present[name] = true
	}

	var missing []string
	for _, req := range s.Required {
		if !present[req] {
			missing = append(missing, req)
		}
	}
	if len(missing) > 0 {
		return nil, &SchemaError{Missing: missing}
	}

	rows := make([]Row, 0, len(t.Rows))
	for i, cells := range t.Rows {
		row := Row{Index: i + 1, Cells: make(map[string]CellValue, len(colName))}
		for col, name := range colName {
			row.Cells[name] = cells[col]
		}
		// 缺失的可选列补为缺失标记，下游无需区分「列不存在」与「值为空」
		for _, opt := range s.Optional {
			if !present[opt] {
				row.Cells[opt] = Absent()
			}
		}
		rows = append(rows, row)
	}

	return rows, nil
}

// SnakeCase 表头规范化：小写并将连续空白折叠为单个下划线
// "Seat Taken" → "seat_taken"
func SnakeCase(h string) string {
	return strings.Join(strings.Fields(strings.ToLower(strings.TrimSpace(h))), "_")
}

var (
	camelBoundary1 = regexp.MustCompile(`(.)([A-Z][a-z]+)`)
	camelBoundary2 = regexp.MustCompile(`([a-z0-9])([A-Z])`)
)

// CamelToSnake 表头规范化：CamelCase/camelCase 逐词转 snake_case
// "AcademicDepartmentShortName" → "academic_department_short_name"
func CamelToSnake(h string) string {
	s := camelBoundary1.ReplaceAllString(strings.TrimSpace(h), "${1}_${2}")
	s = camelBoundary2.ReplaceAllString(s, "${1}_${2}")
	return strings.ToLower(s)
}
