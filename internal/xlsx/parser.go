package xlsx

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/xuri/excelize/v2"
)

// ErrMalformedWorkbook 字节流不是合法的 Excel 工作簿
var ErrMalformedWorkbook = errors.New("无法解析 Excel 文件")

// Table 解析后的原始表格
// Headers 保留源文件表头原文；Rows 与 Headers 按列对齐，行序与源文件一致
type Table struct {
	Headers []string
	Rows    [][]CellValue
}

// Parse 将上传的字节流解析为 Table
// 取第一个工作表，首行为表头；单元格不做类型解释，仅归类为 CellValue
func Parse(data []byte) (*Table, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedWorkbook, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("%w: 工作簿中没有工作表", ErrMalformedWorkbook)
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedWorkbook, err)
	}

	table := &Table{}
	if len(rows) == 0 {
		return table, nil
	}

	table.Headers = rows[0]

	for _, raw := range rows[1:] {
		cells := make([]CellValue, len(table.Headers))
		for i := range table.Headers {
			if i < len(raw) {
				cells[i] = classify(raw[i])
			} else {
				// GetRows 会截断行尾空单元格，补齐为缺失
				cells[i] = Absent()
			}
		}
		table.Rows = append(table.Rows, cells)
	}

	return table, nil
}
