package xlsx

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Kind 单元格值类型标签
type Kind int

const (
	KindAbsent Kind = iota // 缺失（空单元格 / NaN 类占位）
	KindString
	KindNumber
	KindBool
)

// CellValue 单元格值的带标签联合：absent | string | number | bool
// 由 Parser 统一产出，字段级校验函数按需做强类型转换
type CellValue struct {
	kind Kind
	str  string
	num  float64
	b    bool
}

// Absent 缺失值
func Absent() CellValue { return CellValue{kind: KindAbsent} }

// String 字符串值
func String(s string) CellValue { return CellValue{kind: KindString, str: s} }

// Number 数值
func Number(f float64) CellValue { return CellValue{kind: KindNumber, num: f} }

// Bool 布尔值
func Bool(b bool) CellValue { return CellValue{kind: KindBool, b: b} }

// classify 将 excelize 取出的原始字符串归类为 CellValue
// 空串与 NaN 类占位（nan / #N/A）视为缺失
func classify(raw string) CellValue {
	s := strings.TrimSpace(raw)
	if s == "" {
		return Absent()
	}
	switch strings.ToLower(s) {
	case "nan", "#n/a", "n/a":
		return Absent()
	}
	if s == "TRUE" {
		return Bool(true)
	}
	if s == "FALSE" {
		return Bool(false)
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil && !math.IsInf(f, 0) && !math.IsNaN(f) {
		return Number(f)
	}
	return String(s)
}

// Kind 返回类型标签
func (v CellValue) Kind() Kind { return v.kind }

// IsAbsent 是否缺失
func (v CellValue) IsAbsent() bool { return v.kind == KindAbsent }

// AsString 任意非缺失值转字符串（房间号等字段统一按字符串存储）
// 数值转换时去掉无意义的小数部分："301.0" → "301"
func (v CellValue) AsString() (string, bool) {
	switch v.kind {
	case KindString:
		return strings.TrimSpace(v.str), true
	case KindNumber:
		return strconv.FormatFloat(v.num, 'f', -1, 64), true
	case KindBool:
		if v.b {
			return "TRUE", true
		}
		return "FALSE", true
	default:
		return "", false
	}
}

// AsInt 转整数；缺失返回 (0, false, nil)
// 非整数数值或无法解析的字符串返回错误，由调用方决定整行丢弃
func (v CellValue) AsInt() (int, bool, error) {
	switch v.kind {
	case KindAbsent:
		return 0, false, nil
	case KindNumber:
		if v.num != math.Trunc(v.num) {
			return 0, false, fmt.Errorf("数值 %v 不是整数", v.num)
		}
		return int(v.num), true, nil
	case KindString:
		n, err := strconv.Atoi(strings.TrimSpace(v.str))
		if err != nil {
			return 0, false, fmt.Errorf("无法将 %q 解析为整数", v.str)
		}
		return n, true, nil
	default:
		return 0, false, fmt.Errorf("布尔值无法解析为整数")
	}
}
