package xlsx

import "testing"

// ── classify 测试 ──

func TestClassify_Absent(t *testing.T) {
	cases := []string{"", "   ", "nan", "NaN", "#N/A", "n/a", "N/A"}
	for _, raw := range cases {
		v := classify(raw)
		if !v.IsAbsent() {
			t.Errorf("classify(%q) 应归类为缺失，实际 Kind=%v", raw, v.Kind())
		}
	}
}

func TestClassify_String(t *testing.T) {
	v := classify("CSE370")
	if v.Kind() != KindString {
		t.Fatalf("期望 KindString，实际 %v", v.Kind())
	}
	s, ok := v.AsString()
	if !ok || s != "CSE370" {
		t.Errorf("期望 AsString=CSE370，实际 %q", s)
	}
}

func TestClassify_Number(t *testing.T) {
	v := classify("35")
	if v.Kind() != KindNumber {
		t.Fatalf("期望 KindNumber，实际 %v", v.Kind())
	}

	v = classify("35.5")
	if v.Kind() != KindNumber {
		t.Fatalf("期望 KindNumber，实际 %v", v.Kind())
	}
}

func TestClassify_Bool(t *testing.T) {
	if classify("TRUE").Kind() != KindBool {
		t.Error("TRUE 应归类为布尔")
	}
	if classify("FALSE").Kind() != KindBool {
		t.Error("FALSE 应归类为布尔")
	}
	// 仅识别大写形式，小写按普通字符串处理
	if classify("true").Kind() != KindString {
		t.Error("true 应归类为字符串")
	}
}

// ── AsString 测试 ──

func TestAsString_NumberTrimsFraction(t *testing.T) {
	// 房间号 "301" 在 Excel 中常以数值存储
	s, ok := Number(301).AsString()
	if !ok || s != "301" {
		t.Errorf("期望 301，实际 %q", s)
	}

	s, ok = Number(12.5).AsString()
	if !ok || s != "12.5" {
		t.Errorf("期望 12.5，实际 %q", s)
	}
}

func TestAsString_Absent(t *testing.T) {
	if _, ok := Absent().AsString(); ok {
		t.Error("缺失值 AsString 应返回 ok=false")
	}
}

// ── AsInt 测试 ──

func TestAsInt(t *testing.T) {
	n, ok, err := Number(30).AsInt()
	if err != nil || !ok || n != 30 {
		t.Errorf("Number(30).AsInt: n=%d ok=%v err=%v", n, ok, err)
	}

	n, ok, err = String(" 25 ").AsInt()
	if err != nil || !ok || n != 25 {
		t.Errorf("String(\" 25 \").AsInt: n=%d ok=%v err=%v", n, ok, err)
	}

	// 缺失不是错误，由调用方决定字段留空
	n, ok, err = Absent().AsInt()
	if err != nil || ok || n != 0 {
		t.Errorf("Absent().AsInt: n=%d ok=%v err=%v", n, ok, err)
	}

	// 非整数数值与无法解析的字符串是构建错误
	if _, _, err := Number(30.5).AsInt(); err == nil {
		t.Error("非整数数值应返回错误")
	}
	if _, _, err := String("abc").AsInt(); err == nil {
		t.Error("无法解析的字符串应返回错误")
	}
	if _, _, err := Bool(true).AsInt(); err == nil {
		t.Error("布尔值应返回错误")
	}
}
