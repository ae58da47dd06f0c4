package service

import (
	"regexp"
	"strings"

	"course-hub/backend/internal/model"
)

// ── 排课时间段解析 ──────────────────────────────────────────
//
// 输入为紧凑的「星期 + 12小时制时间区间」字符串，例如：
//   "S 09:25 AM - 10:40 AM"
//   "MW 10:00 AM - 11:15 AM"
//   "TR 01:00 PM - 02:15 PM"
//
// 星期字母：S=周日 M=周一 T=周二 W=周三 R=周四 F=周五 A=周六
// 不匹配的输入一律返回 nil（降级为「未知」），绝不让格式问题阻断整行
// ─────────────────────────────────────────────────────────────

var timingPattern = regexp.MustCompile(`^([SMTWRFA]{1,2})\s+(\d{1,2}:\d{2}\s*[AP]M)\s*-\s*(\d{1,2}:\d{2}\s*[AP]M)$`)

// ParseTiming 解析排课时间段；输入为空或不匹配语法时返回 nil
func ParseTiming(raw string) *model.Timing {
	s := strings.TrimSpace(raw)
	if s == "" {
		return nil
	}

	m := timingPattern.FindStringSubmatch(s)
	if m == nil {
		return nil
	}

	return &model.Timing{
		Days:      m[1],
		StartTime: strings.ToUpper(m[2]),
		EndTime:   strings.ToUpper(m[3]),
	}
}
