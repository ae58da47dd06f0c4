package dto

import (
	"time"

	"course-hub/backend/internal/model"
)

// UploadWarning 行级问题记录
// Record 为数据行在源文件中的 1 基序号；仅出现在响应中，不落库
type UploadWarning struct {
	Record     int      `json:"record"`
	CourseCode *string  `json:"course_code,omitempty"`
	Errors     []string `json:"errors"`
}

// CourseUploadSummary 开课文件上传结果摘要
type CourseUploadSummary struct {
	Message      string          `json:"message"`
	Department   string          `json:"department"`
	Semester     int             `json:"semester"`
	Year         int             `json:"year"`
	TotalCourses int             `json:"total_courses"`
	UploadedBy   string          `json:"uploaded_by"`
	Created      bool            `json:"created"`
	Warnings     []UploadWarning `json:"warnings"`
}

// FacultyUploadSummary 教员名册上传结果摘要
type FacultyUploadSummary struct {
	Message      string          `json:"message"`
	Department   string          `json:"department"`
	TotalRecords int             `json:"total_records"`
	UploadedBy   string          `json:"uploaded_by"`
	Created      bool            `json:"created"`
	Warnings     []UploadWarning `json:"warnings"`
}

// OfferedCoursesResponse 开课文档查询响应（附派生的课程总数）
type OfferedCoursesResponse struct {
	Department   string         `json:"department"`
	Semester     int            `json:"semester"`
	Year         int            `json:"year"`
	Courses      []model.Course `json:"courses"`
	TotalCourses int            `json:"totalCourses"`
	UploadedBy   string         `json:"uploaded_by"`
	Timestamp    time.Time      `json:"timestamp"`
}

// FacultyInformationResponse 教员名册查询响应
type FacultyInformationResponse struct {
	Department  string          `json:"department"`
	FacultyList []model.Faculty `json:"faculty_list"`
	UploadedBy  string          `json:"uploaded_by"`
	Timestamp   time.Time       `json:"timestamp"`
}
