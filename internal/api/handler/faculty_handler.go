package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"course-hub/backend/internal/service"
	"course-hub/backend/internal/xlsx"
	"course-hub/backend/pkg/response"
)

// FacultyHandler 教员名册模块 HTTP 处理器
type FacultyHandler struct {
	facultySvc service.FacultyService
}

// NewFacultyHandler 创建 FacultyHandler
func NewFacultyHandler(facultySvc service.FacultyService) *FacultyHandler {
	return &FacultyHandler{facultySvc: facultySvc}
}

// UploadFacultyInformation 上传教员名册文件
// POST /upload/facultyInformation  (multipart: file)
func (h *FacultyHandler) UploadFacultyInformation(c *gin.Context) {
	fh, err := c.FormFile("file")
	if err != nil {
		response.BadRequest(c, 10001, "缺少上传文件")
		return
	}

	content, err := readUploadFile(fh)
	if err != nil {
		response.BadRequest(c, 10001, "读取上传文件失败")
		return
	}

	summary, err := h.facultySvc.ProcessFacultyInformation(c.Request.Context(), content, Uploader(c))
	if err != nil {
		h.handleFacultyError(c, err)
		return
	}

	response.OK(c, summary)
}

// GetFacultyInformation 查询教员名册
// GET /facultyInformation?department=CSE
func (h *FacultyHandler) GetFacultyInformation(c *gin.Context) {
	department := c.Query("department")
	if department == "" {
		response.BadRequest(c, 10001, "department 不能为空")
		return
	}

	result, err := h.facultySvc.GetFacultyInformation(c.Request.Context(), department)
	if err != nil {
		h.handleFacultyError(c, err)
		return
	}

	response.OK(c, result)
}

// handleFacultyError 统一处理教员模块业务错误
func (h *FacultyHandler) handleFacultyError(c *gin.Context, err error) {
	var schemaErr *xlsx.SchemaError

	switch {
	case errors.Is(err, xlsx.ErrMalformedWorkbook):
		response.BadRequest(c, 30001, "无效的 Excel 文件格式")
	case errors.As(err, &schemaErr):
		response.ErrorWithDetails(c, 400, 30002, "上传文件缺少必要列", schemaErr.Error())
	case errors.Is(err, service.ErrTooManyRows):
		response.ErrorWithDetails(c, 400, 30003, "数据行数超过上限", err.Error())
	case errors.Is(err, service.ErrNoValidRecords):
		response.BadRequest(c, 30004, "文件中没有可用的教员记录")
	case errors.Is(err, service.ErrDepartmentUnknown):
		response.BadRequest(c, 30005, "无法从文件中确定院系")
	case errors.Is(err, service.ErrFacultyNotFound):
		response.NotFound(c, 30006, "未找到该院系的教员名册")
	default:
		response.InternalError(c)
	}
}
