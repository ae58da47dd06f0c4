package handler

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"course-hub/backend/internal/service"
	"course-hub/backend/internal/xlsx"
	"course-hub/backend/pkg/response"
)

// CourseHandler 开课模块 HTTP 处理器
type CourseHandler struct {
	courseSvc service.CourseService
}

// NewCourseHandler 创建 CourseHandler
func NewCourseHandler(courseSvc service.CourseService) *CourseHandler {
	return &CourseHandler{courseSvc: courseSvc}
}

// uploadCoursesForm 开课文件上传表单字段
type uploadCoursesForm struct {
	Year       int    `form:"year" binding:"required"`
	SemesterNo int    `form:"semester_no" binding:"required,min=1,max=3"`
	Department string `form:"department" binding:"required"`
}

// UploadOfferedCourses 上传开课文件
// POST /upload/offeredCourses  (multipart: file, year, semester_no, department)
func (h *CourseHandler) UploadOfferedCourses(c *gin.Context) {
	var form uploadCoursesForm
	if err := c.ShouldBind(&form); err != nil {
		response.BadRequest(c, 10001, "表单参数校验失败：year / semester_no(1-3) / department 为必填")
		return
	}

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

	summary, err := h.courseSvc.ProcessOfferedCourses(
		c.Request.Context(),
		content,
		Uploader(c),
		form.Year,
		form.SemesterNo,
		form.Department,
	)
	if err != nil {
		h.handleCourseError(c, err)
		return
	}

	response.OK(c, summary)
}

// GetOfferedCourses 查询开课记录
// GET /offeredCourses?department=CSE&semester=3&year=2024
func (h *CourseHandler) GetOfferedCourses(c *gin.Context) {
	department := c.Query("department")
	if department == "" {
		response.BadRequest(c, 10001, "department 不能为空")
		return
	}

	semester, err := strconv.Atoi(c.Query("semester"))
	if err != nil || semester < 1 || semester > 3 {
		response.BadRequest(c, 10001, "semester 必须为 1-3 的整数")
		return
	}

	year, err := strconv.Atoi(c.Query("year"))
	if err != nil {
		response.BadRequest(c, 10001, "year 必须为整数")
		return
	}

	result, err := h.courseSvc.GetOfferedCourses(c.Request.Context(), department, semester, year)
	if err != nil {
		h.handleCourseError(c, err)
		return
	}

	response.OK(c, result)
}

// handleCourseError 统一处理开课模块业务错误
func (h *CourseHandler) handleCourseError(c *gin.Context, err error) {
	var schemaErr *xlsx.SchemaError

	switch {
	case errors.Is(err, xlsx.ErrMalformedWorkbook):
		response.BadRequest(c, 20001, "无效的 Excel 文件格式")
	case errors.As(err, &schemaErr):
		response.ErrorWithDetails(c, 400, 20002, "上传文件缺少必要列", schemaErr.Error())
	case errors.Is(err, service.ErrTooManyRows):
		response.ErrorWithDetails(c, 400, 20003, "数据行数超过上限", err.Error())
	case errors.Is(err, service.ErrRosterNotFound):
		response.ErrorWithDetails(c, 400, 20004, "未找到该院系的教员名册，请先上传教员信息", err.Error())
	case errors.Is(err, service.ErrNoValidRecords):
		response.BadRequest(c, 20005, "文件中没有可用的课程记录")
	case errors.Is(err, service.ErrCoursesNotFound):
		response.NotFound(c, 20006, "未找到符合条件的开课记录")
	default:
		response.InternalError(c)
	}
}
