package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"course-hub/backend/config"
	"course-hub/backend/internal/dto"
	"course-hub/backend/internal/model"
	"course-hub/backend/internal/repository"
	"course-hub/backend/internal/xlsx"
)

// ── 开课模块业务错误 ──

var (
	ErrRosterNotFound  = errors.New("未找到该院系的教员名册")
	ErrNoValidRecords  = errors.New("文件中没有可用的数据记录")
	ErrTooManyRows     = errors.New("数据行数超过上限")
	ErrPersistFailed   = errors.New("保存到文档库失败")
	ErrCoursesNotFound = errors.New("未找到符合条件的开课记录")
)

// CourseService 开课模块业务接口
type CourseService interface {
	// ProcessOfferedCourses 处理开课文件上传
	// 流程：解析 → 表头规范化 → 逐行校验（容错）→ 教员邮箱映射 → 整体替换落库 → 摘要
	ProcessOfferedCourses(ctx context.Context, fileContent []byte, uploadedBy string, year, semester int, department string) (*dto.CourseUploadSummary, error)
	// GetOfferedCourses 按 (department, semester, year) 查询开课文档
	GetOfferedCourses(ctx context.Context, department string, semester, year int) (*dto.OfferedCoursesResponse, error)
}

type courseService struct {
	cfg    *config.UploadConfig
	repo   *repository.Repository
	logger *zap.Logger
}

// NewCourseService 创建 CourseService 实例
func NewCourseService(cfg *config.UploadConfig, repo *repository.Repository, logger *zap.Logger) CourseService {
	return &courseService{cfg: cfg, repo: repo, logger: logger}
}

// courseSchema 开课文件表头规则
//   - 小写 + 空白转下划线
//   - 别名重命名："course" → "course_code"
//   - 丢弃列：dedicated_department / action
//   - timing 与 room_no 为可选列，缺失时补缺失标记
var courseSchema = &xlsx.Schema{
	Canonical: xlsx.SnakeCase,
	Rename: map[string]string{
		"course": "course_code",
	},
	Drop:     []string{"dedicated_department", "action"},
	Required: []string{"course_code", "section", "faculty", "capacity", "seat_taken"},
	Optional: []string{"timing", "room_no"},
}

// ────────────────────── ProcessOfferedCourses ──────────────────────

func (s *courseService) ProcessOfferedCourses(ctx context.Context, fileContent []byte, uploadedBy string, year, semester int, department string) (*dto.CourseUploadSummary, error) {
	// 1. 解析工作簿
	table, err := xlsx.Parse(fileContent)
	if err != nil {
		s.logger.Warn("开课文件解析失败", zap.Error(err))
		return nil, err
	}

	// 2. 表头规范化 + 必要列校验（列级 all-or-nothing）
	rows, err := courseSchema.Apply(table)
	if err != nil {
		return nil, err
	}
	if s.cfg.MaxRows > 0 && len(rows) > s.cfg.MaxRows {
		return nil, fmt.Errorf("%w（%d 行，上限 %d 行）", ErrTooManyRows, len(rows), s.cfg.MaxRows)
	}

	// 3. 加载教员名册并建立 short_name → email 映射
	//    名册缺失是硬性前置条件失败，不是行级警告
	roster, err := s.repo.Faculty.GetByDepartment(ctx, department)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("%w: %s", ErrRosterNotFound, department)
		}
		s.logger.Error("查询教员名册失败", zap.String("department", department), zap.Error(err))
		return nil, err
	}

	emailByFaculty := make(map[string]string, len(roster.FacultyList))
	for _, f := range roster.FacultyList {
		emailByFaculty[f.ShortName] = f.Email
	}

	// 4. 逐行构建课程记录（行级容错）
	//    - 必填字段缺失 / 邮箱无法映射：记警告，行保留
	//    - 字段无法强制转换（构建失败）：记警告，整行丢弃
	var courses []model.Course
	warnings := []dto.UploadWarning{}

	for _, row := range rows {
		course, problems, buildErr := buildCourse(row, emailByFaculty)
		if buildErr != nil {
			s.logger.Warn("跳过无法构建的课程记录",
				zap.Int("record", row.Index),
				zap.Error(buildErr),
			)
			warnings = append(warnings, dto.UploadWarning{
				Record:     row.Index,
				CourseCode: optionalString(course.CourseCode),
				Errors:     []string{fmt.Sprintf("无法构建课程记录: %v", buildErr)},
			})
			continue
		}

		if len(problems) > 0 {
			warnings = append(warnings, dto.UploadWarning{
				Record:     row.Index,
				CourseCode: optionalString(course.CourseCode),
				Errors:     problems,
			})
		}
		courses = append(courses, course)
	}

	if len(courses) == 0 {
		return nil, ErrNoValidRecords
	}

	// 5. 整体替换落库（唯一变更点，由存储层保证原子性）
	doc := &model.OfferedCourses{
		Department: department,
		Semester:   semester,
		Year:       year,
		Courses:    courses,
		UploadedBy: uploadedBy,
		Timestamp:  time.Now().UTC(),
	}

	created, err := s.repo.OfferedCourses.Replace(ctx, doc)
	if err != nil {
		s.logger.Error("保存开课文档失败",
			zap.String("department", department),
			zap.Int("semester", semester),
			zap.Int("year", year),
			zap.Error(err),
		)
		return nil, fmt.Errorf("%w: %v", ErrPersistFailed, err)
	}

	message := "已更新开课记录"
	if created {
		message = "已新增开课记录"
	}

	s.logger.Info("开课文件处理完成",
		zap.String("department", department),
		zap.Int("semester", semester),
		zap.Int("year", year),
		zap.Int("total_courses", len(courses)),
		zap.Int("warnings", len(warnings)),
		zap.Bool("created", created),
	)

	return &dto.CourseUploadSummary{
		Message:      message,
		Department:   department,
		Semester:     semester,
		Year:         year,
		TotalCourses: len(courses),
		UploadedBy:   uploadedBy,
		Created:      created,
		Warnings:     warnings,
	}, nil
}

// buildCourse 从规范化行构建课程记录
// 返回 (记录, 容错问题列表, 构建错误)；构建错误意味着整行丢弃
func buildCourse(row xlsx.Row, emailByFaculty map[string]string) (model.Course, []string, error) {
	var course model.Course
	var problems []string

	if v, ok := row.Get("course_code").AsString(); ok {
		course.CourseCode = v
	}

	faculty := row.Get("faculty")
	if v, ok := faculty.AsString(); ok {
		course.Faculty = &v
	}

	section, ok, err := row.Get("section").AsInt()
	if err != nil {
		return course, nil, fmt.Errorf("section: %w", err)
	}
	if ok {
		course.Section = &section
	}

	capacity, ok, err := row.Get("capacity").AsInt()
	if err != nil {
		return course, nil, fmt.Errorf("capacity: %w", err)
	}
	if ok {
		course.Capacity = &capacity
	}

	seatTaken, ok, err := row.Get("seat_taken").AsInt()
	if err != nil {
		return course, nil, fmt.Errorf("seat_taken: %w", err)
	}
	if ok {
		course.SeatTaken = &seatTaken
	}

	// room_no 不做校验，统一按字符串存储
	if v, ok := row.Get("room_no").AsString(); ok {
		course.RoomNo = &v
	}

	// timing 仅在字符串单元格时尝试解析，格式不符降级为 nil
	if t := row.Get("timing"); t.Kind() == xlsx.KindString {
		if v, ok := t.AsString(); ok {
			course.Timing = ParseTiming(v)
		}
	}

	// ── 必填字段与邮箱映射检查（容错，不丢弃行）──
	if course.CourseCode == "" {
		problems = append(problems, "缺少 course_code")
	}
	if course.Faculty == nil {
		problems = append(problems, "缺少 faculty")
	} else if email, ok := emailByFaculty[*course.Faculty]; ok {
		course.Email = &email
	} else {
		problems = append(problems, fmt.Sprintf("教员 %q 在名册中没有对应邮箱", *course.Faculty))
	}

	return course, problems, nil
}

// ────────────────────── GetOfferedCourses ──────────────────────

func (s *courseService) GetOfferedCourses(ctx context.Context, department string, semester, year int) (*dto.OfferedCoursesResponse, error) {
	doc, err := s.repo.OfferedCourses.GetByKey(ctx, department, semester, year)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrCoursesNotFound
		}
		s.logger.Error("查询开课文档失败",
			zap.String("department", department),
			zap.Int("semester", semester),
			zap.Int("year", year),
			zap.Error(err),
		)
		return nil, err
	}

	return &dto.OfferedCoursesResponse{
		Department:   doc.Department,
		Semester:     doc.Semester,
		Year:         doc.Year,
		Courses:      doc.Courses,
		TotalCourses: len(doc.Courses),
		UploadedBy:   doc.UploadedBy,
		Timestamp:    doc.Timestamp,
	}, nil
}

// ── 内部辅助函数 ──

// optionalString 空串视为缺失
func optionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
