package service

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"course-hub/backend/config"
	"course-hub/backend/internal/dto"
	"course-hub/backend/internal/model"
	"course-hub/backend/internal/repository"
	"course-hub/backend/internal/xlsx"
)

// ── 教员模块业务错误 ──

var (
	ErrDepartmentUnknown = errors.New("无法从文件中确定院系")
	ErrFacultyNotFound   = errors.New("未找到该院系的教员名册")
)

// FacultyService 教员名册业务接口
type FacultyService interface {
	// ProcessFacultyInformation 处理教员名册上传
	// 流程：解析 → 表头规范化（CamelCase → snake_case）→ 逐行校验（容错）→ 整体替换落库 → 摘要
	ProcessFacultyInformation(ctx context.Context, fileContent []byte, uploadedBy string) (*dto.FacultyUploadSummary, error)
	// GetFacultyInformation 按 department 查询教员名册
	GetFacultyInformation(ctx context.Context, department string) (*dto.FacultyInformationResponse, error)
}

type facultyService struct {
	cfg    *config.UploadConfig
	repo   *repository.Repository
	logger *zap.Logger
}

// NewFacultyService 创建 FacultyService 实例
func NewFacultyService(cfg *config.UploadConfig, repo *repository.Repository, logger *zap.Logger) FacultyService {
	return &facultyService{cfg: cfg, repo: repo, logger: logger}
}

// facultySchema 教员文件表头规则：CamelCase 表头逐词转 snake_case
var facultySchema = &xlsx.Schema{
	Canonical: xlsx.CamelToSnake,
	Required: []string{
		"short_name",
		"email",
		"name",
		"designation_name",
		"academic_department_short_name",
	},
}

// 名册入库时做轻量邮箱格式检查；格式问题记为行级警告，不丢弃行
var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// ────────────────────── ProcessFacultyInformation ──────────────────────

func (s *facultyService) ProcessFacultyInformation(ctx context.Context, fileContent []byte, uploadedBy string) (*dto.FacultyUploadSummary, error) {
	// 1. 解析工作簿
	table, err := xlsx.Parse(fileContent)
	if err != nil {
		s.logger.Warn("教员文件解析失败", zap.Error(err))
		return nil, err
	}

	// 2. 表头规范化 + 必要列校验
	rows, err := facultySchema.Apply(table)
	if err != nil {
		return nil, err
	}
	if s.cfg.MaxRows > 0 && len(rows) > s.cfg.MaxRows {
		return nil, fmt.Errorf("%w（%d 行，上限 %d 行）", ErrTooManyRows, len(rows), s.cfg.MaxRows)
	}

	// 3. 逐行构建教员记录（行级容错）
	var facultyList []model.Faculty
	warnings := []dto.UploadWarning{}
	department := ""

	for _, row := range rows {
		faculty, dept, problems := buildFaculty(row)

		// 院系取首个非空的 academic_department_short_name
		if department == "" && dept != "" {
			department = dept
		}

		if len(problems) > 0 {
			warnings = append(warnings, dto.UploadWarning{
				Record: row.Index,
				Errors: problems,
			})
		}
		facultyList = append(facultyList, faculty)
	}

	if len(facultyList) == 0 {
		return nil, ErrNoValidRecords
	}
	if department == "" {
		return nil, ErrDepartmentUnknown
	}

	// 4. 整体替换落库
	doc := &model.FacultyInformation{
		Department:  department,
		FacultyList: facultyList,
		UploadedBy:  uploadedBy,
		Timestamp:   time.Now().UTC(),
	}

	created, err := s.repo.Faculty.Replace(ctx, doc)
	if err != nil {
		s.logger.Error("保存教员名册失败", zap.String("department", department), zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrPersistFailed, err)
	}

	message := "已更新教员名册"
	if created {
		message = "已新增教员名册"
	}

	s.logger.Info("教员文件处理完成",
		zap.String("department", department),
		zap.Int("total_records", len(facultyList)),
		zap.Int("warnings", len(warnings)),
		zap.Bool("created", created),
	)

	return &dto.FacultyUploadSummary{
		Message:      message,
		Department:   department,
		TotalRecords: len(facultyList),
		UploadedBy:   uploadedBy,
		Created:      created,
		Warnings:     warnings,
	}, nil
}

// buildFaculty 从规范化行构建教员记录
// 五个必要列均要求非空，违反时记入问题列表但保留行
func buildFaculty(row xlsx.Row) (model.Faculty, string, []string) {
	var faculty model.Faculty
	var problems []string

	faculty.ShortName, _ = row.Get("short_name").AsString()
	faculty.Email, _ = row.Get("email").AsString()
	faculty.Name, _ = row.Get("name").AsString()
	faculty.Designation, _ = row.Get("designation_name").AsString()
	dept, _ := row.Get("academic_department_short_name").AsString()

	if faculty.ShortName == "" {
		problems = append(problems, "缺少 short_name")
	}
	if faculty.Email == "" {
		problems = append(problems, "缺少 email")
	} else if !emailPattern.MatchString(faculty.Email) {
		problems = append(problems, fmt.Sprintf("邮箱格式无效: %s", faculty.Email))
	}
	if faculty.Name == "" {
		problems = append(problems, "缺少 name")
	}
	if faculty.Designation == "" {
		problems = append(problems, "缺少 designation_name")
	}
	if dept == "" {
		problems = append(problems, "缺少 academic_department_short_name")
	}

	return faculty, dept, problems
}

// ────────────────────── GetFacultyInformation ──────────────────────

func (s *facultyService) GetFacultyInformation(ctx context.Context, department string) (*dto.FacultyInformationResponse, error) {
	doc, err := s.repo.Faculty.GetByDepartment(ctx, department)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrFacultyNotFound
		}
		s.logger.Error("查询教员名册失败", zap.String("department", department), zap.Error(err))
		return nil, err
	}

	return &dto.FacultyInformationResponse{
		Department:  doc.Department,
		FacultyList: doc.FacultyList,
		UploadedBy:  doc.UploadedBy,
		Timestamp:   doc.Timestamp,
	}, nil
}
