package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"

	"course-hub/backend/config"
	"course-hub/backend/internal/model"
	"course-hub/backend/internal/repository"
	"course-hub/backend/internal/xlsx"
)

// ── 测试辅助 ──

var facultyHeaders = []string{"ShortName", "Email", "Name", "DesignationName", "AcademicDepartmentShortName"}

func setupTestFacultyService() (FacultyService, *mockFacultyRepo) {
	facultyRepo := newMockFacultyRepo()
	repo := &repository.Repository{
		OfferedCourses: newMockOfferedCoursesRepo(),
		Faculty:        facultyRepo,
	}
	cfg := &config.UploadConfig{MaxFileSize: 10 << 20, MaxRows: 2000}
	svc := NewFacultyService(cfg, repo, zap.NewNop())
	return svc, facultyRepo
}

// ── ProcessFacultyInformation 测试 ──

func TestFacultyService_Process_Success(t *testing.T) {
	svc, facultyRepo := setupTestFacultyService()

	data := buildWorkbook(t, facultyHeaders, [][]string{
		{"AASR", "aasr@university.edu", "A. Rahman", "Lecturer", "CSE"},
		{"MMAH", "mmah@university.edu", "M. Mahmud", "Assistant Professor", "CSE"},
	})

	summary, err := svc.ProcessFacultyInformation(context.Background(), data, "admin")
	if err != nil {
		t.Fatalf("ProcessFacultyInformation 应成功: %v", err)
	}

	if summary.Department != "CSE" {
		t.Errorf("期望 department=CSE，实际 %q", summary.Department)
	}
	if summary.TotalRecords != 2 {
		t.Errorf("期望 TotalRecords=2，实际 %d", summary.TotalRecords)
	}
	if len(summary.Warnings) != 0 {
		t.Errorf("不应有警告，实际 %v", summary.Warnings)
	}
	if !summary.Created {
		t.Error("首次上传应为 Created=true")
	}

	doc, ok := facultyRepo.docs["CSE"]
	if !ok {
		t.Fatal("名册应已落库")
	}
	f := doc.FacultyList[0]
	if f.ShortName != "AASR" || f.Email != "aasr@university.edu" ||
		f.Name != "A. Rahman" || f.Designation != "Lecturer" {
		t.Errorf("教员记录不符: %+v", f)
	}
}

func TestFacultyService_Process_ToleratedWarnings(t *testing.T) {
	// 必填字段缺失与邮箱格式问题均记警告，行保留
	svc, facultyRepo := setupTestFacultyService()

	data := buildWorkbook(t, facultyHeaders, [][]string{
		{"AASR", "aasr@university.edu", "A. Rahman", "Lecturer", "CSE"},
		{"", "mmah@university.edu", "M. Mahmud", "", "CSE"},       // 缺 short_name 和 designation_name
		{"XYZ", "不是邮箱", "X. Y. Zaman", "Professor", "CSE"},        // 邮箱格式无效
	})

	summary, err := svc.ProcessFacultyInformation(context.Background(), data, "admin")
	if err != nil {
		t.Fatalf("ProcessFacultyInformation 应成功: %v", err)
	}

	if summary.TotalRecords != 3 {
		t.Errorf("问题行应保留，期望 TotalRecords=3，实际 %d", summary.TotalRecords)
	}
	if len(summary.Warnings) != 2 {
		t.Fatalf("期望 2 条警告，实际 %d: %v", len(summary.Warnings), summary.Warnings)
	}

	if summary.Warnings[0].Record != 2 || len(summary.Warnings[0].Errors) != 2 {
		t.Errorf("第 2 行应有 2 条问题，实际 %+v", summary.Warnings[0])
	}
	if !strings.Contains(summary.Warnings[1].Errors[0], "邮箱格式无效") {
		t.Errorf("期望邮箱格式警告，实际 %v", summary.Warnings[1].Errors)
	}

	if len(facultyRepo.docs["CSE"].FacultyList) != 3 {
		t.Errorf("落库记录数应为 3，实际 %d", len(facultyRepo.docs["CSE"].FacultyList))
	}
}

func TestFacultyService_Process_DepartmentFromFirstNonEmpty(t *testing.T) {
	// 首行院系为空时取后续首个非空值
	svc, facultyRepo := setupTestFacultyService()

	data := buildWorkbook(t, facultyHeaders, [][]string{
		{"AASR", "aasr@university.edu", "A. Rahman", "Lecturer", ""},
		{"MMAH", "mmah@university.edu", "M. Mahmud", "Lecturer", "EEE"},
	})

	summary, err := svc.ProcessFacultyInformation(context.Background(), data, "admin")
	if err != nil {
		t.Fatalf("ProcessFacultyInformation 应成功: %v", err)
	}
	if summary.Department != "EEE" {
		t.Errorf("期望 department=EEE，实际 %q", summary.Department)
	}
	if _, ok := facultyRepo.docs["EEE"]; !ok {
		t.Error("名册应以 EEE 为键落库")
	}
	// 首行院系为空记为警告
	if len(summary.Warnings) != 1 || summary.Warnings[0].Record != 1 {
		t.Errorf("首行应有院系缺失警告，实际 %v", summary.Warnings)
	}
}

func TestFacultyService_Process_DepartmentUnknown(t *testing.T) {
	svc, facultyRepo := setupTestFacultyService()

	data := buildWorkbook(t, facultyHeaders, [][]string{
		{"AASR", "aasr@university.edu", "A. Rahman", "Lecturer", ""},
	})

	_, err := svc.ProcessFacultyInformation(context.Background(), data, "admin")
	if !errors.Is(err, ErrDepartmentUnknown) {
		t.Fatalf("期望 ErrDepartmentUnknown，实际: %v", err)
	}
	if len(facultyRepo.docs) != 0 {
		t.Error("院系未知时不应写入")
	}
}

func TestFacultyService_Process_NoValidRecords(t *testing.T) {
	svc, _ := setupTestFacultyService()

	data := buildWorkbook(t, facultyHeaders, nil)

	_, err := svc.ProcessFacultyInformation(context.Background(), data, "admin")
	if !errors.Is(err, ErrNoValidRecords) {
		t.Fatalf("期望 ErrNoValidRecords，实际: %v", err)
	}
}

func TestFacultyService_Process_MissingRequiredColumn(t *testing.T) {
	svc, _ := setupTestFacultyService()

	data := buildWorkbook(t,
		[]string{"ShortName", "Email", "Name"}, // 缺 DesignationName 和 AcademicDepartmentShortName
		[][]string{
			{"AASR", "aasr@university.edu", "A. Rahman"},
		},
	)

	_, err := svc.ProcessFacultyInformation(context.Background(), data, "admin")
	var schemaErr *xlsx.SchemaError
	if !errors.As(err, &schemaErr) {
		t.Fatalf("期望 *SchemaError，实际: %v", err)
	}
	if len(schemaErr.Missing) != 2 {
		t.Errorf("期望 2 个缺失列，实际 %v", schemaErr.Missing)
	}
}

func TestFacultyService_Process_Idempotent(t *testing.T) {
	svc, facultyRepo := setupTestFacultyService()

	first := buildWorkbook(t, facultyHeaders, [][]string{
		{"AASR", "aasr@university.edu", "A. Rahman", "Lecturer", "CSE"},
		{"MMAH", "mmah@university.edu", "M. Mahmud", "Lecturer", "CSE"},
	})
	second := buildWorkbook(t, facultyHeaders, [][]string{
		{"AASR", "aasr@university.edu", "A. Rahman", "Senior Lecturer", "CSE"},
	})

	s1, err := svc.ProcessFacultyInformation(context.Background(), first, "admin")
	if err != nil {
		t.Fatalf("首次上传应成功: %v", err)
	}
	if !s1.Created || s1.Message != "已新增教员名册" {
		t.Errorf("首次上传应为新增: created=%v message=%q", s1.Created, s1.Message)
	}

	s2, err := svc.ProcessFacultyInformation(context.Background(), second, "admin")
	if err != nil {
		t.Fatalf("重复上传应成功: %v", err)
	}
	if s2.Created || s2.Message != "已更新教员名册" {
		t.Errorf("重复上传应为更新: created=%v message=%q", s2.Created, s2.Message)
	}

	doc := facultyRepo.docs["CSE"]
	if len(doc.FacultyList) != 1 {
		t.Errorf("重复上传应整体替换，期望 1 条记录，实际 %d", len(doc.FacultyList))
	}
	if doc.FacultyList[0].Designation != "Senior Lecturer" {
		t.Errorf("落库内容应为第二次的数据，实际 %q", doc.FacultyList[0].Designation)
	}
}

// ── GetFacultyInformation 测试 ──

func TestFacultyService_Get_Success(t *testing.T) {
	svc, facultyRepo := setupTestFacultyService()
	facultyRepo.docs["CSE"] = &model.FacultyInformation{
		Department: "CSE",
		FacultyList: []model.Faculty{
			{ShortName: "AASR", Email: "aasr@university.edu"},
		},
		UploadedBy: "admin",
		Timestamp:  time.Date(2024, 8, 1, 12, 0, 0, 0, time.UTC),
	}

	result, err := svc.GetFacultyInformation(context.Background(), "CSE")
	if err != nil {
		t.Fatalf("GetFacultyInformation 应成功: %v", err)
	}
	if len(result.FacultyList) != 1 || result.FacultyList[0].ShortName != "AASR" {
		t.Errorf("名册内容不符: %+v", result.FacultyList)
	}
}

func TestFacultyService_Get_NotFound(t *testing.T) {
	svc, _ := setupTestFacultyService()

	_, err := svc.GetFacultyInformation(context.Background(), "CSE")
	if !errors.Is(err, ErrFacultyNotFound) {
		t.Fatalf("期望 ErrFacultyNotFound，实际: %v", err)
	}
}
