package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/xuri/excelize/v2"
	"go.mongodb.org/mongo-driver/mongo"

	"course-hub/backend/internal/model"
)

// ── Mock OfferedCoursesRepository ──

type mockOfferedCoursesRepo struct {
	docs       map[string]*model.OfferedCourses
	replaceErr error
}

func newMockOfferedCoursesRepo() *mockOfferedCoursesRepo {
	return &mockOfferedCoursesRepo{docs: make(map[string]*model.OfferedCourses)}
}

func courseKey(department string, semester, year int) string {
	return fmt.Sprintf("%s/%d/%d", department, semester, year)
}

func (m *mockOfferedCoursesRepo) GetByKey(_ context.Context, department string, semester, year int) (*model.OfferedCourses, error) {
	if doc, ok := m.docs[courseKey(department, semester, year)]; ok {
		return doc, nil
	}
	return nil, mongo.ErrNoDocuments
}

func (m *mockOfferedCoursesRepo) Replace(_ context.Context, doc *model.OfferedCourses) (bool, error) {
	if m.replaceErr != nil {
		return false, m.replaceErr
	}
	key := courseKey(doc.Department, doc.Semester, doc.Year)
	_, existed := m.docs[key]
	m.docs[key] = doc
	return !existed, nil
}

// ── Mock FacultyRepository ──

type mockFacultyRepo struct {
	docs       map[string]*model.FacultyInformation
	replaceErr error
}

func newMockFacultyRepo() *mockFacultyRepo {
	return &mockFacultyRepo{docs: make(map[string]*model.FacultyInformation)}
}

func (m *mockFacultyRepo) GetByDepartment(_ context.Context, department string) (*model.FacultyInformation, error) {
	if doc, ok := m.docs[department]; ok {
		return doc, nil
	}
	return nil, mongo.ErrNoDocuments
}

func (m *mockFacultyRepo) Replace(_ context.Context, doc *model.FacultyInformation) (bool, error) {
	if m.replaceErr != nil {
		return false, m.replaceErr
	}
	_, existed := m.docs[doc.Department]
	m.docs[doc.Department] = doc
	return !existed, nil
}

// ── xlsx 测试文件构建 ──

// buildWorkbook 构建内存中的 xlsx 文件字节流，首行为表头
func buildWorkbook(t *testing.T, headers []string, rows [][]string) []byte {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)

	for i, h := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			t.Fatalf("生成单元格坐标失败: %v", err)
		}
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			t.Fatalf("写入表头失败: %v", err)
		}
	}
	for r, row := range rows {
		for c, v := range row {
			if v == "" {
				continue
			}
			cell, err := excelize.CoordinatesToCellName(c+1, r+2)
			if err != nil {
				t.Fatalf("生成单元格坐标失败: %v", err)
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				t.Fatalf("写入单元格失败: %v", err)
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		t.Fatalf("序列化工作簿失败: %v", err)
	}
	return buf.Bytes()
}
