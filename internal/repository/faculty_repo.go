package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"course-hub/backend/internal/model"
	"course-hub/backend/pkg/mongodb"
)

// FacultyRepository 教员名册数据访问接口
type FacultyRepository interface {
	// GetByDepartment 按自然键 department 查询
	// 文档不存在时返回 mongo.ErrNoDocuments
	GetByDepartment(ctx context.Context, department string) (*model.FacultyInformation, error)
	// Replace 按自然键整体替换（upsert）
	Replace(ctx context.Context, doc *model.FacultyInformation) (bool, error)
}

type facultyRepo struct {
	coll *mongo.Collection
}

// NewFacultyRepo 创建 FacultyRepository 实例
func NewFacultyRepo(db *mongo.Database) FacultyRepository {
	return &facultyRepo{coll: db.Collection(mongodb.CollFacultyInformation)}
}

func (r *facultyRepo) GetByDepartment(ctx context.Context, department string) (*model.FacultyInformation, error) {
	var doc model.FacultyInformation
	if err := r.coll.FindOne(ctx, bson.M{"department": department}).Decode(&doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

func (r *facultyRepo) Replace(ctx context.Context, doc *model.FacultyInformation) (bool, error) {
	filter := bson.M{"department": doc.Department}

	result, err := r.coll.ReplaceOne(ctx, filter, doc, options.Replace().SetUpsert(true))
	if err != nil {
		return false, err
	}
	return result.UpsertedCount > 0, nil
}
