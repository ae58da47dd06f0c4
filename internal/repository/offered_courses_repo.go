package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"course-hub/backend/internal/model"
	"course-hub/backend/pkg/mongodb"
)

// OfferedCoursesRepository 开课文档数据访问接口
type OfferedCoursesRepository interface {
	// GetByKey 按自然键 (department, semester, year) 查询
	// 文档不存在时返回 mongo.ErrNoDocuments
	GetByKey(ctx context.Context, department string, semester, year int) (*model.OfferedCourses, error)
	// Replace 按自然键整体替换（upsert）
	// 返回 created=true 表示此前不存在同键文档
	Replace(ctx context.Context, doc *model.OfferedCourses) (bool, error)
}

type offeredCoursesRepo struct {
	coll *mongo.Collection
}

// NewOfferedCoursesRepo 创建 OfferedCoursesRepository 实例
func NewOfferedCoursesRepo(db *mongo.Database) OfferedCoursesRepository {
	return &offeredCoursesRepo{coll: db.Collection(mongodb.CollOfferedCourses)}
}

func (r *offeredCoursesRepo) GetByKey(ctx context.Context, department string, semester, year int) (*model.OfferedCourses, error) {
	filter := bson.M{
		"department": department,
		"semester":   semester,
		"year":       year,
	}

	var doc model.OfferedCourses
	if err := r.coll.FindOne(ctx, filter).Decode(&doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

func (r *offeredCoursesRepo) Replace(ctx context.Context, doc *model.OfferedCourses) (bool, error) {
	filter := bson.M{
		"department": doc.Department,
		"semester":   doc.Semester,
		"year":       doc.Year,
	}

	result, err := r.coll.ReplaceOne(ctx, filter, doc, options.Replace().SetUpsert(true))
	if err != nil {
		return false, err
	}
	return result.UpsertedCount > 0, nil
}
