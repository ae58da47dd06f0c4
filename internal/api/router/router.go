package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"course-hub/backend/config"
	"course-hub/backend/internal/api/handler"
	"course-hub/backend/internal/api/middleware"
	"course-hub/backend/pkg/jwt"
	"course-hub/backend/pkg/redis"
)

// Setup 初始化并返回 Gin 路由引擎
func Setup(cfg *config.Config, h *handler.Handler, jwtMgr *jwt.Manager, rdb *redis.Client, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	// ── 全局中间件 ──
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.CORS(cfg.Server.CORS.AllowOrigins))
	r.Use(middleware.BodyLimit(cfg.Upload.MaxFileSize))

	// ── 健康检查 ──
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	auth := middleware.OptionalAuth(jwtMgr, cfg.Auth.Enabled)
	rateLimit := middleware.RateLimit(rdb, cfg.Upload.RateLimitPerMin, time.Minute)

	// ── 上传接口 ──
	upload := r.Group("/upload")
	upload.Use(auth, rateLimit)
	{
		upload.POST("/offeredCourses", h.Course.UploadOfferedCourses)
		upload.POST("/facultyInformation", h.Faculty.UploadFacultyInformation)
	}

	// ── 查询接口 ──
	r.GET("/offeredCourses", h.Course.GetOfferedCourses)
	r.GET("/facultyInformation", h.Faculty.GetFacultyInformation)

	return r
}
