package handler

import (
	"io"
	"mime/multipart"

	"github.com/gin-gonic/gin"

	"course-hub/backend/internal/api/middleware"
)

// Uploader 从 Gin 上下文中提取上传者身份
// 认证中间件未注入时回退为匿名
func Uploader(c *gin.Context) string {
	v, exists := c.Get(middleware.UsernameKey)
	if !exists {
		return middleware.AnonymousUser
	}
	s, ok := v.(string)
	if !ok || s == "" {
		return middleware.AnonymousUser
	}
	return s
}

// readUploadFile 读取 multipart 文件字段的全部内容
// 文件大小已由 BodyLimit 中间件约束，此处整体读入内存即可
func readUploadFile(fh *multipart.FileHeader) ([]byte, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return io.ReadAll(f)
}
