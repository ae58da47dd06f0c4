package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"course-hub/backend/config"
	"course-hub/backend/internal/api/handler"
	"course-hub/backend/internal/api/router"
	"course-hub/backend/internal/repository"
	"course-hub/backend/internal/service"
	"course-hub/backend/pkg/jwt"
	"course-hub/backend/pkg/logger"
	"course-hub/backend/pkg/mongodb"
	"course-hub/backend/pkg/redis"
)

func main() {
	configPath := flag.String("config", "", "配置文件路径（留空时按默认路径查找）")
	flag.Parse()

	// ── 配置 ──
	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "加载配置失败: %v\n", err)
		os.Exit(1)
	}

	// ── 日志 ──
	log, err := logger.NewLogger(&cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "初始化日志失败: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync() //nolint:errcheck

	// ── MongoDB ──
	mongoClient, err := mongodb.NewClient(context.Background(), &cfg.Mongo, log)
	if err != nil {
		log.Fatal("初始化 MongoDB 失败", zap.Error(err))
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := mongoClient.Close(ctx); err != nil {
			log.Warn("关闭 MongoDB 连接失败", zap.Error(err))
		}
	}()

	if err := mongoClient.EnsureIndexes(context.Background()); err != nil {
		log.Fatal("初始化 MongoDB 索引失败", zap.Error(err))
	}

	// ── Redis（仅限流使用，连接失败时降级运行）──
	rdb, err := redis.NewClient(&cfg.Redis, log)
	if err != nil {
		log.Warn("Redis 不可用，上传限流已禁用", zap.Error(err))
		rdb = nil
	} else {
		defer rdb.Close() //nolint:errcheck
	}

	// ── JWT ──
	jwtMgr := jwt.NewManager(&cfg.Auth)

	// ── 依赖注入链：Repository -> Service -> Handler ──
	repo := repository.NewRepository(mongoClient.Database())
	svc := service.NewService(cfg, repo, log)
	h := handler.NewHandler(svc)

	r := router.Setup(cfg, h, jwtMgr, rdb, log)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      r,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info("HTTP 服务启动", zap.Int("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("HTTP 服务异常退出", zap.Error(err))
		}
	}()

	// ── 优雅停机 ──
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("收到退出信号，开始优雅停机")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("优雅停机失败", zap.Error(err))
	}

	log.Info("服务已退出")
}
