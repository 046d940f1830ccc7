package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/yanggu0413/yles503-react/config"
	"github.com/yanggu0413/yles503-react/internal/api/handler"
	"github.com/yanggu0413/yles503-react/internal/api/router"
	"github.com/yanggu0413/yles503-react/internal/client"
	"github.com/yanggu0413/yles503-react/internal/guard"
	"github.com/yanggu0413/yles503-react/internal/service"
	"github.com/yanggu0413/yles503-react/internal/session"
	applogger "github.com/yanggu0413/yles503-react/pkg/logger"
)

func main() {
	// 1. 加载配置
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "加载配置失败: %v\n", err)
		os.Exit(1)
	}

	// 2. 初始化日志
	logger, err := applogger.NewLogger(&cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "初始化日志失败: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("应用启动中...",
		zap.Int("port", cfg.Server.Port),
		zap.String("api", cfg.API.BaseURL),
		zap.String("session_driver", cfg.Session.Driver),
		zap.String("log_level", cfg.Log.Level),
	)

	// 3. 打开会话存储（整个进程只有这一个实例）
	store, err := session.Open(cfg, logger)
	if err != nil {
		logger.Fatal("打开会话存储失败", zap.Error(err))
	}

	// 4. 依赖注入: Client → Service → Handler
	api := client.New(cfg.API.BaseURL, store, logger)
	svc := service.NewService(api, store, logger)
	h := handler.NewHandler(cfg, svc)
	g := guard.New(store, cfg.Server.LoginPath, cfg.Server.AdminPrefix)

	// 5. 初始化路由
	gin.SetMode(gin.ReleaseMode)
	engine := router.Setup(cfg, h, g, logger)

	// 6. 启动 HTTP 服务器（优雅关闭）
	// WriteTimeout 需覆盖一次完整的 API 往返与文件导出
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      engine,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("HTTP 服务器已启动", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("HTTP 服务器异常", zap.Error(err))
		}
	}()

	// 7. 监听系统信号，优雅关闭
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	logger.Info("收到关闭信号，开始优雅关闭...", zap.String("signal", sig.String()))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("服务器关闭异常", zap.Error(err))
	}

	// 关闭会话存储
	if err := store.Close(); err != nil {
		logger.Error("关闭会话存储失败", zap.Error(err))
	}

	logger.Info("服务器已关闭")
}
