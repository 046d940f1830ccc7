package session

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/yanggu0413/yles503-react/config"
	"github.com/yanggu0413/yles503-react/pkg/redis"
)

// 会话存储驱动
const (
	DriverBolt   = "bolt"
	DriverRedis  = "redis"
	DriverMemory = "memory"
)

// Open 按配置创建会话存储
func Open(cfg *config.Config, logger *zap.Logger) (Backend, error) {
	switch cfg.Session.Driver {
	case DriverBolt, "":
		store, err := OpenBolt(cfg.Session.Path)
		if err != nil {
			return nil, err
		}
		logger.Info("会话存储已就绪", zap.String("driver", DriverBolt), zap.String("path", cfg.Session.Path))
		return store, nil
	case DriverRedis:
		rdb, err := redis.NewClient(&cfg.Redis, logger)
		if err != nil {
			return nil, err
		}
		logger.Info("会话存储已就绪", zap.String("driver", DriverRedis))
		return NewRedisStore(rdb, cfg.Session.KeyPrefix), nil
	case DriverMemory:
		logger.Warn("使用内存会话存储，重启后需重新登录")
		return NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("未知的会话驱动 %q", cfg.Session.Driver)
	}
}
