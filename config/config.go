package config

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/spf13/viper"
)

// DefaultAPIBaseURL 未配置时使用的 API 地址
const DefaultAPIBaseURL = "http://localhost:8787/api"

// Config 应用全局配置结构体
type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	API     APIConfig     `mapstructure:"api"`
	Session SessionConfig `mapstructure:"session"`
	Redis   RedisConfig   `mapstructure:"redis"`
	Log     LogConfig     `mapstructure:"log"`
}

// ServerConfig 前端服务 HTTP 配置
type ServerConfig struct {
	Port          int        `mapstructure:"port"`
	LoginPath     string     `mapstructure:"login_path"`
	AdminPrefix   string     `mapstructure:"admin_prefix"`
	MaxUploadSize int64      `mapstructure:"max_upload_size"` // 上传文件大小上限（字节）
	CORS          CORSConfig `mapstructure:"cors"`
}

// CORSConfig 跨域配置
type CORSConfig struct {
	AllowOrigins []string `mapstructure:"allow_origins"`
}

// APIConfig 后端 REST API 配置
type APIConfig struct {
	BaseURL string `mapstructure:"base_url"`
}

// SessionConfig 会话 Token 存储配置
type SessionConfig struct {
	Driver    string `mapstructure:"driver"`     // bolt | redis | memory
	Path      string `mapstructure:"path"`       // bolt 文件路径
	KeyPrefix string `mapstructure:"key_prefix"` // redis 键前缀
}

// RedisConfig Redis 配置（session.driver = redis 时使用）
type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// LogConfig 日志配置
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Load 从配置文件与环境变量加载配置
// 优先级：环境变量 > 配置文件 > 默认值
func Load(path string) (*Config, error) {
	v := viper.New()

	// ── 默认值 ──
	v.SetDefault("server.port", 5173)
	v.SetDefault("server.login_path", "/login")
	v.SetDefault("server.admin_prefix", "/admin")
	v.SetDefault("server.max_upload_size", 10<<20)
	v.SetDefault("server.cors.allow_origins", []string{"http://localhost:5173"})

	v.SetDefault("api.base_url", DefaultAPIBaseURL)

	v.SetDefault("session.driver", "bolt")
	v.SetDefault("session.path", "data/session.db")
	v.SetDefault("session.key_prefix", "yles503:")

	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	// ── 配置文件 ──
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./config")
		v.AddConfigPath(".")
	}

	// ── 环境变量 ──
	v.SetEnvPrefix("YLES")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	// 兼容旧前端部署使用的 VITE_API_URL
	if err := v.BindEnv("api.base_url", "YLES_API_BASE_URL", "VITE_API_URL"); err != nil {
		return nil, fmt.Errorf("绑定环境变量失败: %w", err)
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("读取配置文件失败: %w", err)
		}
		// 配置文件不存在时仅依赖默认值和环境变量
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("解析配置失败: %w", err)
	}

	cfg.API.BaseURL = strings.TrimRight(cfg.API.BaseURL, "/")

	// ── 关键配置校验 ──
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate 校验关键配置项
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("配置校验失败: server.port 必须在 1-65535 之间")
	}
	u, err := url.Parse(c.API.BaseURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("配置校验失败: api.base_url 必须为 http(s) 地址，当前为 %q", c.API.BaseURL)
	}
	if !strings.HasPrefix(c.Server.LoginPath, "/") || !strings.HasPrefix(c.Server.AdminPrefix, "/") {
		return fmt.Errorf("配置校验失败: server.login_path 与 server.admin_prefix 必须以 / 开头")
	}
	switch c.Session.Driver {
	case "bolt":
		if c.Session.Path == "" {
			return fmt.Errorf("配置校验失败: session.driver=bolt 时 session.path 不能为空")
		}
	case "redis", "memory":
	default:
		return fmt.Errorf("配置校验失败: session.driver 仅支持 bolt | redis | memory")
	}
	return nil
}

// Origin API 的 scheme://host，用于 CSP 放行 API 上的图片
func (a *APIConfig) Origin() string {
	u, err := url.Parse(a.BaseURL)
	if err != nil {
		return ""
	}
	return u.Scheme + "://" + u.Host
}
