package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	StorageDatabase = "database"
	StorageMemory   = "memory"
)

type Config struct {
	Port    string
	Env     string
	Storage string

	DBDriver string
	DBDSN    string

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	JWTSecret string

	CloudinaryCloudName string
	CloudinaryAPIKey    string
	CloudinaryAPISecret string

	AllowedOrigins      []string
	ExpirySweepInterval time.Duration
	ImageMaxWidth       int
	ImageMaxHeight      int
}

// Load بارگذاری .env (در صورت وجود) و خواندن متغیرهای محیطی
func Load() (*Config, error) {
	// نبودن .env خطا نیست؛ متغیرهای سیستم استفاده می‌شوند
	_ = godotenv.Load()
	return FromEnv(os.Getenv)
}

// FromEnv ساخت Config از تابع lookup؛ متغیرهای الزامی ناموجود در خطا فهرست می‌شوند
func FromEnv(getenv func(string) string) (*Config, error) {
	get := func(key, def string) string {
		if v := strings.TrimSpace(getenv(key)); v != "" {
			return v
		}
		return def
	}

	cfg := &Config{
		Port:                get("APP_PORT", "5000"),
		Env:                 get("APP_ENV", "development"),
		Storage:             strings.ToLower(get("STORAGE", StorageDatabase)),
		DBDriver:            strings.ToLower(get("DB_DRIVER", "mysql")),
		DBDSN:               get("DB_DSN", ""),
		RedisAddr:           get("REDIS_ADDR", ""),
		RedisPassword:       getenv("REDIS_PASSWORD"),
		JWTSecret:           get("JWT_SECRET", ""),
		CloudinaryCloudName: get("CLOUDINARY_CLOUD_NAME", ""),
		CloudinaryAPIKey:    get("CLOUDINARY_API_KEY", ""),
		CloudinaryAPISecret: get("CLOUDINARY_API_SECRET", ""),
	}

	var err error
	if cfg.RedisDB, err = strconv.Atoi(get("REDIS_DB", "0")); err != nil {
		return nil, fmt.Errorf("REDIS_DB: %w", err)
	}
	if cfg.ExpirySweepInterval, err = time.ParseDuration(get("EXPIRY_SWEEP_INTERVAL", "1m")); err != nil {
		return nil, fmt.Errorf("EXPIRY_SWEEP_INTERVAL: %w", err)
	}
	if cfg.ExpirySweepInterval <= 0 {
		return nil, fmt.Errorf("EXPIRY_SWEEP_INTERVAL must be positive")
	}
	if cfg.ImageMaxWidth, err = strconv.Atoi(get("IMAGE_MAX_WIDTH", "1600")); err != nil {
		return nil, fmt.Errorf("IMAGE_MAX_WIDTH: %w", err)
	}
	if cfg.ImageMaxHeight, err = strconv.Atoi(get("IMAGE_MAX_HEIGHT", "1600")); err != nil {
		return nil, fmt.Errorf("IMAGE_MAX_HEIGHT: %w", err)
	}

	for _, origin := range strings.Split(get("ALLOWED_ORIGINS", "http://localhost:8080,http://localhost:5173"), ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			cfg.AllowedOrigins = append(cfg.AllowedOrigins, origin)
		}
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	required := map[string]string{"JWT_SECRET": c.JWTSecret}
	switch c.Storage {
	case StorageMemory:
	case StorageDatabase:
		required["DB_DSN"] = c.DBDSN
		required["REDIS_ADDR"] = c.RedisAddr
		required["CLOUDINARY_CLOUD_NAME"] = c.CloudinaryCloudName
		required["CLOUDINARY_API_KEY"] = c.CloudinaryAPIKey
		required["CLOUDINARY_API_SECRET"] = c.CloudinaryAPISecret
		if c.DBDriver != "mysql" && c.DBDriver != "postgres" {
			return fmt.Errorf("unsupported DB_DRIVER %q", c.DBDriver)
		}
	default:
		return fmt.Errorf("unsupported STORAGE %q", c.Storage)
	}

	var missing []string
	for _, key := range []string{"DB_DSN", "REDIS_ADDR", "JWT_SECRET", "CLOUDINARY_CLOUD_NAME", "CLOUDINARY_API_KEY", "CLOUDINARY_API_SECRET"} {
		if v, ok := required[key]; ok && v == "" {
			missing = append(missing, key)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", "))
	}
	return nil
}
