package config

import (
	"fmt"
	"os"
)

// Config 应用配置
type Config struct {
	Env          string
	SecretKey    string
	DatabasePath string
	Port         string
	SiteName     string
}

// Load 加载配置
func Load() *Config {
	secretKey := getEnv("SECRET_KEY", "dev")

	if getEnv("APP_ENV", "development") == "production" && secretKey == "dev" {
		fmt.Println("【严重警告】生产环境正在使用默认密钥！请立即设置 SECRET_KEY 环境变量。")
	}

	return &Config{
		Env:          getEnv("APP_ENV", "development"),
		SecretKey:    secretKey,
		DatabasePath: getEnv("DATABASE_PATH", "data/watchlist.db"),
		Port:         getEnv("PORT", "5000"),
		SiteName:     getEnv("SITE_NAME", "Watchlist"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
