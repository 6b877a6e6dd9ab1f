package repository

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/glebarez/sqlite"
	"github.com/user/watchlist/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// InitDB 初始化数据库连接并自动建表
func InitDB(databasePath string) (*gorm.DB, error) {
	// 确保数据库文件所在目录存在（":memory:" 等特殊路径除外）
	if dir := filepath.Dir(databasePath); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("无法创建数据目录: %w", err)
		}
	}

	db, err := gorm.Open(sqlite.Open(databasePath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("无法连接数据库: %w", err)
	}

	if err := db.AutoMigrate(&model.User{}, &model.Movie{}); err != nil {
		return nil, fmt.Errorf("自动建表失败: %w", err)
	}

	return db, nil
}

// Repositories 仓库集合
type Repositories struct {
	DB    *gorm.DB
	User  *UserRepository
	Movie *MovieRepository
}

// NewRepositories 创建仓库集合
func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		DB:    db,
		User:  NewUserRepository(db),
		Movie: NewMovieRepository(db),
	}
}
