package repository

import (
	"errors"

	"github.com/user/watchlist/internal/model"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Get 获取唯一的管理员用户
// 整个应用只操作第一行记录；没有记录时返回 (nil, nil)
func (r *UserRepository) Get() (*model.User, error) {
	var user model.User
	err := r.db.Order("id ASC").First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &user, nil
}

// Provision 创建或更新管理员账号（幂等：已有记录时只更新登录名和密码）
func (r *UserRepository) Provision(username, password string) (*model.User, bool, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, false, err
	}

	user, err := r.Get()
	if err != nil {
		return nil, false, err
	}

	if user != nil {
		user.UserName = username
		user.PasswordHash = string(hash)
		if err := r.db.Save(user).Error; err != nil {
			return nil, false, err
		}
		return user, false, nil
	}

	user = &model.User{
		Name:         "Admin",
		UserName:     username,
		PasswordHash: string(hash),
	}
	if err := r.db.Create(user).Error; err != nil {
		return nil, false, err
	}

	return user, true, nil
}

// Create 创建仅有显示名称的用户（演示数据使用，不设置登录凭据）
func (r *UserRepository) Create(name string) (*model.User, error) {
	user := &model.User{Name: name}
	if err := r.db.Create(user).Error; err != nil {
		return nil, err
	}

	return user, nil
}

// CheckPassword 验证密码
func (r *UserRepository) CheckPassword(user *model.User, password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password))
	return err == nil
}

// UpdateName 更新显示名称
func (r *UserRepository) UpdateName(userID int, name string) error {
	return r.db.Model(&model.User{}).Where("id = ?", userID).Update("name", name).Error
}
