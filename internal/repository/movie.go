package repository

import (
	"errors"

	"github.com/user/watchlist/internal/model"
	"gorm.io/gorm"
)

type MovieRepository struct {
	db *gorm.DB
}

func NewMovieRepository(db *gorm.DB) *MovieRepository {
	return &MovieRepository{db: db}
}

// List 获取全部电影，按插入顺序（自增 ID）返回
func (r *MovieRepository) List() ([]*model.Movie, error) {
	var movies []*model.Movie
	err := r.db.Order("id ASC").Find(&movies).Error
	return movies, err
}

// FindByID 根据 ID 查找电影，不存在时返回 (nil, nil)
func (r *MovieRepository) FindByID(id int) (*model.Movie, error) {
	var movie model.Movie
	err := r.db.First(&movie, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &movie, nil
}

// Create 新增电影
func (r *MovieRepository) Create(title, year string) (*model.Movie, error) {
	movie := &model.Movie{
		Title: title,
		Year:  year,
	}
	if err := r.db.Create(movie).Error; err != nil {
		return nil, err
	}

	return movie, nil
}

// Update 更新电影标题和年份
func (r *MovieRepository) Update(id int, title, year string) error {
	return r.db.Model(&model.Movie{}).Where("id = ?", id).
		Updates(map[string]interface{}{"title": title, "year": year}).Error
}

// Delete 删除电影
func (r *MovieRepository) Delete(id int) error {
	return r.db.Delete(&model.Movie{}, id).Error
}

// Count 获取电影总数
func (r *MovieRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&model.Movie{}).Count(&count).Error
	return count, err
}
