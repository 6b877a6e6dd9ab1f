package repository

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestRepos(t *testing.T) *Repositories {
	t.Helper()

	db, err := InitDB(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)

	return NewRepositories(db)
}

func TestUserGetEmpty(t *testing.T) {
	repos := setupTestRepos(t)

	// 没有任何记录时返回 (nil, nil)，而不是错误
	user, err := repos.User.Get()
	require.NoError(t, err)
	assert.Nil(t, user)
}

func TestProvisionIdempotent(t *testing.T) {
	repos := setupTestRepos(t)

	user, created, err := repos.User.Provision("test", "123")
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, "test", user.UserName)
	assert.Equal(t, "Admin", user.Name)
	assert.True(t, repos.User.CheckPassword(user, "123"))

	// 重复执行只更新现有记录，不会产生第二行
	again, created, err := repos.User.Provision("admin", "456")
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, user.ID, again.ID)
	assert.Equal(t, "admin", again.UserName)
	assert.True(t, repos.User.CheckPassword(again, "456"))
	assert.False(t, repos.User.CheckPassword(again, "123"))

	var count int64
	require.NoError(t, repos.DB.Table("users").Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestUserCreateNameOnly(t *testing.T) {
	repos := setupTestRepos(t)

	// 演示数据只需要显示名称，不带登录凭据
	user, err := repos.User.Create("Leon")
	require.NoError(t, err)
	assert.Equal(t, "Leon", user.Name)
	assert.Empty(t, user.UserName)
	assert.Empty(t, user.PasswordHash)

	got, err := repos.User.Get()
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, user.ID, got.ID)
}

func TestUpdateName(t *testing.T) {
	repos := setupTestRepos(t)

	user, _, err := repos.User.Provision("test", "123")
	require.NoError(t, err)

	require.NoError(t, repos.User.UpdateName(user.ID, "Grace"))

	user, err = repos.User.Get()
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, "Grace", user.Name)
}

func TestMovieCRUD(t *testing.T) {
	repos := setupTestRepos(t)

	first, err := repos.Movie.Create("Test Movie", "2020")
	require.NoError(t, err)
	second, err := repos.Movie.Create("WALL-E", "2008")
	require.NoError(t, err)

	// 列表按插入顺序返回
	movies, err := repos.Movie.List()
	require.NoError(t, err)
	require.Len(t, movies, 2)
	assert.Equal(t, "Test Movie", movies[0].Title)
	assert.Equal(t, "WALL-E", movies[1].Title)

	require.NoError(t, repos.Movie.Update(first.ID, "Totoro", "1988"))
	movie, err := repos.Movie.FindByID(first.ID)
	require.NoError(t, err)
	require.NotNil(t, movie)
	assert.Equal(t, "Totoro", movie.Title)
	assert.Equal(t, "1988", movie.Year)

	require.NoError(t, repos.Movie.Delete(first.ID))
	movie, err = repos.Movie.FindByID(first.ID)
	require.NoError(t, err)
	assert.Nil(t, movie)

	count, err := repos.Movie.Count()
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)

	// 依然能查到未删除的记录
	movie, err = repos.Movie.FindByID(second.ID)
	require.NoError(t, err)
	require.NotNil(t, movie)
}

func TestMovieFindMissing(t *testing.T) {
	repos := setupTestRepos(t)

	movie, err := repos.Movie.FindByID(42)
	require.NoError(t, err)
	assert.Nil(t, movie)
}
