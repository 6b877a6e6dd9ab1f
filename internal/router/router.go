package router

import (
	"net/http"
	"path/filepath"

	"github.com/gin-contrib/multitemplate"
	"github.com/gin-gonic/gin"
	"github.com/user/watchlist/internal/handler"
	"github.com/user/watchlist/internal/middleware"
)

// RegisterRoutes 注册所有路由
func RegisterRoutes(r *gin.Engine, h *handler.Handler) {
	// 健康检查
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// 所有页面都可以携带登录态
	r.Use(middleware.OptionalAuth(h.Config.SecretKey))

	// ==================== 公开页面 ====================
	r.GET("/", h.Index)
	r.POST("/", h.AddMovie)
	r.GET("/user/:name", h.UserPage)

	// ==================== 认证 ====================
	r.GET("/login", h.LoginPage)
	r.POST("/login", h.Login)
	r.GET("/logout", h.Logout)

	// ==================== 电影维护（需要登录）====================
	movie := r.Group("/movie")
	movie.Use(middleware.RequireAuth(h.Config.SecretKey))
	{
		movie.GET("/edit/:id", h.EditPage)
		movie.POST("/edit/:id", h.EditMovie)
		movie.POST("/delete/:id", h.DeleteMovie)
	}

	// ==================== 设置（需要登录）====================
	settings := r.Group("/settings")
	settings.Use(middleware.RequireAuth(h.Config.SecretKey))
	{
		settings.GET("", h.SettingsPage)
		settings.POST("", h.UpdateSettings)
	}

	// 未匹配的路径统一渲染 404 页面
	r.NoRoute(h.NotFound)
}

// LoadTemplates 使用 multitemplate 加载模板，解决模板继承问题
func LoadTemplates(templatesDir string) multitemplate.Renderer {
	r := multitemplate.NewRenderer()

	// 获取布局模板
	layouts, err := filepath.Glob(templatesDir + "/layouts/*.html")
	if err != nil {
		panic(err)
	}

	// 组装模板文件列表
	assemble := func(view string) []string {
		files := make([]string, 0)
		files = append(files, layouts...)
		files = append(files, view)
		return files
	}

	// 注册所有页面模板
	pages := []string{
		"index", "edit", "login", "settings", "user",
	}
	for _, page := range pages {
		viewPath := templatesDir + "/pages/" + page + ".html"
		r.AddFromFiles(page+".html", assemble(viewPath)...)
	}

	// 错误页模板
	errorPages := []string{"400", "404", "500"}
	for _, page := range errorPages {
		viewPath := templatesDir + "/errors/" + page + ".html"
		r.AddFromFiles(page+".html", assemble(viewPath)...)
	}

	return r
}
