package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/user/watchlist/internal/config"
	"github.com/user/watchlist/internal/middleware"
	"github.com/user/watchlist/internal/model"
	"github.com/user/watchlist/internal/repository"
)

// 统一的提示消息，渲染为一次性 flash
const (
	msgInvalidInput    = "Invalid input! Please try again."
	msgItemAdded       = "Item added."
	msgItemUpdated     = "Successful updated."
	msgItemDeleted     = "Item deleted."
	msgLoginSuccess    = "Login success."
	msgLogoutSuccess   = "Logout success."
	msgSettingsUpdated = "Settings updated."
)

// Handler HTTP 处理器
type Handler struct {
	Repos  *repository.Repositories
	Config *config.Config
}

// NewHandler 创建处理器
func NewHandler(repos *repository.Repositories, cfg *config.Config) *Handler {
	return &Handler{
		Repos:  repos,
		Config: cfg,
	}
}

// movieForm 新增/编辑电影的表单
type movieForm struct {
	Title string `form:"title" binding:"required,max=60"`
	Year  string `form:"year" binding:"required,max=4"`
}

// loginForm 登录表单
type loginForm struct {
	Username string `form:"username" binding:"required"`
	Password string `form:"password" binding:"required"`
}

// settingsForm 设置表单（修改显示名称）
type settingsForm struct {
	Name string `form:"name" binding:"required,max=20"`
}

// RenderData 统一封装公共渲染数据
func (h *Handler) RenderData(c *gin.Context, data gin.H) gin.H {
	res := gin.H{
		"SiteName": h.Config.SiteName,
		"Path":     c.Request.URL.Path,
	}

	session := sessions.Default(c)

	// 注入用户信息
	if userinfo := session.Get("userinfo"); userinfo != nil {
		if su, ok := userinfo.(model.SessionUser); ok {
			res["UserInfo"] = su
		}
	}

	// 取出并清空 flash 消息
	if flashes := session.Flashes(); len(flashes) > 0 {
		res["Flashes"] = flashes
		session.Save()
	}

	// 合并传入的数据
	for k, v := range data {
		res[k] = v
	}

	return res
}

// flash 记录一条一次性提示消息
func (h *Handler) flash(c *gin.Context, message string) {
	session := sessions.Default(c)
	session.AddFlash(message)
	session.Save()
}

// movieID 解析路径中的电影 ID，解析失败视同记录不存在
func movieID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// ==================== 电影列表 ====================

// Index 电影列表页
func (h *Handler) Index(c *gin.Context) {
	movies, err := h.Repos.Movie.List()
	if err != nil {
		h.InternalError(c)
		return
	}

	// 列表页标题展示管理员的显示名称，未配置账号时回退到站点名
	owner, err := h.Repos.User.Get()
	if err != nil {
		h.InternalError(c)
		return
	}

	c.HTML(http.StatusOK, "index.html", h.RenderData(c, gin.H{
		"Title":  h.Config.SiteName,
		"Owner":  owner,
		"Movies": movies,
		"Count":  len(movies),
	}))
}

// AddMovie 新增电影
func (h *Handler) AddMovie(c *gin.Context) {
	// 未登录直接回到列表页，不做任何修改
	if middleware.GetUserID(c) == 0 {
		c.Redirect(http.StatusFound, "/")
		return
	}

	// 表单本身无法解析按 400 处理，与字段校验失败区分开
	if err := c.Request.ParseForm(); err != nil {
		h.BadRequest(c)
		return
	}

	var form movieForm
	if err := c.ShouldBind(&form); err != nil {
		h.flash(c, msgInvalidInput)
		c.Redirect(http.StatusFound, "/")
		return
	}

	// 去掉首尾空白后再检查，纯空白的输入同样视为非法
	title := strings.TrimSpace(form.Title)
	year := strings.TrimSpace(form.Year)
	if title == "" || year == "" {
		h.flash(c, msgInvalidInput)
		c.Redirect(http.StatusFound, "/")
		return
	}

	if _, err := h.Repos.Movie.Create(title, year); err != nil {
		h.InternalError(c)
		return
	}

	h.flash(c, msgItemAdded)
	c.Redirect(http.StatusFound, "/")
}

// ==================== 编辑 / 删除 ====================

// EditPage 编辑表单页
func (h *Handler) EditPage(c *gin.Context) {
	id, ok := movieID(c)
	if !ok {
		h.NotFound(c)
		return
	}

	movie, err := h.Repos.Movie.FindByID(id)
	if err != nil {
		h.InternalError(c)
		return
	}
	if movie == nil {
		h.NotFound(c)
		return
	}

	c.HTML(http.StatusOK, "edit.html", h.RenderData(c, gin.H{
		"Title": "Edit item - " + h.Config.SiteName,
		"Movie": movie,
	}))
}

// EditMovie 应用编辑
func (h *Handler) EditMovie(c *gin.Context) {
	id, ok := movieID(c)
	if !ok {
		h.NotFound(c)
		return
	}

	movie, err := h.Repos.Movie.FindByID(id)
	if err != nil {
		h.InternalError(c)
		return
	}
	if movie == nil {
		h.NotFound(c)
		return
	}

	if err := c.Request.ParseForm(); err != nil {
		h.BadRequest(c)
		return
	}

	var form movieForm
	if err := c.ShouldBind(&form); err != nil {
		// 校验失败回到编辑页重试
		h.flash(c, msgInvalidInput)
		c.Redirect(http.StatusFound, "/movie/edit/"+strconv.Itoa(id))
		return
	}

	// 去掉首尾空白后再检查，纯空白的输入同样视为非法
	title := strings.TrimSpace(form.Title)
	year := strings.TrimSpace(form.Year)
	if title == "" || year == "" {
		h.flash(c, msgInvalidInput)
		c.Redirect(http.StatusFound, "/movie/edit/"+strconv.Itoa(id))
		return
	}

	if err := h.Repos.Movie.Update(id, title, year); err != nil {
		h.InternalError(c)
		return
	}

	h.flash(c, msgItemUpdated)
	c.Redirect(http.StatusFound, "/")
}

// DeleteMovie 删除电影（仅允许 POST，避免链接预取误删）
func (h *Handler) DeleteMovie(c *gin.Context) {
	id, ok := movieID(c)
	if !ok {
		h.NotFound(c)
		return
	}

	movie, err := h.Repos.Movie.FindByID(id)
	if err != nil {
		h.InternalError(c)
		return
	}
	if movie == nil {
		h.NotFound(c)
		return
	}

	if err := h.Repos.Movie.Delete(id); err != nil {
		h.InternalError(c)
		return
	}

	h.flash(c, msgItemDeleted)
	c.Redirect(http.StatusFound, "/")
}

// ==================== 用户页 ====================

// UserPage 静态问候页，不访问存储
func (h *Handler) UserPage(c *gin.Context) {
	name := c.Param("name")
	c.HTML(http.StatusOK, "user.html", h.RenderData(c, gin.H{
		"Title": name + " - " + h.Config.SiteName,
		"Name":  name,
	}))
}

// ==================== 错误页 ====================

// NotFound 404 页面
func (h *Handler) NotFound(c *gin.Context) {
	c.HTML(http.StatusNotFound, "404.html", h.RenderData(c, gin.H{
		"Title": "404 - " + h.Config.SiteName,
	}))
}

// BadRequest 400 页面
func (h *Handler) BadRequest(c *gin.Context) {
	c.HTML(http.StatusBadRequest, "400.html", h.RenderData(c, gin.H{
		"Title": "400 - " + h.Config.SiteName,
	}))
}

// InternalError 500 页面
func (h *Handler) InternalError(c *gin.Context) {
	c.HTML(http.StatusInternalServerError, "500.html", h.RenderData(c, gin.H{
		"Title": "500 - " + h.Config.SiteName,
	}))
}
