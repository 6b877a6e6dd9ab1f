package handler

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/user/watchlist/internal/middleware"
	"github.com/user/watchlist/internal/model"
)

// LoginPage 登录页面
func (h *Handler) LoginPage(c *gin.Context) {
	// 已登录直接回到列表页
	if middleware.GetUserID(c) > 0 {
		c.Redirect(http.StatusFound, "/")
		return
	}

	c.HTML(http.StatusOK, "login.html", h.RenderData(c, gin.H{
		"Title": "Login - " + h.Config.SiteName,
	}))
}

// Login 登录处理
// 用户不存在、密码错误、字段为空统一返回同一条提示，不泄露账号是否存在
func (h *Handler) Login(c *gin.Context) {
	if err := c.Request.ParseForm(); err != nil {
		h.BadRequest(c)
		return
	}

	var form loginForm
	if err := c.ShouldBind(&form); err != nil {
		h.flash(c, msgInvalidInput)
		c.Redirect(http.StatusFound, "/login")
		return
	}

	user, err := h.Repos.User.Get()
	if err != nil {
		h.InternalError(c)
		return
	}

	if user == nil || form.Username != user.UserName || !h.Repos.User.CheckPassword(user, form.Password) {
		h.flash(c, msgInvalidInput)
		c.Redirect(http.StatusFound, "/login")
		return
	}

	// 生成签名令牌并写入 Cookie
	token, err := middleware.GenerateToken(user.ID, user.Name, h.Config.SecretKey, middleware.TokenTTL)
	if err != nil {
		h.InternalError(c)
		return
	}
	c.SetCookie("token", token, int(middleware.TokenTTL.Seconds()), "/", "", false, true)

	// 保存 UserInfo 到 Session
	session := sessions.Default(c)
	session.Set("userinfo", model.SessionUser{
		ID:   user.ID,
		Name: user.Name,
	})
	session.AddFlash(msgLoginSuccess)
	session.Save()

	c.Redirect(http.StatusFound, "/")
}

// Logout 登出（无条件成功，即使当前没有会话）
func (h *Handler) Logout(c *gin.Context) {
	c.SetCookie("token", "", -1, "/", "", false, true)

	session := sessions.Default(c)
	session.Delete("userinfo")
	session.AddFlash(msgLogoutSuccess)
	session.Save()

	c.Redirect(http.StatusFound, "/")
}

// SettingsPage 设置页面
func (h *Handler) SettingsPage(c *gin.Context) {
	user, err := h.Repos.User.Get()
	if err != nil || user == nil {
		h.InternalError(c)
		return
	}

	c.HTML(http.StatusOK, "settings.html", h.RenderData(c, gin.H{
		"Title": "Settings - " + h.Config.SiteName,
		"User":  user,
	}))
}

// UpdateSettings 修改显示名称
func (h *Handler) UpdateSettings(c *gin.Context) {
	userID := middleware.GetUserID(c)

	if err := c.Request.ParseForm(); err != nil {
		h.BadRequest(c)
		return
	}

	var form settingsForm
	if err := c.ShouldBind(&form); err != nil {
		h.flash(c, msgInvalidInput)
		c.Redirect(http.StatusFound, "/settings")
		return
	}

	if err := h.Repos.User.UpdateName(userID, form.Name); err != nil {
		h.InternalError(c)
		return
	}

	// 同步 Session 中的显示名称
	session := sessions.Default(c)
	if userinfo := session.Get("userinfo"); userinfo != nil {
		if su, ok := userinfo.(model.SessionUser); ok {
			su.Name = form.Name
			session.Set("userinfo", su)
		}
	}
	session.AddFlash(msgSettingsUpdated)
	session.Save()

	c.Redirect(http.StatusFound, "/")
}
