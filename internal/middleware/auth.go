package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// TokenTTL 登录令牌有效期
const TokenTTL = 7 * 24 * time.Hour

// Claims JWT 声明
type Claims struct {
	UserID int    `json:"user_id"`
	Name   string `json:"name"`
	jwt.RegisteredClaims
}

// RequireAuth 必须登录中间件
// 未登录的请求一律重定向回公开的电影列表页，不执行后续处理
func RequireAuth(secretKey string) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, err := extractClaims(c, secretKey)
		if err != nil {
			c.Redirect(http.StatusFound, "/")
			c.Abort()
			return
		}

		// 将用户信息存入上下文
		c.Set("user_id", claims.UserID)
		c.Set("user_name", claims.Name)

		c.Next()
	}
}

// OptionalAuth 可选登录中间件（不强制要求登录）
func OptionalAuth(secretKey string) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, err := extractClaims(c, secretKey)
		if err == nil {
			c.Set("user_id", claims.UserID)
			c.Set("user_name", claims.Name)
		}
		c.Next()
	}
}

// extractClaims 从 Cookie 中提取 JWT Claims
func extractClaims(c *gin.Context, secretKey string) (*Claims, error) {
	tokenString, err := c.Cookie("token")
	if err != nil || tokenString == "" {
		return nil, jwt.ErrTokenMalformed
	}

	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(secretKey), nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, jwt.ErrTokenInvalidClaims
	}

	return claims, nil
}

// GetUserID 从上下文获取用户 ID（未登录返回 0）
func GetUserID(c *gin.Context) int {
	if userID, exists := c.Get("user_id"); exists {
		return userID.(int)
	}
	return 0
}

// GenerateToken 生成 JWT Token
func GenerateToken(userID int, name, secretKey string, expiry time.Duration) (string, error) {
	claims := &Claims{
		UserID: userID,
		Name:   name,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(expiry)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secretKey))
}
