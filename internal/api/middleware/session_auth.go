package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"foliocms/internal/database"
	"foliocms/internal/session"
)

const (
	userIDContextKey  = "userID"
	isAdminContextKey = "isAdmin"
	tokenContextKey   = "sessionToken"
)

func abortUnauthorized(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
}

// SessionAuth 将会话 Cookie 解析为用户并注入上下文。
// 无 Cookie、令牌无效或用户已不存在都按未认证处理。
func SessionAuth(store session.Store, db *gorm.DB, cookieName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(cookieName)
		if err != nil || token == "" {
			abortUnauthorized(c)
			return
		}

		ctx := c.Request.Context()
		userID, err := store.Get(ctx, token)
		if err != nil {
			if errors.Is(err, session.ErrNoSession) {
				abortUnauthorized(c)
				return
			}
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
			return
		}

		var user database.User
		if err := db.WithContext(ctx).First(&user, userID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				abortUnauthorized(c)
				return
			}
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
			return
		}

		c.Set(userIDContextKey, user.ID)
		c.Set(isAdminContextKey, user.IsAdmin)
		c.Set(tokenContextKey, token)
		c.Next()
	}
}

// RequireAdmin 在 SessionAuth 之后运行，拒绝非管理员账号。
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		value, ok := c.Get(isAdminContextKey)
		isAdmin, _ := value.(bool)
		if !ok || !isAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "admin privileges required"})
			return
		}
		c.Next()
	}
}

// UserIDFromContext 返回 SessionAuth 注入的用户 id。
func UserIDFromContext(c *gin.Context) (uint, bool) {
	value, exists := c.Get(userIDContextKey)
	if !exists {
		return 0, false
	}
	userID, ok := value.(uint)
	return userID, ok
}

// TokenFromContext 返回当前请求携带的会话令牌。
func TokenFromContext(c *gin.Context) (string, bool) {
	value, exists := c.Get(tokenContextKey)
	if !exists {
		return "", false
	}
	token, ok := value.(string)
	return token, ok
}
