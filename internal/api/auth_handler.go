package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"foliocms/internal/api/middleware"
	"foliocms/internal/auth"
	"foliocms/internal/database"
	"foliocms/internal/session"
)

// AuthHandler 处理注册、登录、注销与当前用户查询。
type AuthHandler struct {
	db                    *gorm.DB
	sessions              session.Store
	rateCounter           redisRateCounter
	logger                *slog.Logger
	cookieName            string
	cookieDomain          string
	loginRateLimitPerHour int
}

// NewAuthHandler 构造认证处理器。redisClient 为 nil 时关闭登录限速。
func NewAuthHandler(db *gorm.DB, sessions session.Store, redisClient redis.UniversalClient, logger *slog.Logger, cookieName, cookieDomain string, loginRateLimitPerHour int) *AuthHandler {
	return &AuthHandler{
		db:                    db,
		sessions:              sessions,
		rateCounter:           redisClient,
		logger:                logger,
		cookieName:            cookieName,
		cookieDomain:          cookieDomain,
		loginRateLimitPerHour: loginRateLimitPerHour,
	}
}

type registerRequest struct {
	Username string `json:"username" binding:"required,min=3,max=64"`
	Password string `json:"password" binding:"required,min=6,max=72"`
}

// Register 创建新的非管理员账号。用户名冲突返回 400。
func (h *AuthHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, err.Error())
		return
	}

	ctx := c.Request.Context()
	logger := h.loggerFromContext(c).With(
		slog.String("username", req.Username),
	)

	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		logger.Error("hash password failed", slog.Any("error", err))
		Internal(c, "internal error")
		return
	}

	user := database.User{
		Username:     req.Username,
		PasswordHash: hashed,
	}

	// 用户名冲突由唯一索引报告，并发注册同名也只会拿到 400。
	if err := h.db.WithContext(ctx).Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			logger.Info("register conflict: username taken")
			BadRequest(c, "username already taken")
			return
		}
		logger.Error("create user failed", slog.Any("error", err))
		Internal(c, "internal error")
		return
	}

	logger.Info("user registered", slog.Uint64("user_id", uint64(user.ID)))
	c.JSON(http.StatusCreated, user)
}

type loginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login 校验用户名口令并建立服务端会话。
// 未知用户与口令错误返回同一个 401，不暴露差别。
func (h *AuthHandler) Login(c *gin.Context) {
	ip := c.ClientIP()
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, err.Error())
		return
	}

	ctx := c.Request.Context()
	logger := h.loggerFromContext(c).With(
		slog.String("username", req.Username),
	)

	// 速率限制：每 IP+用户名 每小时 N 次，计数器故障放行。
	if h.rateCounter != nil && h.loginRateLimitPerHour > 0 {
		rateKey := "rate:login:" + ip + ":" + strings.ToLower(req.Username) + ":" + time.Now().UTC().Format("2006010215")
		count, err := incrWithTTL(ctx, h.rateCounter, rateKey, time.Hour)
		if err != nil {
			count = 0
		}
		if count > int64(h.loginRateLimitPerHour) {
			c.JSON(http.StatusTooManyRequests, gin.H{"error": "rate limit exceeded"})
			return
		}
	}

	var user database.User
	if err := h.db.WithContext(ctx).Where("username = ?", req.Username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			logger.Info("login failed: user not found")
			Error(c, http.StatusUnauthorized, "invalid credentials")
			return
		}
		logger.Error("login query failed", slog.Any("error", err))
		Internal(c, "internal error")
		return
	}

	if !auth.CheckPasswordHash(req.Password, user.PasswordHash) {
		logger.Info("login failed: password mismatch", slog.Uint64("user_id", uint64(user.ID)))
		Error(c, http.StatusUnauthorized, "invalid credentials")
		return
	}

	token, err := h.sessions.Create(ctx, user.ID)
	if err != nil {
		logger.Error("create session failed", slog.Any("error", err))
		Internal(c, "internal error")
		return
	}

	h.setSessionCookie(c, token)
	logger.Info("login succeeded", slog.Uint64("user_id", uint64(user.ID)))
	c.JSON(http.StatusOK, user)
}

// Logout 注销当前会话并清除 Cookie。重复注销仍然返回 200。
func (h *AuthHandler) Logout(c *gin.Context) {
	ctx := c.Request.Context()
	logger := h.loggerFromContext(c)

	if token, err := c.Cookie(h.cookieName); err == nil && token != "" {
		if err := h.sessions.Delete(ctx, token); err != nil {
			logger.Error("delete session failed", slog.Any("error", err))
			Internal(c, "internal error")
			return
		}
	}

	h.clearSessionCookie(c)
	c.Status(http.StatusOK)
}

// CurrentUser 返回当前会话对应的用户，要求先经过 SessionAuth。
func (h *AuthHandler) CurrentUser(c *gin.Context) {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		Unauthorized(c)
		return
	}

	var user database.User
	if err := h.db.WithContext(c.Request.Context()).First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			Unauthorized(c)
			return
		}
		Internal(c, "internal error")
		return
	}

	c.JSON(http.StatusOK, user)
}

func (h *AuthHandler) setSessionCookie(c *gin.Context, token string) {
	// 无 MaxAge：会话在服务端存活到注销为止，Cookie 跟随浏览器会话。
	http.SetCookie(c.Writer, &http.Cookie{
		Name:     h.cookieName,
		Value:    token,
		Path:     "/",
		Secure:   h.isHTTPSRequest(c),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Domain:   h.getCookieDomain(),
	})
}

func (h *AuthHandler) clearSessionCookie(c *gin.Context) {
	http.SetCookie(c.Writer, &http.Cookie{
		Name:     h.cookieName,
		Value:    "",
		MaxAge:   -1,
		Path:     "/",
		Secure:   h.isHTTPSRequest(c),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Domain:   h.getCookieDomain(),
	})
}

func (h *AuthHandler) loggerFromContext(c *gin.Context) *slog.Logger {
	if logger := middleware.LoggerFromContext(c); logger != nil {
		return logger
	}
	if h.logger != nil {
		return h.logger
	}
	return slog.Default()
}

func (h *AuthHandler) isHTTPSRequest(c *gin.Context) bool {
	if c.Request == nil {
		return false
	}
	if c.Request.TLS != nil {
		return true
	}
	return strings.EqualFold(c.Request.Header.Get("X-Forwarded-Proto"), "https")
}

func (h *AuthHandler) getCookieDomain() string { return strings.TrimSpace(h.cookieDomain) }

type redisRateCounter interface {
	Incr(ctx context.Context, key string) *redis.IntCmd
	ExpireNX(ctx context.Context, key string, expiration time.Duration) *redis.BoolCmd
}

// incrWithTTL 自增计数键并确保其带有过期时间。过期时间以 NX 方式
// 补挂：之前某次自增后没来得及设置 TTL，这里也会重新挂上。
func incrWithTTL(ctx context.Context, client redisRateCounter, key string, ttl time.Duration) (int64, error) {
	count, err := client.Incr(ctx, key).Result()
	if err != nil {
		return 0, err
	}
	_ = client.ExpireNX(ctx, key, ttl).Err()
	return count, nil
}
