package api

import (
	"log/slog"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"foliocms/internal/api/middleware"
	"foliocms/internal/config"
	"foliocms/internal/content"
	"foliocms/internal/resume"
	"foliocms/internal/session"
)

// RegisterRoutes 注册全部 API 路由。公开简历接口不经过认证；
// 管理端 CRUD 依次经过会话认证与管理员校验。
func RegisterRoutes(
	router *gin.Engine,
	db *gorm.DB,
	stores *content.Stores,
	sessions session.Store,
	redisClient redis.UniversalClient,
	logger *slog.Logger,
	cfg *config.Config,
) {
	authHandler := NewAuthHandler(
		db,
		sessions,
		redisClient,
		logger,
		cfg.Session.CookieName,
		cfg.Session.CookieDomain,
		cfg.Auth.LoginRateLimitPerHour,
	)
	resumeHandler := NewResumeHandler(resume.NewAssembler(stores, logger))
	authMiddleware := middleware.SessionAuth(sessions, db, cfg.Session.CookieName)

	apiGroup := router.Group("/api")
	{
		apiGroup.GET("/resume", resumeHandler.GetResume)

		apiGroup.POST("/register", authHandler.Register)
		apiGroup.POST("/login", authHandler.Login)
		apiGroup.POST("/logout", authHandler.Logout)
		apiGroup.GET("/user", authMiddleware, authHandler.CurrentUser)

		adminGroup := apiGroup.Group("/admin", authMiddleware, middleware.RequireAdmin())
		{
			registerEntityRoutes(adminGroup, "projects", stores.Projects, bindProject)
			registerEntityRoutes(adminGroup, "educations", stores.Educations, bindEducation)
			registerEntityRoutes(adminGroup, "experiences", stores.Experiences, bindExperience)
			registerEntityRoutes(adminGroup, "personal-info", stores.PersonalInfo.Store, bindPersonalInfo)
			registerEntityRoutes(adminGroup, "desired-conditions", stores.DesiredConditions.Store, bindDesiredCondition)
			registerEntityRoutes(adminGroup, "skills", stores.Skills.Store, bindSkill)
			registerEntityRoutes(adminGroup, "keywords", stores.Keywords, bindKeyword)
		}
	}
}
