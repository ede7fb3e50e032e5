package seed

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"gorm.io/gorm"

	"foliocms/internal/auth"
	"foliocms/internal/config"
	"foliocms/internal/database"
)

// Run 迁移表结构并幂等地写入种子数据：管理员/普通账号，
// 以及每张空内容表的一组示例行。重复执行不会产生重复数据。
func Run(ctx context.Context, db *gorm.DB, cfg config.SeedConfig, logger *slog.Logger) error {
	if logger == nil {
		logger = slog.Default()
	}

	if err := database.Migrate(db); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}

	admin, err := ensureUser(ctx, db, logger, cfg.AdminUsername, cfg.AdminPassword, true)
	if err != nil {
		return fmt.Errorf("seed admin user: %w", err)
	}
	if cfg.UserUsername != "" {
		if _, err := ensureUser(ctx, db, logger, cfg.UserUsername, cfg.UserPassword, false); err != nil {
			return fmt.Errorf("seed default user: %w", err)
		}
	}

	if err := seedContent(ctx, db, logger, admin.ID); err != nil {
		return err
	}

	return nil
}

func ensureUser(ctx context.Context, db *gorm.DB, logger *slog.Logger, username, password string, isAdmin bool) (*database.User, error) {
	var user database.User
	err := db.WithContext(ctx).Where("username = ?", username).First(&user).Error
	if err == nil {
		return &user, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("lookup user %q: %w", username, err)
	}

	hashed, err := auth.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user = database.User{Username: username, PasswordHash: hashed, IsAdmin: isAdmin}
	if err := db.WithContext(ctx).Create(&user).Error; err != nil {
		return nil, fmt.Errorf("create user %q: %w", username, err)
	}
	logger.Info("seeded user", slog.String("username", username), slog.Bool("is_admin", isAdmin))
	return &user, nil
}

// seedContent 为每张空表插入一组示例行，已有数据的表保持不动。
func seedContent(ctx context.Context, db *gorm.DB, logger *slog.Logger, adminID uint) error {
	steps := []struct {
		name   string
		model  any
		insert func() error
	}{
		{
			name:  "personal_infos",
			model: &database.PersonalInfo{},
			insert: func() error {
				return db.WithContext(ctx).Create(&database.PersonalInfo{
					Name:          "홍길동",
					Title:         "서버 개발자",
					Experience:    "10년",
					DesiredSalary: "협의 가능",
					Email:         "hello@example.com",
					Phone:         "010-0000-0000",
					Location:      "서울",
					Military:      "군필",
					Introduction:  mustJSONStrings("서버 네트워크 모듈 개발 및 기본 프레임워크 개발이 가능합니다."),
				}).Error
			},
		},
		{
			name:  "desired_conditions",
			model: &database.DesiredCondition{},
			insert: func() error {
				return db.WithContext(ctx).Create(&database.DesiredCondition{
					Field:          "서버 개발",
					EmploymentType: "정규직",
					Location:       "서울 전지역",
				}).Error
			},
		},
		{
			name:  "skills",
			model: &database.Skill{},
			insert: func() error {
				return db.WithContext(ctx).Create(&[]database.Skill{
					{Category: database.SkillCategoryProgramming, Name: "C++", Level: "advanced"},
					{Category: database.SkillCategoryServer, Name: "TCP/IP Networking", Level: "advanced"},
				}).Error
			},
		},
		{
			name:  "keywords",
			model: &database.Keyword{},
			insert: func() error {
				return db.WithContext(ctx).Create(&[]database.Keyword{
					{Keyword: "네트워크"},
					{Keyword: "DB"},
				}).Error
			},
		},
		{
			name:  "experiences",
			model: &database.Experience{},
			insert: func() error {
				return db.WithContext(ctx).Create(&database.Experience{
					UserID:       adminID,
					Company:      "예시 회사",
					Position:     "서버 개발자",
					Period:       "2020.01 - 2023.12",
					Salary:       "협의",
					Achievements: mustJSONStrings("서버 아키텍처 개선"),
					Technologies: mustJSONStrings("C++", "MSSQL"),
					DisplayOrder: 1,
				}).Error
			},
		},
		{
			name:  "educations",
			model: &database.Education{},
			insert: func() error {
				return db.WithContext(ctx).Create(&database.Education{
					UserID:       adminID,
					Institution:  "예시 대학교",
					Type:         "university",
					Period:       "2010 - 2014",
					Major:        "컴퓨터공학",
					DisplayOrder: 1,
				}).Error
			},
		},
		{
			name:  "projects",
			model: &database.Project{},
			insert: func() error {
				return db.WithContext(ctx).Create(&database.Project{
					UserID:       adminID,
					Name:         "예시 프로젝트",
					Company:      "예시 회사",
					Period:       "2022 - 2023",
					Description:  "서버 성능 최적화 프로젝트",
					Technologies: mustJSONStrings("C++", "MSSQL"),
					DisplayOrder: 1,
				}).Error
			},
		},
	}

	for _, step := range steps {
		var count int64
		if err := db.WithContext(ctx).Model(step.model).Count(&count).Error; err != nil {
			return fmt.Errorf("count %s: %w", step.name, err)
		}
		if count > 0 {
			continue
		}
		if err := step.insert(); err != nil {
			return fmt.Errorf("seed %s: %w", step.name, err)
		}
		logger.Info("seeded sample rows", slog.String("table", step.name))
	}

	return nil
}
