package content

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"foliocms/internal/database"
	"foliocms/internal/errcode"
)

// Store 是面向单个内容实体的通用 CRUD 存取层。
// 带排序字段的实体按 display_order 升序、id 升序（稳定并列）排列，
// 其余实体按插入顺序（id 升序）排列。
type Store[M any] struct {
	db      *gorm.DB
	ordered bool
}

// NewStore 构造按插入顺序排列的存取层。
func NewStore[M any](db *gorm.DB) *Store[M] {
	return &Store[M]{db: db}
}

// NewOrderedStore 构造按 display_order 排列的存取层。
func NewOrderedStore[M any](db *gorm.DB) *Store[M] {
	return &Store[M]{db: db, ordered: true}
}

// Create 插入一条记录，id 与时间戳由存储层分配。
func (s *Store[M]) Create(ctx context.Context, record *M) error {
	if err := s.db.WithContext(ctx).Create(record).Error; err != nil {
		return fmt.Errorf("create record: %w", err)
	}
	return nil
}

// Get 按 id 取单条记录，不存在时返回 errcode.ErrNotFound。
func (s *Store[M]) Get(ctx context.Context, id uint) (*M, error) {
	var record M
	if err := s.db.WithContext(ctx).First(&record, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errcode.ErrNotFound
		}
		return nil, fmt.Errorf("get record: %w", err)
	}
	return &record, nil
}

// List 返回全部记录。
func (s *Store[M]) List(ctx context.Context) ([]M, error) {
	records := make([]M, 0)
	query := s.db.WithContext(ctx)
	if s.ordered {
		query = query.Order("display_order asc, id asc")
	} else {
		query = query.Order("id asc")
	}
	if err := query.Find(&records).Error; err != nil {
		return nil, fmt.Errorf("list records: %w", err)
	}
	return records, nil
}

// Update 将提供的字段合并进已有记录并刷新 updatedAt，
// 返回更新后的完整记录。
func (s *Store[M]) Update(ctx context.Context, id uint, updates map[string]any) (*M, error) {
	record, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if len(updates) == 0 {
		updates = map[string]any{"updated_at": time.Now()}
	}
	if err := s.db.WithContext(ctx).Model(record).Updates(updates).Error; err != nil {
		return nil, fmt.Errorf("update record: %w", err)
	}

	return s.Get(ctx, id)
}

// Delete 按 id 删除记录。删除不存在的 id 同样报告成功。
func (s *Store[M]) Delete(ctx context.Context, id uint) (bool, error) {
	var record M
	if err := s.db.WithContext(ctx).Delete(&record, id).Error; err != nil {
		return false, fmt.Errorf("delete record: %w", err)
	}
	return true, nil
}

// SkillStore 在通用存取层上增加按分类过滤。
type SkillStore struct {
	*Store[database.Skill]
}

// ByCategory 按分类等值过滤。未知分类不报错，返回空列表。
func (s *SkillStore) ByCategory(ctx context.Context, category string) ([]database.Skill, error) {
	skills := make([]database.Skill, 0)
	if err := s.db.WithContext(ctx).
		Where("category = ?", category).
		Order("id asc").
		Find(&skills).Error; err != nil {
		return nil, fmt.Errorf("list skills by category: %w", err)
	}
	return skills, nil
}

// SnapshotStore 服务于"最新一行即当前版本"的快照实体。
type SnapshotStore[M any] struct {
	*Store[M]
}

// Latest 返回 id 最大的一行，表为空时返回 errcode.ErrNotFound。
func (s *SnapshotStore[M]) Latest(ctx context.Context) (*M, error) {
	var record M
	if err := s.db.WithContext(ctx).Order("id desc").First(&record).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errcode.ErrNotFound
		}
		return nil, fmt.Errorf("latest record: %w", err)
	}
	return &record, nil
}

// Stores 聚合全部内容实体的存取层，显式注入到处理器中。
type Stores struct {
	PersonalInfo      *SnapshotStore[database.PersonalInfo]
	DesiredConditions *SnapshotStore[database.DesiredCondition]
	Skills            *SkillStore
	Keywords          *Store[database.Keyword]
	Experiences       *Store[database.Experience]
	Educations        *Store[database.Education]
	Projects          *Store[database.Project]
}

// NewStores 基于同一个数据库句柄构造全部存取层。
func NewStores(db *gorm.DB) *Stores {
	return &Stores{
		PersonalInfo:      &SnapshotStore[database.PersonalInfo]{NewStore[database.PersonalInfo](db)},
		DesiredConditions: &SnapshotStore[database.DesiredCondition]{NewStore[database.DesiredCondition](db)},
		Skills:            &SkillStore{NewStore[database.Skill](db)},
		Keywords:          NewStore[database.Keyword](db),
		Experiences:       NewOrderedStore[database.Experience](db),
		Educations:        NewOrderedStore[database.Education](db),
		Projects:          NewOrderedStore[database.Project](db),
	}
}
