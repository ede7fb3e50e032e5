package content

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"foliocms/internal/database"
	"foliocms/internal/errcode"
)

var testDBCounter atomic.Int64

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:content_store_%d?mode=memory&cache=shared", testDBCounter.Add(1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func TestSnapshotStore_LatestReturnsMaxID(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	stores := NewStores(db)

	for _, name := range []string{"first", "second", "third"} {
		if err := stores.PersonalInfo.Create(ctx, &database.PersonalInfo{Name: name}); err != nil {
			t.Fatalf("create personal info: %v", err)
		}
	}

	latest, err := stores.PersonalInfo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if latest.ID != 3 || latest.Name != "third" {
		t.Fatalf("expected row 3 (%q), got %d (%q)", "third", latest.ID, latest.Name)
	}
}

func TestSnapshotStore_LatestOnEmptyTable(t *testing.T) {
	stores := NewStores(newTestDB(t))
	if _, err := stores.DesiredConditions.Latest(context.Background()); !errors.Is(err, errcode.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestOrderedStore_ListSortsByOrderStable(t *testing.T) {
	ctx := context.Background()
	stores := NewStores(newTestDB(t))

	// 插入顺序：order 2, order 1, order 1。排序应为两个 order 1
	// 按插入顺序在前，order 2 在后。
	rows := []database.Experience{
		{Company: "late", DisplayOrder: 2},
		{Company: "first-of-ties", DisplayOrder: 1},
		{Company: "second-of-ties", DisplayOrder: 1},
	}
	for i := range rows {
		if err := stores.Experiences.Create(ctx, &rows[i]); err != nil {
			t.Fatalf("create experience: %v", err)
		}
	}

	listed, err := stores.Experiences.List(ctx)
	if err != nil {
		t.Fatalf("list experiences: %v", err)
	}
	want := []string{"first-of-ties", "second-of-ties", "late"}
	if len(listed) != len(want) {
		t.Fatalf("expected %d rows, got %d", len(want), len(listed))
	}
	for i, company := range want {
		if listed[i].Company != company {
			t.Fatalf("position %d: expected %q, got %q", i, company, listed[i].Company)
		}
	}
}

func TestStore_DeleteIsIdempotent(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	stores := NewStores(db)

	for _, name := range []string{"Go", "C++"} {
		if err := stores.Skills.Create(ctx, &database.Skill{Category: "programming", Name: name}); err != nil {
			t.Fatalf("create skill: %v", err)
		}
	}

	success, err := stores.Skills.Delete(ctx, 999)
	if err != nil {
		t.Fatalf("delete missing skill: %v", err)
	}
	if !success {
		t.Fatal("deleting a missing id must still report success")
	}

	var count int64
	if err := db.Model(&database.Skill{}).Count(&count).Error; err != nil {
		t.Fatalf("count skills: %v", err)
	}
	if count != 2 {
		t.Fatalf("expected 2 skills after no-op delete, got %d", count)
	}
}

func TestStore_UpdateMergesOnlySuppliedFields(t *testing.T) {
	ctx := context.Background()
	stores := NewStores(newTestDB(t))

	record := database.Experience{
		Company:      "acme",
		Position:     "engineer",
		Salary:       "1000",
		DisplayOrder: 5,
	}
	if err := stores.Experiences.Create(ctx, &record); err != nil {
		t.Fatalf("create experience: %v", err)
	}

	updated, err := stores.Experiences.Update(ctx, record.ID, map[string]any{"salary": "2000"})
	if err != nil {
		t.Fatalf("update experience: %v", err)
	}

	if updated.Salary != "2000" {
		t.Fatalf("expected updated salary, got %q", updated.Salary)
	}
	if updated.Company != "acme" || updated.Position != "engineer" || updated.DisplayOrder != 5 {
		t.Fatalf("untouched fields changed: %+v", updated)
	}
	if updated.UpdatedAt.Before(record.UpdatedAt) {
		t.Fatal("updatedAt must not go backwards")
	}
}

func TestStore_UpdateMissingRow(t *testing.T) {
	stores := NewStores(newTestDB(t))
	if _, err := stores.Projects.Update(context.Background(), 404, map[string]any{"name": "x"}); !errors.Is(err, errcode.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestSkillStore_ByCategory(t *testing.T) {
	ctx := context.Background()
	stores := NewStores(newTestDB(t))

	seedSkills := []database.Skill{
		{Category: "programming", Name: "C++"},
		{Category: "server", Name: "TCP/IP"},
		{Category: "programming", Name: "Go"},
	}
	for i := range seedSkills {
		if err := stores.Skills.Create(ctx, &seedSkills[i]); err != nil {
			t.Fatalf("create skill: %v", err)
		}
	}

	programming, err := stores.Skills.ByCategory(ctx, "programming")
	if err != nil {
		t.Fatalf("by category: %v", err)
	}
	if len(programming) != 2 || programming[0].Name != "C++" || programming[1].Name != "Go" {
		t.Fatalf("unexpected programming skills: %+v", programming)
	}

	// 未知分类不报错，返回空列表。
	unknown, err := stores.Skills.ByCategory(ctx, "devops")
	if err != nil {
		t.Fatalf("unknown category: %v", err)
	}
	if len(unknown) != 0 {
		t.Fatalf("expected empty list for unknown category, got %d rows", len(unknown))
	}
}
