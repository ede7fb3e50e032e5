package api

import (
	"encoding/json"
	"net/http"
	"strconv"
	"testing"
)

func TestExperienceCrudFlow(t *testing.T) {
	env := newTestEnv(t)
	env.createUser(t, "admin", "admin-password", true)
	cookie := env.login(t, "admin", "admin-password")

	created := env.doJSON(t, http.MethodPost, "/api/admin/experiences", map[string]any{
		"company":      "acme",
		"position":     "engineer",
		"period":       "2020 - 2023",
		"salary":       "1000",
		"achievements": []string{"shipped the thing"},
		"technologies": []string{"Go"},
		"order":        2,
	}, cookie)
	if created.Code != http.StatusCreated {
		t.Fatalf("create: status %d, body %s", created.Code, created.Body.String())
	}
	record := decodeBody(t, created)
	id, ok := record["id"].(float64)
	if !ok || id == 0 {
		t.Fatalf("created record has no id: %v", record)
	}
	idParam := strconv.FormatInt(int64(id), 10)

	listed := env.doJSON(t, http.MethodGet, "/api/admin/experiences", nil, cookie)
	if listed.Code != http.StatusOK {
		t.Fatalf("list: status %d", listed.Code)
	}
	var rows []map[string]any
	if err := json.Unmarshal(listed.Body.Bytes(), &rows); err != nil {
		t.Fatalf("decode list: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(rows))
	}

	// 部分更新：只动 salary，其余字段保持不变。
	updated := env.doJSON(t, http.MethodPut, "/api/admin/experiences/"+idParam, map[string]any{"salary": "2000"}, cookie)
	if updated.Code != http.StatusOK {
		t.Fatalf("update: status %d, body %s", updated.Code, updated.Body.String())
	}
	after := decodeBody(t, updated)
	if after["salary"] != "2000" {
		t.Fatalf("salary not updated: %v", after["salary"])
	}
	if after["company"] != "acme" || after["order"] != float64(2) {
		t.Fatalf("untouched fields changed: %v", after)
	}

	fetched := env.doJSON(t, http.MethodGet, "/api/admin/experiences/"+idParam, nil, cookie)
	if fetched.Code != http.StatusOK {
		t.Fatalf("get: status %d", fetched.Code)
	}

	deleted := env.doJSON(t, http.MethodDelete, "/api/admin/experiences/"+idParam, nil, cookie)
	if deleted.Code != http.StatusOK {
		t.Fatalf("delete: status %d", deleted.Code)
	}
	if body := decodeBody(t, deleted); body["success"] != true {
		t.Fatalf("expected success=true, got %v", body)
	}

	if rec := env.doJSON(t, http.MethodGet, "/api/admin/experiences/"+idParam, nil, cookie); rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 after delete, got %d", rec.Code)
	}

	// 删除不存在的 id 仍然报告成功。
	again := env.doJSON(t, http.MethodDelete, "/api/admin/experiences/"+idParam, nil, cookie)
	if again.Code != http.StatusOK {
		t.Fatalf("repeat delete: status %d", again.Code)
	}
	if body := decodeBody(t, again); body["success"] != true {
		t.Fatalf("expected success=true on repeat delete, got %v", body)
	}
}

func TestContentInvalidIDParam(t *testing.T) {
	env := newTestEnv(t)
	env.createUser(t, "admin", "admin-password", true)
	cookie := env.login(t, "admin", "admin-password")

	for _, method := range []string{http.MethodGet, http.MethodPut, http.MethodDelete} {
		var body any
		if method == http.MethodPut {
			body = map[string]any{"name": "x"}
		}
		rec := env.doJSON(t, method, "/api/admin/projects/not-a-number", body, cookie)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("%s with non-numeric id: expected 400, got %d", method, rec.Code)
		}
	}
}

func TestPersonalInfoSnapshotCrud(t *testing.T) {
	env := newTestEnv(t)
	env.createUser(t, "admin", "admin-password", true)
	cookie := env.login(t, "admin", "admin-password")

	for _, name := range []string{"v1", "v2"} {
		rec := env.doJSON(t, http.MethodPost, "/api/admin/personal-info", map[string]any{
			"name":         name,
			"introduction": []string{"first paragraph", "second paragraph"},
		}, cookie)
		if rec.Code != http.StatusCreated {
			t.Fatalf("create %s: status %d, body %s", name, rec.Code, rec.Body.String())
		}
	}

	rec := env.doJSON(t, http.MethodGet, "/api/admin/personal-info", nil, cookie)
	var rows []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &rows); err != nil {
		t.Fatalf("decode list: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected history of 2 rows, got %d", len(rows))
	}
}

func TestProjectDefaultsImagePath(t *testing.T) {
	env := newTestEnv(t)
	env.createUser(t, "admin", "admin-password", true)
	cookie := env.login(t, "admin", "admin-password")

	rec := env.doJSON(t, http.MethodPost, "/api/admin/projects", map[string]any{"name": "demo"}, cookie)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create: status %d", rec.Code)
	}
	record := decodeBody(t, rec)
	if record["imagePath"] != "/assets/projects/project-placeholder.svg" {
		t.Fatalf("expected placeholder image path, got %v", record["imagePath"])
	}
}
