package handler

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/bitfantasy/garment-bom/internal/bom/repository"
	"github.com/bitfantasy/garment-bom/internal/bom/service"
	"github.com/bitfantasy/garment-bom/internal/bom/testutil"
)

func setupRegistryTest(t *testing.T) *testutil.TestEnv {
	t.Helper()
	db := testutil.SetupTestDB(t)
	router := testutil.SetupRouter()

	repos := repository.NewRepositories(db)
	h := NewRegistryHandler(service.NewSizeService(repos.Size), service.NewUnitService(repos.Unit))

	api := testutil.AuthGroup(router, "/api/v1")
	api.GET("/sizes", h.ListSizes)
	api.POST("/sizes", h.CreateSize)
	api.PUT("/sizes/:id", h.UpdateSize)
	api.DELETE("/sizes/:id", h.DeleteSize)
	api.GET("/units", h.ListUnits)
	api.POST("/units", h.CreateUnit)
	api.PUT("/units/:id", h.UpdateUnit)
	api.DELETE("/units/:id", h.DeleteUnit)

	return &testutil.TestEnv{DB: db, Router: router, T: t}
}

func listItems(t *testing.T, resp map[string]interface{}) []interface{} {
	t.Helper()
	data, ok := resp["data"].(map[string]interface{})
	if !ok {
		t.Fatalf("Expected data object, got %v", resp)
	}
	items, ok := data["items"].([]interface{})
	if !ok {
		t.Fatalf("Expected items array, got %v", data)
	}
	return items
}

func TestSizeRegistryCRUD(t *testing.T) {
	env := setupRegistryTest(t)
	token := testutil.DefaultTestToken()

	w := testutil.DoRequest(env.Router, "POST", "/api/v1/sizes",
		map[string]interface{}{"size_code": "M", "size_name": "中码", "sort_order": 2}, token)
	if w.Code != http.StatusCreated {
		t.Fatalf("Expected 201, got %d: %s", w.Code, w.Body.String())
	}
	sizeID := mustID(t, testutil.ParseResponse(w))

	// 缺少必填字段
	w = testutil.DoRequest(env.Router, "POST", "/api/v1/sizes",
		map[string]interface{}{"size_code": "L"}, token)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("Expected 400 on missing size_name, got %d: %s", w.Code, w.Body.String())
	}

	// 停用
	w = testutil.DoRequest(env.Router, "PUT", fmt.Sprintf("/api/v1/sizes/%d", sizeID),
		map[string]interface{}{"size_code": "M", "size_name": "中码", "is_active": false}, token)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
	}
	data := testutil.ParseResponse(w)["data"].(map[string]interface{})
	if data["is_active"] != false {
		t.Errorf("Expected is_active false, got %v", data["is_active"])
	}

	// 按启用状态过滤
	w = testutil.DoRequest(env.Router, "GET", "/api/v1/sizes?is_active=true", nil, token)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", w.Code)
	}
	if items := listItems(t, testutil.ParseResponse(w)); len(items) != 0 {
		t.Errorf("Expected no active sizes, got %d", len(items))
	}

	w = testutil.DoRequest(env.Router, "DELETE", fmt.Sprintf("/api/v1/sizes/%d", sizeID), nil, token)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
	}

	w = testutil.DoRequest(env.Router, "GET", "/api/v1/sizes", nil, token)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", w.Code)
	}
	if items := listItems(t, testutil.ParseResponse(w)); len(items) != 0 {
		t.Errorf("Expected empty size list after delete, got %d entries", len(items))
	}
}

func TestUnitRegistryCRUD(t *testing.T) {
	env := setupRegistryTest(t)
	token := testutil.DefaultTestToken()

	w := testutil.DoRequest(env.Router, "POST", "/api/v1/units",
		map[string]interface{}{"unit_code": "m", "unit_name": "米"}, token)
	if w.Code != http.StatusCreated {
		t.Fatalf("Expected 201, got %d: %s", w.Code, w.Body.String())
	}
	unitID := mustID(t, testutil.ParseResponse(w))

	w = testutil.DoRequest(env.Router, "PUT", fmt.Sprintf("/api/v1/units/%d", unitID),
		map[string]interface{}{"unit_code": "m", "unit_name": "公尺"}, token)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
	}
	data := testutil.ParseResponse(w)["data"].(map[string]interface{})
	if data["unit_name"] != "公尺" {
		t.Errorf("Expected renamed unit, got %v", data["unit_name"])
	}

	// 未知ID返回404
	w = testutil.DoRequest(env.Router, "DELETE", "/api/v1/units/9999", nil, token)
	if w.Code != http.StatusNotFound {
		t.Fatalf("Expected 404, got %d: %s", w.Code, w.Body.String())
	}
}
