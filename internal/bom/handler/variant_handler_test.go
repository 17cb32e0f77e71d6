package handler

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/bitfantasy/garment-bom/internal/bom/repository"
	"github.com/bitfantasy/garment-bom/internal/bom/service"
	"github.com/bitfantasy/garment-bom/internal/bom/testutil"
)

func setupBOMTest(t *testing.T) *testutil.TestEnv {
	t.Helper()
	db := testutil.SetupTestDB(t)
	router := testutil.SetupRouter()

	repos := repository.NewRepositories(db)
	styleSvc := service.NewStyleService(repos.Style, repos.Customer)
	variantSvc := service.NewVariantService(repos.Variant, repos.Style)
	bomItemSvc := service.NewBOMItemService(repos.BOMItem, repos.Variant)
	customerSvc := service.NewCustomerService(repos.Customer, repos.Style)
	exportSvc := service.NewExportService(repos.Variant, repos.Style)

	styleHandler := NewStyleHandler(styleSvc, exportSvc)
	variantHandler := NewVariantHandler(variantSvc)
	bomItemHandler := NewBOMItemHandler(bomItemSvc)
	customerHandler := NewCustomerHandler(customerSvc)

	api := testutil.AuthGroup(router, "/api/v1")
	api.GET("/customers", customerHandler.List)
	api.POST("/customers", customerHandler.Create)
	api.PATCH("/customers/:id", customerHandler.Update)
	api.DELETE("/customers/:id", customerHandler.Delete)

	api.GET("/styles", styleHandler.List)
	api.POST("/styles", styleHandler.Create)
	api.GET("/styles/:id", styleHandler.Get)
	api.PATCH("/styles/:id", styleHandler.Update)
	api.DELETE("/styles/:id", styleHandler.Delete)
	api.POST("/styles/:id/variants/:variantId/clone", variantHandler.Clone)
	api.GET("/styles/:id/variants/:variantId/export", styleHandler.ExportVariantBOM)

	api.GET("/variants", variantHandler.List)
	api.POST("/variants", variantHandler.Create)
	api.GET("/variants/:id", variantHandler.Get)
	api.PATCH("/variants/:id", variantHandler.Update)
	api.DELETE("/variants/:id", variantHandler.Delete)

	api.GET("/bom-items", bomItemHandler.List)
	api.POST("/bom-items", bomItemHandler.Create)
	api.GET("/bom-items/:id", bomItemHandler.Get)
	api.PATCH("/bom-items/:id", bomItemHandler.Update)
	api.DELETE("/bom-items/:id", bomItemHandler.Delete)

	return &testutil.TestEnv{DB: db, Router: router, T: t}
}

func mustID(t *testing.T, resp map[string]interface{}) uint {
	t.Helper()
	data, ok := resp["data"].(map[string]interface{})
	if !ok {
		t.Fatalf("Expected data object, got %v", resp)
	}
	id, ok := data["id"].(float64)
	if !ok {
		t.Fatalf("Expected numeric id, got %v", data)
	}
	return uint(id)
}

// 完整业务流：建客户→建款号→建颜色→配料带规格→克隆→删除→名称复用→导出
func TestBOMWorkflow(t *testing.T) {
	env := setupBOMTest(t)
	token := testutil.DefaultTestToken()

	// 客户
	w := testutil.DoRequest(env.Router, "POST", "/api/v1/customers",
		map[string]interface{}{"customer_name": "优衣库"}, token)
	if w.Code != http.StatusCreated {
		t.Fatalf("Expected 201, got %d: %s", w.Code, w.Body.String())
	}
	customerID := mustID(t, testutil.ParseResponse(w))

	// 款号
	w = testutil.DoRequest(env.Router, "POST", "/api/v1/styles",
		map[string]interface{}{
			"style_no": "ST100", "style_name": "连衣裙", "customer_id": customerID,
		}, token)
	if w.Code != http.StatusCreated {
		t.Fatalf("Expected 201, got %d: %s", w.Code, w.Body.String())
	}
	resp := testutil.ParseResponse(w)
	styleID := mustID(t, resp)
	data := resp["data"].(map[string]interface{})
	if data["customer_name"] != "优衣库" {
		t.Errorf("Expected customer_name snapshot, got %v", data["customer_name"])
	}

	// 颜色版本
	w = testutil.DoRequest(env.Router, "POST", "/api/v1/variants",
		map[string]interface{}{
			"style_id": styleID, "color_name": "红色", "size_range": "S/M/L",
		}, token)
	if w.Code != http.StatusCreated {
		t.Fatalf("Expected 201, got %d: %s", w.Code, w.Body.String())
	}
	variantID := mustID(t, testutil.ParseResponse(w))

	// 同名颜色冲突
	w = testutil.DoRequest(env.Router, "POST", "/api/v1/variants",
		map[string]interface{}{"style_id": styleID, "color_name": "红色"}, token)
	if w.Code != http.StatusConflict {
		t.Fatalf("Expected 409, got %d: %s", w.Code, w.Body.String())
	}

	// 配料带规格
	w = testutil.DoRequest(env.Router, "POST", "/api/v1/bom-items",
		map[string]interface{}{
			"variant_id": variantID, "material_name": "拉链",
			"usage": 2, "unit": "条", "supplier": "YKK",
			"spec_details": []map[string]interface{}{
				{"size": "M", "spec_value": "20", "spec_unit": "cm"},
				{"size": "L", "spec_value": "22", "spec_unit": "cm"},
			},
		}, token)
	if w.Code != http.StatusCreated {
		t.Fatalf("Expected 201, got %d: %s", w.Code, w.Body.String())
	}

	// 克隆
	w = testutil.DoRequest(env.Router, "POST",
		fmt.Sprintf("/api/v1/styles/%d/variants/%d/clone", styleID, variantID),
		map[string]interface{}{"new_color_name": "粉色"}, token)
	if w.Code != http.StatusCreated {
		t.Fatalf("Expected 201, got %d: %s", w.Code, w.Body.String())
	}
	resp = testutil.ParseResponse(w)
	cloneData := resp["data"].(map[string]interface{})
	if cloneData["cloned_bom_count"] != float64(1) {
		t.Errorf("Expected cloned_bom_count 1, got %v", cloneData["cloned_bom_count"])
	}
	if cloneData["cloned_spec_count"] != float64(2) {
		t.Errorf("Expected cloned_spec_count 2, got %v", cloneData["cloned_spec_count"])
	}

	// 删除红色，释放名称
	w = testutil.DoRequest(env.Router, "DELETE", fmt.Sprintf("/api/v1/variants/%d", variantID), nil, token)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
	}

	w = testutil.DoRequest(env.Router, "GET", fmt.Sprintf("/api/v1/variants/%d", variantID), nil, token)
	if w.Code != http.StatusNotFound {
		t.Fatalf("Expected 404 after delete, got %d", w.Code)
	}

	// 名称立即可复用
	w = testutil.DoRequest(env.Router, "POST", "/api/v1/variants",
		map[string]interface{}{"style_id": styleID, "color_name": "红色"}, token)
	if w.Code != http.StatusCreated {
		t.Fatalf("Expected 201 on name reuse, got %d: %s", w.Code, w.Body.String())
	}

	// 导出克隆出的颜色版本配料表
	cloneID := uint(cloneData["id"].(float64))
	w = testutil.DoRequest(env.Router, "GET",
		fmt.Sprintf("/api/v1/styles/%d/variants/%d/export", styleID, cloneID), nil, token)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200 on export, got %d: %s", w.Code, w.Body.String())
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet" {
		t.Errorf("Unexpected export content type: %s", ct)
	}
}

func TestVariantUpdateSampleImageNull(t *testing.T) {
	env := setupBOMTest(t)
	token := testutil.DefaultTestToken()

	w := testutil.DoRequest(env.Router, "POST", "/api/v1/styles",
		map[string]interface{}{"style_no": "ST100", "style_name": "连衣裙"}, token)
	styleID := mustID(t, testutil.ParseResponse(w))

	w = testutil.DoRequest(env.Router, "POST", "/api/v1/variants",
		map[string]interface{}{
			"style_id": styleID, "color_name": "红色",
			"sample_image_url": "https://cdn.example.com/red.jpg",
		}, token)
	variantID := mustID(t, testutil.ParseResponse(w))

	// 不带字段：保留
	w = testutil.DoRawRequest(env.Router, "PATCH",
		fmt.Sprintf("/api/v1/variants/%d", variantID), `{"size_range":"M/L"}`, token)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
	}
	data := testutil.ParseResponse(w)["data"].(map[string]interface{})
	if data["sample_image_url"] == nil {
		t.Fatalf("Expected sample image preserved, got nil")
	}

	// 显式null：清空
	w = testutil.DoRawRequest(env.Router, "PATCH",
		fmt.Sprintf("/api/v1/variants/%d", variantID), `{"sample_image_url":null}`, token)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
	}
	data = testutil.ParseResponse(w)["data"].(map[string]interface{})
	if data["sample_image_url"] != nil {
		t.Errorf("Expected sample image cleared, got %v", data["sample_image_url"])
	}
}

func TestVariantRequiresAuth(t *testing.T) {
	env := setupBOMTest(t)

	w := testutil.DoRequest(env.Router, "GET", "/api/v1/variants", nil, "")
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("Expected 401 without token, got %d", w.Code)
	}
}
