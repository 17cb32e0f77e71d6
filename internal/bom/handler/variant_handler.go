package handler

import (
	"github.com/bitfantasy/garment-bom/internal/bom/repository"
	"github.com/bitfantasy/garment-bom/internal/bom/service"
	"github.com/gin-gonic/gin"
)

type VariantHandler struct {
	svc *service.VariantService
}

func NewVariantHandler(svc *service.VariantService) *VariantHandler {
	return &VariantHandler{svc: svc}
}

// List GET /variants?style_id=
func (h *VariantHandler) List(c *gin.Context) {
	page, pageSize := GetPagination(c)
	params := repository.VariantListParams{
		StyleID:  queryUint(c, "style_id"),
		Page:     page,
		PageSize: pageSize,
	}
	variants, total, err := h.svc.List(c.Request.Context(), params)
	if err != nil {
		InternalError(c, "获取颜色版本列表失败: "+err.Error())
		return
	}
	Paged(c, variants, params.Page, params.PageSize, total)
}

// Get GET /variants/:id （带配料明细与规格明细）
func (h *VariantHandler) Get(c *gin.Context) {
	id, ok := ParseID(c, "id")
	if !ok {
		return
	}
	variant, err := h.svc.GetDetail(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	Success(c, variant)
}

// Create POST /variants
func (h *VariantHandler) Create(c *gin.Context) {
	var input service.CreateVariantInput
	if err := c.ShouldBindJSON(&input); err != nil {
		BadRequest(c, "参数错误: "+err.Error())
		return
	}
	variant, err := h.svc.Create(c.Request.Context(), &input)
	if err != nil {
		respondError(c, err)
		return
	}
	Created(c, variant)
}

// Update PATCH /variants/:id
func (h *VariantHandler) Update(c *gin.Context) {
	id, ok := ParseID(c, "id")
	if !ok {
		return
	}
	var input service.UpdateVariantInput
	if err := c.ShouldBindJSON(&input); err != nil {
		BadRequest(c, "参数错误: "+err.Error())
		return
	}
	variant, err := h.svc.Update(c.Request.Context(), id, &input)
	if err != nil {
		respondError(c, err)
		return
	}
	Success(c, variant)
}

// Delete DELETE /variants/:id （级联子树，颜色名重写释放）
func (h *VariantHandler) Delete(c *gin.Context) {
	id, ok := ParseID(c, "id")
	if !ok {
		return
	}
	variant, err := h.svc.Remove(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	Success(c, variant)
}

// Clone POST /styles/:id/variants/:variantId/clone
func (h *VariantHandler) Clone(c *gin.Context) {
	styleID, ok := ParseID(c, "id")
	if !ok {
		return
	}
	variantID, ok := ParseID(c, "variantId")
	if !ok {
		return
	}

	var input service.CloneVariantInput
	if err := c.ShouldBindJSON(&input); err != nil {
		BadRequest(c, "参数错误: "+err.Error())
		return
	}

	result, err := h.svc.Clone(c.Request.Context(), styleID, variantID, &input)
	if err != nil {
		respondError(c, err)
		return
	}
	Created(c, result)
}
