package handler

import (
	"github.com/bitfantasy/garment-bom/internal/bom/repository"
	"github.com/bitfantasy/garment-bom/internal/bom/service"
	"github.com/gin-gonic/gin"
)

type BOMItemHandler struct {
	svc *service.BOMItemService
}

func NewBOMItemHandler(svc *service.BOMItemService) *BOMItemHandler {
	return &BOMItemHandler{svc: svc}
}

// List GET /bom-items?variant_id=
func (h *BOMItemHandler) List(c *gin.Context) {
	page, pageSize := GetPagination(c)
	params := repository.BOMItemListParams{
		VariantID: queryUint(c, "variant_id"),
		Page:      page,
		PageSize:  pageSize,
	}
	items, total, err := h.svc.List(c.Request.Context(), params)
	if err != nil {
		InternalError(c, "获取配料明细列表失败: "+err.Error())
		return
	}
	Paged(c, items, params.Page, params.PageSize, total)
}

// Get GET /bom-items/:id
func (h *BOMItemHandler) Get(c *gin.Context) {
	id, ok := ParseID(c, "id")
	if !ok {
		return
	}
	item, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	Success(c, item)
}

// Create POST /bom-items
func (h *BOMItemHandler) Create(c *gin.Context) {
	var input service.CreateBOMItemInput
	if err := c.ShouldBindJSON(&input); err != nil {
		BadRequest(c, "参数错误: "+err.Error())
		return
	}
	item, err := h.svc.Create(c.Request.Context(), &input)
	if err != nil {
		respondError(c, err)
		return
	}
	Created(c, item)
}

// Update PATCH /bom-items/:id
func (h *BOMItemHandler) Update(c *gin.Context) {
	id, ok := ParseID(c, "id")
	if !ok {
		return
	}
	var input service.UpdateBOMItemInput
	if err := c.ShouldBindJSON(&input); err != nil {
		BadRequest(c, "参数错误: "+err.Error())
		return
	}
	item, err := h.svc.Update(c.Request.Context(), id, &input)
	if err != nil {
		respondError(c, err)
		return
	}
	Success(c, item)
}

// Delete DELETE /bom-items/:id （规格明细一并硬删除）
func (h *BOMItemHandler) Delete(c *gin.Context) {
	id, ok := ParseID(c, "id")
	if !ok {
		return
	}
	item, err := h.svc.Remove(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	Success(c, item)
}

// ListSpecs GET /bom-items/:id/specs
func (h *BOMItemHandler) ListSpecs(c *gin.Context) {
	id, ok := ParseID(c, "id")
	if !ok {
		return
	}
	specs, err := h.svc.ListSpecs(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	Success(c, gin.H{"items": specs})
}

// CreateSpec POST /bom-items/:id/specs
func (h *BOMItemHandler) CreateSpec(c *gin.Context) {
	id, ok := ParseID(c, "id")
	if !ok {
		return
	}
	var input service.SpecDetailInput
	if err := c.ShouldBindJSON(&input); err != nil {
		BadRequest(c, "参数错误: "+err.Error())
		return
	}
	spec, err := h.svc.CreateSpec(c.Request.Context(), id, &input)
	if err != nil {
		respondError(c, err)
		return
	}
	Created(c, spec)
}

// UpdateSpec PUT /spec-details/:id
func (h *BOMItemHandler) UpdateSpec(c *gin.Context) {
	id, ok := ParseID(c, "id")
	if !ok {
		return
	}
	var input service.SpecDetailInput
	if err := c.ShouldBindJSON(&input); err != nil {
		BadRequest(c, "参数错误: "+err.Error())
		return
	}
	spec, err := h.svc.UpdateSpec(c.Request.Context(), id, &input)
	if err != nil {
		respondError(c, err)
		return
	}
	Success(c, spec)
}

// DeleteSpec DELETE /spec-details/:id
func (h *BOMItemHandler) DeleteSpec(c *gin.Context) {
	id, ok := ParseID(c, "id")
	if !ok {
		return
	}
	if err := h.svc.RemoveSpec(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	Success(c, nil)
}
