package handler

import (
	"github.com/bitfantasy/garment-bom/internal/bom/repository"
	"github.com/bitfantasy/garment-bom/internal/bom/service"
	"github.com/gin-gonic/gin"
)

// RegistryHandler 尺码/单位字典
type RegistryHandler struct {
	sizeSvc *service.SizeService
	unitSvc *service.UnitService
}

func NewRegistryHandler(sizeSvc *service.SizeService, unitSvc *service.UnitService) *RegistryHandler {
	return &RegistryHandler{sizeSvc: sizeSvc, unitSvc: unitSvc}
}

func (h *RegistryHandler) listParams(c *gin.Context) repository.RegistryListParams {
	page, pageSize := GetPagination(c)
	return repository.RegistryListParams{
		Keyword:  c.Query("keyword"),
		IsActive: queryBool(c, "is_active"),
		Page:     page,
		PageSize: pageSize,
	}
}

// ListSizes GET /sizes
func (h *RegistryHandler) ListSizes(c *gin.Context) {
	params := h.listParams(c)
	sizes, total, err := h.sizeSvc.List(c.Request.Context(), params)
	if err != nil {
		InternalError(c, "获取尺码列表失败: "+err.Error())
		return
	}
	Paged(c, sizes, params.Page, params.PageSize, total)
}

// CreateSize POST /sizes
func (h *RegistryHandler) CreateSize(c *gin.Context) {
	var input service.SizeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		BadRequest(c, "参数错误: "+err.Error())
		return
	}
	size, err := h.sizeSvc.Create(c.Request.Context(), &input)
	if err != nil {
		respondError(c, err)
		return
	}
	Created(c, size)
}

// UpdateSize PUT /sizes/:id
func (h *RegistryHandler) UpdateSize(c *gin.Context) {
	id, ok := ParseID(c, "id")
	if !ok {
		return
	}
	var input service.SizeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		BadRequest(c, "参数错误: "+err.Error())
		return
	}
	size, err := h.sizeSvc.Update(c.Request.Context(), id, &input)
	if err != nil {
		respondError(c, err)
		return
	}
	Success(c, size)
}

// DeleteSize DELETE /sizes/:id
func (h *RegistryHandler) DeleteSize(c *gin.Context) {
	id, ok := ParseID(c, "id")
	if !ok {
		return
	}
	if err := h.sizeSvc.Remove(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	Success(c, nil)
}

// ListUnits GET /units
func (h *RegistryHandler) ListUnits(c *gin.Context) {
	params := h.listParams(c)
	units, total, err := h.unitSvc.List(c.Request.Context(), params)
	if err != nil {
		InternalError(c, "获取单位列表失败: "+err.Error())
		return
	}
	Paged(c, units, params.Page, params.PageSize, total)
}

// CreateUnit POST /units
func (h *RegistryHandler) CreateUnit(c *gin.Context) {
	var input service.UnitInput
	if err := c.ShouldBindJSON(&input); err != nil {
		BadRequest(c, "参数错误: "+err.Error())
		return
	}
	unit, err := h.unitSvc.Create(c.Request.Context(), &input)
	if err != nil {
		respondError(c, err)
		return
	}
	Created(c, unit)
}

// UpdateUnit PUT /units/:id
func (h *RegistryHandler) UpdateUnit(c *gin.Context) {
	id, ok := ParseID(c, "id")
	if !ok {
		return
	}
	var input service.UnitInput
	if err := c.ShouldBindJSON(&input); err != nil {
		BadRequest(c, "参数错误: "+err.Error())
		return
	}
	unit, err := h.unitSvc.Update(c.Request.Context(), id, &input)
	if err != nil {
		respondError(c, err)
		return
	}
	Success(c, unit)
}

// DeleteUnit DELETE /units/:id
func (h *RegistryHandler) DeleteUnit(c *gin.Context) {
	id, ok := ParseID(c, "id")
	if !ok {
		return
	}
	if err := h.unitSvc.Remove(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	Success(c, nil)
}
