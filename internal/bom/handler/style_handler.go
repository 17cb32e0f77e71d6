package handler

import (
	"github.com/bitfantasy/garment-bom/internal/bom/repository"
	"github.com/bitfantasy/garment-bom/internal/bom/service"
	"github.com/gin-gonic/gin"
)

type StyleHandler struct {
	svc       *service.StyleService
	exportSvc *service.ExportService
}

func NewStyleHandler(svc *service.StyleService, exportSvc *service.ExportService) *StyleHandler {
	return &StyleHandler{svc: svc, exportSvc: exportSvc}
}

// List GET /styles
func (h *StyleHandler) List(c *gin.Context) {
	page, pageSize := GetPagination(c)
	params := repository.StyleListParams{
		StyleNo:    c.Query("style_no"),
		StyleName:  c.Query("style_name"),
		CustomerID: queryUint(c, "customer_id"),
		Keyword:    c.Query("keyword"),
		Page:       page,
		PageSize:   pageSize,
	}
	styles, total, err := h.svc.List(c.Request.Context(), params)
	if err != nil {
		InternalError(c, "获取款号列表失败: "+err.Error())
		return
	}
	Paged(c, styles, params.Page, params.PageSize, total)
}

// Get GET /styles/:id （带活跃颜色版本）
func (h *StyleHandler) Get(c *gin.Context) {
	id, ok := ParseID(c, "id")
	if !ok {
		return
	}
	style, err := h.svc.GetDetail(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	Success(c, style)
}

// Create POST /styles
func (h *StyleHandler) Create(c *gin.Context) {
	var input service.CreateStyleInput
	if err := c.ShouldBindJSON(&input); err != nil {
		BadRequest(c, "参数错误: "+err.Error())
		return
	}
	style, err := h.svc.Create(c.Request.Context(), &input, GetUserName(c))
	if err != nil {
		respondError(c, err)
		return
	}
	Created(c, style)
}

// Update PATCH /styles/:id
func (h *StyleHandler) Update(c *gin.Context) {
	id, ok := ParseID(c, "id")
	if !ok {
		return
	}
	var input service.UpdateStyleInput
	if err := c.ShouldBindJSON(&input); err != nil {
		BadRequest(c, "参数错误: "+err.Error())
		return
	}
	style, err := h.svc.Update(c.Request.Context(), id, &input, GetUserName(c))
	if err != nil {
		respondError(c, err)
		return
	}
	Success(c, style)
}

// Delete DELETE /styles/:id （级联整棵子树）
func (h *StyleHandler) Delete(c *gin.Context) {
	id, ok := ParseID(c, "id")
	if !ok {
		return
	}
	style, err := h.svc.Remove(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	Success(c, style)
}

// ExportVariantBOM GET /styles/:id/variants/:variantId/export
func (h *StyleHandler) ExportVariantBOM(c *gin.Context) {
	styleID, ok := ParseID(c, "id")
	if !ok {
		return
	}
	variantID, ok := ParseID(c, "variantId")
	if !ok {
		return
	}

	f, filename, err := h.exportSvc.ExportVariantBOM(c.Request.Context(), styleID, variantID)
	if err != nil {
		respondError(c, err)
		return
	}
	defer f.Close()

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", "attachment; filename=\""+filename+"\"")
	c.Header("Content-Transfer-Encoding", "binary")

	if err := f.Write(c.Writer); err != nil {
		InternalError(c, "write excel: "+err.Error())
	}
}
