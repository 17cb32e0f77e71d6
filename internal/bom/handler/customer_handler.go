package handler

import (
	"github.com/bitfantasy/garment-bom/internal/bom/repository"
	"github.com/bitfantasy/garment-bom/internal/bom/service"
	"github.com/gin-gonic/gin"
)

type CustomerHandler struct {
	svc *service.CustomerService
}

func NewCustomerHandler(svc *service.CustomerService) *CustomerHandler {
	return &CustomerHandler{svc: svc}
}

// List GET /customers
func (h *CustomerHandler) List(c *gin.Context) {
	page, pageSize := GetPagination(c)
	params := repository.CustomerListParams{
		Keyword:  c.Query("keyword"),
		IsActive: queryBool(c, "is_active"),
		Page:     page,
		PageSize: pageSize,
	}
	customers, total, err := h.svc.List(c.Request.Context(), params)
	if err != nil {
		InternalError(c, "获取客户列表失败: "+err.Error())
		return
	}
	Paged(c, customers, params.Page, params.PageSize, total)
}

// Get GET /customers/:id
func (h *CustomerHandler) Get(c *gin.Context) {
	id, ok := ParseID(c, "id")
	if !ok {
		return
	}
	customer, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	Success(c, customer)
}

// Create POST /customers
func (h *CustomerHandler) Create(c *gin.Context) {
	var input service.CreateCustomerInput
	if err := c.ShouldBindJSON(&input); err != nil {
		BadRequest(c, "参数错误: "+err.Error())
		return
	}
	customer, err := h.svc.Create(c.Request.Context(), &input)
	if err != nil {
		respondError(c, err)
		return
	}
	Created(c, customer)
}

// Update PATCH /customers/:id
func (h *CustomerHandler) Update(c *gin.Context) {
	id, ok := ParseID(c, "id")
	if !ok {
		return
	}
	var input service.UpdateCustomerInput
	if err := c.ShouldBindJSON(&input); err != nil {
		BadRequest(c, "参数错误: "+err.Error())
		return
	}
	customer, err := h.svc.Update(c.Request.Context(), id, &input)
	if err != nil {
		respondError(c, err)
		return
	}
	Success(c, customer)
}

// Delete DELETE /customers/:id
func (h *CustomerHandler) Delete(c *gin.Context) {
	id, ok := ParseID(c, "id")
	if !ok {
		return
	}
	customer, err := h.svc.Remove(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	Success(c, customer)
}
