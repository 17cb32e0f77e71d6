package handler

import (
	"errors"

	"github.com/bitfantasy/garment-bom/internal/bom/service"
	"github.com/gin-gonic/gin"
)

// UploadHandler 图片直传预签名
type UploadHandler struct {
	svc *service.StorageService
}

func NewUploadHandler(svc *service.StorageService) *UploadHandler {
	return &UploadHandler{svc: svc}
}

// Presign POST /uploads/presign
func (h *UploadHandler) Presign(c *gin.Context) {
	if h.svc == nil {
		Error(c, 50300, "对象存储未配置")
		return
	}

	var input service.PresignUploadInput
	if err := c.ShouldBindJSON(&input); err != nil {
		BadRequest(c, "参数错误: "+err.Error())
		return
	}

	result, err := h.svc.PresignUpload(c.Request.Context(), &input)
	if err != nil {
		if errors.Is(err, service.ErrUnsupportedFileType) {
			BadRequest(c, err.Error())
			return
		}
		InternalError(c, err.Error())
		return
	}
	Success(c, result)
}
