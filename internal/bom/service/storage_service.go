package service

import (
	"context"
	"errors"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/bitfantasy/garment-bom/internal/config"
	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// ErrUnsupportedFileType 仅允许上传图片
var ErrUnsupportedFileType = errors.New("仅支持上传图片文件")

// StorageService 对象存储（样衣图、物料图直传）
type StorageService struct {
	client *minio.Client
	cfg    config.MinIOConfig
}

func NewStorageService(cfg config.MinIOConfig) (*StorageService, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("初始化对象存储客户端失败: %w", err)
	}
	return &StorageService{client: client, cfg: cfg}, nil
}

// PresignUploadInput 直传预签名请求
type PresignUploadInput struct {
	Filename    string `json:"filename" binding:"required"`
	ContentType string `json:"content_type" binding:"required"`
	Prefix      string `json:"prefix"` // 业务前缀，如 samples/materials
}

// PresignUploadResult 直传预签名结果
type PresignUploadResult struct {
	UploadURL string `json:"upload_url"`
	Key       string `json:"key"`
	PublicURL string `json:"public_url"`
	ExpiresIn int64  `json:"expires_in"` // 秒
}

// PresignUpload 签发前端直传PUT地址；对象键带日期目录与随机名防覆盖
func (s *StorageService) PresignUpload(ctx context.Context, input *PresignUploadInput) (*PresignUploadResult, error) {
	if !strings.HasPrefix(input.ContentType, "image/") {
		return nil, ErrUnsupportedFileType
	}

	prefix := input.Prefix
	if prefix == "" {
		prefix = "uploads"
	}
	key := fmt.Sprintf("%s/%s/%s%s",
		strings.Trim(prefix, "/"),
		time.Now().Format("2006/01/02"),
		uuid.New().String(),
		strings.ToLower(path.Ext(input.Filename)),
	)

	expire := s.cfg.PresignExpire
	if expire <= 0 {
		expire = 15 * time.Minute
	}
	uploadURL, err := s.client.PresignedPutObject(ctx, s.cfg.Bucket, key, expire)
	if err != nil {
		return nil, fmt.Errorf("签发上传地址失败: %w", err)
	}

	return &PresignUploadResult{
		UploadURL: uploadURL.String(),
		Key:       key,
		PublicURL: s.publicURL(key),
		ExpiresIn: int64(expire.Seconds()),
	}, nil
}

func (s *StorageService) publicURL(key string) string {
	if s.cfg.PublicBaseURL != "" {
		return strings.TrimRight(s.cfg.PublicBaseURL, "/") + "/" + key
	}
	scheme := "http"
	if s.cfg.UseSSL {
		scheme = "https"
	}
	return fmt.Sprintf("%s://%s/%s/%s", scheme, s.cfg.Endpoint, s.cfg.Bucket, key)
}
