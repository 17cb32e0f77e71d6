package main

import (
	"net/http"

	"github.com/bitfantasy/garment-bom/internal/bom/handler"
	"github.com/bitfantasy/garment-bom/internal/config"
	"github.com/bitfantasy/garment-bom/internal/middleware"
	"github.com/gin-gonic/gin"
)

func registerRoutes(r *gin.Engine, h *handler.Handlers, cfg *config.Config) {
	// 健康检查
	r.GET("/health/live", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/health/ready", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// 版本信息
	r.GET("/version", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"version":    Version,
			"build_time": BuildTime,
		})
	})

	// API v1
	v1 := r.Group("/api/v1")
	{
		// 认证 (无需登录)
		auth := v1.Group("/auth")
		{
			auth.POST("/login", h.Auth.Login)
			auth.POST("/refresh", h.Auth.Refresh)
		}

		// 需要认证的接口
		authorized := v1.Group("")
		authorized.Use(middleware.JWTAuth(cfg.JWT.Secret))
		{
			// 当前用户
			authorized.GET("/auth/profile", h.Auth.Profile)
			authorized.POST("/auth/logout", h.Auth.Logout)
			authorized.POST("/auth/change-password", h.Auth.ChangePassword)

			// 客户
			customers := authorized.Group("/customers")
			{
				customers.GET("", h.Customer.List)
				customers.POST("", h.Customer.Create)
				customers.GET("/:id", h.Customer.Get)
				customers.PATCH("/:id", h.Customer.Update)
				customers.DELETE("/:id", h.Customer.Delete)
			}

			// 款号
			styles := authorized.Group("/styles")
			{
				styles.GET("", h.Style.List)
				styles.POST("", h.Style.Create)
				styles.GET("/:id", h.Style.Get)
				styles.PATCH("/:id", h.Style.Update)
				styles.DELETE("/:id", h.Style.Delete)

				// 颜色版本克隆与配料表导出（按款号定位）
				styles.POST("/:id/variants/:variantId/clone", h.Variant.Clone)
				styles.GET("/:id/variants/:variantId/export", h.Style.ExportVariantBOM)
			}

			// 颜色版本
			variants := authorized.Group("/variants")
			{
				variants.GET("", h.Variant.List)
				variants.POST("", h.Variant.Create)
				variants.GET("/:id", h.Variant.Get)
				variants.PATCH("/:id", h.Variant.Update)
				variants.DELETE("/:id", h.Variant.Delete)
			}

			// 配料明细
			bomItems := authorized.Group("/bom-items")
			{
				bomItems.GET("", h.BOMItem.List)
				bomItems.POST("", h.BOMItem.Create)
				bomItems.GET("/:id", h.BOMItem.Get)
				bomItems.PATCH("/:id", h.BOMItem.Update)
				bomItems.DELETE("/:id", h.BOMItem.Delete)
				bomItems.GET("/:id/specs", h.BOMItem.ListSpecs)
				bomItems.POST("/:id/specs", h.BOMItem.CreateSpec)
			}

			// 规格明细（单条操作）
			specDetails := authorized.Group("/spec-details")
			{
				specDetails.PUT("/:id", h.BOMItem.UpdateSpec)
				specDetails.DELETE("/:id", h.BOMItem.DeleteSpec)
			}

			// 字典
			sizes := authorized.Group("/sizes")
			{
				sizes.GET("", h.Registry.ListSizes)
				sizes.POST("", h.Registry.CreateSize)
				sizes.PUT("/:id", h.Registry.UpdateSize)
				sizes.DELETE("/:id", h.Registry.DeleteSize)
			}
			units := authorized.Group("/units")
			{
				units.GET("", h.Registry.ListUnits)
				units.POST("", h.Registry.CreateUnit)
				units.PUT("/:id", h.Registry.UpdateUnit)
				units.DELETE("/:id", h.Registry.DeleteUnit)
			}

			// 图片直传
			uploads := authorized.Group("/uploads")
			{
				uploads.POST("/presign", h.Upload.Presign)
			}
		}
	}
}
