package handler

import (
	"net/http"
	"strconv"

	"campuswall/config"
	"campuswall/middleware"
	"campuswall/pkg/context"
	"campuswall/pkg/response"
	"campuswall/service"
	"campuswall/types"

	"github.com/gin-gonic/gin"
)

type Resource struct {
	Config          *config.Config
	ResourceService service.IResourceService
}

func (r *Resource) RegisterRouter(router gin.IRouter) {
	authorize := middleware.Auth([]byte(r.Config.Jwt.Secret))

	g := router.Group("/v1/resources")
	g.GET("", context.Wrap(r.ListResources))
	g.POST("", authorize, context.Wrap(r.CreateResource))
	g.POST("/:id/download", context.Wrap(r.RecordDownload))
}

// ListResources 资料列表，query: category/offset/limit
func (r *Resource) ListResources(c *gin.Context) error {
	category := c.Query("category")

	offset := 0
	if v, err := strconv.Atoi(c.Query("offset")); err == nil && v > 0 {
		offset = v
	}
	limit := 20
	if v, err := strconv.Atoi(c.Query("limit")); err == nil && v > 0 && v <= 100 {
		limit = v
	}

	result, err := r.ResourceService.ListResources(c.Request.Context(), category, offset, limit)
	if err != nil {
		return wrapServiceError(err)
	}
	response.Success(c, result)
	return nil
}

// CreateResource 上传资料元数据
func (r *Resource) CreateResource(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, err.Error())
	}

	var req types.CreateResourceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "参数格式错误: "+err.Error())
	}

	resourceID, err := r.ResourceService.CreateResource(c.Request.Context(), userID, &req)
	if err != nil {
		return wrapServiceError(err)
	}
	response.Success(c, gin.H{"resource_id": strconv.FormatUint(resourceID, 10)})
	return nil
}

// RecordDownload 下载计数 +1
func (r *Resource) RecordDownload(c *gin.Context) error {
	resourceID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || resourceID == 0 {
		return response.NewError(http.StatusBadRequest, "id 参数错误")
	}

	downloads, err := r.ResourceService.RecordDownload(c.Request.Context(), resourceID)
	if err != nil {
		return wrapServiceError(err)
	}
	response.Success(c, types.DownloadResponse{Downloads: downloads})
	return nil
}
