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

type Post struct {
	Config      *config.Config
	PostService service.IPostService
	FeedService service.IFeedService
	Engagement  service.IEngagementService
}

func (p *Post) RegisterRouter(r gin.IRouter) {
	secret := []byte(p.Config.Jwt.Secret)
	authorize := middleware.Auth(secret)
	optional := middleware.OptionalAuth(secret)

	g := r.Group("/v1/posts")
	g.GET("", optional, context.Wrap(p.ListPosts))
	g.POST("", authorize, context.Wrap(p.CreatePost))
	g.GET("/:id", optional, context.Wrap(p.GetPost))
	g.DELETE("/:id", authorize, context.Wrap(p.DeletePost))
	g.POST("/:id/like", authorize, context.Wrap(p.ToggleLike))
	g.GET("/:id/like", authorize, context.Wrap(p.HasLiked))
	g.POST("/:id/comments", authorize, context.Wrap(p.CreateComment))
	g.GET("/:id/comments", context.Wrap(p.ListComments))
}

// ListPosts 帖子列表，query: tag/sort/offset/limit
func (p *Post) ListPosts(c *gin.Context) error {
	tag := c.Query("tag")
	sortBy := c.DefaultQuery("sort", types.SortLatest)

	offset := 0
	if v, err := strconv.Atoi(c.Query("offset")); err == nil && v > 0 {
		offset = v
	}
	limit := 20
	if v, err := strconv.Atoi(c.Query("limit")); err == nil && v > 0 && v <= 100 {
		limit = v
	}

	// 未登录 currentUserID 为 0，liked 恒为 false
	currentUserID, _ := context.GetUserID(c)

	result, err := p.FeedService.ListPosts(c.Request.Context(), tag, sortBy, offset, limit, currentUserID)
	if err != nil {
		return wrapServiceError(err)
	}
	response.Success(c, result)
	return nil
}

// CreatePost 发帖
func (p *Post) CreatePost(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, err.Error())
	}

	var req types.CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "参数格式错误: "+err.Error())
	}

	postID, err := p.PostService.CreatePost(c.Request.Context(), userID, &req)
	if err != nil {
		return wrapServiceError(err)
	}

	response.Success(c, types.CreatePostResponse{PostID: postID})
	return nil
}

// GetPost 帖子详情，每次请求浏览数 +1
func (p *Post) GetPost(c *gin.Context) error {
	postID, err := parseID(c)
	if err != nil {
		return err
	}
	currentUserID, _ := context.GetUserID(c)

	post, err := p.FeedService.GetPost(c.Request.Context(), postID, currentUserID)
	if err != nil {
		return wrapServiceError(err)
	}
	response.Success(c, post)
	return nil
}

// DeletePost 删帖，仅作者
func (p *Post) DeletePost(c *gin.Context) error {
	postID, err := parseID(c)
	if err != nil {
		return err
	}
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, err.Error())
	}

	if err := p.PostService.DeletePost(c.Request.Context(), userID, postID); err != nil {
		return wrapServiceError(err)
	}
	response.Success(c, nil)
	return nil
}

// ToggleLike 点赞/取消点赞
func (p *Post) ToggleLike(c *gin.Context) error {
	postID, err := parseID(c)
	if err != nil {
		return err
	}
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, err.Error())
	}

	result, err := p.Engagement.ToggleLike(c.Request.Context(), userID, postID)
	if err != nil {
		return wrapServiceError(err)
	}
	response.Success(c, result)
	return nil
}

// HasLiked 当前用户是否点赞过
func (p *Post) HasLiked(c *gin.Context) error {
	postID, err := parseID(c)
	if err != nil {
		return err
	}
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, err.Error())
	}

	liked, err := p.Engagement.HasLiked(c.Request.Context(), userID, postID)
	if err != nil {
		return wrapServiceError(err)
	}
	response.Success(c, types.HasLikedResponse{Liked: liked})
	return nil
}

// CreateComment 评论
func (p *Post) CreateComment(c *gin.Context) error {
	postID, err := parseID(c)
	if err != nil {
		return err
	}
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, err.Error())
	}

	var req types.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "参数格式错误: "+err.Error())
	}

	comment, err := p.Engagement.RecordComment(c.Request.Context(), postID, userID, req.Content)
	if err != nil {
		return wrapServiceError(err)
	}
	response.Success(c, comment)
	return nil
}

// ListComments 评论列表，时间正序
func (p *Post) ListComments(c *gin.Context) error {
	postID, err := parseID(c)
	if err != nil {
		return err
	}

	comments, err := p.Engagement.ListComments(c.Request.Context(), postID)
	if err != nil {
		return wrapServiceError(err)
	}
	response.Success(c, types.CommentsListResponse{Comments: comments})
	return nil
}

func parseID(c *gin.Context) (uint64, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return 0, response.NewError(http.StatusBadRequest, "id 参数错误")
	}
	return id, nil
}
