package types

import "time"

// 列表排序方式，来自客户端的三个标签页
const (
	SortAll    = "all"    // 综合（时间+热度加权）
	SortHot    = "hot"    // 点赞数倒序
	SortLatest = "latest" // 时间倒序
)

type CreatePostRequest struct {
	Title   string `json:"title" binding:"required,max=100"`
	Content string `json:"content" binding:"required"`
	Tag     string `json:"tag" binding:"omitempty,max=32"`
}

type CreatePostResponse struct {
	PostID uint64 `json:"post_id,string"`
}

// PostSummary 列表/详情里的帖子视图，统计和点赞状态都已拼装好
type PostSummary struct {
	ID           uint64      `json:"id,string"`
	UserID       uint64      `json:"user_id,string"`
	Title        string      `json:"title"`
	Content      string      `json:"content"`
	Tag          string      `json:"tag"`
	LikeCount    int64       `json:"like_count"`
	CommentCount int64       `json:"comment_count"`
	ViewCount    int64       `json:"view_count"`
	Liked        bool        `json:"liked"`
	LikedBy      []uint64    `json:"liked_by"`
	CreatedAt    time.Time   `json:"created_at"`
	User         UserProfile `json:"user"`
}

type ListPostsResponse struct {
	Posts []*PostSummary `json:"posts"`
}

type ToggleLikeResponse struct {
	Liked bool  `json:"liked"`
	Likes int64 `json:"likes"`
}

type HasLikedResponse struct {
	Liked bool `json:"liked"`
}
