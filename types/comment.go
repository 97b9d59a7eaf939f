package types

import "time"

// 评论长度上限，和客户端输入框一致
const MaxCommentLength = 500

type CreateCommentRequest struct {
	Content string `json:"content" binding:"required,max=500"`
}

type CommentResponse struct {
	ID        uint64      `json:"id,string"`
	PostID    uint64      `json:"post_id,string"`
	UserID    uint64      `json:"user_id,string"`
	Content   string      `json:"content"`
	CreatedAt time.Time   `json:"created_at"`
	User      UserProfile `json:"user"`
}

type CommentsListResponse struct {
	Comments []*CommentResponse `json:"comments"`
}
