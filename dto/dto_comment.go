package dto

import "social-webbase/internal/models"

type CommentContentReq struct {
	Content string `json:"content" validate:"required,max=2000"`
}

type ReplyToCommentReq struct {
	CommentID string `json:"commentId" validate:"required,mongodb"`
	Content   string `json:"content" validate:"required,max=2000"`
}

type ListCommentsResp struct {
	Comments   []models.Comment `json:"comments"`
	NextCursor *string          `json:"next_cursor"`
	HasMore    bool             `json:"has_more"`
}
