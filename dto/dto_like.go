package dto

type TogglePostLikeReq struct {
	PostID string `json:"postId" validate:"required,mongodb"`
}

type ToggleReplyLikeReq struct {
	CommentID string `json:"commentId" validate:"required,mongodb"`
	ReplyID   string `json:"replyId" validate:"required,mongodb"`
}

type PostLikesReq struct {
	PostID string `json:"postId" validate:"required,mongodb"`
}
