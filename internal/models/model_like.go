package models

import (
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type LikeKind string

const (
	LikePost    LikeKind = "post"
	LikeComment LikeKind = "comment"
	LikeReply   LikeKind = "reply"
)

// LikeTarget addresses the liked_by set being toggled. ReplyID is only used
// with LikeReply, where ID is the parent comment.
type LikeTarget struct {
	Kind    LikeKind
	ID      bson.ObjectID
	ReplyID bson.ObjectID
}

func (t LikeTarget) Validate() error {
	switch t.Kind {
	case LikePost, LikeComment:
		return nil
	case LikeReply:
		if t.ReplyID.IsZero() {
			return fmt.Errorf("reply target requires a reply id")
		}
		return nil
	default:
		return fmt.Errorf("invalid like target kind %q", t.Kind)
	}
}

type LikeState struct {
	Liked     bool `json:"liked"`
	LikeCount int  `json:"likeCount"`
}

// StateFor derives the toggle result for actor from a persisted liked_by set.
func StateFor(likedBy []bson.ObjectID, actor bson.ObjectID) LikeState {
	return LikeState{Liked: ContainsID(likedBy, actor), LikeCount: len(likedBy)}
}
