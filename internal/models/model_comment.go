package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type Comment struct {
	ID        bson.ObjectID   `json:"id" bson:"_id,omitempty"`
	PostID    bson.ObjectID   `json:"postId" bson:"post_id"`
	UserID    bson.ObjectID   `json:"userId" bson:"user_id"`
	Content   string          `json:"content" bson:"content"`
	LikedBy   []bson.ObjectID `json:"likedBy" bson:"liked_by"`
	Replies   []Reply         `json:"replies" bson:"replies"`
	CreatedAt time.Time       `json:"createdAt" bson:"created_at"`
	UpdatedAt time.Time       `json:"updatedAt" bson:"updated_at"`
}

// Reply lives inside its parent comment; its id is only meaningful there.
type Reply struct {
	ID        bson.ObjectID   `json:"id" bson:"_id"`
	UserID    bson.ObjectID   `json:"userId" bson:"user_id"`
	Content   string          `json:"content" bson:"content"`
	LikedBy   []bson.ObjectID `json:"likedBy" bson:"liked_by"`
	CreatedAt time.Time       `json:"createdAt" bson:"created_at"`
}

// FindReply returns the embedded reply with the given id.
func (c *Comment) FindReply(id bson.ObjectID) (*Reply, bool) {
	for i := range c.Replies {
		if c.Replies[i].ID == id {
			return &c.Replies[i], true
		}
	}
	return nil, false
}

// Page selects a window of comments in creation order. A zero Limit means
// no limit; a zero AfterID means start from the oldest comment.
type Page struct {
	AfterTime time.Time
	AfterID   bson.ObjectID
	Limit     int64
}
