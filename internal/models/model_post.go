package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type Post struct {
	ID        bson.ObjectID   `json:"id" bson:"_id,omitempty"`
	UserID    bson.ObjectID   `json:"userId" bson:"user_id"`
	PostText  string          `json:"postText" bson:"post_text"`
	LikedBy   []bson.ObjectID `json:"likedBy" bson:"liked_by"`
	Views     int64           `json:"views" bson:"views"`
	CreatedAt time.Time       `json:"createdAt" bson:"created_at"`
	UpdatedAt time.Time       `json:"updatedAt" bson:"updated_at"`
}
