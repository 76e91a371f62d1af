package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// UserSetField names one side of the follow graph stored on a user document.
type UserSetField string

const (
	FieldFollowing UserSetField = "following"
	FieldFollowers UserSetField = "followers"
)

type User struct {
	ID        bson.ObjectID   `bson:"_id,omitempty" json:"_id"`
	Username  string          `bson:"username" json:"username"`
	Following []bson.ObjectID `bson:"following" json:"following"`
	Followers []bson.ObjectID `bson:"followers" json:"followers"`
	CreatedAt time.Time       `bson:"created_at" json:"createdAt"`
}

// IsFollowing reports whether the user follows id.
func (u *User) IsFollowing(id bson.ObjectID) bool {
	return ContainsID(u.Following, id)
}

// HasFollower reports whether id follows the user.
func (u *User) HasFollower(id bson.ObjectID) bool {
	return ContainsID(u.Followers, id)
}

// ContainsID is a membership test over an id set.
func ContainsID(ids []bson.ObjectID, id bson.ObjectID) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
