package dto

import "go.mongodb.org/mongo-driver/v2/bson"

type ToggleFollowReq struct {
	UserToFollowID string `json:"userToFollow_id" validate:"required,mongodb"`
}

type FollowListResp struct {
	UserID bson.ObjectID   `json:"userId"`
	Users  []bson.ObjectID `json:"users"`
	Count  int             `json:"count"`
}
