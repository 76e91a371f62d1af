package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"
)

func TestPostDocumentFields(t *testing.T) {
	raw, err := bson.Marshal(Post{
		ID:        bson.NewObjectID(),
		UserID:    bson.NewObjectID(),
		PostText:  "hello",
		LikedBy:   []bson.ObjectID{},
		CreatedAt: time.Now().UTC(),
		UpdatedAt: time.Now().UTC(),
	})
	require.NoError(t, err)

	elems, err := bson.Raw(raw).Elements()
	require.NoError(t, err)
	keys := make([]string, 0, len(elems))
	for _, e := range elems {
		keys = append(keys, e.Key())
	}
	assert.Equal(t, []string{"_id", "user_id", "post_text", "liked_by", "views", "created_at", "updated_at"}, keys)
}
