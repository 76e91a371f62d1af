package bootstrap

import (
	"testing"

	"social-webbase/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"
)

func TestIndexes(t *testing.T) {
	idx := Indexes()
	require.Len(t, idx, 3)

	comments := idx[repository.ColComments]
	require.Len(t, comments, 1)
	assert.Equal(t, bson.D{
		{Key: "post_id", Value: 1},
		{Key: "created_at", Value: 1},
		{Key: "_id", Value: 1},
	}, comments[0].Keys)

	users := idx[repository.ColUsers]
	require.Len(t, users, 1)
	assert.Equal(t, bson.D{{Key: "username", Value: 1}}, users[0].Keys)

	assert.Contains(t, idx, repository.ColPosts)
}
