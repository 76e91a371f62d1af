package seed

import (
	"context"
	"testing"

	"social-webbase/internal/models"
	"social-webbase/internal/repository/memory"
	"social-webbase/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedKeepsFollowGraphSymmetric(t *testing.T) {
	s := memory.New()
	seeder := &Seeder{
		Users:   s.Users(),
		Posts:   s.Posts(),
		Follow:  services.NewFollowService(s, s.Users(), nil),
		Comment: services.NewCommentService(s.Posts(), s.Comments(), nil),
	}

	res, err := seeder.Run(context.Background(), Options{Users: 6, PostsPerUser: 2, Follows: 30, Comments: 10, Seed: 42})
	require.NoError(t, err)
	assert.Len(t, res.Users, 6)
	assert.Len(t, res.Posts, 12)
	assert.Equal(t, 10, res.Comments)

	ctx := context.Background()
	for _, id := range res.Users {
		u, err := s.Users().FindByID(ctx, id)
		require.NoError(t, err)
		for _, other := range u.Following {
			o, err := s.Users().FindByID(ctx, other)
			require.NoError(t, err)
			assert.True(t, models.ContainsID(o.Followers, id))
		}
	}
}
