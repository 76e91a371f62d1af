// Package seed fills a store with fake users, posts, follows and comments for
// local runs.
package seed

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"social-webbase/internal/models"
	"social-webbase/internal/services"

	"github.com/brianvoe/gofakeit/v6"
	"go.mongodb.org/mongo-driver/v2/bson"
)

type UserInserter interface {
	Insert(ctx context.Context, u *models.User) error
}

type PostInserter interface {
	Insert(ctx context.Context, p *models.Post) error
}

type Options struct {
	Users        int
	PostsPerUser int

	// Follows is the number of follow toggles attempted between random users.
	Follows int

	// Comments is the number of comments spread over random posts.
	Comments int
	Seed     int64
}

type Result struct {
	Users    []bson.ObjectID
	Posts    []bson.ObjectID
	Follows  int
	Comments int
}

type Seeder struct {
	Users   UserInserter
	Posts   PostInserter
	Follow  *services.FollowService
	Comment *services.CommentService
	Log     *slog.Logger
}

func (s *Seeder) Run(ctx context.Context, opts Options) (*Result, error) {
	log := s.Log
	if log == nil {
		log = slog.Default()
	}
	faker := gofakeit.New(opts.Seed)
	res := &Result{}

	for i := 0; i < opts.Users; i++ {
		u := &models.User{
			// suffix keeps usernames unique under the users index
			Username:  fmt.Sprintf("%s_%d", strings.ToLower(faker.Username()), i),
			Following: []bson.ObjectID{},
			Followers: []bson.ObjectID{},
			CreatedAt: time.Now().UTC(),
		}
		if err := s.Users.Insert(ctx, u); err != nil {
			return res, fmt.Errorf("insert user: %w", err)
		}
		res.Users = append(res.Users, u.ID)

		for j := 0; j < opts.PostsPerUser; j++ {
			at := time.Now().UTC()
			p := &models.Post{
				UserID:    u.ID,
				PostText:  faker.Sentence(faker.Number(4, 16)),
				LikedBy:   []bson.ObjectID{},
				CreatedAt: at,
				UpdatedAt: at,
			}
			if err := s.Posts.Insert(ctx, p); err != nil {
				return res, fmt.Errorf("insert post: %w", err)
			}
			res.Posts = append(res.Posts, p.ID)
		}
	}

	if len(res.Users) > 1 && s.Follow != nil {
		for i := 0; i < opts.Follows; i++ {
			a := res.Users[faker.Number(0, len(res.Users)-1)]
			b := res.Users[faker.Number(0, len(res.Users)-1)]
			if a == b {
				continue
			}
			if _, err := s.Follow.ToggleFollow(ctx, a, b); err != nil {
				return res, fmt.Errorf("seed follow: %w", err)
			}
			res.Follows++
		}
	}

	if len(res.Posts) > 0 && s.Comment != nil {
		for i := 0; i < opts.Comments; i++ {
			author := res.Users[faker.Number(0, len(res.Users)-1)]
			post := res.Posts[faker.Number(0, len(res.Posts)-1)]
			if _, err := s.Comment.AddComment(ctx, author, post, faker.Sentence(faker.Number(3, 12))); err != nil {
				return res, fmt.Errorf("seed comment: %w", err)
			}
			res.Comments++
		}
	}

	log.Info("seed complete",
		"users", len(res.Users), "posts", len(res.Posts),
		"follow_toggles", res.Follows, "comments", res.Comments)
	return res, nil
}
