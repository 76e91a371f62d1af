package cmd

import (
	"context"
	"fmt"
	"log/slog"

	"social-webbase/bootstrap"
	"social-webbase/config"
	"social-webbase/database"
	"social-webbase/internal/repository"
	"social-webbase/internal/repository/memory"
	"social-webbase/internal/seed"
	"social-webbase/internal/services"
)

// backend is the set of services bound to one entity store.
type backend struct {
	follows  *services.FollowService
	likes    *services.LikeService
	comments *services.CommentService
	posts    *services.PostService

	users    seed.UserInserter
	postsIns seed.PostInserter
	close    func(context.Context) error
}

func openBackend(ctx context.Context, cfg config.Config, log *slog.Logger) (*backend, error) {
	if cfg.Store == config.StoreMemory {
		log.Warn("using in-memory store; data is lost on exit")
		s := memory.New()
		return &backend{
			follows:  services.NewFollowService(s, s.Users(), log),
			likes:    services.NewLikeService(s.Likes(), s.Comments()),
			comments: services.NewCommentService(s.Posts(), s.Comments(), log),
			posts:    services.NewPostService(s.Posts()),
			users:    s.Users(),
			postsIns: s.Posts(),
			close:    func(context.Context) error { return nil },
		}, nil
	}

	client, err := database.ConnectMongo(ctx, cfg.MongoURI)
	if err != nil {
		return nil, err
	}
	log.Info("connected to MongoDB", "db", cfg.MongoDB)

	if err := bootstrap.EnsureIndexes(ctx, client.Database(cfg.MongoDB)); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("ensure indexes failed: %w", err)
	}

	m := repository.New(client, cfg.MongoDB)
	return &backend{
		follows:  services.NewFollowService(m, m.Users, log),
		likes:    services.NewLikeService(m.Likes, m.Comments),
		comments: services.NewCommentService(m.Posts, m.Comments, log),
		posts:    services.NewPostService(m.Posts),
		users:    m.Users,
		postsIns: m.Posts,
		close:    client.Disconnect,
	}, nil
}
