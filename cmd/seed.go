package cmd

import (
	"context"
	"time"

	"social-webbase/config"
	"social-webbase/internal/seed"

	"github.com/spf13/cobra"
)

var seedOpts seed.Options

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Insert fake users, posts, follows and comments",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, log, err := setup()
		if err != nil {
			return err
		}
		if cfg.Store == config.StoreMemory {
			log.Warn("seeding the in-memory store only lasts for this process")
		}

		be, err := openBackend(cmd.Context(), cfg, log)
		if err != nil {
			return err
		}
		defer func() {
			c, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = be.close(c)
		}()

		s := &seed.Seeder{
			Users:   be.users,
			Posts:   be.postsIns,
			Follow:  be.follows,
			Comment: be.comments,
			Log:     log,
		}
		_, err = s.Run(cmd.Context(), seedOpts)
		return err
	},
}

func init() {
	f := seedCmd.Flags()
	f.IntVar(&seedOpts.Users, "users", 20, "number of users")
	f.IntVar(&seedOpts.PostsPerUser, "posts", 3, "posts per user")
	f.IntVar(&seedOpts.Follows, "follows", 60, "follow toggles between random users")
	f.IntVar(&seedOpts.Comments, "comments", 40, "comments on random posts")
	f.Int64Var(&seedOpts.Seed, "seed", time.Now().UnixNano(), "random seed")
}
