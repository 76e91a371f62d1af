package cmd

import (
	"social-webbase/bootstrap"
	"social-webbase/database"

	"github.com/spf13/cobra"
)

var indexesCmd = &cobra.Command{
	Use:   "indexes",
	Short: "Create the MongoDB indexes and exit",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, log, err := setup()
		if err != nil {
			return err
		}
		client, err := database.ConnectMongo(cmd.Context(), cfg.MongoURI)
		if err != nil {
			return err
		}
		defer client.Disconnect(cmd.Context())

		if err := bootstrap.EnsureIndexes(cmd.Context(), client.Database(cfg.MongoDB)); err != nil {
			return err
		}
		log.Info("indexes ensured", "db", cfg.MongoDB)
		return nil
	},
}
