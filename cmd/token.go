package cmd

import (
	"fmt"
	"time"

	"social-webbase/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/spf13/cobra"
	"go.mongodb.org/mongo-driver/v2/bson"
)

var (
	tokenUID string
	tokenTTL time.Duration
)

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Mint an HS256 bearer token for local testing",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := config.LoadConfig()
		if err != nil {
			return err
		}
		tok, err := MintToken(cfg.JWTSecret, tokenUID, tokenTTL)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), tok)
		return nil
	},
}

func init() {
	tokenCmd.Flags().StringVar(&tokenUID, "uid", "", "user id (hex ObjectID)")
	tokenCmd.Flags().DurationVar(&tokenTTL, "ttl", 24*time.Hour, "token lifetime")
	_ = tokenCmd.MarkFlagRequired("uid")
}

// MintToken signs a token carrying uid the way the auth middleware expects.
func MintToken(secret, uid string, ttl time.Duration) (string, error) {
	if _, err := bson.ObjectIDFromHex(uid); err != nil {
		return "", fmt.Errorf("uid must be a hex ObjectID: %w", err)
	}
	now := time.Now()
	claims := jwt.MapClaims{
		"uid": uid,
		"sub": uid,
		"iat": now.Unix(),
		"exp": now.Add(ttl).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}
