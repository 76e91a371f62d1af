package cmd

import (
	"testing"
	"time"

	"social-webbase/internal/middleware"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"
)

func TestMintToken(t *testing.T) {
	uid := bson.NewObjectID().Hex()
	tok, err := MintToken("s3cret", uid, time.Hour)
	require.NoError(t, err)

	var claims middleware.MyClaims
	parsed, err := jwt.ParseWithClaims(tok, &claims, func(*jwt.Token) (any, error) {
		return []byte("s3cret"), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	require.NoError(t, err)
	assert.True(t, parsed.Valid)
	assert.Equal(t, uid, claims.UID)
	assert.Equal(t, uid, claims.Subject)

	_, err = MintToken("s3cret", "alice", time.Hour)
	assert.Error(t, err)
}
