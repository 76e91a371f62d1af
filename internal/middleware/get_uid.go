package middleware

import (
	"social-webbase/internal/apperror"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/v2/bson"
)

// UIDObjectID reads the user id set by JWTUidOnly as an ObjectID.
func UIDObjectID(c *fiber.Ctx) (bson.ObjectID, error) {
	uid, ok := c.Locals(LocalUserID).(string)
	if !ok || uid == "" {
		return bson.NilObjectID, apperror.Unauthenticated("missing userId in context")
	}

	oid, err := bson.ObjectIDFromHex(uid)
	if err != nil {
		return bson.NilObjectID, apperror.Unauthenticated("user id in token is not an object id")
	}
	return oid, nil
}
