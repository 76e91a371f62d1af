package controllers

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"social-webbase/dto"
	"social-webbase/internal/apperror"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/v2/bson"
)

const defaultTimeout = 5 * time.Second

func respond(c *fiber.Ctx, status int, data any, msg string) error {
	return c.Status(status).JSON(dto.OK(status, data, msg))
}

// ErrorHandler renders every error returned by a handler or middleware as the
// response envelope.
func ErrorHandler(log *slog.Logger) fiber.ErrorHandler {
	if log == nil {
		log = slog.Default()
	}
	return func(c *fiber.Ctx, err error) error {
		status, msg := fiber.StatusInternalServerError, "internal server error"

		var appErr *apperror.Error
		var fe *fiber.Error
		switch {
		case errors.As(err, &appErr):
			status, msg = appErr.Kind.HTTPStatus(), appErr.Message
		case errors.As(err, &fe):
			status, msg = fe.Code, fe.Message
		}

		if status >= fiber.StatusInternalServerError {
			log.Error("request failed",
				"method", c.Method(), "path", c.Path(),
				"request_id", c.GetRespHeader(fiber.HeaderXRequestID), "err", err)
		}
		return c.Status(status).JSON(dto.Fail(status, msg))
	}
}

func withTimeout(c *fiber.Ctx, d time.Duration) (context.Context, context.CancelFunc) {
	if d <= 0 {
		d = defaultTimeout
	}
	return context.WithTimeout(c.UserContext(), d)
}

func paramID(c *fiber.Ctx, name, label string) (bson.ObjectID, error) {
	id, err := bson.ObjectIDFromHex(c.Params(name))
	if err != nil {
		return bson.NilObjectID, apperror.InvalidArgument("invalid " + label + " id")
	}
	return id, nil
}

func hexID(s, label string) (bson.ObjectID, error) {
	id, err := bson.ObjectIDFromHex(s)
	if err != nil {
		return bson.NilObjectID, apperror.InvalidArgument("invalid " + label + " id")
	}
	return id, nil
}

// bind parses the JSON body into out and runs its validate tags.
func bind(c *fiber.Ctx, out any) error {
	if err := c.BodyParser(out); err != nil {
		return apperror.InvalidArgument("invalid body")
	}
	return dto.Validate(out)
}
