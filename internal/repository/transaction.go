package repository

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readconcern"
	"go.mongodb.org/mongo-driver/v2/mongo/writeconcern"
)

// WithTransaction runs fn inside a multi-document transaction. Every
// repository call made with the context handed to fn joins the session.
// The transaction is aborted when fn fails and is never retried here.
func (m *Mongo) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	sess, err := m.Client.StartSession()
	if err != nil {
		return fmt.Errorf("start session: %w", err)
	}
	defer sess.EndSession(context.Background())

	txOpts := options.Transaction().
		SetReadConcern(readconcern.Snapshot()).
		SetWriteConcern(writeconcern.Majority())
	if err := sess.StartTransaction(txOpts); err != nil {
		return fmt.Errorf("start transaction: %w", err)
	}

	sc := mongo.NewSessionContext(ctx, sess)
	if err := fn(sc); err != nil {
		// abort on a fresh context so a cancelled request still rolls back
		if abortErr := sess.AbortTransaction(context.Background()); abortErr != nil {
			return errors.Join(err, fmt.Errorf("abort transaction: %w", abortErr))
		}
		return err
	}

	if err := sess.CommitTransaction(sc); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
