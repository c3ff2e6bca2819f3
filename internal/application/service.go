package application

import (
	"context"

	"github.com/sirupsen/logrus"

	"user-access-management/go-backend/internal/domain/entity"
	"user-access-management/go-backend/pkg/events"
)

// persistenceFailure logs the raw error and returns the generic failure the
// caller sees; storage details never leak into the envelope.
func persistenceFailure[T any](logger *logrus.Logger, err error) Result[T] {
	if logger != nil {
		logger.WithError(err).Error("persistence failure")
	}
	return Fail[T](FailurePersistence, msgUnexpectedFailure)
}

func notify(ctx context.Context, logger *logrus.Logger, pub EventPublisher, evt events.UserEvent) {
	if pub == nil {
		return
	}
	if err := pub.PublishJSON(ctx, evt); err != nil && logger != nil {
		logger.WithError(err).WithField("event", evt.Type).Warn("event publish failed")
	}
}

func reindex(ctx context.Context, logger *logrus.Logger, idx UserIndexer, u *entity.User) {
	if idx == nil {
		return
	}
	if err := idx.Index(ctx, u); err != nil && logger != nil {
		logger.WithError(err).WithField("user_id", u.ID).Warn("search index failed")
	}
}

func removeFromIndex(ctx context.Context, logger *logrus.Logger, idx UserIndexer, id string) {
	if idx == nil {
		return
	}
	if err := idx.Remove(ctx, id); err != nil && logger != nil {
		logger.WithError(err).WithField("user_id", id).Warn("search index removal failed")
	}
}
