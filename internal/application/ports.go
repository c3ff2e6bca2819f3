package application

import (
	"context"
	"time"

	"user-access-management/go-backend/internal/domain/entity"
)

// PasswordHasher is the one-way credential contract. Hash output is salted,
// so two calls on the same input differ but each verifies against its input.
type PasswordHasher interface {
	Hash(plain string) (string, error)
	Verify(plain, hash string) bool
}

// TokenIssuer produces a signed, time-bounded authentication token.
// Verification of incoming tokens belongs to the HTTP middleware.
type TokenIssuer interface {
	Issue(userID, email string, issuedAt time.Time) (token string, expiresAt time.Time, err error)
}

// EventPublisher pushes lifecycle events onto the message queue.
// Satisfied by helpers.RabbitPublisher.
type EventPublisher interface {
	PublishJSON(ctx context.Context, body any) error
}

// UserIndexer keeps the search index in sync and serves queries.
// Satisfied by elastic.Indexer.
type UserIndexer interface {
	Index(ctx context.Context, u *entity.User) error
	Remove(ctx context.Context, id string) error
	Search(ctx context.Context, query string, size int) ([]map[string]any, error)
}
