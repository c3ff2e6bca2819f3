package repository

import "errors"

// ErrDuplicateEmail is returned by the unit of work when the storage-level
// unique constraint on normalized email rejects a staged write. It is the
// authoritative guard behind the orchestrators' pre-checks.
var ErrDuplicateEmail = errors.New("email already in use")

// Session scopes one request's repository access and transactional boundary.
// Sessions are never shared across concurrent requests.
type Session interface {
	Users() UserRepository
	UnitOfWork
}

// SessionFactory hands out a fresh Session per request.
type SessionFactory interface {
	NewSession() Session
}
