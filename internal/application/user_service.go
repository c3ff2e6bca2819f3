package application

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"user-access-management/go-backend/internal/domain/repository"
	"user-access-management/go-backend/internal/domain/valueobject"
	"user-access-management/go-backend/pkg/events"
)

// UserService orchestrates the profile and lifecycle use cases.
type UserService struct {
	DB     repository.SessionFactory
	Logger *logrus.Logger
	Events EventPublisher
	Search UserIndexer
}

func NewUserService(db repository.SessionFactory, logger *logrus.Logger, pub EventPublisher, idx UserIndexer) *UserService {
	return &UserService{DB: db, Logger: logger, Events: pub, Search: idx}
}

// Update replaces name, lastname, address and email. The email is
// re-validated, and when it changes ownership of the new address is
// checked before persisting; the unique index stays the final guard.
func (s *UserService) Update(ctx context.Context, id string, in UpdateUserInput) Result[UserResponse] {
	return instrument(s.Logger, "update_user", logrus.Fields{"user_id": id}, func() Result[UserResponse] {
		sess := s.DB.NewSession()
		defer func() { _ = sess.Rollback(ctx) }()

		user, err := sess.Users().GetByID(ctx, id)
		if err != nil {
			return persistenceFailure[UserResponse](s.Logger, err)
		}
		if user == nil {
			return Fail[UserResponse](FailureNotFound, msgUserNotFound)
		}

		email, err := valueobject.NewEmail(in.Email)
		if err != nil {
			return Fail[UserResponse](FailureValidation, "email format is not valid")
		}
		if !email.Equals(user.Email) {
			owner, err := sess.Users().GetByEmail(ctx, email.Value())
			if err != nil {
				return persistenceFailure[UserResponse](s.Logger, err)
			}
			if owner != nil && owner.ID != user.ID {
				return Fail[UserResponse](FailureConflict, fmt.Sprintf("email %s is already in use", email.Value()))
			}
		}

		user.Update(in.Name, in.Lastname, in.Address, email)

		if err := sess.Users().Update(ctx, user); err != nil {
			return persistenceFailure[UserResponse](s.Logger, err)
		}
		if _, err := sess.SaveChanges(ctx); err != nil {
			if errors.Is(err, repository.ErrDuplicateEmail) {
				return Fail[UserResponse](FailureConflict, fmt.Sprintf("email %s is already in use", email.Value()))
			}
			return persistenceFailure[UserResponse](s.Logger, err)
		}

		notify(ctx, s.Logger, s.Events, events.UserUpdated(user))
		reindex(ctx, s.Logger, s.Search, user)
		return Ok(toUserResponse(user), "user updated successfully")
	})
}

// Deactivate flips IsActive off. Idempotent: a second call changes nothing,
// persists nothing, publishes nothing, and still reports success.
func (s *UserService) Deactivate(ctx context.Context, id string) Result[bool] {
	return instrument(s.Logger, "deactivate_user", logrus.Fields{"user_id": id}, func() Result[bool] {
		sess := s.DB.NewSession()
		defer func() { _ = sess.Rollback(ctx) }()

		user, err := sess.Users().GetByID(ctx, id)
		if err != nil {
			return persistenceFailure[bool](s.Logger, err)
		}
		if user == nil {
			return Fail[bool](FailureNotFound, msgUserNotFound)
		}
		if !user.IsActive {
			return Ok(true, "user deactivated successfully")
		}

		user.Deactivate()

		if err := sess.Users().Update(ctx, user); err != nil {
			return persistenceFailure[bool](s.Logger, err)
		}
		if _, err := sess.SaveChanges(ctx); err != nil {
			return persistenceFailure[bool](s.Logger, err)
		}

		notify(ctx, s.Logger, s.Events, events.UserDeactivated(user))
		return Ok(true, "user deactivated successfully")
	})
}

// Delete soft-deletes the user. The row stays in storage with DeletedAt set
// and disappears from every standard lookup; there is no un-delete.
func (s *UserService) Delete(ctx context.Context, id string) Result[bool] {
	return instrument(s.Logger, "delete_user", logrus.Fields{"user_id": id}, func() Result[bool] {
		sess := s.DB.NewSession()
		defer func() { _ = sess.Rollback(ctx) }()

		user, err := sess.Users().GetByID(ctx, id)
		if err != nil {
			return persistenceFailure[bool](s.Logger, err)
		}
		if user == nil {
			return Fail[bool](FailureNotFound, msgUserNotFound)
		}

		user.SoftDelete()

		if err := sess.Users().Update(ctx, user); err != nil {
			return persistenceFailure[bool](s.Logger, err)
		}
		if _, err := sess.SaveChanges(ctx); err != nil {
			return persistenceFailure[bool](s.Logger, err)
		}

		notify(ctx, s.Logger, s.Events, events.UserDeleted(user))
		removeFromIndex(ctx, s.Logger, s.Search, user.ID)
		return Ok(true, "user deleted successfully")
	})
}

func (s *UserService) GetByID(ctx context.Context, id string) Result[UserResponse] {
	return instrument(s.Logger, "get_user_by_id", logrus.Fields{"user_id": id}, func() Result[UserResponse] {
		sess := s.DB.NewSession()
		user, err := sess.Users().GetByID(ctx, id)
		if err != nil {
			return persistenceFailure[UserResponse](s.Logger, err)
		}
		if user == nil {
			return Fail[UserResponse](FailureNotFound, msgUserNotFound)
		}
		return Ok(toUserResponse(user), "")
	})
}

func (s *UserService) GetByEmail(ctx context.Context, email string) Result[UserResponse] {
	return instrument(s.Logger, "get_user_by_email", nil, func() Result[UserResponse] {
		normalized := strings.ToLower(strings.TrimSpace(email))
		sess := s.DB.NewSession()
		user, err := sess.Users().GetByEmail(ctx, normalized)
		if err != nil {
			return persistenceFailure[UserResponse](s.Logger, err)
		}
		if user == nil {
			return Fail[UserResponse](FailureNotFound, msgUserNotFound)
		}
		return Ok(toUserResponse(user), "")
	})
}

// List returns one page ordered by id ascending plus the total count.
// The two queries run back to back, so the total is approximate under
// concurrent writes.
func (s *UserService) List(ctx context.Context, pageNumber, pageSize int) Result[PagedResult[UserResponse]] {
	return instrument(s.Logger, "list_users", logrus.Fields{"page": pageNumber, "size": pageSize}, func() Result[PagedResult[UserResponse]] {
		if pageNumber <= 0 || pageSize <= 0 {
			return Fail[PagedResult[UserResponse]](FailureValidation, "pageNumber and pageSize must be greater than zero")
		}

		sess := s.DB.NewSession()
		users, err := sess.Users().List(ctx, pageNumber, pageSize)
		if err != nil {
			return persistenceFailure[PagedResult[UserResponse]](s.Logger, err)
		}
		total, err := sess.Users().Count(ctx)
		if err != nil {
			return persistenceFailure[PagedResult[UserResponse]](s.Logger, err)
		}

		items := make([]UserResponse, 0, len(users))
		for _, u := range users {
			items = append(items, toUserResponse(u))
		}
		return Ok(PagedResult[UserResponse]{
			Items:      items,
			TotalCount: total,
			PageNumber: pageNumber,
			PageSize:   pageSize,
		}, "")
	})
}

// SearchUsers queries the search index over name, lastname and email.
func (s *UserService) SearchUsers(ctx context.Context, query string, size int) Result[[]map[string]any] {
	return instrument(s.Logger, "search_users", nil, func() Result[[]map[string]any] {
		if s.Search == nil {
			return Ok([]map[string]any{}, "")
		}
		if size <= 0 || size > 50 {
			size = 10
		}
		hits, err := s.Search.Search(ctx, query, size)
		if err != nil {
			return persistenceFailure[[]map[string]any](s.Logger, err)
		}
		return Ok(hits, "")
	})
}
