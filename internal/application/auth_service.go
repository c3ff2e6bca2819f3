package application

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"user-access-management/go-backend/internal/domain/entity"
	"user-access-management/go-backend/internal/domain/repository"
	"user-access-management/go-backend/internal/domain/valueobject"
	"user-access-management/go-backend/pkg/events"
)

const (
	msgInvalidCredentials = "invalid credentials"
	msgAccountDeactivated = "account is deactivated"
	msgUserNotFound       = "user not found"
	msgUnexpectedFailure  = "unexpected error, please try again later"
)

// AuthService orchestrates registration, login and credential rotation.
// Events and Search are optional fire-and-forget collaborators; their
// failures are logged, never surfaced to the caller.
type AuthService struct {
	DB     repository.SessionFactory
	Hasher PasswordHasher
	Tokens TokenIssuer
	Logger *logrus.Logger
	Events EventPublisher
	Search UserIndexer
}

func NewAuthService(db repository.SessionFactory, hasher PasswordHasher, tokens TokenIssuer, logger *logrus.Logger, pub EventPublisher, idx UserIndexer) *AuthService {
	return &AuthService{DB: db, Hasher: hasher, Tokens: tokens, Logger: logger, Events: pub, Search: idx}
}

// Register creates a new active user. Check order: email format, then
// uniqueness. The pre-check races with concurrent registrations, so a
// unique-violation at commit time is reported as the same conflict.
func (s *AuthService) Register(ctx context.Context, in RegisterInput) Result[RegisterResponse] {
	return instrument(s.Logger, "register", logrus.Fields{"email": strings.TrimSpace(in.Email)}, func() Result[RegisterResponse] {
		email, err := valueobject.NewEmail(in.Email)
		if err != nil {
			return Fail[RegisterResponse](FailureValidation, "email format is not valid")
		}

		sess := s.DB.NewSession()
		defer func() { _ = sess.Rollback(ctx) }()

		existing, err := sess.Users().GetByEmail(ctx, email.Value())
		if err != nil {
			return persistenceFailure[RegisterResponse](s.Logger, err)
		}
		if existing != nil {
			return Fail[RegisterResponse](FailureConflict, fmt.Sprintf("email %s is already in use", email.Value()))
		}

		hash, err := s.Hasher.Hash(in.Password)
		if err != nil {
			return persistenceFailure[RegisterResponse](s.Logger, err)
		}

		user := entity.NewUser(in.Name, in.Lastname, in.Address, email, hash)
		if err := sess.Users().Add(ctx, user); err != nil {
			return persistenceFailure[RegisterResponse](s.Logger, err)
		}
		if _, err := sess.SaveChanges(ctx); err != nil {
			if errors.Is(err, repository.ErrDuplicateEmail) {
				return Fail[RegisterResponse](FailureConflict, fmt.Sprintf("email %s is already in use", email.Value()))
			}
			return persistenceFailure[RegisterResponse](s.Logger, err)
		}

		notify(ctx, s.Logger, s.Events, events.UserRegistered(user))
		reindex(ctx, s.Logger, s.Search, user)

		return Ok(RegisterResponse{
			ID:       user.ID,
			Name:     user.Name,
			Lastname: user.Lastname,
			Email:    user.Email.Value(),
			Address:  user.Address,
			IsActive: user.IsActive,
		}, "user registered successfully")
	})
}

// Login checks existence, then the password, then the active flag. The
// first two failures share one message so callers cannot probe which
// check tripped; only the inactive case is distinguishable.
func (s *AuthService) Login(ctx context.Context, email, password string) Result[LoginResponse] {
	return instrument(s.Logger, "login", nil, func() Result[LoginResponse] {
		normalized := strings.ToLower(strings.TrimSpace(email))

		sess := s.DB.NewSession()
		defer func() { _ = sess.Rollback(ctx) }()

		user, err := sess.Users().GetByEmail(ctx, normalized)
		if err != nil {
			return persistenceFailure[LoginResponse](s.Logger, err)
		}
		if user == nil {
			return Fail[LoginResponse](FailureAuthentication, msgInvalidCredentials)
		}
		if !s.Hasher.Verify(password, user.PasswordHash) {
			return Fail[LoginResponse](FailureAuthentication, msgInvalidCredentials)
		}
		if !user.IsActive {
			return Fail[LoginResponse](FailureAuthentication, msgAccountDeactivated)
		}

		token, expiresAt, err := s.Tokens.Issue(user.ID, user.Email.Value(), time.Now().UTC())
		if err != nil {
			return persistenceFailure[LoginResponse](s.Logger, err)
		}
		return Ok(LoginResponse{Token: token, ExpiresAt: expiresAt}, "login successful")
	})
}

// ChangePassword rotates the credential after verifying the current one.
// On a wrong current password nothing is staged and nothing is persisted.
func (s *AuthService) ChangePassword(ctx context.Context, userID, currentPassword, newPassword string) Result[bool] {
	return instrument(s.Logger, "change_password", logrus.Fields{"user_id": userID}, func() Result[bool] {
		sess := s.DB.NewSession()
		defer func() { _ = sess.Rollback(ctx) }()

		user, err := sess.Users().GetByID(ctx, userID)
		if err != nil {
			return persistenceFailure[bool](s.Logger, err)
		}
		if user == nil {
			return Fail[bool](FailureNotFound, msgUserNotFound)
		}
		if !s.Hasher.Verify(currentPassword, user.PasswordHash) {
			return Fail[bool](FailureAuthentication, "current password is incorrect")
		}

		hash, err := s.Hasher.Hash(newPassword)
		if err != nil {
			return persistenceFailure[bool](s.Logger, err)
		}
		user.ChangePassword(hash)

		if err := sess.Users().Update(ctx, user); err != nil {
			return persistenceFailure[bool](s.Logger, err)
		}
		if _, err := sess.SaveChanges(ctx); err != nil {
			return persistenceFailure[bool](s.Logger, err)
		}
		return Ok(true, "password updated successfully")
	})
}

