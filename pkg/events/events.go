package events

import (
	"time"

	"user-access-management/go-backend/internal/domain/entity"
)

// Event types put on the user events queue.
const (
	TypeUserRegistered  = "user.registered"
	TypeUserUpdated     = "user.updated"
	TypeUserDeactivated = "user.deactivated"
	TypeUserDeleted     = "user.deleted"
)

// UserEvent is the JSON payload published after a committed lifecycle
// mutation. Consumers (the email worker) key off Type.
type UserEvent struct {
	Type       string    `json:"type"`
	UserID     string    `json:"user_id"`
	Email      string    `json:"email"`
	Name       string    `json:"name"`
	Lastname   string    `json:"lastname"`
	OccurredAt time.Time `json:"occurred_at"`
}

func fromUser(eventType string, u *entity.User) UserEvent {
	return UserEvent{
		Type:       eventType,
		UserID:     u.ID,
		Email:      u.Email.Value(),
		Name:       u.Name,
		Lastname:   u.Lastname,
		OccurredAt: time.Now().UTC(),
	}
}

func UserRegistered(u *entity.User) UserEvent  { return fromUser(TypeUserRegistered, u) }
func UserUpdated(u *entity.User) UserEvent     { return fromUser(TypeUserUpdated, u) }
func UserDeactivated(u *entity.User) UserEvent { return fromUser(TypeUserDeactivated, u) }
func UserDeleted(u *entity.User) UserEvent     { return fromUser(TypeUserDeleted, u) }
