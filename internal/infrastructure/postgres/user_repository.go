package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"user-access-management/go-backend/internal/domain/entity"
	"user-access-management/go-backend/internal/domain/repository"
	"user-access-management/go-backend/internal/domain/valueobject"
)

const userColumns = `id, name, lastname, email, password_hash, address, is_active, created_at, updated_at, deleted_at`

// UserRepository reads through the session's querier (pool, or open tx so
// staged-and-flushed rows are visible) and stages writes on the session.
type UserRepository struct {
	sess *Session
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	row := r.sess.db().QueryRow(ctx, `
		SELECT `+userColumns+`
		FROM users
		WHERE email = $1 AND deleted_at IS NULL
	`, email)
	return scanUser(row)
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (*entity.User, error) {
	row := r.sess.db().QueryRow(ctx, `
		SELECT `+userColumns+`
		FROM users
		WHERE id = $1 AND deleted_at IS NULL
	`, id)
	return scanUser(row)
}

func (r *UserRepository) Add(_ context.Context, u *entity.User) error {
	r.sess.stage(`
		INSERT INTO users (id, name, lastname, email, password_hash, address, is_active, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`, u.ID, u.Name, u.Lastname, u.Email.Value(), u.PasswordHash, u.Address, u.IsActive, u.CreatedAt)
	return nil
}

func (r *UserRepository) Update(_ context.Context, u *entity.User) error {
	r.sess.stage(`
		UPDATE users
		SET name = $2, lastname = $3, email = $4, password_hash = $5,
		    address = $6, is_active = $7, updated_at = $8, deleted_at = $9
		WHERE id = $1
	`, u.ID, u.Name, u.Lastname, u.Email.Value(), u.PasswordHash, u.Address, u.IsActive, u.UpdatedAt, u.DeletedAt)
	return nil
}

func (r *UserRepository) List(ctx context.Context, pageNumber, pageSize int) ([]*entity.User, error) {
	rows, err := r.sess.db().Query(ctx, `
		SELECT `+userColumns+`
		FROM users
		WHERE deleted_at IS NULL
		ORDER BY id ASC
		LIMIT $1 OFFSET $2
	`, pageSize, (pageNumber-1)*pageSize)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := make([]*entity.User, 0, pageSize)
	for rows.Next() {
		u, err := scanUserRow(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

func (r *UserRepository) Count(ctx context.Context) (int, error) {
	var total int
	err := r.sess.db().QueryRow(ctx, `
		SELECT COUNT(*) FROM users WHERE deleted_at IS NULL
	`).Scan(&total)
	return total, err
}

func scanUser(row pgx.Row) (*entity.User, error) {
	u, err := scanUserRow(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return u, nil
}

func scanUserRow(row pgx.Row) (*entity.User, error) {
	u := &entity.User{}
	var rawEmail string
	if err := row.Scan(&u.ID, &u.Name, &u.Lastname, &rawEmail, &u.PasswordHash,
		&u.Address, &u.IsActive, &u.CreatedAt, &u.UpdatedAt, &u.DeletedAt); err != nil {
		return nil, err
	}
	email, err := valueobject.NewEmail(rawEmail)
	if err != nil {
		return nil, err
	}
	u.Email = email
	return u, nil
}

var _ repository.UserRepository = (*UserRepository)(nil)
