package sqlxdb

import (
	"database/sql"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"github.com/trezcool/mipango/core/user"
)

type userRepository struct {
	db *sqlx.DB
}

var _ user.Repository = (*userRepository)(nil)

func NewUserRepository(db *sqlx.DB) *userRepository {
	return &userRepository{db: db}
}

type userRow struct {
	ID           string    `db:"id"`
	Name         string    `db:"name"`
	Email        string    `db:"email"`
	Role         string    `db:"role"`
	Department   string    `db:"department"`
	Approved     bool      `db:"approved"`
	PasswordHash []byte    `db:"password_hash"`
	CreatedAt    time.Time `db:"created_at"`
}

func (row userRow) user() user.User {
	return user.User{
		ID:           row.ID,
		Name:         row.Name,
		Email:        row.Email,
		Role:         row.Role,
		Department:   row.Department,
		Approved:     row.Approved,
		PasswordHash: row.PasswordHash,
		CreatedAt:    row.CreatedAt,
	}
}

type signupRow struct {
	ID           string    `db:"id"`
	Name         string    `db:"name"`
	Email        string    `db:"email"`
	Role         string    `db:"role"`
	Department   string    `db:"department"`
	PasswordHash []byte    `db:"password_hash"`
	CreatedAt    time.Time `db:"created_at"`
}

func (row signupRow) signupRequest() user.SignupRequest {
	return user.SignupRequest{
		ID:           row.ID,
		Name:         row.Name,
		Email:        row.Email,
		Role:         row.Role,
		Department:   row.Department,
		PasswordHash: row.PasswordHash,
		CreatedAt:    row.CreatedAt,
	}
}

func (repo *userRepository) CreateUser(u user.User) error {
	const stmt = `
INSERT INTO app_user (id, name, email, role, department, approved, password_hash, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := repo.db.Exec(stmt, u.ID, u.Name, u.Email, u.Role, u.Department, u.Approved, u.PasswordHash, u.CreatedAt)
	return errors.Wrap(err, "inserting user")
}

func (repo *userRepository) QueryAllUsers() ([]user.User, error) {
	var rows []userRow
	const stmt = `
SELECT id, name, email, role, department, approved, password_hash, created_at
FROM app_user ORDER BY created_at`
	if err := repo.db.Select(&rows, stmt); err != nil {
		return nil, errors.Wrap(err, "selecting users")
	}
	users := make([]user.User, 0, len(rows))
	for _, row := range rows {
		users = append(users, row.user())
	}
	return users, nil
}

func (repo *userRepository) GetUserByID(id string) (user.User, error) {
	return repo.getUser(`id = $1`, id)
}

func (repo *userRepository) GetUserByEmail(email string) (user.User, error) {
	return repo.getUser(`email = $1`, email)
}

func (repo *userRepository) getUser(where string, arg interface{}) (user.User, error) {
	var row userRow
	stmt := `
SELECT id, name, email, role, department, approved, password_hash, created_at
FROM app_user WHERE ` + where
	if err := repo.db.Get(&row, stmt, arg); err != nil {
		if err == sql.ErrNoRows {
			return user.User{}, user.ErrNotFound
		}
		return user.User{}, errors.Wrap(err, "selecting user")
	}
	return row.user(), nil
}

func (repo *userRepository) CreateSignupRequest(sr user.SignupRequest) error {
	const stmt = `
INSERT INTO signup_request (id, name, email, role, department, password_hash, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := repo.db.Exec(stmt, sr.ID, sr.Name, sr.Email, sr.Role, sr.Department, sr.PasswordHash, sr.CreatedAt)
	return errors.Wrap(err, "inserting signup request")
}

func (repo *userRepository) QueryAllSignupRequests() ([]user.SignupRequest, error) {
	var rows []signupRow
	const stmt = `
SELECT id, name, email, role, department, password_hash, created_at
FROM signup_request ORDER BY created_at`
	if err := repo.db.Select(&rows, stmt); err != nil {
		return nil, errors.Wrap(err, "selecting signup requests")
	}
	reqs := make([]user.SignupRequest, 0, len(rows))
	for _, row := range rows {
		reqs = append(reqs, row.signupRequest())
	}
	return reqs, nil
}

func (repo *userRepository) GetSignupRequestByID(id string) (user.SignupRequest, error) {
	var row signupRow
	const stmt = `
SELECT id, name, email, role, department, password_hash, created_at
FROM signup_request WHERE id = $1`
	if err := repo.db.Get(&row, stmt, id); err != nil {
		if err == sql.ErrNoRows {
			return user.SignupRequest{}, user.ErrNotFound
		}
		return user.SignupRequest{}, errors.Wrap(err, "selecting signup request")
	}
	return row.signupRequest(), nil
}

func (repo *userRepository) DeleteSignupRequest(id string) error {
	res, err := repo.db.Exec(`DELETE FROM signup_request WHERE id = $1`, id)
	if err != nil {
		return errors.Wrap(err, "deleting signup request")
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return user.ErrNotFound
	}
	return nil
}
