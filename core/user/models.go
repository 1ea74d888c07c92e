package user

import (
	"net/mail"
	"time"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"

	"github.com/trezcool/mipango/core"
)

// Faculty roles.
const (
	RoleTeacher = "teacher"
	RoleDean    = "dean"
)

type (
	User struct {
		ID           string    `json:"id"`
		Name         string    `json:"name"`
		Email        string    `json:"email"`
		Role         string    `json:"role"`
		Department   string    `json:"department"`
		Approved     bool      `json:"approved"`
		PasswordHash []byte    `json:"-"`
		CreatedAt    time.Time `json:"created_at"`
	}

	// SignupRequest is a pending account awaiting an administrator's
	// decision. The password hash is carried over on approval.
	SignupRequest struct {
		ID           string    `json:"id"`
		Name         string    `json:"name"`
		Email        string    `json:"email"`
		Role         string    `json:"role"`
		Department   string    `json:"department"`
		PasswordHash []byte    `json:"-"`
		CreatedAt    time.Time `json:"created_at"`
	}
)

func (u *User) Address() mail.Address {
	return mail.Address{Name: u.Name, Address: u.Email}
}

func (u *User) SetPassword(pwd string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(pwd), bcrypt.DefaultCost)
	if err != nil {
		return errors.Wrap(err, "generating password hash")
	}
	u.PasswordHash = hash
	return nil
}

func (u *User) CheckPassword(pwd string) error {
	if len(u.PasswordHash) == 0 {
		return errors.New("password not set")
	}
	return bcrypt.CompareHashAndPassword(u.PasswordHash, []byte(pwd))
}

func (sr *SignupRequest) SetPassword(pwd string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(pwd), bcrypt.DefaultCost)
	if err != nil {
		return errors.Wrap(err, "generating password hash")
	}
	sr.PasswordHash = hash
	return nil
}

type NewSignup struct {
	Name       string `json:"name" validate:"required"`
	Email      string `json:"email" validate:"required,email"`
	Password   string `json:"password" validate:"required,min=6"`
	Role       string `json:"role" validate:"required,oneof=teacher dean"`
	Department string `json:"department" validate:"required"`
}

func (ns *NewSignup) Validate(validate *validator.Validate, translator ut.Translator, svc *Service) error {
	ns.Name = core.CleanString(ns.Name)
	ns.Email = core.CleanString(ns.Email, true)
	ns.Department = core.CleanString(ns.Department)
	if err := validate.Struct(ns); err != nil {
		return errors.Wrap(err, "validating signup")
	}
	if svc != nil {
		if taken, err := svc.emailTaken(ns.Email); err != nil {
			return err
		} else if taken {
			return core.NewValidationError(ErrEmailExists, core.FieldError{
				Field: "email", Error: ErrEmailExists.Error(),
			})
		}
	}
	return nil
}

type Credentials struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func (c *Credentials) Validate(validate *validator.Validate, translator ut.Translator) error {
	c.Email = core.CleanString(c.Email, true)
	if err := validate.Struct(c); err != nil {
		return errors.Wrap(err, "validating credentials")
	}
	return nil
}

var (
	ErrNotFound           = errors.New("user not found")
	ErrEmailExists        = errors.New("a user with this email already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrNotApproved        = errors.New("account is pending approval")
)

// Repository is anything that can persist users and signup requests.
type Repository interface {
	CreateUser(u User) error
	QueryAllUsers() ([]User, error)
	GetUserByID(id string) (User, error)
	GetUserByEmail(email string) (User, error)

	CreateSignupRequest(sr SignupRequest) error
	QueryAllSignupRequests() ([]SignupRequest, error)
	GetSignupRequestByID(id string) (SignupRequest, error)
	DeleteSignupRequest(id string) error
}
