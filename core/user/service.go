package user

import (
	"fmt"
	"net/mail"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/trezcool/mipango/core"
)

type Service struct {
	repo    Repository
	mailSvc core.EmailService
	log     core.Logger
}

func NewService(repo Repository, mailSvc core.EmailService, log core.Logger) *Service {
	return &Service{
		repo:    repo,
		mailSvc: mailSvc,
		log:     log,
	}
}

// Signup files an account request for an administrator to review.
func (svc *Service) Signup(ns NewSignup) (SignupRequest, error) {
	sr := SignupRequest{
		ID:         uuid.New().String(),
		Name:       ns.Name,
		Email:      ns.Email,
		Role:       ns.Role,
		Department: ns.Department,
		CreatedAt:  time.Now().UTC(),
	}
	if err := sr.SetPassword(ns.Password); err != nil {
		return SignupRequest{}, err
	}
	if err := svc.repo.CreateSignupRequest(sr); err != nil {
		return SignupRequest{}, errors.Wrap(err, "creating signup request")
	}
	return sr, nil
}

func (svc *Service) QuerySignupRequests() ([]SignupRequest, error) {
	reqs, err := svc.repo.QueryAllSignupRequests()
	return reqs, errors.Wrap(err, "querying signup requests")
}

// ApproveSignup promotes a signup request into an active account. The
// requested password carries over so the user can log in right away.
func (svc *Service) ApproveSignup(id string) (User, error) {
	sr, err := svc.repo.GetSignupRequestByID(id)
	if err != nil {
		return User{}, errors.Wrapf(err, "getting signup request %s", id)
	}
	usr := User{
		ID:           uuid.New().String(),
		Name:         sr.Name,
		Email:        sr.Email,
		Role:         sr.Role,
		Department:   sr.Department,
		Approved:     true,
		PasswordHash: sr.PasswordHash,
		CreatedAt:    time.Now().UTC(),
	}
	if err = svc.repo.CreateUser(usr); err != nil {
		return User{}, errors.Wrap(err, "creating user")
	}
	if err = svc.repo.DeleteSignupRequest(sr.ID); err != nil {
		return User{}, errors.Wrapf(err, "deleting signup request %s", sr.ID)
	}
	svc.notify(usr.Address(), "Your account has been approved",
		fmt.Sprintf("Hi %s,\n\nYour account has been approved. You can now log in with your email address.", usr.Name))
	return usr, nil
}

// RejectSignup discards a signup request and notifies the requester.
func (svc *Service) RejectSignup(id string) error {
	sr, err := svc.repo.GetSignupRequestByID(id)
	if err != nil {
		return errors.Wrapf(err, "getting signup request %s", id)
	}
	if err = svc.repo.DeleteSignupRequest(sr.ID); err != nil {
		return errors.Wrapf(err, "deleting signup request %s", sr.ID)
	}
	svc.notify(mail.Address{Name: sr.Name, Address: sr.Email}, "Your account request was declined",
		fmt.Sprintf("Hi %s,\n\nYour account request has been declined. Please contact the administrator for details.", sr.Name))
	return nil
}

func (svc *Service) QueryAll() ([]User, error) {
	users, err := svc.repo.QueryAllUsers()
	return users, errors.Wrap(err, "querying users")
}

func (svc *Service) GetByID(id string) (User, error) {
	usr, err := svc.repo.GetUserByID(id)
	return usr, errors.Wrapf(err, "getting user %s", id)
}

func (svc *Service) GetByEmail(email string) (User, error) {
	usr, err := svc.repo.GetUserByEmail(core.CleanString(email, true))
	return usr, errors.Wrapf(err, "getting user by email")
}

// Authenticate checks the credentials against approved accounts.
func (svc *Service) Authenticate(email, password string) (User, error) {
	usr, err := svc.repo.GetUserByEmail(core.CleanString(email, true))
	if err != nil {
		if errors.Cause(err) == ErrNotFound {
			return User{}, ErrInvalidCredentials
		}
		return User{}, errors.Wrap(err, "getting user by email")
	}
	if err = usr.CheckPassword(password); err != nil {
		return User{}, ErrInvalidCredentials
	}
	if !usr.Approved {
		return User{}, ErrNotApproved
	}
	return usr, nil
}

// emailTaken reports whether an account or pending request holds the email.
func (svc *Service) emailTaken(email string) (bool, error) {
	if _, err := svc.repo.GetUserByEmail(email); err == nil {
		return true, nil
	} else if errors.Cause(err) != ErrNotFound {
		return false, errors.Wrap(err, "checking email")
	}
	reqs, err := svc.repo.QueryAllSignupRequests()
	if err != nil {
		return false, errors.Wrap(err, "checking email")
	}
	for _, sr := range reqs {
		if sr.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (svc *Service) notify(to mail.Address, subject, body string) {
	if svc.mailSvc == nil {
		return
	}
	svc.mailSvc.SendMessages(&core.EmailMessage{
		To:      []mail.Address{to},
		Subject: subject,
		Body:    body,
	})
}
