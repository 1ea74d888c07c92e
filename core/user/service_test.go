package user_test

import (
	"sync"
	"testing"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"

	"github.com/trezcool/mipango/core"
	"github.com/trezcool/mipango/core/user"
	inmemdb "github.com/trezcool/mipango/storage/database/inmem"
)

type fakeMailService struct {
	mu       sync.Mutex
	messages []*core.EmailMessage
}

func (svc *fakeMailService) SendMessages(messages ...*core.EmailMessage) {
	svc.mu.Lock()
	defer svc.mu.Unlock()
	svc.messages = append(svc.messages, messages...)
}

func newTestService() (*user.Service, *fakeMailService) {
	mailSvc := &fakeMailService{}
	return user.NewService(inmemdb.NewUserRepository(), mailSvc, nil), mailSvc
}

func newValidator() (*validator.Validate, ut.Translator) {
	validate := validator.New()
	enLocale := en.New()
	translator, _ := ut.New(enLocale, enLocale).GetTranslator("en")
	core.InitValidators(validate, translator)
	return validate, translator
}

func signup(t *testing.T, svc *user.Service) user.SignupRequest {
	t.Helper()
	sr, err := svc.Signup(user.NewSignup{
		Name:       "Jane Cruz",
		Email:      "jane@example.com",
		Password:   "s3cretpw",
		Role:       user.RoleTeacher,
		Department: "Computer Science",
	})
	if err != nil {
		t.Fatalf("Signup() error: %v", err)
	}
	return sr
}

func TestSignup(t *testing.T) {
	svc, _ := newTestService()
	sr := signup(t, svc)

	if sr.ID == "" {
		t.Error("ID not set")
	}
	if len(sr.PasswordHash) == 0 {
		t.Error("password not hashed")
	}
	reqs, err := svc.QuerySignupRequests()
	if err != nil {
		t.Fatalf("QuerySignupRequests() error: %v", err)
	}
	if len(reqs) != 1 {
		t.Fatalf("got %d requests; want 1", len(reqs))
	}
}

func TestApproveSignup(t *testing.T) {
	svc, mailSvc := newTestService()
	sr := signup(t, svc)

	usr, err := svc.ApproveSignup(sr.ID)
	if err != nil {
		t.Fatalf("ApproveSignup() error: %v", err)
	}
	if !usr.Approved {
		t.Error("Approved = false; want true")
	}
	if usr.Role != user.RoleTeacher || usr.Department != "Computer Science" {
		t.Errorf("role/department not carried over: %+v", usr)
	}

	// the requested password must survive approval
	if _, err = svc.Authenticate("jane@example.com", "s3cretpw"); err != nil {
		t.Errorf("Authenticate() after approval error: %v", err)
	}

	// the request is consumed
	if _, err = svc.ApproveSignup(sr.ID); errors.Cause(err) != user.ErrNotFound {
		t.Errorf("second ApproveSignup() error = %v; want ErrNotFound", err)
	}

	mailSvc.mu.Lock()
	defer mailSvc.mu.Unlock()
	if len(mailSvc.messages) != 1 {
		t.Errorf("sent %d emails; want 1", len(mailSvc.messages))
	}
}

func TestRejectSignup(t *testing.T) {
	svc, _ := newTestService()
	sr := signup(t, svc)

	if err := svc.RejectSignup(sr.ID); err != nil {
		t.Fatalf("RejectSignup() error: %v", err)
	}
	reqs, err := svc.QuerySignupRequests()
	if err != nil {
		t.Fatalf("QuerySignupRequests() error: %v", err)
	}
	if len(reqs) != 0 {
		t.Errorf("got %d requests; want 0", len(reqs))
	}
	users, err := svc.QueryAll()
	if err != nil {
		t.Fatalf("QueryAll() error: %v", err)
	}
	if len(users) != 0 {
		t.Errorf("got %d users; want 0", len(users))
	}
}

func TestAuthenticate(t *testing.T) {
	svc, _ := newTestService()
	sr := signup(t, svc)

	// pending requests cannot log in
	if _, err := svc.Authenticate("jane@example.com", "s3cretpw"); errors.Cause(err) != user.ErrInvalidCredentials {
		t.Errorf("Authenticate() before approval error = %v; want ErrInvalidCredentials", err)
	}

	if _, err := svc.ApproveSignup(sr.ID); err != nil {
		t.Fatalf("ApproveSignup() error: %v", err)
	}
	if _, err := svc.Authenticate("jane@example.com", "wrong"); errors.Cause(err) != user.ErrInvalidCredentials {
		t.Errorf("Authenticate() with bad password error = %v; want ErrInvalidCredentials", err)
	}
	if _, err := svc.Authenticate("JANE@example.com ", "s3cretpw"); err != nil {
		t.Errorf("Authenticate() with unnormalized email error: %v", err)
	}
}

func TestNewSignupValidateRejectsDuplicateEmail(t *testing.T) {
	svc, _ := newTestService()
	signup(t, svc)
	validate, translator := newValidator()

	dup := user.NewSignup{
		Name:       "Jane Again",
		Email:      "Jane@Example.com",
		Password:   "another1",
		Role:       user.RoleDean,
		Department: "Education",
	}
	err := dup.Validate(validate, translator, svc)
	var vErr *core.ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("Validate() error = %v; want validation error", err)
	}
}

func TestNewSignupValidateRequiredFields(t *testing.T) {
	validate, translator := newValidator()
	ns := user.NewSignup{Email: "not-an-email", Role: "student"}
	err := ns.Validate(validate, translator, nil)
	if err == nil {
		t.Fatal("Validate() error = nil; want field errors")
	}
	var vErrs validator.ValidationErrors
	if !errors.As(err, &vErrs) {
		t.Fatalf("Validate() error = %T; want validator.ValidationErrors", errors.Cause(err))
	}
}
