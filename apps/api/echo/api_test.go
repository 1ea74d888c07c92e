package echoapi

import (
	"bytes"
	"encoding/json"
	"io"
	stdlog "log"
	"net/http/httptest"
	"net/mail"
	"testing"
	"time"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/trezcool/mipango/core"
	"github.com/trezcool/mipango/core/plan"
	"github.com/trezcool/mipango/core/user"
	emailsvc "github.com/trezcool/mipango/services/email"
	logsvc "github.com/trezcool/mipango/services/logger"
	inmemdb "github.com/trezcool/mipango/storage/database/inmem"
)

type testDirectory struct {
	svc *user.Service
}

func (d testDirectory) AddressOf(userID string) (mail.Address, error) {
	usr, err := d.svc.GetByID(userID)
	if err != nil {
		return mail.Address{}, err
	}
	return usr.Address(), nil
}

func newTestServer(t *testing.T) (*Server, *core.Config) {
	t.Helper()

	conf := &core.Config{
		SecretKey:       "test-secret",
		DefaultFromName: "Mipango",
		DefaultFromAddr: "noreply@example.com",
		Server:          core.ServerConfig{JWTExpirationDelta: time.Hour},
		Admin:           core.AdminConfig{Email: "admin@gmail.com", Password: "admin"},
	}

	validate := validator.New()
	enLocale := en.New()
	translator, _ := ut.New(enLocale, enLocale).GetTranslator("en")
	core.InitValidators(validate, translator)

	logger := logsvc.NewStdLogger(stdlog.New(io.Discard, "", 0))
	mailSvc := emailsvc.NewConsoleService(io.Discard, conf.DefaultFromEmail())
	usrSvc := user.NewService(inmemdb.NewUserRepository(), mailSvc, logger)
	planSvc := plan.NewService(inmemdb.NewPlanRepository(), mailSvc, testDirectory{svc: usrSvc}, logger)

	return NewServer(ServerDeps{
		Conf:       conf,
		Log:        logger,
		PlanSvc:    planSvc,
		UserSvc:    usrSvc,
		Validate:   validate,
		Translator: translator,
	}), conf
}

func teacherToken(t *testing.T, conf *core.Config, id, name string) string {
	t.Helper()
	token, err := GenerateToken(conf, user.User{ID: id, Name: name, Email: id + "@example.com", Role: user.RoleTeacher})
	if err != nil {
		t.Fatalf("GenerateToken() error: %v", err)
	}
	return token
}

func deanToken(t *testing.T, conf *core.Config) string {
	t.Helper()
	token, err := GenerateToken(conf, user.User{ID: "d1", Name: "Dr. Reyes", Email: "dean@example.com", Role: user.RoleDean})
	if err != nil {
		t.Fatalf("GenerateToken() error: %v", err)
	}
	return token
}

func adminToken(t *testing.T, conf *core.Config) string {
	t.Helper()
	token, err := GenerateAdminToken(conf)
	if err != nil {
		t.Fatalf("GenerateAdminToken() error: %v", err)
	}
	return token
}

func doRequest(t *testing.T, s *Server, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var rdr io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshaling body: %v", err)
		}
		rdr = bytes.NewReader(data)
	}
	req := httptest.NewRequest(method, path, rdr)
	if body != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder, dst interface{}) {
	t.Helper()
	if err := json.Unmarshal(rec.Body.Bytes(), dst); err != nil {
		t.Fatalf("decoding response %q: %v", rec.Body.String(), err)
	}
}
