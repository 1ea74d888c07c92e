package echoapi

import (
	"net/http"
	"testing"

	"github.com/trezcool/mipango/core/user"
)

func TestLoginAdmin(t *testing.T) {
	s, _ := newTestServer(t)

	rec := doRequest(t, s, http.MethodPost, "/api/login", "", map[string]string{
		"email":    "admin@gmail.com",
		"password": "admin",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d; want 200; body %s", rec.Code, rec.Body)
	}
	var resp struct {
		Token string `json:"token"`
		User  struct {
			IsAdmin bool `json:"is_admin"`
		} `json:"user"`
	}
	decode(t, rec, &resp)
	if resp.Token == "" {
		t.Error("token not set")
	}
	if !resp.User.IsAdmin {
		t.Error("is_admin = false; want true")
	}
}

func TestLoginInvalidCredentials(t *testing.T) {
	s, _ := newTestServer(t)

	rec := doRequest(t, s, http.MethodPost, "/api/login", "", map[string]string{
		"email":    "nobody@example.com",
		"password": "nope1234",
	})
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d; want 401; body %s", rec.Code, rec.Body)
	}
}

func TestSignupApprovalFlow(t *testing.T) {
	s, conf := newTestServer(t)
	admin := adminToken(t, conf)

	rec := doRequest(t, s, http.MethodPost, "/api/signup", "", map[string]string{
		"email":      "jane@example.com",
		"name":       "Jane Cruz",
		"password":   "s3cretpw",
		"role":       "teacher",
		"department": "Computer Science",
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("signup status = %d; want 201; body %s", rec.Code, rec.Body)
	}
	var sr user.SignupRequest
	decode(t, rec, &sr)

	// cannot log in before approval
	rec = doRequest(t, s, http.MethodPost, "/api/login", "", map[string]string{
		"email": "jane@example.com", "password": "s3cretpw",
	})
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("login before approval status = %d; want 401", rec.Code)
	}

	rec = doRequest(t, s, http.MethodGet, "/api/admin/signup-requests", admin, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("list requests status = %d; want 200; body %s", rec.Code, rec.Body)
	}
	var reqs []user.SignupRequest
	decode(t, rec, &reqs)
	if len(reqs) != 1 {
		t.Fatalf("got %d requests; want 1", len(reqs))
	}

	rec = doRequest(t, s, http.MethodPost, "/api/admin/signup-requests/"+sr.ID+"/approve", admin, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("approve status = %d; want 200; body %s", rec.Code, rec.Body)
	}

	rec = doRequest(t, s, http.MethodPost, "/api/login", "", map[string]string{
		"email": "jane@example.com", "password": "s3cretpw",
	})
	if rec.Code != http.StatusOK {
		t.Errorf("login after approval status = %d; want 200; body %s", rec.Code, rec.Body)
	}

	rec = doRequest(t, s, http.MethodGet, "/api/admin/users", admin, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("list users status = %d; want 200", rec.Code)
	}
	var users []user.User
	decode(t, rec, &users)
	if len(users) != 1 || !users[0].Approved {
		t.Errorf("users = %+v; want one approved user", users)
	}
}

func TestRejectSignupRequest(t *testing.T) {
	s, conf := newTestServer(t)
	admin := adminToken(t, conf)

	rec := doRequest(t, s, http.MethodPost, "/api/signup", "", map[string]string{
		"email":      "paolo@example.com",
		"name":       "Paolo Diaz",
		"password":   "s3cretpw",
		"role":       "dean",
		"department": "Education",
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("signup status = %d; want 201; body %s", rec.Code, rec.Body)
	}
	var sr user.SignupRequest
	decode(t, rec, &sr)

	rec = doRequest(t, s, http.MethodPost, "/api/admin/signup-requests/"+sr.ID+"/reject", admin, nil)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("reject status = %d; want 204; body %s", rec.Code, rec.Body)
	}

	rec = doRequest(t, s, http.MethodGet, "/api/admin/signup-requests", admin, nil)
	var reqs []user.SignupRequest
	decode(t, rec, &reqs)
	if len(reqs) != 0 {
		t.Errorf("got %d requests; want 0", len(reqs))
	}
}

func TestSignupValidation(t *testing.T) {
	s, _ := newTestServer(t)

	rec := doRequest(t, s, http.MethodPost, "/api/signup", "", map[string]string{
		"email": "not-an-email",
		"role":  "student",
	})
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d; want 400; body %s", rec.Code, rec.Body)
	}
}

func TestAdminEndpointsRequireAdmin(t *testing.T) {
	s, conf := newTestServer(t)

	rec := doRequest(t, s, http.MethodGet, "/api/admin/users", teacherToken(t, conf, "t1", "Jane Cruz"), nil)
	if rec.Code != http.StatusForbidden {
		t.Errorf("teacher status = %d; want 403", rec.Code)
	}

	rec = doRequest(t, s, http.MethodGet, "/api/admin/users", "", nil)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("anonymous status = %d; want 400 (missing token)", rec.Code)
	}
}
