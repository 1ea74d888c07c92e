package echoapi

import (
	"net/http"
	"strings"
	"testing"

	"github.com/trezcool/mipango/core/plan"
)

func createPlan(t *testing.T, s *Server, token string) plan.CoursePlan {
	t.Helper()
	rec := doRequest(t, s, http.MethodPost, "/api/plans", token, map[string]interface{}{
		"subject":     "Database Systems",
		"course_code": "COM201",
		"department":  "Computer Science",
		"topics":      []string{"Relational model", "SQL"},
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("create status = %d; want 201; body %s", rec.Code, rec.Body)
	}
	var p plan.CoursePlan
	decode(t, rec, &p)
	return p
}

func TestPlanCreateRequiresAuth(t *testing.T) {
	s, _ := newTestServer(t)
	rec := doRequest(t, s, http.MethodPost, "/api/plans", "", map[string]string{"subject": "X"})
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d; want 400 (missing token)", rec.Code)
	}
}

func TestPlanCreateValidation(t *testing.T) {
	s, conf := newTestServer(t)
	rec := doRequest(t, s, http.MethodPost, "/api/plans", teacherToken(t, conf, "t1", "Jane Cruz"), map[string]string{
		"subject": "",
	})
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d; want 400; body %s", rec.Code, rec.Body)
	}
}

func TestPlanQueryScopedToOwner(t *testing.T) {
	s, conf := newTestServer(t)
	t1 := teacherToken(t, conf, "t1", "Jane Cruz")
	t2 := teacherToken(t, conf, "t2", "Paolo Diaz")
	createPlan(t, s, t1)

	rec := doRequest(t, s, http.MethodGet, "/api/plans", t2, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d; want 200", rec.Code)
	}
	var plans []plan.CoursePlan
	decode(t, rec, &plans)
	if len(plans) != 0 {
		t.Errorf("other teacher sees %d plans; want 0", len(plans))
	}

	rec = doRequest(t, s, http.MethodGet, "/api/plans", deanToken(t, conf), nil)
	decode(t, rec, &plans)
	if len(plans) != 1 {
		t.Errorf("dean sees %d plans; want 1", len(plans))
	}
}

func TestPlanReviewEndpoints(t *testing.T) {
	s, conf := newTestServer(t)
	teacher := teacherToken(t, conf, "t1", "Jane Cruz")
	dean := deanToken(t, conf)
	p := createPlan(t, s, teacher)

	// reviews are the dean's call
	rec := doRequest(t, s, http.MethodPost, "/api/plans/"+p.ID+"/approve", teacher, nil)
	if rec.Code != http.StatusForbidden {
		t.Errorf("teacher approve status = %d; want 403", rec.Code)
	}

	rec = doRequest(t, s, http.MethodPost, "/api/plans/"+p.ID+"/approve", dean, map[string]string{
		"comments": "Well structured.",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("approve status = %d; want 200; body %s", rec.Code, rec.Body)
	}
	var got plan.CoursePlan
	decode(t, rec, &got)
	if got.Status != plan.StatusApproved {
		t.Errorf("Status = %q; want %q", got.Status, plan.StatusApproved)
	}
	if got.ReviewedBy != "Dr. Reyes" {
		t.Errorf("ReviewedBy = %q; want Dr. Reyes", got.ReviewedBy)
	}

	// already decided
	rec = doRequest(t, s, http.MethodPost, "/api/plans/"+p.ID+"/reject", dean, nil)
	if rec.Code != http.StatusConflict {
		t.Errorf("reject after approve status = %d; want 409; body %s", rec.Code, rec.Body)
	}
}

func TestPlanRequestRevision(t *testing.T) {
	s, conf := newTestServer(t)
	teacher := teacherToken(t, conf, "t1", "Jane Cruz")
	dean := deanToken(t, conf)
	p := createPlan(t, s, teacher)

	rec := doRequest(t, s, http.MethodPost, "/api/plans/"+p.ID+"/request-revision", dean, nil)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("revision without requests status = %d; want 400; body %s", rec.Code, rec.Body)
	}

	rec = doRequest(t, s, http.MethodPost, "/api/plans/"+p.ID+"/request-revision", dean, map[string]interface{}{
		"comments":          "See requests.",
		"revision_requests": []string{"Add rubrics"},
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("revision status = %d; want 200; body %s", rec.Code, rec.Body)
	}
	var got plan.CoursePlan
	decode(t, rec, &got)
	if got.Status != plan.StatusRevision {
		t.Errorf("Status = %q; want %q", got.Status, plan.StatusRevision)
	}

	// the submitter acknowledges the decision
	rec = doRequest(t, s, http.MethodPost, "/api/plans/"+p.ID+"/notification-read", teacher, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("notification-read status = %d; want 200", rec.Code)
	}
	decode(t, rec, &got)
	if !got.NotificationRead {
		t.Error("NotificationRead = false; want true")
	}
}

func TestPlanUpdateOwnership(t *testing.T) {
	s, conf := newTestServer(t)
	p := createPlan(t, s, teacherToken(t, conf, "t1", "Jane Cruz"))

	rec := doRequest(t, s, http.MethodPut, "/api/plans/"+p.ID, teacherToken(t, conf, "t2", "Paolo Diaz"), map[string]string{
		"subject":    "Hijacked",
		"department": "Computer Science",
	})
	if rec.Code != http.StatusForbidden {
		t.Errorf("status = %d; want 403; body %s", rec.Code, rec.Body)
	}

	rec = doRequest(t, s, http.MethodPut, "/api/plans/"+p.ID, teacherToken(t, conf, "t1", "Jane Cruz"), map[string]string{
		"subject":    "Database Systems II",
		"department": "Computer Science",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d; want 200; body %s", rec.Code, rec.Body)
	}
	var got plan.CoursePlan
	decode(t, rec, &got)
	if got.Subject != "Database Systems II" || got.Version != 2 {
		t.Errorf("got subject %q version %d; want updated resubmission", got.Subject, got.Version)
	}
}

func TestPlanGenerateEndpoint(t *testing.T) {
	s, conf := newTestServer(t)

	rec := doRequest(t, s, http.MethodPost, "/api/plans/generate", teacherToken(t, conf, "t1", "Jane Cruz"), map[string]string{
		"subject":    "Introduction to Programming",
		"department": "Computer Science",
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d; want 201; body %s", rec.Code, rec.Body)
	}
	var p plan.CoursePlan
	decode(t, rec, &p)
	if len(p.Topics) == 0 || len(p.Schedule) == 0 {
		t.Errorf("generated plan missing content: %+v", p)
	}
	if !strings.HasPrefix(p.CourseCode, "COM") {
		t.Errorf("CourseCode = %q; want COM prefix", p.CourseCode)
	}
}

func TestPlanDocumentEndpoint(t *testing.T) {
	s, conf := newTestServer(t)
	teacher := teacherToken(t, conf, "t1", "Jane Cruz")
	p := createPlan(t, s, teacher)

	rec := doRequest(t, s, http.MethodGet, "/api/plans/"+p.ID+"/document", teacher, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d; want 200; body %s", rec.Code, rec.Body)
	}
	if ct := rec.Header().Get("Content-Type"); ct != docxContentType {
		t.Errorf("Content-Type = %q; want %q", ct, docxContentType)
	}
	if cd := rec.Header().Get("Content-Disposition"); !strings.Contains(cd, "Course Learning Plan.docx") {
		t.Errorf("Content-Disposition = %q; want document filename", cd)
	}
	if rec.Body.Len() == 0 {
		t.Error("empty document body")
	}
}

func TestPlanExportEndpoint(t *testing.T) {
	s, conf := newTestServer(t)
	teacher := teacherToken(t, conf, "t1", "Jane Cruz")
	createPlan(t, s, teacher)

	rec := doRequest(t, s, http.MethodGet, "/api/plans/export", teacher, nil)
	if rec.Code != http.StatusForbidden {
		t.Errorf("teacher export status = %d; want 403", rec.Code)
	}

	rec = doRequest(t, s, http.MethodGet, "/api/plans/export", deanToken(t, conf), nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("dean export status = %d; want 200; body %s", rec.Code, rec.Body)
	}
	if ct := rec.Header().Get("Content-Type"); ct != xlsxContentType {
		t.Errorf("Content-Type = %q; want %q", ct, xlsxContentType)
	}
	if rec.Body.Len() == 0 {
		t.Error("empty workbook body")
	}
}
