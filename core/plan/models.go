package plan

import (
	"time"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"

	"github.com/trezcool/mipango/core"
)

// Review statuses a course learning plan moves through.
const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
	StatusRevision = "revision"
)

// Departments faculty can file plans under.
var Departments = []string{
	"Computer Science",
	"Engineering",
	"Business Administration",
	"Education",
	"Arts and Sciences",
	"Nursing",
	"Theology",
}

type (
	// ScheduleEntry is one week's row in a plan's learning schedule.
	ScheduleEntry struct {
		Week       int    `json:"week"`
		Topic      string `json:"topic"`
		Activities string `json:"activities"`
	}

	CoursePlan struct {
		ID                string          `json:"id"`
		Subject           string          `json:"subject"`
		CourseCode        string          `json:"course_code"`
		Department        string          `json:"department"`
		Semester          string          `json:"semester"`
		AcademicYear      string          `json:"academic_year"`
		CreditHours       int             `json:"credit_hours"`
		Description       string          `json:"description"`
		Objectives        []string        `json:"objectives"`
		Topics            []string        `json:"topics"`
		AssessmentMethods []string        `json:"assessment_methods"`
		References        []string        `json:"references"`
		Schedule          []ScheduleEntry `json:"schedule"`
		Status            string          `json:"status"`
		Comments          string          `json:"comments"`
		RevisionRequests  []string        `json:"revision_requests"`
		ReviewedBy        string          `json:"reviewed_by"`
		NotificationRead  bool            `json:"notification_read"`
		Version           int             `json:"version"`
		CreatedBy         string          `json:"created_by"`
		CreatedByName     string          `json:"created_by_name"`
		CreatedAt         time.Time       `json:"created_at"`
		UpdatedAt         time.Time       `json:"updated_at"`
	}
)

// IsPending reports whether the plan still awaits a review decision.
func (p *CoursePlan) IsPending() bool { return p.Status == StatusPending }

type NewPlan struct {
	Subject           string          `json:"subject" validate:"required"`
	CourseCode        string          `json:"course_code"`
	Department        string          `json:"department" validate:"required"`
	Semester          string          `json:"semester"`
	AcademicYear      string          `json:"academic_year"`
	CreditHours       int             `json:"credit_hours" validate:"min=0,max=12"`
	Description       string          `json:"description"`
	Objectives        []string        `json:"objectives"`
	Topics            []string        `json:"topics"`
	AssessmentMethods []string        `json:"assessment_methods"`
	References        []string        `json:"references"`
	Schedule          []ScheduleEntry `json:"schedule"`
}

func (np *NewPlan) Validate(validate *validator.Validate, translator ut.Translator) error {
	np.Subject = core.CleanString(np.Subject)
	np.Department = core.CleanString(np.Department)
	np.Semester = core.CleanString(np.Semester)
	np.AcademicYear = core.CleanString(np.AcademicYear)
	if err := validate.Struct(np); err != nil {
		return errors.Wrap(err, "validating new plan")
	}
	return nil
}

// GenerateInput is the seed for plan generation. Only the subject is
// required; everything else is synthesized from it.
type GenerateInput struct {
	Subject      string `json:"subject" validate:"required"`
	Department   string `json:"department"`
	Semester     string `json:"semester"`
	AcademicYear string `json:"academic_year"`
}

func (gi *GenerateInput) Validate(validate *validator.Validate, translator ut.Translator) error {
	gi.Subject = core.CleanString(gi.Subject)
	gi.Department = core.CleanString(gi.Department)
	if err := validate.Struct(gi); err != nil {
		return errors.Wrap(err, "validating generation input")
	}
	return nil
}

// Review carries the dean's decision details.
type Review struct {
	Comments         string   `json:"comments"`
	RevisionRequests []string `json:"revision_requests"`
}

// QueryFilter narrows plan queries.
type QueryFilter struct {
	Search    string `json:"search"`
	Status    string `json:"status"`
	CreatedBy string `json:"created_by"`
}

var (
	ErrNotFound   = errors.New("plan not found")
	ErrNotPending = errors.New("plan is not pending review")
)

// Repository is anything that can persist course plans.
type Repository interface {
	CreatePlan(p CoursePlan) error
	QueryAllPlans() ([]CoursePlan, error)
	GetPlanByID(id string) (CoursePlan, error)
	UpdatePlan(p CoursePlan) error
	FilterPlans(f QueryFilter) ([]CoursePlan, error)
}
