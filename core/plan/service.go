package plan

import (
	"fmt"
	"net/mail"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/trezcool/mipango/core"
)

// Directory resolves an account ID to a notifiable address. It keeps
// this package decoupled from the accounts package.
type Directory interface {
	AddressOf(userID string) (mail.Address, error)
}

type Service struct {
	repo      Repository
	mailSvc   core.EmailService
	directory Directory
	log       core.Logger
}

func NewService(repo Repository, mailSvc core.EmailService, directory Directory, log core.Logger) *Service {
	return &Service{
		repo:      repo,
		mailSvc:   mailSvc,
		directory: directory,
		log:       log,
	}
}

// Create files a new plan for review.
func (svc *Service) Create(np NewPlan, creatorID, creatorName string) (CoursePlan, error) {
	now := time.Now().UTC()
	p := CoursePlan{
		ID:                uuid.New().String(),
		Subject:           np.Subject,
		CourseCode:        np.CourseCode,
		Department:        np.Department,
		Semester:          np.Semester,
		AcademicYear:      np.AcademicYear,
		CreditHours:       np.CreditHours,
		Description:       np.Description,
		Objectives:        np.Objectives,
		Topics:            np.Topics,
		AssessmentMethods: np.AssessmentMethods,
		References:        np.References,
		Schedule:          np.Schedule,
		Status:            StatusPending,
		NotificationRead:  true,
		Version:           1,
		CreatedBy:         creatorID,
		CreatedByName:     creatorName,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	if err := svc.repo.CreatePlan(p); err != nil {
		return CoursePlan{}, errors.Wrap(err, "creating plan")
	}
	return p, nil
}

// Generate drafts plan content for the given seed and files it for review.
func (svc *Service) Generate(in GenerateInput, creatorID, creatorName string) (CoursePlan, error) {
	now := time.Now().UTC()
	p := Generate(in)
	p.ID = uuid.New().String()
	p.NotificationRead = true
	p.CreatedBy = creatorID
	p.CreatedByName = creatorName
	p.CreatedAt = now
	p.UpdatedAt = now
	if err := svc.repo.CreatePlan(p); err != nil {
		return CoursePlan{}, errors.Wrap(err, "creating generated plan")
	}
	return p, nil
}

func (svc *Service) QueryAll() ([]CoursePlan, error) {
	plans, err := svc.repo.QueryAllPlans()
	return plans, errors.Wrap(err, "querying plans")
}

func (svc *Service) Filter(f QueryFilter) ([]CoursePlan, error) {
	plans, err := svc.repo.FilterPlans(f)
	return plans, errors.Wrap(err, "filtering plans")
}

func (svc *Service) GetByID(id string) (CoursePlan, error) {
	p, err := svc.repo.GetPlanByID(id)
	return p, errors.Wrapf(err, "getting plan %s", id)
}

// Update replaces a plan's content and resubmits it for review. The
// previous decision's comments and revision requests are cleared.
func (svc *Service) Update(id string, np NewPlan) (CoursePlan, error) {
	p, err := svc.repo.GetPlanByID(id)
	if err != nil {
		return CoursePlan{}, errors.Wrapf(err, "getting plan %s", id)
	}
	p.Subject = np.Subject
	p.CourseCode = np.CourseCode
	p.Department = np.Department
	p.Semester = np.Semester
	p.AcademicYear = np.AcademicYear
	p.CreditHours = np.CreditHours
	p.Description = np.Description
	p.Objectives = np.Objectives
	p.Topics = np.Topics
	p.AssessmentMethods = np.AssessmentMethods
	p.References = np.References
	p.Schedule = np.Schedule
	p.Status = StatusPending
	p.Comments = ""
	p.RevisionRequests = nil
	p.ReviewedBy = ""
	p.NotificationRead = true
	p.Version++
	p.UpdatedAt = time.Now().UTC()
	if err = svc.repo.UpdatePlan(p); err != nil {
		return CoursePlan{}, errors.Wrapf(err, "updating plan %s", id)
	}
	return p, nil
}

// Approve records the reviewer's approval and notifies the submitter.
func (svc *Service) Approve(id, reviewer string, rev Review) (CoursePlan, error) {
	return svc.review(id, reviewer, StatusApproved, rev.Comments, nil)
}

// Reject records the reviewer's rejection and notifies the submitter.
func (svc *Service) Reject(id, reviewer string, rev Review) (CoursePlan, error) {
	return svc.review(id, reviewer, StatusRejected, rev.Comments, nil)
}

// RequestRevision sends a plan back to its submitter with at least one
// concrete change request.
func (svc *Service) RequestRevision(id, reviewer string, rev Review) (CoursePlan, error) {
	requests := make([]string, 0, len(rev.RevisionRequests))
	for _, r := range rev.RevisionRequests {
		if r = core.CleanString(r); r != "" {
			requests = append(requests, r)
		}
	}
	if len(requests) == 0 {
		return CoursePlan{}, core.NewValidationError(nil, core.FieldError{
			Field: "revision_requests", Error: "at least one revision request is required",
		})
	}
	return svc.review(id, reviewer, StatusRevision, rev.Comments, requests)
}

func (svc *Service) review(id, reviewer, status, comments string, requests []string) (CoursePlan, error) {
	p, err := svc.repo.GetPlanByID(id)
	if err != nil {
		return CoursePlan{}, errors.Wrapf(err, "getting plan %s", id)
	}
	if !p.IsPending() {
		return CoursePlan{}, ErrNotPending
	}
	p.Status = status
	p.Comments = comments
	p.RevisionRequests = requests
	p.ReviewedBy = reviewer
	p.NotificationRead = false
	p.UpdatedAt = time.Now().UTC()
	if err = svc.repo.UpdatePlan(p); err != nil {
		return CoursePlan{}, errors.Wrapf(err, "updating plan %s", id)
	}
	svc.notifySubmitter(p)
	return p, nil
}

// MarkNotificationRead acknowledges the review decision on the
// submitter's side.
func (svc *Service) MarkNotificationRead(id string) (CoursePlan, error) {
	p, err := svc.repo.GetPlanByID(id)
	if err != nil {
		return CoursePlan{}, errors.Wrapf(err, "getting plan %s", id)
	}
	if p.NotificationRead {
		return p, nil
	}
	p.NotificationRead = true
	p.UpdatedAt = time.Now().UTC()
	if err = svc.repo.UpdatePlan(p); err != nil {
		return CoursePlan{}, errors.Wrapf(err, "updating plan %s", id)
	}
	return p, nil
}

var reviewSubjects = map[string]string{
	StatusApproved: "Your course learning plan has been approved",
	StatusRejected: "Your course learning plan has been rejected",
	StatusRevision: "Revision requested on your course learning plan",
}

func (svc *Service) notifySubmitter(p CoursePlan) {
	if svc.mailSvc == nil || svc.directory == nil {
		return
	}
	addr, err := svc.directory.AddressOf(p.CreatedBy)
	if err != nil {
		if svc.log != nil {
			svc.log.Warn(fmt.Sprintf("resolving submitter of plan %s: %v", p.ID, err))
		}
		return
	}

	body := fmt.Sprintf("Your learning plan for %q (%s) has been marked %s.", p.Subject, p.CourseCode, p.Status)
	if p.Comments != "" {
		body += "\n\nComments: " + p.Comments
	}
	for _, r := range p.RevisionRequests {
		body += "\n- " + r
	}
	svc.mailSvc.SendMessages(&core.EmailMessage{
		To:      []mail.Address{addr},
		Subject: reviewSubjects[p.Status],
		Body:    body,
	})
}
