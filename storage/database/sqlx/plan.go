package sqlxdb

import (
	"database/sql"
	"encoding/json"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"github.com/trezcool/mipango/core/plan"
)

type planRepository struct {
	db *sqlx.DB
}

var _ plan.Repository = (*planRepository)(nil)

func NewPlanRepository(db *sqlx.DB) *planRepository {
	return &planRepository{db: db}
}

// planRow flattens CoursePlan for sqlx scanning. Slice fields ride as JSONB.
type planRow struct {
	ID                string    `db:"id"`
	Subject           string    `db:"subject"`
	CourseCode        string    `db:"course_code"`
	Department        string    `db:"department"`
	Semester          string    `db:"semester"`
	AcademicYear      string    `db:"academic_year"`
	CreditHours       int       `db:"credit_hours"`
	Description       string    `db:"description"`
	Objectives        []byte    `db:"objectives"`
	Topics            []byte    `db:"topics"`
	AssessmentMethods []byte    `db:"assessment_methods"`
	References        []byte    `db:"references"`
	Schedule          []byte    `db:"schedule"`
	Status            string    `db:"status"`
	Comments          string    `db:"comments"`
	RevisionRequests  []byte    `db:"revision_requests"`
	ReviewedBy        string    `db:"reviewed_by"`
	NotificationRead  bool      `db:"notification_read"`
	Version           int       `db:"version"`
	CreatedBy         string    `db:"created_by"`
	CreatedByName     string    `db:"created_by_name"`
	CreatedAt         time.Time `db:"created_at"`
	UpdatedAt         time.Time `db:"updated_at"`
}

func newPlanRow(p plan.CoursePlan) (planRow, error) {
	row := planRow{
		ID:               p.ID,
		Subject:          p.Subject,
		CourseCode:       p.CourseCode,
		Department:       p.Department,
		Semester:         p.Semester,
		AcademicYear:     p.AcademicYear,
		CreditHours:      p.CreditHours,
		Description:      p.Description,
		Status:           p.Status,
		Comments:         p.Comments,
		ReviewedBy:       p.ReviewedBy,
		NotificationRead: p.NotificationRead,
		Version:          p.Version,
		CreatedBy:        p.CreatedBy,
		CreatedByName:    p.CreatedByName,
		CreatedAt:        p.CreatedAt,
		UpdatedAt:        p.UpdatedAt,
	}
	var err error
	if row.Objectives, err = marshalList(p.Objectives); err != nil {
		return row, err
	}
	if row.Topics, err = marshalList(p.Topics); err != nil {
		return row, err
	}
	if row.AssessmentMethods, err = marshalList(p.AssessmentMethods); err != nil {
		return row, err
	}
	if row.References, err = marshalList(p.References); err != nil {
		return row, err
	}
	if row.RevisionRequests, err = marshalList(p.RevisionRequests); err != nil {
		return row, err
	}
	schedule := p.Schedule
	if schedule == nil {
		schedule = []plan.ScheduleEntry{}
	}
	if row.Schedule, err = json.Marshal(schedule); err != nil {
		return row, errors.Wrap(err, "marshaling schedule")
	}
	return row, nil
}

func marshalList(list []string) ([]byte, error) {
	if list == nil {
		list = []string{}
	}
	data, err := json.Marshal(list)
	return data, errors.Wrap(err, "marshaling list")
}

func (row planRow) plan() (plan.CoursePlan, error) {
	p := plan.CoursePlan{
		ID:               row.ID,
		Subject:          row.Subject,
		CourseCode:       row.CourseCode,
		Department:       row.Department,
		Semester:         row.Semester,
		AcademicYear:     row.AcademicYear,
		CreditHours:      row.CreditHours,
		Description:      row.Description,
		Status:           row.Status,
		Comments:         row.Comments,
		ReviewedBy:       row.ReviewedBy,
		NotificationRead: row.NotificationRead,
		Version:          row.Version,
		CreatedBy:        row.CreatedBy,
		CreatedByName:    row.CreatedByName,
		CreatedAt:        row.CreatedAt,
		UpdatedAt:        row.UpdatedAt,
	}
	for _, field := range []struct {
		data []byte
		dst  *[]string
	}{
		{row.Objectives, &p.Objectives},
		{row.Topics, &p.Topics},
		{row.AssessmentMethods, &p.AssessmentMethods},
		{row.References, &p.References},
		{row.RevisionRequests, &p.RevisionRequests},
	} {
		if len(field.data) == 0 {
			continue
		}
		if err := json.Unmarshal(field.data, field.dst); err != nil {
			return p, errors.Wrap(err, "unmarshaling list")
		}
	}
	if len(row.Schedule) > 0 {
		if err := json.Unmarshal(row.Schedule, &p.Schedule); err != nil {
			return p, errors.Wrap(err, "unmarshaling schedule")
		}
	}
	return p, nil
}

const planColumns = `id, subject, course_code, department, semester, academic_year, credit_hours, description,
objectives, topics, assessment_methods, "references", schedule, status, comments, revision_requests,
reviewed_by, notification_read, version, created_by, created_by_name, created_at, updated_at`

func (repo *planRepository) CreatePlan(p plan.CoursePlan) error {
	row, err := newPlanRow(p)
	if err != nil {
		return err
	}
	const stmt = `
INSERT INTO course_plan (` + planColumns + `)
VALUES (:id, :subject, :course_code, :department, :semester, :academic_year, :credit_hours, :description,
        :objectives, :topics, :assessment_methods, :references, :schedule, :status, :comments, :revision_requests,
        :reviewed_by, :notification_read, :version, :created_by, :created_by_name, :created_at, :updated_at)`
	_, err = repo.db.NamedExec(stmt, row)
	return errors.Wrap(err, "inserting plan")
}

func (repo *planRepository) QueryAllPlans() ([]plan.CoursePlan, error) {
	var rows []planRow
	err := repo.db.Select(&rows, `SELECT `+planColumns+` FROM course_plan ORDER BY created_at DESC`)
	if err != nil {
		return nil, errors.Wrap(err, "selecting plans")
	}
	return rowsToPlans(rows)
}

func (repo *planRepository) GetPlanByID(id string) (plan.CoursePlan, error) {
	var row planRow
	err := repo.db.Get(&row, `SELECT `+planColumns+` FROM course_plan WHERE id = $1`, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return plan.CoursePlan{}, plan.ErrNotFound
		}
		return plan.CoursePlan{}, errors.Wrap(err, "selecting plan")
	}
	return row.plan()
}

func (repo *planRepository) UpdatePlan(p plan.CoursePlan) error {
	row, err := newPlanRow(p)
	if err != nil {
		return err
	}
	const stmt = `
UPDATE course_plan
SET subject = :subject, course_code = :course_code, department = :department, semester = :semester,
    academic_year = :academic_year, credit_hours = :credit_hours, description = :description,
    objectives = :objectives, topics = :topics, assessment_methods = :assessment_methods,
    "references" = :references, schedule = :schedule, status = :status, comments = :comments,
    revision_requests = :revision_requests, reviewed_by = :reviewed_by,
    notification_read = :notification_read, version = :version, updated_at = :updated_at
WHERE id = :id`
	res, err := repo.db.NamedExec(stmt, row)
	if err != nil {
		return errors.Wrap(err, "updating plan")
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return plan.ErrNotFound
	}
	return nil
}

func (repo *planRepository) FilterPlans(f plan.QueryFilter) ([]plan.CoursePlan, error) {
	stmt := `SELECT ` + planColumns + ` FROM course_plan WHERE 1=1`
	args := make(map[string]interface{})
	if f.Status != "" {
		stmt += ` AND status = :status`
		args["status"] = f.Status
	}
	if f.CreatedBy != "" {
		stmt += ` AND created_by = :created_by`
		args["created_by"] = f.CreatedBy
	}
	if f.Search != "" {
		stmt += ` AND (subject ILIKE :search OR course_code ILIKE :search OR department ILIKE :search OR created_by_name ILIKE :search)`
		args["search"] = "%" + f.Search + "%"
	}
	stmt += ` ORDER BY created_at DESC`

	query, qargs, err := sqlx.Named(stmt, args)
	if err != nil {
		return nil, errors.Wrap(err, "binding filter")
	}
	var rows []planRow
	if err = repo.db.Select(&rows, repo.db.Rebind(query), qargs...); err != nil {
		return nil, errors.Wrap(err, "selecting plans")
	}
	return rowsToPlans(rows)
}

func rowsToPlans(rows []planRow) ([]plan.CoursePlan, error) {
	plans := make([]plan.CoursePlan, 0, len(rows))
	for _, row := range rows {
		p, err := row.plan()
		if err != nil {
			return nil, err
		}
		plans = append(plans, p)
	}
	return plans, nil
}
