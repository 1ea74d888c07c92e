package plan

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/fumiama/go-docx"
	"github.com/pkg/errors"

	"github.com/trezcool/mipango/core"
)

const outcomeMark = "✓"

// DocumentOptions tweaks the rendered plan document.
type DocumentOptions struct {
	// OutcomeMark decides whether the outcome relationship cell at the
	// given coordinates carries a check mark. Cells stay empty when nil.
	OutcomeMark func(row, col int) bool
}

// DocumentFilename is the suggested download name for a plan's document.
func DocumentFilename(p CoursePlan) string {
	return core.SanitizeFilename(p.Subject) + " - Course Learning Plan.docx"
}

// BuildDocument renders a plan as a Word document following the
// university's course learning plan template.
func BuildDocument(p CoursePlan, opts DocumentOptions) (*bytes.Buffer, string, error) {
	b := docBuilder{doc: docx.New().WithDefaultTheme(), opts: opts}

	b.coverPage(p)
	b.institutionalPage()
	b.programOutcomesPage()
	b.courseInformationPage(p)
	b.courseOutlinePage(p)
	b.requirementsAndGrading()
	b.rubricsAndPolicies()
	b.referencesAndNotation(p)

	var buf bytes.Buffer
	if _, err := b.doc.WriteTo(&buf); err != nil {
		return nil, "", errors.Wrap(err, "writing plan document")
	}
	return &buf, DocumentFilename(p), nil
}

type docBuilder struct {
	doc  *docx.Docx
	opts DocumentOptions
}

func (b *docBuilder) title(text string) {
	para := b.doc.AddParagraph()
	para.AddText(text).Size("32").Bold()
	para.Justification("center")
}

func (b *docBuilder) heading(text string) {
	para := b.doc.AddParagraph()
	para.AddText(text).Size("26").Bold()
	para.Justification("center")
}

func (b *docBuilder) centered(text string) {
	para := b.doc.AddParagraph()
	para.AddText(text)
	para.Justification("center")
}

func (b *docBuilder) text(text string) {
	b.doc.AddParagraph().AddText(text)
}

func (b *docBuilder) blank() {
	b.doc.AddParagraph().AddText("")
}

func (b *docBuilder) pageBreak() {
	b.doc.AddParagraph().AddPageBreaks()
}

func (b *docBuilder) table(rows [][]string) {
	cols := 0
	for _, row := range rows {
		if len(row) > cols {
			cols = len(row)
		}
	}
	tbl := b.doc.AddTable(len(rows), cols, 8000, nil)
	for i, row := range rows {
		for j, cell := range row {
			tbl.TableRows[i].TableCells[j].AddParagraph().AddText(cell)
		}
	}
}

func (b *docBuilder) mark(row, col int) string {
	if b.opts.OutcomeMark != nil && b.opts.OutcomeMark(row, col) {
		return outcomeMark
	}
	return ""
}

func (b *docBuilder) coverPage(p CoursePlan) {
	b.title(universityName)
	b.centered(universityAddress)
	b.heading(collegeName)
	b.title(documentTitle)
	b.centered(termLine(p))
	b.blank()

	b.table([][]string{
		{"Course Number", ":", courseNumber(p)},
		{"Descriptive Title", ":", p.Subject},
		{"Units", ":", unitsLine(p)},
		{"Contact Hours per Week", ":", defaultContactHours},
		{"Type of Course", ":", defaultCourseType},
	})
	b.blank()

	author := p.CreatedByName
	if author == "" {
		author = defaultAuthor
	}
	b.table([][]string{
		{"Prepared and Submitted by:", "Date Submitted:", "Reviewed by:", "Date Reviewed:"},
		{author, "_________________", defaultAuthor, "_________________"},
		{"Instructor", "", "Program Coordinator", ""},
	})
	b.blank()
	b.table([][]string{
		{"Endorsed by:", "Date Endorsed:"},
		{deanName, "_________________"},
		{deanTitle, ""},
	})
	b.blank()

	b.centered("Approved by:")
	b.centered(vpName)
	b.centered(vpTitle)
	b.pageBreak()
}

func (b *docBuilder) institutionalPage() {
	b.heading("VISION")
	b.centered(visionText)
	b.blank()

	b.heading("MISSION")
	b.text(missionText)
	b.blank()

	b.heading("CORE VALUES")
	for _, v := range coreValues {
		b.text(v)
	}
	b.blank()

	b.heading("CORE COMPETENCIES")
	for _, c := range coreCompetencies {
		b.text(c)
	}
	b.blank()

	b.heading("INSTITUTIONAL OBJECTIVES")
	b.text("In keeping with its Philosophy, Vision and Mission, La Salette professes the following institutional objectives:")
	for _, o := range institutionalObjectives {
		b.text(o)
	}
	b.blank()

	b.heading("INSTITUTIONAL OUTCOMES")
	b.text("Having finished their academic degree at the University of La Salette, the graduates are expected to become:")
	for _, o := range institutionalOutcomes {
		b.text(o)
	}
	b.pageBreak()
}

func (b *docBuilder) programOutcomesPage() {
	b.heading("PROGRAM OUTCOMES")
	b.text("An IT graduate must acquire skill set that enables him or her to successfully perform integrative task including:")

	rows := [][]string{{"CODE", "BSIT PROGRAM OUTCOMES"}}
	for i, o := range programOutcomes {
		rows = append(rows, []string{programOutcomeCode(i), o})
	}
	b.table(rows)
	b.blank()

	b.heading("PROGRAM OUTCOMES AND THEIR RELATIONSHIP TO THE INSTITUTIONAL OUTCOMES")
	rows = [][]string{append([]string{"CODE", "BSIT PROGRAM OUTCOMES"}, institutionalOutcomeCodes...)}
	for i, o := range programOutcomes {
		row := []string{programOutcomeCode(i), o}
		for j := range institutionalOutcomeCodes {
			row = append(row, b.mark(i, j))
		}
		rows = append(rows, row)
	}
	b.table(rows)
	b.pageBreak()
}

func (b *docBuilder) courseInformationPage(p CoursePlan) {
	b.heading("COURSE INFORMATION")
	b.table([][]string{
		{"Course Code", courseNumber(p)},
		{"Course Title", p.Subject},
		{"Course Description", courseDescription(p)},
		{"Pre-requisite", "PCCBSIT 002"},
		{"Co-requisite", ""},
		{"Credit", "3 units (2 units lecture/1 unit laboratory)"},
		{"Contact Hours Per Week", "2 hours Lecture / 3 hours Laboratory per week"},
		{"Class Schedule", "1A Lab 11:30am – 12:30pm MWF  / Lecture 8:00am – 9:00am TTh | 1B Lab 10:30am-12:00nn TTh/ Lecture 9:30-10:30 MW"},
		{"Room Assignment", "1A Lab ComLab 4, Lecture HD302 | 1B Lab ComLab 4, Lecture HD302"},
	})
	b.blank()

	b.heading("COURSE OUTCOMES AND THEIR RELATIONSHIP TO THE PROGRAM OUTCOMES")
	header := []string{"COURSE OUTCOMES"}
	for i := range programOutcomes {
		header = append(header, programOutcomeCode(i))
	}
	rows := [][]string{header}
	objectives := p.Objectives
	if len(objectives) == 0 {
		objectives = defaultObjectives
	}
	for i, o := range objectives {
		row := []string{fmt.Sprintf("LO%d %s", i+1, o)}
		for j := range programOutcomes {
			row = append(row, b.mark(i, j))
		}
		rows = append(rows, row)
	}
	b.table(rows)
	b.pageBreak()
}

func (b *docBuilder) courseOutlinePage(p CoursePlan) {
	b.heading("COURSE OUTLINE")
	rows := [][]string{
		{"TIME FRAME", "Learning Outcomes", "Topic Outline", "Methodology", "Assessment", "Learning Resources"},
	}
	for _, wk := range outlineWeeks(p) {
		topic := wk.Topic
		if topic == "" {
			topic = "Introduction to the subject"
		}
		rows = append(rows, []string{
			fmt.Sprintf("Week %d", wk.Week),
			fmt.Sprintf("At the end of the week, students will be able to understand and apply concepts related to %s.", topic),
			topic,
			"Lecture, Discussion, Hands-on Activities, Group Work",
			"Quizzes, Laboratory Activities, Assignments, Group Presentations",
			"Slides/Module, Textbooks, Online resources, Case Studies",
		})
	}
	b.table(rows)
	b.blank()
}

func (b *docBuilder) requirementsAndGrading() {
	b.heading("COURSE REQUIREMENTS")
	for _, r := range courseRequirements {
		b.text(r)
	}
	b.blank()

	b.heading("GRADING SYSTEM")
	b.text("The student's grade is composed of:")
	for _, line := range gradingSystem {
		b.text(line)
	}
	b.pageBreak()
}

func (b *docBuilder) rubricsAndPolicies() {
	b.heading("PERFORMANCE ASSESSMENT RUBRICS")
	b.table([][]string{rubricHeader, rubricDescriptors})
	b.text("* Each attainment descriptor may be changed to suit the particular criterion.")
	b.text("* This applies to both laboratory and lecture")
	b.blank()

	b.heading("SPECIFIC COURSE POLICIES")
	b.text("According to the University of La Salette, Inc. Student Handbook Section 5.7")
	for _, pol := range coursePolicies {
		b.text(pol)
	}
	b.blank()

	b.heading("CONSULTATION HOURS")
	b.table(consultationHours)
	b.pageBreak()
}

func (b *docBuilder) referencesAndNotation(p CoursePlan) {
	b.heading("REFERENCES")
	references := p.References
	if len(references) == 0 {
		references = defaultReferences
	}
	for _, r := range references {
		b.text("• " + r)
	}
	b.blank()

	b.heading("REVISION AND APPROVAL NOTATION:")
	author := p.CreatedByName
	if author == "" {
		author = defaultAuthor
	}
	b.table([][]string{
		{" ", "NAME", "POSITION/DESIGNATION", "SIGNATURE", "DATE"},
		{"Last Revised by", author, "Teaching Staff", "", ""},
		{"Last Updated by", author, "Program Coordinator", "", ""},
		{"Reviewed by", author, "Program Coordinator", "", ""},
		{"Endorsed by", deanName, "College Dean", "", ""},
		{"Approved by", vpName, vpTitle, "", ""},
	})
}

func termLine(p CoursePlan) string {
	if p.Semester != "" && p.AcademicYear != "" {
		return fmt.Sprintf("%s, Academic Year %s", p.Semester, p.AcademicYear)
	}
	return defaultTermLine
}

func courseNumber(p CoursePlan) string {
	if p.CourseCode != "" {
		return p.CourseCode
	}
	return "PBSIT 001"
}

func unitsLine(p CoursePlan) string {
	if p.CreditHours > 0 {
		return fmt.Sprintf("%d units", p.CreditHours)
	}
	return defaultUnits
}

func courseDescription(p CoursePlan) string {
	if p.Description != "" {
		return p.Description
	}
	subject := strings.ToLower(p.Subject)
	if subject == "" {
		subject = "the subject"
	}
	return fmt.Sprintf("This course provides concepts, theory and practice to the field of %[1]s. "+
		"The course covers basic components of %[1]s; interdisciplinary underpinnings; informed and critical evaluation of computer-based technology; "+
		"user-oriented perspective, rather than system-oriented, with two thrusts: human (cognitive, social) and technological (input/output, interactions styles, devices); "+
		"and design guidelines, evaluation methods, participatory design, communication between users and system developers. "+
		"Students at the end of the course will have learned some useful techniques and an understanding of systematic procedures for creating usable and useful designs and systems.", subject)
}

// outlineWeeks falls back to a topic-derived schedule when the plan has
// no explicit one.
func outlineWeeks(p CoursePlan) []ScheduleEntry {
	if len(p.Schedule) > 0 {
		return p.Schedule
	}
	weeks := make([]ScheduleEntry, 0, len(p.Topics))
	for i, topic := range p.Topics {
		weeks = append(weeks, ScheduleEntry{
			Week:       i + 1,
			Topic:      topic,
			Activities: "Lecture, Discussion, Hands-on Activities",
		})
	}
	return weeks
}

func programOutcomeCode(i int) string {
	return fmt.Sprintf("IT%02d", i+1)
}
