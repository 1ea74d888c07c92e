package plan_test

import (
	"bytes"
	"testing"

	"github.com/trezcool/mipango/core/plan"
)

func TestDocumentFilename(t *testing.T) {
	tests := []struct {
		subject string
		want    string
	}{
		{"Database Systems", "Database Systems - Course Learning Plan.docx"},
		{"TCP/IP Networking", "TCP-IP Networking - Course Learning Plan.docx"},
		{"What is HCI?", "What is HCI - Course Learning Plan.docx"},
	}
	for _, tt := range tests {
		if got := plan.DocumentFilename(plan.CoursePlan{Subject: tt.subject}); got != tt.want {
			t.Errorf("DocumentFilename(%q) = %q; want %q", tt.subject, got, tt.want)
		}
	}
}

func TestBuildDocument(t *testing.T) {
	p := plan.Generate(plan.GenerateInput{Subject: "Introduction to Programming", Department: "Computer Science"})
	p.CreatedByName = "Jane Cruz"

	buf, filename, err := plan.BuildDocument(p, plan.DocumentOptions{})
	if err != nil {
		t.Fatalf("BuildDocument() error: %v", err)
	}
	if buf.Len() == 0 {
		t.Fatal("BuildDocument() returned empty document")
	}
	if want := "Introduction to Programming - Course Learning Plan.docx"; filename != want {
		t.Errorf("filename = %q; want %q", filename, want)
	}
	// docx files are zip archives
	if !bytes.HasPrefix(buf.Bytes(), []byte("PK")) {
		t.Errorf("document does not look like a zip archive: % x", buf.Bytes()[:4])
	}
}

func TestBuildDocumentEmptyPlan(t *testing.T) {
	buf, _, err := plan.BuildDocument(plan.CoursePlan{Subject: "Special Topics"}, plan.DocumentOptions{})
	if err != nil {
		t.Fatalf("BuildDocument() error: %v", err)
	}
	if buf.Len() == 0 {
		t.Fatal("BuildDocument() returned empty document")
	}
}

func TestBuildDocumentOutcomeMarks(t *testing.T) {
	p := plan.Generate(plan.GenerateInput{Subject: "Programming", Department: "Computer Science"})
	_, _, err := plan.BuildDocument(p, plan.DocumentOptions{
		OutcomeMark: func(row, col int) bool { return (row+col)%2 == 0 },
	})
	if err != nil {
		t.Fatalf("BuildDocument() error: %v", err)
	}
}
