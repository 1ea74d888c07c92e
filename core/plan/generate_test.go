package plan

import (
	"regexp"
	"strings"
	"testing"
)

func TestGenerateProgrammingCourse(t *testing.T) {
	p := Generate(GenerateInput{Subject: "Introduction to Programming", Department: "Computer Science"})

	if p.Status != StatusPending {
		t.Errorf("Status = %q; want %q", p.Status, StatusPending)
	}
	if len(p.Objectives) != 5 {
		t.Fatalf("len(Objectives) = %d; want 5", len(p.Objectives))
	}
	if want := "Develop proficiency in writing efficient and maintainable code"; p.Objectives[0] != want {
		t.Errorf("Objectives[0] = %q; want %q", p.Objectives[0], want)
	}
	if len(p.Topics) != 7 {
		t.Errorf("len(Topics) = %d; want 7", len(p.Topics))
	}
	if want := "Programming assignments and projects (40%)"; p.AssessmentMethods[0] != want {
		t.Errorf("AssessmentMethods[0] = %q; want %q", p.AssessmentMethods[0], want)
	}
}

func TestGenerateDatabaseCourse(t *testing.T) {
	p := Generate(GenerateInput{Subject: "Database Systems", Department: "Information Technology"})

	if want := "Relational database concepts and design"; p.Topics[0] != want {
		t.Errorf("Topics[0] = %q; want %q", p.Topics[0], want)
	}
}

func TestGenerateMarketingCourse(t *testing.T) {
	p := Generate(GenerateInput{Subject: "Digital Marketing", Department: "Business Administration"})

	if want := "Marketing fundamentals and the marketing mix"; p.Topics[0] != want {
		t.Errorf("Topics[0] = %q; want %q", p.Topics[0], want)
	}
}

func TestGenerateEducationCourse(t *testing.T) {
	p := Generate(GenerateInput{Subject: "Curriculum Design", Department: "Education"})

	if want := "Learning theories and instructional design"; p.Topics[0] != want {
		t.Errorf("Topics[0] = %q; want %q", p.Topics[0], want)
	}
}

func TestGenerateGenericCourseInterpolatesSubject(t *testing.T) {
	p := Generate(GenerateInput{Subject: "Medical-Surgical Nursing", Department: "Nursing"})

	if want := "Introduction to Medical-Surgical Nursing and its significance"; p.Topics[0] != want {
		t.Errorf("Topics[0] = %q; want %q", p.Topics[0], want)
	}
	for i, o := range p.Objectives {
		if !strings.Contains(o, "Medical-Surgical Nursing") && !strings.Contains(o, "Nursing") {
			t.Errorf("Objectives[%d] = %q; want subject or department mention", i, o)
		}
	}
}

func TestGenerateCourseCode(t *testing.T) {
	re := regexp.MustCompile(`^COM[1-4]\d{2}$`)
	for i := 0; i < 20; i++ {
		code := generateCourseCode("Computer Science")
		if !re.MatchString(code) {
			t.Fatalf("generateCourseCode() = %q; want match for %s", code, re)
		}
	}
}

func TestGenerateSchedule(t *testing.T) {
	p := Generate(GenerateInput{Subject: "Programming", Department: "Computer Science"})

	if len(p.Schedule) != 5 {
		t.Fatalf("len(Schedule) = %d; want 5", len(p.Schedule))
	}
	for i, entry := range p.Schedule {
		if entry.Week != i+1 {
			t.Errorf("Schedule[%d].Week = %d; want %d", i, entry.Week, i+1)
		}
		if entry.Topic != p.Topics[i] {
			t.Errorf("Schedule[%d].Topic = %q; want %q", i, entry.Topic, p.Topics[i])
		}
		if want := scheduleActivities[i%len(scheduleActivities)]; entry.Activities != want {
			t.Errorf("Schedule[%d].Activities = %q; want %q", i, entry.Activities, want)
		}
	}

	// fewer topics than weekly slots
	short := Generate(GenerateInput{Subject: "Special Topics", Department: "Theology"})
	if len(short.Schedule) > len(short.Topics) {
		t.Errorf("len(Schedule) = %d; want at most %d", len(short.Schedule), len(short.Topics))
	}
}
