package emailsvc

import (
	"bytes"
	"net/mail"
	"strings"
	"testing"

	"github.com/trezcool/mipango/core"
)

func TestConsoleServiceSendMessages(t *testing.T) {
	var out bytes.Buffer
	svc := NewConsoleService(&out, mail.Address{Name: "Mipango", Address: "noreply@example.com"})

	svc.SendMessages(
		&core.EmailMessage{
			To:      []mail.Address{{Name: "Jane Cruz", Address: "jane@example.com"}},
			Subject: "Your course learning plan has been approved",
			Body:    "Congratulations.",
		},
		&core.EmailMessage{Subject: "no recipients, skipped"},
		&core.EmailMessage{To: []mail.Address{{Address: "x@example.com"}}}, // no content, skipped
	)

	got := out.String()
	if !strings.Contains(got, "jane@example.com") {
		t.Errorf("output %q; want recipient", got)
	}
	if !strings.Contains(got, "Your course learning plan has been approved") {
		t.Errorf("output %q; want subject", got)
	}
	if strings.Contains(got, "no recipients, skipped") {
		t.Error("message without recipients was printed")
	}
}
