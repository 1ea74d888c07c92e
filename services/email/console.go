package emailsvc

import (
	"fmt"
	"io"
	"net/mail"
	"strings"
	"sync"

	"github.com/trezcool/mipango/core"
)

// consoleService prints emails to an io.Writer. For local dev and tests.
type consoleService struct {
	mu      sync.Mutex
	out     io.Writer
	address mail.Address
}

var _ core.EmailService = (*consoleService)(nil)

func NewConsoleService(out io.Writer, from mail.Address) *consoleService {
	return &consoleService{out: out, address: from}
}

func (svc *consoleService) SendMessages(messages ...*core.EmailMessage) {
	var wg sync.WaitGroup
	for _, msg := range messages {
		if !msg.HasRecipients() || !msg.HasContent() {
			continue
		}
		wg.Add(1)
		go func(msg *core.EmailMessage) {
			defer wg.Done()
			svc.print(msg)
		}(msg)
	}
	wg.Wait()
}

func (svc *consoleService) print(msg *core.EmailMessage) {
	to := make([]string, 0, len(msg.To))
	for _, addr := range msg.To {
		to = append(to, addr.String())
	}
	attachments := make([]string, 0, len(msg.Attachments))
	for _, att := range msg.Attachments {
		attachments = append(attachments, att.Filename)
	}

	svc.mu.Lock()
	defer svc.mu.Unlock()
	fmt.Fprintf(svc.out, `
---------------------------------------------------------------
From: %s
To: %s
Subject: %s
Attachments: %s

%s
---------------------------------------------------------------
`, svc.address.String(), strings.Join(to, ", "), msg.Subject, strings.Join(attachments, ", "), msg.Body)
}
