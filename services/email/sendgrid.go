package emailsvc

import (
	"encoding/base64"
	"net/http"
	"sync"

	"github.com/pkg/errors"
	"github.com/sendgrid/sendgrid-go"
	sgmail "github.com/sendgrid/sendgrid-go/helpers/mail"

	"github.com/trezcool/mipango/core"
)

type sendgridService struct {
	conf   *core.Config
	log    core.Logger
	client *sendgrid.Client
}

var _ core.EmailService = (*sendgridService)(nil)

func NewSendgridService(conf *core.Config, log core.Logger) *sendgridService {
	return &sendgridService{
		conf:   conf,
		log:    log,
		client: sendgrid.NewSendClient(conf.SendgridAPIKey),
	}
}

func (svc *sendgridService) SendMessages(messages ...*core.EmailMessage) {
	var wg sync.WaitGroup
	for _, msg := range messages {
		if !msg.HasRecipients() || !msg.HasContent() {
			continue
		}
		wg.Add(1)
		go func(msg *core.EmailMessage) {
			defer wg.Done()
			if err := svc.send(msg); err != nil {
				svc.log.Error("sending email", err)
			}
		}(msg)
	}
	wg.Wait()
}

func (svc *sendgridService) send(msg *core.EmailMessage) error {
	from := svc.conf.DefaultFromEmail()
	m := sgmail.NewV3Mail()
	m.SetFrom(sgmail.NewEmail(from.Name, from.Address))
	m.Subject = msg.Subject

	p := sgmail.NewPersonalization()
	for _, addr := range msg.To {
		p.AddTos(sgmail.NewEmail(addr.Name, addr.Address))
	}
	for _, addr := range msg.Cc {
		p.AddCCs(sgmail.NewEmail(addr.Name, addr.Address))
	}
	for _, addr := range msg.Bcc {
		p.AddBCCs(sgmail.NewEmail(addr.Name, addr.Address))
	}
	m.AddPersonalizations(p)
	m.AddContent(sgmail.NewContent("text/plain", msg.Body))

	for _, att := range msg.Attachments {
		a := sgmail.NewAttachment()
		a.SetContent(base64.StdEncoding.EncodeToString(att.Content.Bytes()))
		a.SetType(att.ContentType)
		a.SetFilename(att.Filename)
		a.SetDisposition("attachment")
		m.AddAttachment(a)
	}

	resp, err := svc.client.Send(m)
	if err != nil {
		return errors.Wrap(err, "sending via sendgrid")
	}
	if resp.StatusCode >= http.StatusBadRequest {
		return errors.Errorf("sendgrid responded %d: %s", resp.StatusCode, resp.Body)
	}
	return nil
}
