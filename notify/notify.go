// Package notify sends purge report emails through Mailjet.
package notify

import (
	"bytes"
	"fmt"
	"text/template"
	"time"

	_ "embed"

	"github.com/badoux/checkmail"
	"github.com/mailjet/mailjet-apiv3-go/v4"
	"github.com/sirupsen/logrus"
)

var log = logrus.New()

func init() {
	log.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})
}

//go:embed templates/purgeReport.tmpl
var purgeReportTmpl string

const (
	senderName          = "Todosweep"
	reportSubjectPrefix = "[Todosweep]"
)

// Notifier reports the outcome of a purge.
type Notifier interface {
	SendPurgeReport(user string, deleted []string) error
}

// Mailer sends purge reports through the Mailjet API.
type Mailer struct {
	client        *mailjet.Client
	sender        string
	recipient     string
	recipientName string
	tmpl          *template.Template
}

// reportData is the template payload for a purge report email.
type reportData struct {
	User    string
	Date    string
	Deleted []string
}

// NewMailer validates the configuration and builds a Mailjet-backed
// Notifier.
func NewMailer(apiKeyPublic, apiKeyPrivate, sender, recipient, recipientName string) (*Mailer, error) {
	if len(apiKeyPublic) == 0 {
		return nil, fmt.Errorf("missing mailjet API public key")
	}
	if len(apiKeyPrivate) == 0 {
		return nil, fmt.Errorf("missing mailjet API private key")
	}
	if err := checkmail.ValidateFormat(sender); err != nil {
		return nil, fmt.Errorf("invalid sender email address: %s", sender)
	}
	if err := checkmail.ValidateFormat(recipient); err != nil {
		return nil, fmt.Errorf("invalid recipient email address: %s", recipient)
	}
	tmpl, err := template.New("purgeReport").Parse(purgeReportTmpl)
	if err != nil {
		return nil, fmt.Errorf("failed to parse purge report template: %w", err)
	}

	return &Mailer{
		client:        mailjet.NewMailjetClient(apiKeyPublic, apiKeyPrivate),
		sender:        sender,
		recipient:     recipient,
		recipientName: recipientName,
		tmpl:          tmpl,
	}, nil
}

// SendPurgeReport emails the list of purged items for user.
func (m *Mailer) SendPurgeReport(user string, deleted []string) error {
	body, err := m.renderReport(user, deleted)
	if err != nil {
		return err
	}

	messagesInfo := []mailjet.InfoMessagesV31{
		{
			From: &mailjet.RecipientV31{
				Email: m.sender,
				Name:  senderName,
			},
			To: &mailjet.RecipientsV31{
				mailjet.RecipientV31{
					Email: m.recipient,
					Name:  m.recipientName,
				},
			},
			Subject:  fmt.Sprintf("%s Purge report for %s", reportSubjectPrefix, user),
			TextPart: body,
		},
	}
	messages := mailjet.MessagesV31{Info: messagesInfo}
	res, err := m.client.SendMailV31(&messages)
	if err != nil {
		return fmt.Errorf("mailjet send email error: %w", err)
	}
	if len(res.ResultsV31) == 0 {
		return fmt.Errorf("mailjet send email API response error: %v", res)
	}
	log.Infof("Purge report for %s sent to %s", user, m.recipient)
	return nil
}

func (m *Mailer) renderReport(user string, deleted []string) (string, error) {
	data := reportData{
		User:    user,
		Date:    time.Now().Format("2006-01-02"),
		Deleted: deleted,
	}
	var buf bytes.Buffer
	if err := m.tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to render purge report: %w", err)
	}
	return buf.String(), nil
}
