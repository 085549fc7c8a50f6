package mailer

import (
	"fmt"
	"net/smtp"
	"sort"

	"restaurant-ordering-api/config"
)

// Sender delivers one templated message. Implementations must treat the
// params map as the full substitution context for the template.
type Sender interface {
	Send(templateID string, params map[string]string) error
}

// Template IDs used by the reservation workflow
const (
	TemplateReservationAccepted  = "reservation_accepted"
	TemplateReservationRejected  = "reservation_rejected"
	TemplateReservationCancelled = "reservation_cancelled"
)

var subjects = map[string]string{
	TemplateReservationAccepted:  "Tu reservación fue aceptada",
	TemplateReservationRejected:  "Tu reservación fue rechazada",
	TemplateReservationCancelled: "Tu reservación fue cancelada",
}

// SMTPSender sends mail through a plain SMTP relay
type SMTPSender struct {
	cfg config.SMTPConfig
}

func NewSMTPSender(cfg config.SMTPConfig) *SMTPSender {
	return &SMTPSender{cfg: cfg}
}

func (s *SMTPSender) Send(templateID string, params map[string]string) error {
	to := params["to_email"]
	if to == "" {
		return fmt.Errorf("mailer: template %s has no to_email param", templateID)
	}
	if s.cfg.Host == "" {
		return fmt.Errorf("mailer: SMTP host not configured, dropping %s to %s", templateID, to)
	}

	subject, ok := subjects[templateID]
	if !ok {
		return fmt.Errorf("mailer: unknown template %s", templateID)
	}

	body := "Hola " + params["to_name"] + ",\r\n\r\n" + subject + ".\r\n\r\n"
	keys := make([]string, 0, len(params))
	for k := range params {
		if k != "to_email" && k != "to_name" {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	for _, k := range keys {
		body += k + ": " + params[k] + "\r\n"
	}

	msg := []byte("From: " + s.cfg.From + "\r\n" +
		"To: " + to + "\r\n" +
		"Subject: " + subject + "\r\n" +
		"\r\n" + body)

	var auth smtp.Auth
	if s.cfg.User != "" {
		auth = smtp.PlainAuth("", s.cfg.User, s.cfg.Pass, s.cfg.Host)
	}
	return smtp.SendMail(s.cfg.Host+":"+s.cfg.Port, auth, s.cfg.From, []string{to}, msg)
}
