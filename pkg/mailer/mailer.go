package mailer

import (
	"fmt"
	"log"
	"net/smtp"
)

type Message struct {
	To      string
	Subject string
	Body    string
}

// Mailer delivers invitation emails. The platform treats delivery as an
// opaque collaborator.
type Mailer interface {
	Send(msg Message) error
}

type SMTPMailer struct {
	Host     string
	Port     string
	Username string
	Password string
	From     string
}

func (m *SMTPMailer) Send(msg Message) error {
	addr := m.Host + ":" + m.Port
	var auth smtp.Auth
	if m.Username != "" {
		auth = smtp.PlainAuth("", m.Username, m.Password, m.Host)
	}

	body := fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\nContent-Type: text/plain; charset=utf-8\r\n\r\n%s\r\n",
		m.From, msg.To, msg.Subject, msg.Body)

	if err := smtp.SendMail(addr, auth, m.From, []string{msg.To}, []byte(body)); err != nil {
		return fmt.Errorf("send mail to %s: %w", msg.To, err)
	}
	return nil
}

// LogMailer logs instead of sending. Used when SMTP is unconfigured.
type LogMailer struct{}

func (LogMailer) Send(msg Message) error {
	log.Printf("mail (not sent): to=%s subject=%q\n%s", msg.To, msg.Subject, msg.Body)
	return nil
}
