package services

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"gopkg.in/gomail.v2"
)

// Mailer sends invoice emails over SMTP.
type Mailer struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

func NewMailerFromEnv() *Mailer {
	port := 587
	if v, err := strconv.Atoi(os.Getenv("SMTP_PORT")); err == nil {
		port = v
	}
	from := os.Getenv("SMTP_FROM")
	if from == "" {
		from = "Relaxing Koala <do-not-reply@relaxingkoala.example>"
	}

	return &Mailer{
		Host:     os.Getenv("SMTP_HOST"),
		Port:     port,
		Username: os.Getenv("SMTP_USERNAME"),
		Password: os.Getenv("SMTP_PASSWORD"),
		From:     from,
	}
}

// SendInvoice emails the rendered invoice PDF to the recipient.
func (m *Mailer) SendInvoice(to string, invoiceNumber string, pdf []byte) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.From)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", "Your invoice from Relaxing Koala")
	msg.SetBody("text/plain", "Thank you for dining with us. Your invoice is attached.")
	msg.Attach(
		fmt.Sprintf("Invoice_%s.pdf", invoiceNumber),
		gomail.SetCopyFunc(func(w io.Writer) error {
			_, err := w.Write(pdf)
			return err
		}),
	)

	dialer := gomail.NewDialer(m.Host, m.Port, m.Username, m.Password)
	return dialer.DialAndSend(msg)
}
