package utils

import (
	"fmt"

	"gopkg.in/gomail.v2"
)

// EmailConfig holds SMTP settings for outbound mail.
type EmailConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

// Enabled reports whether enough SMTP configuration is present to
// attempt sending mail.
func (c EmailConfig) Enabled() bool {
	return c.Host != "" && c.From != ""
}

// SendEnrollmentConfirmation sends the post-payment confirmation mail.
// Callers treat failures as non-fatal: the payment is already recorded
// in the ledger by the time this runs.
func SendEnrollmentConfirmation(config EmailConfig, to, name, orderID, amountDisplay string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", config.From)
	m.SetHeader("To", to)
	m.SetHeader("Subject", "Your enrollment is confirmed")

	greeting := "Hi"
	if name != "" {
		greeting = "Hi " + name
	}
	body := fmt.Sprintf(`
		<h2>Payment received</h2>
		<p>%s,</p>
		<p>Your enrollment payment of %s has been received. You're in!</p>
		<p>Order reference: <strong>%s</strong></p>
		<p>We'll be in touch with the course schedule shortly.</p>
	`, greeting, amountDisplay, orderID)
	m.SetBody("text/html", body)

	d := gomail.NewDialer(config.Host, config.Port, config.Username, config.Password)
	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %v", err)
	}

	return nil
}
