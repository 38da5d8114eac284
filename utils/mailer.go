package utils

import (
	"fmt"
	"log"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// Mailer sends transactional email through SendGrid. With an empty API
// key every send becomes a logged no-op, which keeps local development
// and tests offline.
type Mailer struct {
	apiKey string
	sender string
}

func NewMailer(apiKey, sender string) *Mailer {
	return &Mailer{apiKey: apiKey, sender: sender}
}

func (m *Mailer) send(toName, toEmail, subject, htmlBody string) error {
	if m.apiKey == "" {
		log.Printf("Mailer disabled, skipping email %q to %s", subject, toEmail)
		return nil
	}

	from := mail.NewEmail("SkillUp", m.sender)
	to := mail.NewEmail(toName, toEmail)
	message := mail.NewSingleEmail(from, subject, to, "", htmlBody)

	client := sendgrid.NewSendClient(m.apiKey)
	resp, err := client.Send(message)
	if err != nil {
		return err
	}
	if resp.StatusCode >= 400 {
		return fmt.Errorf("sendgrid returned status %d: %s", resp.StatusCode, resp.Body)
	}
	return nil
}

// SendWelcome is fire-and-forget; call it from a goroutine
func (m *Mailer) SendWelcome(name, email string) {
	body := getEmailTemplate("Welcome to SkillUp",
		fmt.Sprintf("<p>Hi %s,</p><p>Your account is ready. Pick a topic and start learning!</p>", name))
	if err := m.send(name, email, "Welcome to SkillUp", body); err != nil {
		log.Printf("Error sending welcome email to %s: %v", email, err)
	}
}

// SendBadgeAwarded is fire-and-forget; call it from a goroutine
func (m *Mailer) SendBadgeAwarded(name, email, badge string) {
	body := getEmailTemplate("You earned a badge",
		fmt.Sprintf("<p>Hi %s,</p><p>You just earned the <b>%s</b> badge. Keep it up!</p>", name, badge))
	if err := m.send(name, email, "You earned a badge!", body); err != nil {
		log.Printf("Error sending badge email to %s: %v", email, err)
	}
}

func getEmailTemplate(title, bodyContent string) string {
	return fmt.Sprintf(`
	<!DOCTYPE html>
	<html>
	<head>
		<style>
			body { font-family: 'Helvetica Neue', Helvetica, Arial, sans-serif; background-color: #F6F6F6; margin: 0; padding: 0; }
			.container { max-width: 600px; margin: 40px auto; background: #FFFFFF; border-radius: 8px; overflow: hidden; }
			.header { background-color: #1B4332; padding: 30px; text-align: center; }
			.header h1 { color: #FFFFFF; margin: 0; font-size: 24px; }
			.content { padding: 40px 30px; color: #1B4332; line-height: 1.6; }
		</style>
	</head>
	<body>
		<div class="container">
			<div class="header"><h1>%s</h1></div>
			<div class="content">%s</div>
		</div>
	</body>
	</html>`, title, bodyContent)
}
