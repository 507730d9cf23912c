package services

import (
	"fmt"
	"log"
	"net/smtp"
	"strings"
)

// EmailService relays contact form submissions to the site owner over SMTP.
// Without SMTP credentials it runs in dev mode and logs instead of sending,
// so local development never needs a mail account.
type EmailService struct {
	host    string
	port    string
	user    string
	pass    string
	from    string
	to      string
	devMode bool
}

func NewEmailService(host, port, user, pass, from, to string) *EmailService {
	devMode := host == "" || user == ""
	if devMode {
		log.Println("⚠ Email service running in DEV MODE (logging to console)")
	}
	return &EmailService{
		host:    host,
		port:    port,
		user:    user,
		pass:    pass,
		from:    from,
		to:      to,
		devMode: devMode,
	}
}

// SendContactMessage relays one enquiry. replyTo is the visitor's address so
// the owner can answer directly from their mail client.
func (s *EmailService) SendContactMessage(name, replyTo, message string) error {
	subject := fmt.Sprintf("Portfolio Contact — %s", name)
	body := buildContactBody(name, replyTo, message)
	return s.sendHTML(subject, replyTo, body)
}

func buildContactBody(name, email, message string) string {
	return fmt.Sprintf(`<div style="font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', sans-serif; max-width: 600px; margin: 0 auto; padding: 32px 24px; background: #fafafa; border-radius: 16px;">
  <h2 style="font-size: 18px; font-weight: 500; margin: 0 0 24px 0; color: #111;">New Portfolio Enquiry</h2>
  <table style="width: 100%%; border-collapse: collapse;">
    <tr>
      <td style="padding: 8px 0; color: #666; font-size: 12px; text-transform: uppercase; letter-spacing: 0.05em; width: 80px; vertical-align: top;">Name</td>
      <td style="padding: 8px 0; color: #111; font-size: 14px;">%s</td>
    </tr>
    <tr>
      <td style="padding: 8px 0; color: #666; font-size: 12px; text-transform: uppercase; letter-spacing: 0.05em; vertical-align: top;">Email</td>
      <td style="padding: 8px 0; color: #111; font-size: 14px;"><a href="mailto:%s" style="color: #2563eb; text-decoration: none;">%s</a></td>
    </tr>
    <tr>
      <td style="padding: 8px 0; color: #666; font-size: 12px; text-transform: uppercase; letter-spacing: 0.05em; vertical-align: top;">Message</td>
      <td style="padding: 8px 0; color: #111; font-size: 14px; white-space: pre-wrap;">%s</td>
    </tr>
  </table>
  <hr style="border: none; border-top: 1px solid #eee; margin: 24px 0 16px;" />
  <p style="font-size: 11px; color: #999; margin: 0;">Sent from your portfolio contact form</p>
</div>`, name, email, email, message)
}

func (s *EmailService) sendHTML(subject, replyTo, htmlBody string) error {
	if s.devMode {
		log.Printf("📧 [DEV EMAIL] To: %s | Reply-To: %s | Subject: %s", s.to, replyTo, subject)
		log.Printf("📧 Body:\n%s", htmlBody)
		return nil
	}

	headers := []string{
		fmt.Sprintf("From: %s", s.from),
		fmt.Sprintf("To: %s", s.to),
		fmt.Sprintf("Reply-To: %s", replyTo),
		fmt.Sprintf("Subject: %s", subject),
		"MIME-Version: 1.0",
		"Content-Type: text/html; charset=UTF-8",
	}

	message := strings.Join(headers, "\r\n") + "\r\n\r\n" + htmlBody

	auth := smtp.PlainAuth("", s.user, s.pass, s.host)
	addr := fmt.Sprintf("%s:%s", s.host, s.port)

	if err := smtp.SendMail(addr, auth, s.from, []string{s.to}, []byte(message)); err != nil {
		return fmt.Errorf("failed to send contact email: %w", err)
	}

	log.Printf("📧 Contact email relayed to %s", s.to)
	return nil
}
