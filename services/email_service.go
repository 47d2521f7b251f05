package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"clickexpress-cms/config"
	"clickexpress-cms/models"

	"github.com/mailgun/mailgun-go/v4"
	gomail "gopkg.in/gomail.v2"
)

// EmailSender delivers a single message through one provider.
type EmailSender interface {
	Send(ctx context.Context, to, subject, htmlBody, textBody string) error
}

type MailgunSender struct {
	mg   mailgun.Mailgun
	from string
}

// NewMailgunSender returns nil when the API key or domain is missing, which
// the Notifier treats as a failed primary attempt.
func NewMailgunSender(cfg *config.Config) *MailgunSender {
	if cfg.MailgunAPIKey == "" || cfg.MailgunDomain == "" {
		return nil
	}
	return &MailgunSender{
		mg:   mailgun.NewMailgun(cfg.MailgunDomain, cfg.MailgunAPIKey),
		from: cfg.FromEmail,
	}
}

func (s *MailgunSender) Send(ctx context.Context, to, subject, htmlBody, textBody string) error {
	message := s.mg.NewMessage(s.from, subject, textBody, to)
	if htmlBody != "" {
		message.SetHtml(htmlBody)
	}

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	_, _, err := s.mg.Send(ctx, message)
	return err
}

type SMTPSender struct {
	dialer *gomail.Dialer
	from   string
}

func NewSMTPSender(cfg *config.Config) *SMTPSender {
	if cfg.SMTPHost == "" {
		return nil
	}
	return &SMTPSender{
		dialer: gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword),
		from:   cfg.FromEmail,
	}
}

func (s *SMTPSender) Send(ctx context.Context, to, subject, htmlBody, textBody string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", textBody)
	if htmlBody != "" {
		m.AddAlternative("text/html", htmlBody)
	}

	return s.dialer.DialAndSend(m)
}

// Notifier is the best-effort notification dispatcher: every contact email
// tries the primary provider and falls back to the secondary exactly once;
// newsletter confirmations go through the primary only. Failures are logged
// and never surfaced to the caller.
type Notifier struct {
	primary    EmailSender
	secondary  EmailSender
	adminEmail string
}

func NewNotifier(primary, secondary EmailSender, adminEmail string) *Notifier {
	return &Notifier{
		primary:    primary,
		secondary:  secondary,
		adminEmail: adminEmail,
	}
}

func (n *Notifier) NotifyContact(ctx context.Context, message *models.ContactMessage) {
	subject, html, text := contactNotificationEmail(message)
	n.sendWithFallback(ctx, n.adminEmail, subject, html, text)

	subject, html, text = contactConfirmationEmail(message)
	n.sendWithFallback(ctx, message.Email, subject, html, text)
}

func (n *Notifier) SendNewsletterConfirmation(ctx context.Context, email string) {
	subject, html, text := newsletterConfirmationEmail()

	if n.primary == nil {
		log.Println("newsletter confirmation skipped: primary email provider not configured")
		return
	}
	if err := n.primary.Send(ctx, email, subject, html, text); err != nil {
		log.Printf("newsletter confirmation email error: %v", err)
	}
}

// sendWithFallback is a two-branch attempt sequence, not a retry loop: the
// secondary provider has no further fallback.
func (n *Notifier) sendWithFallback(ctx context.Context, to, subject, html, text string) {
	if n.primary != nil {
		err := n.primary.Send(ctx, to, subject, html, text)
		if err == nil {
			return
		}
		log.Printf("primary email provider error: %v", err)
	}

	if n.secondary == nil {
		log.Println("email dropped: no secondary provider configured")
		return
	}
	if err := n.secondary.Send(ctx, to, subject, html, text); err != nil {
		log.Printf("secondary email provider error: %v", err)
	}
}

func contactNotificationEmail(m *models.ContactMessage) (subject, html, text string) {
	phone := m.Phone
	if phone == "" {
		phone = "Not provided"
	}

	subject = fmt.Sprintf("New Contact Message: %s", m.Subject)
	html = fmt.Sprintf(`<h2>New Contact Message</h2>
<p><strong>Name:</strong> %s</p>
<p><strong>Email:</strong> %s</p>
<p><strong>Phone:</strong> %s</p>
<p><strong>Subject:</strong> %s</p>
<p><strong>Message:</strong></p>
<p>%s</p>
<hr>
<p><em>Received at: %s</em></p>`,
		m.Name, m.Email, phone, m.Subject, m.Message, m.CreatedAt.Format(time.RFC3339))
	text = fmt.Sprintf("New Contact Message:\n\nName: %s\nEmail: %s\nPhone: %s\nSubject: %s\n\nMessage:\n%s\n\nReceived at: %s\n",
		m.Name, m.Email, phone, m.Subject, m.Message, m.CreatedAt.Format(time.RFC3339))
	return subject, html, text
}

func contactConfirmationEmail(m *models.ContactMessage) (subject, html, text string) {
	subject = "Thank you for contacting ClickExpress"
	html = fmt.Sprintf(`<h2>Thank you for contacting us!</h2>
<p>Dear %s,</p>
<p>We have received your message and will get back to you as soon as possible.</p>
<p><strong>Your message:</strong></p>
<p><em>%s</em></p>
<hr>
<p>Best regards,<br>ClickExpress Team</p>`,
		m.Name, m.Message)
	text = fmt.Sprintf("Dear %s,\n\nThank you for contacting us! We have received your message and will get back to you as soon as possible.\n\nYour message:\n%s\n\nBest regards,\nClickExpress Team\n",
		m.Name, m.Message)
	return subject, html, text
}

func newsletterConfirmationEmail() (subject, html, text string) {
	subject = "Welcome to ClickExpress Newsletter"
	html = `<h2>Welcome to ClickExpress!</h2>
<p>Thank you for subscribing to our newsletter.</p>
<p>You will receive updates about our latest services and news.</p>
<hr>
<p>Best regards,<br>ClickExpress Team</p>`
	text = "Welcome to ClickExpress!\n\nThank you for subscribing to our newsletter.\nYou will receive updates about our latest services and news.\n\nBest regards,\nClickExpress Team\n"
	return subject, html, text
}
