package email

import (
	"context"
	"fmt"
	"time"

	"gopkg.in/gomail.v2"

	"opsportal/internal/shared/biztime"
)

type SMTPConfig struct {
	Host        string
	Port        int
	Username    string
	Password    string
	FromAddress string
	FromName    string
	PortalURL   string // Base URL for portal links in emails
}

// SMTPEmailService is the single notification sink. Every outbound mail in
// the system goes through it so delivery behavior stays in one place.
type SMTPEmailService struct {
	config SMTPConfig
	dialer *gomail.Dialer
}

func NewSMTPEmailService(config SMTPConfig) *SMTPEmailService {
	dialer := gomail.NewDialer(config.Host, config.Port, config.Username, config.Password)

	return &SMTPEmailService{
		config: config,
		dialer: dialer,
	}
}

func (s *SMTPEmailService) SendBluePage(ctx context.Context, to, name, taskTitle, pdfURL string, penalty int64) error {
	subject := "⛔ BLUE PAGE ISSUED: Deadline Missed"
	htmlBody := fmt.Sprintf(`
		<html>
		<body>
			<h2>OFFICIAL VIOLATION RECORD</h2>
			<p>%s,</p>
			<p>A Blue Page has been issued against you for missing the deadline on:</p>
			<p><strong>%s</strong></p>
			<p>A penalty of INR %d has been applied to your account.</p>
			<p><a href="%s">View the official violation record</a></p>
			<p>Repeated violations may lead to suspension.</p>
		</body>
		</html>
	`, name, taskTitle, penalty, pdfURL)

	plainBody := fmt.Sprintf(`
OFFICIAL VIOLATION RECORD

%s,

A Blue Page has been issued against you for missing the deadline on:
%s

A penalty of INR %d has been applied to your account.

Violation record: %s

Repeated violations may lead to suspension.
	`, name, taskTitle, penalty, pdfURL)

	return s.sendEmail(ctx, to, "IBBE Command", subject, htmlBody, plainBody)
}

func (s *SMTPEmailService) SendResponsivenessWarning(ctx context.Context, to, name, taskTitle string) error {
	subject := "⚠️ RESPONSIVENESS WARNING: Immediate Reply Required"
	htmlBody := fmt.Sprintf(`
		<html>
		<body>
			<h2>Responsiveness Warning</h2>
			<p>%s,</p>
			<p>An admin comment on the following task has gone unanswered for over two hours:</p>
			<p><strong>%s</strong></p>
			<p>Reply immediately. Continued silence escalates to a Blue Page.</p>
			<p><a href="%s">Open the portal</a></p>
		</body>
		</html>
	`, name, taskTitle, s.config.PortalURL)

	plainBody := fmt.Sprintf(`
Responsiveness Warning

%s,

An admin comment on the following task has gone unanswered for over two hours:
%s

Reply immediately. Continued silence escalates to a Blue Page.

%s
	`, name, taskTitle, s.config.PortalURL)

	return s.sendEmail(ctx, to, s.config.FromName, subject, htmlBody, plainBody)
}

func (s *SMTPEmailService) SendTaskAssigned(ctx context.Context, to, name, title string, deadline time.Time) error {
	deadlineStr := biztime.FormatInBizTimezone(deadline, "02 Jan 2006 15:04")

	subject := "New Task Assigned"
	htmlBody := fmt.Sprintf(`
		<html>
		<body>
			<h2>New Task Assigned</h2>
			<p>%s,</p>
			<p>You have been assigned a new task:</p>
			<p><strong>%s</strong></p>
			<p>Deadline: %s</p>
			<p><a href="%s">Open the portal</a></p>
		</body>
		</html>
	`, name, title, deadlineStr, s.config.PortalURL)

	plainBody := fmt.Sprintf(`
New Task Assigned

%s,

You have been assigned a new task:
%s

Deadline: %s

%s
	`, name, title, deadlineStr, s.config.PortalURL)

	return s.sendEmail(ctx, to, s.config.FromName, subject, htmlBody, plainBody)
}

func (s *SMTPEmailService) SendAccessApproved(ctx context.Context, to, name string) error {
	subject := "Access Approved - IBBE Ops"
	htmlBody := fmt.Sprintf(`
		<html>
		<body>
			<h2>ACCESS GRANTED</h2>
			<p>%s,</p>
			<p>Your account has been approved. You can now sign in to the portal.</p>
			<p><a href="%s">Open the portal</a></p>
		</body>
		</html>
	`, name, s.config.PortalURL)

	plainBody := fmt.Sprintf(`
ACCESS GRANTED

%s,

Your account has been approved. You can now sign in to the portal.

%s
	`, name, s.config.PortalURL)

	return s.sendEmail(ctx, to, s.config.FromName, subject, htmlBody, plainBody)
}

func (s *SMTPEmailService) SendAccountStatusChanged(ctx context.Context, to, name, status, reason string) error {
	subject := "Account Status Update - IBBE Ops"
	reasonBlock := ""
	if reason != "" {
		reasonBlock = fmt.Sprintf("<p>Reason: %s</p>", reason)
	}

	htmlBody := fmt.Sprintf(`
		<html>
		<body>
			<h2>Account Status Update</h2>
			<p>%s,</p>
			<p>Your account status is now: <strong>%s</strong></p>
			%s
			<p>Contact your supervisor if you believe this is an error.</p>
		</body>
		</html>
	`, name, status, reasonBlock)

	plainBody := fmt.Sprintf(`
Account Status Update

%s,

Your account status is now: %s
%s

Contact your supervisor if you believe this is an error.
	`, name, status, reason)

	return s.sendEmail(ctx, to, s.config.FromName, subject, htmlBody, plainBody)
}

// SendHTML delivers a pre-rendered HTML body. Used by the admin mail
// composer, which sanitizes the body before it gets here.
func (s *SMTPEmailService) SendHTML(ctx context.Context, to, name, subject, htmlBody string) error {
	return s.sendEmail(ctx, to, s.config.FromName, subject, htmlBody, "")
}

func (s *SMTPEmailService) sendEmail(ctx context.Context, to, fromName, subject, htmlBody, plainBody string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	m := gomail.NewMessage()
	m.SetAddressHeader("From", s.config.FromAddress, fromName)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	if plainBody != "" {
		m.SetBody("text/plain", plainBody)
		m.AddAlternative("text/html", htmlBody)
	} else {
		m.SetBody("text/html", htmlBody)
	}

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}
