package email

import (
	"fmt"
	"net/smtp"
	"strconv"

	"github.com/rs/zerolog"
)

// Service defines the interface for outgoing mail
type Service interface {
	SendCredentialsEmail(toEmail, toName, rollNumber, tempPassword string) error
	SendApplicationDecisionEmail(toEmail, toName string, approved bool) error
}

// SMTPConfig holds configuration for the SMTP server
type SMTPConfig struct {
	Host      string
	Port      int
	Username  string
	Password  string
	FromName  string
	FromEmail string
	BaseURL   string
}

type serviceImpl struct {
	config SMTPConfig
	logger zerolog.Logger
}

// NewService creates a new email Service
func NewService(config SMTPConfig, logger zerolog.Logger) Service {
	return &serviceImpl{
		config: config,
		logger: logger,
	}
}

// SendCredentialsEmail mails a freshly provisioned student their login
// credentials after an admission application is approved.
func (s *serviceImpl) SendCredentialsEmail(toEmail, toName, rollNumber, tempPassword string) error {
	if !s.configured() {
		// Development fallback: log instead of sending
		s.logger.Warn().
			Str("toEmail", toEmail).
			Str("rollNumber", rollNumber).
			Msg("SMTP credentials not configured - credentials email not sent")
		return nil
	}

	subject := "Your CampusHub Account"
	body := fmt.Sprintf(`
		<html>
		<body>
			<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
				<h2 style="color: #333;">Welcome to CampusHub!</h2>
				<p>Hello %s,</p>
				<p>Your admission application has been approved. An account has been created for you:</p>
				<ul>
					<li>Roll number: <strong>%s</strong></li>
					<li>Email: <strong>%s</strong></li>
					<li>Temporary password: <strong>%s</strong></li>
				</ul>
				<p>Sign in at <a href="%s">%s</a> and change your password right away.</p>
			</div>
		</body>
		</html>`,
		toName, rollNumber, toEmail, tempPassword, s.config.BaseURL, s.config.BaseURL)

	return s.send(toEmail, subject, body)
}

// SendApplicationDecisionEmail notifies an applicant of the decision on
// their application. Approved applicants additionally get a credentials
// email once their account exists.
func (s *serviceImpl) SendApplicationDecisionEmail(toEmail, toName string, approved bool) error {
	if !s.configured() {
		s.logger.Warn().
			Str("toEmail", toEmail).
			Bool("approved", approved).
			Msg("SMTP credentials not configured - decision email not sent")
		return nil
	}

	var subject, message string
	if approved {
		subject = "Application Approved - CampusHub"
		message = "Congratulations! Your admission application has been approved. Your account details will follow in a separate email."
	} else {
		subject = "Application Update - CampusHub"
		message = "We are sorry to inform you that your admission application was not successful this time."
	}

	body := fmt.Sprintf(`
		<html>
		<body>
			<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
				<p>Hello %s,</p>
				<p>%s</p>
			</div>
		</body>
		</html>`, toName, message)

	return s.send(toEmail, subject, body)
}

func (s *serviceImpl) configured() bool {
	return s.config.Username != "" && s.config.Password != ""
}

func (s *serviceImpl) send(toEmail, subject, htmlBody string) error {
	addr := s.config.Host + ":" + strconv.Itoa(s.config.Port)
	auth := smtp.PlainAuth("", s.config.Username, s.config.Password, s.config.Host)

	from := s.config.FromEmail
	if s.config.FromName != "" {
		from = fmt.Sprintf("%s <%s>", s.config.FromName, s.config.FromEmail)
	}

	msg := []byte("From: " + from + "\r\n" +
		"To: " + toEmail + "\r\n" +
		"Subject: " + subject + "\r\n" +
		"MIME-Version: 1.0\r\n" +
		"Content-Type: text/html; charset=UTF-8\r\n" +
		"\r\n" +
		htmlBody)

	if err := smtp.SendMail(addr, auth, s.config.FromEmail, []string{toEmail}, msg); err != nil {
		s.logger.Error().Err(err).Str("toEmail", toEmail).Str("subject", subject).Msg("Failed to send email")
		return fmt.Errorf("failed to send email: %w", err)
	}

	s.logger.Info().Str("toEmail", toEmail).Str("subject", subject).Msg("Email sent")
	return nil
}
