package notify

import (
	"fmt"
	"net/smtp"
	"strings"

	"github.com/Dan9191/runway-service/internal/config"
	"github.com/Dan9191/runway-service/internal/models"
	"github.com/jordan-wright/email"
	"github.com/sirupsen/logrus"
)

// sendFunc delivers a composed message; swapped out in tests
type sendFunc func(e *email.Email, addr string, a smtp.Auth) error

// Sender handles sending emails via SMTP
type Sender struct {
	cfg    *config.Config
	logger *logrus.Logger
	send   sendFunc
}

// NewSender creates a new email sender
func NewSender(cfg *config.Config, logger *logrus.Logger) *Sender {
	return &Sender{
		cfg:    cfg,
		logger: logger,
		send: func(e *email.Email, addr string, a smtp.Auth) error {
			return e.Send(addr, a)
		},
	}
}

// SendRunwayAlert emails a company owner that their runway is short
func (s *Sender) SendRunwayAlert(alert models.RunwayAlert) error {
	e := composeRunwayAlert(s.cfg.SenderEmail, alert)

	addr := fmt.Sprintf("%s:%s", s.cfg.SMTPHost, s.cfg.SMTPPort)
	var auth smtp.Auth
	if s.cfg.SMTPUsername != "" {
		auth = smtp.PlainAuth("", s.cfg.SMTPUsername, s.cfg.SMTPPassword, s.cfg.SMTPHost)
	}
	if err := s.send(e, addr, auth); err != nil {
		s.logger.Errorf("Failed to send runway alert to %s: %v", alert.OwnerEmail, err)
		return fmt.Errorf("failed to send runway alert: %w", err)
	}

	s.logger.Infof("Email sent to %s: %s", alert.OwnerEmail, e.Subject)
	return nil
}

func composeRunwayAlert(from string, alert models.RunwayAlert) *email.Email {
	e := email.NewEmail()
	e.From = from
	e.To = []string{alert.OwnerEmail}
	e.Subject = fmt.Sprintf("%s runway alert: %s", alert.CompanyName, alert.RiskLevel)

	var body strings.Builder
	fmt.Fprintf(&body, "Dear %s,\n\n", alert.OwnerName)
	fmt.Fprintf(&body, "Based on the financial snapshot of %s, %s has %s months of runway left.\n",
		alert.SnapshotDate.Format("2006-01-02"), alert.CompanyName, alert.RunwayMonths.StringFixed(2))
	fmt.Fprintf(&body, "Current cash: %s USD\n", alert.CurrentCash.StringFixed(2))
	fmt.Fprintf(&body, "Monthly burn: %s USD\n", alert.MonthlyBurn.StringFixed(2))
	fmt.Fprintf(&body, "Risk level: %s\n", alert.RiskLevel)
	body.WriteString("\nReview planned hires before committing to new monthly costs.\n")
	body.WriteString("\nBest regards,\nRunway Service")
	e.Text = []byte(body.String())
	return e
}
