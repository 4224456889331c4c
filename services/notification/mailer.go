package notification

import (
	"context"
	"fmt"

	"tourbook/config"
	"tourbook/models"

	"go.uber.org/zap"
	gomail "gopkg.in/gomail.v2"
)

// MailNotificationService sends confirmation email over SMTP.
type MailNotificationService struct {
	dialer    *gomail.Dialer
	fromName  string
	fromEmail string
	logger    *zap.Logger
}

// NewMailNotificationService builds the SMTP sender from configuration.
func NewMailNotificationService(cfg config.Config, logger *zap.Logger) *MailNotificationService {
	return &MailNotificationService{
		dialer:    gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass),
		fromName:  cfg.SMTPFromName,
		fromEmail: cfg.SMTPFromEmail,
		logger:    logger,
	}
}

// SendBookingConfirmation renders and sends the confirmation email for a
// reconciled booking.
func (s *MailNotificationService) SendBookingConfirmation(ctx context.Context, booking *models.Booking, status models.PaymentStatus) error {
	body, err := renderConfirmation(booking, status)
	if err != nil {
		return err
	}

	msg := gomail.NewMessage()
	msg.SetAddressHeader("From", s.fromEmail, s.fromName)
	msg.SetHeader("To", booking.Email)
	msg.SetHeader("Subject", fmt.Sprintf("Booking Confirmation - %s", booking.ActivityName))
	msg.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("failed to send confirmation email to %s: %w", booking.Email, err)
	}

	s.logger.Info("confirmation email sent",
		zap.String("booking_id", booking.ID),
		zap.String("to", booking.Email),
		zap.String("status", string(status)),
	)
	return nil
}
