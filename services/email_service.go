package services

import (
	"fmt"
	"strconv"
	"time"

	"MoveCleanWeb/config"
	"MoveCleanWeb/i18n"
	"MoveCleanWeb/models"

	"gopkg.in/gomail.v2"
)

// gomail only bounds the TCP dial, not the SMTP conversation, so a stalled
// server would otherwise hang the submission handler.
const sendTimeout = 10 * time.Second

// Mailer sends the reservation confirmation. Delivery is best effort: the
// reservation handler logs failures and moves on.
type Mailer interface {
	SendReservationConfirmation(reservation models.Reservation) error
}

type EmailService struct {
	dialer   *gomail.Dialer
	from     string
	fromName string
	bundle   *i18n.Bundle
	timeout  time.Duration
}

func NewEmailService(cfg config.SMTPConfig, bundle *i18n.Bundle) *EmailService {
	port, err := strconv.Atoi(cfg.Port)
	if err != nil {
		port = 587
	}
	return &EmailService{
		dialer:   gomail.NewDialer(cfg.Host, port, cfg.Username, cfg.Password),
		from:     cfg.FromEmail,
		fromName: cfg.FromName,
		bundle:   bundle,
		timeout:  sendTimeout,
	}
}

// SendReservationConfirmation writes the confirmation in the locale the
// visitor submitted the form in.
func (s *EmailService) SendReservationConfirmation(reservation models.Reservation) error {
	tr := s.bundle.Translator(reservation.Locale)

	serviceLabel, ok := tr.Lookup("services."+reservation.ServiceType+".title", nil)
	if !ok {
		serviceLabel = reservation.ServiceType
	}

	args := map[string]interface{}{
		"name":        reservation.Name,
		"serviceType": serviceLabel,
		"date":        reservation.ReservationDate,
		"phone":       reservation.Phone,
	}

	subject := tr.T("email.confirmation.subject", args)
	greeting := tr.T("email.confirmation.greeting", args)
	body := tr.T("email.confirmation.body", args)
	footer := tr.T("email.confirmation.footer", nil)

	plain := fmt.Sprintf("%s\n\n%s\n\n%s\n", greeting, body, footer)
	html := fmt.Sprintf("<html><body><p>%s</p><p>%s</p><p>%s</p></body></html>", greeting, body, footer)

	m := gomail.NewMessage()
	m.SetAddressHeader("From", s.from, s.fromName)
	m.SetHeader("To", reservation.Email)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", plain)
	m.AddAlternative("text/html", html)

	done := make(chan error, 1)
	go func() {
		done <- s.dialer.DialAndSend(m)
	}()

	select {
	case err := <-done:
		return err
	case <-time.After(s.timeout):
		return fmt.Errorf("sending confirmation email to %s: timed out after %s", reservation.Email, s.timeout)
	}
}
