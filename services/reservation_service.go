package services

import (
	"context"
	"fmt"
	"log"
	"regexp"
	"strings"
	"time"

	"MoveCleanWeb/i18n"
	"MoveCleanWeb/models"
	"MoveCleanWeb/repositories"
)

// ValidationError carries the user-facing message for a rejected submission.
type ValidationError struct {
	Message string
}

func (e ValidationError) Error() string {
	return e.Message
}

type ReservationInput struct {
	Name            string `json:"name"`
	Phone           string `json:"phone"`
	Email           string `json:"email"`
	Message         string `json:"message"`
	PreferredTime   string `json:"preferredTime"`
	ServiceType     string `json:"serviceType"`
	Clinic          string `json:"clinic"`
	ReservationDate string `json:"reservationDate"`
	Locale          string `json:"locale"`
}

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

const persistTimeout = 10 * time.Second

type ReservationService struct {
	Repo   repositories.ReservationRepository
	Mailer Mailer
}

func NewReservationService(repo repositories.ReservationRepository, mailer Mailer) *ReservationService {
	return &ReservationService{Repo: repo, Mailer: mailer}
}

// Submit validates and persists a booking. The confirmation email is sent
// after the write and its failure never fails the submission; the record is
// already in the store and the back office follows up either way.
func (s *ReservationService) Submit(ctx context.Context, input ReservationInput) (models.Reservation, error) {
	if err := validateInput(input); err != nil {
		return models.Reservation{}, err
	}

	reservation := models.Reservation{
		Name:            strings.TrimSpace(input.Name),
		Phone:           strings.TrimSpace(input.Phone),
		Email:           strings.ToLower(strings.TrimSpace(input.Email)),
		Message:         strings.TrimSpace(input.Message),
		PreferredTime:   strings.TrimSpace(input.PreferredTime),
		ServiceType:     strings.TrimSpace(input.ServiceType),
		Clinic:          strings.TrimSpace(input.Clinic),
		ReservationDate: strings.TrimSpace(input.ReservationDate),
		Locale:          strings.TrimSpace(input.Locale),
		Status:          models.ReservationStatusPending,
		CreatedAt:       time.Now().UTC(),
	}

	persistCtx, cancel := context.WithTimeout(ctx, persistTimeout)
	defer cancel()

	id, err := s.Repo.Create(persistCtx, reservation)
	if err != nil {
		return models.Reservation{}, fmt.Errorf("persisting reservation: %w", err)
	}
	reservation.ID = id

	if s.Mailer != nil {
		if err := s.Mailer.SendReservationConfirmation(reservation); err != nil {
			log.Printf("Failed to send confirmation email for reservation %s: %v", id, err)
		}
	}

	return reservation, nil
}

func (s *ReservationService) List(ctx context.Context, limit int) ([]models.Reservation, error) {
	listCtx, cancel := context.WithTimeout(ctx, persistTimeout)
	defer cancel()
	return s.Repo.List(listCtx, limit)
}

// validateInput checks required fields in form order and names the first
// missing one.
func validateInput(input ReservationInput) error {
	required := []struct {
		name  string
		value string
	}{
		{"name", input.Name},
		{"phone", input.Phone},
		{"email", input.Email},
		{"preferredTime", input.PreferredTime},
		{"serviceType", input.ServiceType},
		{"clinic", input.Clinic},
		{"reservationDate", input.ReservationDate},
		{"locale", input.Locale},
	}
	for _, field := range required {
		if strings.TrimSpace(field.value) == "" {
			return ValidationError{Message: "Missing required field: " + field.name}
		}
	}

	if !emailPattern.MatchString(strings.TrimSpace(input.Email)) {
		return ValidationError{Message: "Invalid email format"}
	}
	if !i18n.IsSupported(strings.TrimSpace(input.Locale)) {
		return ValidationError{Message: "Invalid locale"}
	}
	if !parseableDate(input.ReservationDate) {
		return ValidationError{Message: "Invalid reservation date"}
	}
	return nil
}

func parseableDate(value string) bool {
	value = strings.TrimSpace(value)
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if _, err := time.Parse(layout, value); err == nil {
			return true
		}
	}
	return false
}
