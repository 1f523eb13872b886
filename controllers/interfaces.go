package controllers

import (
	"context"

	"MoveCleanWeb/i18n"
	"MoveCleanWeb/models"
	"MoveCleanWeb/services"
)

// ReservationServiceInterface defines what the reservation endpoints need.
type ReservationServiceInterface interface {
	Submit(ctx context.Context, input services.ReservationInput) (models.Reservation, error)
	List(ctx context.Context, limit int) ([]models.Reservation, error)
}

// AuthServiceInterface defines what the admin auth endpoints need.
type AuthServiceInterface interface {
	LoginAdmin(ctx context.Context, email, password string) (models.AdminUser, string, error)
}

// TranslationServiceInterface exposes dictionaries and translators to the
// page and translation endpoints.
type TranslationServiceInterface interface {
	GetDictionary(locale string) (i18n.Dictionary, bool)
	Translator(locale string) *i18n.Translator
}
