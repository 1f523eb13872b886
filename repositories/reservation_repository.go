package repositories

import (
	"context"

	"MoveCleanWeb/models"
)

type ReservationRepository interface {
	Create(ctx context.Context, reservation models.Reservation) (string, error)
	List(ctx context.Context, limit int) ([]models.Reservation, error)
}
