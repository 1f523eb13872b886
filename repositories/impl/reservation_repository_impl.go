package impl

import (
	"context"

	"MoveCleanWeb/models"
	"MoveCleanWeb/repositories"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
)

const reservationsCollection = "reservations"

type ReservationRepositoryImpl struct {
	Client *firestore.Client
}

func NewReservationRepository(client *firestore.Client) repositories.ReservationRepository {
	return &ReservationRepositoryImpl{Client: client}
}

func (r *ReservationRepositoryImpl) Create(ctx context.Context, reservation models.Reservation) (string, error) {
	ref, _, err := r.Client.Collection(reservationsCollection).Add(ctx, reservation)
	if err != nil {
		return "", err
	}
	return ref.ID, nil
}

func (r *ReservationRepositoryImpl) List(ctx context.Context, limit int) ([]models.Reservation, error) {
	query := r.Client.Collection(reservationsCollection).OrderBy("createdAt", firestore.Desc)
	if limit > 0 {
		query = query.Limit(limit)
	}

	iter := query.Documents(ctx)
	defer iter.Stop()

	var reservations []models.Reservation
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}

		var reservation models.Reservation
		if err := doc.DataTo(&reservation); err != nil {
			return nil, err
		}
		reservation.ID = doc.Ref.ID
		reservations = append(reservations, reservation)
	}
	return reservations, nil
}
