package models

import "time"

const ReservationStatusPending = "pending"

// Reservation is a customer booking request. Once persisted it is owned by
// the document store; status changes happen in the back office, not here.
type Reservation struct {
	ID              string    `json:"id" firestore:"-"`
	Name            string    `json:"name" firestore:"name"`
	Phone           string    `json:"phone" firestore:"phone"`
	Email           string    `json:"email" firestore:"email"`
	Message         string    `json:"message" firestore:"message"`
	PreferredTime   string    `json:"preferredTime" firestore:"preferredTime"`
	ServiceType     string    `json:"serviceType" firestore:"serviceType"`
	Clinic          string    `json:"clinic" firestore:"clinic"`
	ReservationDate string    `json:"reservationDate" firestore:"reservationDate"`
	Locale          string    `json:"locale" firestore:"locale"`
	Status          string    `json:"status" firestore:"status"`
	CreatedAt       time.Time `json:"createdAt" firestore:"createdAt"`
}
