package controllers

import (
	"errors"
	"log"
	"net/http"

	"MoveCleanWeb/config"
	"MoveCleanWeb/services"

	"github.com/gin-gonic/gin"
)

var reservationService ReservationServiceInterface

func SetReservationService(service ReservationServiceInterface) {
	reservationService = service
}

func SubmitReservation(c *gin.Context) {
	var input services.ReservationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	reservation, err := reservationService.Submit(c.Request.Context(), input)
	if err != nil {
		var verr services.ValidationError
		if errors.As(err, &verr) {
			c.JSON(http.StatusBadRequest, gin.H{"error": verr.Message})
			return
		}

		log.Printf("Failed to submit reservation: %v", err)
		resp := gin.H{"error": "Failed to submit reservation"}
		if !config.Production {
			resp["details"] = err.Error()
		}
		c.JSON(http.StatusInternalServerError, resp)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Reservation submitted successfully",
		"id":      reservation.ID,
	})
}
