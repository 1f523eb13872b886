package controllers

import (
	"log"
	"net/http"
	"strconv"

	"MoveCleanWeb/config"

	"github.com/gin-gonic/gin"
)

// ListReservations serves the back-office reservation table, newest first.
func ListReservations(c *gin.Context) {
	limit := 50
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > 200 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid limit"})
			return
		}
		limit = n
	}

	reservations, err := reservationService.List(c.Request.Context(), limit)
	if err != nil {
		log.Printf("Failed to list reservations: %v", err)
		resp := gin.H{"error": "Failed to load reservations"}
		if !config.Production {
			resp["details"] = err.Error()
		}
		c.JSON(http.StatusInternalServerError, resp)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "reservations": reservations})
}
