package handlers

import (
	"net/http"

	"travelapp/internal/domain"
	"travelapp/internal/repositories"
	"travelapp/internal/services"

	"github.com/gin-gonic/gin"
)

const noServiceMessage = "tidak ada layanan untuk rute dan tanggal ini"

// GET /api/destinations
func (a API) Destinations(c *gin.Context) {
	list, err := repositories.DestinationRepository{DB: a.DB}.ListActive(c.Request.Context())
	if err != nil {
		RespondDomainError(c, domain.FetchError{Source: "destinations", Err: err})
		return
	}
	c.JSON(http.StatusOK, list)
}

// GET /api/search?origin=1&destination=2&date=2024-01-01
func (a API) Search(c *gin.Context) {
	q, err := services.ParseSearchQuery(c.Query("origin"), c.Query("destination"), c.Query("date"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	results, err := a.availability(c).Search(c.Request.Context(), q)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	message := "jadwal tersedia"
	if len(results) == 0 {
		message = noServiceMessage
	}
	c.JSON(http.StatusOK, gin.H{
		"results": results,
		"count":   len(results),
		"message": message,
	})
}
