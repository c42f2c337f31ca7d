package handlers

import (
	"fmt"
	"net/http"

	"travelapp/internal/http/middleware"
	"travelapp/internal/services"

	"github.com/gin-gonic/gin"
)

// GET /api/schedules/:id/seats?date=2024-01-01&selected=1,2&readOnly=true
func (a API) GetSeats(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	date, ok := tripDate(c, c.Query("date"))
	if !ok {
		return
	}
	selected, err := seatList(c.Query("selected"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	view, err := a.seats(c).View(c.Request.Context(), id, date, selected, queryBool(c, "readOnly"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

type selectionRequest struct {
	Date     string `json:"date"`
	Selected []int  `json:"selected"`
	Toggle   int    `json:"toggle"`
	ReadOnly bool   `json:"readOnly"`
}

// POST /api/schedules/:id/seats/selection
func (a API) SelectSeat(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req selectionRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	date, ok := tripDate(c, req.Date)
	if !ok {
		return
	}

	res, err := a.seats(c).Select(c.Request.Context(), id, date, req.Selected, req.Toggle, req.ReadOnly)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

type reserveRequest struct {
	Date     string `json:"date"`
	Seats    []int  `json:"seats"`
	ClientID string `json:"clientId"`
}

// POST /api/schedules/:id/seats/reserve
func (a API) ReserveSeats(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req reserveRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	date, ok := tripDate(c, req.Date)
	if !ok {
		return
	}

	err := a.seats(c).Reserve(c.Request.Context(), services.ReserveRequest{
		ScheduleID: id,
		TripDate:   date,
		Seats:      req.Seats,
		ClientID:   req.ClientID,
	})
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "kursi berhasil dibooking", "seats": req.Seats})
}

type releaseRequest struct {
	Date  string `json:"date"`
	Seats []int  `json:"seats"`
}

// POST /api/schedules/:id/seats/release
func (a API) ReleaseSeats(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req releaseRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	date, ok := tripDate(c, req.Date)
	if !ok {
		return
	}

	n, err := a.seats(c).Release(c.Request.Context(), id, date, req.Seats)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "kursi dilepas", "released": n})
}

// GET /api/schedules/:id/manifest.pdf?date=2024-01-01
func (a API) SeatManifest(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	date, ok := tripDate(c, c.Query("date"))
	if !ok {
		return
	}

	m := services.ManifestService{Seats: a.seats(c), RequestID: middleware.GetRequestID(c)}
	pdfBytes, filename, err := m.Generate(c.Request.Context(), id, date)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`inline; filename="%s"`, filename))
	c.Data(http.StatusOK, "application/pdf", pdfBytes)
}
