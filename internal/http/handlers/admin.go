package handlers

import (
	"net/http"

	"travelapp/internal/domain"
	"travelapp/internal/domain/models"
	"travelapp/internal/utils"

	"github.com/gin-gonic/gin"
)

func activeOr(v *bool) bool {
	return v == nil || *v
}

// respondSaved answers 201 for creates and 200 for updates.
func respondSaved(c *gin.Context, created bool, id domain.ID, err error, extra gin.H) {
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	status, msg := http.StatusOK, "data berhasil diperbarui"
	if created {
		status, msg = http.StatusCreated, "data berhasil dibuat"
	}
	body := gin.H{"id": id, "message": msg}
	for k, v := range extra {
		body[k] = v
	}
	c.JSON(status, body)
}

func respondDeleted(c *gin.Context, err error) {
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "data berhasil dihapus"})
}

// idForWrite returns (0, true) for POST and the path id for PUT.
func idForWrite(c *gin.Context) (domain.ID, bool) {
	if c.Request.Method == http.MethodPost {
		return 0, true
	}
	return pathID(c, "id")
}

// ---- destinations ----

type destinationPayload struct {
	Name       string `json:"name"`
	OrderIndex int    `json:"orderIndex"`
	IsActive   *bool  `json:"isActive"`
}

// GET /api/admin/destinations
func (a API) AdminListDestinations(c *gin.Context) {
	list, err := a.reference(c).ListDestinations(c.Request.Context())
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// POST /api/admin/destinations, PUT /api/admin/destinations/:id
func (a API) AdminSaveDestination(c *gin.Context) {
	id, ok := idForWrite(c)
	if !ok {
		return
	}
	var p destinationPayload
	if !BindJSONOrError(c, &p) {
		return
	}
	saved, err := a.reference(c).SaveDestination(c.Request.Context(), models.Destination{
		ID: id, Name: p.Name, OrderIndex: p.OrderIndex, IsActive: activeOr(p.IsActive),
	})
	respondSaved(c, !id.Valid(), saved, err, nil)
}

// DELETE /api/admin/destinations/:id
func (a API) AdminDeleteDestination(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	respondDeleted(c, a.reference(c).DeleteDestination(c.Request.Context(), id))
}

// ---- routes ----

type routePayload struct {
	Name      string      `json:"name"`
	VehicleID *domain.ID  `json:"vehicleId"`
	Stops     []domain.ID `json:"stops"`
	IsActive  *bool       `json:"isActive"`
}

// GET /api/admin/routes
func (a API) AdminListRoutes(c *gin.Context) {
	list, err := a.reference(c).ListRoutes(c.Request.Context())
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// POST /api/admin/routes, PUT /api/admin/routes/:id
func (a API) AdminSaveRoute(c *gin.Context) {
	id, ok := idForWrite(c)
	if !ok {
		return
	}
	var p routePayload
	if !BindJSONOrError(c, &p) {
		return
	}
	saved, err := a.reference(c).SaveRoute(c.Request.Context(), models.Route{
		ID: id, Name: p.Name, VehicleID: p.VehicleID, Stops: p.Stops, IsActive: activeOr(p.IsActive),
	})
	respondSaved(c, !id.Valid(), saved, err, nil)
}

// DELETE /api/admin/routes/:id
func (a API) AdminDeleteRoute(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	respondDeleted(c, a.reference(c).DeleteRoute(c.Request.Context(), id))
}

// ---- segments ----

// GET /api/admin/segments?route_id=1
func (a API) AdminListSegments(c *gin.Context) {
	routeID, ok := optionalQueryID(c, "route_id")
	if !ok {
		return
	}
	list, err := a.reference(c).ListSegments(c.Request.Context(), routeID)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// POST /api/admin/segments, PUT /api/admin/segments/:id
func (a API) AdminSaveSegment(c *gin.Context) {
	id, ok := idForWrite(c)
	if !ok {
		return
	}
	var seg models.Segment
	if !BindJSONOrError(c, &seg) {
		return
	}
	seg.ID = id
	saved, err := a.reference(c).SaveSegment(c.Request.Context(), seg)
	respondSaved(c, !id.Valid(), saved, err, nil)
}

// DELETE /api/admin/segments/:id
func (a API) AdminDeleteSegment(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	respondDeleted(c, a.reference(c).DeleteSegment(c.Request.Context(), id))
}

// ---- schedules ----

type schedulePayload struct {
	RouteID            domain.ID `json:"routeId"`
	DepartureTime      string    `json:"departureTime"`
	DaysOfWeek         []int     `json:"daysOfWeek"`
	EffectiveDateStart string    `json:"effectiveDateStart"`
	EffectiveDateEnd   string    `json:"effectiveDateEnd"`
	IsActive           *bool     `json:"isActive"`
}

func (p schedulePayload) toModel(id domain.ID) (models.Schedule, error) {
	s := models.Schedule{
		ID:            id,
		RouteID:       p.RouteID,
		DepartureTime: p.DepartureTime,
		DaysOfWeek:    models.Weekdays(p.DaysOfWeek),
		IsActive:      activeOr(p.IsActive),
	}
	var err error
	if s.EffectiveDateStart, err = utils.ParseOptionalDate(p.EffectiveDateStart); err != nil {
		return s, domain.ValidationError{Field: "effectiveDateStart", Msg: "format tanggal tidak valid (YYYY-MM-DD)", Err: err}
	}
	if s.EffectiveDateEnd, err = utils.ParseOptionalDate(p.EffectiveDateEnd); err != nil {
		return s, domain.ValidationError{Field: "effectiveDateEnd", Msg: "format tanggal tidak valid (YYYY-MM-DD)", Err: err}
	}
	return s, nil
}

// GET /api/admin/schedules?route_id=1
func (a API) AdminListSchedules(c *gin.Context) {
	routeID, ok := optionalQueryID(c, "route_id")
	if !ok {
		return
	}
	list, err := a.reference(c).ListSchedules(c.Request.Context(), routeID)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// POST /api/admin/schedules, PUT /api/admin/schedules/:id
func (a API) AdminSaveSchedule(c *gin.Context) {
	id, ok := idForWrite(c)
	if !ok {
		return
	}
	var p schedulePayload
	if !BindJSONOrError(c, &p) {
		return
	}
	s, err := p.toModel(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	saved, err := a.reference(c).SaveSchedule(c.Request.Context(), s)
	respondSaved(c, !id.Valid(), saved, err, nil)
}

// DELETE /api/admin/schedules/:id
func (a API) AdminDeleteSchedule(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	respondDeleted(c, a.reference(c).DeleteSchedule(c.Request.Context(), id))
}

// ---- vehicles ----

type vehiclePayload struct {
	Name          string            `json:"name"`
	TotalCapacity int               `json:"totalCapacity"`
	SeatLayout    models.SeatLayout `json:"seatLayout"`
	IsActive      *bool             `json:"isActive"`
}

// GET /api/admin/vehicles
func (a API) AdminListVehicles(c *gin.Context) {
	list, err := a.reference(c).ListVehicles(c.Request.Context())
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// POST /api/admin/vehicles, PUT /api/admin/vehicles/:id
func (a API) AdminSaveVehicle(c *gin.Context) {
	id, ok := idForWrite(c)
	if !ok {
		return
	}
	var p vehiclePayload
	if !BindJSONOrError(c, &p) {
		return
	}
	saved, warning, err := a.reference(c).SaveVehicle(c.Request.Context(), models.Vehicle{
		ID: id, Name: p.Name, TotalCapacity: p.TotalCapacity, SeatLayout: p.SeatLayout, IsActive: activeOr(p.IsActive),
	})
	var extra gin.H
	if warning != "" {
		extra = gin.H{"warning": warning}
	}
	respondSaved(c, !id.Valid(), saved, err, extra)
}

// DELETE /api/admin/vehicles/:id
func (a API) AdminDeleteVehicle(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	respondDeleted(c, a.reference(c).DeleteVehicle(c.Request.Context(), id))
}
