package models

import (
	"time"

	"travelapp/internal/domain"
)

// SearchQuery is the validated input of an availability search.
type SearchQuery struct {
	OriginID      domain.ID
	DestinationID domain.ID
	Date          time.Time
}

// SearchResult is one bookable departure for the searched pair.
type SearchResult struct {
	RouteID         domain.ID  `json:"routeId"`
	RouteName       string     `json:"routeName"`
	DepartureTime   string     `json:"departureTime"`
	AdultPrice      int64      `json:"adultPrice"`
	ChildPrice      int64      `json:"childPrice"`
	DurationMinutes *int       `json:"durationMinutes,omitempty"`
	DistanceKm      *float64   `json:"distanceKm,omitempty"`
	ScheduleID      domain.ID  `json:"scheduleId"`
	VehicleID       *domain.ID `json:"vehicleId,omitempty"`
	OriginName      string     `json:"originName"`
	DestinationName string     `json:"destinationName"`
}
