package models

import "travelapp/internal/domain"

// Destination is a named stop point. Name is display-only.
type Destination struct {
	ID         domain.ID `json:"id"`
	Name       string    `json:"name"`
	OrderIndex int       `json:"orderIndex"`
	IsActive   bool      `json:"isActive"`
}

// Route is an ordered list of stops served by one vehicle.
type Route struct {
	ID        domain.ID   `json:"id"`
	Name      string      `json:"name"`
	VehicleID *domain.ID  `json:"vehicleId,omitempty"`
	Stops     []domain.ID `json:"stops"`
	IsActive  bool        `json:"isActive"`
}

// StopIndex returns the position of id in the route's stops, or -1.
func (r Route) StopIndex(id domain.ID) int {
	for i, s := range r.Stops {
		if s == id {
			return i
		}
	}
	return -1
}

// Serves reports whether the route travels from origin to destination in
// its own stop order.
func (r Route) Serves(origin, destination domain.ID) bool {
	oi := r.StopIndex(origin)
	di := r.StopIndex(destination)
	return oi >= 0 && di >= 0 && oi < di
}

// Segment is a priced directional leg between two stops of one route.
type Segment struct {
	ID                 domain.ID `json:"id"`
	RouteID            domain.ID `json:"routeId"`
	StartDestinationID domain.ID `json:"startDestinationId"`
	EndDestinationID   domain.ID `json:"endDestinationId"`
	AdultPrice         int64     `json:"adultPrice"`
	ChildPrice         int64     `json:"childPrice"`
	DurationMinutes    *int      `json:"durationMinutes,omitempty"`
	DistanceKm         *float64  `json:"distanceKm,omitempty"`
}

// SegmentKey identifies a segment by its exact (route, start, end) triple.
type SegmentKey struct {
	RouteID domain.ID
	Start   domain.ID
	End     domain.ID
}

func (s Segment) Key() SegmentKey {
	return SegmentKey{RouteID: s.RouteID, Start: s.StartDestinationID, End: s.EndDestinationID}
}
