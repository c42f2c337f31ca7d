package models

import (
	"time"

	"travelapp/internal/domain"
)

// SeatStatus is the stored state of a seat assignment row.
type SeatStatus string

const (
	SeatStatusAvailable SeatStatus = "available"
	SeatStatusBooked    SeatStatus = "booked"
)

// SeatAssignment records one seat of one departure. A missing row means the
// seat is available.
type SeatAssignment struct {
	ID         domain.ID  `json:"id"`
	ScheduleID domain.ID  `json:"scheduleId"`
	TripDate   time.Time  `json:"tripDate"`
	SeatNumber int        `json:"seatNumber"`
	Status     SeatStatus `json:"status"`
	ClientID   *string    `json:"clientId,omitempty"`
}

// SeatState is the resolved display state of a seat cell.
type SeatState string

const (
	SeatAvailable SeatState = "available"
	SeatSelected  SeatState = "selected"
	SeatBooked    SeatState = "booked"
)

// SeatCell is one cell of the seat view model.
type SeatCell struct {
	Type       CellType  `json:"type"`
	Number     int       `json:"number,omitempty"`
	State      SeatState `json:"state,omitempty"`
	Selectable bool      `json:"selectable"`
}

// SeatView is the reconciled seat map of one departure.
type SeatView struct {
	ScheduleID domain.ID    `json:"scheduleId"`
	TripDate   string       `json:"tripDate"`
	Rows       [][]SeatCell `json:"rows"`
	Fallback   bool         `json:"fallback"`
	ReadOnly   bool         `json:"readOnly"`
	TotalSeats int          `json:"totalSeats"`
	Booked     int          `json:"booked"`
	Selected   []int        `json:"selected"`
	Available  int          `json:"available"`
	Warning    string       `json:"warning,omitempty"`
}
