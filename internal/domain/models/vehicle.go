package models

import "travelapp/internal/domain"

// MaxVehicleCapacity bounds TotalCapacity and the size of a fallback layout.
const MaxVehicleCapacity = 100

// CellType classifies one position of a seat layout grid.
type CellType string

const (
	CellSeat     CellType = "seat"
	CellAisle    CellType = "aisle"
	CellEmpty    CellType = "empty"
	CellBathroom CellType = "bathroom"
	CellDriver   CellType = "driver"
	CellEntry    CellType = "entry"
)

// Known reports whether t is one of the supported cell types.
func (t CellType) Known() bool {
	switch t {
	case CellSeat, CellAisle, CellEmpty, CellBathroom, CellDriver, CellEntry:
		return true
	}
	return false
}

// LayoutCell is one declared position. Number is only meaningful for seats.
type LayoutCell struct {
	Type   CellType `json:"type"`
	Number int      `json:"number,omitempty"`
}

// SeatLayout is an ordered list of rows, each an ordered list of cells.
type SeatLayout [][]LayoutCell

// SeatNumbers returns the seat numbers of the layout in reading order.
func (l SeatLayout) SeatNumbers() []int {
	out := []int{}
	for _, row := range l {
		for _, c := range row {
			if c.Type == CellSeat {
				out = append(out, c.Number)
			}
		}
	}
	return out
}

// Vehicle is a bus with its capacity and optional floor plan.
type Vehicle struct {
	ID            domain.ID  `json:"id"`
	Name          string     `json:"name"`
	TotalCapacity int        `json:"totalCapacity"`
	SeatLayout    SeatLayout `json:"seatLayout,omitempty"`
	IsActive      bool       `json:"isActive"`
}
