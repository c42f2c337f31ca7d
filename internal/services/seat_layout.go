package services

import (
	"travelapp/internal/domain"
	"travelapp/internal/domain/models"
)

// FallbackLayout is used while a vehicle has no designed floor plan: one
// row of capacity seats numbered 1..capacity, no aisle, driver or door.
// Capacity is clamped to models.MaxVehicleCapacity.
func FallbackLayout(capacity int) models.SeatLayout {
	if capacity <= 0 {
		return models.SeatLayout{}
	}
	if capacity > models.MaxVehicleCapacity {
		capacity = models.MaxVehicleCapacity
	}
	row := make([]models.LayoutCell, 0, capacity)
	for n := 1; n <= capacity; n++ {
		row = append(row, models.LayoutCell{Type: models.CellSeat, Number: n})
	}
	return models.SeatLayout{row}
}

// EffectiveLayout returns the vehicle's layout or the flat fallback.
func EffectiveLayout(v models.Vehicle) (models.SeatLayout, bool) {
	if len(v.SeatLayout) == 0 {
		return FallbackLayout(v.TotalCapacity), true
	}
	return v.SeatLayout, false
}

// SeatViewInput is everything needed to reconcile a layout with one departure.
type SeatViewInput struct {
	Vehicle     models.Vehicle
	ScheduleID  domain.ID
	TripDate    string
	Assignments []models.SeatAssignment
	Selected    []int
	ReadOnly    bool
	Warning     string
}

// BuildSeatView resolves every seat cell to booked, selected or available.
// Selected numbers that are booked or not seats of the layout are dropped.
func BuildSeatView(in SeatViewInput) models.SeatView {
	layout, fallback := EffectiveLayout(in.Vehicle)

	booked := map[int]bool{}
	for _, a := range in.Assignments {
		if a.Status == models.SeatStatusBooked {
			booked[a.SeatNumber] = true
		}
	}
	wanted := map[int]bool{}
	for _, n := range in.Selected {
		wanted[n] = true
	}

	view := models.SeatView{
		ScheduleID: in.ScheduleID,
		TripDate:   in.TripDate,
		Rows:       make([][]models.SeatCell, 0, len(layout)),
		Fallback:   fallback,
		ReadOnly:   in.ReadOnly,
		Selected:   []int{},
		Warning:    in.Warning,
	}
	isSeat := map[int]bool{}

	for _, row := range layout {
		cells := make([]models.SeatCell, 0, len(row))
		for _, c := range row {
			if c.Type != models.CellSeat {
				cells = append(cells, models.SeatCell{Type: c.Type})
				continue
			}
			cell := models.SeatCell{Type: models.CellSeat, Number: c.Number}
			isSeat[c.Number] = true
			view.TotalSeats++
			switch {
			case booked[c.Number]:
				cell.State = models.SeatBooked
				view.Booked++
			case wanted[c.Number]:
				cell.State = models.SeatSelected
			default:
				cell.State = models.SeatAvailable
			}
			cell.Selectable = !in.ReadOnly && cell.State != models.SeatBooked
			cells = append(cells, cell)
		}
		view.Rows = append(view.Rows, cells)
	}

	seen := map[int]bool{}
	for _, n := range in.Selected {
		if isSeat[n] && !booked[n] && !seen[n] {
			view.Selected = append(view.Selected, n)
			seen[n] = true
		}
	}
	view.Available = view.TotalSeats - view.Booked - len(view.Selected)
	return view
}

// SelectionNotice explains why a toggle was not applied.
type SelectionNotice struct {
	Seat    int    `json:"seat"`
	Reason  string `json:"reason"`
	Message string `json:"message"`
}

const (
	NoticeBooked   = "booked"
	NoticeReadOnly = "read_only"
	NoticeNotASeat = "not_a_seat"
)

// SeatSelection is the in-progress selection over one seat view. The
// caller bounds how many seats may be picked.
type SeatSelection struct {
	seats    map[int]bool
	booked   map[int]bool
	selected []int
	readOnly bool
	onChange func([]int)
}

// NewSeatSelection starts from the selection already present in view.
// onChange receives the full selection after every applied toggle.
func NewSeatSelection(view models.SeatView, onChange func([]int)) *SeatSelection {
	s := &SeatSelection{
		seats:    map[int]bool{},
		booked:   map[int]bool{},
		selected: append([]int{}, view.Selected...),
		readOnly: view.ReadOnly,
		onChange: onChange,
	}
	for _, row := range view.Rows {
		for _, c := range row {
			if c.Type != models.CellSeat {
				continue
			}
			s.seats[c.Number] = true
			if c.State == models.SeatBooked {
				s.booked[c.Number] = true
			}
		}
	}
	return s
}

// Toggle adds or removes seat. A rejected toggle returns a notice and leaves
// the selection untouched.
func (s *SeatSelection) Toggle(seat int) *SelectionNotice {
	switch {
	case s.readOnly:
		return &SelectionNotice{Seat: seat, Reason: NoticeReadOnly, Message: "peta kursi hanya untuk dilihat"}
	case !s.seats[seat]:
		return &SelectionNotice{Seat: seat, Reason: NoticeNotASeat, Message: "nomor kursi tidak ada di denah"}
	case s.booked[seat]:
		return &SelectionNotice{Seat: seat, Reason: NoticeBooked, Message: "kursi sudah dibooking, silakan pilih kursi lain"}
	}

	if i := indexOf(s.selected, seat); i >= 0 {
		s.selected = append(s.selected[:i], s.selected[i+1:]...)
	} else {
		s.selected = append(s.selected, seat)
	}
	if s.onChange != nil {
		s.onChange(s.Selected())
	}
	return nil
}

// Selected returns a copy of the current selection.
func (s *SeatSelection) Selected() []int {
	return append([]int{}, s.selected...)
}

func indexOf(list []int, v int) int {
	for i, x := range list {
		if x == v {
			return i
		}
	}
	return -1
}
