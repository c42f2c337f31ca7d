package services

import (
	"fmt"
	"strings"

	"travelapp/internal/domain"
	"travelapp/internal/domain/models"
	"travelapp/internal/utils"
)

func ValidateDestination(d models.Destination) (models.Destination, error) {
	d.Name = utils.NormalizeSpace(d.Name)
	if d.Name == "" {
		return d, domain.ValidationError{Field: "name", Msg: "nama wajib diisi"}
	}
	if d.OrderIndex < 0 {
		return d, domain.ValidationError{Field: "orderIndex", Msg: "urutan tidak boleh negatif"}
	}
	return d, nil
}

// ValidateRoute checks the stop list against known destination ids.
func ValidateRoute(rt models.Route, known map[domain.ID]bool) (models.Route, error) {
	rt.Name = utils.NormalizeSpace(rt.Name)
	if rt.Name == "" {
		return rt, domain.ValidationError{Field: "name", Msg: "nama rute wajib diisi"}
	}
	seen := map[domain.ID]bool{}
	for _, id := range rt.Stops {
		if seen[id] {
			return rt, domain.ValidationError{Field: "stops", Msg: fmt.Sprintf("halte %d muncul lebih dari sekali", id)}
		}
		seen[id] = true
		if !known[id] {
			return rt, domain.ValidationError{Field: "stops", Msg: fmt.Sprintf("halte %d tidak dikenal", id)}
		}
	}
	if rt.IsActive && len(rt.Stops) < 2 {
		return rt, domain.ValidationError{Field: "stops", Msg: "rute aktif minimal punya 2 halte"}
	}
	if rt.Stops == nil {
		rt.Stops = []domain.ID{}
	}
	return rt, nil
}

// ValidateSegment requires both ends on the route, start before end.
func ValidateSegment(s models.Segment, rt models.Route) error {
	if s.RouteID != rt.ID {
		return domain.ValidationError{Field: "routeId", Msg: "rute tidak cocok"}
	}
	if s.StartDestinationID == s.EndDestinationID {
		return domain.ValidationError{Field: "endDestinationId", Msg: "awal dan akhir tidak boleh sama"}
	}
	if !rt.Serves(s.StartDestinationID, s.EndDestinationID) {
		return domain.ValidationError{Field: "endDestinationId", Msg: "kedua halte harus ada di rute dengan urutan awal sebelum akhir"}
	}
	if s.AdultPrice < 0 || s.ChildPrice < 0 {
		return domain.ValidationError{Field: "adultPrice", Msg: "harga tidak boleh negatif"}
	}
	if s.DurationMinutes != nil && *s.DurationMinutes < 0 {
		return domain.ValidationError{Field: "durationMinutes", Msg: "durasi tidak boleh negatif"}
	}
	if s.DistanceKm != nil && *s.DistanceKm < 0 {
		return domain.ValidationError{Field: "distanceKm", Msg: "jarak tidak boleh negatif"}
	}
	return nil
}

// NormalizeSchedule zero-pads the departure time and cleans the day set.
func NormalizeSchedule(s models.Schedule) (models.Schedule, error) {
	hhmm, err := utils.NormalizeHHMM(s.DepartureTime)
	if err != nil {
		return s, domain.ValidationError{Field: "departureTime", Msg: err.Error(), Err: err}
	}
	s.DepartureTime = hhmm
	if !s.DaysOfWeek.Valid() {
		return s, domain.ValidationError{Field: "daysOfWeek", Msg: "hari wajib diisi dengan angka 0 (Minggu) sampai 6 (Sabtu)"}
	}
	s.DaysOfWeek = s.DaysOfWeek.Normalize()
	if s.EffectiveDateStart != nil && s.EffectiveDateEnd != nil && s.EffectiveDateEnd.Before(*s.EffectiveDateStart) {
		return s, domain.ValidationError{Field: "effectiveDateEnd", Msg: "tanggal akhir sebelum tanggal mulai"}
	}
	return s, nil
}

// ValidateVehicle rejects malformed layouts. A seat count above capacity is
// returned as a warning only.
func ValidateVehicle(v models.Vehicle) (models.Vehicle, string, error) {
	v.Name = utils.NormalizeSpace(v.Name)
	if v.Name == "" {
		return v, "", domain.ValidationError{Field: "name", Msg: "nama kendaraan wajib diisi"}
	}
	if v.TotalCapacity <= 0 {
		return v, "", domain.ValidationError{Field: "totalCapacity", Msg: "kapasitas harus lebih dari 0"}
	}
	if v.TotalCapacity > models.MaxVehicleCapacity {
		return v, "", domain.ValidationError{Field: "totalCapacity", Msg: fmt.Sprintf("kapasitas maksimal %d", models.MaxVehicleCapacity)}
	}
	seen := map[int]bool{}
	for r, row := range v.SeatLayout {
		for c, cell := range row {
			cell.Type = models.CellType(strings.ToLower(strings.TrimSpace(string(cell.Type))))
			if !cell.Type.Known() {
				return v, "", domain.ValidationError{Field: "seatLayout", Msg: fmt.Sprintf("baris %d kolom %d: tipe %q tidak dikenal", r+1, c+1, cell.Type)}
			}
			if cell.Type != models.CellSeat {
				cell.Number = 0
			} else {
				if cell.Number <= 0 {
					return v, "", domain.ValidationError{Field: "seatLayout", Msg: fmt.Sprintf("baris %d kolom %d: nomor kursi harus positif", r+1, c+1)}
				}
				if seen[cell.Number] {
					return v, "", domain.ValidationError{Field: "seatLayout", Msg: fmt.Sprintf("nomor kursi %d duplikat", cell.Number)}
				}
				seen[cell.Number] = true
			}
			v.SeatLayout[r][c] = cell
		}
	}
	warning := ""
	if len(seen) > v.TotalCapacity {
		warning = fmt.Sprintf("denah punya %d kursi, melebihi kapasitas %d", len(seen), v.TotalCapacity)
	}
	return v, warning, nil
}
