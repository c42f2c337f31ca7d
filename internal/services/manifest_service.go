package services

import (
	"bytes"
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"travelapp/internal/domain"
	"travelapp/internal/domain/models"
	"travelapp/internal/utils"

	"github.com/phpdave11/gofpdf"
)

// ManifestService prints the seat map of one departure for the driver.
type ManifestService struct {
	Seats     SeatService
	RequestID string
}

type manifestData struct {
	RouteName     string
	DepartureTime string
	TripDate      string
	VehicleName   string
	View          models.SeatView
	Clients       map[int]string
}

// Generate returns the manifest PDF and its file name. Unlike the seat view
// it does not fail open: a manifest without occupancy would be wrong.
func (m ManifestService) Generate(ctx context.Context, scheduleID domain.ID, tripDate time.Time) ([]byte, string, error) {
	dep, err := m.Seats.loadDeparture(ctx, scheduleID, tripDate)
	if err != nil {
		return nil, "", err
	}
	if dep.assignErr != nil {
		return nil, "", domain.FetchError{Source: "seat_assignments", Err: dep.assignErr}
	}

	data := manifestData{
		RouteName:     dep.route.Name,
		DepartureTime: dep.schedule.DepartureTime,
		TripDate:      utils.FormatDate(tripDate),
		VehicleName:   dep.vehicle.Name,
		View:          m.Seats.buildView(dep, tripDate, nil, true),
		Clients:       map[int]string{},
	}
	for _, a := range dep.assignments {
		if a.Status == models.SeatStatusBooked && a.ClientID != nil {
			data.Clients[a.SeatNumber] = *a.ClientID
		}
	}

	utils.LogFields(m.RequestID, "manifest", "generate", "schedule_id", scheduleID, "date", data.TripDate, "booked", data.View.Booked)
	return buildManifestPDF(scheduleID, data)
}

func cellLabel(c models.SeatCell) string {
	switch c.Type {
	case models.CellSeat:
		if c.State == models.SeatBooked {
			return strconv.Itoa(c.Number) + " X"
		}
		return strconv.Itoa(c.Number)
	case models.CellDriver:
		return "SOPIR"
	case models.CellEntry:
		return "PINTU"
	case models.CellBathroom:
		return "WC"
	default:
		return ""
	}
}

func buildManifestPDF(scheduleID domain.ID, d manifestData) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Manifest Kursi", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "MANIFEST KURSI")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	lines := []string{
		fmt.Sprintf("Rute        : %s", safe(d.RouteName, "-")),
		fmt.Sprintf("Tanggal/Jam : %s %s", safe(d.TripDate, "-"), safe(d.DepartureTime, "-")),
		fmt.Sprintf("Kendaraan   : %s", safe(d.VehicleName, "-")),
		fmt.Sprintf("Terisi      : %d / %d kursi", d.View.Booked, d.View.TotalSeats),
		fmt.Sprintf("Dicetak     : %s", utils.FormatDateTime(utils.NowUTC())),
	}
	for _, s := range lines {
		pdf.Cell(0, 7, s)
		pdf.Ln(7)
	}
	pdf.Ln(4)

	cellW, cellH := 14.0, 10.0
	if d.View.Fallback {
		cellW = 9.0
	}
	pdf.SetFont("Helvetica", "", 9)
	for _, row := range d.View.Rows {
		x := pdf.GetX()
		for i, c := range row {
			if d.View.Fallback && i > 0 && i%20 == 0 {
				pdf.Ln(cellH)
				pdf.SetX(x)
			}
			border := "1"
			if c.Type == models.CellAisle || c.Type == models.CellEmpty {
				border = ""
			}
			fill := c.Type == models.CellSeat && c.State == models.SeatBooked
			if fill {
				pdf.SetFillColor(220, 220, 220)
			}
			pdf.CellFormat(cellW, cellH, cellLabel(c), border, 0, "C", fill, 0, "")
		}
		pdf.Ln(cellH)
	}

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, "Penumpang:")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 11)
	if len(d.Clients) == 0 {
		pdf.Cell(0, 6, "Belum ada kursi yang dibooking.")
		pdf.Ln(6)
	}
	for _, row := range d.View.Rows {
		for _, c := range row {
			if client, ok := d.Clients[c.Number]; ok && c.Type == models.CellSeat {
				pdf.Cell(0, 6, fmt.Sprintf("Kursi %-3d : %s", c.Number, client))
				pdf.Ln(6)
			}
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}
	filename := fmt.Sprintf("MANIFEST_%d_%s.pdf", scheduleID, d.TripDate)
	return buf.Bytes(), filename, nil
}

func safe(v, fallback string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return fallback
	}
	return v
}
