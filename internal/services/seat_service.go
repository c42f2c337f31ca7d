package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"travelapp/internal/domain"
	"travelapp/internal/domain/models"
	"travelapp/internal/utils"
)

const assignmentsUnavailable = "status kursi gagal dimuat; semua kursi ditampilkan tersedia"

// SeatService reconciles vehicle layouts with seat assignments of one
// departure (schedule + date) and is the reservation boundary for the
// booking workflow.
type SeatService struct {
	Schedules   ScheduleStore
	Routes      RouteStore
	Vehicles    VehicleGetter
	Assignments SeatAssignmentStore
	RequestID   string
}

type departure struct {
	schedule    models.Schedule
	route       models.Route
	vehicle     models.Vehicle
	assignments []models.SeatAssignment
	assignErr   error
}

// fetchError keeps typed domain errors and wraps everything else.
func fetchError(source string, err error) error {
	if domain.IsNotFound(err) || domain.IsValidation(err) {
		return err
	}
	return domain.FetchError{Source: source, Err: err}
}

func (s SeatService) loadDeparture(ctx context.Context, scheduleID domain.ID, tripDate time.Time) (departure, error) {
	var dep departure
	if !scheduleID.Valid() {
		return dep, domain.ValidationError{Field: "schedule_id", Msg: "id tidak valid"}
	}
	if tripDate.IsZero() {
		return dep, domain.ValidationError{Field: "date", Msg: "tanggal wajib diisi"}
	}

	sc, err := s.Schedules.GetByID(ctx, scheduleID)
	if err != nil {
		return dep, fetchError("schedule", err)
	}
	if !sc.IsActive || !sc.Covers(tripDate) {
		return dep, domain.ValidationError{Field: "date", Msg: "jadwal tidak beroperasi pada tanggal ini"}
	}
	rt, err := s.Routes.GetByID(ctx, sc.RouteID)
	if err != nil {
		return dep, fetchError("route", err)
	}
	if !rt.IsActive {
		return dep, domain.ValidationError{Field: "date", Msg: "jadwal tidak beroperasi pada tanggal ini"}
	}
	if rt.VehicleID == nil {
		return dep, domain.NotFoundError{Resource: "vehicle"}
	}
	v, err := s.Vehicles.GetByID(ctx, *rt.VehicleID)
	if err != nil {
		return dep, fetchError("vehicle", err)
	}
	if !v.IsActive {
		return dep, domain.NotFoundError{Resource: "vehicle"}
	}

	dep.schedule, dep.route, dep.vehicle = sc, rt, v
	dep.assignments, dep.assignErr = s.Assignments.ListByDeparture(ctx, scheduleID, tripDate)
	return dep, nil
}

// View builds the seat map of a departure. A failure to read assignments
// does not fail the view: it renders every seat as available and sets
// Warning. Reserve re-checks atomically, so this cannot double-book.
func (s SeatService) View(ctx context.Context, scheduleID domain.ID, tripDate time.Time, selected []int, readOnly bool) (models.SeatView, error) {
	dep, err := s.loadDeparture(ctx, scheduleID, tripDate)
	if err != nil {
		return models.SeatView{}, err
	}
	return s.buildView(dep, tripDate, selected, readOnly), nil
}

func (s SeatService) buildView(dep departure, tripDate time.Time, selected []int, readOnly bool) models.SeatView {
	in := SeatViewInput{
		Vehicle:     dep.vehicle,
		ScheduleID:  dep.schedule.ID,
		TripDate:    utils.FormatDate(tripDate),
		Assignments: dep.assignments,
		Selected:    selected,
		ReadOnly:    readOnly,
	}
	if dep.assignErr != nil {
		utils.LogFields(s.RequestID, "seats", "assignments_error", "schedule_id", dep.schedule.ID, "date", in.TripDate, "error", dep.assignErr)
		in.Assignments = nil
		in.Warning = assignmentsUnavailable
	}
	return BuildSeatView(in)
}

// SelectionResult is the outcome of one selection transition.
type SelectionResult struct {
	View     models.SeatView  `json:"view"`
	Selected []int            `json:"selected"`
	Notice   *SelectionNotice `json:"notice,omitempty"`
}

// Select applies one toggle to the caller's selection and returns the new
// state. A rejected toggle comes back as a notice, not an error.
func (s SeatService) Select(ctx context.Context, scheduleID domain.ID, tripDate time.Time, selected []int, toggle int, readOnly bool) (SelectionResult, error) {
	dep, err := s.loadDeparture(ctx, scheduleID, tripDate)
	if err != nil {
		return SelectionResult{}, err
	}
	view := s.buildView(dep, tripDate, selected, readOnly)

	current := view.Selected
	sel := NewSeatSelection(view, func(next []int) { current = next })
	notice := sel.Toggle(toggle)
	if notice == nil {
		view = s.buildView(dep, tripDate, current, readOnly)
	}
	return SelectionResult{View: view, Selected: current, Notice: notice}, nil
}

// ReserveRequest is the finalized seat list from the booking workflow.
type ReserveRequest struct {
	ScheduleID domain.ID
	TripDate   time.Time
	Seats      []int
	ClientID   string
}

// Reserve books every requested seat for ClientID or none of them. A seat
// already booked, including by a concurrent request, is a ConflictError.
func (s SeatService) Reserve(ctx context.Context, req ReserveRequest) error {
	req.ClientID = strings.TrimSpace(req.ClientID)
	if req.ClientID == "" {
		return domain.ValidationError{Field: "client_id", Msg: "client wajib diisi"}
	}
	if len(req.Seats) == 0 {
		return domain.ValidationError{Field: "seats", Msg: "wajib pilih kursi"}
	}
	if utils.HasDuplicateInts(req.Seats) {
		return domain.ValidationError{Field: "seats", Msg: "kursi tidak boleh duplikat"}
	}

	dep, err := s.loadDeparture(ctx, req.ScheduleID, req.TripDate)
	if err != nil {
		return err
	}
	layout, _ := EffectiveLayout(dep.vehicle)
	valid := map[int]bool{}
	for _, n := range layout.SeatNumbers() {
		valid[n] = true
	}
	for _, n := range req.Seats {
		if !valid[n] {
			return domain.ValidationError{Field: "seats", Msg: fmt.Sprintf("kursi %d tidak ada di denah kendaraan", n)}
		}
	}

	if err := s.Assignments.Reserve(ctx, req.ScheduleID, req.TripDate, req.Seats, req.ClientID); err != nil {
		utils.LogFields(s.RequestID, "seats", "reserve_error", "schedule_id", req.ScheduleID, "date", utils.FormatDate(req.TripDate), "error", err)
		if domain.IsConflict(err) {
			return err
		}
		return domain.InternalError{Msg: "gagal menyimpan kursi", Err: err}
	}
	utils.LogFields(s.RequestID, "seats", "reserve", "schedule_id", req.ScheduleID, "date", utils.FormatDate(req.TripDate), "seats", utils.JoinInts(req.Seats), "client_id", req.ClientID)
	return nil
}

// Release frees booked seats of a departure (operator action).
func (s SeatService) Release(ctx context.Context, scheduleID domain.ID, tripDate time.Time, seats []int) (int64, error) {
	if !scheduleID.Valid() {
		return 0, domain.ValidationError{Field: "schedule_id", Msg: "id tidak valid"}
	}
	if len(seats) == 0 {
		return 0, domain.ValidationError{Field: "seats", Msg: "wajib pilih kursi"}
	}
	n, err := s.Assignments.Release(ctx, scheduleID, tripDate, seats)
	if err != nil {
		return 0, domain.InternalError{Msg: "gagal melepas kursi", Err: err}
	}
	utils.LogFields(s.RequestID, "seats", "release", "schedule_id", scheduleID, "date", utils.FormatDate(tripDate), "released", n)
	return n, nil
}
