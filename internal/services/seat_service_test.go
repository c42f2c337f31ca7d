package services

import (
	"bytes"
	"context"
	"testing"

	"travelapp/internal/domain"
	"travelapp/internal/domain/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func minibusLayout() models.SeatLayout {
	return models.SeatLayout{
		{{Type: models.CellDriver}, {Type: models.CellEmpty}, {Type: models.CellEntry}},
		{{Type: models.CellSeat, Number: 1}, {Type: models.CellSeat, Number: 2}, {Type: models.CellAisle}, {Type: models.CellSeat, Number: 3}},
		{{Type: models.CellSeat, Number: 4}, {Type: models.CellAisle}, {Type: models.CellBathroom}},
	}
}

type seatFixture struct {
	schedules   *fakeSchedules
	routes      *fakeRoutes
	vehicles    fakeVehicles
	assignments *fakeAssignments
}

func newSeatFixture() *seatFixture {
	return &seatFixture{
		schedules: &fakeSchedules{byRoute: map[domain.ID][]models.Schedule{
			1: {{ID: 100, RouteID: 1, DepartureTime: "08:00", DaysOfWeek: models.Weekdays{1, 3, 5}, IsActive: true}},
		}},
		routes: &fakeRoutes{list: []models.Route{
			{ID: 1, Name: "R1", VehicleID: idPtr(7), Stops: ids(cancun, cdmx), IsActive: true},
		}},
		vehicles: fakeVehicles{7: {ID: 7, Name: "Hiace", TotalCapacity: 4, SeatLayout: minibusLayout(), IsActive: true}},
		assignments: &fakeAssignments{list: []models.SeatAssignment{
			{ScheduleID: 100, SeatNumber: 2, Status: models.SeatStatusBooked},
			{ScheduleID: 100, SeatNumber: 3, Status: models.SeatStatusAvailable},
		}},
	}
}

func (f *seatFixture) service() SeatService {
	return SeatService{Schedules: f.schedules, Routes: f.routes, Vehicles: f.vehicles, Assignments: f.assignments}
}

func seatStates(v models.SeatView) map[int]models.SeatState {
	out := map[int]models.SeatState{}
	for _, row := range v.Rows {
		for _, c := range row {
			if c.Type == models.CellSeat {
				out[c.Number] = c.State
			}
		}
	}
	return out
}

func TestBuildSeatViewStates(t *testing.T) {
	v := BuildSeatView(SeatViewInput{
		Vehicle:     models.Vehicle{TotalCapacity: 4, SeatLayout: minibusLayout()},
		Assignments: []models.SeatAssignment{{SeatNumber: 2, Status: models.SeatStatusBooked}},
		Selected:    []int{2, 4, 9},
	})

	require.Len(t, v.Rows, 3)
	assert.False(t, v.Fallback)
	assert.Equal(t, models.CellDriver, v.Rows[0][0].Type)
	assert.Equal(t, map[int]models.SeatState{
		1: models.SeatAvailable,
		2: models.SeatBooked,
		3: models.SeatAvailable,
		4: models.SeatSelected,
	}, seatStates(v))
	// booked and unknown numbers never stay selected
	assert.Equal(t, []int{4}, v.Selected)
	assert.Equal(t, 4, v.TotalSeats)
	assert.Equal(t, 1, v.Booked)
	assert.Equal(t, 2, v.Available)
	assert.False(t, v.Rows[1][1].Selectable)
	assert.True(t, v.Rows[1][0].Selectable)
}

func TestBuildSeatViewFallback(t *testing.T) {
	v := BuildSeatView(SeatViewInput{Vehicle: models.Vehicle{TotalCapacity: 40}})

	assert.True(t, v.Fallback)
	require.Len(t, v.Rows, 1)
	require.Len(t, v.Rows[0], 40)
	for i, c := range v.Rows[0] {
		assert.Equal(t, models.CellSeat, c.Type)
		assert.Equal(t, i+1, c.Number)
	}
}

func TestFallbackLayoutIsClamped(t *testing.T) {
	l := FallbackLayout(2000000000)
	require.Len(t, l, 1)
	assert.Len(t, l[0], models.MaxVehicleCapacity)
	assert.Equal(t, models.MaxVehicleCapacity, l[0][len(l[0])-1].Number)

	v := BuildSeatView(SeatViewInput{Vehicle: models.Vehicle{TotalCapacity: 2000000000}})
	assert.Equal(t, models.MaxVehicleCapacity, v.Available)
}

func TestBuildSeatViewReadOnly(t *testing.T) {
	v := BuildSeatView(SeatViewInput{Vehicle: models.Vehicle{TotalCapacity: 3}, ReadOnly: true})
	for _, c := range v.Rows[0] {
		assert.False(t, c.Selectable)
	}
}

func TestSeatSelectionToggle(t *testing.T) {
	view := BuildSeatView(SeatViewInput{
		Vehicle:     models.Vehicle{TotalCapacity: 4, SeatLayout: minibusLayout()},
		Assignments: []models.SeatAssignment{{SeatNumber: 2, Status: models.SeatStatusBooked}},
	})
	var changes [][]int
	sel := NewSeatSelection(view, func(s []int) { changes = append(changes, s) })

	notice := sel.Toggle(2)
	require.NotNil(t, notice)
	assert.Equal(t, NoticeBooked, notice.Reason)
	assert.Empty(t, sel.Selected())
	assert.Empty(t, changes)

	assert.Nil(t, sel.Toggle(1))
	assert.Nil(t, sel.Toggle(4))
	assert.Equal(t, []int{1, 4}, sel.Selected())
	assert.Nil(t, sel.Toggle(1))
	assert.Equal(t, []int{4}, sel.Selected())
	assert.Equal(t, [][]int{{1}, {1, 4}, {4}}, changes)

	notice = sel.Toggle(12)
	require.NotNil(t, notice)
	assert.Equal(t, NoticeNotASeat, notice.Reason)
}

func TestSeatSelectionReadOnly(t *testing.T) {
	view := BuildSeatView(SeatViewInput{Vehicle: models.Vehicle{TotalCapacity: 4}, ReadOnly: true})
	called := false
	sel := NewSeatSelection(view, func([]int) { called = true })

	notice := sel.Toggle(1)
	require.NotNil(t, notice)
	assert.Equal(t, NoticeReadOnly, notice.Reason)
	assert.False(t, called)
}

func TestSeatServiceView(t *testing.T) {
	f := newSeatFixture()

	v, err := f.service().View(context.Background(), 100, date("2024-01-01"), []int{1}, false)
	require.NoError(t, err)
	assert.Equal(t, "2024-01-01", v.TripDate)
	assert.Equal(t, domain.ID(100), v.ScheduleID)
	assert.Equal(t, 1, v.Booked)
	assert.Equal(t, []int{1}, v.Selected)
	assert.Empty(t, v.Warning)
}

func TestSeatServiceViewFailsOpen(t *testing.T) {
	f := newSeatFixture()
	f.assignments.listErr = errStore

	v, err := f.service().View(context.Background(), 100, date("2024-01-01"), nil, false)
	require.NoError(t, err)
	assert.NotEmpty(t, v.Warning)
	assert.Equal(t, 0, v.Booked)
	assert.Equal(t, 4, v.Available)
}

func TestSeatServiceViewRejectsUncoveredDate(t *testing.T) {
	f := newSeatFixture()

	_, err := f.service().View(context.Background(), 100, date("2024-01-02"), nil, false)
	assert.True(t, domain.IsValidation(err))
}

func TestSeatServiceViewErrors(t *testing.T) {
	f := newSeatFixture()
	_, err := f.service().View(context.Background(), 999, date("2024-01-01"), nil, false)
	assert.True(t, domain.IsNotFound(err))

	f.routes.list[0].VehicleID = nil
	_, err = f.service().View(context.Background(), 100, date("2024-01-01"), nil, false)
	assert.True(t, domain.IsNotFound(err))

	f = newSeatFixture()
	f.schedules.err = errStore
	_, err = f.service().View(context.Background(), 100, date("2024-01-01"), nil, false)
	assert.True(t, domain.IsFetch(err))
}

func TestSeatServiceRejectsInactiveRouteAndVehicle(t *testing.T) {
	req := ReserveRequest{ScheduleID: 100, TripDate: date("2024-01-01"), Seats: []int{1}, ClientID: "c"}

	f := newSeatFixture()
	f.routes.list[0].IsActive = false
	_, err := f.service().View(context.Background(), 100, date("2024-01-01"), nil, false)
	assert.True(t, domain.IsValidation(err), "got %v", err)
	err = f.service().Reserve(context.Background(), req)
	assert.True(t, domain.IsValidation(err), "got %v", err)
	assert.Empty(t, f.assignments.reserved)

	f = newSeatFixture()
	v := f.vehicles[7]
	v.IsActive = false
	f.vehicles[7] = v
	_, err = f.service().View(context.Background(), 100, date("2024-01-01"), nil, false)
	assert.True(t, domain.IsNotFound(err), "got %v", err)
	err = f.service().Reserve(context.Background(), req)
	assert.True(t, domain.IsNotFound(err), "got %v", err)
	assert.Empty(t, f.assignments.reserved)
}

func TestSeatServiceSelect(t *testing.T) {
	f := newSeatFixture()
	svc := f.service()

	res, err := svc.Select(context.Background(), 100, date("2024-01-01"), []int{1}, 3, false)
	require.NoError(t, err)
	assert.Nil(t, res.Notice)
	assert.Equal(t, []int{1, 3}, res.Selected)
	assert.Equal(t, []int{1, 3}, res.View.Selected)

	res, err = svc.Select(context.Background(), 100, date("2024-01-01"), []int{1}, 2, false)
	require.NoError(t, err)
	require.NotNil(t, res.Notice)
	assert.Equal(t, NoticeBooked, res.Notice.Reason)
	assert.Equal(t, []int{1}, res.Selected)
	assert.Equal(t, models.SeatBooked, seatStates(res.View)[2])
}

func TestSeatServiceReserve(t *testing.T) {
	f := newSeatFixture()
	svc := f.service()

	err := svc.Reserve(context.Background(), ReserveRequest{ScheduleID: 100, TripDate: date("2024-01-01"), Seats: []int{1, 4}, ClientID: " c-1 "})
	require.NoError(t, err)
	require.Len(t, f.assignments.reserved, 1)
	assert.Equal(t, []int{1, 4}, f.assignments.reserved[0].seats)
	assert.Equal(t, "c-1", f.assignments.reserved[0].clientID)
}

func TestSeatServiceReserveValidation(t *testing.T) {
	cases := map[string]ReserveRequest{
		"no client":      {ScheduleID: 100, TripDate: date("2024-01-01"), Seats: []int{1}},
		"no seats":       {ScheduleID: 100, TripDate: date("2024-01-01"), ClientID: "c"},
		"duplicate seat": {ScheduleID: 100, TripDate: date("2024-01-01"), Seats: []int{1, 1}, ClientID: "c"},
		"not in layout":  {ScheduleID: 100, TripDate: date("2024-01-01"), Seats: []int{5}, ClientID: "c"},
		"uncovered date": {ScheduleID: 100, TripDate: date("2024-01-02"), Seats: []int{1}, ClientID: "c"},
		"no date":        {ScheduleID: 100, Seats: []int{1}, ClientID: "c"},
	}
	for name, req := range cases {
		t.Run(name, func(t *testing.T) {
			f := newSeatFixture()
			err := f.service().Reserve(context.Background(), req)
			assert.True(t, domain.IsValidation(err), "got %v", err)
			assert.Empty(t, f.assignments.reserved)
		})
	}
}

func TestSeatServiceReserveErrors(t *testing.T) {
	f := newSeatFixture()
	f.assignments.reserveErr = domain.ConflictError{Resource: "seat", Msg: "kursi 1 sudah dibooking"}
	err := f.service().Reserve(context.Background(), ReserveRequest{ScheduleID: 100, TripDate: date("2024-01-01"), Seats: []int{1}, ClientID: "c"})
	assert.True(t, domain.IsConflict(err))

	f.assignments.reserveErr = errStore
	err = f.service().Reserve(context.Background(), ReserveRequest{ScheduleID: 100, TripDate: date("2024-01-01"), Seats: []int{1}, ClientID: "c"})
	assert.True(t, domain.IsInternal(err))
}

func TestSeatServiceRelease(t *testing.T) {
	f := newSeatFixture()
	f.assignments.released = 2

	n, err := f.service().Release(context.Background(), 100, date("2024-01-01"), []int{1, 2})
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	_, err = f.service().Release(context.Background(), 100, date("2024-01-01"), nil)
	assert.True(t, domain.IsValidation(err))
}

func TestManifestGenerate(t *testing.T) {
	f := newSeatFixture()
	client := "c-9"
	f.assignments.list[0].ClientID = &client
	m := ManifestService{Seats: f.service()}

	pdf, name, err := m.Generate(context.Background(), 100, date("2024-01-01"))
	require.NoError(t, err)
	assert.Equal(t, "MANIFEST_100_2024-01-01.pdf", name)
	assert.True(t, bytes.HasPrefix(pdf, []byte("%PDF")))
}

func TestManifestDoesNotFailOpen(t *testing.T) {
	f := newSeatFixture()
	f.assignments.listErr = errStore
	m := ManifestService{Seats: f.service()}

	_, _, err := m.Generate(context.Background(), 100, date("2024-01-01"))
	assert.True(t, domain.IsFetch(err))
}
