package services

import (
	"testing"

	"travelapp/internal/domain"
	"travelapp/internal/domain/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fieldOf(t *testing.T, err error) string {
	t.Helper()
	var ve domain.ValidationError
	require.ErrorAs(t, err, &ve)
	return ve.Field
}

func TestValidateDestination(t *testing.T) {
	d, err := ValidateDestination(models.Destination{Name: "  Kota   Baru "})
	require.NoError(t, err)
	assert.Equal(t, "Kota Baru", d.Name)

	_, err = ValidateDestination(models.Destination{Name: " "})
	assert.Equal(t, "name", fieldOf(t, err))
	_, err = ValidateDestination(models.Destination{Name: "A", OrderIndex: -1})
	assert.Equal(t, "orderIndex", fieldOf(t, err))
}

func TestValidateRoute(t *testing.T) {
	known := map[domain.ID]bool{1: true, 2: true, 3: true}

	rt, err := ValidateRoute(models.Route{Name: "R1", Stops: ids(1, 2, 3), IsActive: true}, known)
	require.NoError(t, err)
	assert.Equal(t, ids(1, 2, 3), rt.Stops)

	_, err = ValidateRoute(models.Route{Name: "R1", Stops: ids(1, 2, 1), IsActive: true}, known)
	assert.Equal(t, "stops", fieldOf(t, err))
	_, err = ValidateRoute(models.Route{Name: "R1", Stops: ids(1, 9), IsActive: true}, known)
	assert.Equal(t, "stops", fieldOf(t, err))
	_, err = ValidateRoute(models.Route{Name: "R1", Stops: ids(1), IsActive: true}, known)
	assert.Equal(t, "stops", fieldOf(t, err))

	// a draft route may have a single stop
	_, err = ValidateRoute(models.Route{Name: "R1", Stops: ids(1)}, known)
	assert.NoError(t, err)
}

func TestValidateSegment(t *testing.T) {
	rt := models.Route{ID: 1, Stops: ids(1, 2, 3)}
	neg := -5

	assert.NoError(t, ValidateSegment(models.Segment{RouteID: 1, StartDestinationID: 1, EndDestinationID: 3, AdultPrice: 600}, rt))

	bad := map[string]models.Segment{
		"routeId":          {RouteID: 2, StartDestinationID: 1, EndDestinationID: 2},
		"endDestinationId": {RouteID: 1, StartDestinationID: 3, EndDestinationID: 1},
		"adultPrice":       {RouteID: 1, StartDestinationID: 1, EndDestinationID: 2, ChildPrice: -1},
		"durationMinutes":  {RouteID: 1, StartDestinationID: 1, EndDestinationID: 2, DurationMinutes: &neg},
	}
	for field, seg := range bad {
		assert.Equal(t, field, fieldOf(t, ValidateSegment(seg, rt)), field)
	}
	assert.Equal(t, "endDestinationId", fieldOf(t, ValidateSegment(models.Segment{RouteID: 1, StartDestinationID: 2, EndDestinationID: 2}, rt)))
}

func TestNormalizeSchedule(t *testing.T) {
	s, err := NormalizeSchedule(models.Schedule{DepartureTime: "7:30", DaysOfWeek: models.Weekdays{5, 1, 1}})
	require.NoError(t, err)
	assert.Equal(t, "07:30", s.DepartureTime)
	assert.Equal(t, models.Weekdays{1, 5}, s.DaysOfWeek)

	_, err = NormalizeSchedule(models.Schedule{DepartureTime: "25:00", DaysOfWeek: models.EveryDay()})
	assert.Equal(t, "departureTime", fieldOf(t, err))
	_, err = NormalizeSchedule(models.Schedule{DepartureTime: "08:00", DaysOfWeek: models.Weekdays{7}})
	assert.Equal(t, "daysOfWeek", fieldOf(t, err))

	start, end := date("2024-03-01"), date("2024-02-01")
	_, err = NormalizeSchedule(models.Schedule{DepartureTime: "08:00", DaysOfWeek: models.EveryDay(), EffectiveDateStart: &start, EffectiveDateEnd: &end})
	assert.Equal(t, "effectiveDateEnd", fieldOf(t, err))
}

func TestValidateVehicle(t *testing.T) {
	v, warning, err := ValidateVehicle(models.Vehicle{Name: "Hiace", TotalCapacity: 4, SeatLayout: minibusLayout()})
	require.NoError(t, err)
	assert.Empty(t, warning)
	assert.Equal(t, models.CellDriver, v.SeatLayout[0][0].Type)

	_, warning, err = ValidateVehicle(models.Vehicle{Name: "Hiace", TotalCapacity: 2, SeatLayout: minibusLayout()})
	require.NoError(t, err)
	assert.NotEmpty(t, warning)

	dup := models.SeatLayout{{{Type: models.CellSeat, Number: 1}, {Type: models.CellSeat, Number: 1}}}
	_, _, err = ValidateVehicle(models.Vehicle{Name: "X", TotalCapacity: 2, SeatLayout: dup})
	assert.Equal(t, "seatLayout", fieldOf(t, err))

	unknown := models.SeatLayout{{{Type: "stairs"}}}
	_, _, err = ValidateVehicle(models.Vehicle{Name: "X", TotalCapacity: 2, SeatLayout: unknown})
	assert.Equal(t, "seatLayout", fieldOf(t, err))

	_, _, err = ValidateVehicle(models.Vehicle{Name: "X"})
	assert.Equal(t, "totalCapacity", fieldOf(t, err))
}

func TestValidateVehicleCapacityLimit(t *testing.T) {
	_, _, err := ValidateVehicle(models.Vehicle{Name: "Bus", TotalCapacity: models.MaxVehicleCapacity})
	require.NoError(t, err)

	_, _, err = ValidateVehicle(models.Vehicle{Name: "Bus", TotalCapacity: models.MaxVehicleCapacity + 1})
	assert.Equal(t, "totalCapacity", fieldOf(t, err))

	_, _, err = ValidateVehicle(models.Vehicle{Name: "Bus", TotalCapacity: 2000000000})
	assert.Equal(t, "totalCapacity", fieldOf(t, err))
}
