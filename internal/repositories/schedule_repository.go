package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"travelapp/internal/domain"
	"travelapp/internal/domain/models"
	"travelapp/internal/utils"
)

type ScheduleRepository struct {
	DB *sql.DB
}

const scheduleColumns = `id, route_id, departure_time, days_of_week, effective_date_start, effective_date_end, is_active`

func scanSchedule(sc interface{ Scan(...any) error }) (models.Schedule, error) {
	var s models.Schedule
	var dep, days string
	var start, end sql.NullTime
	var active int
	if err := sc.Scan(&s.ID, &s.RouteID, &dep, &days, &start, &end, &active); err != nil {
		return s, err
	}
	hhmm, err := utils.NormalizeHHMM(dep)
	if err != nil {
		return s, fmt.Errorf("schedule %d: departure_time %q: %w", s.ID, dep, err)
	}
	s.DepartureTime = hhmm
	list, err := utils.ParseIntList(days)
	if err != nil {
		return s, fmt.Errorf("schedule %d: days_of_week %q: %w", s.ID, days, err)
	}
	s.DaysOfWeek = models.Weekdays(list)
	if start.Valid {
		t := start.Time
		s.EffectiveDateStart = &t
	}
	if end.Valid {
		t := end.Time
		s.EffectiveDateEnd = &t
	}
	s.IsActive = active == 1
	return s, nil
}

// ListActiveByRoute returns the active schedules of one route.
func (r ScheduleRepository) ListActiveByRoute(ctx context.Context, routeID domain.ID) ([]models.Schedule, error) {
	return r.list(ctx, `SELECT `+scheduleColumns+` FROM schedules WHERE route_id = ? AND is_active = 1 ORDER BY departure_time ASC, id ASC`, routeID)
}

// List returns schedules for admin screens; routeID 0 means all routes.
func (r ScheduleRepository) List(ctx context.Context, routeID domain.ID) ([]models.Schedule, error) {
	if routeID.Valid() {
		return r.list(ctx, `SELECT `+scheduleColumns+` FROM schedules WHERE route_id = ? ORDER BY departure_time ASC, id ASC`, routeID)
	}
	return r.list(ctx, `SELECT `+scheduleColumns+` FROM schedules ORDER BY route_id ASC, departure_time ASC, id ASC`)
}

func (r ScheduleRepository) list(ctx context.Context, query string, args ...any) ([]models.Schedule, error) {
	db := dbOr(r.DB)
	if db == nil {
		return nil, errNoDB
	}
	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Schedule{}
	for rows.Next() {
		s, err := scanSchedule(rows)
		if err != nil {
			return out, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func (r ScheduleRepository) GetByID(ctx context.Context, id domain.ID) (models.Schedule, error) {
	db := dbOr(r.DB)
	if db == nil {
		return models.Schedule{}, errNoDB
	}
	s, err := scanSchedule(db.QueryRowContext(ctx, `SELECT `+scheduleColumns+` FROM schedules WHERE id = ? LIMIT 1`, id))
	if err != nil {
		return s, notFoundOr("schedule", err)
	}
	return s, nil
}

func dateArg(t *time.Time) any {
	if t == nil {
		return nil
	}
	return utils.FormatDate(*t)
}

func (r ScheduleRepository) Create(ctx context.Context, s models.Schedule) (domain.ID, error) {
	db := dbOr(r.DB)
	if db == nil {
		return 0, errNoDB
	}
	res, err := db.ExecContext(ctx, `
		INSERT INTO schedules (route_id, departure_time, days_of_week, effective_date_start, effective_date_end, is_active)
		VALUES (?, ?, ?, ?, ?, ?)
	`, s.RouteID, s.DepartureTime, utils.JoinInts(s.DaysOfWeek), dateArg(s.EffectiveDateStart), dateArg(s.EffectiveDateEnd), boolToTiny(s.IsActive))
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	return domain.ID(id), err
}

func (r ScheduleRepository) Update(ctx context.Context, s models.Schedule) error {
	db := dbOr(r.DB)
	if db == nil {
		return errNoDB
	}
	res, err := db.ExecContext(ctx, `
		UPDATE schedules
		SET route_id = ?, departure_time = ?, days_of_week = ?, effective_date_start = ?, effective_date_end = ?, is_active = ?
		WHERE id = ?
	`, s.RouteID, s.DepartureTime, utils.JoinInts(s.DaysOfWeek), dateArg(s.EffectiveDateStart), dateArg(s.EffectiveDateEnd), boolToTiny(s.IsActive), s.ID)
	if err != nil {
		return err
	}
	return requireAffected("schedule", res)
}

// Deactivate soft-deletes a schedule.
func (r ScheduleRepository) Deactivate(ctx context.Context, id domain.ID) error {
	db := dbOr(r.DB)
	if db == nil {
		return errNoDB
	}
	res, err := db.ExecContext(ctx, `UPDATE schedules SET is_active = 0 WHERE id = ?`, id)
	if err != nil {
		return err
	}
	return requireAffected("schedule", res)
}
