package repositories

import (
	"context"
	"database/sql"

	"travelapp/internal/domain"
	"travelapp/internal/domain/models"
)

// RouteRepository stores routes and their ordered stops (route_stops).
type RouteRepository struct {
	DB *sql.DB
}

// ListActive returns active routes with stops in serving order.
func (r RouteRepository) ListActive(ctx context.Context) ([]models.Route, error) {
	return r.list(ctx, true)
}

// List returns all routes (admin).
func (r RouteRepository) List(ctx context.Context) ([]models.Route, error) {
	return r.list(ctx, false)
}

func (r RouteRepository) list(ctx context.Context, activeOnly bool) ([]models.Route, error) {
	db := dbOr(r.DB)
	if db == nil {
		return nil, errNoDB
	}
	query := `SELECT id, name, vehicle_id, is_active FROM routes`
	if activeOnly {
		query += ` WHERE is_active = 1`
	}
	query += ` ORDER BY id ASC`

	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Route{}
	index := map[domain.ID]int{}
	for rows.Next() {
		rt, err := scanRoute(rows)
		if err != nil {
			return out, err
		}
		index[rt.ID] = len(out)
		out = append(out, rt)
	}
	if err := rows.Err(); err != nil {
		return out, err
	}
	if len(out) == 0 {
		return out, nil
	}

	stopRows, err := db.QueryContext(ctx, `
		SELECT route_id, destination_id
		FROM route_stops
		ORDER BY route_id ASC, position ASC
	`)
	if err != nil {
		return out, err
	}
	defer stopRows.Close()

	for stopRows.Next() {
		var routeID, destID domain.ID
		if err := stopRows.Scan(&routeID, &destID); err != nil {
			return out, err
		}
		if i, ok := index[routeID]; ok {
			out[i].Stops = append(out[i].Stops, destID)
		}
	}
	return out, stopRows.Err()
}

func scanRoute(sc interface{ Scan(...any) error }) (models.Route, error) {
	var rt models.Route
	var vehicle sql.NullInt64
	var active int
	if err := sc.Scan(&rt.ID, &rt.Name, &vehicle, &active); err != nil {
		return rt, err
	}
	if vehicle.Valid {
		v := domain.ID(vehicle.Int64)
		rt.VehicleID = &v
	}
	rt.IsActive = active == 1
	rt.Stops = []domain.ID{}
	return rt, nil
}

func (r RouteRepository) GetByID(ctx context.Context, id domain.ID) (models.Route, error) {
	db := dbOr(r.DB)
	if db == nil {
		return models.Route{}, errNoDB
	}
	rt, err := scanRoute(db.QueryRowContext(ctx, `SELECT id, name, vehicle_id, is_active FROM routes WHERE id = ? LIMIT 1`, id))
	if err != nil {
		return rt, notFoundOr("route", err)
	}

	rows, err := db.QueryContext(ctx, `SELECT destination_id FROM route_stops WHERE route_id = ? ORDER BY position ASC`, id)
	if err != nil {
		return rt, err
	}
	defer rows.Close()
	for rows.Next() {
		var dest domain.ID
		if err := rows.Scan(&dest); err != nil {
			return rt, err
		}
		rt.Stops = append(rt.Stops, dest)
	}
	return rt, rows.Err()
}

func vehicleArg(id *domain.ID) any {
	if id == nil {
		return nil
	}
	return int64(*id)
}

// Create inserts the route and its stops in one transaction.
func (r RouteRepository) Create(ctx context.Context, rt models.Route) (domain.ID, error) {
	db := dbOr(r.DB)
	if db == nil {
		return 0, errNoDB
	}
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx, `
		INSERT INTO routes (name, vehicle_id, is_active)
		VALUES (?, ?, ?)
	`, rt.Name, vehicleArg(rt.VehicleID), boolToTiny(rt.IsActive))
	if err != nil {
		return 0, err
	}
	id64, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	id := domain.ID(id64)
	if err := insertStops(ctx, tx, id, rt.Stops); err != nil {
		return 0, err
	}
	return id, tx.Commit()
}

// Update rewrites the route row and replaces its stop list.
func (r RouteRepository) Update(ctx context.Context, rt models.Route) error {
	db := dbOr(r.DB)
	if db == nil {
		return errNoDB
	}
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx, `
		UPDATE routes
		SET name = ?, vehicle_id = ?, is_active = ?
		WHERE id = ?
	`, rt.Name, vehicleArg(rt.VehicleID), boolToTiny(rt.IsActive), rt.ID)
	if err != nil {
		return err
	}
	if err := requireAffected("route", res); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM route_stops WHERE route_id = ?`, rt.ID); err != nil {
		return err
	}
	if err := insertStops(ctx, tx, rt.ID, rt.Stops); err != nil {
		return err
	}
	return tx.Commit()
}

func insertStops(ctx context.Context, tx *sql.Tx, routeID domain.ID, stops []domain.ID) error {
	for pos, dest := range stops {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO route_stops (route_id, position, destination_id)
			VALUES (?, ?, ?)
		`, routeID, pos, dest); err != nil {
			return err
		}
	}
	return nil
}

// Deactivate soft-deletes a route.
func (r RouteRepository) Deactivate(ctx context.Context, id domain.ID) error {
	db := dbOr(r.DB)
	if db == nil {
		return errNoDB
	}
	res, err := db.ExecContext(ctx, `UPDATE routes SET is_active = 0 WHERE id = ?`, id)
	if err != nil {
		return err
	}
	return requireAffected("route", res)
}
