package repositories

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"travelapp/internal/domain"
	"travelapp/internal/domain/models"
)

type VehicleRepository struct {
	DB *sql.DB
}

const vehicleColumns = `id, name, total_capacity, seat_layout, is_active`

func scanVehicle(sc interface{ Scan(...any) error }) (models.Vehicle, error) {
	var v models.Vehicle
	var layout sql.NullString
	var active int
	if err := sc.Scan(&v.ID, &v.Name, &v.TotalCapacity, &layout, &active); err != nil {
		return v, err
	}
	v.IsActive = active == 1
	if layout.Valid && layout.String != "" && layout.String != "null" {
		if err := json.Unmarshal([]byte(layout.String), &v.SeatLayout); err != nil {
			return v, fmt.Errorf("vehicle %d: seat_layout: %w", v.ID, err)
		}
	}
	return v, nil
}

func (r VehicleRepository) GetByID(ctx context.Context, id domain.ID) (models.Vehicle, error) {
	db := dbOr(r.DB)
	if db == nil {
		return models.Vehicle{}, errNoDB
	}
	v, err := scanVehicle(db.QueryRowContext(ctx, `SELECT `+vehicleColumns+` FROM vehicles WHERE id = ? LIMIT 1`, id))
	if err != nil {
		return v, notFoundOr("vehicle", err)
	}
	return v, nil
}

func (r VehicleRepository) List(ctx context.Context) ([]models.Vehicle, error) {
	db := dbOr(r.DB)
	if db == nil {
		return nil, errNoDB
	}
	rows, err := db.QueryContext(ctx, `SELECT `+vehicleColumns+` FROM vehicles ORDER BY id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Vehicle{}
	for rows.Next() {
		v, err := scanVehicle(rows)
		if err != nil {
			return out, err
		}
		out = append(out, v)
	}
	return out, rows.Err()
}

func layoutArg(l models.SeatLayout) (any, error) {
	if len(l) == 0 {
		return nil, nil
	}
	b, err := json.Marshal(l)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (r VehicleRepository) Create(ctx context.Context, v models.Vehicle) (domain.ID, error) {
	db := dbOr(r.DB)
	if db == nil {
		return 0, errNoDB
	}
	layout, err := layoutArg(v.SeatLayout)
	if err != nil {
		return 0, err
	}
	res, err := db.ExecContext(ctx, `
		INSERT INTO vehicles (name, total_capacity, seat_layout, is_active)
		VALUES (?, ?, ?, ?)
	`, v.Name, v.TotalCapacity, layout, boolToTiny(v.IsActive))
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	return domain.ID(id), err
}

func (r VehicleRepository) Update(ctx context.Context, v models.Vehicle) error {
	db := dbOr(r.DB)
	if db == nil {
		return errNoDB
	}
	layout, err := layoutArg(v.SeatLayout)
	if err != nil {
		return err
	}
	res, err := db.ExecContext(ctx, `
		UPDATE vehicles
		SET name = ?, total_capacity = ?, seat_layout = ?, is_active = ?
		WHERE id = ?
	`, v.Name, v.TotalCapacity, layout, boolToTiny(v.IsActive), v.ID)
	if err != nil {
		return err
	}
	return requireAffected("vehicle", res)
}

// Deactivate soft-deletes a vehicle.
func (r VehicleRepository) Deactivate(ctx context.Context, id domain.ID) error {
	db := dbOr(r.DB)
	if db == nil {
		return errNoDB
	}
	res, err := db.ExecContext(ctx, `UPDATE vehicles SET is_active = 0 WHERE id = ?`, id)
	if err != nil {
		return err
	}
	return requireAffected("vehicle", res)
}
