package repositories

import (
	"context"
	"database/sql"

	"travelapp/internal/domain"
	"travelapp/internal/domain/models"
)

type DestinationRepository struct {
	DB *sql.DB
}

const destinationColumns = `id, name, order_index, is_active`

func scanDestination(sc interface{ Scan(...any) error }) (models.Destination, error) {
	var d models.Destination
	var active int
	if err := sc.Scan(&d.ID, &d.Name, &d.OrderIndex, &active); err != nil {
		return d, err
	}
	d.IsActive = active == 1
	return d, nil
}

// ListActive returns every active destination ordered for display.
func (r DestinationRepository) ListActive(ctx context.Context) ([]models.Destination, error) {
	return r.list(ctx, `SELECT `+destinationColumns+` FROM destinations WHERE is_active = 1 ORDER BY order_index ASC, id ASC`)
}

// List returns all destinations including inactive ones (admin).
func (r DestinationRepository) List(ctx context.Context) ([]models.Destination, error) {
	return r.list(ctx, `SELECT `+destinationColumns+` FROM destinations ORDER BY order_index ASC, id ASC`)
}

func (r DestinationRepository) list(ctx context.Context, query string) ([]models.Destination, error) {
	db := dbOr(r.DB)
	if db == nil {
		return nil, errNoDB
	}
	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Destination{}
	for rows.Next() {
		d, err := scanDestination(rows)
		if err != nil {
			return out, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

func (r DestinationRepository) GetByID(ctx context.Context, id domain.ID) (models.Destination, error) {
	db := dbOr(r.DB)
	if db == nil {
		return models.Destination{}, errNoDB
	}
	row := db.QueryRowContext(ctx, `SELECT `+destinationColumns+` FROM destinations WHERE id = ? LIMIT 1`, id)
	d, err := scanDestination(row)
	if err != nil {
		return d, notFoundOr("destination", err)
	}
	return d, nil
}

func (r DestinationRepository) Create(ctx context.Context, d models.Destination) (domain.ID, error) {
	db := dbOr(r.DB)
	if db == nil {
		return 0, errNoDB
	}
	res, err := db.ExecContext(ctx, `
		INSERT INTO destinations (name, order_index, is_active)
		VALUES (?, ?, ?)
	`, d.Name, d.OrderIndex, boolToTiny(d.IsActive))
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	return domain.ID(id), err
}

func (r DestinationRepository) Update(ctx context.Context, d models.Destination) error {
	db := dbOr(r.DB)
	if db == nil {
		return errNoDB
	}
	res, err := db.ExecContext(ctx, `
		UPDATE destinations
		SET name = ?, order_index = ?, is_active = ?
		WHERE id = ?
	`, d.Name, d.OrderIndex, boolToTiny(d.IsActive), d.ID)
	if err != nil {
		return err
	}
	return requireAffected("destination", res)
}

// Deactivate soft-deletes a destination.
func (r DestinationRepository) Deactivate(ctx context.Context, id domain.ID) error {
	db := dbOr(r.DB)
	if db == nil {
		return errNoDB
	}
	res, err := db.ExecContext(ctx, `UPDATE destinations SET is_active = 0 WHERE id = ?`, id)
	if err != nil {
		return err
	}
	return requireAffected("destination", res)
}
