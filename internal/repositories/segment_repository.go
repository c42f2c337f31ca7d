package repositories

import (
	"context"
	"database/sql"

	"travelapp/internal/domain"
	"travelapp/internal/domain/models"
)

// SegmentRepository stores priced legs in route_segments.
type SegmentRepository struct {
	DB *sql.DB
}

const segmentColumns = `id, route_id, start_destination_id, end_destination_id, adult_price, child_price, duration_minutes, distance_km`

func scanSegment(sc interface{ Scan(...any) error }) (models.Segment, error) {
	var s models.Segment
	var dur sql.NullInt64
	var dist sql.NullFloat64
	if err := sc.Scan(&s.ID, &s.RouteID, &s.StartDestinationID, &s.EndDestinationID, &s.AdultPrice, &s.ChildPrice, &dur, &dist); err != nil {
		return s, err
	}
	if dur.Valid {
		v := int(dur.Int64)
		s.DurationMinutes = &v
	}
	if dist.Valid {
		v := dist.Float64
		s.DistanceKm = &v
	}
	return s, nil
}

// ListAll returns every segment, unfiltered.
func (r SegmentRepository) ListAll(ctx context.Context) ([]models.Segment, error) {
	return r.list(ctx, `SELECT `+segmentColumns+` FROM route_segments ORDER BY id ASC`)
}

func (r SegmentRepository) ListByRoute(ctx context.Context, routeID domain.ID) ([]models.Segment, error) {
	return r.list(ctx, `SELECT `+segmentColumns+` FROM route_segments WHERE route_id = ? ORDER BY id ASC`, routeID)
}

func (r SegmentRepository) list(ctx context.Context, query string, args ...any) ([]models.Segment, error) {
	db := dbOr(r.DB)
	if db == nil {
		return nil, errNoDB
	}
	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Segment{}
	for rows.Next() {
		s, err := scanSegment(rows)
		if err != nil {
			return out, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func (r SegmentRepository) GetByID(ctx context.Context, id domain.ID) (models.Segment, error) {
	db := dbOr(r.DB)
	if db == nil {
		return models.Segment{}, errNoDB
	}
	s, err := scanSegment(db.QueryRowContext(ctx, `SELECT `+segmentColumns+` FROM route_segments WHERE id = ? LIMIT 1`, id))
	if err != nil {
		return s, notFoundOr("segment", err)
	}
	return s, nil
}

func intPtrArg(v *int) any {
	if v == nil {
		return nil
	}
	return *v
}

func floatPtrArg(v *float64) any {
	if v == nil {
		return nil
	}
	return *v
}

// Create inserts a segment. A second segment for the same (route, start,
// end) triple is a ConflictError.
func (r SegmentRepository) Create(ctx context.Context, s models.Segment) (domain.ID, error) {
	db := dbOr(r.DB)
	if db == nil {
		return 0, errNoDB
	}
	res, err := db.ExecContext(ctx, `
		INSERT INTO route_segments
		(route_id, start_destination_id, end_destination_id, adult_price, child_price, duration_minutes, distance_km)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, s.RouteID, s.StartDestinationID, s.EndDestinationID, s.AdultPrice, s.ChildPrice, intPtrArg(s.DurationMinutes), floatPtrArg(s.DistanceKm))
	if err != nil {
		return 0, duplicateAs("segment", "tarif untuk pasangan halte ini sudah ada", err)
	}
	id, err := res.LastInsertId()
	return domain.ID(id), err
}

func (r SegmentRepository) Update(ctx context.Context, s models.Segment) error {
	db := dbOr(r.DB)
	if db == nil {
		return errNoDB
	}
	res, err := db.ExecContext(ctx, `
		UPDATE route_segments
		SET route_id = ?, start_destination_id = ?, end_destination_id = ?,
		    adult_price = ?, child_price = ?, duration_minutes = ?, distance_km = ?
		WHERE id = ?
	`, s.RouteID, s.StartDestinationID, s.EndDestinationID, s.AdultPrice, s.ChildPrice, intPtrArg(s.DurationMinutes), floatPtrArg(s.DistanceKm), s.ID)
	if err != nil {
		return duplicateAs("segment", "tarif untuk pasangan halte ini sudah ada", err)
	}
	return requireAffected("segment", res)
}

// Delete removes a segment. Segments carry no history so this is a hard delete.
func (r SegmentRepository) Delete(ctx context.Context, id domain.ID) error {
	db := dbOr(r.DB)
	if db == nil {
		return errNoDB
	}
	res, err := db.ExecContext(ctx, `DELETE FROM route_segments WHERE id = ?`, id)
	if err != nil {
		return err
	}
	return requireAffected("segment", res)
}
