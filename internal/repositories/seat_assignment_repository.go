package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	intdb "travelapp/internal/db"
	"travelapp/internal/domain"
	"travelapp/internal/domain/models"
	"travelapp/internal/utils"
)

// SeatAssignmentRepository keys occupancy by (schedule_id, trip_date, seat_number).
type SeatAssignmentRepository struct {
	DB *sql.DB
}

// ListByDeparture returns assignment rows of one departure of a schedule.
func (r SeatAssignmentRepository) ListByDeparture(ctx context.Context, scheduleID domain.ID, tripDate time.Time) ([]models.SeatAssignment, error) {
	db := dbOr(r.DB)
	if db == nil {
		return nil, errNoDB
	}
	rows, err := db.QueryContext(ctx, `
		SELECT id, schedule_id, trip_date, seat_number, status, client_id
		FROM seat_assignments
		WHERE schedule_id = ?
		  AND trip_date = ?
		ORDER BY seat_number ASC
	`, scheduleID, utils.FormatDate(tripDate))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.SeatAssignment{}
	for rows.Next() {
		var a models.SeatAssignment
		var status string
		var client sql.NullString
		if err := rows.Scan(&a.ID, &a.ScheduleID, &a.TripDate, &a.SeatNumber, &status, &client); err != nil {
			return out, err
		}
		a.Status = models.SeatStatus(strings.ToLower(strings.TrimSpace(status)))
		if client.Valid {
			c := client.String
			a.ClientID = &c
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

// Reserve marks every seat as booked for clientID, or none of them.
//
// Each seat is claimed with a conditional UPDATE on status='available'; when
// no row exists it is inserted, and the unique key on
// (schedule_id, trip_date, seat_number) rejects a concurrent claim.
func (r SeatAssignmentRepository) Reserve(ctx context.Context, scheduleID domain.ID, tripDate time.Time, seats []int, clientID string) error {
	db := dbOr(r.DB)
	if db == nil {
		return errNoDB
	}
	date := utils.FormatDate(tripDate)

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, seat := range seats {
		res, err := tx.ExecContext(ctx, `
			UPDATE seat_assignments
			SET status = 'booked', client_id = ?
			WHERE schedule_id = ?
			  AND trip_date = ?
			  AND seat_number = ?
			  AND status = 'available'
		`, clientID, scheduleID, date, seat)
		if err != nil {
			return err
		}
		if n, err := res.RowsAffected(); err != nil {
			return err
		} else if n == 1 {
			continue
		}

		_, err = tx.ExecContext(ctx, `
			INSERT INTO seat_assignments (schedule_id, trip_date, seat_number, status, client_id)
			VALUES (?, ?, ?, 'booked', ?)
		`, scheduleID, date, seat, clientID)
		if err != nil {
			if intdb.IsDuplicateKey(err) {
				return domain.ConflictError{
					Resource: "seat",
					Msg:      fmt.Sprintf("kursi %d sudah dibooking, silakan pilih kursi lain", seat),
					Err:      err,
				}
			}
			return err
		}
	}
	return tx.Commit()
}

// Release returns booked seats to available and reports how many changed.
func (r SeatAssignmentRepository) Release(ctx context.Context, scheduleID domain.ID, tripDate time.Time, seats []int) (int64, error) {
	db := dbOr(r.DB)
	if db == nil {
		return 0, errNoDB
	}
	if len(seats) == 0 {
		return 0, nil
	}
	args := []any{scheduleID, utils.FormatDate(tripDate)}
	for _, s := range seats {
		args = append(args, s)
	}
	res, err := db.ExecContext(ctx, `
		UPDATE seat_assignments
		SET status = 'available', client_id = NULL
		WHERE schedule_id = ?
		  AND trip_date = ?
		  AND seat_number IN (`+placeholders(len(seats))+`)
		  AND status = 'booked'
	`, args...)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
