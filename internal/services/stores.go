package services

import (
	"context"
	"time"

	"travelapp/internal/cache"
	"travelapp/internal/domain"
	"travelapp/internal/domain/models"
)

// The resolver and seat engine only read through these; the repositories
// package provides the MySQL implementations.

type DestinationLister interface {
	ListActive(ctx context.Context) ([]models.Destination, error)
}

type SegmentLister interface {
	ListAll(ctx context.Context) ([]models.Segment, error)
}

type RouteStore interface {
	ListActive(ctx context.Context) ([]models.Route, error)
	GetByID(ctx context.Context, id domain.ID) (models.Route, error)
}

type ScheduleStore interface {
	ListActiveByRoute(ctx context.Context, routeID domain.ID) ([]models.Schedule, error)
	GetByID(ctx context.Context, id domain.ID) (models.Schedule, error)
}

type VehicleGetter interface {
	GetByID(ctx context.Context, id domain.ID) (models.Vehicle, error)
}

type SeatAssignmentStore interface {
	ListByDeparture(ctx context.Context, scheduleID domain.ID, tripDate time.Time) ([]models.SeatAssignment, error)
	Reserve(ctx context.Context, scheduleID domain.ID, tripDate time.Time, seats []int, clientID string) error
	Release(ctx context.Context, scheduleID domain.ID, tripDate time.Time, seats []int) (int64, error)
}

// SnapshotCache is satisfied by *cache.ReferenceCache, including a nil one.
// Get and Set are keyed by the generation returned from Version; Invalidate
// starts a new one.
type SnapshotCache interface {
	Version(ctx context.Context) (int64, bool)
	Get(ctx context.Context, version int64) (cache.ReferenceSnapshot, bool)
	Set(ctx context.Context, version int64, snap cache.ReferenceSnapshot)
	Invalidate(ctx context.Context)
}
