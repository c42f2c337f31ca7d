package services

import (
	"context"
	"errors"
	"sync"
	"time"

	"travelapp/internal/cache"
	"travelapp/internal/domain"
	"travelapp/internal/domain/models"
)

var errStore = errors.New("store down")

type fakeDestinations struct {
	list   []models.Destination
	err    error
	hits   int
	onList func()
}

func (f *fakeDestinations) ListActive(ctx context.Context) ([]models.Destination, error) {
	f.hits++
	list := f.list
	if f.onList != nil {
		f.onList()
	}
	return list, f.err
}

type fakeSegments struct {
	list []models.Segment
	err  error
}

func (f *fakeSegments) ListAll(ctx context.Context) ([]models.Segment, error) {
	return f.list, f.err
}

type fakeRoutes struct {
	list []models.Route
	err  error
}

func (f *fakeRoutes) ListActive(ctx context.Context) ([]models.Route, error) {
	return f.list, f.err
}

func (f *fakeRoutes) GetByID(ctx context.Context, id domain.ID) (models.Route, error) {
	if f.err != nil {
		return models.Route{}, f.err
	}
	for _, r := range f.list {
		if r.ID == id {
			return r, nil
		}
	}
	return models.Route{}, domain.NotFoundError{Resource: "route"}
}

type fakeSchedules struct {
	byRoute map[domain.ID][]models.Schedule
	err     error
}

func (f *fakeSchedules) ListActiveByRoute(ctx context.Context, routeID domain.ID) ([]models.Schedule, error) {
	return f.byRoute[routeID], f.err
}

func (f *fakeSchedules) GetByID(ctx context.Context, id domain.ID) (models.Schedule, error) {
	if f.err != nil {
		return models.Schedule{}, f.err
	}
	for _, list := range f.byRoute {
		for _, s := range list {
			if s.ID == id {
				return s, nil
			}
		}
	}
	return models.Schedule{}, domain.NotFoundError{Resource: "schedule"}
}

type fakeVehicles map[domain.ID]models.Vehicle

func (f fakeVehicles) GetByID(ctx context.Context, id domain.ID) (models.Vehicle, error) {
	v, ok := f[id]
	if !ok {
		return models.Vehicle{}, domain.NotFoundError{Resource: "vehicle"}
	}
	return v, nil
}

type reserveCall struct {
	scheduleID domain.ID
	tripDate   time.Time
	seats      []int
	clientID   string
}

type fakeAssignments struct {
	list       []models.SeatAssignment
	listErr    error
	reserveErr error
	reserved   []reserveCall
	released   int64
}

func (f *fakeAssignments) ListByDeparture(ctx context.Context, scheduleID domain.ID, tripDate time.Time) ([]models.SeatAssignment, error) {
	return f.list, f.listErr
}

func (f *fakeAssignments) Reserve(ctx context.Context, scheduleID domain.ID, tripDate time.Time, seats []int, clientID string) error {
	if f.reserveErr != nil {
		return f.reserveErr
	}
	f.reserved = append(f.reserved, reserveCall{scheduleID, tripDate, seats, clientID})
	return nil
}

func (f *fakeAssignments) Release(ctx context.Context, scheduleID domain.ID, tripDate time.Time, seats []int) (int64, error) {
	return f.released, nil
}

type memoryCache struct {
	mu      sync.Mutex
	version int64
	snaps   map[int64]cache.ReferenceSnapshot
}

func (m *memoryCache) Version(ctx context.Context) (int64, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.version, true
}

func (m *memoryCache) Get(ctx context.Context, version int64) (cache.ReferenceSnapshot, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	snap, ok := m.snaps[version]
	return snap, ok
}

func (m *memoryCache) Set(ctx context.Context, version int64, snap cache.ReferenceSnapshot) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.snaps == nil {
		m.snaps = map[int64]cache.ReferenceSnapshot{}
	}
	m.snaps[version] = snap
}

func (m *memoryCache) Invalidate(ctx context.Context) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.version++
}

func ids(v ...int64) []domain.ID {
	out := make([]domain.ID, len(v))
	for i, x := range v {
		out[i] = domain.ID(x)
	}
	return out
}

func idPtr(v int64) *domain.ID {
	id := domain.ID(v)
	return &id
}

func date(s string) time.Time {
	t, err := time.ParseInLocation("2006-01-02", s, time.Local)
	if err != nil {
		panic(err)
	}
	return t
}
