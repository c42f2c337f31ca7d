package services

import (
	"context"

	"travelapp/internal/domain"
	"travelapp/internal/domain/models"
	"travelapp/internal/repositories"
	"travelapp/internal/utils"
)

// ReferenceService is the operator write path for destinations, routes,
// segments, schedules and vehicles.
type ReferenceService struct {
	Destinations repositories.DestinationRepository
	Routes       repositories.RouteRepository
	Segments     repositories.SegmentRepository
	Schedules    repositories.ScheduleRepository
	Vehicles     repositories.VehicleRepository
	Cache        SnapshotCache
	RequestID    string
}

// storeError passes typed domain errors through and hides the rest.
func storeError(err error) error {
	if err == nil {
		return nil
	}
	if domain.IsNotFound(err) || domain.IsConflict(err) || domain.IsValidation(err) {
		return err
	}
	return domain.InternalError{Msg: "gagal menyimpan data", Err: err}
}

func (s ReferenceService) changed(ctx context.Context, resource, action string, id domain.ID) {
	if s.Cache != nil {
		s.Cache.Invalidate(ctx)
	}
	utils.LogFields(s.RequestID, "reference", action, "resource", resource, "id", id)
}

// ---- destinations ----

func (s ReferenceService) ListDestinations(ctx context.Context) ([]models.Destination, error) {
	list, err := s.Destinations.List(ctx)
	if err != nil {
		return nil, domain.FetchError{Source: "destinations", Err: err}
	}
	return list, nil
}

func (s ReferenceService) SaveDestination(ctx context.Context, d models.Destination) (domain.ID, error) {
	d, err := ValidateDestination(d)
	if err != nil {
		return 0, err
	}
	if d.ID.Valid() {
		err = s.Destinations.Update(ctx, d)
	} else {
		d.ID, err = s.Destinations.Create(ctx, d)
	}
	if err != nil {
		return 0, storeError(err)
	}
	s.changed(ctx, "destination", "save", d.ID)
	return d.ID, nil
}

func (s ReferenceService) DeleteDestination(ctx context.Context, id domain.ID) error {
	if err := s.Destinations.Deactivate(ctx, id); err != nil {
		return storeError(err)
	}
	s.changed(ctx, "destination", "deactivate", id)
	return nil
}

// ---- routes ----

func (s ReferenceService) ListRoutes(ctx context.Context) ([]models.Route, error) {
	list, err := s.Routes.List(ctx)
	if err != nil {
		return nil, domain.FetchError{Source: "routes", Err: err}
	}
	return list, nil
}

func (s ReferenceService) SaveRoute(ctx context.Context, rt models.Route) (domain.ID, error) {
	dests, err := s.Destinations.ListActive(ctx)
	if err != nil {
		return 0, domain.FetchError{Source: "destinations", Err: err}
	}
	known := make(map[domain.ID]bool, len(dests))
	for _, d := range dests {
		known[d.ID] = true
	}
	rt, err = ValidateRoute(rt, known)
	if err != nil {
		return 0, err
	}
	if rt.VehicleID != nil {
		if _, err := s.Vehicles.GetByID(ctx, *rt.VehicleID); err != nil {
			if domain.IsNotFound(err) {
				return 0, domain.ValidationError{Field: "vehicleId", Msg: "kendaraan tidak ditemukan"}
			}
			return 0, domain.FetchError{Source: "vehicle", Err: err}
		}
	}

	if rt.ID.Valid() {
		err = s.Routes.Update(ctx, rt)
	} else {
		rt.ID, err = s.Routes.Create(ctx, rt)
	}
	if err != nil {
		return 0, storeError(err)
	}
	s.changed(ctx, "route", "save", rt.ID)
	return rt.ID, nil
}

func (s ReferenceService) DeleteRoute(ctx context.Context, id domain.ID) error {
	if err := s.Routes.Deactivate(ctx, id); err != nil {
		return storeError(err)
	}
	s.changed(ctx, "route", "deactivate", id)
	return nil
}

// ---- segments ----

func (s ReferenceService) ListSegments(ctx context.Context, routeID domain.ID) ([]models.Segment, error) {
	var (
		list []models.Segment
		err  error
	)
	if routeID.Valid() {
		list, err = s.Segments.ListByRoute(ctx, routeID)
	} else {
		list, err = s.Segments.ListAll(ctx)
	}
	if err != nil {
		return nil, domain.FetchError{Source: "segments", Err: err}
	}
	return list, nil
}

func (s ReferenceService) SaveSegment(ctx context.Context, seg models.Segment) (domain.ID, error) {
	rt, err := s.Routes.GetByID(ctx, seg.RouteID)
	if err != nil {
		if domain.IsNotFound(err) {
			return 0, domain.ValidationError{Field: "routeId", Msg: "rute tidak ditemukan"}
		}
		return 0, domain.FetchError{Source: "route", Err: err}
	}
	if err := ValidateSegment(seg, rt); err != nil {
		return 0, err
	}
	if seg.ID.Valid() {
		err = s.Segments.Update(ctx, seg)
	} else {
		seg.ID, err = s.Segments.Create(ctx, seg)
	}
	if err != nil {
		return 0, storeError(err)
	}
	s.changed(ctx, "segment", "save", seg.ID)
	return seg.ID, nil
}

func (s ReferenceService) DeleteSegment(ctx context.Context, id domain.ID) error {
	if err := s.Segments.Delete(ctx, id); err != nil {
		return storeError(err)
	}
	s.changed(ctx, "segment", "delete", id)
	return nil
}

// ---- schedules ----

func (s ReferenceService) ListSchedules(ctx context.Context, routeID domain.ID) ([]models.Schedule, error) {
	list, err := s.Schedules.List(ctx, routeID)
	if err != nil {
		return nil, domain.FetchError{Source: "schedules", Err: err}
	}
	return list, nil
}

func (s ReferenceService) SaveSchedule(ctx context.Context, sc models.Schedule) (domain.ID, error) {
	sc, err := NormalizeSchedule(sc)
	if err != nil {
		return 0, err
	}
	if _, err := s.Routes.GetByID(ctx, sc.RouteID); err != nil {
		if domain.IsNotFound(err) {
			return 0, domain.ValidationError{Field: "routeId", Msg: "rute tidak ditemukan"}
		}
		return 0, domain.FetchError{Source: "route", Err: err}
	}
	if sc.ID.Valid() {
		err = s.Schedules.Update(ctx, sc)
	} else {
		sc.ID, err = s.Schedules.Create(ctx, sc)
	}
	if err != nil {
		return 0, storeError(err)
	}
	s.changed(ctx, "schedule", "save", sc.ID)
	return sc.ID, nil
}

func (s ReferenceService) DeleteSchedule(ctx context.Context, id domain.ID) error {
	if err := s.Schedules.Deactivate(ctx, id); err != nil {
		return storeError(err)
	}
	s.changed(ctx, "schedule", "deactivate", id)
	return nil
}

// ---- vehicles ----

func (s ReferenceService) ListVehicles(ctx context.Context) ([]models.Vehicle, error) {
	list, err := s.Vehicles.List(ctx)
	if err != nil {
		return nil, domain.FetchError{Source: "vehicles", Err: err}
	}
	return list, nil
}

// SaveVehicle returns the stored id and a data-quality warning, if any.
func (s ReferenceService) SaveVehicle(ctx context.Context, v models.Vehicle) (domain.ID, string, error) {
	v, warning, err := ValidateVehicle(v)
	if err != nil {
		return 0, "", err
	}
	if v.ID.Valid() {
		err = s.Vehicles.Update(ctx, v)
	} else {
		v.ID, err = s.Vehicles.Create(ctx, v)
	}
	if err != nil {
		return 0, "", storeError(err)
	}
	if warning != "" {
		utils.LogFields(s.RequestID, "reference", "vehicle_layout_warning", "id", v.ID, "warning", warning)
	}
	s.changed(ctx, "vehicle", "save", v.ID)
	return v.ID, warning, nil
}

func (s ReferenceService) DeleteVehicle(ctx context.Context, id domain.ID) error {
	if err := s.Vehicles.Deactivate(ctx, id); err != nil {
		return storeError(err)
	}
	s.changed(ctx, "vehicle", "deactivate", id)
	return nil
}
