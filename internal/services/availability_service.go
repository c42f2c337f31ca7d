package services

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"travelapp/internal/domain"
	"travelapp/internal/domain/models"
	"travelapp/internal/utils"
)

// AvailabilityService resolves (origin, destination, date) into priced,
// timed departures.
type AvailabilityService struct {
	Loader    ReferenceLoader
	Routes    RouteStore
	Schedules ScheduleStore
	RequestID string
}

// ParseSearchQuery validates raw request values before any store access.
func ParseSearchQuery(origin, destination, date string) (models.SearchQuery, error) {
	var q models.SearchQuery

	o, err := parseID(origin)
	if err != nil {
		return q, domain.ValidationError{Field: "origin", Msg: "asal wajib diisi dengan id yang valid", Err: err}
	}
	d, err := parseID(destination)
	if err != nil {
		return q, domain.ValidationError{Field: "destination", Msg: "tujuan wajib diisi dengan id yang valid", Err: err}
	}
	if strings.TrimSpace(date) == "" {
		return q, domain.ValidationError{Field: "date", Msg: "tanggal wajib diisi"}
	}
	t, err := utils.ParseDate(date)
	if err != nil {
		return q, domain.ValidationError{Field: "date", Msg: "format tanggal tidak valid (YYYY-MM-DD)", Err: err}
	}

	q = models.SearchQuery{OriginID: o, DestinationID: d, Date: t}
	return q, validateSearchQuery(q)
}

func parseID(raw string) (domain.ID, error) {
	n, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return 0, err
	}
	id := domain.ID(n)
	if !id.Valid() {
		return 0, fmt.Errorf("id %d tidak valid", n)
	}
	return id, nil
}

func validateSearchQuery(q models.SearchQuery) error {
	if !q.OriginID.Valid() {
		return domain.ValidationError{Field: "origin", Msg: "asal wajib diisi"}
	}
	if !q.DestinationID.Valid() {
		return domain.ValidationError{Field: "destination", Msg: "tujuan wajib diisi"}
	}
	if q.OriginID == q.DestinationID {
		return domain.ValidationError{Field: "destination", Msg: "asal dan tujuan tidak boleh sama"}
	}
	if q.Date.IsZero() {
		return domain.ValidationError{Field: "date", Msg: "tanggal wajib diisi"}
	}
	return nil
}

// Search runs the three stage pipeline: reference data, route filtering,
// schedule filtering. An empty slice with a nil error means no service on
// that date. On a fetch failure the slice is empty and the error is a
// domain.FetchError.
func (s AvailabilityService) Search(ctx context.Context, q models.SearchQuery) ([]models.SearchResult, error) {
	results := []models.SearchResult{}
	if err := validateSearchQuery(q); err != nil {
		return results, err
	}

	ref, err := s.Loader.Load(ctx)
	if err != nil {
		return results, err
	}
	originName, ok := ref.DestinationNames[q.OriginID]
	if !ok {
		return results, domain.ValidationError{Field: "origin", Msg: "asal tidak dikenal"}
	}
	destinationName, ok := ref.DestinationNames[q.DestinationID]
	if !ok {
		return results, domain.ValidationError{Field: "destination", Msg: "tujuan tidak dikenal"}
	}

	routes, err := s.Routes.ListActive(ctx)
	if err != nil {
		return results, domain.FetchError{Source: "routes", Err: err}
	}

	type candidate struct {
		route   models.Route
		segment models.Segment
	}
	candidates := []candidate{}
	for _, rt := range routes {
		// direction first: a segment stored against the serving order never applies
		if !rt.Serves(q.OriginID, q.DestinationID) {
			continue
		}
		seg, ok := ref.Segments[models.SegmentKey{RouteID: rt.ID, Start: q.OriginID, End: q.DestinationID}]
		if !ok {
			continue
		}
		candidates = append(candidates, candidate{route: rt, segment: seg})
	}

	for _, c := range candidates {
		schedules, err := s.Schedules.ListActiveByRoute(ctx, c.route.ID)
		if err != nil {
			return []models.SearchResult{}, domain.FetchError{Source: "schedules", Err: err}
		}
		for _, sc := range schedules {
			if !sc.IsActive || !sc.Covers(q.Date) {
				continue
			}
			results = append(results, models.SearchResult{
				RouteID:         c.route.ID,
				RouteName:       c.route.Name,
				DepartureTime:   sc.DepartureTime,
				AdultPrice:      c.segment.AdultPrice,
				ChildPrice:      c.segment.ChildPrice,
				DurationMinutes: c.segment.DurationMinutes,
				DistanceKm:      c.segment.DistanceKm,
				ScheduleID:      sc.ID,
				VehicleID:       c.route.VehicleID,
				OriginName:      originName,
				DestinationName: destinationName,
			})
		}
	}

	// "HH:mm" is zero padded on the way in, so string order is time order
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].DepartureTime < results[j].DepartureTime
	})

	utils.LogFields(s.RequestID, "search", "resolve",
		"origin", q.OriginID, "destination", q.DestinationID, "date", utils.FormatDate(q.Date),
		"routes", len(routes), "candidates", len(candidates), "results", len(results))
	return results, nil
}
