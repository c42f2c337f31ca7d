package services

import (
	"context"
	"errors"

	"travelapp/internal/cache"
	"travelapp/internal/domain"
	"travelapp/internal/domain/models"
	"travelapp/internal/utils"

	"golang.org/x/sync/errgroup"
)

// ReferenceData is the destination graph and fare table used by one search.
type ReferenceData struct {
	DestinationNames map[domain.ID]string
	Segments         map[models.SegmentKey]models.Segment
}

// ReferenceLoader reads active destinations and all segments. Both reads
// run concurrently and either failure aborts the load; there is no retry.
type ReferenceLoader struct {
	Destinations DestinationLister
	Segments     SegmentLister
	Cache        SnapshotCache
	RequestID    string
}

func (l ReferenceLoader) Load(ctx context.Context) (ReferenceData, error) {
	// the generation is read before the database so a write that lands
	// mid-load leaves this snapshot under a retired key
	var version int64
	cached := false
	if l.Cache != nil {
		version, cached = l.Cache.Version(ctx)
		if cached {
			if snap, ok := l.Cache.Get(ctx, version); ok {
				return buildReferenceData(snap), nil
			}
		}
	}

	var snap cache.ReferenceSnapshot
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		list, err := l.Destinations.ListActive(gctx)
		if err != nil {
			return domain.FetchError{Source: "destinations", Err: err}
		}
		snap.Destinations = list
		return nil
	})
	g.Go(func() error {
		list, err := l.Segments.ListAll(gctx)
		if err != nil {
			return domain.FetchError{Source: "segments", Err: err}
		}
		snap.Segments = list
		return nil
	})
	if err := g.Wait(); err != nil {
		utils.LogFields(l.RequestID, "reference", "load_error", "error", err, "cause", errors.Unwrap(err))
		return ReferenceData{}, err
	}

	if cached {
		l.Cache.Set(ctx, version, snap)
	}
	return buildReferenceData(snap), nil
}

func buildReferenceData(snap cache.ReferenceSnapshot) ReferenceData {
	out := ReferenceData{
		DestinationNames: make(map[domain.ID]string, len(snap.Destinations)),
		Segments:         make(map[models.SegmentKey]models.Segment, len(snap.Segments)),
	}
	for _, d := range snap.Destinations {
		out.DestinationNames[d.ID] = d.Name
	}
	for _, s := range snap.Segments {
		out.Segments[s.Key()] = s
	}
	return out
}
