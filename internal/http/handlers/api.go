package handlers

import (
	"database/sql"

	"travelapp/internal/cache"
	"travelapp/internal/http/middleware"
	"travelapp/internal/repositories"
	"travelapp/internal/services"

	"github.com/gin-gonic/gin"
)

// API holds the shared dependencies of every handler. A nil DB falls back
// to the global connection from config.ConnectDB.
type API struct {
	DB    *sql.DB
	Cache *cache.ReferenceCache
}

func (a API) snapshotCache() services.SnapshotCache {
	if a.Cache == nil {
		return nil
	}
	return a.Cache
}

func (a API) loader(c *gin.Context) services.ReferenceLoader {
	return services.ReferenceLoader{
		Destinations: repositories.DestinationRepository{DB: a.DB},
		Segments:     repositories.SegmentRepository{DB: a.DB},
		Cache:        a.snapshotCache(),
		RequestID:    middleware.GetRequestID(c),
	}
}

func (a API) availability(c *gin.Context) services.AvailabilityService {
	return services.AvailabilityService{
		Loader:    a.loader(c),
		Routes:    repositories.RouteRepository{DB: a.DB},
		Schedules: repositories.ScheduleRepository{DB: a.DB},
		RequestID: middleware.GetRequestID(c),
	}
}

func (a API) seats(c *gin.Context) services.SeatService {
	return services.SeatService{
		Schedules:   repositories.ScheduleRepository{DB: a.DB},
		Routes:      repositories.RouteRepository{DB: a.DB},
		Vehicles:    repositories.VehicleRepository{DB: a.DB},
		Assignments: repositories.SeatAssignmentRepository{DB: a.DB},
		RequestID:   middleware.GetRequestID(c),
	}
}

func (a API) reference(c *gin.Context) services.ReferenceService {
	return services.ReferenceService{
		Destinations: repositories.DestinationRepository{DB: a.DB},
		Routes:       repositories.RouteRepository{DB: a.DB},
		Segments:     repositories.SegmentRepository{DB: a.DB},
		Schedules:    repositories.ScheduleRepository{DB: a.DB},
		Vehicles:     repositories.VehicleRepository{DB: a.DB},
		Cache:        a.snapshotCache(),
		RequestID:    middleware.GetRequestID(c),
	}
}
