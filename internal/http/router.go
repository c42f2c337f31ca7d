package api

import (
	"database/sql"
	"log"
	stdhttp "net/http"

	"travelapp/internal/cache"
	intconfig "travelapp/internal/config"
	h "travelapp/internal/http/handlers"
	"travelapp/internal/http/middleware"

	"github.com/gin-gonic/gin"
)

// Deps are the runtime resources shared by all handlers.
type Deps struct {
	DB    *sql.DB
	Cache *cache.ReferenceCache
}

var operatorRoles = []string{"operator", "admin"}

func NewRouter(env intconfig.Env, deps Deps) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(), gin.Recovery(), middleware.CORS(env.CORSAllowedOrigins))

	if err := r.SetTrustedProxies(nil); err != nil {
		log.Printf("warning: failed to set trusted proxies: %v", err)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"error":  "route tidak ditemukan",
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
	})

	a := h.API{DB: deps.DB, Cache: deps.Cache}
	operator := []gin.HandlerFunc{middleware.OperatorAuth([]byte(env.JWTSecret)), middleware.RequireRoles(operatorRoles...)}

	api := r.Group("/api")
	{
		api.GET("/health", h.Health)
		api.GET("/db-check", a.DBCheck)

		// Availability
		api.GET("/destinations", a.Destinations)
		api.GET("/search", a.Search)

		// Seats of one departure (schedule + date)
		schedules := api.Group("/schedules/:id")
		schedules.GET("/seats", a.GetSeats)
		schedules.POST("/seats/selection", a.SelectSeat)

		operatorSchedules := api.Group("/schedules/:id", operator...)
		operatorSchedules.POST("/seats/reserve", a.ReserveSeats)
		operatorSchedules.POST("/seats/release", a.ReleaseSeats)
		operatorSchedules.GET("/manifest.pdf", a.SeatManifest)

		// Reference data administration
		admin := api.Group("/admin", operator...)
		mountCRUD(admin.Group("/destinations"), a.AdminListDestinations, a.AdminSaveDestination, a.AdminDeleteDestination)
		mountCRUD(admin.Group("/routes"), a.AdminListRoutes, a.AdminSaveRoute, a.AdminDeleteRoute)
		mountCRUD(admin.Group("/segments"), a.AdminListSegments, a.AdminSaveSegment, a.AdminDeleteSegment)
		mountCRUD(admin.Group("/schedules"), a.AdminListSchedules, a.AdminSaveSchedule, a.AdminDeleteSchedule)
		mountCRUD(admin.Group("/vehicles"), a.AdminListVehicles, a.AdminSaveVehicle, a.AdminDeleteVehicle)
	}

	return r
}

func mountCRUD(g *gin.RouterGroup, list, save, del gin.HandlerFunc) {
	g.GET("", list)
	g.POST("", save)
	g.PUT("/:id", save)
	g.DELETE("/:id", del)
}
