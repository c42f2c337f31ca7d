package handlers

import (
	"context"
	"net/http"
	"time"

	intconfig "travelapp/internal/config"
	intdb "travelapp/internal/db"

	"github.com/gin-gonic/gin"
)

var requiredTables = []string{"destinations", "routes", "route_stops", "route_segments", "schedules", "vehicles", "seat_assignments"}

func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "backend golang berjalan"})
}

// GET /api/db-check
func (a API) DBCheck(c *gin.Context) {
	db := a.DB
	if db == nil {
		db = intconfig.DB
	}
	if db == nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "database belum terhubung"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "gagal ping database: " + err.Error()})
		return
	}

	missing := []string{}
	for _, t := range requiredTables {
		if !intdb.HasTable(ctx, db, t) {
			missing = append(missing, t)
		}
	}
	if len(missing) > 0 {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "tabel belum lengkap, jalankan migrasi", "missing_tables": missing})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "koneksi database OK", "tables": len(requiredTables)})
}
