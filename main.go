package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"travelapp/internal/cache"
	intconfig "travelapp/internal/config"
	router "travelapp/internal/http"

	"github.com/gin-gonic/gin"
)

func main() {
	env := intconfig.LoadEnv()
	if env.GinMode != "" {
		gin.SetMode(env.GinMode)
	}

	if env.JWTSecret == "" {
		log.Println("warning: JWT_SECRET kosong, semua endpoint operator akan ditolak")
	}

	db := intconfig.ConnectDB(env)
	defer intconfig.CloseDB()

	if env.DBAutoMigrate {
		if err := intconfig.RunMigrations(db); err != nil {
			log.Fatalf("Gagal menjalankan migrasi: %v", err)
		}
		log.Println("Migrasi database selesai")
	}

	// Reference cache is optional; searches fall back to the database.
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	refCache, err := cache.NewReferenceCache(ctx, env.RedisURL, env.ReferenceCacheTTL)
	cancel()
	if err != nil {
		log.Printf("warning: redis tidak tersedia, cache referensi dimatikan: %v", err)
		refCache = nil
	}
	if refCache != nil {
		defer refCache.Close()
	}

	r := router.NewRouter(env, router.Deps{DB: db, Cache: refCache})

	srv := &http.Server{
		Addr:              env.AppAddr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       20 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Printf("Server berjalan di http://localhost%s", env.AppAddr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Gagal menjalankan server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("Mematikan server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Shutdown server gagal: %v", err)
	}

	log.Println("Server berhenti dengan aman.")
}
