package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/clinicore/booking-api/internal/config"
	dbpkg "github.com/clinicore/booking-api/internal/db"
	"github.com/clinicore/booking-api/internal/logging"
	"github.com/clinicore/booking-api/internal/middleware"
	"github.com/clinicore/booking-api/internal/routes"
	"github.com/clinicore/booking-api/internal/seed"
)

func main() {

	cfg := config.Load()
	logger := logging.Setup(cfg.Environment)
	db := dbpkg.NewDB(cfg)

	if cfg.SeedData {
		seed.Run(db, logger)
	}

	r := gin.Default()

	r.Use(middleware.RequestID())
	r.Use(middleware.CORSMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, cfg, logger)

	logger.Info().Str("addr", cfg.Addr()).Msg("server running")
	if err := r.Run(cfg.Addr()); err != nil {
		logger.Fatal().Err(err).Msg("failed to start server")
	}
}
