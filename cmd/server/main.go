package main

import (
	"freight-tariff-service/internal/api"
	"freight-tariff-service/internal/config"
	"freight-tariff-service/internal/domain"
	"freight-tariff-service/internal/services"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// main is the application composition root.
// It builds the tariff engine from the configured tariff and starts the HTTP server.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	gin.SetMode(cfg.GinMode)

	// Reference tables are fixed for the life of the process.
	tariff := domain.NovaXpressTariff().WithDefaultFuelPercent(cfg.FuelDefaultPercent)
	engine := services.NewTariffEngine(tariff)

	router := api.NewRouter(engine)

	log.Printf("Server listening addr=:%s tariff=%q fuel_default=%.2f%%", cfg.Port, tariff.Name(), cfg.FuelDefaultPercent)
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	log.Fatal(srv.ListenAndServe())
}
