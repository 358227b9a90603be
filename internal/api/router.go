package api

import (
	"freight-tariff-service/internal/api/handlers"
	"freight-tariff-service/internal/ports"
	"net/http"
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete services).
func NewRouter(calc ports.PriceCalculator) http.Handler {
	registerJSONFieldNames()

	r := gin.New()
	r.Use(requestIDMiddleware(), loggingMiddleware(), gin.Recovery())
	r.HandleMethodNotAllowed = true
	r.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, map[string]string{"error": "method not allowed"})
	})
	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, map[string]string{"error": "not found"})
	})

	quoteHandler := &handlers.QuoteHandler{Calculator: calc}
	tariffHandler := &handlers.TariffHandler{Calculator: calc}
	scenarioHandler := &handlers.ScenarioHandler{Calculator: calc}

	r.GET("/health", handlers.Health)
	r.GET("/tariff", tariffHandler.Get)
	r.POST("/quotes", quoteHandler.Create)
	r.GET("/scenarios", scenarioHandler.List)

	return r
}

// Report validation failures using JSON field names instead of Go field names.
var fieldNamesOnce sync.Once

// registerJSONFieldNames makes validation errors report json field names.
// gin's validator is process-wide, so it is configured once.
func registerJSONFieldNames() {
	fieldNamesOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
			if name == "-" || name == "" {
				return f.Name
			}
			return name
		})
	})
}
