package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Runtime settings for the tariff service and CLI.
type Config struct {
	Port               string
	GinMode            string
	FuelDefaultPercent float64
}

// Load reads an optional .env file and then the process environment.
// A missing .env is not an error; malformed numeric values are.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	fuel, err := GetFloat("FUEL_DEFAULT_PERCENT", 15)
	if err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}
	if fuel < 0 {
		return Config{}, fmt.Errorf("load config: FUEL_DEFAULT_PERCENT must not be negative, got %v", fuel)
	}

	return Config{
		Port:               Get("PORT", "8080"),
		GinMode:            Get("GIN_MODE", "release"),
		FuelDefaultPercent: fuel,
	}, nil
}

// Get returns the trimmed value of key, or fallback when unset or blank.
func Get(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func GetFloat(key string, fallback float64) (float64, error) {
	v := Get(key, "")
	if v == "" {
		return fallback, nil
	}

	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("%s: parse %q as number: %w", key, v, err)
	}
	return f, nil
}
