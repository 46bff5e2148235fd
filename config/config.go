package config

import (
	"log"
	"os"
	"strconv"
	"sync"
	"time"

	"github.com/joho/godotenv"
)

var loadOnce sync.Once

// Config returns the value of key from the environment, loading .env on first use.
func Config(key string) string {
	loadOnce.Do(func() {
		if err := godotenv.Load(); err != nil {
			log.Println("no .env file found, using process environment")
		}
	})
	return os.Getenv(key)
}

func ConfigDefault(key, fallback string) string {
	if v := Config(key); v != "" {
		return v
	}
	return fallback
}

func ConfigFloat(key string, fallback float64) float64 {
	v, err := strconv.ParseFloat(Config(key), 64)
	if err != nil {
		return fallback
	}
	return v
}

func ConfigInt(key string, fallback int) int {
	v, err := strconv.Atoi(Config(key))
	if err != nil {
		return fallback
	}
	return v
}

// ShopLocation is the time zone receipt days are counted in. Defaults to Europe/Brussels.
func ShopLocation() *time.Location {
	name := ConfigDefault("SHOP_TIMEZONE", "Europe/Brussels")
	loc, err := time.LoadLocation(name)
	if err != nil {
		log.Printf("unknown SHOP_TIMEZONE %q, falling back to local time: %v", name, err)
		return time.Local
	}
	return loc
}
