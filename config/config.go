package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	AppEnv             string
	AppPort            string
	AppTimezone        string
	AllowedOrigins     string
	TrustedProxies     string
	DBDriver           string
	DBHost             string
	DBPort             string
	DBUser             string
	DBPassword         string
	DBName             string
	DBSSLMode          string
	DBPath             string
	DBMaxIdleConns     int
	DBMaxOpenConns     int
	JWTSecret          string
	JWTExpirationHours int
	BcryptCost         int
	RateLimitMax       int
	RateLimitWindow    time.Duration
	BodyLimitBytes     int64
	NATSURL            string
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	log.Printf("%s not set, defaulting to %q", key, defaultValue)
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
		log.Printf("Invalid integer value for %s, defaulting to %d", key, defaultValue)
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if d, err := time.ParseDuration(value); err == nil && d > 0 {
			return d
		}
		log.Printf("Invalid duration value for %s, defaulting to %s", key, defaultValue)
	}
	return defaultValue
}

// Load reads the configuration from the environment. A .env file in the
// working directory, when present, is loaded first without overriding
// variables that are already set.
func Load() Config {
	log.Println("Loading configuration...")

	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("Could not read .env file: %v", err)
	}

	return Config{
		AppEnv:             getEnv("APP_ENV", "development"),
		AppPort:            getEnv("APP_PORT", "3000"),
		AppTimezone:        getEnv("APP_TIMEZONE", "America/Sao_Paulo"),
		AllowedOrigins:     getEnv("ALLOWED_ORIGINS", "*"),
		TrustedProxies:     getEnv("TRUSTED_PROXIES", ""),
		DBDriver:           getEnv("DB_DRIVER", "postgres"),
		DBHost:             getEnv("DB_HOST", "localhost"),
		DBPort:             getEnv("DB_PORT", "5432"),
		DBUser:             getEnv("DB_USER", "kard"),
		DBPassword:         getEnv("DB_PASSWORD", "kard"),
		DBName:             getEnv("DB_NAME", "kard"),
		DBSSLMode:          getEnv("DB_SSLMODE", "disable"),
		DBPath:             getEnv("DB_PATH", "kard.db"),
		DBMaxIdleConns:     getEnvAsInt("DB_MAX_IDLE_CONNS", 10),
		DBMaxOpenConns:     getEnvAsInt("DB_MAX_OPEN_CONNS", 100),
		JWTSecret:          getEnv("JWT_SECRET", ""),
		JWTExpirationHours: getEnvAsInt("JWT_EXPIRATION_HOURS", 8),
		BcryptCost:         getEnvAsInt("BCRYPT_COST", 10),
		RateLimitMax:       getEnvAsInt("RATE_LIMIT_MAX", 100),
		RateLimitWindow:    getEnvAsDuration("RATE_LIMIT_WINDOW", 15*time.Minute),
		BodyLimitBytes:     int64(getEnvAsInt("BODY_LIMIT_BYTES", 10<<20)),
		NATSURL:            getEnv("NATS_URL", ""),
	}
}

// Location resolves AppTimezone, falling back to UTC when it is unknown.
func (c Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.AppTimezone)
	if err != nil {
		log.Printf("Unknown timezone %q, using UTC: %v", c.AppTimezone, err)
		return time.UTC
	}
	return loc
}

// TrustedProxyList splits TrustedProxies on commas. It is nil when no proxy
// is configured, so client addresses come from the connection alone.
func (c Config) TrustedProxyList() []string {
	var proxies []string
	for _, proxy := range strings.Split(c.TrustedProxies, ",") {
		if proxy = strings.TrimSpace(proxy); proxy != "" {
			proxies = append(proxies, proxy)
		}
	}
	return proxies
}

func (c Config) IsProduction() bool {
	return c.AppEnv == "production"
}
