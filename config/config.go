package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/ariebrainware/ward-census/util"
	"github.com/joho/godotenv"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Config holds the application's configuration values.
type Config struct {
	AppName  string `json:"appname"`
	AppEnv   string `json:"appenv"`
	AppPort  uint16 `json:"appport"`
	GinMode  string `json:"ginmode"`
	LogLevel string `json:"loglevel"`

	DBDriver string `json:"dbdriver"`
	DBHost   string `json:"dbhost"`
	DBPort   uint16 `json:"dbport"`
	DBName   string `json:"dbname"`
	DBUSER   string `json:"dbuser"`
	DBPass   string `json:"dbpass"`

	// DateLayout is the Go time layout used for roster dates.
	DateLayout string `json:"datelayout"`
	TimeZone   string `json:"timezone"`

	KafkaBrokers    []string `json:"kafkabrokers"`
	KafkaNotesTopic string   `json:"kafkanotestopic"`

	RateLimit   int           `json:"ratelimit"`
	RateWindow  time.Duration `json:"ratewindow"`
	CORSOrigins []string      `json:"corsorigins"`
	SeedFile    string        `json:"seedfile"`
}

const defaultDateLayout = "1/2/2006"

var config *Config
var once sync.Once

// LoadConfig loads the environment variables from a .env file, and returns a singleton Config instance.
// A missing .env file is not an error; the process environment is used as is.
func LoadConfig() *Config {
	once.Do(func() {
		if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
			util.Log.WithError(err).Warn("Error loading .env file")
		}

		appPort, _ := strconv.ParseUint(getEnv("APPPORT", "8080"), 10, 16)
		dbPort, _ := strconv.ParseUint(os.Getenv("DBPORT"), 10, 16)

		config = &Config{
			AppName:  getEnv("APPNAME", "Ward Census"),
			AppEnv:   os.Getenv("APPENV"),
			AppPort:  uint16(appPort),
			GinMode:  getEnv("GINMODE", "release"),
			LogLevel: getEnv("LOG_LEVEL", "info"),

			DBDriver: getEnv("DBDRIVER", "mysql"),
			DBHost:   os.Getenv("DBHOST"),
			DBPort:   uint16(dbPort),
			DBName:   os.Getenv("DBNAME"),
			DBUSER:   os.Getenv("DBUSER"),
			DBPass:   os.Getenv("DBPASS"),

			DateLayout: getEnv("DATE_LAYOUT", defaultDateLayout),
			TimeZone:   getEnv("TIMEZONE", "Local"),

			KafkaBrokers:    getListEnv("KAFKA_BROKERS"),
			KafkaNotesTopic: getEnv("KAFKA_NOTES_TOPIC", "ward.census.events"),

			RateLimit:   getIntEnv("RATE_LIMIT", 60),
			RateWindow:  getDurationEnv("RATE_WINDOW", time.Minute),
			CORSOrigins: getListEnv("CORS_ORIGINS"),
			SeedFile:    os.Getenv("SEED_FILE"),
		}
	})
	return config
}

// Location resolves TimeZone, falling back to the local zone when it is
// empty or unknown.
func (c *Config) Location() *time.Location {
	if c == nil || c.TimeZone == "" || c.TimeZone == "Local" {
		return time.Local
	}
	loc, err := time.LoadLocation(c.TimeZone)
	if err != nil {
		util.Log.WithError(err).WithField("timezone", c.TimeZone).Warn("unknown timezone, using local")
		return time.Local
	}
	return loc
}

// ConnectDatabase opens the configured database. With APPENV=test it opens a
// private in-memory SQLite database instead.
func ConnectDatabase() (*gorm.DB, error) {
	if os.Getenv("APPENV") == "test" {
		dsn := fmt.Sprintf("file:ward_test_%d?mode=memory&cache=shared", time.Now().UnixNano())
		return gorm.Open(sqlite.Open(dsn), &gorm.Config{DisableForeignKeyConstraintWhenMigrating: true})
	}

	cfg := LoadConfig()
	var dialector gorm.Dialector
	switch strings.ToLower(cfg.DBDriver) {
	case "postgres":
		dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%d sslmode=disable",
			cfg.DBHost, cfg.DBUSER, cfg.DBPass, cfg.DBName, cfg.DBPort)
		dialector = postgres.Open(dsn)
	case "mysql", "":
		dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?parseTime=true", cfg.DBUSER, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
		dialector = mysql.Open(dsn)
	default:
		return nil, fmt.Errorf("unsupported DBDRIVER %q", cfg.DBDriver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		return nil, err
	}

	return db, nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getIntEnv(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return fallback
}

func getDurationEnv(key string, fallback time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return fallback
}

// getListEnv splits a comma-separated variable, dropping blanks.
func getListEnv(key string) []string {
	raw := os.Getenv(key)
	if raw == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
