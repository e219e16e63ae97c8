package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/cmlabs-hris/attendance-report-go/internal/domain/report"
	"github.com/joho/godotenv"
)

type Config struct {
	Database DatabaseConfig
	App      AppConfig
	Roster   RosterConfig
	Report   ReportConfig
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

// AppConfig holds application configuration
type AppConfig struct {
	Port     int
	Env      string
	LogLevel string
}

// RosterConfig selects and configures the staff roster backend.
type RosterConfig struct {
	Source  string // "csv" or "postgres"
	CSVPath string
}

// ReportConfig holds the attendance rule set for a run.
type ReportConfig struct {
	InternalRule  report.TimeRule
	ExternalRule  report.TimeRule
	RateThreshold int
	SortBy        string // "attendance_rate" or "name_strokes"
	Holidays      map[time.Time]struct{}
	Colors        report.ColorRule
}

func Load() (*Config, error) {
	// .env is optional; environment variables win either way
	_ = godotenv.Load()

	config := &Config{}

	// Database configuration
	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}

	config.Database = DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     dbPort,
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", "attendance-report"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
	}

	// Application configuration
	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:     appPort,
		Env:      getEnv("APP_ENV", "development"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
	}

	// Roster configuration
	config.Roster = RosterConfig{
		Source:  getEnv("STAFF_SOURCE", "csv"),
		CSVPath: getEnv("STAFF_CSV_PATH", "staff.csv"),
	}

	// Report configuration
	threshold, err := strconv.Atoi(getEnv("RATE_THRESHOLD", "80"))
	if err != nil {
		return nil, fmt.Errorf("invalid RATE_THRESHOLD: %w", err)
	}

	config.Report = ReportConfig{
		InternalRule: report.TimeRule{
			InStart:  report.ParseClock(getEnv("INTERNAL_IN_START", "09:00")),
			InEnd:    report.ParseClock(getEnv("INTERNAL_IN_END", "09:30")),
			OutStart: report.ParseClock(getEnv("INTERNAL_OUT_START", "18:00")),
			OutEnd:   report.ParseClock(getEnv("INTERNAL_OUT_END", "18:30")),
		},
		ExternalRule: report.TimeRule{
			InStart:  report.ParseClock(getEnv("EXTERNAL_IN_START", "09:30")),
			InEnd:    report.ParseClock(getEnv("EXTERNAL_IN_END", "10:00")),
			OutStart: report.ParseClock(getEnv("EXTERNAL_OUT_START", "10:30")),
			OutEnd:   report.ParseClock(getEnv("EXTERNAL_OUT_END", "12:00")),
		},
		RateThreshold: threshold,
		SortBy:        getEnv("SORT_BY", "attendance_rate"),
		Holidays:      parseHolidays(getEnvSlice("HOLIDAYS")),
		Colors:        report.DefaultColorRule(),
	}

	// Validate required fields
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	switch c.Roster.Source {
	case "csv":
		if c.Roster.CSVPath == "" {
			return fmt.Errorf("STAFF_CSV_PATH is required when STAFF_SOURCE is csv")
		}
	case "postgres":
		if c.Database.Password == "" {
			return fmt.Errorf("DB_PASSWORD is required when STAFF_SOURCE is postgres")
		}
	default:
		return fmt.Errorf("unsupported STAFF_SOURCE: %s", c.Roster.Source)
	}

	if c.Report.RateThreshold < 0 || c.Report.RateThreshold > 100 {
		return fmt.Errorf("RATE_THRESHOLD must be between 0 and 100")
	}

	if c.Report.SortBy != "attendance_rate" && c.Report.SortBy != "name_strokes" {
		return fmt.Errorf("unsupported SORT_BY: %s", c.Report.SortBy)
	}

	return nil
}

// DatabaseURL returns the PostgreSQL connection string
func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

// parseHolidays turns YYYY-MM-DD strings into a date set. Malformed
// entries are silently ignored.
func parseHolidays(entries []string) map[time.Time]struct{} {
	holidays := make(map[time.Time]struct{})
	for _, entry := range entries {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		d, err := time.Parse("2006-01-02", entry)
		if err != nil {
			continue
		}
		holidays[d] = struct{}{}
	}
	return holidays
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvSlice(env string) []string {
	value := getEnv(env, "")
	if value == "" {
		return []string{}
	}
	var result []string = strings.Split(value, ",")
	return result
}
