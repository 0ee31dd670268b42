package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"grubdash/internal/pkg/errs"

	"github.com/joho/godotenv"
)

const (
	StorageMemory   = "memory"
	StoragePostgres = "postgres"

	defaultHTTPPort             = "5000"
	defaultOrderBacklogSchedule = "*/30 * * * * *"
	defaultDBSslMode            = "disable"
)

type Config struct {
	HTTPPort      string
	StorageDriver string
	LogLevel      slog.Level

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	// OrderBacklogSchedule is a six-field cron spec. Empty disables the job.
	OrderBacklogSchedule string
}

// LoadConfig seeds the environment from envFile, if it exists, and reads the
// configuration from it. Variables already set in the environment win.
func LoadConfig(envFile string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", envFile, err)
		}
	}

	cfg := Config{
		HTTPPort:             envOr("HTTP_PORT", defaultHTTPPort),
		StorageDriver:        strings.ToLower(envOr("STORAGE_DRIVER", StorageMemory)),
		DBHost:               os.Getenv("DB_HOST"),
		DBPort:               os.Getenv("DB_PORT"),
		DBUser:               os.Getenv("DB_USER"),
		DBPassword:           os.Getenv("DB_PASSWORD"),
		DBName:               os.Getenv("DB_NAME"),
		DBSslMode:            envOr("DB_SSLMODE", defaultDBSslMode),
		OrderBacklogSchedule: defaultOrderBacklogSchedule,
	}
	if schedule, ok := os.LookupEnv("ORDER_BACKLOG_SCHEDULE"); ok {
		cfg.OrderBacklogSchedule = strings.TrimSpace(schedule)
	}

	if err := cfg.LogLevel.UnmarshalText([]byte(envOr("LOG_LEVEL", "info"))); err != nil {
		return Config{}, errs.NewValueIsInvalidErrorWithCause("LOG_LEVEL", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports every problem at once.
func (c Config) Validate() error {
	var problems []error

	if err := validatePort("HTTP_PORT", c.HTTPPort); err != nil {
		problems = append(problems, err)
	}

	switch c.StorageDriver {
	case StorageMemory:
	case StoragePostgres:
		for name, value := range map[string]string{
			"DB_HOST": c.DBHost,
			"DB_USER": c.DBUser,
			"DB_NAME": c.DBName,
		} {
			if strings.TrimSpace(value) == "" {
				problems = append(problems, errs.NewValueIsRequiredError(name))
			}
		}
		if err := validatePort("DB_PORT", c.DBPort); err != nil {
			problems = append(problems, err)
		}
	default:
		problems = append(problems, errs.NewValueIsInvalidErrorWithCause(
			"STORAGE_DRIVER",
			fmt.Errorf("%q is not one of %s, %s", c.StorageDriver, StorageMemory, StoragePostgres),
		))
	}

	return errors.Join(problems...)
}

// DSN renders the postgres connection string in lib/pq key=value form.
func (c Config) DSN() string {
	pairs := []string{
		"host=" + quoteDSN(c.DBHost),
		"port=" + quoteDSN(c.DBPort),
		"user=" + quoteDSN(c.DBUser),
		"password=" + quoteDSN(c.DBPassword),
		"dbname=" + quoteDSN(c.DBName),
		"sslmode=" + quoteDSN(c.DBSslMode),
	}
	return strings.Join(pairs, " ")
}

// Addr is the listen address for the HTTP server.
func (c Config) Addr() string {
	return "0.0.0.0:" + c.HTTPPort
}

func validatePort(name, value string) error {
	if value == "" {
		return errs.NewValueIsRequiredError(name)
	}
	port, err := strconv.Atoi(value)
	if err != nil {
		return errs.NewValueIsInvalidErrorWithCause(name, err)
	}
	if port < 1 || port > 65535 {
		return errs.NewValueIsInvalidErrorWithCause(name, fmt.Errorf("%d is out of range", port))
	}
	return nil
}

func envOr(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func quoteDSN(v string) string {
	v = strings.ReplaceAll(v, `\`, `\\`)
	v = strings.ReplaceAll(v, `'`, `\'`)
	return "'" + v + "'"
}
