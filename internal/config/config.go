package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Env           string
	LogLevel      string
	ListenAddr    string
	MaxConns      int
	ReportWorkers int
	JobPoll       time.Duration
	CheckTimeout  time.Duration
	FailurePolicy string
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// Load reads the environment, after an optional .env file. Bad values fall
// back to their defaults and are reported in the returned error so callers
// can decide whether to continue.
func Load() (Config, error) {
	_ = godotenv.Load()

	var errs []error
	cfg := Config{
		Env:           getenv("APP_ENV", "development"),
		LogLevel:      getenv("LOG_LEVEL", "info"),
		ListenAddr:    getenv("LISTEN_ADDR", ":8080"),
		MaxConns:      getenvInt("MAX_CONNS", 0, &errs),
		ReportWorkers: getenvInt("REPORT_WORKERS", 2, &errs),
		JobPoll:       getenvDuration("JOB_POLL_INTERVAL", 200*time.Millisecond, &errs),
		CheckTimeout:  getenvDuration("CHECK_TIMEOUT", 0, &errs),
		FailurePolicy: getenv("CHECK_FAILURE_POLICY", "fail"),
	}
	if cfg.FailurePolicy != "fail" && cfg.FailurePolicy != "placeholder" {
		errs = append(errs, fmt.Errorf("CHECK_FAILURE_POLICY: unknown policy %q", cfg.FailurePolicy))
		cfg.FailurePolicy = "fail"
	}
	if cfg.JobPoll <= 0 {
		errs = append(errs, fmt.Errorf("JOB_POLL_INTERVAL must be positive"))
		cfg.JobPoll = 200 * time.Millisecond
	}
	return cfg, errors.Join(errs...)
}

func getenvInt(key string, def int, errs *[]error) int {
	if v := os.Getenv(key); v != "" {
		var out int
		_, err := fmt.Sscanf(v, "%d", &out)
		if err == nil && out >= 0 {
			return out
		}
		*errs = append(*errs, fmt.Errorf("%s: invalid value %q", key, v))
	}
	return def
}

func getenvDuration(key string, def time.Duration, errs *[]error) time.Duration {
	if v := os.Getenv(key); v != "" {
		d, err := time.ParseDuration(v)
		if err == nil && d >= 0 {
			return d
		}
		*errs = append(*errs, fmt.Errorf("%s: invalid duration %q", key, v))
	}
	return def
}
