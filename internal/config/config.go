package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application level configuration loaded from environment and flags.
type Config struct {
	RunAddress    string
	DataDir       string
	StoresFile    string
	OrdersFile    string
	RetentionDays int
	// RetentionInterval repeats the order cleanup while running; zero runs it at startup only.
	RetentionInterval time.Duration
	LogLevel          string
	ShutdownTimeout   time.Duration
	OrderRateRPS      float64
	OrderRateBurst    int
	EnvFile           string
}

const (
	defaultRunAddress      = ":8080"
	defaultDataDir         = "Data"
	defaultStoresFile      = "stores.json"
	defaultOrdersFile      = "orders.json"
	defaultRetentionDays   = 5
	defaultLogLevel        = "info"
	defaultShutdownTimeout = 10 * time.Second
	defaultOrderRateRPS    = 2
	defaultOrderRateBurst  = 5
	defaultEnvFile         = ".env"
)

// Load parses configuration from flags, environment variables and an optional
// dotenv file. Real environment variables take precedence over the file.
func Load() (*Config, error) {
	envFile := defaultEnvFile
	if v, ok := os.LookupEnv("ENV_FILE"); ok && v != "" {
		envFile = v
	}
	fileEnv, err := readEnvFile(envFile)
	if err != nil {
		return nil, err
	}
	lookup := func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok {
			return v, true
		}
		v, ok := fileEnv[key]
		return v, ok
	}
	cfg, err := load(os.Args[1:], lookup)
	if err != nil {
		return nil, err
	}
	cfg.EnvFile = envFile
	return cfg, nil
}

type envLookup func(string) (string, bool)

func readEnvFile(path string) (map[string]string, error) {
	values, err := godotenv.Read(path)
	if errors.Is(err, fs.ErrNotExist) {
		return map[string]string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read env file %s: %w", path, err)
	}
	return values, nil
}

func load(args []string, lookup envLookup) (*Config, error) {
	env := &envReader{lookup: lookup}
	cfg := &Config{
		RunAddress:        env.getString("RUN_ADDRESS", defaultRunAddress),
		DataDir:           env.getString("DATA_DIR", defaultDataDir),
		StoresFile:        env.getString("STORES_FILE", defaultStoresFile),
		OrdersFile:        env.getString("ORDERS_FILE", defaultOrdersFile),
		RetentionDays:     env.getInt("RETENTION_DAYS", defaultRetentionDays),
		RetentionInterval: env.getDuration("RETENTION_INTERVAL", 0),
		LogLevel:          env.getString("LOG_LEVEL", defaultLogLevel),
		ShutdownTimeout:   env.getDuration("SHUTDOWN_TIMEOUT", defaultShutdownTimeout),
		OrderRateRPS:      env.getFloat("ORDER_RATE_RPS", defaultOrderRateRPS),
		OrderRateBurst:    env.getInt("ORDER_RATE_BURST", defaultOrderRateBurst),
		EnvFile:           defaultEnvFile,
	}
	if err := errors.Join(env.errs...); err != nil {
		return nil, err
	}

	flags := flag.NewFlagSet("orderlunch", flag.ContinueOnError)
	flags.SetOutput(io.Discard)

	var (
		shutdownTimeoutStr   = cfg.ShutdownTimeout.String()
		retentionIntervalStr = cfg.RetentionInterval.String()
	)

	flags.StringVar(&cfg.RunAddress, "a", cfg.RunAddress, "HTTP server listen address")
	flags.StringVar(&cfg.DataDir, "data", cfg.DataDir, "Directory holding the JSON collections")
	flags.IntVar(&cfg.RetentionDays, "retention", cfg.RetentionDays, "Days of orders kept by the startup cleanup")
	flags.StringVar(&retentionIntervalStr, "retention-interval", retentionIntervalStr, "Interval between order cleanups, 0 for startup only")
	flags.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level: debug, info, warn or error")
	flags.StringVar(&shutdownTimeoutStr, "shutdown-timeout", shutdownTimeoutStr, "Graceful shutdown timeout")

	if err := flags.Parse(args); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	var err error
	if cfg.ShutdownTimeout, err = time.ParseDuration(shutdownTimeoutStr); err != nil {
		return nil, fmt.Errorf("invalid shutdown timeout: %w", err)
	}

	if cfg.RetentionInterval, err = time.ParseDuration(retentionIntervalStr); err != nil {
		return nil, fmt.Errorf("invalid retention interval: %w", err)
	}
	if cfg.RetentionInterval < 0 {
		cfg.RetentionInterval = 0
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		return nil, fmt.Errorf("invalid log level %q", cfg.LogLevel)
	}
	cfg.LogLevel = strings.ToLower(cfg.LogLevel)

	if cfg.RetentionDays <= 0 {
		cfg.RetentionDays = defaultRetentionDays
	}

	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = defaultShutdownTimeout
	}

	if cfg.OrderRateRPS <= 0 {
		cfg.OrderRateRPS = defaultOrderRateRPS
	}

	if cfg.OrderRateBurst <= 0 {
		cfg.OrderRateBurst = defaultOrderRateBurst
	}

	if strings.TrimSpace(cfg.DataDir) == "" {
		return nil, fmt.Errorf("data directory must be provided")
	}

	return cfg, nil
}

// Level returns the configured slog level, falling back to info.
func (c *Config) Level() slog.Level {
	var level slog.Level
	if c == nil || level.UnmarshalText([]byte(c.LogLevel)) != nil {
		return slog.LevelInfo
	}
	return level
}

// envReader reads typed values from the environment and remembers every value
// that failed to parse so Load can report them together.
type envReader struct {
	lookup envLookup
	errs   []error
}

func (r *envReader) value(key string) (string, bool) {
	v, ok := r.lookup(key)
	return v, ok && v != ""
}

func (r *envReader) fail(key, value string, err error) {
	r.errs = append(r.errs, fmt.Errorf("invalid %s %q: %w", key, value, err))
}

func (r *envReader) getString(key, def string) string {
	if v, ok := r.value(key); ok {
		return v
	}
	return def
}

func (r *envReader) getInt(key string, def int) int {
	v, ok := r.value(key)
	if !ok {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		r.fail(key, v, err)
		return def
	}
	return n
}

func (r *envReader) getFloat(key string, def float64) float64 {
	v, ok := r.value(key)
	if !ok {
		return def
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		r.fail(key, v, err)
		return def
	}
	return f
}

func (r *envReader) getDuration(key string, def time.Duration) time.Duration {
	v, ok := r.value(key)
	if !ok {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		r.fail(key, v, err)
		return def
	}
	return d
}
