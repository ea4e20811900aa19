package config

import (
	"flag"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/peterbourgon/ff/v3"
)

// EnvPrefix is prepended to every flag name when it is read from the
// environment, e.g. --db-dsn becomes SCORECARD_DB_DSN.
const EnvPrefix = "SCORECARD"

type Config struct {
	ServerAddress   string
	ShutdownTimeout time.Duration

	// Storage
	DBDriver string // "sqlite" or "postgres"
	DBDSN    string // empty selects the driver default

	CORSOrigins    []string
	LogLevel       slog.Level
	MaxUploadBytes int64
}

// Load reads configuration from, in increasing priority: defaults, an optional
// JSON file named by --config, the environment (a .env file is loaded first),
// and command line flags.
func Load(args []string) (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	fs := flag.NewFlagSet("scorecard-server", flag.ContinueOnError)
	var (
		_               = fs.String("config", "", "config file (optional), json format")
		addr            = fs.String("addr", ":8080", "address the HTTP server listens on")
		dbDriver        = fs.String("db-driver", "sqlite", "database driver: sqlite or postgres")
		dbDSN           = fs.String("db-dsn", "", "database connection string")
		shutdownTimeout = fs.Duration("shutdown-timeout", 10*time.Second, "graceful shutdown timeout")
		corsOrigins     = fs.String("cors-origins", "*", "comma separated list of allowed CORS origins")
		logLevel        = fs.String("log-level", "info", "log level: debug, info, warn or error")
		maxUpload       = fs.Int64("max-upload-bytes", 10<<20, "maximum accepted upload size in bytes")
	)

	if err := ff.Parse(fs, args,
		ff.WithConfigFileFlag("config"),
		ff.WithConfigFileParser(ff.JSONParser),
		ff.WithEnvVarPrefix(EnvPrefix),
	); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	cfg := &Config{
		ServerAddress:   *addr,
		ShutdownTimeout: *shutdownTimeout,
		DBDriver:        strings.ToLower(strings.TrimSpace(*dbDriver)),
		DBDSN:           *dbDSN,
		CORSOrigins:     splitList(*corsOrigins),
		MaxUploadBytes:  *maxUpload,
	}
	if err := cfg.LogLevel.UnmarshalText([]byte(*logLevel)); err != nil {
		return nil, fmt.Errorf("config: log-level=%q: %w", *logLevel, err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.DBDriver {
	case "sqlite", "postgres":
	default:
		return fmt.Errorf("config: unsupported db-driver %q", c.DBDriver)
	}
	if c.ShutdownTimeout <= 0 {
		return fmt.Errorf("config: shutdown-timeout must be positive")
	}
	if c.MaxUploadBytes <= 0 {
		return fmt.Errorf("config: max-upload-bytes must be positive")
	}
	return nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
