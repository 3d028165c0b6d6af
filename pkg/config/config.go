package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"lintang/mapagent/pkg/engine/topology"
)

const (
	BackendFile     = "file"
	BackendKV       = "kv"
	BackendPostgres = "postgres"
)

var (
	ErrInvalidConfig = errors.New("invalid config")
)

// Config holds all configuration for the map agent server
type Config struct {
	// Transport
	ListenAddr string
	GRPCAddr   string
	RateLimit  bool

	// Edge store
	Backend    string
	EdgeFile   string
	KVDir      string
	KVEngine   string
	PGURL      string
	PGMaxConns int

	// Request handling
	MaxInFlight    int
	BatchWorkers   int
	RequestTimeout time.Duration

	// Logging
	LogLevel string
	LogJSON  bool

	// Profiling
	CPUProfile string
	MemProfile string
}

// LoadDotEnv loads .env files into the environment. missing files are ignored.
func LoadDotEnv(files ...string) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		_ = godotenv.Load(f)
	}
}

// Load parses args, every flag defaulting from its MAPAGENT_* environment variable.
func Load(name string, args []string) (*Config, error) {
	cfg := &Config{}
	fs := flag.NewFlagSet(name, flag.ContinueOnError)

	fs.StringVar(&cfg.ListenAddr, "listenaddr", getEnv("MAPAGENT_LISTEN_ADDR", ":5000"), "rest server listen address, empty disables rest")
	fs.StringVar(&cfg.GRPCAddr, "grpcaddr", getEnv("MAPAGENT_GRPC_ADDR", ":50051"), "grpc server listen address, empty disables grpc")
	fs.BoolVar(&cfg.RateLimit, "ratelimit", getEnvBool("MAPAGENT_RATE_LIMIT", false), "use rate limit")

	fs.StringVar(&cfg.Backend, "backend", getEnv("MAPAGENT_BACKEND", BackendFile), "edge store: file, kv or postgres")
	fs.StringVar(&cfg.EdgeFile, "f", getEnv("MAPAGENT_EDGE_FILE", "edges.txt"), "edge file for the file backend")
	fs.StringVar(&cfg.KVDir, "kvdir", getEnv("MAPAGENT_KV_DIR", "./mapagent_db"), "kv store directory")
	fs.StringVar(&cfg.KVEngine, "kvengine", getEnv("MAPAGENT_KV_ENGINE", "badger"), "kv engine: badger or pebble")
	fs.StringVar(&cfg.PGURL, "pgurl", getEnv("MAPAGENT_PG_URL", ""), "postgres connection url")
	fs.IntVar(&cfg.PGMaxConns, "pgmaxconns", getEnvInt("MAPAGENT_PG_MAX_CONNS", 16), "postgres pool size")

	fs.IntVar(&cfg.MaxInFlight, "maxinflight", getEnvInt("MAPAGENT_MAX_IN_FLIGHT", 64), "requests resolved concurrently")
	fs.IntVar(&cfg.BatchWorkers, "batchworkers", getEnvInt("MAPAGENT_BATCH_WORKERS", 8), "workers per batch radius search")
	fs.DurationVar(&cfg.RequestTimeout, "timeout", getEnvDuration("MAPAGENT_REQUEST_TIMEOUT", 10*time.Second), "per request timeout")

	fs.StringVar(&cfg.LogLevel, "loglevel", getEnv("MAPAGENT_LOG_LEVEL", "info"), "debug, info, warn or error")
	fs.BoolVar(&cfg.LogJSON, "logjson", getEnvBool("MAPAGENT_LOG_JSON", false), "log as json")

	fs.StringVar(&cfg.CPUProfile, "cpuprofile", "", "write cpu profile to file")
	fs.StringVar(&cfg.MemProfile, "memprofile", "", "write memory profile to this file")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	switch c.Backend {
	case BackendFile:
		if c.EdgeFile == "" {
			return fmt.Errorf("%w: file backend needs -f", ErrInvalidConfig)
		}
	case BackendKV:
		if c.KVEngine != "badger" && c.KVEngine != "pebble" {
			return fmt.Errorf("%w: unknown kv engine %q", ErrInvalidConfig, c.KVEngine)
		}
	case BackendPostgres:
		if c.PGURL == "" {
			return fmt.Errorf("%w: postgres backend needs -pgurl", ErrInvalidConfig)
		}
		if c.PGMaxConns <= 0 {
			return fmt.Errorf("%w: pgmaxconns must be positive", ErrInvalidConfig)
		}
	default:
		return fmt.Errorf("%w: unknown backend %q", ErrInvalidConfig, c.Backend)
	}

	if c.ListenAddr == "" && c.GRPCAddr == "" {
		return fmt.Errorf("%w: at least one of -listenaddr and -grpcaddr is needed", ErrInvalidConfig)
	}
	if c.MaxInFlight <= 0 || c.BatchWorkers <= 0 {
		return fmt.Errorf("%w: maxinflight and batchworkers must be positive", ErrInvalidConfig)
	}
	if c.RequestTimeout < 0 {
		return fmt.Errorf("%w: timeout must not be negative", ErrInvalidConfig)
	}
	return nil
}

func (c *Config) ServiceOptions() topology.ServiceOptions {
	return topology.ServiceOptions{
		MaxInFlight:    int64(c.MaxInFlight),
		BatchWorkers:   c.BatchWorkers,
		RequestTimeout: c.RequestTimeout,
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
