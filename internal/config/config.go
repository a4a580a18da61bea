package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

const defaultConnectionString = "Host=localhost;Port=5432;Database=core_banking_db;Username=postgres;Password=postgres;Timeout=30;CommandTimeout=30"
const defaultChannelID = "CoreBankingApp"
const defaultChannelKey = "CoreBankingKey001"
const defaultBaseCurrency = "EUR"
const defaultRateSourceURL = "https://api.exchangerate.host/latest"
const defaultListenAddr = ":8080"

type Config struct {
	DatabaseDSN   string
	MigrationsDir string
	ListenAddr    string
	ChannelID     string
	ChannelKey    string

	BaseCurrency  string
	RateSourceURL string
	RateSourceKey string

	ScheduleTimes       []string
	SchedulerWorkers    int
	SchedulerQueueSize  int
	SchedulerRunOnStart bool
	SchedulerJobDelay   time.Duration
}

func Load() (Config, error) {
	conn := strings.TrimSpace(os.Getenv("DATABASE_DSN"))
	if conn == "" {
		conn = defaultConnectionString
	}

	cfg := Config{
		DatabaseDSN:         normalizeConnectionString(conn),
		MigrationsDir:       "migrations",
		ListenAddr:          envOrDefault("LISTEN_ADDR", defaultListenAddr),
		ChannelID:           envOrDefault("CHANNEL_ID", defaultChannelID),
		ChannelKey:          envOrDefault("CHANNEL_KEY", defaultChannelKey),
		BaseCurrency:        strings.ToUpper(envOrDefault("BASE_CURRENCY", defaultBaseCurrency)),
		RateSourceURL:       envOrDefault("RATE_SOURCE_URL", defaultRateSourceURL),
		RateSourceKey:       strings.TrimSpace(os.Getenv("RATE_SOURCE_KEY")),
		ScheduleTimes:       splitList(envOrDefault("SCHEDULE_TIMES", "02:00")),
		SchedulerWorkers:    4,
		SchedulerQueueSize:  64,
		SchedulerRunOnStart: true,
		SchedulerJobDelay:   0,
	}

	if raw := strings.TrimSpace(os.Getenv("SCHEDULER_WORKERS")); raw != "" {
		workers, err := strconv.Atoi(raw)
		if err != nil || workers < 1 {
			return Config{}, fmt.Errorf("invalid SCHEDULER_WORKERS %q", raw)
		}
		cfg.SchedulerWorkers = workers
	}

	if raw := strings.TrimSpace(os.Getenv("SCHEDULER_RUN_ON_START")); raw != "" {
		runOnStart, err := strconv.ParseBool(raw)
		if err != nil {
			return Config{}, fmt.Errorf("invalid SCHEDULER_RUN_ON_START %q", raw)
		}
		cfg.SchedulerRunOnStart = runOnStart
	}

	return cfg, nil
}

func envOrDefault(key, fallback string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback
	}
	return value
}

func splitList(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func normalizeConnectionString(raw string) string {
	parts := strings.Split(raw, ";")
	out := make([]string, 0, len(parts))
	hasSSLMode := false

	for _, part := range parts {
		p := strings.TrimSpace(part)
		if p == "" {
			continue
		}

		kv := strings.SplitN(p, "=", 2)
		if len(kv) != 2 {
			continue
		}

		key := strings.ToLower(strings.TrimSpace(kv[0]))
		val := strings.TrimSpace(kv[1])

		switch key {
		case "host":
			out = append(out, "host="+val)
		case "port":
			out = append(out, "port="+val)
		case "database":
			out = append(out, "dbname="+val)
		case "username":
			out = append(out, "user="+val)
		case "password":
			out = append(out, "password="+val)
		case "timeout", "connect timeout":
			out = append(out, "connect_timeout="+val)
		case "commandtimeout", "command timeout":
			out = append(out, "statement_timeout="+val+"s")
		case "sslmode":
			hasSSLMode = true
			out = append(out, "sslmode="+val)
		default:
			out = append(out, key+"="+val)
		}
	}

	if len(out) == 0 {
		return raw
	}

	if !hasSSLMode {
		out = append(out, "sslmode=disable")
	}

	return strings.Join(out, " ")
}
