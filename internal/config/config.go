package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	Port        int
	LogLevel    string
	LogFormat   string
	LogDir      string
	Environment string
	Version     string
	APIKey      string // API key for authenticating command requests

	DBUser     string
	DBPassword string
	DBHost     string
	DBPort     string
	DBName     string

	// Chat transport (Streamer.bot-style WebSocket)
	ChatSocketURL      string
	ChatSocketPassword string

	// Duel mini-game
	DuelMinStake       int
	DuelExpiry         time.Duration
	DuelActivityWindow time.Duration
	DuelExcludedUsers  []string

	// Command cooldowns
	DuelUserCooldown   time.Duration
	DuelGlobalCooldown time.Duration
	CancelCooldown     time.Duration
	StatusCooldown     time.Duration
	StatsCooldown      time.Duration

	// Subscription alerts
	SubWhisperDelay time.Duration
	SubPointsBase   int

	// Donation points feed
	DonationSocketURL    string
	DonationSocketToken  string
	DonationPointsPerUSD int
	DonationReconnect    time.Duration
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel:    getEnv("LOG_LEVEL", "INFO"),
		LogFormat:   getEnv("LOG_FORMAT", "text"),
		LogDir:      getEnv("LOG_DIR", "logs"),
		Environment: getEnv("ENVIRONMENT", "dev"),
		Version:     getEnv("VERSION", "dev"),
		APIKey:      getEnv("API_KEY", ""),

		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: getEnv("DB_PASSWORD", "postgres"),
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBName:     getEnv("DB_NAME", "duelarena"),

		ChatSocketURL:      getEnv("CHAT_SOCKET_URL", DefaultChatSocketURL),
		ChatSocketPassword: getEnv("CHAT_SOCKET_PASSWORD", ""),

		DuelExcludedUsers: getEnvList("DUEL_EXCLUDED_USERS"),

		DonationSocketURL:   getEnv("DONATION_SOCKET_URL", ""),
		DonationSocketToken: getEnv("DONATION_SOCKET_TOKEN", ""),
	}

	var err error
	if cfg.Port, err = getEnvInt("PORT", DefaultPort); err != nil {
		return nil, err
	}
	if cfg.DuelMinStake, err = getEnvInt("DUEL_MIN_STAKE", DefaultMinStake); err != nil {
		return nil, err
	}
	if cfg.SubPointsBase, err = getEnvInt("SUB_POINTS_BASE", DefaultSubPointsBase); err != nil {
		return nil, err
	}
	if cfg.DonationPointsPerUSD, err = getEnvInt("DONATION_POINTS_PER_USD", DefaultPointsPerUSD); err != nil {
		return nil, err
	}

	if cfg.DuelExpiry, err = getEnvSeconds("DUEL_EXPIRY_SECONDS", DefaultDuelExpiry); err != nil {
		return nil, err
	}
	if cfg.DuelActivityWindow, err = getEnvSeconds("DUEL_ACTIVITY_WINDOW_SECONDS", DefaultActivityWindow); err != nil {
		return nil, err
	}
	if cfg.DuelUserCooldown, err = getEnvSeconds("DUEL_USER_COOLDOWN_SECONDS", DefaultDuelUserCooldown); err != nil {
		return nil, err
	}
	if cfg.DuelGlobalCooldown, err = getEnvSeconds("DUEL_GLOBAL_COOLDOWN_SECONDS", DefaultDuelGlobalCooldown); err != nil {
		return nil, err
	}
	if cfg.CancelCooldown, err = getEnvSeconds("CANCEL_COOLDOWN_SECONDS", DefaultCancelCooldown); err != nil {
		return nil, err
	}
	if cfg.StatusCooldown, err = getEnvSeconds("STATUS_COOLDOWN_SECONDS", DefaultStatusCooldown); err != nil {
		return nil, err
	}
	if cfg.StatsCooldown, err = getEnvSeconds("STATS_COOLDOWN_SECONDS", DefaultStatsCooldown); err != nil {
		return nil, err
	}
	if cfg.SubWhisperDelay, err = getEnvSeconds("SUB_WHISPER_DELAY_SECONDS", DefaultSubWhisperDelay); err != nil {
		return nil, err
	}
	if cfg.DonationReconnect, err = getEnvSeconds("DONATION_RECONNECT_SECONDS", DefaultDonationReconnect); err != nil {
		return nil, err
	}

	// Validate API key is set
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("API_KEY environment variable must be set for security")
	}

	if cfg.DuelMinStake <= 0 {
		return nil, fmt.Errorf("DUEL_MIN_STAKE must be positive, got %d", cfg.DuelMinStake)
	}

	return cfg, nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvInt retrieves an integer environment variable or returns a default value
func getEnvInt(key string, defaultValue int) (int, error) {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value: %w", key, err)
	}
	return n, nil
}

// getEnvSeconds retrieves a duration expressed as whole seconds
func getEnvSeconds(key string, defaultValue time.Duration) (time.Duration, error) {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value: %w", key, err)
	}
	return time.Duration(n) * time.Second, nil
}

// getEnvList retrieves a comma-separated environment variable as a slice.
// Entries are trimmed and lowercased; empty entries are dropped.
func getEnvList(key string) []string {
	value, exists := os.LookupEnv(key)
	if !exists || value == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.ToLower(strings.TrimSpace(p))
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

// GetDBConnString returns the PostgreSQL connection string
func (c *Config) GetDBConnString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser,
		c.DBPassword,
		c.DBHost,
		c.DBPort,
		c.DBName,
	)
}
