package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/big21ray/soloqtracker-discord/internal/constants"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"go.uber.org/fx"
)

type Config struct {
	RiotAPIKey    string
	DiscordToken  string
	ChannelID     string
	PlayersJSON   string
	PlayersFile   string
	DefaultRegion string
	CachePath     string
	TodoPath      string
	Timezone      string
	ReportCron    string
	ReportBadge   string
	BadgeHeader   string
	FetchRetries  int
	FetchTimeout  time.Duration
	FetchBackoff  float64
	RunTimeout    time.Duration
}

func Load(logger zerolog.Logger) (*Config, error) {
	if err := godotenv.Load(); err != nil {
		logger.Debug().Msg(".env file not found, using environment variables or defaults")
	}

	cfg := &Config{
		RiotAPIKey:    getEnv("RIOT_API_KEY", ""),
		DiscordToken:  getEnv("DISCORD_TOKEN", ""),
		ChannelID:     getEnv("CHANNEL_ID", ""),
		PlayersJSON:   getEnv("PLAYERS_JSON", ""),
		PlayersFile:   getEnv("PLAYERS_FILE", ""),
		DefaultRegion: getEnv("RIOT_REGION", "europe"),
		CachePath:     getEnv("CACHE_PATH", "data/riot_account_cache.json"),
		TodoPath:      getEnv("TODO_PATH", "data/todos.json"),
		Timezone:      getEnv("REPORT_TZ", "Europe/Paris"),
		ReportCron:    getEnv("REPORT_CRON", "0 11 * * *"),
		ReportBadge:   getEnv("REPORT_BADGE", "\U0001F480"),
		BadgeHeader:   getEnv("REPORT_BADGE_HEADER", "Mood"),
		FetchRetries:  getEnvInt("FETCH_RETRIES", constants.DefaultFetchRetries),
		FetchTimeout:  constants.ExternalAPITimeout,
		FetchBackoff:  constants.DefaultFetchBackoff,
		RunTimeout:    constants.RunTimeout,
	}

	if cfg.RiotAPIKey == "" {
		return nil, fmt.Errorf("RIOT_API_KEY is required")
	}

	logger.Info().
		Str("region", cfg.DefaultRegion).
		Str("cache_path", cfg.CachePath).
		Str("report_cron", cfg.ReportCron).
		Str("timezone", cfg.Timezone).
		Int("fetch_retries", cfg.FetchRetries).
		Msg("configuration loaded")

	return cfg, nil
}

// RosterJSON returns the roster document, preferring the inline
// PLAYERS_JSON value over the PLAYERS_FILE path. The file is re-read on
// every run so roster edits take effect without a restart.
func (c *Config) RosterJSON() ([]byte, error) {
	if c.PlayersJSON != "" {
		return []byte(c.PlayersJSON), nil
	}
	if c.PlayersFile != "" {
		data, err := os.ReadFile(c.PlayersFile)
		if err != nil {
			return nil, fmt.Errorf("reading players file: %w", err)
		}
		return data, nil
	}
	return nil, fmt.Errorf("no roster configured: set PLAYERS_JSON or PLAYERS_FILE")
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

var Module = fx.Provide(Load)
