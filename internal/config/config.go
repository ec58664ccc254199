package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App        AppConfig        `mapstructure:"app"`
	Server     ServerConfig     `mapstructure:"server"`
	Log        LogConfig        `mapstructure:"log"`
	DB         DBConfig         `mapstructure:"db"`
	Cron       CronConfig       `mapstructure:"cron"`
	Schedule   ScheduleConfig   `mapstructure:"schedule"`
	Sportsbook SportsbookConfig `mapstructure:"sportsbook"`
	News       NewsConfig       `mapstructure:"news"`
	AI         AIConfig         `mapstructure:"ai"`
	Settlement SettlementConfig `mapstructure:"settlement"`
}

type AppConfig struct {
	Env string `mapstructure:"env"`
}

type ServerConfig struct {
	HTTPAddr string `mapstructure:"http_addr"`
}

type LogConfig struct {
	Level             string `mapstructure:"level"`
	Encoding          string `mapstructure:"encoding"`
	Development       bool   `mapstructure:"development"`
	Sampling          bool   `mapstructure:"sampling"`
	DisableCaller     bool   `mapstructure:"disable_caller"`
	DisableStacktrace bool   `mapstructure:"disable_stacktrace"`
}

type DBConfig struct {
	DSN             string        `mapstructure:"dsn"`
	MaxOpenConns    int           `mapstructure:"max_open_conns"`
	MaxIdleConns    int           `mapstructure:"max_idle_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
	ConnMaxIdleTime time.Duration `mapstructure:"conn_max_idle_time"`
}

type CronConfig struct {
	Enabled         bool   `mapstructure:"enabled"`
	GamesRefresh    string `mapstructure:"games_refresh"`
	OddsRefresh     string `mapstructure:"odds_refresh"`
	PropsRefresh    string `mapstructure:"props_refresh"`
	NewsRefresh     string `mapstructure:"news_refresh"`
	AnalysisCleanup string `mapstructure:"analysis_cleanup"`
}

// ScheduleConfig points at the league schedule and score feed.
type ScheduleConfig struct {
	BaseURL   string        `mapstructure:"base_url"`
	Timeout   time.Duration `mapstructure:"timeout"`
	DaysAhead int           `mapstructure:"days_ahead"`
}

type SportsbookConfig struct {
	Books []BookConfig `mapstructure:"books"`
}

type BookConfig struct {
	Name      string        `mapstructure:"name"`
	BaseURL   string        `mapstructure:"base_url"`
	APIKeyEnv string        `mapstructure:"api_key_env"`
	Timeout   time.Duration `mapstructure:"timeout"`
}

type NewsConfig struct {
	Timeout      time.Duration      `mapstructure:"timeout"`
	LookbackDays int                `mapstructure:"lookback_days"`
	Sources      []NewsSourceConfig `mapstructure:"sources"`
}

type NewsSourceConfig struct {
	Name         string `mapstructure:"name"`
	FeedURL      string `mapstructure:"feed_url"`
	BodySelector string `mapstructure:"body_selector"`
}

type AIConfig struct {
	APIKeyEnv   string        `mapstructure:"api_key_env"`
	Model       string        `mapstructure:"model"`
	MaxTokens   int           `mapstructure:"max_tokens"`
	Temperature float64       `mapstructure:"temperature"`
	CacheTTL    time.Duration `mapstructure:"cache_ttl"`
	Timeout     time.Duration `mapstructure:"timeout"`
}

type SettlementConfig struct {
	Enabled      bool          `mapstructure:"enabled"`
	ScanInterval time.Duration `mapstructure:"scan_interval"`
}

func Load(path string, envOnly bool) (Config, error) {
	v := viper.New()
	v.SetEnvPrefix("PL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	v.AutomaticEnv()
	v.SetDefault("app.env", "dev")
	v.SetDefault("server.http_addr", ":8080")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.encoding", "console")
	v.SetDefault("log.development", true)
	v.SetDefault("log.sampling", false)
	v.SetDefault("log.disable_caller", false)
	v.SetDefault("log.disable_stacktrace", false)
	v.SetDefault("db.dsn", "puckline.db")
	// sqlite serializes writers; a single open conn avoids SQLITE_BUSY.
	v.SetDefault("db.max_open_conns", 1)
	v.SetDefault("db.max_idle_conns", 1)
	v.SetDefault("db.conn_max_lifetime", "30m")
	v.SetDefault("db.conn_max_idle_time", "5m")
	v.SetDefault("cron.enabled", true)
	v.SetDefault("cron.games_refresh", "@every 1h")
	v.SetDefault("cron.odds_refresh", "@every 10m")
	v.SetDefault("cron.props_refresh", "@every 30m")
	v.SetDefault("cron.news_refresh", "@every 15m")
	v.SetDefault("cron.analysis_cleanup", "@every 1h")
	v.SetDefault("schedule.base_url", "https://api-web.nhle.com/v1")
	v.SetDefault("schedule.timeout", "15s")
	v.SetDefault("schedule.days_ahead", 7)
	v.SetDefault("news.timeout", "30s")
	v.SetDefault("news.lookback_days", 7)
	v.SetDefault("ai.api_key_env", "ANTHROPIC_API_KEY")
	v.SetDefault("ai.model", "claude-3-opus-20240229")
	v.SetDefault("ai.max_tokens", 4000)
	v.SetDefault("ai.temperature", 0.2)
	v.SetDefault("ai.cache_ttl", "24h")
	v.SetDefault("ai.timeout", "60s")
	v.SetDefault("settlement.enabled", true)
	v.SetDefault("settlement.scan_interval", "5m")

	if !envOnly {
		if err := v.ReadInConfig(); err != nil {
			return Config{}, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, err
	}

	return cfg, nil
}
