package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Scheduling assistant specifics
	Telegram       TelegramConfig
	Gemini         GeminiConfig
	GoogleCalendar GoogleCalendarConfig
	Assistant      AssistantConfig
	Reminder       ReminderConfig
	Supplement     SupplementConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type TelegramConfig struct {
	BotToken      string
	WebhookURL    string
	AllowedUserID int64 // the single authorized Telegram user id
}

type GeminiConfig struct {
	APIKey string
	Model  string
}

type GoogleCalendarConfig struct {
	CredentialsPath string
	TokenPath       string
	CalendarID      string
}

// AssistantConfig tunes the conversational pipeline.
type AssistantConfig struct {
	Timezone             string
	DefaultEventDuration time.Duration // applied when a create intent lacks an end
	SessionTTL           time.Duration // wizard inactivity window
	ResolveWindowDays    int           // lookback/lookahead for delete/complete matching
	RateLimitPerMin      int           // per-sender message budget
	BackendTimeout       time.Duration // per external call (calendar, LLM)
}

type ReminderConfig struct {
	Enabled      bool
	PendingSpec  string // cron spec for pending-events pings
	RolloverSpec string // cron spec for the end-of-day rollover
}

type SupplementConfig struct {
	Enabled   bool
	StorePath string
	Items     []SupplementItem
}

// SupplementItem is one configured supplement: taken on the listed weekdays
// (lun..dom, or "diario") at the given HH:MM local time.
type SupplementItem struct {
	Name string
	Days []string
	Time string
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Telegram
	cfg.Telegram.BotToken = viper.GetString("telegram.bot_token")
	cfg.Telegram.WebhookURL = viper.GetString("telegram.webhook_url")
	cfg.Telegram.AllowedUserID = viper.GetInt64("telegram.allowed_user_id")
	if tgToken := viper.GetString("telegram_bot_token"); tgToken != "" {
		cfg.Telegram.BotToken = tgToken
	}
	if tgUser := viper.GetInt64("telegram_user_id"); tgUser != 0 {
		cfg.Telegram.AllowedUserID = tgUser
	}

	// Gemini
	cfg.Gemini.APIKey = viper.GetString("gemini.api_key")
	cfg.Gemini.Model = viper.GetString("gemini.model")
	if geminiKey := viper.GetString("gemini_api_key"); geminiKey != "" {
		cfg.Gemini.APIKey = geminiKey
	}

	// Google Calendar
	cfg.GoogleCalendar.CredentialsPath = viper.GetString("google_calendar.credentials_path")
	cfg.GoogleCalendar.TokenPath = viper.GetString("google_calendar.token_path")
	cfg.GoogleCalendar.CalendarID = viper.GetString("google_calendar.calendar_id")
	if googleCreds := viper.GetString("google_calendar_credentials"); googleCreds != "" {
		cfg.GoogleCalendar.CredentialsPath = googleCreds
	}

	// Assistant pipeline
	cfg.Assistant.Timezone = viper.GetString("assistant.timezone")
	cfg.Assistant.DefaultEventDuration = viper.GetDuration("assistant.default_event_duration")
	cfg.Assistant.SessionTTL = viper.GetDuration("assistant.session_ttl")
	cfg.Assistant.ResolveWindowDays = viper.GetInt("assistant.resolve_window_days")
	cfg.Assistant.RateLimitPerMin = viper.GetInt("assistant.rate_limit_per_min")
	cfg.Assistant.BackendTimeout = viper.GetDuration("assistant.backend_timeout")
	if tz := viper.GetString("timezone"); tz != "" {
		cfg.Assistant.Timezone = tz
	}

	// Reminders
	cfg.Reminder.Enabled = viper.GetBool("reminder.enabled")
	cfg.Reminder.PendingSpec = viper.GetString("reminder.pending_spec")
	cfg.Reminder.RolloverSpec = viper.GetString("reminder.rollover_spec")

	// Supplements
	cfg.Supplement.Enabled = viper.GetBool("supplement.enabled")
	cfg.Supplement.StorePath = viper.GetString("supplement.store_path")
	if viper.IsSet("supplement.items") {
		itemsRaw := viper.Get("supplement.items")
		if itemsList, ok := itemsRaw.([]interface{}); ok {
			for _, it := range itemsList {
				itemMap, ok := it.(map[string]interface{})
				if !ok {
					continue
				}
				item := SupplementItem{
					Name: getStringFromMap(itemMap, "name"),
					Days: getStringSliceFromMap(itemMap, "days"),
					Time: getStringFromMap(itemMap, "time"),
				}
				cfg.Supplement.Items = append(cfg.Supplement.Items, item)
			}
		}
	}

	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	viper.SetDefault("gemini.model", "gemini-2.5-flash")
	viper.SetDefault("google_calendar.calendar_id", "primary")
	viper.SetDefault("google_calendar.token_path", "token.json")

	viper.SetDefault("assistant.timezone", "America/Argentina/Buenos_Aires")
	viper.SetDefault("assistant.default_event_duration", "1h")
	viper.SetDefault("assistant.session_ttl", "10m")
	viper.SetDefault("assistant.resolve_window_days", 30)
	viper.SetDefault("assistant.rate_limit_per_min", 20)
	viper.SetDefault("assistant.backend_timeout", "15s")

	viper.SetDefault("reminder.enabled", true)
	viper.SetDefault("reminder.pending_spec", "30 6-22/2 * * *")
	viper.SetDefault("reminder.rollover_spec", "55 23 * * *")

	viper.SetDefault("supplement.enabled", false)
	viper.SetDefault("supplement.store_path", "supplements.json")
}

func validate(cfg *Config) error {
	if cfg.Assistant.DefaultEventDuration <= 0 {
		return fmt.Errorf("assistant.default_event_duration must be positive")
	}
	if cfg.Assistant.SessionTTL <= 0 {
		return fmt.Errorf("assistant.session_ttl must be positive")
	}
	if cfg.Assistant.ResolveWindowDays <= 0 {
		return fmt.Errorf("assistant.resolve_window_days must be positive")
	}
	if cfg.Telegram.BotToken != "" && cfg.Telegram.AllowedUserID == 0 {
		return fmt.Errorf("telegram.allowed_user_id is required when telegram.bot_token is set")
	}

	for i, item := range cfg.Supplement.Items {
		if item.Name == "" {
			return fmt.Errorf("supplement item %d: name is required", i)
		}
		if item.Time == "" {
			return fmt.Errorf("supplement item %s: time is required", item.Name)
		}
	}
	return nil
}

// Helper functions to safely extract values from map[string]interface{}
func getStringFromMap(m map[string]interface{}, key string) string {
	if val, ok := m[key]; ok {
		if str, ok := val.(string); ok {
			return str
		}
	}
	return ""
}

func getStringSliceFromMap(m map[string]interface{}, key string) []string {
	val, ok := m[key]
	if !ok {
		return nil
	}
	raw, ok := val.([]interface{})
	if !ok {
		return nil
	}
	out := make([]string, 0, len(raw))
	for _, v := range raw {
		if s, ok := v.(string); ok {
			out = append(out, s)
		}
	}
	return out
}
