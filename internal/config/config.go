package config

import "github.com/kelseyhightower/envconfig"

// Config holds application configuration loaded from environment variables.
type Config struct {
	BotToken  string `envconfig:"BOT_TOKEN" required:"true"`
	DataDir   string `envconfig:"DATA_DIR" default:"./data"`
	AssetsDir string `envconfig:"ASSETS_DIR" default:"./assets"`
	// Timezone is the single civil timezone all "today"/"now" decisions are
	// made in, regardless of where the process runs.
	Timezone   string `envconfig:"TZ_NAME" default:"Asia/Tashkent"`
	LogLevel   string `envconfig:"LOG_LEVEL" default:"info"` // debug|info|warn|error
	HTTPAddr   string `envconfig:"HTTP_ADDR" default:":8080"`
	PrayerAPI  string `envconfig:"PRAYER_API_URL" default:"https://api.aladhan.com"`
	GeocodeAPI string `envconfig:"GEOCODE_API_URL" default:"https://nominatim.openstreetmap.org"`
}

// Load reads environment variables into Config.
func Load() (Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
