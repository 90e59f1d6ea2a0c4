package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	API      APIConfig
	Map      MapConfig
	Location LocationConfig
	Stub     StubConfig
	Log      LogConfig
}

type APIConfig struct {
	BaseURL        string
	RequestTimeout time.Duration
}

type MapConfig struct {
	// Fallback viewport shown when the user's position is unknown.
	FallbackLat      float64
	FallbackLon      float64
	FallbackLatDelta float64
	FallbackLonDelta float64

	// Zoom span used when centring on the user or a search result.
	UserZoomDelta float64

	AnimationDuration time.Duration
}

type LocationConfig struct {
	FixTimeout time.Duration
}

type StubConfig struct {
	Host string
	Port int
}

type LogConfig struct {
	Level string
}

func Load() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	cfg := &Config{
		API: APIConfig{
			BaseURL:        viper.GetString("API_BASE_URL"),
			RequestTimeout: time.Duration(viper.GetInt("API_TIMEOUT")) * time.Second,
		},
		Map: MapConfig{
			FallbackLat:       viper.GetFloat64("FALLBACK_LAT"),
			FallbackLon:       viper.GetFloat64("FALLBACK_LON"),
			FallbackLatDelta:  viper.GetFloat64("FALLBACK_LAT_DELTA"),
			FallbackLonDelta:  viper.GetFloat64("FALLBACK_LON_DELTA"),
			UserZoomDelta:     viper.GetFloat64("USER_ZOOM_DELTA"),
			AnimationDuration: time.Duration(viper.GetInt("ANIMATION_DURATION_MS")) * time.Millisecond,
		},
		Location: LocationConfig{
			FixTimeout: time.Duration(viper.GetInt("LOCATION_FIX_TIMEOUT")) * time.Second,
		},
		Stub: StubConfig{
			Host: viper.GetString("STUB_HOST"),
			Port: viper.GetInt("STUB_PORT"),
		},
		Log: LogConfig{
			Level: viper.GetString("LOG_LEVEL"),
		},
	}

	// Set default values if not provided
	if cfg.API.BaseURL == "" {
		cfg.API.BaseURL = "http://localhost:5001"
	}
	if cfg.API.RequestTimeout == 0 {
		cfg.API.RequestTimeout = 10 * time.Second
	}
	if cfg.Map.FallbackLat == 0 && cfg.Map.FallbackLon == 0 {
		// Paris city centre, the default viewport of the map screen.
		cfg.Map.FallbackLat = 48.8566
		cfg.Map.FallbackLon = 2.3522
	}
	if cfg.Map.FallbackLatDelta == 0 {
		cfg.Map.FallbackLatDelta = 0.0922
	}
	if cfg.Map.FallbackLonDelta == 0 {
		cfg.Map.FallbackLonDelta = 0.0421
	}
	if cfg.Map.UserZoomDelta == 0 {
		cfg.Map.UserZoomDelta = 0.01
	}
	if cfg.Map.AnimationDuration == 0 {
		cfg.Map.AnimationDuration = 1000 * time.Millisecond
	}
	if cfg.Location.FixTimeout == 0 {
		cfg.Location.FixTimeout = 15 * time.Second
	}
	if cfg.Stub.Port == 0 {
		cfg.Stub.Port = 5001
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}

	return cfg, nil
}

func (c *Config) GetStubAddr() string {
	return fmt.Sprintf("%s:%d", c.Stub.Host, c.Stub.Port)
}
