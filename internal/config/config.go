package config

import (
	"fmt"
	"image/color"
	"os"
	"strings"

	"github.com/spf13/viper"

	"flightstrip/internal/strip"
)

// Config holds all configuration for the daemon
type Config struct {
	PixooAddr      string
	Latitude       float64
	Longitude      float64
	SearchRadiusKm float64
	LogoDir        string
	DBPath         string // empty disables the sighting log
	RefreshSeconds int
	FrameSpeedMs   int
	Log            LogConfig
	Colors         ColorsConfig
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string
	Format string
}

// ColorsConfig holds the display palette as "#RRGGBB" strings.
type ColorsConfig struct {
	Text       string
	Accent     string
	Background string
	Box        string
	RouteLine  string
	Plane      string
	Separator  string
	Label      string
}

// Load loads configuration from config file and environment variables
func Load() (*Config, error) {
	v := viper.New()

	// Set defaults
	v.SetDefault("pixoo_addr", "192.168.1.100")
	v.SetDefault("latitude", 52.363)
	v.SetDefault("longitude", 14.060)
	v.SetDefault("search_radius_km", 100.0)
	v.SetDefault("logo_dir", "airline_logos")
	v.SetDefault("db_path", "flightstrip.db")
	v.SetDefault("refresh_seconds", 60)
	v.SetDefault("frame_speed_ms", 300)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("colors.text", "#FFFF00")
	v.SetDefault("colors.accent", "#00BA0F")
	v.SetDefault("colors.background", "#000000")
	v.SetDefault("colors.box", "#454545")
	v.SetDefault("colors.route_line", "#666666")
	v.SetDefault("colors.plane", "#FFFFFF")
	v.SetDefault("colors.separator", "#555555")
	v.SetDefault("colors.label", "#999999")

	// Set config file name and type
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	// Set config file search paths
	v.AddConfigPath("/etc/flightstrip")
	v.AddConfigPath(".")

	// Check for config file path from environment variable
	if configPath := os.Getenv("FLIGHTSTRIP_CONFIG_PATH"); configPath != "" {
		v.SetConfigFile(configPath)
	}

	// Read config file (if it exists)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			// Config file was found but another error occurred
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found is OK - we'll use defaults + env vars
	}

	// Set environment variable prefix
	v.SetEnvPrefix("FLIGHTSTRIP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Build config struct
	cfg := &Config{
		PixooAddr:      v.GetString("pixoo_addr"),
		Latitude:       v.GetFloat64("latitude"),
		Longitude:      v.GetFloat64("longitude"),
		SearchRadiusKm: v.GetFloat64("search_radius_km"),
		LogoDir:        v.GetString("logo_dir"),
		DBPath:         v.GetString("db_path"),
		RefreshSeconds: v.GetInt("refresh_seconds"),
		FrameSpeedMs:   v.GetInt("frame_speed_ms"),
		Log: LogConfig{
			Level:  v.GetString("log.level"),
			Format: v.GetString("log.format"),
		},
		Colors: ColorsConfig{
			Text:       v.GetString("colors.text"),
			Accent:     v.GetString("colors.accent"),
			Background: v.GetString("colors.background"),
			Box:        v.GetString("colors.box"),
			RouteLine:  v.GetString("colors.route_line"),
			Plane:      v.GetString("colors.plane"),
			Separator:  v.GetString("colors.separator"),
			Label:      v.GetString("colors.label"),
		},
	}

	// Validate configuration
	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// Palette parses the configured colors into the compositor's palette.
func (c *Config) Palette() (strip.Palette, error) {
	var p strip.Palette
	fields := []struct {
		dst *color.RGBA
		hex string
	}{
		{&p.Text, c.Colors.Text},
		{&p.Accent, c.Colors.Accent},
		{&p.Background, c.Colors.Background},
		{&p.Box, c.Colors.Box},
		{&p.RouteLine, c.Colors.RouteLine},
		{&p.Plane, c.Colors.Plane},
		{&p.Separator, c.Colors.Separator},
		{&p.Label, c.Colors.Label},
	}
	for _, f := range fields {
		col, err := strip.ParseColor(f.hex)
		if err != nil {
			return strip.Palette{}, err
		}
		*f.dst = col
	}
	return p, nil
}

// validate validates the configuration values
func validate(cfg *Config) error {
	if cfg.PixooAddr == "" {
		return fmt.Errorf("pixoo_addr is required")
	}

	if cfg.Latitude < -90 || cfg.Latitude > 90 {
		return fmt.Errorf("latitude must be between -90 and 90")
	}
	if cfg.Longitude < -180 || cfg.Longitude > 180 {
		return fmt.Errorf("longitude must be between -180 and 180")
	}

	if cfg.SearchRadiusKm <= 0 {
		return fmt.Errorf("search_radius_km must be greater than 0")
	}

	if cfg.RefreshSeconds <= 0 {
		return fmt.Errorf("refresh_seconds must be greater than 0")
	}

	if cfg.FrameSpeedMs <= 0 {
		return fmt.Errorf("frame_speed_ms must be greater than 0")
	}

	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLogLevels[strings.ToLower(cfg.Log.Level)] {
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", cfg.Log.Level)
	}

	validLogFormats := map[string]bool{
		"text": true,
		"json": true,
	}
	if !validLogFormats[strings.ToLower(cfg.Log.Format)] {
		return fmt.Errorf("invalid log format: %s (must be text or json)", cfg.Log.Format)
	}

	for name, hex := range map[string]string{
		"colors.text":       cfg.Colors.Text,
		"colors.accent":     cfg.Colors.Accent,
		"colors.background": cfg.Colors.Background,
		"colors.box":        cfg.Colors.Box,
		"colors.route_line": cfg.Colors.RouteLine,
		"colors.plane":      cfg.Colors.Plane,
		"colors.separator":  cfg.Colors.Separator,
		"colors.label":      cfg.Colors.Label,
	} {
		if _, err := strip.ParseColor(hex); err != nil {
			return fmt.Errorf("invalid %s: %w", name, err)
		}
	}

	return nil
}
