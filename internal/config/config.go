// Package config handles viewer configuration loading and management.
package config

// Config holds all viewer settings.
type Config struct {
	Graphics GraphicsConfig `yaml:"graphics"`
	Shadows  ShadowConfig   `yaml:"shadows"`
	Site     SiteConfig     `yaml:"site"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// GraphicsConfig holds display and rendering settings.
type GraphicsConfig struct {
	Width      int  `yaml:"width"`
	Height     int  `yaml:"height"`
	Fullscreen bool `yaml:"fullscreen"`
	VSync      bool `yaml:"vsync"`
}

// ShadowConfig holds shadow map settings.
type ShadowConfig struct {
	Enabled    bool    `yaml:"enabled"`
	Resolution int     `yaml:"resolution"`
	Bias       float32 `yaml:"bias"`
	Darkness   float32 `yaml:"darkness"`
}

// SiteConfig places the dial on the globe and in the year, and sets the
// initial sun position.
type SiteConfig struct {
	LatitudeDeg  float64 `yaml:"latitude_deg"`
	DayOfYear    int     `yaml:"day_of_year"`
	AzimuthDeg   float64 `yaml:"azimuth_deg"`
	ElevationDeg float64 `yaml:"elevation_deg"`
	AutoCycle    bool    `yaml:"auto_cycle"`
	CycleSpeed   float64 `yaml:"cycle_speed"` // azimuth degrees per second
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values: a mid-latitude
// site on the June solstice, mid-morning sun.
func Default() *Config {
	return &Config{
		Graphics: GraphicsConfig{
			Width:      1280,
			Height:     720,
			Fullscreen: false,
			VSync:      true,
		},
		Shadows: ShadowConfig{
			Enabled:    true,
			Resolution: 2048,
			Bias:       0.002,
			Darkness:   0.35,
		},
		Site: SiteConfig{
			LatitudeDeg:  48.0,
			DayOfYear:    172,
			AzimuthDeg:   135.0,
			ElevationDeg: 45.0,
			AutoCycle:    false,
			CycleSpeed:   10.0,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// Normalize clamps out-of-range values to something the viewer can run
// with. A malformed config file should degrade, not crash.
func (c *Config) Normalize() {
	if c.Site.DayOfYear < 1 {
		c.Site.DayOfYear = 1
	}
	if c.Site.DayOfYear > 365 {
		c.Site.DayOfYear = 365
	}
	if c.Site.LatitudeDeg < 1 {
		c.Site.LatitudeDeg = 1
	}
	if c.Site.LatitudeDeg > 89 {
		c.Site.LatitudeDeg = 89
	}
	for c.Site.AzimuthDeg < 0 {
		c.Site.AzimuthDeg += 360
	}
	for c.Site.AzimuthDeg >= 360 {
		c.Site.AzimuthDeg -= 360
	}
	if c.Site.ElevationDeg > 90 {
		c.Site.ElevationDeg = 90
	}
	if c.Site.ElevationDeg < -10 {
		c.Site.ElevationDeg = -10
	}
	if c.Shadows.Resolution <= 0 {
		c.Shadows.Resolution = 2048
	}
	if c.Graphics.Width < 1 {
		c.Graphics.Width = 1280
	}
	if c.Graphics.Height < 1 {
		c.Graphics.Height = 720
	}
}
