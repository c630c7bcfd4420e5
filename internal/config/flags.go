package config

import "flag"

var (
	flagConfig     = flag.String("config", "", "Path to config file")
	flagDebug      = flag.Bool("debug", false, "Enable debug logging")
	flagLatitude   = flag.Float64("latitude", 0, "Site latitude in degrees (1-89)")
	flagDay        = flag.Int("day", 0, "Day of year (1-365)")
	flagNoShadows  = flag.Bool("no-shadows", false, "Disable the shadow pass")
	flagAutoCycle  = flag.Bool("cycle", false, "Sweep the sun across the sky automatically")
	flagWindowed   = flag.Bool("windowed", false, "Run in windowed mode")
	flagFullscreen = flag.Bool("fullscreen", false, "Run in fullscreen mode")
	flagWidth      = flag.Int("width", 0, "Window width")
	flagHeight     = flag.Int("height", 0, "Window height")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagLatitude != 0 {
		cfg.Site.LatitudeDeg = *flagLatitude
	}
	if *flagDay != 0 {
		cfg.Site.DayOfYear = *flagDay
	}
	if *flagNoShadows {
		cfg.Shadows.Enabled = false
	}
	if *flagAutoCycle {
		cfg.Site.AutoCycle = true
	}
	if *flagWindowed {
		cfg.Graphics.Fullscreen = false
	}
	if *flagFullscreen {
		cfg.Graphics.Fullscreen = true
	}
	if *flagWidth > 0 {
		cfg.Graphics.Width = *flagWidth
	}
	if *flagHeight > 0 {
		cfg.Graphics.Height = *flagHeight
	}
}
