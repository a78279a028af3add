package config

import (
	"flag"
	"time"
)

var (
	flagConfig     = flag.String("config", "", "Path to config file")
	flagDebug      = flag.Bool("debug", false, "Enable debug logging")
	flagWindowed   = flag.Bool("windowed", false, "Run in windowed mode")
	flagFullscreen = flag.Bool("fullscreen", false, "Run in fullscreen mode")
	flagWidth      = flag.Int("width", 0, "Window width")
	flagHeight     = flag.Int("height", 0, "Window height")
	flagRiseRate   = flag.Float64("rise-rate", 0, "Reveal rise rate (progress/second)")
	flagFallRate   = flag.Float64("fall-rate", 0, "Reveal fall rate (progress/second)")
	flagDebounce   = flag.Duration("debounce", 0, "Pointer debounce window")
	flagScene      = flag.String("scene", "", "Path to scene manifest")
	flagBundles    = flag.String("bundles", "", "Path to region content table")
	flagWatch      = flag.Bool("watch", false, "Reload region content when the file changes")
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
	if *flagRiseRate > 0 {
		cfg.Interaction.RiseRate = *flagRiseRate
	}
	if *flagFallRate > 0 {
		cfg.Interaction.FallRate = *flagFallRate
	}
	if *flagDebounce > time.Duration(0) {
		cfg.Interaction.Debounce = *flagDebounce
	}
	if *flagScene != "" {
		cfg.Content.ScenePath = *flagScene
	}
	if *flagBundles != "" {
		cfg.Content.BundlesPath = *flagBundles
	}
	if *flagWatch {
		cfg.Content.Watch = true
	}
}
