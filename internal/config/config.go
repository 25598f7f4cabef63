package config

import (
	"os"
	"path/filepath"
)

// Config holds the application settings.
type Config struct {
	// DataPath is the assessment file to load (JSON export or SQLite db).
	DataPath string `koanf:"data_path"`
	// DataFormat selects the loader: json, sqlite, or auto.
	DataFormat string `koanf:"data_format"`
	// ReportPath is the base path report pages are written under.
	ReportPath string `koanf:"report_path"`
	// FontPath optionally points at a .ttf used for report text.
	FontPath string `koanf:"font_path"`
	// LogPath is where the JSON log file goes.
	LogPath string `koanf:"log_path"`
	// LogLevel is debug, info, warn, or error.
	LogLevel string `koanf:"log_level"`
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		DataFormat: "auto",
		ReportPath: "skill_report",
		LogPath:    defaultLogPath(),
		LogLevel:   "info",
	}
}

func defaultLogPath() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		return "skillfolio.log"
	}
	return filepath.Join(dir, "skillfolio", "skillfolio.log")
}
