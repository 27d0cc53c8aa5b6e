package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/ytget/pomodoro-widget/internal/model"
	"github.com/ytget/pomodoro-widget/internal/platform"
)

// DefaultFilePath is where the headless command looks for its config
const DefaultFilePath = "pomodoro.yaml"

// DefaultWidgetID namespaces the slots when the file names no widget
const DefaultWidgetID = "default"

// EnvFiles are loaded, when present, before the config file is expanded
var EnvFiles = []string{".env", ".env.local"}

// File is the headless command's configuration
type File struct {
	// WidgetID namespaces the state slots and labels the metrics
	WidgetID string `yaml:"widget_id"`

	// Duration is the label selected for a fresh widget
	Duration string `yaml:"duration"`

	// StatePath is the SQLite database holding the slots
	StatePath string `yaml:"state_path"`

	// MetricsTextfile, when set, receives Prometheus metrics on exit
	MetricsTextfile string `yaml:"metrics_textfile"`

	Logging FileLogging `yaml:"logging"`
}

// FileLogging configures the slog handler
type FileLogging struct {
	Level  LogLevel  `yaml:"level"`
	Format LogFormat `yaml:"format"`
}

// DefaultFile returns the configuration used when no file exists
func DefaultFile() *File {
	f := &File{}
	f.applyDefaults()
	return f
}

// LoadFile loads the configuration at path. A missing file yields the defaults;
// ${VAR} references are expanded after loading any .env files.
func LoadFile(path string) (*File, error) {
	loadEnvFiles()

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		slog.Debug("Config file not found, using defaults", "path", path)
		return DefaultFile(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	return ParseFile(data)
}

// ParseFile parses, defaults and validates YAML config data
func ParseFile(data []byte) (*File, error) {
	expanded := os.ExpandEnv(string(data))

	var f File
	if err := yaml.Unmarshal([]byte(expanded), &f); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	f.applyDefaults()
	if err := f.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return &f, nil
}

func (f *File) applyDefaults() {
	if f.WidgetID == "" {
		f.WidgetID = DefaultWidgetID
	}
	if f.Duration == "" {
		f.Duration = model.DefaultDurationLabel.String()
	}
	if f.StatePath == "" {
		f.StatePath = platform.DefaultStatePath()
	}
	f.Logging.Level = NormalizeLogLevel(string(f.Logging.Level))
	f.Logging.Format = NormalizeLogFormat(string(f.Logging.Format))
}

// Validate checks the fields defaults cannot repair
func (f *File) Validate() error {
	if _, err := model.ParseDurationLabel(f.Duration); err != nil {
		return fmt.Errorf("duration: %w", err)
	}
	return nil
}

// DurationLabel returns the configured duration
func (f *File) DurationLabel() model.DurationLabel {
	label, err := model.ParseDurationLabel(f.Duration)
	if err != nil {
		return model.DefaultDurationLabel
	}
	return label
}

func loadEnvFiles() {
	for _, path := range EnvFiles {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := godotenv.Load(path); err != nil {
			slog.Warn("Failed to load env file", "path", path, "error", err)
			continue
		}
		slog.Debug("Loaded environment variables", "path", path)
	}
}
