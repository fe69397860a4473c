package config

import "time"

// Config represents the main application configuration.
type Config struct {
	API       APIConfig       `yaml:"api"`
	Model     ModelConfig     `yaml:"model"`
	Timeout   TimeoutConfig   `yaml:"timeout"`
	Picker    PickerConfig    `yaml:"picker"`
	Speech    SpeechConfig    `yaml:"speech"`
	Emergency EmergencyConfig `yaml:"emergency"`
	Logging   LoggingConfig   `yaml:"logging"`

	// Runtime version information
	Version string `yaml:"-"`
}

// APIConfig holds the Gemini API credential.
type APIConfig struct {
	APIKey string `yaml:"api_key,omitempty"`
}

// ModelConfig holds model selection for each capability.
type ModelConfig struct {
	Name            string  `yaml:"name"`              // text + vision model
	ImageModel      string  `yaml:"image_model"`       // trip summary image generation
	SpeechModel     string  `yaml:"speech_model"`      // text-to-speech
	Voice           string  `yaml:"voice"`             // prebuilt TTS voice name
	Temperature     float32 `yaml:"temperature"`
	MaxOutputTokens int32   `yaml:"max_output_tokens"`
}

// TimeoutConfig makes transport deadlines explicit instead of
// inheriting whatever the SDK defaults to.
type TimeoutConfig struct {
	Request    time.Duration `yaml:"request"`     // each synchronous provider call
	StreamIdle time.Duration `yaml:"stream_idle"` // max gap between stream chunks
	Location   time.Duration `yaml:"location"`    // one-shot location fix
}

// PickerConfig configures the watched drop directory that stands in for
// the camera/file picker.
type PickerConfig struct {
	WatchDir string   `yaml:"watch_dir"`
	Patterns []string `yaml:"patterns"` // doublestar globs, e.g. "*.{jpg,jpeg,png,webp}"
}

// SpeechConfig configures the external transcriber used for voice
// translation. An empty or missing command means speech recognition is
// unsupported on this machine.
type SpeechConfig struct {
	Command  string   `yaml:"command"`
	Args     []string `yaml:"args"`
	Language string   `yaml:"language"`
}

// EmergencyConfig holds the fixed outbound helpline number.
type EmergencyConfig struct {
	Helpline string `yaml:"helpline"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level string `yaml:"level"`
	File  bool   `yaml:"file"`
}

// Error types for configuration validation.
type ConfigError string

func (e ConfigError) Error() string {
	return string(e)
}

// ErrMissingAuth indicates no API key was configured.
const ErrMissingAuth = ConfigError("Gemini API key required. Set GEMINI_API_KEY or api.api_key in the config file")

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.API.APIKey == "" {
		return ErrMissingAuth
	}
	return nil
}
