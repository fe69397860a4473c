package config

import "time"

// DefaultConfig returns the configuration defaults.
func DefaultConfig() *Config {
	return &Config{
		Model: ModelConfig{
			Name:            "gemini-2.5-flash",
			ImageModel:      "imagen-4.0-generate-001",
			SpeechModel:     "gemini-2.5-flash-preview-tts",
			Voice:           "Kore",
			Temperature:     0.7,
			MaxOutputTokens: 8192,
		},
		Timeout: TimeoutConfig{
			Request:    60 * time.Second,
			StreamIdle: 30 * time.Second,
			Location:   10 * time.Second,
		},
		Picker: PickerConfig{
			Patterns: []string{"*.{jpg,jpeg,png,webp,gif,heic}"},
		},
		Speech: SpeechConfig{
			Command: "whisper-cli",
		},
		Emergency: EmergencyConfig{
			Helpline: "+16199600598",
		},
		Logging: LoggingConfig{
			Level: "info",
			File:  false,
		},
	}
}
