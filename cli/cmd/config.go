package cmd

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the optional .parinfer.yaml project file. Flags always take
// precedence; the file only supplies a default when a flag wasn't passed.
type Config struct {
	CommentChars string `yaml:"commentChars"`
}

func loadedConfig() (Config, bool) {
	b, err := os.ReadFile(".parinfer.yaml")
	if err != nil {
		return Config{}, false
	}
	var cfg Config
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return Config{}, false
	}
	return cfg, true
}
