// Package config loads the service configuration from a YAML file.
package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds every runtime setting. Use real config tooling (e.g. Viper) in
// production.
type Config struct {
	HTTPPort          int      `yaml:"HTTP_PORT"`
	DBHost            string   `yaml:"DB_HOST"`
	DBPort            int      `yaml:"DB_PORT"`
	DBUser            string   `yaml:"DB_USER"`
	DBPassword        string   `yaml:"DB_PASSWORD"`
	DBName            string   `yaml:"DB_NAME"`
	DBSSLMode         string   `yaml:"DB_SSLMODE"`
	KafkaBrokers      []string `yaml:"KAFKA_BROKERS"`
	Topic             string   `yaml:"TOPIC"`
	JWTSecret         string   `yaml:"JWT_SECRET"`
	PrisonRegisterURL string   `yaml:"PRISON_REGISTER_URL"`
	// OutboundEventsEnabled switches event publishing on or off globally.
	OutboundEventsEnabled bool `yaml:"OUTBOUND_EVENTS_ENABLED"`
	// DisabledEvents lists event kinds dropped even when publishing is on.
	DisabledEvents []string `yaml:"DISABLED_EVENTS"`
}

// Load reads and parses the YAML config file at the given path.
func Load(path string) (*Config, error) {
	file, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg Config
	if err := yaml.Unmarshal(file, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
