// Package config loads the service configuration from a YAML file, with
// environment variables (optionally read from a .env file) taking
// precedence over file values.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gartstein/hrms/internal/hrms/db"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// DefaultPath is used when HRMS_CONFIG is not set.
var DefaultPath = filepath.Join("internal", "hrms", "config", "config.yaml")

// Config struct for YAML configuration
type Config struct {
	HTTPPort     int      `yaml:"HTTP_PORT"`
	GRPCPort     int      `yaml:"GRPC_PORT"`
	DBDriver     string   `yaml:"DB_DRIVER"`
	DatabaseURL  string   `yaml:"DATABASE_URL"`
	DBHost       string   `yaml:"DB_HOST"`
	DBPort       int      `yaml:"DB_PORT"`
	DBUser       string   `yaml:"DB_USER"`
	DBPassword   string   `yaml:"DB_PASSWORD"`
	DBName       string   `yaml:"DB_NAME"`
	DBSSLMode    string   `yaml:"DB_SSLMODE"`
	DBPath       string   `yaml:"DB_PATH"`
	KafkaBrokers []string `yaml:"KAFKA_BROKERS"`
	Topic        string   `yaml:"TOPIC"`
	GroupID      string   `yaml:"GROUP_ID"`
}

func defaults() Config {
	return Config{
		HTTPPort:  8000,
		GRPCPort:  9000,
		DBDriver:  db.DriverSQLite,
		DBPort:    5432,
		DBSSLMode: "disable",
		DBPath:    "hrms.db",
		Topic:     "hrms.events",
		GroupID:   "hrms-auditlog",
	}
}

// Load reads the YAML file at path (a missing file is not an error), then
// applies .env and environment overrides.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	cfg := defaults()
	file, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(file, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	case !os.IsNotExist(err):
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	if err := cfg.applyEnv(os.LookupEnv); err != nil {
		return nil, err
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Path returns the config file location, honouring HRMS_CONFIG.
func Path() string {
	if p := os.Getenv("HRMS_CONFIG"); p != "" {
		return p
	}
	return DefaultPath
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	strs := map[string]*string{
		"DB_DRIVER":    &c.DBDriver,
		"DATABASE_URL": &c.DatabaseURL,
		"DB_HOST":      &c.DBHost,
		"DB_USER":      &c.DBUser,
		"DB_PASSWORD":  &c.DBPassword,
		"DB_NAME":      &c.DBName,
		"DB_SSLMODE":   &c.DBSSLMode,
		"DB_PATH":      &c.DBPath,
		"TOPIC":        &c.Topic,
		"GROUP_ID":     &c.GroupID,
	}
	for key, dst := range strs {
		if v, ok := lookup(key); ok {
			*dst = v
		}
	}

	ints := map[string]*int{
		"HTTP_PORT": &c.HTTPPort,
		"GRPC_PORT": &c.GRPCPort,
		"DB_PORT":   &c.DBPort,
	}
	for key, dst := range ints {
		v, ok := lookup(key)
		if !ok {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid %s %q: %w", key, v, err)
		}
		*dst = n
	}

	if v, ok := lookup("KAFKA_BROKERS"); ok {
		c.KafkaBrokers = splitList(v)
	}

	// Hosted platforms hand out postgres:// URLs.
	if c.DatabaseURL != "" {
		c.DBDriver = db.DriverPostgres
	}
	return nil
}

func (c *Config) validate() error {
	switch c.DBDriver {
	case db.DriverPostgres, db.DriverSQLite:
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q", c.DBDriver)
	}
	if c.HTTPPort <= 0 || c.GRPCPort <= 0 {
		return fmt.Errorf("HTTP_PORT and GRPC_PORT must be positive")
	}
	return nil
}

// Database returns the repository configuration.
func (c *Config) Database() *db.Config {
	return &db.Config{
		Driver:   c.DBDriver,
		URL:      c.DatabaseURL,
		Host:     c.DBHost,
		Port:     c.DBPort,
		User:     c.DBUser,
		Password: c.DBPassword,
		DBName:   c.DBName,
		SSLMode:  c.DBSSLMode,
		Path:     c.DBPath,
	}
}

// KafkaEnabled reports whether events should be published to Kafka.
func (c *Config) KafkaEnabled() bool {
	return len(c.KafkaBrokers) > 0
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
