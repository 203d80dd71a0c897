package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Route    RouteConfig    `yaml:"route"`
	HTTP     HTTPConfig     `yaml:"http"`
	Database DatabaseConfig `yaml:"database"`
	Redis    RedisConfig    `yaml:"redis"`
	Kafka    KafkaConfig    `yaml:"kafka"`
}

// RouteConfig describes the single route the reports are built for.
type RouteConfig struct {
	Origin      string `yaml:"origin"`
	Destination string `yaml:"destination"`
	Between     string `yaml:"between"`
	Title       string `yaml:"title"`
}

type HTTPConfig struct {
	Address string `yaml:"address"`
}

type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Name     string `yaml:"name"`
	SSLMode  string `yaml:"ssl_mode"`
}

func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s", d.Host, d.Port, d.User, d.Password, d.Name, d.SSLMode)
}

func (d DatabaseConfig) Enabled() bool {
	return d.Host != ""
}

type RedisConfig struct {
	Addr             string `yaml:"addr"`
	Password         string `yaml:"password"`
	DB               int    `yaml:"db"`
	ReportTTLSeconds int    `yaml:"report_ttl_seconds"`
}

func (r RedisConfig) Enabled() bool {
	return r.Addr != ""
}

type KafkaConfig struct {
	Brokers      []string `yaml:"brokers"`
	ReportsTopic string   `yaml:"reports_topic"`
	GroupID      string   `yaml:"group_id"`
}

func (k KafkaConfig) Enabled() bool {
	return len(k.Brokers) > 0 && k.ReportsTopic != ""
}

// Default returns the configuration used when no config file is given:
// the VVO -> TLV route with every external adapter switched off.
func Default() *Config {
	return &Config{
		Route: RouteConfig{
			Origin:      "VVO",
			Destination: "TLV",
			Between:     "между Владивостоком и Тель-Авивом",
			Title:       "Владивосток - Тель-Авив",
		},
		HTTP: HTTPConfig{Address: ":8080"},
		Database: DatabaseConfig{
			Port:    5432,
			SSLMode: "disable",
		},
		Redis: RedisConfig{ReportTTLSeconds: 300},
		Kafka: KafkaConfig{
			ReportsTopic: "ticket-reports",
			GroupID:      "ticket-reports-worker",
		},
	}
}

func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	var file struct {
		Route RouteConfig `yaml:"route"`
	}
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	cfg.Route.fillLabels(file.Route, Default().Route)

	return cfg, nil
}

// fillLabels replaces labels inherited from the default route when the codes
// were changed. Labels set in the file are kept.
func (r *RouteConfig) fillLabels(file, def RouteConfig) {
	if r.Origin == def.Origin && r.Destination == def.Destination {
		return
	}
	if file.Between == "" {
		r.Between = fmt.Sprintf("между %s и %s", r.Origin, r.Destination)
	}
	if file.Title == "" {
		r.Title = fmt.Sprintf("%s - %s", r.Origin, r.Destination)
	}
}

// FromEnv loads the file named by CONFIG_PATH, or the defaults when it is unset.
func FromEnv() (*Config, error) {
	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		return Default(), nil
	}
	return LoadConfig(cfgPath)
}
