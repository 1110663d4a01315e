package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Resource   ResourceConfig   `yaml:"resource"`
	Input      InputConfig      `yaml:"input"`
	Normalizer NormalizerConfig `yaml:"normalizer"`
	Logger     LoggerConfig     `yaml:"logger"`
	Database   DatabaseConfig   `yaml:"database"`
	Report     ReportConfig     `yaml:"report"`
}

func LoadConfig(path string) (Config, error) {
	cfg := Config{}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, err
	}

	return cfg, nil
}
