package config

type ResourceConfig struct {
	Path string `yaml:"path"`
}

type InputConfig struct {
	Path string `yaml:"path"`
}

type NormalizerConfig struct {
	Workers int      `yaml:"workers"`
	Terms   []string `yaml:"terms"`
}

type DatabaseConfig struct {
	DSN string `yaml:"dsn"`
}

type ReportConfig struct {
	Dir string `yaml:"dir"`
}

type LoggerConfig struct {
	Level      string `yaml:"level"`
	FilePath   string `yaml:"file_path"`
	Production bool   `yaml:"production"`
}
