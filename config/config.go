// Package config handles run configuration loading.
package config

// Config holds all run settings.
type Config struct {
	Output  OutputConfig  `yaml:"output"`
	Fill    bool          `yaml:"fill"`
	Logging LoggingConfig `yaml:"logging"`
}

// OutputConfig holds where and under what base name component files are
// written.
type OutputConfig struct {
	Dir      string `yaml:"dir"`
	BaseName string `yaml:"base_name"`
	DumpOBJ  string `yaml:"dump_obj"` // optional post-repair OBJ dump path
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Output: OutputConfig{
			Dir:      ".",
			BaseName: "component",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}
