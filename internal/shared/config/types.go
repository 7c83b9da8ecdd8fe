// Package config defines the configuration types shared across the service.
package config

import "fmt"

type ServerConfig struct {
	Host           string   `mapstructure:"host"`
	Port           int      `mapstructure:"port"`
	Mode           string   `mapstructure:"mode"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

func (c *ServerConfig) GetAddr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

type DatabaseConfig struct {
	// Driver selects the backing store: "sqlite" or "mysql".
	Driver string `mapstructure:"driver"`

	// Path is the sqlite database file location.
	Path string `mapstructure:"path"`

	// MySQL connection settings, used when Driver is "mysql".
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
	Database string `mapstructure:"database"`

	MaxIdleConns    int `mapstructure:"max_idle_conns"`
	MaxOpenConns    int `mapstructure:"max_open_conns"`
	ConnMaxLifetime int `mapstructure:"conn_max_lifetime"`
}

type StorageConfig struct {
	// FilesDir is the root directory for attachment files. Each ticket
	// gets its own subdirectory named by the ticket ID.
	FilesDir string `mapstructure:"files_dir"`
}

type LoggerConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	OutputPath string `mapstructure:"output_path"`
}
