package config

import (
	"fmt"
	"log/slog"
	"net"
	"strconv"
	"strings"

	"github.com/go-sql-driver/mysql"
)

// Config is the process configuration, read from the environment and
// optionally overridden by command-line flags.
type Config struct {
	Host     string `env:"MYSQL_HOST" envDefault:"localhost"`
	Port     int    `env:"MYSQL_PORT" envDefault:"3306"`
	User     string `env:"MYSQL_USER"`
	Password string `env:"MYSQL_PASSWORD"`
	Database string `env:"MYSQL_DATABASE"`

	// Driver selects the database/sql driver and SQL dialect.
	Driver string `env:"DB_DRIVER" envDefault:"mysql"`
	// ConnectionString, when set, is handed to the driver verbatim.
	ConnectionString string `env:"DB_CONNECTION_STRING"`

	Transport string `env:"MCP_TRANSPORT" envDefault:"stdio"`
	HTTPAddr  string `env:"MCP_HTTP_ADDR" envDefault:"localhost:8081"`
	LogLevel  string `env:"MCP_LOG_LEVEL" envDefault:"info"`

	OTelEndpoint string `env:"OTEL_EXPORTER_OTLP_ENDPOINT"`
}

// Load parses the environment into a Config.
func Load() (Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Addr returns host:port. A host that already carries a port wins over Port.
func (c Config) Addr() string {
	if _, _, err := net.SplitHostPort(c.Host); err == nil {
		return c.Host
	}
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

// DSN returns the data source name to open. An explicit connection string
// is used as is; otherwise a MySQL DSN is assembled from the MYSQL_* fields.
func (c Config) DSN() (string, error) {
	if c.ConnectionString != "" {
		return c.ConnectionString, nil
	}
	if !isMySQL(c.Driver) {
		return "", fmt.Errorf("DB_CONNECTION_STRING is required for driver %q", c.Driver)
	}

	mc := mysql.NewConfig()
	mc.User = c.User
	mc.Passwd = c.Password
	mc.Net = "tcp"
	mc.Addr = c.Addr()
	mc.DBName = c.Database
	mc.ParseTime = true
	return mc.FormatDSN(), nil
}

// DatabaseName returns the active database name. When only a MySQL
// connection string is configured the name is taken from it.
func (c Config) DatabaseName() string {
	if c.Database != "" {
		return c.Database
	}
	if c.ConnectionString != "" && isMySQL(c.Driver) {
		if mc, err := mysql.ParseDSN(c.ConnectionString); err == nil {
			return mc.DBName
		}
	}
	return ""
}

// SlogLevel parses LogLevel. Unknown values fall back to info.
func (c Config) SlogLevel() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(c.LogLevel))); err != nil {
		return slog.LevelInfo
	}
	return level
}

func isMySQL(driver string) bool {
	switch strings.ToLower(driver) {
	case "", "mysql", "mariadb":
		return true
	}
	return false
}
