package config

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Database DatabaseConfig `mapstructure:"database"`
	Output   OutputConfig   `mapstructure:"output"`
	Schema   SchemaConfig   `mapstructure:"schema"`
	Stubs    StubsConfig    `mapstructure:"stubs"`
}

type DatabaseConfig struct {
	URL     string `mapstructure:"url"`
	EnvFile string `mapstructure:"env_file"`
}

type OutputConfig struct {
	BasePath string                `mapstructure:"base_path"`
	Builders []string              `mapstructure:"builders"`
	Paths    map[string]PathConfig `mapstructure:"paths"`
}

// PathConfig overrides where one build type is written.
type PathConfig struct {
	Dir       string `mapstructure:"dir"`
	Namespace string `mapstructure:"namespace"`
}

type SchemaConfig struct {
	Table         string   `mapstructure:"table"`
	Name          string   `mapstructure:"name"`
	File          string   `mapstructure:"file"`
	All           bool     `mapstructure:"all"`
	ExcludeTables []string `mapstructure:"exclude_tables"`
	IncludeTables []string `mapstructure:"include_tables"`
}

type StubsConfig struct {
	Dir string `mapstructure:"dir"`
}

// DatabaseURLFromEnvFile builds a connection URL from the DB_* variables of
// a Laravel .env file.
func DatabaseURLFromEnvFile(path string) (string, error) {
	env, err := godotenv.Read(path)
	if err != nil {
		return "", fmt.Errorf("failed to read env file: %w", err)
	}

	return DatabaseURLFromEnv(env)
}

func DatabaseURLFromEnv(env map[string]string) (string, error) {
	if dbURL := env["DATABASE_URL"]; dbURL != "" {
		return dbURL, nil
	}
	if dbURL := env["DB_URL"]; dbURL != "" {
		return dbURL, nil
	}

	connection := strings.ToLower(env["DB_CONNECTION"])
	database := env["DB_DATABASE"]

	switch connection {
	case "sqlite":
		if database == "" {
			database = "database/database.sqlite"
		}
		return "sqlite://" + database, nil
	case "pgsql", "postgres", "postgresql":
		return buildURL("postgres", env, "5432", "sslmode=disable"), nil
	case "mysql", "mariadb":
		return buildURL("mysql", env, "3306", ""), nil
	case "":
		return "", fmt.Errorf("DB_CONNECTION is not set")
	default:
		return "", fmt.Errorf("unsupported DB_CONNECTION: %s", connection)
	}
}

func buildURL(scheme string, env map[string]string, defaultPort, query string) string {
	host := env["DB_HOST"]
	if host == "" {
		host = "127.0.0.1"
	}
	port := env["DB_PORT"]
	if port == "" {
		port = defaultPort
	}

	u := url.URL{
		Scheme:   scheme,
		Host:     host + ":" + port,
		Path:     "/" + env["DB_DATABASE"],
		RawQuery: query,
	}
	if user := env["DB_USERNAME"]; user != "" {
		if password, ok := env["DB_PASSWORD"]; ok && password != "" {
			u.User = url.UserPassword(user, password)
		} else {
			u.User = url.User(user)
		}
	}

	return u.String()
}
