package database

import (
	"database/sql"
	"errors"
	"fmt"
	"lcb/internal/schema"
	"lcb/pkg/config"
	"net/url"
	"strings"

	"github.com/go-sql-driver/mysql"
	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
)

var ErrTableNotFound = errors.New("table not found")

type Connector struct {
	db     *sql.DB
	driver string
}

type SchemaExtractor interface {
	ExtractSchema(cfg config.SchemaConfig) (*schema.Schema, error)
	ExtractTable(name string) (*schema.Table, error)
}

func NewConnector(databaseURL string) (*Connector, error) {
	driver, dsn, err := ParseDatabaseURL(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse database URL: %w", err)
	}

	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &Connector{
		db:     db,
		driver: driver,
	}, nil
}

func (c *Connector) Close() error {
	return c.db.Close()
}

func (c *Connector) Driver() string {
	return c.driver
}

func (c *Connector) extractor() (SchemaExtractor, error) {
	switch c.driver {
	case "postgres":
		return &PostgreSQLExtractor{db: c.db}, nil
	case "mysql":
		return &MySQLExtractor{db: c.db}, nil
	case "sqlite3":
		return &SQLiteExtractor{db: c.db}, nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", c.driver)
	}
}

func (c *Connector) ExtractSchema(cfg config.SchemaConfig) (*schema.Schema, error) {
	extractor, err := c.extractor()
	if err != nil {
		return nil, err
	}

	return extractor.ExtractSchema(cfg)
}

func (c *Connector) ExtractTable(name string) (*schema.Table, error) {
	extractor, err := c.extractor()
	if err != nil {
		return nil, err
	}

	return extractor.ExtractTable(name)
}

func ParseDatabaseURL(databaseURL string) (driver, dsn string, err error) {
	u, err := url.Parse(databaseURL)
	if err != nil {
		return "", "", err
	}

	switch u.Scheme {
	case "postgres", "postgresql":
		return "postgres", databaseURL, nil
	case "mysql", "mariadb":
		cfg := mysql.NewConfig()
		cfg.Net = "tcp"
		cfg.Addr = u.Host
		cfg.DBName = strings.TrimPrefix(u.Path, "/")
		if u.User != nil {
			cfg.User = u.User.Username()
			cfg.Passwd, _ = u.User.Password()
		}
		if u.RawQuery != "" {
			cfg.Params = map[string]string{}
			for key, values := range u.Query() {
				if len(values) > 0 {
					cfg.Params[key] = values[0]
				}
			}
		}
		return "mysql", cfg.FormatDSN(), nil
	case "sqlite", "sqlite3":
		dsn := strings.TrimPrefix(databaseURL, u.Scheme+"://")
		return "sqlite3", dsn, nil
	default:
		return "", "", fmt.Errorf("unsupported database scheme: %s", u.Scheme)
	}
}

func contains(slice []string, item string) bool {
	for _, s := range slice {
		if strings.EqualFold(s, item) {
			return true
		}
	}
	return false
}

func skipTable(cfg config.SchemaConfig, name string) bool {
	if len(cfg.IncludeTables) > 0 && !contains(cfg.IncludeTables, name) {
		return true
	}
	return contains(cfg.ExcludeTables, name)
}
