package config

import (
	"fmt"
	"net"
	"net/url"
	"os"
	"strconv"

	"github.com/go-sql-driver/mysql"
	"github.com/spf13/viper"
)

type Config struct {
	Database Database `json:"database" mapstructure:"database"`
	Seed     Seed     `json:"seed" mapstructure:"seed"`
	Log      Log      `json:"log" mapstructure:"log"`
}

// Database is the connection descriptor. URLEnv wins when the variable it
// names is set; otherwise the URL is built from the remaining fields.
type Database struct {
	Provider string `json:"provider" mapstructure:"provider"`
	URLEnv   string `json:"url_env" mapstructure:"url_env"`
	Host     string `json:"host" mapstructure:"host"`
	Port     int    `json:"port" mapstructure:"port"`
	User     string `json:"user" mapstructure:"user"`
	Password string `json:"password" mapstructure:"password"`
	Name     string `json:"name" mapstructure:"name"`
}

type Seed struct {
	Students    int    `json:"students" mapstructure:"students"`
	Buses       int    `json:"buses" mapstructure:"buses"`
	BusCapacity int    `json:"bus_capacity" mapstructure:"bus_capacity"`
	BusPrefix   string `json:"bus_prefix" mapstructure:"bus_prefix"`
	Applicants  int    `json:"applicants" mapstructure:"applicants"`
	BatchSize   int    `json:"batch_size" mapstructure:"batch_size"`
	RandomSeed  int64  `json:"random_seed" mapstructure:"random_seed"`
	CatalogPath string `json:"catalog_path" mapstructure:"catalog_path"`
	AutoMigrate bool   `json:"auto_migrate" mapstructure:"auto_migrate"`
}

type Log struct {
	Level  string `json:"level" mapstructure:"level"`
	Pretty bool   `json:"pretty" mapstructure:"pretty"`
}

var supportedProviders = []string{"mysql", "postgresql", "postgres", "sqlite", "sqlite3"}

// SetDefaults registers the default values on v. Defaults go through viper
// rather than being patched in after Unmarshal so that a zero value set
// explicitly in a config file (students: 0) is kept.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("database.provider", "mysql")
	v.SetDefault("database.url_env", "DATABASE_URL")
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 3306)
	v.SetDefault("database.user", "root")
	v.SetDefault("database.password", "")
	v.SetDefault("database.name", "university_system")

	v.SetDefault("seed.students", 5000)
	v.SetDefault("seed.buses", 20)
	v.SetDefault("seed.bus_capacity", 40)
	v.SetDefault("seed.bus_prefix", "CPUT")
	v.SetDefault("seed.applicants", 200)
	v.SetDefault("seed.batch_size", 500)
	v.SetDefault("seed.auto_migrate", true)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.pretty", true)
}

func Load() (*Config, error) {
	return LoadFrom(viper.GetViper())
}

func LoadFrom(v *viper.Viper) (*Config, error) {
	SetDefaults(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if cfg.Database.Provider == "postgres" {
		cfg.Database.Provider = "postgresql"
	}
	if cfg.Database.Provider == "sqlite3" {
		cfg.Database.Provider = "sqlite"
	}

	return &cfg, nil
}

func (c *Config) Validate() error {
	supported := false
	for _, provider := range supportedProviders {
		if c.Database.Provider == provider {
			supported = true
			break
		}
	}
	if !supported {
		return fmt.Errorf("unsupported database provider: %s. Supported providers: %v", c.Database.Provider, supportedProviders)
	}

	counts := map[string]int{
		"seed.students":     c.Seed.Students,
		"seed.buses":        c.Seed.Buses,
		"seed.bus_capacity": c.Seed.BusCapacity,
		"seed.applicants":   c.Seed.Applicants,
	}
	for key, n := range counts {
		if n < 0 {
			return fmt.Errorf("%s cannot be negative (got %d)", key, n)
		}
	}
	if c.Seed.Buses > 999 {
		return fmt.Errorf("seed.buses cannot exceed 999 (bus numbers carry three digits)")
	}
	if c.Seed.BatchSize <= 0 {
		return fmt.Errorf("seed.batch_size must be positive")
	}
	if c.Seed.BusPrefix == "" {
		return fmt.Errorf("seed.bus_prefix cannot be empty")
	}

	return nil
}

func (c *Config) GetDatabaseURL() (string, error) {
	if c.Database.URLEnv != "" {
		if dbURL := os.Getenv(c.Database.URLEnv); dbURL != "" {
			return dbURL, nil
		}
	}

	db := c.Database
	switch db.Provider {
	case "mysql":
		dsn := mysql.NewConfig()
		dsn.User = db.User
		dsn.Passwd = db.Password
		dsn.Net = "tcp"
		dsn.Addr = net.JoinHostPort(db.Host, strconv.Itoa(db.Port))
		dsn.DBName = db.Name
		return dsn.FormatDSN(), nil
	case "postgresql":
		u := url.URL{
			Scheme:   "postgres",
			Host:     net.JoinHostPort(db.Host, strconv.Itoa(db.Port)),
			Path:     "/" + db.Name,
			RawQuery: "sslmode=disable",
		}
		if db.Password != "" {
			u.User = url.UserPassword(db.User, db.Password)
		} else {
			u.User = url.User(db.User)
		}
		return u.String(), nil
	case "sqlite":
		if db.Name == "" {
			return "", fmt.Errorf("database name (sqlite file path) cannot be empty")
		}
		return "sqlite://" + db.Name, nil
	}

	return "", fmt.Errorf("database URL not found in environment variable %s", c.Database.URLEnv)
}
