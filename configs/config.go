package configs

import (
	"errors"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kkyr/fig"
	"go.uber.org/zap"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

type DB struct {
	Driver             string `default:"postgres"`
	Host               string
	Port               int    `default:"5432"`
	User               string `default:"postgres"`
	Password           string
	Database           string `default:"postgres"`
	Path               string `default:"brewwolf.db"`
	MaxIdleConnections int    `default:"10"`
	MaxOpenConnections int    `default:"10"`
}

type Server struct {
	Port      int           `default:"8080"`
	RateLimit float64       `default:"20"`
	RateBurst int           `default:"40"`
	RateIdle  time.Duration `default:"10m"`
}

type Integrations struct {
	Beer       []string `default:"untappd_web"`
	UntappdURL string   `default:"https://untappd.com"`
}

type Config struct {
	DB           DB
	Server       Server
	Integrations Integrations
	Auth         Auth
}

type Auth struct {
	SecretKey string `validate:"required"`
	Audience  string
	Domain    string
}

const (
	envPrefix = "BREWWOLF" // env prefix for env vars
	envFile   = ".env"
)

var ErrConfiguration = errors.New("configuration error")

func GetConfig(configFileName string, logger *zap.Logger) (*Config, error) {
	config := Config{}
	homeDir, _ := os.UserHomeDir()

	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		logger.Warn("Could not load env file", zap.String("file", envFile), zap.Error(err))
	}

	logger.Info("Loading config", zap.String("file", configFileName))

	err := fig.Load(&config, fig.File(configFileName), fig.Dirs(".", homeDir), fig.UseEnv(envPrefix))
	if err != nil {
		if strings.Contains(err.Error(), "file not found") {
			logger.Warn("Could not find config file", zap.String("file", configFileName))

			err = fig.Load(&config, fig.IgnoreFile(), fig.UseEnv(envPrefix))
			if err != nil {
				return nil, err
			}
		} else {
			return nil, err
		}
	}

	if err := config.validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

// postgres needs a host and credentials, sqlite only a file path.
func (c *Config) validate() error {
	var missing []string

	switch c.DB.Driver {
	case DriverPostgres:
		if c.DB.Host == "" {
			missing = append(missing, "DB.Host: required validation failed")
		}

		if c.DB.Password == "" {
			missing = append(missing, "DB.Password: required validation failed")
		}
	case DriverSQLite:
		if c.DB.Path == "" {
			missing = append(missing, "DB.Path: required validation failed")
		}
	default:
		missing = append(missing, "DB.Driver: unsupported driver "+c.DB.Driver)
	}

	if len(missing) > 0 {
		return errors.Join(ErrConfiguration, errors.New(strings.Join(missing, ", ")))
	}

	return nil
}
