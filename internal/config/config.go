package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

// Worksheet store backends.
const (
	StoreMemory = "memory"
	StoreRedis  = "redis"
	StoreSQLite = "sqlite"
	StoreOracle = "oracle"
)

type Config struct {
	Server    ServerConfig
	Data      DataConfig
	Worksheet WorksheetConfig
	Redis     RedisConfig
	DB        DBConfig
	Quiz      QuizConfig
	Logger    LoggerConfig
}

type ServerConfig struct {
	Port            int
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
	AllowOrigins    string
}

// DataConfig locates the dataset: a file path or an http(s) URL.
type DataConfig struct {
	Source       string
	FetchTimeout time.Duration
}

type WorksheetConfig struct {
	Store string
}

type RedisConfig struct {
	Address  string `yaml:"address"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type DBConfig struct {
	Host       string
	Port       int
	User       string
	Password   string
	DBName     string
	SQLitePath string
}

type QuizConfig struct {
	MaxAttempts int
	// Seed fixes the question sequence when non-zero.
	Seed uint64
	// SessionTTL is how long an idle quiz session is kept.
	SessionTTL time.Duration
}

type LoggerConfig struct {
	Level string
	Env   string
	// Output is "stdout" or "stderr".
	Output string
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8090)
	v.SetDefault("server.read_timeout", 10)
	v.SetDefault("server.write_timeout", 10)
	v.SetDefault("server.shutdown_timeout", 10)
	v.SetDefault("server.allow_origins", "*")
	v.SetDefault("data.source", "data.json")
	v.SetDefault("data.fetch_timeout", 15)
	v.SetDefault("worksheet.store", StoreMemory)
	v.SetDefault("redis.address", "localhost:6379")
	v.SetDefault("redis.db", 0)
	v.SetDefault("db.port", 1521)
	v.SetDefault("db.sqlite_path", "worksheets.db")
	v.SetDefault("quiz.max_attempts", 50)
	v.SetDefault("quiz.seed", 0)
	v.SetDefault("quiz.session_ttl", 7200)
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.env", "development")
	v.SetDefault("logger.output", "stdout")
}

// LoadConfig reads config.yaml from the working directory or ./config.
// A missing file is not an error; defaults and environment variables apply.
func LoadConfig() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	if os.Getenv("ENV") == "test" {
		v.AddConfigPath("../../config")
		v.AddConfigPath("../../")
	} else {
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	setDefaults(v)
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	if configFile := v.ConfigFileUsed(); configFile != "" {
		absPath, _ := filepath.Abs(configFile)
		fmt.Fprintf(os.Stderr, "Using config file: %s\n", absPath)
	}

	cfg := fromViper(v)
	applyEnv(cfg)
	return cfg, nil
}

func fromViper(v *viper.Viper) *Config {
	return &Config{
		Server: ServerConfig{
			Port:            v.GetInt("server.port"),
			ReadTimeout:     v.GetDuration("server.read_timeout") * time.Second,
			WriteTimeout:    v.GetDuration("server.write_timeout") * time.Second,
			ShutdownTimeout: v.GetDuration("server.shutdown_timeout") * time.Second,
			AllowOrigins:    v.GetString("server.allow_origins"),
		},
		Data: DataConfig{
			Source:       v.GetString("data.source"),
			FetchTimeout: v.GetDuration("data.fetch_timeout") * time.Second,
		},
		Worksheet: WorksheetConfig{
			Store: v.GetString("worksheet.store"),
		},
		Redis: RedisConfig{
			Address:  v.GetString("redis.address"),
			Password: v.GetString("redis.password"),
			DB:       v.GetInt("redis.db"),
		},
		DB: DBConfig{
			Host:       v.GetString("db.host"),
			Port:       v.GetInt("db.port"),
			User:       v.GetString("db.user"),
			Password:   v.GetString("db.password"),
			DBName:     v.GetString("db.name"),
			SQLitePath: v.GetString("db.sqlite_path"),
		},
		Quiz: QuizConfig{
			MaxAttempts: v.GetInt("quiz.max_attempts"),
			Seed:        v.GetUint64("quiz.seed"),
			SessionTTL:  v.GetDuration("quiz.session_ttl") * time.Second,
		},
		Logger: LoggerConfig{
			Level:  v.GetString("logger.level"),
			Env:    v.GetString("logger.env"),
			Output: v.GetString("logger.output"),
		},
	}
}

// applyEnv lets the flat environment variables used by the deployment
// override the nested keys.
func applyEnv(c *Config) {
	if port := os.Getenv("SERVER_PORT"); port != "" {
		var p int
		if _, err := fmt.Sscanf(port, "%d", &p); err == nil {
			c.Server.Port = p
		}
	}
	if src := os.Getenv("DATA_SOURCE"); src != "" {
		c.Data.Source = src
	}
	if store := os.Getenv("WORKSHEET_STORE"); store != "" {
		c.Worksheet.Store = store
	}
	if host := os.Getenv("DB_HOST"); host != "" {
		c.DB.Host = host
	}
	if port := os.Getenv("DB_PORT"); port != "" {
		var p int
		if _, err := fmt.Sscanf(port, "%d", &p); err == nil {
			c.DB.Port = p
		}
	}
	if user := os.Getenv("DB_USER"); user != "" {
		c.DB.User = user
	}
	if password := os.Getenv("DB_PASSWORD"); password != "" {
		c.DB.Password = password
	}
	if dbname := os.Getenv("DB_NAME"); dbname != "" {
		c.DB.DBName = dbname
	}
	if path := os.Getenv("DB_SQLITE_PATH"); path != "" {
		c.DB.SQLitePath = path
	}
	if redisAddress := os.Getenv("REDIS_ADDRESS"); redisAddress != "" {
		c.Redis.Address = redisAddress
	}
	if redisPassword := os.Getenv("REDIS_PASSWORD"); redisPassword != "" {
		c.Redis.Password = redisPassword
	}
	if level := os.Getenv("LOG_LEVEL"); level != "" {
		c.Logger.Level = level
	}
	if env := os.Getenv("ENV"); env != "" {
		c.Logger.Env = env
	}
}

// GetDSN returns the go-ora connection URL of the Oracle worksheet store.
func (c *Config) GetDSN() string {
	return fmt.Sprintf("oracle://%s:%s@%s:%d/%s",
		c.DB.User,
		c.DB.Password,
		c.DB.Host,
		c.DB.Port,
		c.DB.DBName,
	)
}
