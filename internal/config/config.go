package config

import (
	"fmt"
	"net"
	"net/url"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

const ProfileLocal = "local"

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Logger   LoggerConfig
	Paging   PagingConfig
}

type AppConfig struct {
	Env     string
	Profile string
	Host    string
	Port    string
}

func (c AppConfig) Addr() string {
	return net.JoinHostPort(c.Host, c.Port)
}

type DatabaseConfig struct {
	Host           string
	Port           string
	User           string
	Password       string
	DBName         string
	SSLMode        string
	MigrationsPath string
	RunMigrations  bool
}

// DSN - строка подключения для pgx
func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host,
		c.Port,
		c.User,
		c.Password,
		c.DBName,
		c.SSLMode,
	)
}

// URL - та же база в виде URL для golang-migrate
func (c DatabaseConfig) URL() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.User, c.Password),
		Host:     net.JoinHostPort(c.Host, c.Port),
		Path:     "/" + c.DBName,
		RawQuery: "sslmode=" + url.QueryEscape(c.SSLMode),
	}
	return u.String()
}

type LoggerConfig struct {
	Level string
}

type PagingConfig struct {
	DefaultSize int
	MaxSize     int
}

func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		App: AppConfig{
			Env:     getEnv("APP_ENV", "development"),
			Profile: getEnv("APP_PROFILE", ProfileLocal),
			Host:    getEnv("APP_HOST", "0.0.0.0"),
			Port:    getEnv("APP_PORT", "8080"),
		},
		Database: DatabaseConfig{
			Host:           getEnv("DB_HOST", "localhost"),
			Port:           getEnv("DB_PORT", "5432"),
			User:           getEnv("DB_USER", "members"),
			Password:       getEnv("DB_PASSWORD", "members"),
			DBName:         getEnv("DB_NAME", "members"),
			SSLMode:        getEnv("DB_SSLMODE", "disable"),
			MigrationsPath: getEnv("DB_MIGRATIONS_PATH", "migrations"),
			RunMigrations:  getEnvAsBool("DB_RUN_MIGRATIONS", true),
		},
		Logger: LoggerConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
		Paging: PagingConfig{
			DefaultSize: getEnvAsInt("PAGE_DEFAULT_SIZE", 20),
			MaxSize:     getEnvAsInt("PAGE_MAX_SIZE", 100),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return parsed
}

func getEnvAsBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return defaultValue
	}
	return parsed
}
