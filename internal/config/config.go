// Package config loads the settings shared by the server and the admin tool.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

const (
	envFile = ".env"

	defaultDatabaseURL = "postgres://localhost:5432/acronym_finder?sslmode=disable"
	defaultPort        = 8080
	defaultJWTExpiry   = "7d"
	defaultBcryptCost  = 10
	defaultLogLevel    = "INFO"
	defaultCORSOrigins = "*"
)

var errMissingSecret = errors.New("JWT_SECRET must be set")

var keys = []string{"DATABASE_URL", "PORT", "JWT_SECRET", "JWT_EXPIRY", "BCRYPT_COST", "LOG_LEVEL", "CORS_ORIGINS"}

// Config holds the application's configuration.
type Config struct {
	DatabaseURL string
	Port        int
	JWTSecret   string
	JWTExpiry   time.Duration
	BcryptCost  int
	LogLevel    string
	CORSOrigins []string
}

// fileConfig is the layout of the optional YAML file named by CONFIG_FILE.
// Values are kept as strings so the file and the environment share one parser.
type fileConfig struct {
	Database struct {
		URL string `yaml:"url"`
	} `yaml:"database"`
	Server struct {
		Port        string `yaml:"port"`
		CORSOrigins string `yaml:"cors_origins"`
	} `yaml:"server"`
	Auth struct {
		JWTSecret  string `yaml:"jwt_secret"`
		JWTExpiry  string `yaml:"jwt_expiry"`
		BcryptCost string `yaml:"bcrypt_cost"`
	} `yaml:"auth"`
	Log struct {
		Level string `yaml:"level"`
	} `yaml:"log"`
}

// Load reads .env if present, then the YAML file named by CONFIG_FILE, then the environment.
// Later sources win. A missing secret or a malformed value is an error.
func Load() (*Config, error) {
	if err := godotenv.Load(envFile); err != nil {
		log.Info("No .env file found, using environment variables from system")
	} else {
		log.Info("Loaded environment variables from .env file")
	}

	values := map[string]string{
		"DATABASE_URL": defaultDatabaseURL,
		"PORT":         strconv.Itoa(defaultPort),
		"JWT_EXPIRY":   defaultJWTExpiry,
		"BCRYPT_COST":  strconv.Itoa(defaultBcryptCost),
		"LOG_LEVEL":    defaultLogLevel,
		"CORS_ORIGINS": defaultCORSOrigins,
	}

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		file, err := loadFile(path)
		if err != nil {
			return nil, err
		}
		overlay(values, map[string]string{
			"DATABASE_URL": file.Database.URL,
			"PORT":         file.Server.Port,
			"CORS_ORIGINS": file.Server.CORSOrigins,
			"JWT_SECRET":   file.Auth.JWTSecret,
			"JWT_EXPIRY":   file.Auth.JWTExpiry,
			"BCRYPT_COST":  file.Auth.BcryptCost,
			"LOG_LEVEL":    file.Log.Level,
		})
	}

	fromEnv := make(map[string]string, len(keys))
	for _, key := range keys {
		fromEnv[key] = os.Getenv(key)
	}
	overlay(values, fromEnv)

	return parse(values)
}

func loadFile(path string) (*fileConfig, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open config file: %w", err)
	}
	defer file.Close()

	config := &fileConfig{}
	if err := yaml.NewDecoder(file).Decode(config); err != nil {
		return nil, fmt.Errorf("failed to decode config file: %w", err)
	}

	return config, nil
}

// overlay copies every non-empty value of src into dst.
func overlay(dst, src map[string]string) {
	for key, value := range src {
		if value != "" {
			dst[key] = value
		}
	}
}

func parse(values map[string]string) (*Config, error) {
	if values["JWT_SECRET"] == "" {
		return nil, errMissingSecret
	}

	port, err := strconv.Atoi(values["PORT"])
	if err != nil || port <= 0 || port > 65535 {
		return nil, fmt.Errorf("invalid PORT %q", values["PORT"])
	}

	expiry, err := ParseExpiry(values["JWT_EXPIRY"])
	if err != nil {
		return nil, err
	}

	cost, err := strconv.Atoi(values["BCRYPT_COST"])
	if err != nil {
		return nil, fmt.Errorf("invalid BCRYPT_COST %q", values["BCRYPT_COST"])
	}

	return &Config{
		DatabaseURL: values["DATABASE_URL"],
		Port:        port,
		JWTSecret:   values["JWT_SECRET"],
		JWTExpiry:   expiry,
		BcryptCost:  cost,
		LogLevel:    strings.ToUpper(values["LOG_LEVEL"]),
		CORSOrigins: splitOrigins(values["CORS_ORIGINS"]),
	}, nil
}

// ParseExpiry accepts "<n>d" for days, anything time.ParseDuration accepts, or bare seconds.
func ParseExpiry(value string) (time.Duration, error) {
	value = strings.TrimSpace(value)

	expiry, err := parseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid JWT_EXPIRY %q", value)
	}

	if expiry <= 0 {
		return 0, fmt.Errorf("JWT_EXPIRY must be positive, got %q", value)
	}
	return expiry, nil
}

func parseDuration(value string) (time.Duration, error) {
	if days, ok := strings.CutSuffix(value, "d"); ok {
		n, err := strconv.Atoi(days)
		if err != nil {
			return 0, err
		}
		return time.Duration(n) * 24 * time.Hour, nil
	}
	if seconds, err := strconv.Atoi(value); err == nil {
		return time.Duration(seconds) * time.Second, nil
	}
	return time.ParseDuration(value)
}

func splitOrigins(value string) []string {
	var origins []string
	for _, origin := range strings.Split(value, ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			origins = append(origins, origin)
		}
	}
	return origins
}
