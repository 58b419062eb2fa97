package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"
)

type Config struct {
	UserServiceURL        string `yaml:"userServiceURL"`
	AccountServiceURL     string `yaml:"accountServiceURL"`
	TransactionServiceURL string `yaml:"transactionServiceURL"`
	SessionFile           string `yaml:"sessionFile"`
	StatementDir          string `yaml:"statementDir"`
	LogLevel              string `yaml:"logLevel"`
	SandboxPort           string `yaml:"sandboxPort"`
}

// DefaultConfig points at the gateway the sandbox backend serves locally.
func DefaultConfig() *Config {
	return &Config{
		UserServiceURL:        "http://localhost:8085/userservice/api/v1",
		AccountServiceURL:     "http://localhost:8085/accountservice/api/v1",
		TransactionServiceURL: "http://localhost:8085/transactionservice/api/v1",
		SessionFile:           filepath.Join(os.TempDir(), "bankctl-session-"+strconv.Itoa(os.Getuid())+".json"),
		StatementDir:          ".",
		LogLevel:              "warn",
		SandboxPort:           "8085",
	}
}

// ProcessEnvironmentVariables layers defaults, the YAML file named by
// BANK_CONFIG_FILE (if any), and BANK_* environment variables, in that order.
func ProcessEnvironmentVariables() (*Config, error) {
	return Load(os.Getenv("BANK_CONFIG_FILE"))
}

// Load is ProcessEnvironmentVariables with an explicit config file path.
func Load(path string) (*Config, error) {
	env := DefaultConfig()

	if path != "" {
		fileConfig, err := LoadFromFile(path)
		if err != nil {
			return nil, err
		}
		env.Merge(fileConfig)
	}

	env.Merge(&Config{
		UserServiceURL:        os.Getenv("BANK_USER_SERVICE_URL"),
		AccountServiceURL:     os.Getenv("BANK_ACCOUNT_SERVICE_URL"),
		TransactionServiceURL: os.Getenv("BANK_TRANSACTION_SERVICE_URL"),
		SessionFile:           os.Getenv("BANK_SESSION_FILE"),
		StatementDir:          os.Getenv("BANK_STATEMENT_DIR"),
		LogLevel:              os.Getenv("BANK_LOG_LEVEL"),
		SandboxPort:           os.Getenv("BANK_SANDBOX_PORT"),
	})

	if err := env.Validate(); err != nil {
		return nil, err
	}

	return env, nil
}

// LoadFromFile reads a YAML config file; unset keys stay empty.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var c Config
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return &c, nil
}

// Merge copies every non-empty value of other into c.
func (c *Config) Merge(other *Config) {
	if other == nil {
		return
	}

	if len(other.UserServiceURL) != 0 {
		c.UserServiceURL = other.UserServiceURL
	}

	if len(other.AccountServiceURL) != 0 {
		c.AccountServiceURL = other.AccountServiceURL
	}

	if len(other.TransactionServiceURL) != 0 {
		c.TransactionServiceURL = other.TransactionServiceURL
	}

	if len(other.SessionFile) != 0 {
		c.SessionFile = other.SessionFile
	}

	if len(other.StatementDir) != 0 {
		c.StatementDir = other.StatementDir
	}

	if len(other.LogLevel) != 0 {
		c.LogLevel = other.LogLevel
	}

	if len(other.SandboxPort) != 0 {
		c.SandboxPort = other.SandboxPort
	}
}

// Validate checks that every service base URL is absolute.
func (c *Config) Validate() error {
	services := []struct {
		name  string
		value string
	}{
		{"userServiceURL", c.UserServiceURL},
		{"accountServiceURL", c.AccountServiceURL},
		{"transactionServiceURL", c.TransactionServiceURL},
	}

	for _, s := range services {
		if s.value == "" {
			return fmt.Errorf("%s is required", s.name)
		}
		u, err := url.Parse(s.value)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return fmt.Errorf("%s must be an absolute URL, got %q", s.name, s.value)
		}
	}

	if c.SessionFile == "" {
		return errors.New("sessionFile is required")
	}

	return nil
}
