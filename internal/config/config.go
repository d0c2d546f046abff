package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
}

type Config struct {
	Targets       []TargetConfig `json:"targets" validate:"required,min=1,dive"`
	ListenAddress string         `json:"listen_address"`
	LogDir        string         `json:"log_dir"`
}

// TargetConfig is one monitored SFTP endpoint as it appears in the config
// file. Omitted optional fields take their defaults; the exact field-level
// validation (required host/username, credential presence per auth method)
// happens when the scheduler starts, not here.
type TargetConfig struct {
	Name                 string `json:"name"`
	Host                 string `json:"host" validate:"required"`
	Port                 int    `json:"port"`
	Username             string `json:"username" validate:"required"`
	AuthMethod           string `json:"auth_method"`
	Password             string `json:"password"`
	PrivateKey           string `json:"private_key"`
	PrivateKeyPassphrase string `json:"private_key_passphrase"`
	CheckIntervalSeconds int    `json:"check_interval"`
	ConnectionTimeoutSec int    `json:"connection_timeout"`
	TestDirectory        string `json:"test_directory"`
	LogSuccessfulChecks  *bool  `json:"log_successful_checks"`
}

const (
	DefaultPort                 = 22
	DefaultCheckIntervalSeconds = 300
	DefaultTimeoutSeconds       = 30
	DefaultListenAddress        = ":9115"
)

// NewConfig creates a new Config instance from the environment
func NewConfig() (*Config, error) {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config.json"
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("error reading config: %w", err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("error parsing config: %w", err)
	}

	cfg.applyDefaults()

	if err := validate.Struct(cfg); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			return nil, formatValidationErrors(validationErrors)
		}
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.ListenAddress == "" {
		c.ListenAddress = DefaultListenAddress
	}
	for i := range c.Targets {
		t := &c.Targets[i]
		if t.Port == 0 {
			t.Port = DefaultPort
		}
		if t.CheckIntervalSeconds == 0 {
			t.CheckIntervalSeconds = DefaultCheckIntervalSeconds
		}
		if t.ConnectionTimeoutSec == 0 {
			t.ConnectionTimeoutSec = DefaultTimeoutSeconds
		}
	}
}

// LogSuccesses resolves the tri-state log_successful_checks field; absent
// means true.
func (t *TargetConfig) LogSuccesses() bool {
	if t.LogSuccessfulChecks == nil {
		return true
	}
	return *t.LogSuccessfulChecks
}

// formatValidationErrors formats validation errors into a user-friendly error message
func formatValidationErrors(errors validator.ValidationErrors) error {
	var errMsgs []string
	for _, err := range errors {
		errMsgs = append(errMsgs, fmt.Sprintf(
			"field '%s' failed validation: %s",
			err.Field(),
			err.Tag(),
		))
	}
	return fmt.Errorf("validation errors: %v", errMsgs)
}
