package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig(t *testing.T) {
	tests := []struct {
		name        string
		configJSON  string
		expectError bool
		validate    func(*testing.T, *Config)
	}{
		{
			name: "Valid config",
			configJSON: `{
				"listen_address": ":9200",
				"targets": [
					{
						"name": "partner-drop",
						"host": "sftp.example.com",
						"port": 2222,
						"username": "courier",
						"auth_method": "password",
						"password": "secret",
						"check_interval": 120,
						"connection_timeout": 15,
						"test_directory": "/upload"
					}
				]
			}`,
			validate: func(t *testing.T, cfg *Config) {
				assert.Equal(t, ":9200", cfg.ListenAddress)
				require.Len(t, cfg.Targets, 1)
				tc := cfg.Targets[0]
				assert.Equal(t, "sftp.example.com", tc.Host)
				assert.Equal(t, 2222, tc.Port)
				assert.Equal(t, 120, tc.CheckIntervalSeconds)
				assert.Equal(t, 15, tc.ConnectionTimeoutSec)
				assert.Equal(t, "/upload", tc.TestDirectory)
			},
		},
		{
			name: "Defaults applied",
			configJSON: `{
				"targets": [
					{
						"host": "sftp.example.com",
						"username": "courier",
						"password": "secret"
					}
				]
			}`,
			validate: func(t *testing.T, cfg *Config) {
				assert.Equal(t, DefaultListenAddress, cfg.ListenAddress)
				tc := cfg.Targets[0]
				assert.Equal(t, DefaultPort, tc.Port)
				assert.Equal(t, DefaultCheckIntervalSeconds, tc.CheckIntervalSeconds)
				assert.Equal(t, DefaultTimeoutSeconds, tc.ConnectionTimeoutSec)
				assert.True(t, tc.LogSuccesses())
			},
		},
		{
			name: "Success logging disabled",
			configJSON: `{
				"targets": [
					{
						"host": "sftp.example.com",
						"username": "courier",
						"password": "secret",
						"log_successful_checks": false
					}
				]
			}`,
			validate: func(t *testing.T, cfg *Config) {
				assert.False(t, cfg.Targets[0].LogSuccesses())
			},
		},
		{
			name:        "No targets",
			configJSON:  `{"targets": []}`,
			expectError: true,
		},
		{
			name: "Missing host",
			configJSON: `{
				"targets": [
					{
						"username": "courier",
						"password": "secret"
					}
				]
			}`,
			expectError: true,
		},
		{
			name:        "Malformed JSON",
			configJSON:  `{"targets": [`,
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Create temporary config file
			tmpDir := t.TempDir()
			configPath := filepath.Join(tmpDir, "config.json")
			err := os.WriteFile(configPath, []byte(tt.configJSON), 0644)
			require.NoError(t, err)

			t.Setenv("CONFIG_PATH", configPath)

			// Test config loading
			cfg, err := NewConfig()
			if tt.expectError {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, cfg)

			if tt.validate != nil {
				tt.validate(t, cfg)
			}
		})
	}
}

func TestNewConfigMissingFile(t *testing.T) {
	t.Setenv("CONFIG_PATH", filepath.Join(t.TempDir(), "absent.json"))

	_, err := NewConfig()
	assert.Error(t, err)
}
