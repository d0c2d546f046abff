package target

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sftp-checker/internal/config"
)

func TestFromConfig(t *testing.T) {
	logSuccesses := false
	cfg := &config.Config{
		Targets: []config.TargetConfig{
			{
				Name:                 "partner-drop",
				Host:                 "sftp.example.com",
				Port:                 2222,
				Username:             "courier",
				AuthMethod:           "PrivateKey",
				PrivateKey:           "c29tZSBrZXk=",
				PrivateKeyPassphrase: "hunter2",
				CheckIntervalSeconds: 120,
				ConnectionTimeoutSec: 15,
				TestDirectory:        "/upload",
				LogSuccessfulChecks:  &logSuccesses,
			},
			{
				Host:                 "other.example.com",
				Port:                 22,
				Username:             "courier",
				Password:             "secret",
				CheckIntervalSeconds: 300,
				ConnectionTimeoutSec: 30,
			},
		},
	}

	targets := FromConfig(cfg)
	require.Len(t, targets, 2)

	first := targets[0]
	assert.Equal(t, "partner-drop", first.DisplayName())
	assert.Equal(t, "PrivateKey", first.AuthMethod)
	assert.Equal(t, "c29tZSBrZXk=", first.PrivateKey)
	assert.Equal(t, "hunter2", first.PrivateKeyPassphrase)
	assert.Equal(t, 120*time.Second, first.CheckInterval)
	assert.Equal(t, 15*time.Second, first.ConnectTimeout)
	assert.Equal(t, "/upload", first.TestDirectory)
	assert.False(t, first.LogSuccessfulChecks)

	second := targets[1]
	assert.Equal(t, "other.example.com", second.DisplayName(), "display name falls back to host")
	assert.True(t, second.LogSuccessfulChecks)
	assert.Equal(t, 300*time.Second, second.CheckInterval)
}
