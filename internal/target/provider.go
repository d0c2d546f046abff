package target

import (
	"time"

	"sftp-checker/internal/config"
	"sftp-checker/internal/domain"
)

// FromConfig converts the raw configuration entries into the immutable target
// snapshots the schedulers hold for their lifetime. Defaults are already
// applied by the config loader; credential validation is deferred to
// scheduler start so the failure surfaces where the spec of the check
// requires it.
func FromConfig(cfg *config.Config) []domain.Target {
	targets := make([]domain.Target, 0, len(cfg.Targets))
	for i := range cfg.Targets {
		targets = append(targets, fromTargetConfig(&cfg.Targets[i]))
	}
	return targets
}

func fromTargetConfig(tc *config.TargetConfig) domain.Target {
	return domain.Target{
		Name:                 tc.Name,
		Host:                 tc.Host,
		Port:                 tc.Port,
		Username:             tc.Username,
		AuthMethod:           tc.AuthMethod,
		Password:             tc.Password,
		PrivateKey:           tc.PrivateKey,
		PrivateKeyPassphrase: tc.PrivateKeyPassphrase,
		CheckInterval:        time.Duration(tc.CheckIntervalSeconds) * time.Second,
		ConnectTimeout:       time.Duration(tc.ConnectionTimeoutSec) * time.Second,
		TestDirectory:        tc.TestDirectory,
		LogSuccessfulChecks:  tc.LogSuccesses(),
	}
}
