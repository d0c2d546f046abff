package domain

import (
	"strings"
	"time"
)

// AuthMethod selects how a target authenticates its SFTP session.
type AuthMethod string

const (
	AuthPassword   AuthMethod = "password"
	AuthPrivateKey AuthMethod = "privatekey"
)

// ParseAuthMethod normalizes a configured auth method name. Matching is
// case-insensitive; the empty string defaults to password auth.
func ParseAuthMethod(s string) (AuthMethod, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", string(AuthPassword):
		return AuthPassword, true
	case string(AuthPrivateKey):
		return AuthPrivateKey, true
	default:
		return "", false
	}
}

// Target is the immutable per-target configuration snapshot the scheduler and
// executor work from. It is built once from raw configuration and never
// re-validated per check.
type Target struct {
	Name                 string
	Host                 string
	Port                 int
	Username             string
	AuthMethod           string
	Password             string
	PrivateKey           string // base64-encoded key material
	PrivateKeyPassphrase string
	CheckInterval        time.Duration
	ConnectTimeout       time.Duration
	TestDirectory        string
	LogSuccessfulChecks  bool
}

// DisplayName returns the human-readable label for the target, falling back
// to the host when no name is configured.
func (t Target) DisplayName() string {
	if t.Name != "" {
		return t.Name
	}
	return t.Host
}

// CheckOutcome is the result of a single connectivity check. It is produced
// once per execution, converted into one structured record, and discarded.
type CheckOutcome struct {
	Target          Target
	Succeeded       bool
	ConnectDuration time.Duration
	Listed          bool
	FileCount       int
	ListDuration    time.Duration
	TotalDuration   time.Duration
	Err             error
}
