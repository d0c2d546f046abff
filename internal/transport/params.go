package transport

import (
	"encoding/base64"
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/ssh"

	"sftp-checker/internal/domain"
)

// Validation failures carry the field classification verbatim; callers
// surface them as startup errors.
var (
	ErrHostRequired       = errors.New("Host is required")
	ErrUsernameRequired   = errors.New("Username is required")
	ErrInvalidAuthMethod  = errors.New("Invalid Authentication Method")
	ErrPasswordRequired   = errors.New("Password is required")
	ErrPrivateKeyRequired = errors.New("Private Key is required")
)

// ConnectionParams is everything the transport needs to open one
// authenticated session.
type ConnectionParams struct {
	Host     string
	Port     int
	Username string
	Auth     []ssh.AuthMethod
	Timeout  time.Duration
}

// ValidateTarget checks a target once, before its scheduler starts ticking.
// It never touches the network and never decodes key material; malformed
// base64 is a per-check failure, not a startup failure.
func ValidateTarget(t domain.Target) error {
	if t.Host == "" {
		return ErrHostRequired
	}
	if t.Username == "" {
		return ErrUsernameRequired
	}
	method, ok := domain.ParseAuthMethod(t.AuthMethod)
	if !ok {
		return fmt.Errorf("%w: %q", ErrInvalidAuthMethod, t.AuthMethod)
	}
	switch method {
	case domain.AuthPassword:
		if t.Password == "" {
			return ErrPasswordRequired
		}
	case domain.AuthPrivateKey:
		if t.PrivateKey == "" {
			return ErrPrivateKeyRequired
		}
	}
	return nil
}

// BuildParams translates a target into transport-ready connection parameters.
// It is invoked per check rather than cached so a rotated credential takes
// effect without a restart.
func BuildParams(t domain.Target) (ConnectionParams, error) {
	params := ConnectionParams{
		Host:     t.Host,
		Port:     t.Port,
		Username: t.Username,
		Timeout:  t.ConnectTimeout,
	}

	method, ok := domain.ParseAuthMethod(t.AuthMethod)
	if !ok {
		return ConnectionParams{}, fmt.Errorf("%w: %q", ErrInvalidAuthMethod, t.AuthMethod)
	}

	switch method {
	case domain.AuthPassword:
		params.Auth = []ssh.AuthMethod{ssh.Password(t.Password)}
	case domain.AuthPrivateKey:
		signer, err := parsePrivateKey(t.PrivateKey, t.PrivateKeyPassphrase)
		if err != nil {
			return ConnectionParams{}, err
		}
		params.Auth = []ssh.AuthMethod{ssh.PublicKeys(signer)}
	}

	return params, nil
}

func parsePrivateKey(encoded, passphrase string) (ssh.Signer, error) {
	keyBytes, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, fmt.Errorf("failed to decode private key: %w", err)
	}

	if passphrase == "" {
		signer, err := ssh.ParsePrivateKey(keyBytes)
		if err != nil {
			return nil, fmt.Errorf("failed to parse private key: %w", err)
		}
		return signer, nil
	}

	signer, err := ssh.ParsePrivateKeyWithPassphrase(keyBytes, []byte(passphrase))
	if err != nil {
		// An unencrypted key rejects the passphrase path; the passphrase is
		// accepted and ignored in that case.
		plain, perr := ssh.ParsePrivateKey(keyBytes)
		if perr != nil {
			return nil, fmt.Errorf("failed to parse private key: %w", err)
		}
		return plain, nil
	}
	return signer, nil
}
