package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseAuthMethod(t *testing.T) {
	tests := []struct {
		input    string
		expected AuthMethod
		ok       bool
	}{
		{"password", AuthPassword, true},
		{"Password", AuthPassword, true},
		{"PASSWORD", AuthPassword, true},
		{"privatekey", AuthPrivateKey, true},
		{"PrivateKey", AuthPrivateKey, true},
		{"PRIVATEKEY", AuthPrivateKey, true},
		{"", AuthPassword, true},
		{"  password  ", AuthPassword, true},
		{"certificate", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			method, ok := ParseAuthMethod(tt.input)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.expected, method)
			}
		})
	}
}

func TestTargetDisplayName(t *testing.T) {
	named := Target{Name: "partner-drop", Host: "sftp.example.com"}
	assert.Equal(t, "partner-drop", named.DisplayName())

	unnamed := Target{Host: "sftp.example.com"}
	assert.Equal(t, "sftp.example.com", unnamed.DisplayName())
}
