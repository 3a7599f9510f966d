package sysinfo

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatUptime(t *testing.T) {
	tests := []struct {
		name string
		d    time.Duration
		want string
	}{
		{"seconds only", 42 * time.Second, "42 seconds"},
		{"one second", time.Second, "1 second"},
		{"minutes", 5 * time.Minute, "5 minutes"},
		{"one minute", time.Minute, "1 minute"},
		{"hours and minutes", 2*time.Hour + 30*time.Minute, "2 hours, 30 minutes"},
		{"exact hour", time.Hour, "1 hour"},
		{"days", 49*time.Hour + 3*time.Minute, "2 days, 1 hour, 3 minutes"},
		{"exact day", 24 * time.Hour, "1 day"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatUptime(tt.d))
		})
	}
}

func TestPlatformNotEmpty(t *testing.T) {
	assert.NotEmpty(t, Platform())
}

func TestUsername(t *testing.T) {
	name, err := Username()
	require.NoError(t, err)
	assert.NotEmpty(t, name)
}

func TestRuntimeVersion(t *testing.T) {
	v := RuntimeVersion()
	assert.NotEmpty(t, v)
	assert.NotContains(t, v, "go1.")
}
