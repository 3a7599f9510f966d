// Package sysinfo sources host-level values for the status line:
// platform, user, uptime, and the runtime version.
package sysinfo

import (
	"fmt"
	"os/user"
	"runtime"
	"strings"
	"time"

	"github.com/shirou/gopsutil/v4/host"
)

// Platform returns a human-readable host OS identifier, e.g.
// "darwin 15.1" or "ubuntu 24.04", falling back to GOOS when host
// details are unavailable.
func Platform() string {
	info, err := host.Info()
	if err != nil || info.Platform == "" {
		return runtime.GOOS
	}
	if info.PlatformVersion == "" {
		return info.Platform
	}
	return info.Platform + " " + info.PlatformVersion
}

// Username returns the current user's login name.
func Username() (string, error) {
	u, err := user.Current()
	if err != nil {
		return "", fmt.Errorf("looking up current user: %w", err)
	}
	return u.Username, nil
}

// Uptime returns how long the host has been running.
func Uptime() (time.Duration, error) {
	secs, err := host.Uptime()
	if err != nil {
		return 0, fmt.Errorf("reading host uptime: %w", err)
	}
	return time.Duration(secs) * time.Second, nil
}

// RuntimeVersion returns the version string of the hosting runtime.
func RuntimeVersion() string {
	return strings.TrimPrefix(runtime.Version(), "go")
}

// FormatUptime renders a duration the way uptime reports read:
// "3 days, 4 hours, 12 minutes". Sub-minute uptimes report seconds.
func FormatUptime(d time.Duration) string {
	if d < time.Minute {
		return plural(int(d.Seconds()), "second")
	}

	days := int(d.Hours()) / 24
	hours := int(d.Hours()) % 24
	minutes := int(d.Minutes()) % 60

	var parts []string
	if days > 0 {
		parts = append(parts, plural(days, "day"))
	}
	if hours > 0 {
		parts = append(parts, plural(hours, "hour"))
	}
	if minutes > 0 || len(parts) == 0 {
		parts = append(parts, plural(minutes, "minute"))
	}
	return strings.Join(parts, ", ")
}

func plural(n int, unit string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", unit)
	}
	return fmt.Sprintf("%d %ss", n, unit)
}
