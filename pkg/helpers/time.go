package helpers

import (
	"fmt"
	"time"
)

// RegistryUnsetTime is what the registry reports for a timestamp that was never set.
const RegistryUnsetTime = "0001-01-01T00:00:00"

const registryLocalLayout = "2006-01-02T15:04:05.9999999"

// ParseRegistryTime accepts RFC 3339 timestamps and zone-less ones, which are read as UTC.
// The empty string and RegistryUnsetTime map to the zero time.
func ParseRegistryTime(value string) (time.Time, error) {
	if value == "" || value == RegistryUnsetTime {
		return time.Time{}, nil
	}

	if t, err := time.Parse(time.RFC3339Nano, value); err == nil {
		return t.UTC(), nil
	}

	t, err := time.ParseInLocation(registryLocalLayout, value, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("'%s' is not a registry timestamp: %w", value, err)
	}

	return t, nil
}

// FormatRegistryTime is the inverse of ParseRegistryTime.
func FormatRegistryTime(t time.Time) string {
	if t.IsZero() {
		return RegistryUnsetTime
	}

	return t.UTC().Format(time.RFC3339Nano)
}
