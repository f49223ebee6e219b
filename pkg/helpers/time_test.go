package helpers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRegistryTime(t *testing.T) {
	testcases := []struct {
		name     string
		value    string
		expected time.Time
		wantErr  bool
	}{
		{name: "Unset", value: RegistryUnsetTime, expected: time.Time{}},
		{name: "Empty", value: "", expected: time.Time{}},
		{name: "RFC3339", value: "2024-03-01T10:20:30Z", expected: time.Date(2024, 3, 1, 10, 20, 30, 0, time.UTC)},
		{name: "RFC3339Offset", value: "2024-03-01T12:20:30+02:00", expected: time.Date(2024, 3, 1, 10, 20, 30, 0, time.UTC)},
		{name: "NoZone", value: "2024-03-01T10:20:30", expected: time.Date(2024, 3, 1, 10, 20, 30, 0, time.UTC)},
		{name: "NoZoneFraction", value: "2024-03-01T10:20:30.1234567", expected: time.Date(2024, 3, 1, 10, 20, 30, 123456700, time.UTC)},
		{name: "Garbage", value: "yesterday", wantErr: true},
	}

	for _, tc := range testcases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseRegistryTime(tc.value)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.True(t, tc.expected.Equal(got), "expected %s, got %s", tc.expected, got)
		})
	}
}

func TestFormatRegistryTime(t *testing.T) {
	assert.Equal(t, RegistryUnsetTime, FormatRegistryTime(time.Time{}))

	ts := time.Date(2024, 3, 1, 12, 20, 30, 0, time.FixedZone("CEST", 2*60*60))
	assert.Equal(t, "2024-03-01T10:20:30Z", FormatRegistryTime(ts))

	parsed, err := ParseRegistryTime(FormatRegistryTime(ts))
	require.NoError(t, err)
	assert.True(t, ts.Equal(parsed))
}
