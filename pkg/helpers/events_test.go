package helpers

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type eventPayload struct {
	DeviceID string `json:"deviceId"`
}

func TestBuildCloudEventFromContext(t *testing.T) {
	ctx := context.WithValue(context.Background(), RegistryContextKeySource, "registryctl")
	ctx = WithEventContext(ctx, EventTypeDevice, "device-1")

	ev, err := BuildCloudEvent(ctx, eventPayload{DeviceID: "device-1"})
	require.NoError(t, err)

	assert.Equal(t, "1.0", ev.SpecVersion())
	assert.Equal(t, "source://registryctl", ev.Source())
	assert.Equal(t, EventTypeDevice, ev.Type())
	assert.Equal(t, "device-1", ev.Subject())
	assert.NotEmpty(t, ev.ID())
	assert.NoError(t, ev.Validate())
}

func TestBuildCloudEventUnknownSource(t *testing.T) {
	ev, err := BuildCloudEvent(context.Background(), eventPayload{DeviceID: "device-1"})
	require.NoError(t, err)
	assert.Equal(t, "source://unknown", ev.Source())
	assert.Equal(t, "", ev.Subject())
}

func TestCloudEventRoundTrip(t *testing.T) {
	ctx := WithEventContext(context.Background(), EventTypeDevice, "")
	ev, err := BuildCloudEvent(ctx, eventPayload{DeviceID: "device-1"})
	require.NoError(t, err)

	raw, err := json.Marshal(ev)
	require.NoError(t, err)

	parsed, err := ParseCloudEvent(raw)
	require.NoError(t, err)

	body, err := GetEventBody[eventPayload](parsed)
	require.NoError(t, err)
	assert.Equal(t, "device-1", body.DeviceID)
}

func TestGetEventBodyNil(t *testing.T) {
	_, err := GetEventBody[eventPayload](nil)
	assert.EqualError(t, err, "cloud event is null")
}

func TestParseCloudEventInvalid(t *testing.T) {
	_, err := ParseCloudEvent([]byte("not-json"))
	assert.Error(t, err)
}
