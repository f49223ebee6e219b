package helpers

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	cloudevents "github.com/cloudevents/sdk-go/v2"
	"github.com/cloudevents/sdk-go/v2/event"
	"github.com/jakehl/goid"
)

const (
	EventTypeDevice             = "io.lamassuiot.registry.device"
	EventTypeExportImportDevice = "io.lamassuiot.registry.export-import-device"
	EventTypeJobProperties      = "io.lamassuiot.registry.job"
	EventTypeRegistryStatistics = "io.lamassuiot.registry.statistics"
)

// BuildCloudEvent wraps payload in a 1.0 CloudEvent. Source, type and subject
// are taken from the context when present.
func BuildCloudEvent(ctx context.Context, payload interface{}) (event.Event, error) {
	event := cloudevents.NewEvent()

	event.SetSpecVersion("1.0")
	event.SetTime(time.Now())
	event.SetID(goid.NewV4UUID().String())
	if err := event.SetData(cloudevents.ApplicationJSON, payload); err != nil {
		return event, fmt.Errorf("could not set cloud event data: %w", err)
	}

	eventSource, ok := ctx.Value(RegistryContextKeySource).(string)
	if ok && eventSource != "" {
		event.SetSource(fmt.Sprintf("source://%s", eventSource))
	} else {
		event.SetSource("source://unknown")
	}

	if eventType, ok := ctx.Value(RegistryContextKeyEventType).(string); ok {
		event.SetType(eventType)
	}

	if eventSubject, ok := ctx.Value(RegistryContextKeyEventSubject).(string); ok {
		event.SetSubject(eventSubject)
	}

	return event, nil
}

// WithEventContext tags ctx so that BuildCloudEvent stamps eventType and subject.
func WithEventContext(ctx context.Context, eventType, subject string) context.Context {
	ctx = context.WithValue(ctx, RegistryContextKeyEventType, eventType)
	if subject != "" {
		ctx = context.WithValue(ctx, RegistryContextKeyEventSubject, subject)
	}
	return ctx
}

func ParseCloudEvent(msg []byte) (*event.Event, error) {
	var event cloudevents.Event
	err := json.Unmarshal(msg, &event)
	if err != nil {
		return nil, err
	}

	return &event, nil
}

func GetEventBody[E any](cloudEvent *event.Event) (*E, error) {
	var elem *E
	if cloudEvent == nil {
		return nil, fmt.Errorf("cloud event is null")
	}

	if cloudEvent.Data() == nil {
		return nil, fmt.Errorf("cloud event data is null")
	}

	err := json.Unmarshal(cloudEvent.Data(), &elem)
	return elem, err
}
