package helpers

const (
	RegistryContextKeySource    string = "lamassu.io/ctx/source"
	RegistryContextKeyRequestID string = "lamassu.io/ctx/request-id"

	RegistryContextKeyEventType    string = "lamassu.io/ctx/cloudevent/type"
	RegistryContextKeyEventSubject string = "lamassu.io/ctx/cloudevent/subject"
)
