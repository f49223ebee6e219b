package serializer

type PatchOp string

const (
	PatchAdd     PatchOp = "add"
	PatchRemove  PatchOp = "remove"
	PatchReplace PatchOp = "replace"
	PatchTest    PatchOp = "test"
)

// PatchOperation is one RFC 6902 operation addressed at the wire form of a record.
type PatchOperation struct {
	Op    PatchOp     `json:"op"`
	Path  string      `json:"path"`
	Value interface{} `json:"value,omitempty"`
}
