package helpers

import (
	"encoding/json"
	"fmt"
	"strings"

	jsonpatch "github.com/evanphx/json-patch/v5"
	"github.com/lamassuiot/lamassuiot/registry/v3/pkg/serializer"
)

type JSONPointer struct {
	Pointer string
}

// JSONPointerBuilder constructs a JSON Pointer string from a sequence of path segments.
func JSONPointerBuilder(p ...string) JSONPointer {
	var sb strings.Builder
	for _, token := range p {
		sb.WriteByte('/')
		sb.WriteString(encodePatchKey(token))
	}
	return JSONPointer{Pointer: sb.String()}
}

var rfc6901Encoder = strings.NewReplacer("~", "~0", "/", "~1")

func encodePatchKey(k string) string {
	return rfc6901Encoder.Replace(k)
}

type PatchBuilder struct {
	patches []serializer.PatchOperation
}

func NewPatchBuilder() *PatchBuilder {
	return &PatchBuilder{}
}

func (pb *PatchBuilder) addOperation(op serializer.PatchOp, path JSONPointer, value interface{}) *PatchBuilder {
	pb.patches = append(pb.patches, serializer.PatchOperation{
		Op:    op,
		Path:  path.Pointer,
		Value: value,
	})
	return pb
}

func (pb *PatchBuilder) Add(path JSONPointer, value interface{}) *PatchBuilder {
	return pb.addOperation(serializer.PatchAdd, path, value)
}

func (pb *PatchBuilder) Replace(path JSONPointer, value interface{}) *PatchBuilder {
	return pb.addOperation(serializer.PatchReplace, path, value)
}

func (pb *PatchBuilder) Remove(path JSONPointer) *PatchBuilder {
	return pb.addOperation(serializer.PatchRemove, path, nil)
}

func (pb *PatchBuilder) Test(path JSONPointer, value interface{}) *PatchBuilder {
	return pb.addOperation(serializer.PatchTest, path, value)
}

func (pb *PatchBuilder) Build() []serializer.PatchOperation {
	return pb.patches
}

// ApplyPatchesToJSON applies patches to a JSON document. Removing a missing path is
// a no-op and adding below a missing parent creates the parent objects.
func ApplyPatchesToJSON(document []byte, patches []serializer.PatchOperation) ([]byte, error) {
	opts := jsonpatch.NewApplyOptions()
	opts.AllowMissingPathOnRemove = true
	opts.EnsurePathExistsOnAdd = true

	patchBytes, err := json.Marshal(patches)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal patches: %w", err)
	}

	patch, err := jsonpatch.DecodePatch(patchBytes)
	if err != nil {
		return nil, fmt.Errorf("failed to decode patches: %w", err)
	}

	res, err := patch.ApplyWithOptions(document, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to apply patches: %w", err)
	}

	return res, nil
}
