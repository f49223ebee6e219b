package helpers

import (
	"testing"

	"github.com/lamassuiot/lamassuiot/registry/v3/pkg/serializer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONPointerBuilder(t *testing.T) {
	assert.Equal(t, "/authentication/type", JSONPointerBuilder("authentication", "type").Pointer)
	assert.Equal(t, "/a~1b/c~0d", JSONPointerBuilder("a/b", "c~d").Pointer)
	assert.Equal(t, "", JSONPointerBuilder().Pointer)
}

func TestPatchBuilder(t *testing.T) {
	patches := NewPatchBuilder().
		Add(JSONPointerBuilder("statusReason"), "maintenance").
		Replace(JSONPointerBuilder("status"), "Disabled").
		Remove(JSONPointerBuilder("etag")).
		Build()

	require.Len(t, patches, 3)
	assert.Equal(t, serializer.PatchAdd, patches[0].Op)
	assert.Equal(t, "/statusReason", patches[0].Path)
	assert.Equal(t, serializer.PatchReplace, patches[1].Op)
	assert.Equal(t, serializer.PatchRemove, patches[2].Op)
	assert.Nil(t, patches[2].Value)
}

func TestApplyPatchesToJSON(t *testing.T) {
	patches := NewPatchBuilder().
		Replace(JSONPointerBuilder("status"), "Disabled").
		Add(JSONPointerBuilder("labels", "site"), "madrid").
		Remove(JSONPointerBuilder("missing")).
		Build()

	patched, err := ApplyPatchesToJSON([]byte(`{"id":"dev-1","status":"Enabled"}`), patches)
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"dev-1","status":"Disabled","labels":{"site":"madrid"}}`, string(patched))
}

func TestApplyPatchesToJSONFailedTest(t *testing.T) {
	patches := NewPatchBuilder().
		Test(JSONPointerBuilder("status"), "Enabled").
		Build()

	_, err := ApplyPatchesToJSON([]byte(`{"status":"Disabled"}`), patches)
	assert.Error(t, err)
}

func TestApplyPatchesToJSONInvalidDocument(t *testing.T) {
	patches := NewPatchBuilder().Replace(JSONPointerBuilder("status"), "Enabled").Build()

	_, err := ApplyPatchesToJSON([]byte(`not-json`), patches)
	assert.Error(t, err)
}
