package catalog

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarshal_LoadsBackEquivalentCatalog(t *testing.T) {
	orig := Default()

	data, err := Marshal(orig)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, data, 0644))

	loaded, err := LoadFile(path)
	require.NoError(t, err)

	assert.Equal(t, orig.Conditions, loaded.Conditions)
	assert.Equal(t, orig.Questions, loaded.Questions)
	assert.Equal(t, orig.Categories, loaded.Categories)
	assert.Equal(t, orig.FallbackOrder, loaded.FallbackOrder)
	assert.Equal(t, orig.Urgency, loaded.Urgency)
	assert.Equal(t, orig.Fallback.Condition.Name, loaded.Fallback.Condition.Name)
	assert.Equal(t, orig.Fallback.Recommendations, loaded.Fallback.Recommendations)
}

func TestLoad_RejectsUnknownFields(t *testing.T) {
	_, err := Load(strings.NewReader("conditions: []\nsurprise: true\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decoding yaml")
}

func TestLoad_RejectsInconsistentCatalog(t *testing.T) {
	data, err := Marshal(Default())
	require.NoError(t, err)

	broken := strings.Replace(string(data), "last_resort: travel_history", "last_resort: travel_plans", 1)
	_, err = Load(strings.NewReader(broken))
	require.Error(t, err)
	assert.Contains(t, err.Error(), `last_resort: unknown question "travel_plans"`)
}

func TestLoadFile_MissingFile(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "opening catalog")
}

func TestReadFile_SkipsValidation(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.yaml")
	require.NoError(t, os.WriteFile(path, []byte("questions:\n  - key: empty\n    prompt: Nothing to choose\n"), 0644))

	c, err := ReadFile(path)
	require.NoError(t, err)
	require.Len(t, c.Questions, 1)
	assert.NotEmpty(t, Validate(c))

	_, err = LoadFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed validation")
}
