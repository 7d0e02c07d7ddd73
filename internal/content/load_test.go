package content

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// removeJSONKey drops a top-level key from a JSON document.
func removeJSONKey(t *testing.T, raw []byte, key string) []byte {
	t.Helper()
	var doc map[string]any
	require.NoError(t, json.Unmarshal(raw, &doc))
	delete(doc, key)
	out, err := json.Marshal(doc)
	require.NoError(t, err)
	return out
}

func TestLoad(t *testing.T) {
	store, err := Load("testdata/site.json", "testdata/process.json")
	require.NoError(t, err)

	assert.Equal(t, "Test Person", store.Meta.Name)
	assert.Equal(t, "Headline", store.Hero.Headline)
	assert.Len(t, store.Projects, 2)
	assert.Equal(t, "case-a", store.Projects[0].Slug)
	assert.Equal(t, []string{"Go", "Gin", "SQLite"}, store.Projects[0].Meta.Stack)
	assert.Equal(t, "Systems & process", store.Process.Meta.Title)
	assert.Len(t, store.Process.Loop.Steps, 1)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load("testdata/nope.json", "testdata/process.json")
	var le *LoadError
	require.ErrorAs(t, err, &le)
	assert.Equal(t, "testdata/nope.json", le.File)
}

func TestLoadMalformedJSON(t *testing.T) {
	dir := t.TempDir()
	site := filepath.Join(dir, "site.json")
	require.NoError(t, os.WriteFile(site, []byte("{not json"), 0o644))

	_, err := Load(site, "testdata/process.json")
	var le *LoadError
	require.ErrorAs(t, err, &le)
	assert.Equal(t, site, le.File)
}

func TestLoadMissingSection(t *testing.T) {
	raw, err := os.ReadFile("testdata/site.json")
	require.NoError(t, err)

	// Strip the hero section and expect validation to name it.
	dir := t.TempDir()
	site := filepath.Join(dir, "site.json")
	stripped := removeJSONKey(t, raw, "hero")
	require.NoError(t, os.WriteFile(site, stripped, 0o644))

	_, err = Load(site, "testdata/process.json")
	var le *LoadError
	require.ErrorAs(t, err, &le)
	assert.Equal(t, "hero", le.Section)
}

func TestLoadMissingProjects(t *testing.T) {
	raw, err := os.ReadFile("testdata/site.json")
	require.NoError(t, err)

	dir := t.TempDir()
	site := filepath.Join(dir, "site.json")
	stripped := removeJSONKey(t, raw, "projects")
	require.NoError(t, os.WriteFile(site, stripped, 0o644))

	_, err = Load(site, "testdata/process.json")
	var le *LoadError
	require.ErrorAs(t, err, &le)
	assert.Equal(t, "projects", le.Section)
}

func TestLoadEmptyProjectsIsValid(t *testing.T) {
	raw, err := os.ReadFile("testdata/site.json")
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(raw, &doc))
	doc["projects"] = []any{}
	out, err := json.Marshal(doc)
	require.NoError(t, err)

	dir := t.TempDir()
	site := filepath.Join(dir, "site.json")
	require.NoError(t, os.WriteFile(site, out, 0o644))

	store, err := Load(site, "testdata/process.json")
	require.NoError(t, err)
	assert.Empty(t, store.Projects)
}
