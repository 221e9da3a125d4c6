package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkrantsberg/camlquery/model"
)

const customerYAML = `
Customer:
  properties:
    firstName: string
    lastName:
      type: string
      columnName: LastName
    age: number
    active: boolean
    joined: date
Document:
  identity:
    column: UniqueId
    type: Guid
  properties:
    title: string
`

func writeModels(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "models.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadModels(t *testing.T) {
	registry, err := LoadModels(writeModels(t, customerYAML))
	require.NoError(t, err)
	assert.Equal(t, []string{"Customer", "Document"}, registry.Names())

	customer, ok := registry.Lookup("Customer")
	require.True(t, ok)
	// YAML document order survives loading.
	assert.Equal(t, []string{"firstName", "lastName", "age", "active", "joined"}, customer.FieldNames())
	assert.Equal(t, "LastName", customer.ResolveColumn("lastName"))

	doc, ok := registry.Lookup("Document")
	require.True(t, ok)
	assert.Equal(t, "UniqueId", doc.IdentityColumn())
	typ, err := doc.ResolveType("UniqueId")
	require.NoError(t, err)
	assert.Equal(t, model.Guid, typ)
}

func TestLoadModels_InvalidType(t *testing.T) {
	_, err := LoadModels(writeModels(t, "Bad:\n  properties:\n    x: decimal\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown declared type")
}

func TestLoadModels_MissingFile(t *testing.T) {
	_, err := LoadModels(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestLoadFilter(t *testing.T) {
	path := filepath.Join(t.TempDir(), "filter.json")
	require.NoError(t, os.WriteFile(path,
		[]byte(`{"where": {"lastName": "Doe"}, "limit": 5}`), 0o644))

	f, err := LoadFilter(path)
	require.NoError(t, err)
	assert.NotNil(t, f.Where)
	assert.Equal(t, 5, f.Limit)
}

func TestLoadFilter_BadJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "filter.json")
	require.NoError(t, os.WriteFile(path, []byte(`{`), 0o644))

	_, err := LoadFilter(path)
	require.Error(t, err)
}
