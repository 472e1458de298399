package schemas

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSchema = `{
	"$schema": "http://json-schema.org/draft-07/schema#",
	"type": "object",
	"required": ["name"],
	"properties": {
		"name": { "type": "string", "minLength": 1 },
		"count": { "type": "integer", "minimum": 0 }
	}
}`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestResolveSchemaPath(t *testing.T) {
	t.Run("found relative to repo root", func(t *testing.T) {
		path := ResolveSchemaPath("schemas/dictionary.schema.json")
		require.NotEmpty(t, path)
		assert.FileExists(t, path)
	})

	t.Run("missing schema yields empty", func(t *testing.T) {
		assert.Empty(t, ResolveSchemaPath("schemas/no-such-schema.json"))
	})
}

func TestValidateBytes(t *testing.T) {
	schemaPath := writeFile(t, "test.schema.json", testSchema)

	t.Run("valid document", func(t *testing.T) {
		err := ValidateBytes(schemaPath, []byte(`{"name": "ok", "count": 3}`))
		assert.NoError(t, err)
	})

	t.Run("missing required field", func(t *testing.T) {
		err := ValidateBytes(schemaPath, []byte(`{"count": 3}`))
		require.Error(t, err)

		var valErr *ValidationError
		require.ErrorAs(t, err, &valErr)
		require.NotEmpty(t, valErr.Errors)
		assert.Contains(t, err.Error(), "name")
	})

	t.Run("wrong type", func(t *testing.T) {
		err := ValidateBytes(schemaPath, []byte(`{"name": "ok", "count": "three"}`))

		var valErr *ValidationError
		require.ErrorAs(t, err, &valErr)
	})

	t.Run("schema file missing", func(t *testing.T) {
		err := ValidateBytes(filepath.Join(t.TempDir(), "absent.json"), []byte(`{}`))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not found")
	})
}

func TestValidateJSON(t *testing.T) {
	schemaPath := writeFile(t, "test.schema.json", testSchema)

	t.Run("valid file", func(t *testing.T) {
		docPath := writeFile(t, "doc.json", `{"name": "ok"}`)
		assert.NoError(t, ValidateJSON(schemaPath, docPath))
	})

	t.Run("invalid file", func(t *testing.T) {
		docPath := writeFile(t, "doc.json", `{"name": ""}`)
		assert.Error(t, ValidateJSON(schemaPath, docPath))
	})

	t.Run("missing file", func(t *testing.T) {
		err := ValidateJSON(schemaPath, filepath.Join(t.TempDir(), "absent.json"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to read")
	})
}
