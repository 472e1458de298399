package dictionary

import (
	"encoding/json"
	"os"

	"github.com/jonathan/resume-ats/internal/schemas"
)

// SchemaRelPath is the repository-relative path of the dictionary schema.
const SchemaRelPath = "schemas/dictionary.schema.json"

// Load reads a user-supplied dictionary from a JSON file. When the schema
// file can be resolved the document is validated against it first, so a
// malformed fixture fails with field-level errors instead of odd scoring.
func Load(path string) (*Dictionary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Path: path, Message: "read failed", Cause: err}
	}

	if schemaPath := schemas.ResolveSchemaPath(SchemaRelPath); schemaPath != "" {
		if err := schemas.ValidateBytes(schemaPath, data); err != nil {
			return nil, &LoadError{Path: path, Message: "schema validation failed", Cause: err}
		}
	}

	var d Dictionary
	if err := json.Unmarshal(data, &d); err != nil {
		return nil, &LoadError{Path: path, Message: "invalid JSON", Cause: err}
	}
	if d.Version == "" || len(d.Skills) == 0 {
		return nil, &LoadError{Path: path, Message: "dictionary must declare a version and at least one skill"}
	}

	d.buildIndex()
	return &d, nil
}
