package jsonfile

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

const schemaURL = "tasks.schema.json"

// collectionSchema describes a task file. Either updatedAt or the legacy
// updateAt key must be present.
const collectionSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "array",
  "items": {
    "type": "object",
    "required": ["id", "name", "description", "status", "createdAt"],
    "properties": {
      "id": {"type": "integer", "minimum": 1},
      "name": {"type": "string"},
      "description": {"type": "string"},
      "status": {"type": "string"},
      "createdAt": {"type": "string", "minLength": 1},
      "updatedAt": {"type": "string", "minLength": 1},
      "updateAt": {"type": "string", "minLength": 1}
    },
    "anyOf": [
      {"required": ["updatedAt"]},
      {"required": ["updateAt"]}
    ]
  }
}`

// compileSchema compiles the embedded collection schema.
func compileSchema() (*jsonschema.Schema, error) {
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource(schemaURL, strings.NewReader(collectionSchema)); err != nil {
		return nil, fmt.Errorf("add schema resource: %w", err)
	}
	schema, err := compiler.Compile(schemaURL)
	if err != nil {
		return nil, fmt.Errorf("compile schema: %w", err)
	}
	return schema, nil
}

// validateDocument checks raw file contents against the schema.
func validateDocument(schema *jsonschema.Schema, data []byte) error {
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.UseNumber()
	var doc interface{}
	if err := decoder.Decode(&doc); err != nil {
		return err
	}
	if err := schema.Validate(doc); err != nil {
		return fmt.Errorf("schema validation: %w", err)
	}
	return nil
}
