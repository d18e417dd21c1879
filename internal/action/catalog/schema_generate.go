package catalog

import (
	"encoding/json"
	"fmt"
	"reflect"

	"github.com/invopop/jsonschema"
)

// BuildSchema reflects EntryDocument into a JSON Schema designers and
// editor tooling can validate authored catalog files against, mirroring the
// teacher's effects/catalog schema generator.
func BuildSchema() (*jsonschema.Schema, error) {
	reflector := jsonschema.Reflector{
		RequiredFromJSONSchemaTags: true,
		DoNotReference:             true,
	}

	entrySchema := reflector.ReflectFromType(reflect.TypeOf(EntryDocument{}))
	if entrySchema == nil {
		return nil, fmt.Errorf("catalog: failed to reflect entry schema")
	}
	entrySchema.Version = ""
	entrySchema.Title = "Action Catalog Entry"
	entrySchema.Description = "Designer-authored action definition resolved into action.Definition at load time."

	root := &jsonschema.Schema{
		Version:     jsonschema.Version,
		Title:       "Action Catalog",
		Description: "Array of designer-authored action entries.",
		Type:        "array",
		Items:       entrySchema,
	}
	return root, nil
}

// MarshalSchema renders BuildSchema's result as indented JSON, ready to
// write to disk.
func MarshalSchema() ([]byte, error) {
	schema, err := BuildSchema()
	if err != nil {
		return nil, err
	}
	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("catalog: marshal schema: %w", err)
	}
	return append(data, '\n'), nil
}
