package types

import (
	"encoding/json"
	"reflect"

	"github.com/invopop/jsonschema"
)

// GenerateAnalysisResultSchema generates a JSON schema for the
// AnalysisResult wire contract.
func GenerateAnalysisResultSchema() (*jsonschema.Schema, error) {
	reflector := jsonschema.Reflector{
		ExpandedStruct:            true,
		AllowAdditionalProperties: false,
		Mapper: func(t reflect.Type) *jsonschema.Schema {
			// Optional metrics marshal to a number or null.
			if t.String() == "optional.Option[float64]" {
				return &jsonschema.Schema{
					OneOf: []*jsonschema.Schema{
						{Type: "number"},
						{Type: "null"},
					},
				}
			}
			if t.String() == "optional.Option[string]" {
				return &jsonschema.Schema{
					OneOf: []*jsonschema.Schema{
						{Type: "string"},
						{Type: "null"},
					},
				}
			}

			return nil
		},
	}

	schema := reflector.Reflect(&AnalysisResult{})

	schema.Title = "analysis-result"
	schema.Description = "Technical analysis result for a single symbol and period"
	schema.Version = "http://json-schema.org/draft-07/schema#"

	return schema, nil
}

// GenerateAnalysisResultSchemaJSON generates the AnalysisResult JSON schema
// as an indented JSON string.
func GenerateAnalysisResultSchemaJSON() (string, error) {
	schema, err := GenerateAnalysisResultSchema()
	if err != nil {
		return "", err
	}

	schemaBytes, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return "", err
	}

	return string(schemaBytes), nil
}
