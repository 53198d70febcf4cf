package dataset

import (
	"bytes"
	_ "embed"
	"fmt"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"gopkg.in/yaml.v3"
)

//go:embed data/machines.schema.json
var schemaJSON []byte

const schemaName = "machines.schema.json"

var (
	schemaPrinter = message.NewPrinter(language.English)
	recordSchema  = mustCompileSchema(schemaJSON, schemaName)
)

func mustCompileSchema(raw []byte, name string) *jsonschema.Schema {
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
	if err != nil {
		panic(fmt.Sprintf("dataset: failed to parse embedded %s: %v", name, err))
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource(name, doc); err != nil {
		panic(fmt.Sprintf("dataset: failed to add %s resource: %v", name, err))
	}
	sch, err := compiler.Compile(name)
	if err != nil {
		panic(fmt.Sprintf("dataset: failed to compile %s: %v", name, err))
	}
	return sch
}

// decodeInstance turns raw dataset bytes into the generic value the schema
// validator expects.
func decodeInstance(data []byte, format Format) (any, error) {
	switch format {
	case FormatJSON:
		return jsonschema.UnmarshalJSON(bytes.NewReader(data))
	case FormatYAML:
		var doc any
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, err
		}
		return normalizeYAML(doc), nil
	default:
		return nil, fmt.Errorf("unsupported format %q", format)
	}
}

// normalizeYAML rewrites map[any]any nodes (non-string keys) into the
// map[string]any shape JSON Schema operates on.
func normalizeYAML(v any) any {
	switch val := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, v2 := range val {
			out[k] = normalizeYAML(v2)
		}
		return out
	case map[any]any:
		out := make(map[string]any, len(val))
		for k, v2 := range val {
			out[fmt.Sprint(k)] = normalizeYAML(v2)
		}
		return out
	case []any:
		out := make([]any, len(val))
		for i, v2 := range val {
			out[i] = normalizeYAML(v2)
		}
		return out
	default:
		return val
	}
}

// validateInstance returns one "location: message" line per leaf violation.
func validateInstance(instance any) []string {
	err := recordSchema.Validate(instance)
	if err == nil {
		return nil
	}
	ve, ok := err.(*jsonschema.ValidationError)
	if !ok {
		return []string{fmt.Sprintf("schema: %v", err)}
	}
	var problems []string
	collectViolations(ve, &problems)
	return problems
}

func collectViolations(ve *jsonschema.ValidationError, out *[]string) {
	if len(ve.Causes) == 0 {
		loc := "/"
		if len(ve.InstanceLocation) > 0 {
			loc = "/" + strings.Join(ve.InstanceLocation, "/")
		}
		*out = append(*out, fmt.Sprintf("%s: %s", loc, ve.ErrorKind.LocalizedString(schemaPrinter)))
		return
	}
	for _, c := range ve.Causes {
		collectViolations(c, out)
	}
}

//Personal.AI order the ending
