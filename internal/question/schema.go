package question

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// choiceSchema is the JSON Schema a multiple-choice candidate must satisfy
// before structural validation runs.
var choiceSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"question": map[string]any{
			"type":        "string",
			"minLength":   10,
			"maxLength":   500,
			"description": "The question text",
		},
		"options": map[string]any{
			"type":        "array",
			"items":       map[string]any{"type": "string"},
			"minItems":    4,
			"maxItems":    4,
			"description": "Exactly 4 answer options",
		},
		"correct_answer": map[string]any{
			"type":        "string",
			"description": "The correct answer, matching one option exactly",
		},
	},
	"required": []any{"question", "options", "correct_answer"},
}

// blankSchema is the JSON Schema a fill-in-the-blank candidate must satisfy
// before structural validation runs.
var blankSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"question": map[string]any{
			"type":        "string",
			"minLength":   15,
			"maxLength":   500,
			"description": "A sentence with '_____' marking the blank position",
		},
		"answer": map[string]any{
			"type":        "string",
			"minLength":   1,
			"maxLength":   100,
			"description": "The correct word or short phrase",
		},
	},
	"required": []any{"question", "answer"},
}

// schemaCache caches compiled JSON schemas by name.
var schemaCache sync.Map // map[string]*jsonschema.Schema

// validateShape validates raw JSON against the named schema definition.
// A parse failure is reported distinctly from a schema violation so the
// generation engine can classify the attempt.
func validateShape(name string, def map[string]any, raw []byte) error {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return &ParseError{Err: err}
	}

	compiled, err := getCompiledSchema(name, def)
	if err != nil {
		return fmt.Errorf("compile schema %q: %w", name, err)
	}

	if err := compiled.Validate(parsed); err != nil {
		return &SchemaError{Field: "shape", Message: err.Error()}
	}

	return nil
}

// getCompiledSchema returns a cached compiled schema or compiles and caches it.
func getCompiledSchema(name string, def map[string]any) (*jsonschema.Schema, error) {
	if cached, ok := schemaCache.Load(name); ok {
		return cached.(*jsonschema.Schema), nil
	}

	// The jsonschema library expects a parsed JSON value (any), not raw
	// bytes. Marshal then unmarshal to get a clean any representation.
	defBytes, err := json.Marshal(def)
	if err != nil {
		return nil, fmt.Errorf("marshal schema definition: %w", err)
	}
	var defParsed any
	if err := json.Unmarshal(defBytes, &defParsed); err != nil {
		return nil, fmt.Errorf("parse schema definition: %w", err)
	}

	c := jsonschema.NewCompiler()
	schemaURL := fmt.Sprintf("schema://%s.json", name)
	if err := c.AddResource(schemaURL, defParsed); err != nil {
		return nil, fmt.Errorf("add resource: %w", err)
	}

	compiled, err := c.Compile(schemaURL)
	if err != nil {
		return nil, fmt.Errorf("compile: %w", err)
	}

	schemaCache.Store(name, compiled)
	return compiled, nil
}
