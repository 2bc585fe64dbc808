package question

import (
	"errors"
	"testing"
)

func TestValidateShape_MissingRequiredField(t *testing.T) {
	raw := []byte(`{"question": "What is the capital of France?", "options": ["A", "B", "C", "D"]}`)
	err := validateShape("choice-question", choiceSchema, raw)
	if err == nil {
		t.Fatal("expected error for missing correct_answer")
	}
	var schemaErr *SchemaError
	if !errors.As(err, &schemaErr) {
		t.Fatalf("expected *SchemaError, got %T: %v", err, err)
	}
	if schemaErr.Field != "shape" {
		t.Errorf("expected shape field, got %q", schemaErr.Field)
	}
}

func TestValidateShape_WrongType(t *testing.T) {
	raw := []byte(`{"question": 42, "options": ["A", "B", "C", "D"], "correct_answer": "A"}`)
	err := validateShape("choice-question", choiceSchema, raw)
	if err == nil {
		t.Fatal("expected error for non-string question")
	}
	var schemaErr *SchemaError
	if !errors.As(err, &schemaErr) {
		t.Fatalf("expected *SchemaError, got %T", err)
	}
}

func TestValidateShape_NotJSON(t *testing.T) {
	err := validateShape("choice-question", choiceSchema, []byte("not json at all"))
	if err == nil {
		t.Fatal("expected error")
	}
	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("expected *ParseError, got %T", err)
	}
}

func TestGetCompiledSchema_Caches(t *testing.T) {
	first, err := getCompiledSchema("blank-question", blankSchema)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := getCompiledSchema("blank-question", blankSchema)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first != second {
		t.Error("expected cached schema to be reused")
	}
}
