package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Kind names the typed accessor used for a field.
type Kind string

const (
	KindInt         Kind = "int"
	KindLong        Kind = "long"
	KindBool        Kind = "bool"
	KindString      Kind = "string"
	KindDecimal     Kind = "decimal"
	KindDateTime    Kind = "datetime"
	KindAccountType Kind = "account_type"
)

var knownKinds = map[Kind]bool{
	KindInt:         true,
	KindLong:        true,
	KindBool:        true,
	KindString:      true,
	KindDecimal:     true,
	KindDateTime:    true,
	KindAccountType: true,
}

// Schema describes the fields to extract from a response object.
type Schema struct {
	Name   string  `yaml:"name"`
	Fields []Field `yaml:"fields"`
}

// Field is one extracted member of a response object.
type Field struct {
	Name      string `yaml:"name"`
	Kind      Kind   `yaml:"kind"`
	Mandatory bool   `yaml:"mandatory,omitempty"`
}

// Load reads a schema YAML file from disk and validates it.
func Load(path string) (*Schema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading schema: %w", err)
	}
	var s Schema
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parsing schema: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Save writes a Schema to a YAML file.
func Save(path string, s *Schema) error {
	data, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("marshaling schema: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing schema: %w", err)
	}
	return nil
}

// Validate rejects empty or duplicate field names and unknown kinds.
func (s *Schema) Validate() error {
	var errs []error
	seen := make(map[string]bool, len(s.Fields))
	for i, f := range s.Fields {
		if f.Name == "" {
			errs = append(errs, fmt.Errorf("field %d: empty name", i))
			continue
		}
		if seen[f.Name] {
			errs = append(errs, fmt.Errorf("field %q: duplicate name", f.Name))
		}
		seen[f.Name] = true
		if !knownKinds[f.Kind] {
			errs = append(errs, fmt.Errorf("field %q: unknown kind %q", f.Name, f.Kind))
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("invalid schema %q: %w", s.Name, errors.Join(errs...))
	}
	return nil
}

// Default returns the schema of an account-info response.
func Default() *Schema {
	return &Schema{
		Name: "account-info",
		Fields: []Field{
			{Name: "account", Kind: KindString, Mandatory: true},
			{Name: "balance", Kind: KindDecimal, Mandatory: true},
			{Name: "currency", Kind: KindInt, Mandatory: true},
			{Name: "account_type", Kind: KindAccountType},
			{Name: "identified", Kind: KindBool},
			{Name: "operation_id", Kind: KindLong},
			{Name: "datetime", Kind: KindDateTime},
		},
	}
}
