package events

import (
	"bytes"
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed schemas/*.json
var schemaFS embed.FS

// Contracts holds the compiled event schemas keyed by event type.
type Contracts struct {
	schemas map[string]*jsonschema.Schema
}

// LoadContracts compiles every embedded schema.
func LoadContracts() (*Contracts, error) {
	compiler := jsonschema.NewCompiler()
	compiler.Draft = jsonschema.Draft2020
	compiler.AssertFormat = true

	entries, err := fs.ReadDir(schemaFS, "schemas")
	if err != nil {
		return nil, fmt.Errorf("read schemas: %w", err)
	}

	c := &Contracts{schemas: make(map[string]*jsonschema.Schema, len(entries))}
	for _, e := range entries {
		name := e.Name()
		data, err := schemaFS.ReadFile("schemas/" + name)
		if err != nil {
			return nil, fmt.Errorf("read schema %s: %w", name, err)
		}
		if err := compiler.AddResource(name, bytes.NewReader(data)); err != nil {
			return nil, fmt.Errorf("add schema %s: %w", name, err)
		}
		schema, err := compiler.Compile(name)
		if err != nil {
			return nil, fmt.Errorf("compile schema %s: %w", name, err)
		}
		c.schemas[strings.TrimSuffix(name, ".json")] = schema
	}
	return c, nil
}

// Encode marshals the event and validates the JSON against its schema.
func (c *Contracts) Encode(e Event) ([]byte, error) {
	schema, ok := c.schemas[e.EventType()]
	if !ok {
		return nil, fmt.Errorf("no schema for event %q", e.EventType())
	}

	body, err := json.Marshal(e)
	if err != nil {
		return nil, fmt.Errorf("marshal %s: %w", e.EventType(), err)
	}

	var v any
	if err := json.Unmarshal(body, &v); err != nil {
		return nil, fmt.Errorf("decode %s: %w", e.EventType(), err)
	}
	if err := schema.Validate(v); err != nil {
		return nil, fmt.Errorf("event %s violates schema: %w", e.EventType(), err)
	}
	return body, nil
}

// Types lists the event types with a registered schema.
func (c *Contracts) Types() []string {
	out := make([]string, 0, len(c.schemas))
	for k := range c.schemas {
		out = append(out, k)
	}
	return out
}
