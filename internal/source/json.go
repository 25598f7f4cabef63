package source

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/santhosh-tekuri/jsonschema/v6"

	"github.com/skillfolio/skillfolio/internal/logging"
	"github.com/skillfolio/skillfolio/internal/skills"
)

// recordsSchema constrains an assessment export before it is decoded. Only
// name and score are required; evidence fields are optional by design.
const recordsSchema = `{
  "type": "array",
  "items": {
    "type": "object",
    "required": ["name", "score"],
    "properties": {
      "name": {"type": "string", "minLength": 1},
      "score": {"type": "number", "minimum": 0, "maximum": 10},
      "codeSnippets": {"type": "array", "items": {"type": "string"}},
      "attemptTimestamps": {"type": "array", "items": {"type": "string", "format": "date-time"}},
      "iterationDepth": {"type": "integer", "minimum": 0},
      "flagged": {"type": "boolean"}
    },
    "additionalProperties": false
  }
}`

var (
	schemaOnce     sync.Once
	compiledSchema *jsonschema.Schema
	schemaErr      error
)

func recordsSchemaCompiled() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		doc, err := jsonschema.UnmarshalJSON(strings.NewReader(recordsSchema))
		if err != nil {
			schemaErr = fmt.Errorf("parse schema: %w", err)
			return
		}
		c := jsonschema.NewCompiler()
		if err := c.AddResource("schema://skills.json", doc); err != nil {
			schemaErr = fmt.Errorf("add schema resource: %w", err)
			return
		}
		compiledSchema, schemaErr = c.Compile("schema://skills.json")
	})
	return compiledSchema, schemaErr
}

// recordJSON is the wire shape of one record in an assessment export.
type recordJSON struct {
	Name              string   `json:"name"`
	Score             float64  `json:"score"`
	CodeSnippets      []string `json:"codeSnippets"`
	AttemptTimestamps []string `json:"attemptTimestamps"`
	IterationDepth    *int     `json:"iterationDepth"`
	Flagged           *bool    `json:"flagged"`
}

// JSONLoader reads records from an assessment export file.
type JSONLoader struct {
	path string
	log  *logging.Logger
}

// NewJSONLoader creates a loader for the given file.
func NewJSONLoader(path string, log *logging.Logger) *JSONLoader {
	return &JSONLoader{path: path, log: log}
}

// Load reads, schema-validates, and decodes the export.
func (l *JSONLoader) Load(ctx context.Context) ([]skills.Record, error) {
	data, err := os.ReadFile(l.path)
	if err != nil {
		return nil, fmt.Errorf("read assessment: %w", err)
	}
	records, err := DecodeRecords(data)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", l.path, err)
	}
	l.log.Info("assessment loaded", "path", l.path, "skills", len(records))
	return records, nil
}

// DecodeRecords validates raw JSON against the records schema and converts
// it into domain records, preserving document order.
func DecodeRecords(data []byte) ([]skills.Record, error) {
	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}
	schema, err := recordsSchemaCompiled()
	if err != nil {
		return nil, err
	}
	if err := schema.Validate(inst); err != nil {
		return nil, fmt.Errorf("schema validation failed: %w", err)
	}

	var wire []recordJSON
	if err := json.Unmarshal(data, &wire); err != nil {
		return nil, fmt.Errorf("decode records: %w", err)
	}

	records := make([]skills.Record, 0, len(wire))
	for _, w := range wire {
		r := skills.Record{
			Name:           w.Name,
			Score:          w.Score,
			CodeSnippets:   w.CodeSnippets,
			IterationDepth: w.IterationDepth,
			Flagged:        w.Flagged,
		}
		for _, raw := range w.AttemptTimestamps {
			ts, err := time.Parse(time.RFC3339, raw)
			if err != nil {
				return nil, fmt.Errorf("record %q: bad timestamp %q: %w", w.Name, raw, err)
			}
			r.AttemptTimestamps = append(r.AttemptTimestamps, ts)
		}
		records = append(records, r)
	}
	return records, nil
}
