package source

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/skillfolio/skillfolio/internal/logging"
)

const sampleExport = `[
  {
    "name": "Algorithms",
    "score": 7.5,
    "codeSnippets": ["func twoSum() {}"],
    "attemptTimestamps": ["2026-02-10T09:30:00Z", "2026-02-14T16:05:00Z"],
    "iterationDepth": 3,
    "flagged": true
  },
  {
    "name": "System Design",
    "score": 5.1
  }
]`

func TestDecodeRecords(t *testing.T) {
	records, err := DecodeRecords([]byte(sampleExport))
	if err != nil {
		t.Fatalf("DecodeRecords: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("got %d records, want 2", len(records))
	}

	algo := records[0]
	if algo.Name != "Algorithms" || algo.Score != 7.5 {
		t.Errorf("first record = %+v", algo)
	}
	if len(algo.AttemptTimestamps) != 2 {
		t.Errorf("timestamps = %v, want 2", algo.AttemptTimestamps)
	}
	if algo.IterationDepth == nil || *algo.IterationDepth != 3 {
		t.Errorf("iteration depth = %v, want 3", algo.IterationDepth)
	}
	if !algo.IsFlagged() {
		t.Error("first record should be flagged")
	}

	sys := records[1]
	if sys.IterationDepth != nil || sys.Flagged != nil {
		t.Errorf("optional fields should stay nil when absent: %+v", sys)
	}
	if len(sys.CodeSnippets) != 0 || len(sys.AttemptTimestamps) != 0 {
		t.Errorf("evidence should be empty when absent: %+v", sys)
	}
}

func TestDecodeRecords_SchemaRejections(t *testing.T) {
	cases := []struct {
		name string
		data string
	}{
		{"not an array", `{"name": "Algorithms"}`},
		{"missing score", `[{"name": "Algorithms"}]`},
		{"score above range", `[{"name": "Algorithms", "score": 11}]`},
		{"score below range", `[{"name": "Algorithms", "score": -1}]`},
		{"empty name", `[{"name": "", "score": 5}]`},
		{"unknown field", `[{"name": "Algorithms", "score": 5, "grade": "A"}]`},
		{"not JSON", `skills: yes`},
	}
	for _, tc := range cases {
		if _, err := DecodeRecords([]byte(tc.data)); err == nil {
			t.Errorf("%s: decode succeeded, want error", tc.name)
		}
	}
}

func TestDecodeRecords_BadTimestamp(t *testing.T) {
	data := `[{"name": "Algorithms", "score": 5, "attemptTimestamps": ["yesterday"]}]`
	if _, err := DecodeRecords([]byte(data)); err == nil {
		t.Error("decode succeeded, want timestamp error")
	}
}

func TestJSONLoader_Load(t *testing.T) {
	path := filepath.Join(t.TempDir(), "assessment.json")
	if err := os.WriteFile(path, []byte(sampleExport), 0o644); err != nil {
		t.Fatal(err)
	}
	loader := NewJSONLoader(path, logging.Nop())
	records, err := loader.Load(context.Background())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(records) != 2 {
		t.Errorf("got %d records, want 2", len(records))
	}
}

func TestJSONLoader_MissingFile(t *testing.T) {
	loader := NewJSONLoader(filepath.Join(t.TempDir(), "nope.json"), logging.Nop())
	if _, err := loader.Load(context.Background()); err == nil {
		t.Error("Load succeeded on a missing file")
	}
}

func TestForPath(t *testing.T) {
	log := logging.Nop()
	if _, err := ForPath("a.json", "auto", log); err != nil {
		t.Errorf("json auto: %v", err)
	}
	if _, err := ForPath("a.db", "auto", log); err != nil {
		t.Errorf("sqlite auto: %v", err)
	}
	if _, err := ForPath("a.txt", "auto", log); err == nil {
		t.Error("unknown extension should fail")
	}
	if _, err := ForPath("a.txt", "json", log); err != nil {
		t.Errorf("explicit format: %v", err)
	}
}
