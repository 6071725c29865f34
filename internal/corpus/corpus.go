// Package corpus persists and validates per-document corpus snapshots.
// A snapshot is the canonical record of what was extracted from one
// document; parsing can be re-run from it without touching the source PDF.
package corpus

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/wegtools/minutes-tracker/internal/entity"
)

const snapshotSchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object",
  "required": ["source_path", "pages"],
  "properties": {
    "source_path": {"type": "string"},
    "used_layout": {"type": "boolean"},
    "used_ocr": {"type": "boolean"},
    "avg_chars_per_page": {"type": "number"},
    "pages": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["page_index", "text"],
        "properties": {
          "page_index": {"type": "integer", "minimum": 0},
          "text": {"type": "string"},
          "char_count": {"type": "integer"}
        }
      }
    }
  }
}`

var compiledSchema = jsonschema.MustCompileString("corpus-snapshot.schema.json", snapshotSchema)

// Save writes the snapshot as indented JSON, creating parent directories.
func Save(doc entity.IngestedDocument, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create corpus dir: %w", err)
	}
	b, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal corpus snapshot: %w", err)
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("write corpus snapshot: %w", err)
	}
	return nil
}

// Load reads and validates a snapshot. Any required-field or shape
// violation fails with a descriptive error; nothing is silently coerced.
func Load(path string) (entity.IngestedDocument, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return entity.IngestedDocument{}, fmt.Errorf("read corpus snapshot: %w", err)
	}
	doc, err := Parse(b)
	if err != nil {
		return entity.IngestedDocument{}, fmt.Errorf("corpus snapshot %s: %w", filepath.Base(path), err)
	}
	return doc, nil
}

// Parse validates raw snapshot JSON against the schema and decodes it.
func Parse(b []byte) (entity.IngestedDocument, error) {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return entity.IngestedDocument{}, fmt.Errorf("invalid JSON: %w", err)
	}
	if err := compiledSchema.Validate(v); err != nil {
		return entity.IngestedDocument{}, fmt.Errorf("snapshot does not match schema: %w", err)
	}
	var doc entity.IngestedDocument
	if err := json.Unmarshal(b, &doc); err != nil {
		return entity.IngestedDocument{}, fmt.Errorf("decode snapshot: %w", err)
	}
	return doc, nil
}

// SnapshotPath returns the canonical snapshot location for a source file.
func SnapshotPath(corpusDir, sourcePath string) string {
	base := filepath.Base(sourcePath)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	return filepath.Join(corpusDir, stem+".json")
}
