// Package source supplies the initial skill records. The core treats a
// source as an opaque collaborator: latency and failure are its own; on
// failure no records are installed and the app shows an empty/error state.
package source

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/skillfolio/skillfolio/internal/logging"
	"github.com/skillfolio/skillfolio/internal/skills"
)

// Loader yields an ordered batch of skill records.
type Loader interface {
	Load(ctx context.Context) ([]skills.Record, error)
}

// ForPath picks a loader for the given data path. format may be "json",
// "sqlite", or "auto" (extension-driven).
func ForPath(path, format string, log *logging.Logger) (Loader, error) {
	if format == "" || format == "auto" {
		switch strings.ToLower(filepath.Ext(path)) {
		case ".json":
			format = "json"
		case ".db", ".sqlite", ".sqlite3":
			format = "sqlite"
		default:
			return nil, fmt.Errorf("cannot infer data format from %q", path)
		}
	}

	switch format {
	case "json":
		return NewJSONLoader(path, log), nil
	case "sqlite":
		return NewSQLiteLoader(path, log), nil
	default:
		return nil, fmt.Errorf("unknown data format %q", format)
	}
}
