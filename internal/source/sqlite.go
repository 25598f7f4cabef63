package source

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	// Pure Go SQLite driver (no CGO).
	_ "modernc.org/sqlite"

	"github.com/skillfolio/skillfolio/internal/logging"
	"github.com/skillfolio/skillfolio/internal/skills"
)

// SQLiteLoader reads records from a flat skills table in an assessment
// database. The database is opened read-only; this process never writes
// scores back.
type SQLiteLoader struct {
	path string
	log  *logging.Logger
}

// NewSQLiteLoader creates a loader for the given database file.
func NewSQLiteLoader(path string, log *logging.Logger) *SQLiteLoader {
	return &SQLiteLoader{path: path, log: log}
}

// Load opens the database, reads all rows in position order, and closes it.
func (l *SQLiteLoader) Load(ctx context.Context) ([]skills.Record, error) {
	db, err := sql.Open("sqlite", "file:"+l.path+"?mode=ro")
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	defer db.Close()

	if _, err := db.ExecContext(ctx, "PRAGMA busy_timeout = 5000"); err != nil {
		return nil, fmt.Errorf("apply pragma: %w", err)
	}

	rows, err := db.QueryContext(ctx, `
		SELECT name, score, code_snippets, attempt_timestamps, iteration_depth, flagged
		FROM skills
		ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("query skills: %w", err)
	}
	defer rows.Close()

	var records []skills.Record
	for rows.Next() {
		var (
			r          skills.Record
			snippets   sql.NullString
			timestamps sql.NullString
			depth      sql.NullInt64
			flagged    sql.NullBool
		)
		if err := rows.Scan(&r.Name, &r.Score, &snippets, &timestamps, &depth, &flagged); err != nil {
			return nil, fmt.Errorf("scan skill row: %w", err)
		}

		// Snippet and timestamp columns hold JSON arrays.
		if snippets.Valid && snippets.String != "" {
			if err := json.Unmarshal([]byte(snippets.String), &r.CodeSnippets); err != nil {
				return nil, fmt.Errorf("record %q: bad snippets column: %w", r.Name, err)
			}
		}
		if timestamps.Valid && timestamps.String != "" {
			var raw []string
			if err := json.Unmarshal([]byte(timestamps.String), &raw); err != nil {
				return nil, fmt.Errorf("record %q: bad timestamps column: %w", r.Name, err)
			}
			for _, v := range raw {
				ts, err := time.Parse(time.RFC3339, v)
				if err != nil {
					return nil, fmt.Errorf("record %q: bad timestamp %q: %w", r.Name, v, err)
				}
				r.AttemptTimestamps = append(r.AttemptTimestamps, ts)
			}
		}
		if depth.Valid {
			d := int(depth.Int64)
			r.IterationDepth = &d
		}
		if flagged.Valid {
			f := flagged.Bool
			r.Flagged = &f
		}
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read skills: %w", err)
	}

	l.log.Info("assessment loaded", "path", l.path, "skills", len(records))
	return records, nil
}
