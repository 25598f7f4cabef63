package report

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/skillfolio/skillfolio/internal/logging"
	"github.com/skillfolio/skillfolio/internal/skills"
)

// Exporter ties a paginator to a concrete surface and output path. It never
// touches the live store: callers hand it a snapshot, so a failed export
// leaves the session state untouched and can simply be retried.
type Exporter struct {
	log      *logging.Logger
	basePath string
	fontPath string
}

// NewExporter returns an exporter writing documents under basePath.
func NewExporter(basePath, fontPath string, log *logging.Logger) *Exporter {
	return &Exporter{log: log, basePath: basePath, fontPath: fontPath}
}

// Export generates and saves the report for the given snapshot. It returns
// the base path the pages were written under.
func (e *Exporter) Export(snapshot []skills.Record, radar []skills.RadarPoint) (string, error) {
	runID := uuid.NewString()
	e.log.Info("report export started", "run_id", runID, "skills", len(snapshot))

	surface, err := NewImageSurface(e.fontPath)
	if err != nil {
		e.log.Error("report surface unavailable", "run_id", runID, "error", err)
		return "", fmt.Errorf("create surface: %w", err)
	}

	p := NewPaginator(surface)
	if err := p.Generate(snapshot, radar); err != nil {
		e.log.Error("report generation failed", "run_id", runID, "error", err)
		return "", fmt.Errorf("generate report: %w", err)
	}

	if err := surface.Save(e.basePath); err != nil {
		e.log.Error("report save failed", "run_id", runID, "error", err)
		return "", fmt.Errorf("save report: %w", err)
	}

	e.log.Info("report export finished", "run_id", runID, "pages", p.Pages(), "path", e.basePath)
	return e.basePath, nil
}
