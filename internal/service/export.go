package service

import (
	"context"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/xolan/timers/internal/config"
	"github.com/xolan/timers/internal/export"
	"github.com/xolan/timers/internal/osutil"
)

// ExportService writes the report hierarchy to export files
type ExportService struct {
	report *ReportService
	config config.Config
	now    func() time.Time
}

// NewExportService creates a new ExportService
func NewExportService(reportService *ReportService, cfg config.Config, now func() time.Time) *ExportService {
	if now == nil {
		now = time.Now
	}
	return &ExportService{report: reportService, config: cfg, now: now}
}

// Dir returns the export directory: the configured export_dir, else ~/Downloads.
func (s *ExportService) Dir() (string, error) {
	dir := s.config.ExportDir
	if dir == "" {
		return osutil.DownloadsDir()
	}
	if dir == "~" || strings.HasPrefix(dir, "~/") {
		home, err := osutil.Provider.UserHomeDir()
		if err != nil {
			return "", err
		}
		dir = filepath.Join(home, strings.TrimPrefix(dir, "~"))
	}
	return dir, nil
}

// Export writes an export file into dir (the default directory when empty) and returns its path.
func (s *ExportService) Export(ctx context.Context, format export.Format, dir string) (string, error) {
	if dir == "" {
		var err error
		dir, err = s.Dir()
		if err != nil {
			return "", err
		}
	}

	years, err := s.report.Build(ctx)
	if err != nil {
		return "", err
	}
	return export.Write(dir, format, years, s.now())
}

// WriteTo writes the export document to w instead of a file.
func (s *ExportService) WriteTo(ctx context.Context, w io.Writer, format export.Format) error {
	years, err := s.report.Build(ctx)
	if err != nil {
		return err
	}
	if format == export.FormatCSV {
		return export.WriteCSV(w, years, s.now())
	}
	return export.WriteJSON(w, years, s.now())
}
