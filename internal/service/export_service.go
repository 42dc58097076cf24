package service

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/sondong-edu/school-admin-api/pkg/export"
)

// exportPageSize bounds each repository read while collecting export rows.
const exportPageSize = 100

// ExportService renders datasets into downloadable documents.
type ExportService struct {
	renderers map[export.Format]export.Renderer
	logger    *zap.Logger
}

// NewExportService constructs an ExportService with the CSV, PDF and XLSX renderers.
func NewExportService(logger *zap.Logger) *ExportService {
	if logger == nil {
		logger = zap.NewNop()
	}
	renderers := make(map[export.Format]export.Renderer)
	for _, f := range []export.Format{export.FormatCSV, export.FormatPDF, export.FormatXLSX} {
		renderers[f] = export.NewRenderer(f)
	}
	return &ExportService{renderers: renderers, logger: logger}
}

// Render encodes the dataset in the requested format.
func (s *ExportService) Render(format export.Format, data export.Dataset) ([]byte, error) {
	renderer, ok := s.renderers[format]
	if !ok {
		return nil, fmt.Errorf("unsupported format %s", format)
	}
	payload, err := renderer.Render(data)
	if err != nil {
		return nil, err
	}
	s.logger.Debug("export rendered",
		zap.String("title", data.Title),
		zap.String("format", string(format)),
		zap.Int("rows", len(data.Rows)),
		zap.Int("bytes", len(payload)),
	)
	return payload, nil
}
