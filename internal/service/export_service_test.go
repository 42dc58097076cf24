package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sondong-edu/school-admin-api/pkg/export"
)

func TestExportServiceRendersEveryFormat(t *testing.T) {
	svc := NewExportService(nil)
	data := export.Dataset{
		Title:   "room",
		Headers: []string{"id", "name"},
		Rows:    []map[string]string{{"id": "1", "name": "Lab"}},
	}

	for _, f := range []export.Format{export.FormatCSV, export.FormatPDF, export.FormatXLSX} {
		payload, err := svc.Render(f, data)
		require.NoError(t, err, f)
		assert.NotEmpty(t, payload, f)
	}

	_, err := svc.Render(export.Format("docx"), data)
	assert.Error(t, err)
}
