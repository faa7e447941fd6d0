package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildWorkbook(t *testing.T) {
	svc := NewExportService()

	workbook, err := svc.BuildWorkbook(testResult())
	require.NoError(t, err)
	defer workbook.Close()

	t.Run("Header row is written", func(t *testing.T) {
		title, err := workbook.GetCellValue("Focus Items", "C1")
		require.NoError(t, err)
		assert.Equal(t, "Title", title)
	})

	t.Run("Findings are written in rank order", func(t *testing.T) {
		rank, err := workbook.GetCellValue("Focus Items", "A2")
		require.NoError(t, err)
		assert.Equal(t, "1", rank)

		title, err := workbook.GetCellValue("Focus Items", "C2")
		require.NoError(t, err)
		assert.Equal(t, "Add a license to testuser/popular-lib", title)

		category, err := workbook.GetCellValue("Focus Items", "B3")
		require.NoError(t, err)
		assert.Equal(t, "work", category)
	})
}

func TestExportFilename(t *testing.T) {
	svc := NewExportService()
	assert.Equal(t, "gitfocus-testuser.xlsx", svc.ExportFilename("testuser"))
}
