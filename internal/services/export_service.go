package services

import (
	"fmt"

	"github.com/alimgiray/gitfocus/internal/models"
	"github.com/xuri/excelize/v2"
)

type ExportService struct{}

func NewExportService() *ExportService {
	return &ExportService{}
}

// BuildWorkbook renders an analysis result as an Excel workbook with one
// row per ranked finding. The caller owns closing the returned file.
func (s *ExportService) BuildWorkbook(result *models.AnalysisResult) (*excelize.File, error) {
	f := excelize.NewFile()

	sheet := "Focus Items"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, err
	}

	headers := []string{"Rank", "Category", "Title", "Score", "Link"}
	for i, header := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheet, cell, header); err != nil {
			return nil, err
		}
	}

	for i, finding := range result.Findings {
		row := i + 2
		values := []interface{}{
			finding.Rank,
			string(finding.Category),
			finding.Title,
			finding.Score,
			finding.Link,
		}
		for col, value := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return nil, err
			}
		}
	}

	if err := f.SetColWidth(sheet, "C", "C", 60); err != nil {
		return nil, err
	}
	if err := f.SetColWidth(sheet, "E", "E", 50); err != nil {
		return nil, err
	}

	return f, nil
}

// ExportFilename builds the attachment name for a user's findings export.
func (s *ExportService) ExportFilename(username string) string {
	return fmt.Sprintf("gitfocus-%s.xlsx", username)
}
