package usecase

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"slices"
	"strconv"
	"time"

	"recruitment-api/internal/domain"
	"recruitment-api/pkg/apperror"

	"github.com/xuri/excelize/v2"
)

var exportHeaders = []string{"ID", "EXTERNAL ID", "NAME", "AGE", "USERNAME", "EMAIL", "MAIN SKILL", "CREATED AT"}

// Export renders every candidate as a spreadsheet. An empty format means xlsx.
func (u *candidateUsecase) Export(ctx context.Context, format string) (*domain.ExportFile, error) {
	if format == "" {
		format = domain.ExportFormats[0]
	}
	if !slices.Contains(domain.ExportFormats, format) {
		return nil, apperror.BadRequest(fmt.Sprintf("Unsupported export format: %s", format))
	}

	candidates, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	stamp := time.Now().Format("20060102_150405")
	if format == "csv" {
		data, err := exportCSV(candidates)
		if err != nil {
			return nil, apperror.Internal(err)
		}
		return &domain.ExportFile{
			Filename:    fmt.Sprintf("candidates_%s.csv", stamp),
			ContentType: "text/csv",
			Data:        data,
		}, nil
	}

	data, err := exportExcel(candidates)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return &domain.ExportFile{
		Filename:    fmt.Sprintf("candidates_%s.xlsx", stamp),
		ContentType: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		Data:        data,
	}, nil
}

func exportRow(c domain.CandidateRecord) []string {
	return []string{
		strconv.FormatInt(c.ID, 10),
		c.ExternalID,
		c.Name,
		strconv.Itoa(c.Age),
		c.Username,
		c.Email,
		c.MainSkill,
		c.CreatedAt.Format(time.RFC3339),
	}
}

func exportExcel(candidates []domain.CandidateRecord) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Candidates"
	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return nil, err
	}

	for i, header := range exportHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheetName, cell, header)
	}

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "#FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"#1E3A5F"}},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	endCell, _ := excelize.CoordinatesToCellName(len(exportHeaders), 1)
	f.SetCellStyle(sheetName, "A1", endCell, headerStyle)

	for rowIdx, candidate := range candidates {
		for colIdx, value := range exportRow(candidate) {
			cell, _ := excelize.CoordinatesToCellName(colIdx+1, rowIdx+2)
			f.SetCellValue(sheetName, cell, value)
		}
	}

	for i := range exportHeaders {
		colName, _ := excelize.ColumnNumberToName(i + 1)
		f.SetColWidth(sheetName, colName, colName, 20)
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("failed to write Excel file: %w", err)
	}
	return buf.Bytes(), nil
}

func exportCSV(candidates []domain.CandidateRecord) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(exportHeaders); err != nil {
		return nil, err
	}
	for _, candidate := range candidates {
		if err := w.Write(exportRow(candidate)); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("failed to write CSV file: %w", err)
	}
	return buf.Bytes(), nil
}
