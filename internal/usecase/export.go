package usecase

import (
	"bytes"
	"fmt"
	"time"

	"go-jobportal-backend/internal/domain"

	"github.com/xuri/excelize/v2"
)

var applicationColumns = []string{"APPLICATION ID", "APPLICANT EMAIL", "STATUS", "SUBSCRIBED", "APPLIED AT", "RESUME"}

// exportApplications writes the job's applications to an XLSX sheet in the
// order they were listed.
func exportApplications(job *domain.Job, apps []domain.Application, now time.Time) ([]byte, string, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Applications"
	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return nil, "", fmt.Errorf("failed to name sheet: %w", err)
	}

	for i, header := range applicationColumns {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheetName, cell, header)
	}

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "#FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"#1E3A5F"}},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	endCell, _ := excelize.CoordinatesToCellName(len(applicationColumns), 1)
	f.SetCellStyle(sheetName, "A1", endCell, headerStyle)

	for rowIdx, app := range apps {
		subscribed := "NO"
		if app.Subscribed {
			subscribed = "YES"
		}
		row := []interface{}{
			app.ID,
			app.ApplicantEmail,
			app.Status,
			subscribed,
			app.AppliedAt.UTC().Format(time.RFC3339),
			app.Resume,
		}
		cell, _ := excelize.CoordinatesToCellName(1, rowIdx+2)
		if err := f.SetSheetRow(sheetName, cell, &row); err != nil {
			return nil, "", fmt.Errorf("failed to write row %d: %w", rowIdx+2, err)
		}
	}

	for i := range applicationColumns {
		colName, _ := excelize.ColumnNumberToName(i + 1)
		f.SetColWidth(sheetName, colName, colName, 24)
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, "", fmt.Errorf("failed to write Excel file: %w", err)
	}

	filename := fmt.Sprintf("applications_job_%d_%s.xlsx", job.ID, now.Format("20060102_150405"))
	return buf.Bytes(), filename, nil
}
