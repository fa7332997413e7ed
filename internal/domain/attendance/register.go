package attendance

import (
	"fmt"
	"io"
	"time"

	"github.com/xuri/excelize/v2"
)

const registerSheet = "Attendance"

// WriteRegisterXLSX renders the monthly register as a spreadsheet.
func WriteRegisterXLSX(w io.Writer, rows []RegisterRow) error {
	f := excelize.NewFile()
	defer f.Close()

	f.SetSheetName(f.GetSheetName(0), registerSheet)

	headers := []string{"Date", "Employee", "Status", "Time In", "Time Out"}
	for i, header := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(registerSheet, cell, header); err != nil {
			return err
		}
	}

	for i, row := range rows {
		values := []any{
			row.Date.Format("2006-01-02"),
			row.EmployeeName,
			row.Status,
			formatClock(row.TimeIn),
			formatClock(row.TimeOut),
		}
		for j, value := range values {
			cell, err := excelize.CoordinatesToCellName(j+1, i+2)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(registerSheet, cell, value); err != nil {
				return err
			}
		}
	}

	if err := f.SetColWidth(registerSheet, "A", "E", 16); err != nil {
		return err
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("write register: %w", err)
	}
	return nil
}

func formatClock(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format("15:04")
}
