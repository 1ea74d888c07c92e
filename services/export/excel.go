package exportsvc

import (
	"bytes"
	"fmt"
	"time"

	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"

	"github.com/trezcool/mipango/core/plan"
)

const sheetName = "Course Plans"

var exportHeader = []string{
	"Subject", "Course Code", "Department", "Semester", "Academic Year",
	"Status", "Submitted By", "Reviewed By", "Comments", "Created", "Updated",
}

// PlansWorkbook renders a plan listing as an Excel workbook and returns
// it with a suggested filename.
func PlansWorkbook(plans []plan.CoursePlan) (*bytes.Buffer, string, error) {
	f := excelize.NewFile()
	defer f.Close()

	f.SetSheetName(f.GetSheetName(0), sheetName)

	for i, h := range exportHeader {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, "", errors.Wrap(err, "locating header cell")
		}
		if err = f.SetCellValue(sheetName, cell, h); err != nil {
			return nil, "", errors.Wrap(err, "writing header")
		}
	}

	for r, p := range plans {
		values := []interface{}{
			p.Subject, p.CourseCode, p.Department, p.Semester, p.AcademicYear,
			p.Status, p.CreatedByName, p.ReviewedBy, p.Comments,
			formatDate(p.CreatedAt), formatDate(p.UpdatedAt),
		}
		for c, v := range values {
			cell, err := excelize.CoordinatesToCellName(c+1, r+2)
			if err != nil {
				return nil, "", errors.Wrap(err, "locating cell")
			}
			if err = f.SetCellValue(sheetName, cell, v); err != nil {
				return nil, "", errors.Wrap(err, "writing row")
			}
		}
	}

	if err := f.SetColWidth(sheetName, "A", "K", 22); err != nil {
		return nil, "", errors.Wrap(err, "sizing columns")
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, "", errors.Wrap(err, "writing workbook")
	}
	filename := fmt.Sprintf("course-plans-%s.xlsx", time.Now().UTC().Format("2006-01-02"))
	return buf, filename, nil
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("2006-01-02 15:04")
}
