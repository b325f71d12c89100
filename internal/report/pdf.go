package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/go-pdf/fpdf"

	"github.com/example/faculty-scheduler/internal/schedule"
)

// WritePDF renders the schedule document as an A4 PDF: title, generation
// line, summary, schedule grid, faculty list, and subject list.
func WritePDF(w io.Writer, doc Document) error {
	pdf := newPDF()

	writeTitle(pdf, "Faculty Schedule Report")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 6, "Generated on: "+doc.GeneratedAt.Format("2006-01-02 15:04:05"), "", 1, "L", false, 0, "")
	if doc.DayFilter != schedule.AnyDay {
		pdf.CellFormat(0, 6, "Weekday filter: "+string(doc.DayFilter), "", 1, "L", false, 0, "")
	}
	pdf.Ln(6)

	writeSection(pdf, "Schedule Summary")
	pdf.SetFont("Helvetica", "", 10)
	summaryLines := []string{
		fmt.Sprintf("Total Bookings: %d", doc.Summary.TotalBookings),
		fmt.Sprintf("Faculty Involved: %d", doc.Summary.FacultyInvolved),
		fmt.Sprintf("Subjects Scheduled: %d", doc.Summary.SubjectsScheduled),
		fmt.Sprintf("Rooms in Use: %d", doc.Summary.RoomsInUse),
	}
	for _, line := range summaryLines {
		pdf.CellFormat(0, 5, line, "", 1, "L", false, 0, "")
	}
	pdf.Ln(6)

	if len(doc.Grid.Rows) > 0 && len(doc.Grid.Rooms) > 0 {
		writeSection(pdf, "Detailed Schedule")
		writeGridTable(pdf, doc.Grid)
		pdf.Ln(6)
	}

	if len(doc.Faculty) > 0 {
		writeSection(pdf, "Faculty List")
		header := []string{"Faculty ID", "Name", "Department"}
		widths := []float64{40, 70, 60}
		rows := make([][]string, len(doc.Faculty))
		for i, f := range doc.Faculty {
			department := f.Department
			if department == "" {
				department = "N/A"
			}
			rows[i] = []string{f.ID, f.Name, department}
		}
		writeTable(pdf, header, widths, rows)
		pdf.Ln(6)
	}

	if len(doc.Subjects) > 0 {
		writeSection(pdf, "Subject List")
		header := []string{"Subject Code", "Subject Name", "Credits"}
		widths := []float64{40, 90, 30}
		rows := make([][]string, len(doc.Subjects))
		for i, s := range doc.Subjects {
			rows[i] = []string{s.Code, s.Name, fmt.Sprintf("%d", s.Credits)}
		}
		writeTable(pdf, header, widths, rows)
	}

	return pdf.Output(w)
}

// WriteWorkloadPDF renders the standalone faculty workload report.
func WriteWorkloadPDF(w io.Writer, doc Document) error {
	pdf := newPDF()

	writeTitle(pdf, "Faculty Report")
	pdf.Ln(4)

	writeSection(pdf, "Faculty Workload Analysis")
	header := []string{"Faculty Name", "Total Classes", "Workload Status"}
	widths := []float64{70, 40, 60}
	rows := make([][]string, len(doc.Workloads))
	for i, workload := range doc.Workloads {
		rows[i] = []string{workload.FacultyName, fmt.Sprintf("%d", workload.Classes), workload.Status}
	}
	writeTable(pdf, header, widths, rows)

	return pdf.Output(w)
}

func newPDF() *fpdf.Fpdf {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(20, 20, 20)
	pdf.AddPage()
	return pdf
}

func writeTitle(pdf *fpdf.Fpdf, title string) {
	pdf.SetFont("Helvetica", "B", 18)
	pdf.SetTextColor(0, 0, 128)
	pdf.CellFormat(0, 12, title, "", 1, "C", false, 0, "")
	pdf.SetTextColor(0, 0, 0)
	pdf.Ln(2)
}

func writeSection(pdf *fpdf.Fpdf, heading string) {
	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetTextColor(0, 100, 0)
	pdf.CellFormat(0, 8, heading, "", 1, "L", false, 0, "")
	pdf.SetTextColor(0, 0, 0)
}

func writeGridTable(pdf *fpdf.Fpdf, grid Grid) {
	header := append([]string{"Time / Room"}, grid.Rooms...)
	labelWidth := 35.0
	pageWidth, _ := pdf.GetPageSize()
	usable := pageWidth - 40 - labelWidth
	roomWidth := usable / float64(len(grid.Rooms))

	widths := make([]float64, len(header))
	widths[0] = labelWidth
	for i := 1; i < len(widths); i++ {
		widths[i] = roomWidth
	}

	rows := make([][]string, len(grid.Rows))
	for i, row := range grid.Rows {
		cells := make([]string, len(row.Cells)+1)
		cells[0] = row.PeriodLabel
		for j, cell := range row.Cells {
			cells[j+1] = formatPDFCell(cell)
		}
		rows[i] = cells
	}

	writeTable(pdf, header, widths, rows)
}

func formatPDFCell(cell Cell) string {
	if len(cell.Entries) == 0 {
		return "Available"
	}
	parts := make([]string, len(cell.Entries))
	for i, entry := range cell.Entries {
		parts[i] = formatEntry(entry)
	}
	return strings.Join(parts, "\n")
}

// writeTable draws a bordered table with a shaded header row. Body cells use
// MultiCell so wrapped content keeps the row rectangular.
func writeTable(pdf *fpdf.Fpdf, header []string, widths []float64, rows [][]string) {
	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(128, 128, 128)
	pdf.SetTextColor(255, 255, 255)
	for i, label := range header {
		pdf.CellFormat(widths[i], 8, label, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 8)
	pdf.SetFillColor(245, 245, 220)
	pdf.SetTextColor(0, 0, 0)
	lineHeight := 5.0
	for _, row := range rows {
		height := lineHeight
		for i, value := range row {
			lines := pdf.SplitText(value, widths[i])
			if h := float64(len(lines)) * lineHeight; h > height {
				height = h
			}
		}

		x, y := pdf.GetXY()
		for i, value := range row {
			pdf.Rect(x, y, widths[i], height, "FD")
			pdf.SetXY(x, y)
			pdf.MultiCell(widths[i], lineHeight, value, "", "C", false)
			x += widths[i]
			pdf.SetXY(x, y)
		}
		pdf.SetXY(20, y+height)
	}
}
