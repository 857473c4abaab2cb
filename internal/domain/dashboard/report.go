package dashboard

import (
	"bytes"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"
)

// SummaryPDF renders the dashboard KPIs and expiry breakdown as a one-page
// PDF for download.
func SummaryPDF(summary *Summary, today time.Time) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(40, 10, "Resourcing Dashboard Summary")
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Generated: %s", today.Format("2006-01-02")))
	pdf.Ln(10)

	pdf.Cell(0, 8, fmt.Sprintf("Total headcount: %d", summary.KPIs.TotalHeadcount))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("At-risk contracts: %d", summary.KPIs.AtRiskContracts))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Partially allocated: %d", summary.KPIs.PartiallyAllocated))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Active projects: %d", summary.KPIs.ActiveProjects))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 13)
	pdf.Cell(0, 8, "Expiring contracts")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 12)
	for _, bucket := range summary.Charts.ExpiringContractsBreakdown {
		pdf.Cell(0, 7, fmt.Sprintf("%s: %d", bucket.Name, bucket.Value))
		pdf.Ln(6)
	}
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 13)
	pdf.Cell(0, 8, "Soonest expiring")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 12)
	for _, emp := range summary.AtRiskEmployees {
		pdf.Cell(0, 7, fmt.Sprintf("%s (%s): %d days left", emp.Name, emp.Project, emp.DaysLeft))
		pdf.Ln(6)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
