package report

import "context"

// ReportService renders reports over a date range.
type ReportService interface {
	// GeneratePrintable renders the printable HTML document for a report type
	GeneratePrintable(ctx context.Context, req ReportRequest) (Document, error)

	// GenerateWorkbook renders the XLSX export for a report type
	GenerateWorkbook(ctx context.Context, req ReportRequest) (Document, error)
}
