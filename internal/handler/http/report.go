package http

import (
	"fmt"
	"net/http"

	"github.com/staffdesk/staffdesk-backend-go/internal/domain/report"
	"github.com/staffdesk/staffdesk-backend-go/internal/handler/http/response"
)

type ReportHandler interface {
	Printable(w http.ResponseWriter, r *http.Request)
	Export(w http.ResponseWriter, r *http.Request)
}

type reportHandlerImpl struct {
	reportService report.ReportService
}

func NewReportHandler(reportService report.ReportService) ReportHandler {
	return &reportHandlerImpl{
		reportService: reportService,
	}
}

// Printable implements ReportHandler.
func (h *reportHandlerImpl) Printable(w http.ResponseWriter, r *http.Request) {
	doc, err := h.reportService.GeneratePrintable(r.Context(), reportRequestFromQuery(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	writeDocument(w, doc)
}

// Export implements ReportHandler.
func (h *reportHandlerImpl) Export(w http.ResponseWriter, r *http.Request) {
	doc, err := h.reportService.GenerateWorkbook(r.Context(), reportRequestFromQuery(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	writeDocument(w, doc)
}

func reportRequestFromQuery(r *http.Request) report.ReportRequest {
	return report.ReportRequest{
		Type:      r.URL.Query().Get("type"),
		StartDate: r.URL.Query().Get("start_date"),
		EndDate:   r.URL.Query().Get("end_date"),
	}
}

func writeDocument(w http.ResponseWriter, doc report.Document) {
	w.Header().Set("Content-Type", doc.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", doc.Filename))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(doc.Body)
}
