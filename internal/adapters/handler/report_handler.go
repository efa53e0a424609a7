package handler

import (
	"net/http"

	"github.com/Kumaraswamy-D/Kalpataru-Boys-Hostel-Management/internal/core/ports"
)

type ReportHandler struct {
	reportService ports.ReportService
}

func NewReportHandler(report ports.ReportService) *ReportHandler {
	return &ReportHandler{reportService: report}
}

// Billing serves the billing report as a CSV download.
func (h *ReportHandler) Billing(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	report, err := h.reportService.BillingReport(r.Context())
	if err != nil {
		writeDomainError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="Hostel_Billing_Report.csv"`)
	w.WriteHeader(http.StatusOK)
	w.Write(report)
}
