package api

import (
	"net/http"
	"strconv"

	"github.com/pulsecheck-app/pulsecheck-api/internal/api/shared"
	"github.com/pulsecheck-app/pulsecheck-api/internal/service"
)

// ReportHandler serves the admin-only monthly wellness report.
type ReportHandler struct {
	reports service.ReportService
}

// NewReportHandler creates a new ReportHandler.
func NewReportHandler(reports service.ReportService) *ReportHandler {
	return &ReportHandler{reports: reports}
}

// Monthly handles GET /api/reports/monthly?year=YYYY&month=M. Both query
// parameters are required; bounds are checked here so malformed input never
// reaches the service layer as anything but a typed error.
func (h *ReportHandler) Monthly(w http.ResponseWriter, r *http.Request) {
	year, err := strconv.Atoi(r.URL.Query().Get("year"))
	if err != nil || year < 1 {
		shared.RespondWithError(w, r, http.StatusBadRequest,
			"Query parameter 'year' must be a positive integer")
		return
	}

	month, err := strconv.Atoi(r.URL.Query().Get("month"))
	if err != nil || month < 1 || month > 12 {
		shared.RespondWithError(w, r, http.StatusBadRequest,
			"Query parameter 'month' must be an integer between 1 and 12")
		return
	}

	report, err := h.reports.MonthlyReport(r.Context(), year, month)
	if err != nil {
		shared.RespondWithErrorAndLog(
			w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, report)
}
