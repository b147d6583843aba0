package httpadapter

import (
	"fmt"
	"log/slog"
	"net/http"

	"promo-boost/internal/adapter/xlsx"
	"promo-boost/internal/core/port"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// handleExportCampaigns streams every campaign as an Excel workbook for
// admins reconciling payments.
func (h *Handler) handleExportCampaigns(w http.ResponseWriter, r *http.Request) {
	cs, err := h.svc.ListCampaigns(r.Context(), port.CampaignFilter{})
	if err != nil {
		h.writeError(w, r, "export campaigns", err)
		return
	}
	w.Header().Set("Content-Type", xlsxContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", xlsx.CampaignReportName))
	if err = xlsx.WriteCampaignReport(w, cs); err != nil {
		h.logger.Error("write campaign report error", slog.Any("error", err))
	}
}
