package reportshandler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jung-kurt/gofpdf"

	"workforce/internal/domain/reports"
	"workforce/internal/domain/scoring"
	"workforce/internal/platform/ai"
	"workforce/internal/transport/http/api"
	"workforce/internal/transport/http/middleware"
	"workforce/internal/transport/http/shared"
)

type Handler struct {
	Store scoring.SnapshotStore
	AI    *ai.Client
	TopN  int
	Now   func() time.Time
}

func NewHandler(store scoring.SnapshotStore, aiClient *ai.Client, topN int) *Handler {
	return &Handler{Store: store, AI: aiClient, TopN: topN, Now: time.Now}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/reports", func(r chi.Router) {
		r.Get("/summary", h.handleSummary)
		r.Get("/attrition/pdf", h.handlePDF)
		r.Post("/ai-summary", h.handleAISummary)
	})
}

func (h *Handler) handleSummary(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())

	summary, _, _, ok := h.buildSummary(w, r, reqID)
	if !ok {
		return
	}
	api.Success(w, summary, reqID)
}

func (h *Handler) handlePDF(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())

	summary, riskRows, healthRows, ok := h.buildSummary(w, r, reqID)
	if !ok {
		return
	}

	pdf := buildMasterReport(summary, riskRows, healthRows, h.Now())

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="workforce_attrition_report.pdf"`)
	if err := pdf.Output(w); err != nil {
		api.Fail(w, http.StatusInternalServerError, "pdf_error", "failed to render PDF", reqID)
	}
}

func (h *Handler) handleAISummary(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())

	if !h.AI.Enabled() {
		api.Fail(w, http.StatusServiceUnavailable, "ai_disabled", "narrative summariser is not configured", reqID)
		return
	}

	summary, _, _, ok := h.buildSummary(w, r, reqID)
	if !ok {
		return
	}

	digest := reports.BuildDigest(summary)
	narrative, err := h.AI.Summarize(r.Context(), digest)
	if err != nil {
		if errors.Is(err, ai.ErrDisabled) {
			api.Fail(w, http.StatusServiceUnavailable, "ai_disabled", "narrative summariser is not configured", reqID)
			return
		}
		api.Fail(w, http.StatusBadGateway, "ai_error", err.Error(), reqID)
		return
	}

	api.Success(w, map[string]any{
		"generatedAt": h.Now().UTC().Format(time.RFC3339),
		"report":      narrative,
	}, reqID)
}

func (h *Handler) buildSummary(w http.ResponseWriter, r *http.Request, reqID string) (reports.Summary, []scoring.RiskRow, []scoring.HealthRow, bool) {
	today, err := shared.ScoringDate(r.URL.Query().Get("asOf"), h.Now)
	if err != nil {
		api.Fail(w, http.StatusBadRequest, "bad_request", "asOf must be a valid date in YYYY-MM-DD format", reqID)
		return reports.Summary{}, nil, nil, false
	}

	topN := h.TopN
	if raw := r.URL.Query().Get("topN"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			api.Fail(w, http.StatusBadRequest, "bad_request", "topN must be a positive integer", reqID)
			return reports.Summary{}, nil, nil, false
		}
		topN = parsed
	}

	snap, err := h.Store.LoadSnapshot(r.Context())
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "snapshot_error", "failed to load snapshot", reqID)
		return reports.Summary{}, nil, nil, false
	}

	riskRows, _ := scoring.ScoreAttritionBatch(snap, today)
	healthRows, _ := scoring.ScoreProjectHealthBatch(snap, today)
	summary := reports.BuildSummary(snap.Employees, riskRows, healthRows, topN)
	return summary, riskRows, healthRows, true
}

func buildMasterReport(summary reports.Summary, riskRows []scoring.RiskRow, healthRows []scoring.HealthRow, generatedAt time.Time) *gofpdf.Fpdf {
	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 12)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, "Workforce Attrition & Project Health Report")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 10)
	pdf.Cell(0, 6, fmt.Sprintf("Generated: %s", generatedAt.Format("2006-01-02 15:04")))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Overview")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 10)
	pdf.Cell(0, 6, fmt.Sprintf("Total employees: %d   Active: %d   Resigned: %d   Attrition rate: %.1f%%",
		summary.TotalEmployees, summary.ActiveEmployees, summary.ResignedEmployees, summary.AttritionRate))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("High risk: %d   Medium risk: %d   Low risk: %d",
		summary.RiskLevels[scoring.RiskHigh], summary.RiskLevels[scoring.RiskMedium], summary.RiskLevels[scoring.RiskLow]))
	pdf.Ln(10)

	riskHeaders := []string{"ID", "Name", "Department", "Role", "Status", "Score", "Level", "Key Factors"}
	riskWidths := []float64{20, 40, 32, 32, 20, 14, 26, 90}
	writeTableHeader(pdf, riskHeaders, riskWidths)
	for _, row := range riskRows {
		factors := "No significant risk factors"
		if len(row.Factors) > 0 {
			factors = joinTruncated(row.Factors, 80)
		}
		cells := []string{
			row.EmployeeID, truncate(row.Name, 26), truncate(row.Department, 20), truncate(row.Role, 20),
			row.Status, strconv.Itoa(row.RiskScore), row.RiskLevel, factors,
		}
		writeTableRow(pdf, cells, riskWidths)
	}

	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Project Health")
	pdf.Ln(8)

	healthHeaders := []string{"ID", "Project", "Owner", "Status", "Progress", "Score", "Health", "Due", "Days Left"}
	healthWidths := []float64{22, 56, 40, 24, 20, 16, 26, 26, 22}
	writeTableHeader(pdf, healthHeaders, healthWidths)
	for _, row := range healthRows {
		due := ""
		if !row.DueDate.IsZero() {
			due = row.DueDate.Format("2006-01-02")
		}
		cells := []string{
			row.ProjectID, truncate(row.Name, 36), truncate(row.OwnerName, 26), row.Status,
			fmt.Sprintf("%d%%", row.Progress), strconv.Itoa(row.HealthScore), row.HealthStatus,
			due, strconv.Itoa(row.DaysLeft),
		}
		writeTableRow(pdf, cells, healthWidths)
	}

	return pdf
}

func writeTableHeader(pdf *gofpdf.Fpdf, headers []string, widths []float64) {
	pdf.SetFont("Helvetica", "B", 8)
	pdf.SetFillColor(222, 234, 246)
	for i, header := range headers {
		pdf.CellFormat(widths[i], 7, header, "1", 0, "L", true, 0, "")
	}
	pdf.Ln(-1)
	pdf.SetFont("Helvetica", "", 8)
}

func writeTableRow(pdf *gofpdf.Fpdf, cells []string, widths []float64) {
	for i, cell := range cells {
		pdf.CellFormat(widths[i], 6, cell, "1", 0, "L", false, 0, "")
	}
	pdf.Ln(-1)
}

func truncate(value string, max int) string {
	if len(value) <= max {
		return value
	}
	return value[:max-3] + "..."
}

func joinTruncated(values []string, max int) string {
	return truncate(strings.Join(values, "; "), max)
}
