package scoreshandler

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"workforce/internal/domain/scoring"
	"workforce/internal/transport/http/api"
	"workforce/internal/transport/http/middleware"
	"workforce/internal/transport/http/shared"
)

type Handler struct {
	Store scoring.SnapshotStore
	Now   func() time.Time
}

func NewHandler(store scoring.SnapshotStore) *Handler {
	return &Handler{Store: store, Now: time.Now}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/scores", func(r chi.Router) {
		r.Post("/mood-survey", h.handleMoodSurvey)
		r.Get("/attrition", h.handleAttritionBatch)
		r.Get("/attrition/{employeeID}", h.handleAttritionOne)
		r.Get("/projects", h.handleProjectBatch)
		r.Get("/projects/{projectID}", h.handleProjectOne)
	})
}

func (h *Handler) handleMoodSurvey(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())

	var answers scoring.SurveyAnswers
	if err := json.NewDecoder(r.Body).Decode(&answers); err != nil {
		api.Fail(w, http.StatusBadRequest, "bad_request", "invalid JSON payload", reqID)
		return
	}

	result, err := scoring.ScoreSurvey(answers)
	if err != nil {
		var verr *scoring.ValidationError
		if errors.As(err, &verr) {
			api.Fail(w, http.StatusBadRequest, "validation_error", verr.Reason, reqID)
			return
		}
		api.Fail(w, http.StatusInternalServerError, "internal_error", "survey scoring failed", reqID)
		return
	}

	api.Success(w, result, reqID)
}

type attritionResponse struct {
	AsOf     string            `json:"asOf"`
	Rows     []scoring.RiskRow `json:"rows"`
	Failures []string          `json:"failures,omitempty"`
}

func (h *Handler) handleAttritionBatch(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())

	today, ok := h.scoringDate(w, r, reqID)
	if !ok {
		return
	}

	snap, err := h.Store.LoadSnapshot(r.Context())
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "snapshot_error", "failed to load snapshot", reqID)
		return
	}

	rows, failures := scoring.ScoreAttritionBatch(snap, today)

	if department := r.URL.Query().Get("department"); department != "" {
		filtered := rows[:0]
		for _, row := range rows {
			if row.Department == department {
				filtered = append(filtered, row)
			}
		}
		rows = filtered
	}

	api.Success(w, attritionResponse{
		AsOf:     today.Format("2006-01-02"),
		Rows:     rows,
		Failures: errorStrings(failures),
	}, reqID)
}

func (h *Handler) handleAttritionOne(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	employeeID := chi.URLParam(r, "employeeID")

	today, ok := h.scoringDate(w, r, reqID)
	if !ok {
		return
	}

	snap, err := h.Store.LoadSnapshot(r.Context())
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "snapshot_error", "failed to load snapshot", reqID)
		return
	}

	for _, emp := range snap.Employees {
		if emp.ID != employeeID {
			continue
		}
		row, err := scoring.ScoreAttrition(emp, snap, today)
		if err != nil {
			api.Fail(w, http.StatusUnprocessableEntity, "validation_error", err.Error(), reqID)
			return
		}
		api.Success(w, row, reqID)
		return
	}

	api.Fail(w, http.StatusNotFound, "not_found", "employee not found", reqID)
}

type healthResponse struct {
	AsOf     string              `json:"asOf"`
	Rows     []scoring.HealthRow `json:"rows"`
	Failures []string            `json:"failures,omitempty"`
}

func (h *Handler) handleProjectBatch(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())

	today, ok := h.scoringDate(w, r, reqID)
	if !ok {
		return
	}

	snap, err := h.Store.LoadSnapshot(r.Context())
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "snapshot_error", "failed to load snapshot", reqID)
		return
	}

	rows, failures := scoring.ScoreProjectHealthBatch(snap, today)
	api.Success(w, healthResponse{
		AsOf:     today.Format("2006-01-02"),
		Rows:     rows,
		Failures: errorStrings(failures),
	}, reqID)
}

func (h *Handler) handleProjectOne(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	projectID := chi.URLParam(r, "projectID")

	today, ok := h.scoringDate(w, r, reqID)
	if !ok {
		return
	}

	snap, err := h.Store.LoadSnapshot(r.Context())
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "snapshot_error", "failed to load snapshot", reqID)
		return
	}

	for _, project := range snap.Projects {
		if project.ID != projectID {
			continue
		}
		row, err := scoring.ScoreProjectHealth(project, snap, today)
		if err != nil {
			api.Fail(w, http.StatusUnprocessableEntity, "validation_error", err.Error(), reqID)
			return
		}
		api.Success(w, row, reqID)
		return
	}

	api.Fail(w, http.StatusNotFound, "not_found", "project not found", reqID)
}

func (h *Handler) scoringDate(w http.ResponseWriter, r *http.Request, reqID string) (time.Time, bool) {
	today, err := shared.ScoringDate(r.URL.Query().Get("asOf"), h.Now)
	if err != nil {
		api.Fail(w, http.StatusBadRequest, "bad_request", "asOf must be a valid date in YYYY-MM-DD format", reqID)
		return time.Time{}, false
	}
	return today, true
}

func errorStrings(errs []error) []string {
	if len(errs) == 0 {
		return nil
	}
	out := make([]string, len(errs))
	for i, err := range errs {
		out[i] = err.Error()
	}
	return out
}
