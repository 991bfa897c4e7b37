package fakeserver

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"

	"github.com/heartmarshall/leadflow/internal/adapter/leadapi"
	"github.com/heartmarshall/leadflow/internal/domain"
)

const (
	defaultLimit = 10
	maxLimit     = 100
	maxBodyBytes = 1 << 20
)

// Handler serves the lead REST endpoints from a Repo.
type Handler struct {
	repo *Repo
	log  *slog.Logger
}

// NewHandler creates a Handler.
func NewHandler(log *slog.Logger, repo *Repo) *Handler {
	return &Handler{repo: repo, log: log.With("handler", "leads")}
}

// Register mounts the endpoints on r.
func (h *Handler) Register(r *mux.Router) {
	s := r.PathPrefix("/leads").Subrouter()
	s.HandleFunc("/getleads", h.List).Methods(http.MethodGet)
	s.HandleFunc("/search", h.Search).Methods(http.MethodGet)
	s.HandleFunc("/addlead", h.Add).Methods(http.MethodPost)
	s.HandleFunc("/editlead/{id}", h.Edit).Methods(http.MethodPut)
	s.HandleFunc("/deletelead/{id}", h.Delete).Methods(http.MethodDelete)
}

// List serves GET /leads/getleads?page=&limit=.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	page, err := intParam(r, "page", 1)
	if err != nil {
		writeError(w, http.StatusBadRequest, "page must be an integer", nil)
		return
	}
	limit, err := intParam(r, "limit", defaultLimit)
	if err != nil || limit < 1 || limit > maxLimit {
		writeError(w, http.StatusBadRequest, "limit must be between 1 and 100", nil)
		return
	}

	leads, current, total := h.repo.List(page, limit)
	writeJSON(w, http.StatusOK, leadapi.PageResponse{
		Success:    true,
		Data:       encodeLeads(leads),
		Page:       current,
		TotalPages: total,
	})
}

// Search serves GET /leads/search?q=.
func (h *Handler) Search(w http.ResponseWriter, r *http.Request) {
	q := strings.TrimSpace(r.URL.Query().Get("q"))
	if q == "" {
		writeError(w, http.StatusBadRequest, "search query is required", nil)
		return
	}

	writeJSON(w, http.StatusOK, leadapi.SearchResponse{
		Success: true,
		Leads:   encodeLeads(h.repo.Search(q)),
	})
}

// Add serves POST /leads/addlead.
func (h *Handler) Add(w http.ResponseWriter, r *http.Request) {
	fields, ok := h.decodeFields(w, r)
	if !ok {
		return
	}

	lead := h.repo.Create(fields)
	h.log.InfoContext(r.Context(), "lead added", slog.String("lead_id", lead.ID))

	j := leadapi.EncodeLead(lead)
	writeJSON(w, http.StatusCreated, leadapi.LeadResponse{Success: true, Lead: &j})
}

// Edit serves PUT /leads/editlead/{id}. The id and created_at of the stored
// lead win over the body.
func (h *Handler) Edit(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	fields, ok := h.decodeFields(w, r)
	if !ok {
		return
	}

	lead, err := h.repo.Update(id, fields)
	if errors.Is(err, domain.ErrNotFound) {
		writeError(w, http.StatusNotFound, "Lead not found", nil)
		return
	}
	h.log.InfoContext(r.Context(), "lead edited", slog.String("lead_id", id))

	j := leadapi.EncodeLead(lead)
	writeJSON(w, http.StatusOK, leadapi.LeadResponse{Success: true, Lead: &j})
}

// Delete serves DELETE /leads/deletelead/{id}.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	if err := h.repo.Delete(id); errors.Is(err, domain.ErrNotFound) {
		writeError(w, http.StatusNotFound, "Lead not found", nil)
		return
	}
	h.log.InfoContext(r.Context(), "lead deleted", slog.String("lead_id", id))

	success := true
	writeJSON(w, http.StatusOK, leadapi.AckResponse{Success: &success, Message: "Lead deleted"})
}

// decodeFields reads and validates a lead body. It writes the 400 response
// itself and reports false on failure.
func (h *Handler) decodeFields(w http.ResponseWriter, r *http.Request) (domain.LeadFields, bool) {
	var body leadapi.LeadJSON
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body", nil)
		return domain.LeadFields{}, false
	}

	fields, err := body.Fields()
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error(), nil)
		return domain.LeadFields{}, false
	}

	if err := fields.Validate(); err != nil {
		var verr *domain.ValidationError
		errors.As(err, &verr)
		writeError(w, http.StatusBadRequest, "Validation failed", verr.Errors)
		return domain.LeadFields{}, false
	}
	return fields, true
}

func intParam(r *http.Request, name string, def int) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def, nil
	}
	return strconv.Atoi(raw)
}

func encodeLeads(leads []domain.Lead) []leadapi.LeadJSON {
	out := make([]leadapi.LeadJSON, len(leads))
	for i, l := range leads {
		out[i] = leadapi.EncodeLead(l)
	}
	return out
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

func writeError(w http.ResponseWriter, status int, message string, fields []domain.FieldError) {
	resp := leadapi.ErrorResponse{Success: false, Message: message}
	for _, fe := range fields {
		resp.Errors = append(resp.Errors, leadapi.FieldErrorJSON{Field: fe.Field, Message: fe.Message})
	}
	writeJSON(w, status, resp)
}
