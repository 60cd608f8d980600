package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/formflow/internal/adapters/http/dto"
	"github.com/jsamuelsen11/formflow/internal/ports"
)

// FormHandler handles HTTP requests for form schemas, record validation,
// calculated fields and their confirmations.
type FormHandler struct {
	svc ports.FormService
}

// NewFormHandler creates a new FormHandler with the given service port.
func NewFormHandler(svc ports.FormService) *FormHandler {
	return &FormHandler{svc: svc}
}

// ListForms handles GET /api/v1/forms.
func (h *FormHandler) ListForms(w http.ResponseWriter, r *http.Request) {
	forms, err := h.svc.ListForms(r.Context())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToFormListResponse(forms))
}

// GetSchema handles GET /api/v1/forms/{form}/schema.
func (h *FormHandler) GetSchema(w http.ResponseWriter, r *http.Request) {
	sc, err := h.svc.Schema(r.Context(), chi.URLParam(r, paramForm))
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, sc)
}

// Validate handles POST /api/v1/forms/{form}/validate. A record that fails
// its rules is still a 200 response; the failures are in the body.
func (h *FormHandler) Validate(w http.ResponseWriter, r *http.Request) {
	var req dto.RecordRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	report, err := h.svc.Validate(r.Context(), chi.URLParam(r, paramForm), req.Data)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToValidationResponse(report))
}

// VisibleSteps handles POST /api/v1/forms/{form}/steps.
func (h *FormHandler) VisibleSteps(w http.ResponseWriter, r *http.Request) {
	var req dto.RecordRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	steps, err := h.svc.VisibleSteps(r.Context(), chi.URLParam(r, paramForm), req.Data)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToStepListResponse(steps))
}

// Calculate handles POST /api/v1/forms/{form}/calculations.
func (h *FormHandler) Calculate(w http.ResponseWriter, r *http.Request) {
	var req dto.RecordRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	calc, err := h.svc.Calculate(r.Context(), chi.URLParam(r, paramForm), req.Data)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToCalculationResponse(calc))
}

// GetQuorum handles GET /api/v1/forms/{form}/calculations/{key}/quorum.
// The optional subject query parameter fills in can_contribute.
func (h *FormHandler) GetQuorum(w http.ResponseWriter, r *http.Request) {
	view, err := h.svc.QuorumStatus(r.Context(),
		chi.URLParam(r, paramForm),
		chi.URLParam(r, paramKey),
		r.URL.Query().Get("subject"),
	)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToQuorumViewResponse(view))
}

// Confirm handles POST /api/v1/forms/{form}/calculations/{key}/confirmations.
// A counted confirmation answers 201; a confirmation absorbed as a no-op
// answers 200 with the reason.
func (h *FormHandler) Confirm(w http.ResponseWriter, r *http.Request) {
	var req dto.ConfirmRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	out, err := h.svc.Confirm(r.Context(),
		chi.URLParam(r, paramForm),
		chi.URLParam(r, paramKey),
		ports.ConfirmRequest{Subject: req.Subject, Data: req.Data},
	)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	status := http.StatusOK
	if out.Counted {
		status = http.StatusCreated
	}
	writeJSON(w, status, dto.ToConfirmResponse(out))
}
