package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/planillapa/planilla-backend-go/internal/domain/legal"
	"github.com/planillapa/planilla-backend-go/internal/handler/http/response"
)

type LegalHandler interface {
	// Parameters
	CreateParameter(w http.ResponseWriter, r *http.Request)
	ListParameters(w http.ResponseWriter, r *http.Request)
	UpdateParameter(w http.ResponseWriter, r *http.Request)
	DeleteParameter(w http.ResponseWriter, r *http.Request)

	// ISR brackets
	CreateBracket(w http.ResponseWriter, r *http.Request)
	ListBrackets(w http.ResponseWriter, r *http.Request)
	DeleteBracket(w http.ResponseWriter, r *http.Request)
}

type legalHandlerImpl struct {
	legalService legal.LegalService
}

func NewLegalHandler(legalService legal.LegalService) LegalHandler {
	return &legalHandlerImpl{legalService: legalService}
}

func (h *legalHandlerImpl) CreateParameter(w http.ResponseWriter, r *http.Request) {
	var req legal.CreateParameterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.legalService.CreateParameter(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Legal parameter created", result)
}

func (h *legalHandlerImpl) ListParameters(w http.ResponseWriter, r *http.Request) {
	activeOnly := r.URL.Query().Get("active_only") == "true"

	result, err := h.legalService.ListParameters(r.Context(), activeOnly)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *legalHandlerImpl) UpdateParameter(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Parameter ID is required", nil)
		return
	}

	var req legal.UpdateParameterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.ID = id

	result, err := h.legalService.UpdateParameter(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *legalHandlerImpl) DeleteParameter(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Parameter ID is required", nil)
		return
	}

	if err := h.legalService.DeleteParameter(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Legal parameter deleted", nil)
}

func (h *legalHandlerImpl) CreateBracket(w http.ResponseWriter, r *http.Request) {
	var req legal.CreateBracketRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.legalService.CreateBracket(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "ISR bracket created", result)
}

func (h *legalHandlerImpl) ListBrackets(w http.ResponseWriter, r *http.Request) {
	result, err := h.legalService.ListBrackets(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *legalHandlerImpl) DeleteBracket(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Bracket ID is required", nil)
		return
	}

	if err := h.legalService.DeleteBracket(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "ISR bracket deleted", nil)
}
