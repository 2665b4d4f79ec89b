package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/planillapa/planilla-backend-go/internal/domain/sipe"
	"github.com/planillapa/planilla-backend-go/internal/handler/http/response"
)

type SIPEHandler interface {
	Calculate(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	MarkPaid(w http.ResponseWriter, r *http.Request)
}

type sipeHandlerImpl struct {
	sipeService sipe.SIPEService
}

func NewSIPEHandler(sipeService sipe.SIPEService) SIPEHandler {
	return &sipeHandlerImpl{sipeService: sipeService}
}

func (h *sipeHandlerImpl) Calculate(w http.ResponseWriter, r *http.Request) {
	var req sipe.CalculateSIPERequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.sipeService.CalculateRemittance(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *sipeHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Payment ID is required", nil)
		return
	}

	result, err := h.sipeService.GetPayment(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *sipeHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	result, err := h.sipeService.ListPayments(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *sipeHandlerImpl) MarkPaid(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Payment ID is required", nil)
		return
	}

	var req sipe.MarkPaidRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.sipeService.MarkPaid(r.Context(), id, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Remittance marked paid", result)
}
