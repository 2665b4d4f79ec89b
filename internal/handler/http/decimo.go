package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/planillapa/planilla-backend-go/internal/domain/decimo"
	"github.com/planillapa/planilla-backend-go/internal/handler/http/response"
)

type DecimoHandler interface {
	Calculate(w http.ResponseWriter, r *http.Request)
	Generate(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	ListByYear(w http.ResponseWriter, r *http.Request)
	PayInstallment(w http.ResponseWriter, r *http.Request)
}

type decimoHandlerImpl struct {
	decimoService decimo.DecimoService
}

func NewDecimoHandler(decimoService decimo.DecimoService) DecimoHandler {
	return &decimoHandlerImpl{decimoService: decimoService}
}

func (h *decimoHandlerImpl) Calculate(w http.ResponseWriter, r *http.Request) {
	var req decimo.CalculateDecimoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.decimoService.CalculateDecimo(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *decimoHandlerImpl) Generate(w http.ResponseWriter, r *http.Request) {
	var req decimo.GenerateDecimoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.decimoService.GenerateDecimo(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Decimo generated", result)
}

func (h *decimoHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Decimo ID is required", nil)
		return
	}

	result, err := h.decimoService.GetDecimo(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *decimoHandlerImpl) ListByYear(w http.ResponseWriter, r *http.Request) {
	year, err := strconv.Atoi(r.URL.Query().Get("year"))
	if err != nil {
		response.BadRequest(w, "Query parameter 'year' is required", nil)
		return
	}

	result, err := h.decimoService.ListByYear(r.Context(), year)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *decimoHandlerImpl) PayInstallment(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Decimo ID is required", nil)
		return
	}

	result, err := h.decimoService.PayInstallment(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Installment paid", result)
}
