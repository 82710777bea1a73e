package handler

import (
	"net/http"

	"github.com/templui/healthjournal/internal/response"
	"github.com/templui/healthjournal/internal/service"
	"github.com/templui/healthjournal/internal/validation"
)

type SymptomHandler struct {
	symptomService *service.SymptomService
}

func NewSymptomHandler(symptomService *service.SymptomService) *SymptomHandler {
	return &SymptomHandler{
		symptomService: symptomService,
	}
}

func (h *SymptomHandler) Create(w http.ResponseWriter, r *http.Request) {
	var in validation.SymptomInput
	if err := decodeJSON(w, r, &in); err != nil {
		response.Error(w, r, err)
		return
	}

	if _, err := h.symptomService.Create(r.Context(), userID(r), in); err != nil {
		response.Error(w, r, err)
		return
	}

	response.JSON(w, http.StatusCreated, "Symptoms stored successfully.", nil)
}

func (h *SymptomHandler) Range(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	symptoms, err := h.symptomService.Range(r.Context(), userID(r), q.Get("startDate"), q.Get("endDate"))
	if err != nil {
		response.Error(w, r, err)
		return
	}

	msg := listMessage(len(symptoms), "Symptoms fetched successfully.", "No symptoms found in the specified range")
	response.JSON(w, http.StatusOK, msg, symptoms)
}
