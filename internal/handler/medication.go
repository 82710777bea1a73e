package handler

import (
	"net/http"

	"github.com/templui/healthjournal/internal/response"
	"github.com/templui/healthjournal/internal/service"
	"github.com/templui/healthjournal/internal/validation"
)

type MedicationHandler struct {
	medicationService *service.MedicationService
}

func NewMedicationHandler(medicationService *service.MedicationService) *MedicationHandler {
	return &MedicationHandler{
		medicationService: medicationService,
	}
}

func (h *MedicationHandler) Create(w http.ResponseWriter, r *http.Request) {
	var in validation.MedicationInput
	if err := decodeJSON(w, r, &in); err != nil {
		response.Error(w, r, err)
		return
	}

	if _, err := h.medicationService.Create(r.Context(), userID(r), in); err != nil {
		response.Error(w, r, err)
		return
	}

	response.JSON(w, http.StatusCreated, "Medication added successfully.", nil)
}

func (h *MedicationHandler) ByDate(w http.ResponseWriter, r *http.Request) {
	entries, err := h.medicationService.ByDate(r.Context(), userID(r), r.URL.Query().Get("date"))
	if err != nil {
		response.Error(w, r, err)
		return
	}

	msg := listMessage(len(entries), "Medications fetched successfully.", "No medications found for the specified user and date.")
	response.JSON(w, http.StatusOK, msg, entries)
}
