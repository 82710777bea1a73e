package handler

import (
	"net/http"

	"github.com/templui/healthjournal/internal/response"
	"github.com/templui/healthjournal/internal/service"
	"github.com/templui/healthjournal/internal/validation"
)

type MoodHandler struct {
	moodService *service.MoodService
}

func NewMoodHandler(moodService *service.MoodService) *MoodHandler {
	return &MoodHandler{
		moodService: moodService,
	}
}

// Upsert answers 200 for both a new and a replaced mood; only the message differs.
func (h *MoodHandler) Upsert(w http.ResponseWriter, r *http.Request) {
	var in validation.MoodInput
	if err := decodeJSON(w, r, &in); err != nil {
		response.Error(w, r, err)
		return
	}

	_, created, err := h.moodService.Upsert(r.Context(), userID(r), in)
	if err != nil {
		response.Error(w, r, err)
		return
	}

	msg := "Mood updated successfully"
	if created {
		msg = "Mood added successfully"
	}
	response.JSON(w, http.StatusOK, msg, nil)
}

func (h *MoodHandler) Range(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	moods, err := h.moodService.Range(r.Context(), userID(r), q.Get("startDate"), q.Get("endDate"))
	if err != nil {
		response.Error(w, r, err)
		return
	}

	response.JSON(w, http.StatusOK, listMessage(len(moods), "Moods fetched successfully", "No moods found in the specified range"), moods)
}
