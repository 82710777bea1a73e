package handler

import (
	"net/http"
	"strings"

	"github.com/templui/healthjournal/internal/apperr"
	"github.com/templui/healthjournal/internal/response"
	"github.com/templui/healthjournal/internal/service"
	"github.com/templui/healthjournal/internal/validation"
)

type GoalHandler struct {
	goalService *service.GoalService
}

func NewGoalHandler(goalService *service.GoalService) *GoalHandler {
	return &GoalHandler{
		goalService: goalService,
	}
}

func (h *GoalHandler) Create(w http.ResponseWriter, r *http.Request) {
	var in validation.GoalInput
	if err := decodeJSON(w, r, &in); err != nil {
		response.Error(w, r, err)
		return
	}

	if _, err := h.goalService.Create(r.Context(), userID(r), in); err != nil {
		response.Error(w, r, err)
		return
	}

	response.JSON(w, http.StatusCreated, "Goal added successfully.", nil)
}

func (h *GoalHandler) List(w http.ResponseWriter, r *http.Request) {
	completed, err := parseCompleted(r.URL.Query().Get("completed"))
	if err != nil {
		response.Error(w, r, err)
		return
	}

	goals, err := h.goalService.Goals(r.Context(), userID(r), completed)
	if err != nil {
		response.Error(w, r, err)
		return
	}

	response.JSON(w, http.StatusOK, listMessage(len(goals), "Goals fetched successfully", "No goals found."), goals)
}

func (h *GoalHandler) UpdateProgress(w http.ResponseWriter, r *http.Request) {
	var in validation.ProgressInput
	if err := decodeJSON(w, r, &in); err != nil {
		response.Error(w, r, err)
		return
	}

	goal, err := h.goalService.UpdateProgress(r.Context(), userID(r), r.PathValue("goalId"), in)
	if err != nil {
		response.Error(w, r, err)
		return
	}

	response.JSON(w, http.StatusOK, "Goal progress updated successfully.", goal)
}

// parseCompleted reads the optional ?completed= filter, case-insensitively.
func parseCompleted(raw string) (*bool, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "":
		return nil, nil
	case "true":
		v := true
		return &v, nil
	case "false":
		v := false
		return &v, nil
	default:
		return nil, apperr.Validation("completed must be true or false.", map[string]string{"completed": "must be true or false"})
	}
}
