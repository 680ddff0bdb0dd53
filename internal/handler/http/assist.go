package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/rh-war/hr-console-backend-go/internal/handler/http/response"
	"github.com/rh-war/hr-console-backend-go/internal/pkg/validator"
	"github.com/rh-war/hr-console-backend-go/internal/service/assist"
)

type AssistHandler interface {
	JobDescription(w http.ResponseWriter, r *http.Request)
}

type AssistHandlerImpl struct {
	assistService assist.AssistService
}

func NewAssistHandler(assistService assist.AssistService) AssistHandler {
	return &AssistHandlerImpl{assistService: assistService}
}

type jobDescriptionRequest struct {
	Title      string `json:"title"`
	Department string `json:"department"`
}

func (req *jobDescriptionRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(req.Title) {
		errs = append(errs, validator.ValidationError{
			Field:   "title",
			Message: "title is required",
		})
	}

	if validator.IsEmpty(req.Department) {
		errs = append(errs, validator.ValidationError{
			Field:   "department",
			Message: "department is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// JobDescription implements AssistHandler. Drafts a job posting for the
// recruitment form.
func (h *AssistHandlerImpl) JobDescription(w http.ResponseWriter, r *http.Request) {
	var req jobDescriptionRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("JobDescription decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	description, err := h.assistService.GenerateJobDescription(r.Context(), req.Title, req.Department)
	if err != nil {
		slog.Error("JobDescription generation error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, map[string]string{"description": description})
}
