package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/rh-war/hr-console-backend-go/internal/domain/recruitment"
	"github.com/rh-war/hr-console-backend-go/internal/handler/http/response"
)

type RecruitmentHandler interface {
	CreateJob(w http.ResponseWriter, r *http.Request)
	GetJob(w http.ResponseWriter, r *http.Request)
	ListJobs(w http.ResponseWriter, r *http.Request)
	UpdateJob(w http.ResponseWriter, r *http.Request)
	DeleteJob(w http.ResponseWriter, r *http.Request)

	CreateStage(w http.ResponseWriter, r *http.Request)
	ListStages(w http.ResponseWriter, r *http.Request)
	UpdateStage(w http.ResponseWriter, r *http.Request)
	DeleteStage(w http.ResponseWriter, r *http.Request)

	CreateCandidate(w http.ResponseWriter, r *http.Request)
	GetCandidate(w http.ResponseWriter, r *http.Request)
	ListCandidates(w http.ResponseWriter, r *http.Request)
	UpdateCandidate(w http.ResponseWriter, r *http.Request)
	MoveCandidate(w http.ResponseWriter, r *http.Request)
	DeleteCandidate(w http.ResponseWriter, r *http.Request)

	Board(w http.ResponseWriter, r *http.Request)
}

type RecruitmentHandlerImpl struct {
	recruitmentService recruitment.RecruitmentService
}

func NewRecruitmentHandler(recruitmentService recruitment.RecruitmentService) RecruitmentHandler {
	return &RecruitmentHandlerImpl{recruitmentService: recruitmentService}
}

// CreateJob implements RecruitmentHandler.
func (h *RecruitmentHandlerImpl) CreateJob(w http.ResponseWriter, r *http.Request) {
	var req recruitment.CreateJobRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CreateJob decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.recruitmentService.CreateJob(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Job created successfully", created)
}

// GetJob implements RecruitmentHandler.
func (h *RecruitmentHandlerImpl) GetJob(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(r)
	if !ok {
		response.BadRequest(w, "Job ID is required", nil)
		return
	}

	resp, err := h.recruitmentService.GetJob(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// ListJobs implements RecruitmentHandler.
func (h *RecruitmentHandlerImpl) ListJobs(w http.ResponseWriter, r *http.Request) {
	jobs, err := h.recruitmentService.ListJobs(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, jobs)
}

// UpdateJob implements RecruitmentHandler.
func (h *RecruitmentHandlerImpl) UpdateJob(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(r)
	if !ok {
		response.BadRequest(w, "Job ID is required", nil)
		return
	}

	var req recruitment.UpdateJobRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("UpdateJob decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = id

	if err := h.recruitmentService.UpdateJob(r.Context(), req); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Job updated successfully", nil)
}

// DeleteJob implements RecruitmentHandler.
func (h *RecruitmentHandlerImpl) DeleteJob(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(r)
	if !ok {
		response.BadRequest(w, "Job ID is required", nil)
		return
	}

	if err := h.recruitmentService.DeleteJob(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Job deleted successfully", nil)
}

// CreateStage implements RecruitmentHandler.
func (h *RecruitmentHandlerImpl) CreateStage(w http.ResponseWriter, r *http.Request) {
	var req recruitment.CreateStageRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CreateStage decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.recruitmentService.CreateStage(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Stage created successfully", created)
}

// ListStages implements RecruitmentHandler.
func (h *RecruitmentHandlerImpl) ListStages(w http.ResponseWriter, r *http.Request) {
	stages, err := h.recruitmentService.ListStages(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, stages)
}

// UpdateStage implements RecruitmentHandler.
func (h *RecruitmentHandlerImpl) UpdateStage(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(r)
	if !ok {
		response.BadRequest(w, "Stage ID is required", nil)
		return
	}

	var req recruitment.UpdateStageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("UpdateStage decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = id

	if err := h.recruitmentService.UpdateStage(r.Context(), req); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Stage updated successfully", nil)
}

// DeleteStage implements RecruitmentHandler.
func (h *RecruitmentHandlerImpl) DeleteStage(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(r)
	if !ok {
		response.BadRequest(w, "Stage ID is required", nil)
		return
	}

	if err := h.recruitmentService.DeleteStage(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Stage deleted successfully", nil)
}

// CreateCandidate implements RecruitmentHandler.
func (h *RecruitmentHandlerImpl) CreateCandidate(w http.ResponseWriter, r *http.Request) {
	var req recruitment.CreateCandidateRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CreateCandidate decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.recruitmentService.CreateCandidate(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Candidate created successfully", created)
}

// GetCandidate implements RecruitmentHandler.
func (h *RecruitmentHandlerImpl) GetCandidate(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(r)
	if !ok {
		response.BadRequest(w, "Candidate ID is required", nil)
		return
	}

	resp, err := h.recruitmentService.GetCandidate(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// ListCandidates implements RecruitmentHandler.
func (h *RecruitmentHandlerImpl) ListCandidates(w http.ResponseWriter, r *http.Request) {
	candidates, err := h.recruitmentService.ListCandidates(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, candidates)
}

// UpdateCandidate implements RecruitmentHandler.
func (h *RecruitmentHandlerImpl) UpdateCandidate(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(r)
	if !ok {
		response.BadRequest(w, "Candidate ID is required", nil)
		return
	}

	var req recruitment.UpdateCandidateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("UpdateCandidate decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = id

	if err := h.recruitmentService.UpdateCandidate(r.Context(), req); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Candidate updated successfully", nil)
}

// MoveCandidate implements RecruitmentHandler.
func (h *RecruitmentHandlerImpl) MoveCandidate(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(r)
	if !ok {
		response.BadRequest(w, "Candidate ID is required", nil)
		return
	}

	var req recruitment.MoveCandidateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("MoveCandidate decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.CandidateID = id

	if err := h.recruitmentService.MoveCandidate(r.Context(), req); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Candidate moved successfully", nil)
}

// DeleteCandidate implements RecruitmentHandler.
func (h *RecruitmentHandlerImpl) DeleteCandidate(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(r)
	if !ok {
		response.BadRequest(w, "Candidate ID is required", nil)
		return
	}

	if err := h.recruitmentService.DeleteCandidate(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Candidate deleted successfully", nil)
}

// Board implements RecruitmentHandler.
func (h *RecruitmentHandlerImpl) Board(w http.ResponseWriter, r *http.Request) {
	var jobID *int
	if raw := r.URL.Query().Get("job_id"); raw != "" {
		id, err := strconv.Atoi(raw)
		if err != nil || id <= 0 {
			response.BadRequest(w, "job_id must be a positive integer", nil)
			return
		}
		jobID = &id
	}

	board, err := h.recruitmentService.Board(r.Context(), jobID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, board)
}
