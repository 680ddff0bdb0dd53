package recruitment

import (
	"context"

	"github.com/rh-war/hr-console-backend-go/internal/domain/recruitment"
)

type recruitmentServiceImpl struct {
	jobRepo       recruitment.JobRepository
	stageRepo     recruitment.StageRepository
	candidateRepo recruitment.CandidateRepository
}

func NewRecruitmentService(
	jobRepo recruitment.JobRepository,
	stageRepo recruitment.StageRepository,
	candidateRepo recruitment.CandidateRepository,
) recruitment.RecruitmentService {
	return &recruitmentServiceImpl{
		jobRepo:       jobRepo,
		stageRepo:     stageRepo,
		candidateRepo: candidateRepo,
	}
}

// ==================== JOB OPERATIONS ====================

func (s *recruitmentServiceImpl) CreateJob(ctx context.Context, req recruitment.CreateJobRequest) (recruitment.JobResponse, error) {
	if err := req.Validate(); err != nil {
		return recruitment.JobResponse{}, err
	}

	created, err := s.jobRepo.Create(ctx, recruitment.Job{
		Title:       req.Title,
		Department:  req.Department,
		Description: req.Description,
		Status:      req.Status,
	})
	if err != nil {
		return recruitment.JobResponse{}, err
	}
	return toJobResponse(created), nil
}

func (s *recruitmentServiceImpl) GetJob(ctx context.Context, id int) (recruitment.JobResponse, error) {
	j, err := s.jobRepo.GetByID(ctx, id)
	if err != nil {
		return recruitment.JobResponse{}, err
	}
	return toJobResponse(j), nil
}

func (s *recruitmentServiceImpl) ListJobs(ctx context.Context) ([]recruitment.JobResponse, error) {
	jobs, err := s.jobRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]recruitment.JobResponse, 0, len(jobs))
	for _, j := range jobs {
		responses = append(responses, toJobResponse(j))
	}
	return responses, nil
}

func (s *recruitmentServiceImpl) UpdateJob(ctx context.Context, req recruitment.UpdateJobRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	return s.jobRepo.Update(ctx, recruitment.Job{
		ID:          req.ID,
		Title:       req.Title,
		Department:  req.Department,
		Description: req.Description,
		Status:      req.Status,
	})
}

// DeleteJob removes the position. Candidates attached to it keep their
// records and stay on the board.
func (s *recruitmentServiceImpl) DeleteJob(ctx context.Context, id int) error {
	return s.jobRepo.Delete(ctx, id)
}

func toJobResponse(j recruitment.Job) recruitment.JobResponse {
	return recruitment.JobResponse{
		ID:          j.ID,
		Title:       j.Title,
		Department:  j.Department,
		Description: j.Description,
		Status:      j.Status,
	}
}

// ==================== STAGE OPERATIONS ====================

func (s *recruitmentServiceImpl) CreateStage(ctx context.Context, req recruitment.CreateStageRequest) (recruitment.StageResponse, error) {
	if err := req.Validate(); err != nil {
		return recruitment.StageResponse{}, err
	}

	created, err := s.stageRepo.Create(ctx, recruitment.Stage{
		Name:  req.Name,
		Order: req.Order,
	})
	if err != nil {
		return recruitment.StageResponse{}, err
	}
	return toStageResponse(created), nil
}

func (s *recruitmentServiceImpl) ListStages(ctx context.Context) ([]recruitment.StageResponse, error) {
	stages, err := s.stageRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]recruitment.StageResponse, 0, len(stages))
	for _, st := range stages {
		responses = append(responses, toStageResponse(st))
	}
	return responses, nil
}

func (s *recruitmentServiceImpl) UpdateStage(ctx context.Context, req recruitment.UpdateStageRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	st, err := s.stageRepo.GetByID(ctx, req.ID)
	if err != nil {
		return err
	}

	if req.Name != nil {
		st.Name = *req.Name
	}
	if req.Order != nil {
		st.Order = *req.Order
	}
	return s.stageRepo.Update(ctx, st)
}

func (s *recruitmentServiceImpl) DeleteStage(ctx context.Context, id int) error {
	return s.stageRepo.Delete(ctx, id)
}

func toStageResponse(st recruitment.Stage) recruitment.StageResponse {
	return recruitment.StageResponse{
		ID:    st.ID,
		Name:  st.Name,
		Order: st.Order,
	}
}

// ==================== CANDIDATE OPERATIONS ====================

func (s *recruitmentServiceImpl) CreateCandidate(ctx context.Context, req recruitment.CreateCandidateRequest) (recruitment.CandidateResponse, error) {
	if err := req.Validate(); err != nil {
		return recruitment.CandidateResponse{}, err
	}

	if _, err := s.jobRepo.GetByID(ctx, req.JobID); err != nil {
		return recruitment.CandidateResponse{}, err
	}
	if _, err := s.stageRepo.GetByID(ctx, req.StageID); err != nil {
		return recruitment.CandidateResponse{}, err
	}

	created, err := s.candidateRepo.Create(ctx, recruitment.Candidate{
		Name:          req.Name,
		JobID:         req.JobID,
		StageID:       req.StageID,
		ResumeSummary: req.ResumeSummary,
		AvatarURL:     req.AvatarURL,
		ResumeDataURL: req.ResumeDataURL,
	})
	if err != nil {
		return recruitment.CandidateResponse{}, err
	}
	return toCandidateResponse(created), nil
}

func (s *recruitmentServiceImpl) GetCandidate(ctx context.Context, id int) (recruitment.CandidateResponse, error) {
	c, err := s.candidateRepo.GetByID(ctx, id)
	if err != nil {
		return recruitment.CandidateResponse{}, err
	}
	return toCandidateResponse(c), nil
}

func (s *recruitmentServiceImpl) ListCandidates(ctx context.Context) ([]recruitment.CandidateResponse, error) {
	candidates, err := s.candidateRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]recruitment.CandidateResponse, 0, len(candidates))
	for _, c := range candidates {
		responses = append(responses, toCandidateResponse(c))
	}
	return responses, nil
}

func (s *recruitmentServiceImpl) UpdateCandidate(ctx context.Context, req recruitment.UpdateCandidateRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	return s.candidateRepo.Update(ctx, recruitment.Candidate{
		ID:            req.ID,
		Name:          req.Name,
		JobID:         req.JobID,
		StageID:       req.StageID,
		ResumeSummary: req.ResumeSummary,
		AvatarURL:     req.AvatarURL,
		ResumeDataURL: req.ResumeDataURL,
	})
}

// MoveCandidate is the kanban drag-and-drop. The target stage must exist;
// dropping an unknown candidate id changes nothing.
func (s *recruitmentServiceImpl) MoveCandidate(ctx context.Context, req recruitment.MoveCandidateRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	if _, err := s.stageRepo.GetByID(ctx, req.StageID); err != nil {
		return err
	}
	return s.candidateRepo.UpdateStage(ctx, req.CandidateID, req.StageID)
}

func (s *recruitmentServiceImpl) DeleteCandidate(ctx context.Context, id int) error {
	return s.candidateRepo.Delete(ctx, id)
}

func toCandidateResponse(c recruitment.Candidate) recruitment.CandidateResponse {
	return recruitment.CandidateResponse{
		ID:            c.ID,
		Name:          c.Name,
		JobID:         c.JobID,
		StageID:       c.StageID,
		ResumeSummary: c.ResumeSummary,
		AvatarURL:     c.AvatarURL,
		ResumeDataURL: c.ResumeDataURL,
	}
}

// ==================== BOARD ====================

// Board assembles the kanban view: every stage in board order becomes a
// column, holding its candidates. A stage with no candidates still shows as
// an empty column. When jobID is set, only that position's candidates appear.
func (s *recruitmentServiceImpl) Board(ctx context.Context, jobID *int) ([]recruitment.BoardColumnResponse, error) {
	stages, err := s.stageRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	candidates, err := s.candidateRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	byStage := make(map[int][]recruitment.CandidateResponse)
	for _, c := range candidates {
		if jobID != nil && c.JobID != *jobID {
			continue
		}
		byStage[c.StageID] = append(byStage[c.StageID], toCandidateResponse(c))
	}

	columns := make([]recruitment.BoardColumnResponse, 0, len(stages))
	for _, st := range stages {
		column := recruitment.BoardColumnResponse{
			Stage:      toStageResponse(st),
			Candidates: byStage[st.ID],
		}
		if column.Candidates == nil {
			column.Candidates = []recruitment.CandidateResponse{}
		}
		columns = append(columns, column)
	}
	return columns, nil
}
