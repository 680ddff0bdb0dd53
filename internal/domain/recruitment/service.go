package recruitment

import "context"

type RecruitmentService interface {
	// Jobs
	CreateJob(ctx context.Context, req CreateJobRequest) (JobResponse, error)
	GetJob(ctx context.Context, id int) (JobResponse, error)
	ListJobs(ctx context.Context) ([]JobResponse, error)
	UpdateJob(ctx context.Context, req UpdateJobRequest) error
	DeleteJob(ctx context.Context, id int) error

	// Stages
	CreateStage(ctx context.Context, req CreateStageRequest) (StageResponse, error)
	ListStages(ctx context.Context) ([]StageResponse, error)
	UpdateStage(ctx context.Context, req UpdateStageRequest) error
	DeleteStage(ctx context.Context, id int) error

	// Candidates
	CreateCandidate(ctx context.Context, req CreateCandidateRequest) (CandidateResponse, error)
	GetCandidate(ctx context.Context, id int) (CandidateResponse, error)
	ListCandidates(ctx context.Context) ([]CandidateResponse, error)
	UpdateCandidate(ctx context.Context, req UpdateCandidateRequest) error
	MoveCandidate(ctx context.Context, req MoveCandidateRequest) error
	DeleteCandidate(ctx context.Context, id int) error

	// Kanban board: stages in order, each with its candidates
	Board(ctx context.Context, jobID *int) ([]BoardColumnResponse, error)
}
