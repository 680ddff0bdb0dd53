package recruitment

import "context"

type JobRepository interface {
	Create(ctx context.Context, j Job) (Job, error)
	GetByID(ctx context.Context, id int) (Job, error)
	List(ctx context.Context) ([]Job, error)
	Update(ctx context.Context, j Job) error
	Delete(ctx context.Context, id int) error
}

type StageRepository interface {
	Create(ctx context.Context, s Stage) (Stage, error)
	GetByID(ctx context.Context, id int) (Stage, error)
	List(ctx context.Context) ([]Stage, error)
	Update(ctx context.Context, s Stage) error
	Delete(ctx context.Context, id int) error
}

// CandidateRepository holds the applicant collection. UpdateStage targeting
// an unknown candidate leaves the collection unchanged.
type CandidateRepository interface {
	Create(ctx context.Context, c Candidate) (Candidate, error)
	GetByID(ctx context.Context, id int) (Candidate, error)
	List(ctx context.Context) ([]Candidate, error)
	Update(ctx context.Context, c Candidate) error
	UpdateStage(ctx context.Context, id int, stageID int) error
	Delete(ctx context.Context, id int) error
}
