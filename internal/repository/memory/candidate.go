package memory

import (
	"context"
	"sync"

	"github.com/rh-war/hr-console-backend-go/internal/domain/recruitment"
)

type CandidateRepository struct {
	mu         sync.RWMutex
	candidates []recruitment.Candidate
}

func NewCandidateRepository(seed []recruitment.Candidate) *CandidateRepository {
	return &CandidateRepository{candidates: cloneSlice(seed)}
}

func (r *CandidateRepository) Create(ctx context.Context, c recruitment.Candidate) (recruitment.Candidate, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	c.ID = nextID(r.candidates, func(cand recruitment.Candidate) int { return cand.ID })
	r.candidates = append(cloneSlice(r.candidates), c)
	return c, nil
}

func (r *CandidateRepository) GetByID(ctx context.Context, id int) (recruitment.Candidate, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, c := range r.candidates {
		if c.ID == id {
			return c, nil
		}
	}
	return recruitment.Candidate{}, recruitment.ErrCandidateNotFound
}

func (r *CandidateRepository) List(ctx context.Context) ([]recruitment.Candidate, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return cloneSlice(r.candidates), nil
}

func (r *CandidateRepository) Update(ctx context.Context, c recruitment.Candidate) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	next := cloneSlice(r.candidates)
	for i, existing := range next {
		if existing.ID == c.ID {
			next[i] = c
			break
		}
	}
	r.candidates = next
	return nil
}

// UpdateStage moves a candidate to another kanban column. An unknown id
// leaves the collection unchanged.
func (r *CandidateRepository) UpdateStage(ctx context.Context, id int, stageID int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	next := cloneSlice(r.candidates)
	for i, c := range next {
		if c.ID == id {
			next[i].StageID = stageID
			break
		}
	}
	r.candidates = next
	return nil
}

func (r *CandidateRepository) Delete(ctx context.Context, id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	next := make([]recruitment.Candidate, 0, len(r.candidates))
	for _, c := range r.candidates {
		if c.ID != id {
			next = append(next, c)
		}
	}
	r.candidates = next
	return nil
}
