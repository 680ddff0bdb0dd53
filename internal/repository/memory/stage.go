package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/rh-war/hr-console-backend-go/internal/domain/recruitment"
)

type StageRepository struct {
	mu     sync.RWMutex
	stages []recruitment.Stage
}

func NewStageRepository(seed []recruitment.Stage) *StageRepository {
	return &StageRepository{stages: cloneSlice(seed)}
}

func (r *StageRepository) Create(ctx context.Context, s recruitment.Stage) (recruitment.Stage, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s.ID = nextID(r.stages, func(st recruitment.Stage) int { return st.ID })
	if s.Order == 0 {
		s.Order = len(r.stages) + 1
	}
	r.stages = append(cloneSlice(r.stages), s)
	return s, nil
}

func (r *StageRepository) GetByID(ctx context.Context, id int) (recruitment.Stage, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, s := range r.stages {
		if s.ID == id {
			return s, nil
		}
	}
	return recruitment.Stage{}, recruitment.ErrStageNotFound
}

// List returns stages in board order.
func (r *StageRepository) List(ctx context.Context) ([]recruitment.Stage, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stages := cloneSlice(r.stages)
	sort.SliceStable(stages, func(i, j int) bool { return stages[i].Order < stages[j].Order })
	return stages, nil
}

func (r *StageRepository) Update(ctx context.Context, s recruitment.Stage) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	next := cloneSlice(r.stages)
	for i, existing := range next {
		if existing.ID == s.ID {
			next[i] = s
			break
		}
	}
	r.stages = next
	return nil
}

func (r *StageRepository) Delete(ctx context.Context, id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	next := make([]recruitment.Stage, 0, len(r.stages))
	for _, s := range r.stages {
		if s.ID != id {
			next = append(next, s)
		}
	}
	r.stages = next
	return nil
}
