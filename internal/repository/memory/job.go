package memory

import (
	"context"
	"sync"

	"github.com/rh-war/hr-console-backend-go/internal/domain/recruitment"
)

type JobRepository struct {
	mu   sync.RWMutex
	jobs []recruitment.Job
}

func NewJobRepository(seed []recruitment.Job) *JobRepository {
	return &JobRepository{jobs: cloneSlice(seed)}
}

func (r *JobRepository) Create(ctx context.Context, j recruitment.Job) (recruitment.Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	j.ID = nextID(r.jobs, func(job recruitment.Job) int { return job.ID })
	r.jobs = append(cloneSlice(r.jobs), j)
	return j, nil
}

func (r *JobRepository) GetByID(ctx context.Context, id int) (recruitment.Job, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, j := range r.jobs {
		if j.ID == id {
			return j, nil
		}
	}
	return recruitment.Job{}, recruitment.ErrJobNotFound
}

func (r *JobRepository) List(ctx context.Context) ([]recruitment.Job, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return cloneSlice(r.jobs), nil
}

func (r *JobRepository) Update(ctx context.Context, j recruitment.Job) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	next := cloneSlice(r.jobs)
	for i, existing := range next {
		if existing.ID == j.ID {
			next[i] = j
			break
		}
	}
	r.jobs = next
	return nil
}

func (r *JobRepository) Delete(ctx context.Context, id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	next := make([]recruitment.Job, 0, len(r.jobs))
	for _, j := range r.jobs {
		if j.ID != id {
			next = append(next, j)
		}
	}
	r.jobs = next
	return nil
}
