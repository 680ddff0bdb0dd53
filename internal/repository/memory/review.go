package memory

import (
	"context"
	"sync"

	"github.com/rh-war/hr-console-backend-go/internal/domain/review"
)

type ReviewRepository struct {
	mu      sync.RWMutex
	reviews []review.Review
}

func NewReviewRepository(seed []review.Review) *ReviewRepository {
	return &ReviewRepository{reviews: cloneSlice(seed)}
}

func (r *ReviewRepository) Create(ctx context.Context, rv review.Review) (review.Review, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	rv.ID = nextID(r.reviews, func(rev review.Review) int { return rev.ID })
	r.reviews = append(cloneSlice(r.reviews), rv)
	return rv, nil
}

func (r *ReviewRepository) GetByID(ctx context.Context, id int) (review.Review, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, rv := range r.reviews {
		if rv.ID == id {
			return rv, nil
		}
	}
	return review.Review{}, review.ErrReviewNotFound
}

func (r *ReviewRepository) List(ctx context.Context) ([]review.Review, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return cloneSlice(r.reviews), nil
}

func (r *ReviewRepository) Update(ctx context.Context, rv review.Review) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	next := cloneSlice(r.reviews)
	for i, existing := range next {
		if existing.ID == rv.ID {
			next[i] = rv
			break
		}
	}
	r.reviews = next
	return nil
}

func (r *ReviewRepository) Delete(ctx context.Context, id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	next := make([]review.Review, 0, len(r.reviews))
	for _, rv := range r.reviews {
		if rv.ID != id {
			next = append(next, rv)
		}
	}
	r.reviews = next
	return nil
}
