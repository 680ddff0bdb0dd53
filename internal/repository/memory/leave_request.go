package memory

import (
	"context"
	"sync"

	"github.com/rh-war/hr-console-backend-go/internal/domain/leave"
)

type LeaveRequestRepository struct {
	mu       sync.RWMutex
	requests []leave.LeaveRequest
}

func NewLeaveRequestRepository(seed []leave.LeaveRequest) *LeaveRequestRepository {
	return &LeaveRequestRepository{requests: cloneSlice(seed)}
}

func (r *LeaveRequestRepository) Create(ctx context.Context, request leave.LeaveRequest) (leave.LeaveRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	request.ID = nextID(r.requests, func(req leave.LeaveRequest) int { return req.ID })
	r.requests = append(cloneSlice(r.requests), request)
	return request, nil
}

func (r *LeaveRequestRepository) GetByID(ctx context.Context, id int) (leave.LeaveRequest, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, req := range r.requests {
		if req.ID == id {
			return req, nil
		}
	}
	return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
}

func (r *LeaveRequestRepository) List(ctx context.Context) ([]leave.LeaveRequest, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return cloneSlice(r.requests), nil
}

// Update replaces the whole record. An unknown id leaves the collection
// unchanged.
func (r *LeaveRequestRepository) Update(ctx context.Context, request leave.LeaveRequest) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	next := cloneSlice(r.requests)
	for i, req := range next {
		if req.ID == request.ID {
			next[i] = request
			break
		}
	}
	r.requests = next
	return nil
}

// UpdateStatus changes only the status. An unknown id leaves the collection
// unchanged.
func (r *LeaveRequestRepository) UpdateStatus(ctx context.Context, id int, status leave.Status) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	next := cloneSlice(r.requests)
	for i, req := range next {
		if req.ID == id {
			next[i].Status = status
			break
		}
	}
	r.requests = next
	return nil
}

// Delete removes the record if present; an unknown id is a no-op.
func (r *LeaveRequestRepository) Delete(ctx context.Context, id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	next := make([]leave.LeaveRequest, 0, len(r.requests))
	for _, req := range r.requests {
		if req.ID != id {
			next = append(next, req)
		}
	}
	r.requests = next
	return nil
}
