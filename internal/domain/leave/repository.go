package leave

import "context"

// LeaveRequestRepository holds the leave request collection. Update,
// UpdateStatus and Delete targeting an id that is not present leave the
// collection unchanged and return no error; only read paths report
// ErrLeaveRequestNotFound.
type LeaveRequestRepository interface {
	Create(ctx context.Context, request LeaveRequest) (LeaveRequest, error)
	GetByID(ctx context.Context, id int) (LeaveRequest, error)
	List(ctx context.Context) ([]LeaveRequest, error)
	Update(ctx context.Context, request LeaveRequest) error
	UpdateStatus(ctx context.Context, id int, status Status) error
	Delete(ctx context.Context, id int) error
}
