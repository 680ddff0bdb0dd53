package leave

import (
	"context"
	"time"
)

type LeaveService interface {
	// Request lifecycle
	CreateRequest(ctx context.Context, req CreateLeaveRequestRequest) (LeaveRequestResponse, error)
	UpdateRequest(ctx context.Context, req UpdateLeaveRequestRequest) error
	GetRequest(ctx context.Context, id int) (LeaveRequestResponse, error)
	ListRequests(ctx context.Context, filter LeaveRequestFilter) ([]LeaveRequestResponse, error)
	DeleteRequest(ctx context.Context, id int) error

	// Quick status actions
	ApproveRequest(ctx context.Context, id int) error
	RejectRequest(ctx context.Context, id int) error
	RevertRequestToPending(ctx context.Context, id int) error

	// Visualizations
	TimelineMonth(ctx context.Context, year int, month time.Month, search string) (TimelineResponse, error)
	CalendarMonth(ctx context.Context, year int, month time.Month) (CalendarMonthResponse, error)
	RequestsOnDay(ctx context.Context, day time.Time) ([]LeaveRequestResponse, error)
}
