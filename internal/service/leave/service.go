package leave

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/rh-war/hr-console-backend-go/internal/domain/employee"
	"github.com/rh-war/hr-console-backend-go/internal/domain/leave"
	"github.com/rh-war/hr-console-backend-go/internal/pkg/dateutil"
)

type leaveServiceImpl struct {
	requestRepo  leave.LeaveRequestRepository
	employeeRepo employee.EmployeeRepository
	now          func() time.Time
}

func NewLeaveService(requestRepo leave.LeaveRequestRepository, employeeRepo employee.EmployeeRepository) leave.LeaveService {
	return &leaveServiceImpl{
		requestRepo:  requestRepo,
		employeeRepo: employeeRepo,
		now:          time.Now,
	}
}

// CreateRequest is the quick-create path: the request snapshots the
// employee at creation time and always starts as Pending.
func (s *leaveServiceImpl) CreateRequest(ctx context.Context, req leave.CreateLeaveRequestRequest) (leave.LeaveRequestResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	startDate, _ := dateutil.ParseDate(req.StartDate)
	endDate, _ := dateutil.ParseDate(req.EndDate)

	created, err := s.requestRepo.Create(ctx, leave.LeaveRequest{
		Employee:  emp.Snapshot(),
		Type:      req.Type,
		StartDate: startDate,
		EndDate:   endDate,
		Status:    leave.StatusPending,
	})
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	return leave.ToResponse(created), nil
}

// UpdateRequest is the edit form: a full overwrite, status included. The
// employee snapshot is re-resolved against the directory at edit time.
func (s *leaveServiceImpl) UpdateRequest(ctx context.Context, req leave.UpdateLeaveRequestRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	emp, err := s.employeeRepo.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return err
	}

	startDate, _ := dateutil.ParseDate(req.StartDate)
	endDate, _ := dateutil.ParseDate(req.EndDate)

	return s.requestRepo.Update(ctx, leave.LeaveRequest{
		ID:        req.ID,
		Employee:  emp.Snapshot(),
		Type:      req.Type,
		StartDate: startDate,
		EndDate:   endDate,
		Status:    req.Status,
	})
}

func (s *leaveServiceImpl) GetRequest(ctx context.Context, id int) (leave.LeaveRequestResponse, error) {
	req, err := s.requestRepo.GetByID(ctx, id)
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}
	return leave.ToResponse(req), nil
}

func (s *leaveServiceImpl) ListRequests(ctx context.Context, filter leave.LeaveRequestFilter) ([]leave.LeaveRequestResponse, error) {
	requests, err := s.requestRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]leave.LeaveRequestResponse, 0, len(requests))
	for _, req := range requests {
		if filter.Status != nil && req.Status != *filter.Status {
			continue
		}
		responses = append(responses, leave.ToResponse(req))
	}
	return responses, nil
}

// DeleteRequest removes the request; an unknown id leaves the collection
// unchanged.
func (s *leaveServiceImpl) DeleteRequest(ctx context.Context, id int) error {
	return s.requestRepo.Delete(ctx, id)
}

// The quick-action buttons. None of them guards on the current status:
// approving an approved request is an idempotent overwrite, and an unknown
// id is a silent no-op.

func (s *leaveServiceImpl) ApproveRequest(ctx context.Context, id int) error {
	return s.requestRepo.UpdateStatus(ctx, id, leave.StatusApproved)
}

func (s *leaveServiceImpl) RejectRequest(ctx context.Context, id int) error {
	return s.requestRepo.UpdateStatus(ctx, id, leave.StatusRejected)
}

func (s *leaveServiceImpl) RevertRequestToPending(ctx context.Context, id int) error {
	return s.requestRepo.UpdateStatus(ctx, id, leave.StatusPending)
}

// TimelineMonth renders one row per employee (filtered by name search) with
// the Approved bars touching the month, clipped to the day-column grid.
func (s *leaveServiceImpl) TimelineMonth(ctx context.Context, year int, month time.Month, search string) (leave.TimelineResponse, error) {
	employees, err := s.employeeRepo.List(ctx)
	if err != nil {
		return leave.TimelineResponse{}, err
	}

	if search != "" {
		needle := strings.ToLower(search)
		filtered := make([]employee.Employee, 0, len(employees))
		for _, emp := range employees {
			if strings.Contains(strings.ToLower(emp.Name), needle) {
				filtered = append(filtered, emp)
			}
		}
		employees = filtered
	}

	requests, err := s.requestRepo.List(ctx)
	if err != nil {
		return leave.TimelineResponse{}, err
	}

	return leave.TimelineResponse{
		Year:        year,
		Month:       int(month),
		DaysInMonth: dateutil.DaysInMonth(year, month),
		Today:       todayMarker(s.now(), year, month),
		Rows:        LayoutMonth(year, month, employees, requests),
	}, nil
}

// CalendarMonth aggregates every day of the month for the month-grid view.
func (s *leaveServiceImpl) CalendarMonth(ctx context.Context, year int, month time.Month) (leave.CalendarMonthResponse, error) {
	requests, err := s.requestRepo.List(ctx)
	if err != nil {
		return leave.CalendarMonthResponse{}, err
	}

	daysInMonth := dateutil.DaysInMonth(year, month)
	days := make([]leave.CalendarDayResponse, 0, daysInMonth)
	for day := 1; day <= daysInMonth; day++ {
		date := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
		matched := RequestsOnDay(date, requests)
		sort.SliceStable(matched, func(i, j int) bool { return matched[i].ID < matched[j].ID })

		responses := make([]leave.LeaveRequestResponse, 0, len(matched))
		for _, req := range matched {
			responses = append(responses, leave.ToResponse(req))
		}

		days = append(days, leave.CalendarDayResponse{
			Date:     dateutil.FormatDate(date),
			Day:      day,
			Requests: responses,
		})
	}

	return leave.CalendarMonthResponse{
		Year:  year,
		Month: int(month),
		Days:  days,
	}, nil
}

func (s *leaveServiceImpl) RequestsOnDay(ctx context.Context, day time.Time) ([]leave.LeaveRequestResponse, error) {
	requests, err := s.requestRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	matched := RequestsOnDay(day, requests)
	responses := make([]leave.LeaveRequestResponse, 0, len(matched))
	for _, req := range matched {
		responses = append(responses, leave.ToResponse(req))
	}
	return responses, nil
}
