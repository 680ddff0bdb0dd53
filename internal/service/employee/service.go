package employee

import (
	"context"

	"github.com/rh-war/hr-console-backend-go/internal/domain/employee"
)

type employeeServiceImpl struct {
	employeeRepo employee.EmployeeRepository
}

func NewEmployeeService(employeeRepo employee.EmployeeRepository) employee.EmployeeService {
	return &employeeServiceImpl{employeeRepo: employeeRepo}
}

func (s *employeeServiceImpl) CreateEmployee(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	created, err := s.employeeRepo.Create(ctx, req.ToEntity())
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return employee.ToResponse(created), nil
}

func (s *employeeServiceImpl) GetEmployee(ctx context.Context, id int) (employee.EmployeeResponse, error) {
	e, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return employee.ToResponse(e), nil
}

func (s *employeeServiceImpl) ListEmployees(ctx context.Context) ([]employee.EmployeeResponse, error) {
	employees, err := s.employeeRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]employee.EmployeeResponse, 0, len(employees))
	for _, e := range employees {
		responses = append(responses, employee.ToResponse(e))
	}
	return responses, nil
}

// ListActiveEmployees feeds the leave form and the timeline roster, which
// only offer active staff.
func (s *employeeServiceImpl) ListActiveEmployees(ctx context.Context) ([]employee.EmployeeResponse, error) {
	employees, err := s.employeeRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]employee.EmployeeResponse, 0, len(employees))
	for _, e := range employees {
		if e.Status != employee.StatusActive {
			continue
		}
		responses = append(responses, employee.ToResponse(e))
	}
	return responses, nil
}

func (s *employeeServiceImpl) UpdateEmployee(ctx context.Context, req employee.UpdateEmployeeRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}
	return s.employeeRepo.Update(ctx, req.ToEntity())
}

// DeleteEmployee removes the directory record after confirmation on the
// client. Existing leave requests and reviews keep their snapshots.
func (s *employeeServiceImpl) DeleteEmployee(ctx context.Context, id int) error {
	return s.employeeRepo.Delete(ctx, id)
}
