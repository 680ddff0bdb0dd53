package memory

import (
	"context"
	"sync"

	"github.com/rh-war/hr-console-backend-go/internal/domain/employee"
)

type EmployeeRepository struct {
	mu        sync.RWMutex
	employees []employee.Employee
}

func NewEmployeeRepository(seed []employee.Employee) *EmployeeRepository {
	return &EmployeeRepository{employees: cloneSlice(seed)}
}

func (r *EmployeeRepository) Create(ctx context.Context, e employee.Employee) (employee.Employee, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.employees {
		if existing.CPF == e.CPF {
			return employee.Employee{}, employee.ErrCPFExists
		}
	}

	e.ID = nextID(r.employees, func(emp employee.Employee) int { return emp.ID })
	r.employees = append(cloneSlice(r.employees), e)
	return e, nil
}

func (r *EmployeeRepository) GetByID(ctx context.Context, id int) (employee.Employee, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, e := range r.employees {
		if e.ID == id {
			return e, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (r *EmployeeRepository) List(ctx context.Context) ([]employee.Employee, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return cloneSlice(r.employees), nil
}

func (r *EmployeeRepository) Update(ctx context.Context, e employee.Employee) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	next := cloneSlice(r.employees)
	for i, existing := range next {
		if existing.ID == e.ID {
			next[i] = e
			break
		}
	}
	r.employees = next
	return nil
}

// Delete removes the directory record only. Leave requests and reviews keep
// their denormalized snapshots.
func (r *EmployeeRepository) Delete(ctx context.Context, id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	next := make([]employee.Employee, 0, len(r.employees))
	for _, e := range r.employees {
		if e.ID != id {
			next = append(next, e)
		}
	}
	r.employees = next
	return nil
}
