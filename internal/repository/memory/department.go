package memory

import (
	"context"
	"strings"
	"sync"

	"github.com/rh-war/hr-console-backend-go/internal/domain/master/department"
)

type DepartmentRepository struct {
	mu          sync.RWMutex
	departments []department.Department
}

func NewDepartmentRepository(seed []department.Department) *DepartmentRepository {
	return &DepartmentRepository{departments: cloneSlice(seed)}
}

func (r *DepartmentRepository) Create(ctx context.Context, d department.Department) (department.Department, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.departments {
		if strings.EqualFold(existing.Name, d.Name) {
			return department.Department{}, department.ErrDepartmentNameExists
		}
	}

	d.ID = nextID(r.departments, func(dep department.Department) int { return dep.ID })
	r.departments = append(cloneSlice(r.departments), d)
	return d, nil
}

func (r *DepartmentRepository) GetByID(ctx context.Context, id int) (department.Department, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, d := range r.departments {
		if d.ID == id {
			return d, nil
		}
	}
	return department.Department{}, department.ErrDepartmentNotFound
}

func (r *DepartmentRepository) List(ctx context.Context) ([]department.Department, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return cloneSlice(r.departments), nil
}

func (r *DepartmentRepository) Update(ctx context.Context, d department.Department) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	next := cloneSlice(r.departments)
	for i, existing := range next {
		if existing.ID == d.ID {
			next[i] = d
			break
		}
	}
	r.departments = next
	return nil
}

func (r *DepartmentRepository) Delete(ctx context.Context, id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	next := make([]department.Department, 0, len(r.departments))
	for _, d := range r.departments {
		if d.ID != id {
			next = append(next, d)
		}
	}
	r.departments = next
	return nil
}
