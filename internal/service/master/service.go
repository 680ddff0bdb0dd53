package master

import (
	"context"

	"github.com/rh-war/hr-console-backend-go/internal/domain/master/contract"
	"github.com/rh-war/hr-console-backend-go/internal/domain/master/department"
	"github.com/rh-war/hr-console-backend-go/internal/domain/master/role"
)

type MasterService interface {
	// Department operations
	CreateDepartment(ctx context.Context, req department.CreateDepartmentRequest) (department.DepartmentResponse, error)
	GetDepartment(ctx context.Context, id int) (department.DepartmentResponse, error)
	ListDepartments(ctx context.Context) ([]department.DepartmentResponse, error)
	UpdateDepartment(ctx context.Context, req department.UpdateDepartmentRequest) error
	DeleteDepartment(ctx context.Context, id int) error

	// Role operations
	CreateRole(ctx context.Context, req role.CreateRoleRequest) (role.RoleResponse, error)
	GetRole(ctx context.Context, id int) (role.RoleResponse, error)
	ListRoles(ctx context.Context) ([]role.RoleResponse, error)
	UpdateRole(ctx context.Context, req role.UpdateRoleRequest) error
	DeleteRole(ctx context.Context, id int) error

	// Contract type operations
	CreateContract(ctx context.Context, req contract.CreateContractRequest) (contract.ContractResponse, error)
	GetContract(ctx context.Context, id int) (contract.ContractResponse, error)
	ListContracts(ctx context.Context) ([]contract.ContractResponse, error)
	UpdateContract(ctx context.Context, req contract.UpdateContractRequest) error
	DeleteContract(ctx context.Context, id int) error
}

type masterServiceImpl struct {
	departmentRepo department.DepartmentRepository
	roleRepo       role.RoleRepository
	contractRepo   contract.ContractRepository
}

func NewMasterService(
	departmentRepo department.DepartmentRepository,
	roleRepo role.RoleRepository,
	contractRepo contract.ContractRepository,
) MasterService {
	return &masterServiceImpl{
		departmentRepo: departmentRepo,
		roleRepo:       roleRepo,
		contractRepo:   contractRepo,
	}
}

// ==================== DEPARTMENT OPERATIONS ====================

func (s *masterServiceImpl) CreateDepartment(ctx context.Context, req department.CreateDepartmentRequest) (department.DepartmentResponse, error) {
	if err := req.Validate(); err != nil {
		return department.DepartmentResponse{}, err
	}

	created, err := s.departmentRepo.Create(ctx, department.Department{Name: req.Name})
	if err != nil {
		return department.DepartmentResponse{}, err
	}
	return department.DepartmentResponse{ID: created.ID, Name: created.Name}, nil
}

func (s *masterServiceImpl) GetDepartment(ctx context.Context, id int) (department.DepartmentResponse, error) {
	d, err := s.departmentRepo.GetByID(ctx, id)
	if err != nil {
		return department.DepartmentResponse{}, err
	}
	return department.DepartmentResponse{ID: d.ID, Name: d.Name}, nil
}

func (s *masterServiceImpl) ListDepartments(ctx context.Context) ([]department.DepartmentResponse, error) {
	departments, err := s.departmentRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]department.DepartmentResponse, 0, len(departments))
	for _, d := range departments {
		responses = append(responses, department.DepartmentResponse{ID: d.ID, Name: d.Name})
	}
	return responses, nil
}

func (s *masterServiceImpl) UpdateDepartment(ctx context.Context, req department.UpdateDepartmentRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	d, err := s.departmentRepo.GetByID(ctx, req.ID)
	if err != nil {
		return err
	}

	if req.Name != nil {
		d.Name = *req.Name
	}
	return s.departmentRepo.Update(ctx, d)
}

func (s *masterServiceImpl) DeleteDepartment(ctx context.Context, id int) error {
	return s.departmentRepo.Delete(ctx, id)
}

// ==================== ROLE OPERATIONS ====================

func (s *masterServiceImpl) CreateRole(ctx context.Context, req role.CreateRoleRequest) (role.RoleResponse, error) {
	if err := req.Validate(); err != nil {
		return role.RoleResponse{}, err
	}

	// The department must exist at creation time; the stored value is its
	// id, so later renames propagate naturally.
	if _, err := s.departmentRepo.GetByID(ctx, req.DepartmentID); err != nil {
		return role.RoleResponse{}, err
	}

	created, err := s.roleRepo.Create(ctx, role.Role{
		Name:         req.Name,
		DepartmentID: req.DepartmentID,
		Salary:       req.Salary,
	})
	if err != nil {
		return role.RoleResponse{}, err
	}
	return toRoleResponse(created), nil
}

func (s *masterServiceImpl) GetRole(ctx context.Context, id int) (role.RoleResponse, error) {
	r, err := s.roleRepo.GetByID(ctx, id)
	if err != nil {
		return role.RoleResponse{}, err
	}
	return toRoleResponse(r), nil
}

func (s *masterServiceImpl) ListRoles(ctx context.Context) ([]role.RoleResponse, error) {
	roles, err := s.roleRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]role.RoleResponse, 0, len(roles))
	for _, r := range roles {
		responses = append(responses, toRoleResponse(r))
	}
	return responses, nil
}

func (s *masterServiceImpl) UpdateRole(ctx context.Context, req role.UpdateRoleRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	r, err := s.roleRepo.GetByID(ctx, req.ID)
	if err != nil {
		return err
	}

	if req.Name != nil {
		r.Name = *req.Name
	}
	if req.DepartmentID != nil {
		if _, err := s.departmentRepo.GetByID(ctx, *req.DepartmentID); err != nil {
			return err
		}
		r.DepartmentID = *req.DepartmentID
	}
	if req.Salary != nil {
		r.Salary = *req.Salary
	}
	return s.roleRepo.Update(ctx, r)
}

func (s *masterServiceImpl) DeleteRole(ctx context.Context, id int) error {
	return s.roleRepo.Delete(ctx, id)
}

func toRoleResponse(r role.Role) role.RoleResponse {
	return role.RoleResponse{
		ID:           r.ID,
		Name:         r.Name,
		DepartmentID: r.DepartmentID,
		Salary:       r.Salary,
	}
}

// ==================== CONTRACT TYPE OPERATIONS ====================

func (s *masterServiceImpl) CreateContract(ctx context.Context, req contract.CreateContractRequest) (contract.ContractResponse, error) {
	if err := req.Validate(); err != nil {
		return contract.ContractResponse{}, err
	}

	created, err := s.contractRepo.Create(ctx, contract.Contract{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		return contract.ContractResponse{}, err
	}
	return contract.ContractResponse{ID: created.ID, Name: created.Name, Description: created.Description}, nil
}

func (s *masterServiceImpl) GetContract(ctx context.Context, id int) (contract.ContractResponse, error) {
	c, err := s.contractRepo.GetByID(ctx, id)
	if err != nil {
		return contract.ContractResponse{}, err
	}
	return contract.ContractResponse{ID: c.ID, Name: c.Name, Description: c.Description}, nil
}

func (s *masterServiceImpl) ListContracts(ctx context.Context) ([]contract.ContractResponse, error) {
	contracts, err := s.contractRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]contract.ContractResponse, 0, len(contracts))
	for _, c := range contracts {
		responses = append(responses, contract.ContractResponse{ID: c.ID, Name: c.Name, Description: c.Description})
	}
	return responses, nil
}

func (s *masterServiceImpl) UpdateContract(ctx context.Context, req contract.UpdateContractRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	c, err := s.contractRepo.GetByID(ctx, req.ID)
	if err != nil {
		return err
	}

	if req.Name != nil {
		c.Name = *req.Name
	}
	if req.Description != nil {
		c.Description = *req.Description
	}
	return s.contractRepo.Update(ctx, c)
}

func (s *masterServiceImpl) DeleteContract(ctx context.Context, id int) error {
	return s.contractRepo.Delete(ctx, id)
}
