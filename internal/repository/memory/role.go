package memory

import (
	"context"
	"sync"

	"github.com/rh-war/hr-console-backend-go/internal/domain/master/role"
)

type RoleRepository struct {
	mu    sync.RWMutex
	roles []role.Role
}

func NewRoleRepository(seed []role.Role) *RoleRepository {
	return &RoleRepository{roles: cloneSlice(seed)}
}

func (r *RoleRepository) Create(ctx context.Context, entity role.Role) (role.Role, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	entity.ID = nextID(r.roles, func(rl role.Role) int { return rl.ID })
	r.roles = append(cloneSlice(r.roles), entity)
	return entity, nil
}

func (r *RoleRepository) GetByID(ctx context.Context, id int) (role.Role, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, rl := range r.roles {
		if rl.ID == id {
			return rl, nil
		}
	}
	return role.Role{}, role.ErrRoleNotFound
}

func (r *RoleRepository) List(ctx context.Context) ([]role.Role, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return cloneSlice(r.roles), nil
}

func (r *RoleRepository) Update(ctx context.Context, entity role.Role) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	next := cloneSlice(r.roles)
	for i, existing := range next {
		if existing.ID == entity.ID {
			next[i] = entity
			break
		}
	}
	r.roles = next
	return nil
}

func (r *RoleRepository) Delete(ctx context.Context, id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	next := make([]role.Role, 0, len(r.roles))
	for _, rl := range r.roles {
		if rl.ID != id {
			next = append(next, rl)
		}
	}
	r.roles = next
	return nil
}
