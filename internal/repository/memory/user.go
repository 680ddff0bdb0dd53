package memory

import (
	"context"
	"sync"

	"github.com/rh-war/hr-console-backend-go/internal/domain/user"
)

type UserRepository struct {
	mu    sync.RWMutex
	users []user.User
}

func NewUserRepository(seed []user.User) *UserRepository {
	return &UserRepository{users: cloneSlice(seed)}
}

func (r *UserRepository) Create(ctx context.Context, u user.User) (user.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.users {
		if existing.Login == u.Login {
			return user.User{}, user.ErrLoginExists
		}
	}

	u.ID = nextID(r.users, func(usr user.User) int { return usr.ID })
	r.users = append(cloneSlice(r.users), u)
	return u, nil
}

func (r *UserRepository) GetByID(ctx context.Context, id int) (user.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if u.ID == id {
			return u, nil
		}
	}
	return user.User{}, user.ErrUserNotFound
}

func (r *UserRepository) GetByLogin(ctx context.Context, login string) (user.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if u.Login == login {
			return u, nil
		}
	}
	return user.User{}, user.ErrUserNotFound
}

func (r *UserRepository) List(ctx context.Context) ([]user.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return cloneSlice(r.users), nil
}

func (r *UserRepository) Update(ctx context.Context, u user.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	next := cloneSlice(r.users)
	for i, existing := range next {
		if existing.ID == u.ID {
			next[i] = u
			break
		}
	}
	r.users = next
	return nil
}

func (r *UserRepository) Delete(ctx context.Context, id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	next := make([]user.User, 0, len(r.users))
	for _, u := range r.users {
		if u.ID != id {
			next = append(next, u)
		}
	}
	r.users = next
	return nil
}
