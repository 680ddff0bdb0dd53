package role

import "context"

type RoleRepository interface {
	Create(ctx context.Context, r Role) (Role, error)
	GetByID(ctx context.Context, id int) (Role, error)
	List(ctx context.Context) ([]Role, error)
	Update(ctx context.Context, r Role) error
	Delete(ctx context.Context, id int) error
}
