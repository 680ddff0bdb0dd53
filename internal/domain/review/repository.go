package review

import "context"

type ReviewRepository interface {
	Create(ctx context.Context, r Review) (Review, error)
	GetByID(ctx context.Context, id int) (Review, error)
	List(ctx context.Context) ([]Review, error)
	Update(ctx context.Context, r Review) error
	Delete(ctx context.Context, id int) error
}
