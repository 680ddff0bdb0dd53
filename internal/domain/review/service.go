package review

import "context"

type ReviewService interface {
	CreateReview(ctx context.Context, req CreateReviewRequest) (ReviewResponse, error)
	GetReview(ctx context.Context, id int) (ReviewResponse, error)
	ListReviews(ctx context.Context) ([]ReviewResponse, error)
	UpdateReview(ctx context.Context, req UpdateReviewRequest) error
	DeleteReview(ctx context.Context, id int) error

	// SuggestImprovements generates coaching text for the review via the
	// assist collaborator and stores it on the record.
	SuggestImprovements(ctx context.Context, id int) (ReviewResponse, error)
}
