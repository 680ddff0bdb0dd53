package review

import (
	"context"

	"github.com/rh-war/hr-console-backend-go/internal/domain/employee"
	"github.com/rh-war/hr-console-backend-go/internal/domain/review"
	"github.com/rh-war/hr-console-backend-go/internal/pkg/dateutil"
	"github.com/rh-war/hr-console-backend-go/internal/service/assist"
)

type reviewServiceImpl struct {
	reviewRepo   review.ReviewRepository
	employeeRepo employee.EmployeeRepository
	assist       assist.AssistService
}

func NewReviewService(
	reviewRepo review.ReviewRepository,
	employeeRepo employee.EmployeeRepository,
	assistService assist.AssistService,
) review.ReviewService {
	return &reviewServiceImpl{
		reviewRepo:   reviewRepo,
		employeeRepo: employeeRepo,
		assist:       assistService,
	}
}

func (s *reviewServiceImpl) CreateReview(ctx context.Context, req review.CreateReviewRequest) (review.ReviewResponse, error) {
	if err := req.Validate(); err != nil {
		return review.ReviewResponse{}, err
	}

	e, err := s.employeeRepo.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return review.ReviewResponse{}, err
	}

	date, err := dateutil.ParseDate(req.Date)
	if err != nil {
		return review.ReviewResponse{}, err
	}

	created, err := s.reviewRepo.Create(ctx, review.Review{
		Employee: e.Snapshot(),
		Date:     date,
		Reviewer: req.Reviewer,
		Feedback: req.Feedback,
		Rating:   req.Rating,
	})
	if err != nil {
		return review.ReviewResponse{}, err
	}
	return review.ToResponse(created), nil
}

func (s *reviewServiceImpl) GetReview(ctx context.Context, id int) (review.ReviewResponse, error) {
	r, err := s.reviewRepo.GetByID(ctx, id)
	if err != nil {
		return review.ReviewResponse{}, err
	}
	return review.ToResponse(r), nil
}

func (s *reviewServiceImpl) ListReviews(ctx context.Context) ([]review.ReviewResponse, error) {
	reviews, err := s.reviewRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]review.ReviewResponse, 0, len(reviews))
	for _, r := range reviews {
		responses = append(responses, review.ToResponse(r))
	}
	return responses, nil
}

// UpdateReview overwrites the review fields but keeps a previously generated
// suggestion, since editing feedback should not discard it.
func (s *reviewServiceImpl) UpdateReview(ctx context.Context, req review.UpdateReviewRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	existing, err := s.reviewRepo.GetByID(ctx, req.ID)
	if err != nil {
		return err
	}

	e, err := s.employeeRepo.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return err
	}

	date, err := dateutil.ParseDate(req.Date)
	if err != nil {
		return err
	}

	return s.reviewRepo.Update(ctx, review.Review{
		ID:           req.ID,
		Employee:     e.Snapshot(),
		Date:         date,
		Reviewer:     req.Reviewer,
		Feedback:     req.Feedback,
		Rating:       req.Rating,
		AISuggestion: existing.AISuggestion,
	})
}

func (s *reviewServiceImpl) DeleteReview(ctx context.Context, id int) error {
	return s.reviewRepo.Delete(ctx, id)
}

func (s *reviewServiceImpl) SuggestImprovements(ctx context.Context, id int) (review.ReviewResponse, error) {
	r, err := s.reviewRepo.GetByID(ctx, id)
	if err != nil {
		return review.ReviewResponse{}, err
	}

	suggestion, err := s.assist.GeneratePerformanceSuggestion(ctx, r.Employee.Name, r.Feedback, r.Rating)
	if err != nil {
		return review.ReviewResponse{}, err
	}

	r.AISuggestion = suggestion
	if err := s.reviewRepo.Update(ctx, r); err != nil {
		return review.ReviewResponse{}, err
	}
	return review.ToResponse(r), nil
}
