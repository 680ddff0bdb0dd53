package review

import (
	"context"
	"testing"
	"time"

	"github.com/rh-war/hr-console-backend-go/internal/domain/employee"
	"github.com/rh-war/hr-console-backend-go/internal/domain/review"
	"github.com/rh-war/hr-console-backend-go/internal/repository/memory"
	"github.com/rh-war/hr-console-backend-go/internal/service/assist"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubAssist struct {
	suggestion string
	err        error
}

func (s *stubAssist) GenerateJobDescription(ctx context.Context, title, department string) (string, error) {
	return s.suggestion, s.err
}

func (s *stubAssist) GeneratePerformanceSuggestion(ctx context.Context, employeeName, feedback string, rating int) (string, error) {
	return s.suggestion, s.err
}

func newTestService(t *testing.T, a assist.AssistService) review.ReviewService {
	t.Helper()
	reviewRepo := memory.NewReviewRepository([]review.Review{
		{
			ID:       1,
			Employee: employee.Snapshot{ID: 1, Name: "Ana Souza"},
			Date:     time.Date(2024, time.June, 10, 0, 0, 0, 0, time.UTC),
			Reviewer: "Maria Silva",
			Feedback: "Entrega consistente, comunicação pode melhorar.",
			Rating:   4,
		},
	})
	employeeRepo := memory.NewEmployeeRepository([]employee.Employee{
		{ID: 1, Name: "Ana Souza", Status: employee.StatusActive},
	})
	return NewReviewService(reviewRepo, employeeRepo, a)
}

func TestSuggestImprovements_StoresSuggestion(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t, &stubAssist{suggestion: "Invista em apresentações quinzenais."})

	got, err := svc.SuggestImprovements(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "Invista em apresentações quinzenais.", got.AISuggestion)

	stored, err := svc.GetReview(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "Invista em apresentações quinzenais.", stored.AISuggestion)
}

func TestSuggestImprovements_DisabledAssist(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t, assist.NewAssistService(""))

	_, err := svc.SuggestImprovements(ctx, 1)
	assert.ErrorIs(t, err, assist.ErrAssistDisabled)
}

func TestUpdateReview_KeepsExistingSuggestion(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t, &stubAssist{suggestion: "Sugestão gerada."})

	_, err := svc.SuggestImprovements(ctx, 1)
	require.NoError(t, err)

	err = svc.UpdateReview(ctx, review.UpdateReviewRequest{
		ID: 1,
		CreateReviewRequest: review.CreateReviewRequest{
			EmployeeID: 1,
			Date:       "2024-06-11",
			Reviewer:   "Maria Silva",
			Feedback:   "Feedback revisado.",
			Rating:     5,
		},
	})
	require.NoError(t, err)

	got, err := svc.GetReview(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "Feedback revisado.", got.Feedback)
	assert.Equal(t, "Sugestão gerada.", got.AISuggestion)
}

func TestCreateReview_ResolvesEmployeeSnapshot(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t, &stubAssist{})

	created, err := svc.CreateReview(ctx, review.CreateReviewRequest{
		EmployeeID: 1,
		Date:       "2024-07-01",
		Reviewer:   "Fernanda Souza",
		Feedback:   "Ótimo trimestre.",
		Rating:     5,
	})
	require.NoError(t, err)
	assert.Equal(t, "Ana Souza", created.Employee.Name)
	assert.Equal(t, "2024-07-01", created.Date)
	assert.Empty(t, created.AISuggestion)
}
