package recruitment

import (
	"context"
	"testing"

	"github.com/rh-war/hr-console-backend-go/internal/domain/recruitment"
	"github.com/rh-war/hr-console-backend-go/internal/repository/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) recruitment.RecruitmentService {
	t.Helper()
	jobRepo := memory.NewJobRepository([]recruitment.Job{
		{ID: 1, Title: "Engenheira de Dados", Department: "Dados", Status: recruitment.JobStatusOpen},
		{ID: 2, Title: "Analista de RH", Department: "RH", Status: recruitment.JobStatusOpen},
	})
	stageRepo := memory.NewStageRepository([]recruitment.Stage{
		{ID: 1, Name: "Triagem", Order: 1},
		{ID: 2, Name: "Entrevista", Order: 2},
		{ID: 3, Name: "Proposta", Order: 3},
	})
	candidateRepo := memory.NewCandidateRepository([]recruitment.Candidate{
		{ID: 1, Name: "Carla Nunes", JobID: 1, StageID: 1},
		{ID: 2, Name: "Diego Ramos", JobID: 1, StageID: 2},
		{ID: 3, Name: "Elisa Prado", JobID: 2, StageID: 1},
	})
	return NewRecruitmentService(jobRepo, stageRepo, candidateRepo)
}

func TestMoveCandidate(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	err := svc.MoveCandidate(ctx, recruitment.MoveCandidateRequest{CandidateID: 1, StageID: 2})
	require.NoError(t, err)

	got, err := svc.GetCandidate(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 2, got.StageID)
}

func TestMoveCandidate_UnknownStage(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	err := svc.MoveCandidate(ctx, recruitment.MoveCandidateRequest{CandidateID: 1, StageID: 99})
	assert.ErrorIs(t, err, recruitment.ErrStageNotFound)

	got, err := svc.GetCandidate(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, got.StageID)
}

func TestMoveCandidate_UnknownCandidateIsNoOp(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	err := svc.MoveCandidate(ctx, recruitment.MoveCandidateRequest{CandidateID: 99, StageID: 2})
	require.NoError(t, err)

	candidates, err := svc.ListCandidates(ctx)
	require.NoError(t, err)
	assert.Len(t, candidates, 3)
}

func TestBoard_ColumnsFollowStageOrder(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	columns, err := svc.Board(ctx, nil)
	require.NoError(t, err)
	require.Len(t, columns, 3)

	assert.Equal(t, "Triagem", columns[0].Stage.Name)
	assert.Equal(t, "Entrevista", columns[1].Stage.Name)
	assert.Equal(t, "Proposta", columns[2].Stage.Name)

	assert.Len(t, columns[0].Candidates, 2)
	assert.Len(t, columns[1].Candidates, 1)
	assert.Empty(t, columns[2].Candidates)
	assert.NotNil(t, columns[2].Candidates)
}

func TestBoard_FiltersByJob(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	jobID := 2
	columns, err := svc.Board(ctx, &jobID)
	require.NoError(t, err)
	require.Len(t, columns, 3)

	require.Len(t, columns[0].Candidates, 1)
	assert.Equal(t, "Elisa Prado", columns[0].Candidates[0].Name)
	assert.Empty(t, columns[1].Candidates)
}

func TestCreateCandidate_UnknownJob(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	_, err := svc.CreateCandidate(ctx, recruitment.CreateCandidateRequest{
		Name:    "Fabio Torres",
		JobID:   99,
		StageID: 1,
	})
	assert.ErrorIs(t, err, recruitment.ErrJobNotFound)
}

func TestCreateStage_AppendsToEndOfBoard(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	created, err := svc.CreateStage(ctx, recruitment.CreateStageRequest{Name: "Contratação"})
	require.NoError(t, err)
	assert.Equal(t, 4, created.Order)

	stages, err := svc.ListStages(ctx)
	require.NoError(t, err)
	require.Len(t, stages, 4)
	assert.Equal(t, "Contratação", stages[3].Name)
}
