package projects

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func newTestService() *Service {
	return NewService(NewMemoryRepository())
}

func TestCreateDefaultsToPlanned(t *testing.T) {
	svc := newTestService()
	p, err := svc.Create(context.Background(), CreateProjectRequest{Name: "Renovatie kantoorpand", CustomerID: 1})
	require.NoError(t, err)
	require.Equal(t, StatusPlanned, p.Status)
	require.Equal(t, 0, p.Progress)
	require.NotNil(t, p.WorkOrderIDs)
	require.Empty(t, p.WorkOrderIDs)
}

func TestUpdateProgressAndWorkOrders(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	p, err := svc.Create(ctx, CreateProjectRequest{Name: "Nieuwbouw", CustomerID: 1})
	require.NoError(t, err)

	progress := 40
	status := StatusInProgress
	updated, err := svc.Update(ctx, p.ID, UpdateProjectRequest{
		Progress:     &progress,
		Status:       &status,
		WorkOrderIDs: []int64{3, 7},
	})
	require.NoError(t, err)
	require.Equal(t, 40, updated.Progress)
	require.Equal(t, []int64{3, 7}, updated.WorkOrderIDs)
}

func TestCountActive(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	_, err := svc.Create(ctx, CreateProjectRequest{Name: "A", CustomerID: 1, Status: StatusInProgress})
	require.NoError(t, err)
	_, err = svc.Create(ctx, CreateProjectRequest{Name: "B", CustomerID: 1, Status: StatusInProgress})
	require.NoError(t, err)
	_, err = svc.Create(ctx, CreateProjectRequest{Name: "C", CustomerID: 1, Status: StatusPaused})
	require.NoError(t, err)

	count, err := svc.CountActive(ctx)
	require.NoError(t, err)
	require.Equal(t, 2, count)
}

func TestDeleteLeavesWorkOrderReferencesDangling(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	p, err := svc.Create(ctx, CreateProjectRequest{Name: "Te verwijderen", CustomerID: 1, WorkOrderIDs: []int64{11}})
	require.NoError(t, err)

	ok, err := svc.Delete(ctx, p.ID)
	require.NoError(t, err)
	require.True(t, ok)

	_, err = svc.Get(ctx, p.ID)
	require.ErrorIs(t, err, ErrNotFound)
}
