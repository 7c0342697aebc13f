package customers

import (
	"context"
	"fmt"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/installdesk/installdesk/internal/materials"
	"github.com/installdesk/installdesk/internal/workorders"
)

func newTestService() *Service {
	return NewService(NewMemoryRepository(nil))
}

func TestCreateAssignsSequentialNumbers(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()
	year := time.Now().UTC().Year()

	for i := 1; i <= 3; i++ {
		c, err := svc.Create(ctx, CreateCustomerRequest{Name: fmt.Sprintf("Klant %d", i)})
		require.NoError(t, err)
		require.Equal(t, fmt.Sprintf("KL-%d-%04d", year, i), c.CustomerNumber)
		require.Equal(t, StatusActive, c.Status)
		require.False(t, c.CreatedAt.IsZero())
	}
}

func TestUpdateNeverChangesCustomerNumber(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	c, err := svc.Create(ctx, CreateCustomerRequest{Name: "Jansen BV"})
	require.NoError(t, err)

	bogus := "KL-1999-9999"
	name := "Jansen Installaties BV"
	updated, err := svc.Update(ctx, c.ID, UpdateCustomerRequest{
		CustomerNumber: &bogus,
		Name:           &name,
	})
	require.NoError(t, err)
	require.Equal(t, c.CustomerNumber, updated.CustomerNumber)
	require.Equal(t, "Jansen Installaties BV", updated.Name)
}

func TestUpdateMissingCustomer(t *testing.T) {
	svc := newTestService()
	name := "Niemand"
	_, err := svc.Update(context.Background(), 404, UpdateCustomerRequest{Name: &name})
	require.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteReportsExistence(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	c, err := svc.Create(ctx, CreateCustomerRequest{Name: "De Vries"})
	require.NoError(t, err)

	ok, err := svc.Delete(ctx, c.ID)
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = svc.Delete(ctx, c.ID)
	require.NoError(t, err)
	require.False(t, ok)

	_, err = svc.Get(ctx, c.ID)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteCustomerLeavesWorkOrdersDangling(t *testing.T) {
	custSvc := newTestService()
	woSvc := workorders.NewService(workorders.NewMemoryRepository(nil), materials.NewMemoryRepository(nil), nil, slog.Default())
	ctx := context.Background()

	c, err := custSvc.Create(ctx, CreateCustomerRequest{Name: "Bakker BV"})
	require.NoError(t, err)

	w, err := woSvc.Create(ctx, workorders.CreateWorkOrderRequest{CustomerID: c.ID, Title: "Meterkast vervangen"})
	require.NoError(t, err)

	ok, err := custSvc.Delete(ctx, c.ID)
	require.NoError(t, err)
	require.True(t, ok)

	// No cascade: the work order survives with its reference intact.
	got, err := woSvc.Get(ctx, w.ID)
	require.NoError(t, err)
	require.Equal(t, c.ID, got.CustomerID)
}

func TestListMostRecentFirst(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	first, err := svc.Create(ctx, CreateCustomerRequest{Name: "Eerste"})
	require.NoError(t, err)
	second, err := svc.Create(ctx, CreateCustomerRequest{Name: "Tweede"})
	require.NoError(t, err)

	list, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	require.Equal(t, second.ID, list[0].ID)
	require.Equal(t, first.ID, list[1].ID)
}
