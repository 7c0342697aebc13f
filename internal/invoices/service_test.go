package invoices

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func newTestService() *Service {
	return NewService(NewMemoryRepository(nil))
}

func TestCreateAssignsYearScopedInvoiceNumbers(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()
	year := time.Now().UTC().Year()

	for i := 1; i <= 3; i++ {
		inv, err := svc.Create(ctx, CreateInvoiceRequest{CustomerID: 1})
		require.NoError(t, err)
		require.Equal(t, fmt.Sprintf("F-%d-%04d", year, i), inv.InvoiceNumber)
		require.Equal(t, StatusDraft, inv.Status)
	}
}

func TestCreateDerivesAmountFromItems(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	inv, err := svc.Create(ctx, CreateInvoiceRequest{
		CustomerID: 1,
		Items: []InvoiceItemInput{
			{Description: "Arbeidsloon", Quantity: 3, UnitPrice: 65},
			{Description: "Voorrijkosten", Quantity: 1, UnitPrice: 25},
		},
	})
	require.NoError(t, err)
	require.Equal(t, 220.0, inv.Amount)
}

func TestCreateKeepsExplicitAmount(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	inv, err := svc.Create(ctx, CreateInvoiceRequest{
		CustomerID: 1,
		Amount:     150,
		Items:      []InvoiceItemInput{{Description: "Vast tarief", Quantity: 1, UnitPrice: 99}},
	})
	require.NoError(t, err)
	require.Equal(t, 150.0, inv.Amount)
}

func TestUpdateItemsRederivesAmount(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	inv, err := svc.Create(ctx, CreateInvoiceRequest{
		CustomerID: 1,
		Items:      []InvoiceItemInput{{Description: "Arbeidsloon", Quantity: 2, UnitPrice: 65}},
	})
	require.NoError(t, err)
	require.Equal(t, 130.0, inv.Amount)

	updated, err := svc.Update(ctx, inv.ID, UpdateInvoiceRequest{
		Items: []InvoiceItemInput{{Description: "Arbeidsloon", Quantity: 4, UnitPrice: 65}},
	})
	require.NoError(t, err)
	require.Equal(t, 260.0, updated.Amount)
}

func TestMarkOverdueOnlyTouchesSentPastDue(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()
	now := time.Now().UTC()
	past := now.AddDate(0, 0, -10)
	future := now.AddDate(0, 0, 10)

	overdue, err := svc.Create(ctx, CreateInvoiceRequest{CustomerID: 1, Status: StatusSent, DueDate: &past})
	require.NoError(t, err)
	notDue, err := svc.Create(ctx, CreateInvoiceRequest{CustomerID: 1, Status: StatusSent, DueDate: &future})
	require.NoError(t, err)
	draft, err := svc.Create(ctx, CreateInvoiceRequest{CustomerID: 1, Status: StatusDraft, DueDate: &past})
	require.NoError(t, err)
	paid, err := svc.Create(ctx, CreateInvoiceRequest{CustomerID: 1, Status: StatusPaid, DueDate: &past})
	require.NoError(t, err)

	changed, err := svc.MarkOverdue(ctx, now)
	require.NoError(t, err)
	require.EqualValues(t, 1, changed)

	got, err := svc.Get(ctx, overdue.ID)
	require.NoError(t, err)
	require.Equal(t, StatusOverdue, got.Status)

	for _, id := range []int64{notDue.ID, draft.ID, paid.ID} {
		got, err := svc.Get(ctx, id)
		require.NoError(t, err)
		require.NotEqual(t, StatusOverdue, got.Status)
	}
}

func TestUpdateNeverChangesInvoiceNumber(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	inv, err := svc.Create(ctx, CreateInvoiceRequest{CustomerID: 1})
	require.NoError(t, err)

	bogus := "F-1999-9999"
	status := StatusSent
	updated, err := svc.Update(ctx, inv.ID, UpdateInvoiceRequest{InvoiceNumber: &bogus, Status: &status})
	require.NoError(t, err)
	require.Equal(t, inv.InvoiceNumber, updated.InvoiceNumber)
	require.Equal(t, StatusSent, updated.Status)
}
