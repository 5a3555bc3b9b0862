package receipt

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"minipos/internal/core/apperror"
	appctx "minipos/internal/core/context"
	"minipos/internal/core/id"
	"minipos/internal/core/numerator"
	"minipos/internal/core/types"
	"minipos/internal/domain"
)

type memoryRepo struct {
	receipts map[id.ID]*Receipt
}

func newMemoryRepo() *memoryRepo {
	return &memoryRepo{receipts: make(map[id.ID]*Receipt)}
}

func (m *memoryRepo) Create(_ context.Context, r *Receipt) error {
	m.receipts[r.ID] = r
	return nil
}

func (m *memoryRepo) GetByID(_ context.Context, receiptID id.ID) (*Receipt, error) {
	r, ok := m.receipts[receiptID]
	if !ok {
		return nil, apperror.NewNotFound("receipt", receiptID)
	}
	return r, nil
}

func (m *memoryRepo) Update(_ context.Context, r *Receipt) error {
	if _, ok := m.receipts[r.ID]; !ok {
		return apperror.NewNotFound("receipt", r.ID)
	}
	m.receipts[r.ID] = r
	return nil
}

func (m *memoryRepo) List(_ context.Context, _ Filter) (domain.ListResult[*Receipt], error) {
	out := make([]*Receipt, 0, len(m.receipts))
	for _, r := range m.receipts {
		out = append(out, r)
	}
	return domain.ListResult[*Receipt]{Items: out, TotalCount: int64(len(out))}, nil
}

func (m *memoryRepo) ListSince(_ context.Context, _ id.ID, _ time.Time) ([]*Receipt, error) {
	out := make([]*Receipt, 0, len(m.receipts))
	for _, r := range m.receipts {
		out = append(out, r)
	}
	return out, nil
}

type passthroughTx struct{}

func (passthroughTx) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func newTestService(repo *memoryRepo) *Service {
	gen := &numerator.MockGenerator{
		GetNextNumberFunc: func(context.Context, numerator.Config, *numerator.Options, time.Time) (string, error) {
			return "RC-2026-00042", nil
		},
	}
	return NewService(repo, gen, passthroughTx{}, nil)
}

func newSale(t *testing.T) *Receipt {
	t.Helper()
	r := New(id.New(), id.New())
	r.PaymentType = PaymentCash
	r.AddItem(id.New(), "Хлеб белый", types.MustMoney("2"), types.MustMoney("30"))
	return r
}

func TestServiceCreate_AssignsNumberAndDefaults(t *testing.T) {
	repo := newMemoryRepo()
	svc := newTestService(repo)

	r := newSale(t)
	r.Status = ""

	ctx := appctx.WithUser(context.Background(), &appctx.UserContext{
		UserID: id.New().String(),
		Name:   "Бекет Асанов",
	})
	require.NoError(t, svc.Create(ctx, r))

	assert.Equal(t, "RC-2026-00042", r.Number)
	assert.Equal(t, StatusPaid, r.Status)
	assert.Equal(t, "Бекет Асанов", r.CashierName)

	stored, err := repo.GetByID(ctx, r.ID)
	require.NoError(t, err)
	assert.True(t, stored.Total.Equal(types.MustMoney("60")))
}

func TestServiceCreate_RejectsInvalidReceipt(t *testing.T) {
	svc := newTestService(newMemoryRepo())

	r := New(id.New(), id.New())
	r.PaymentType = PaymentCash // no items

	err := svc.Create(context.Background(), r)
	require.Error(t, err)
	assert.True(t, apperror.IsValidation(err))
}

func TestServiceCancel(t *testing.T) {
	repo := newMemoryRepo()
	svc := newTestService(repo)
	ctx := context.Background()

	r := newSale(t)
	require.NoError(t, svc.Create(ctx, r))

	cancelled, err := svc.Cancel(ctx, r.ID, "пробит дважды")
	require.NoError(t, err)
	assert.Equal(t, StatusCancelled, cancelled.Status)
	assert.Equal(t, "пробит дважды", cancelled.CancelReason)

	// A second cancellation is rejected.
	_, err = svc.Cancel(ctx, r.ID, "еще раз")
	require.Error(t, err)
	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperror.CodeReceiptCancelled, appErr.Code)
}

func TestServiceCancel_RequiresReason(t *testing.T) {
	svc := newTestService(newMemoryRepo())

	_, err := svc.Cancel(context.Background(), id.New(), "  ")
	require.Error(t, err)
	assert.True(t, apperror.IsValidation(err))
}
