package receipt

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"minipos/internal/core/apperror"
	"minipos/internal/core/id"
	"minipos/internal/core/types"
)

func validReceipt() *Receipt {
	r := New(id.New(), id.New())
	r.PaymentType = PaymentCash
	r.AddItem(id.New(), "Хлеб", types.NewMoneyFromInt(2), types.NewMoneyFromInt(30))
	r.AddItem(id.New(), "Кола 0.5л", types.NewMoneyFromInt(1), types.NewMoneyFromInt(65))
	return r
}

func TestReceipt_RecalculateTotal(t *testing.T) {
	r := validReceipt()
	assert.True(t, r.Total.Equal(types.NewMoneyFromInt(125)), "total = %s", r.Total)

	r.Discount = types.NewMoneyFromInt(25)
	r.RecalculateTotal()
	assert.True(t, r.Total.Equal(types.NewMoneyFromInt(100)), "total = %s", r.Total)
}

func TestReceipt_Validate(t *testing.T) {
	ctx := context.Background()

	t.Run("valid", func(t *testing.T) {
		assert.NoError(t, validReceipt().Validate(ctx))
	})

	t.Run("no items", func(t *testing.T) {
		r := New(id.New(), id.New())
		r.PaymentType = PaymentQR
		err := r.Validate(ctx)
		require.Error(t, err)
		assert.True(t, apperror.IsValidation(err))
	})

	t.Run("zero quantity", func(t *testing.T) {
		r := validReceipt()
		r.Items[0].Qty = types.Zero()
		r.RecalculateTotal()
		assert.Error(t, r.Validate(ctx))
	})

	t.Run("negative price", func(t *testing.T) {
		r := validReceipt()
		r.Items[0].Price = types.NewMoneyFromInt(-5)
		r.RecalculateTotal()
		assert.Error(t, r.Validate(ctx))
	})

	t.Run("unknown payment type", func(t *testing.T) {
		r := validReceipt()
		r.PaymentType = "card"
		assert.Error(t, r.Validate(ctx))
	})

	t.Run("total mismatch", func(t *testing.T) {
		r := validReceipt()
		r.Total = types.NewMoneyFromInt(999)
		err := r.Validate(ctx)
		require.Error(t, err)
		assert.True(t, apperror.IsValidation(err))
	})

	t.Run("discount included in total", func(t *testing.T) {
		r := validReceipt()
		r.Discount = types.NewMoneyFromInt(10)
		r.RecalculateTotal()
		assert.NoError(t, r.Validate(ctx))
		assert.True(t, r.Total.Equal(types.NewMoneyFromInt(115)))
	})
}

func TestReceipt_ItemsSum(t *testing.T) {
	r := validReceipt()
	assert.True(t, r.ItemsSum().Equal(types.NewMoneyFromInt(125)))

	empty := New(id.New(), id.New())
	assert.True(t, empty.ItemsSum().IsZero())
}
