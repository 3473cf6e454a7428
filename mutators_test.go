package shopbook

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSell(t *testing.T) {
	l := newTestLedger()
	_, err := l.AddStock(10, d(50), d(80))
	require.NoError(t, err)

	sale, err := l.Sell(3, d(10), "evening batch")
	require.NoError(t, err)

	assert.Equal(t, 3, sale.Quantity)
	assert.True(t, sale.PricePerUnit.Equal(d(80)), "PricePerUnit = %v", sale.PricePerUnit)
	assert.True(t, sale.Total.Equal(d(230)), "Total = %v", sale.Total)
	assert.Equal(t, "Alice", sale.Seller)
	assert.False(t, sale.SellerIsGuest)
	assert.Equal(t, "evening batch", sale.Notes)
	assert.Equal(t, testDay, sale.Date)
	assert.NotEmpty(t, sale.ID)

	assert.Equal(t, 7, l.StockOnHand())
	assert.Len(t, l.Sales(), 1)
}

func TestSell_Rejections(t *testing.T) {
	l := newTestLedger()
	l.AddStock(10, d(50), d(80))

	tests := []struct {
		name     string
		quantity int
		discount decimal.Decimal
		wantErr  error
	}{
		{"zero quantity", 0, decimal.Zero, ErrInvalidQuantity},
		{"negative quantity", -1, decimal.Zero, ErrInvalidQuantity},
		{"negative discount", 3, d(-5), ErrInvalidAmount},
		{"beyond stock", 11, decimal.Zero, ErrInsufficientStock},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := l.Sell(tt.quantity, tt.discount, "")
			require.ErrorIs(t, err, tt.wantErr)
			assert.Empty(t, l.Sales(), "a rejected sale must not be recorded")
			assert.Equal(t, 10, l.StockOnHand())
		})
	}
}

func TestSell_NoSellerSelected(t *testing.T) {
	l := NewLedger("BDT")
	l.SetClock(fixedClock)
	l.AddStock(10, d(50), d(80))

	_, err := l.Sell(1, decimal.Zero, "")
	require.ErrorIs(t, err, ErrNoSellerSelected)
}

func TestSell_SnapshotsCostPrice(t *testing.T) {
	l := newTestLedger()
	l.AddStock(10, d(50), d(80))

	sale, err := l.Sell(2, decimal.Zero, "")
	require.NoError(t, err)
	assert.True(t, sale.CostPrice.Equal(d(50)))

	// A later, pricier lot moves the average but never rewrites past sales.
	l.AddStock(10, d(90), decimal.Zero)
	assert.True(t, l.Sales()[0].CostPrice.Equal(d(50)),
		"recorded CostPrice changed after restock: %v", l.Sales()[0].CostPrice)

	newSale, err := l.Sell(2, decimal.Zero, "")
	require.NoError(t, err)
	assert.True(t, newSale.CostPrice.Equal(d(70)), "new sale CostPrice = %v, want 70", newSale.CostPrice)
}

func TestQuickSell(t *testing.T) {
	l := newTestLedger()
	l.AddStock(10, d(50), d(80))

	sale, err := l.QuickSell(2)
	require.NoError(t, err)
	assert.Equal(t, "Quick sale", sale.Notes)
	assert.True(t, sale.Discount.IsZero())
	assert.True(t, sale.Total.Equal(d(160)), "Total = %v", sale.Total)
}

func TestAddStock_Rejections(t *testing.T) {
	l := newTestLedger()

	_, err := l.AddStock(0, d(50), decimal.Zero)
	require.ErrorIs(t, err, ErrInvalidQuantity)
	_, err = l.AddStock(5, decimal.Zero, decimal.Zero)
	require.ErrorIs(t, err, ErrInvalidAmount)
	assert.Empty(t, l.StockLots())
}

func TestAddExpense(t *testing.T) {
	l := newTestLedger()

	e, err := l.AddExpense(d(75), "  tea and snacks  ")
	require.NoError(t, err)
	assert.Equal(t, "tea and snacks", e.Description)
	assert.False(t, e.IsStockPurchase)

	e, err = l.AddExpense(d(20), "   ")
	require.NoError(t, err)
	assert.Equal(t, "Business expense", e.Description)

	_, err = l.AddExpense(d(-5), "refund")
	require.ErrorIs(t, err, ErrInvalidAmount)
	assert.Len(t, l.Expenses(), 2)
}

func TestWithdraw(t *testing.T) {
	l := newTestLedger()
	l.AddPartner("Walk-in", true)

	w, err := l.Withdraw(d(40), "Alice")
	require.NoError(t, err)
	assert.Equal(t, "Alice", w.Person)
	assert.True(t, w.Amount.Equal(d(40)))

	t.Run("guest forbidden", func(t *testing.T) {
		_, err := l.Withdraw(d(10), "Walk-in")
		require.ErrorIs(t, err, ErrGuestWithdrawalForbidden)
		assert.Len(t, l.Withdrawals(), 1)
	})
	t.Run("unknown partner", func(t *testing.T) {
		_, err := l.Withdraw(d(10), "Mallory")
		require.ErrorIs(t, err, ErrUnknownPartner)
	})
	t.Run("non-positive amount", func(t *testing.T) {
		_, err := l.Withdraw(decimal.Zero, "Alice")
		require.ErrorIs(t, err, ErrInvalidAmount)
	})
}

func TestAddPartner(t *testing.T) {
	l := NewLedger("BDT")

	p, err := l.AddPartner("  Alice  ", false)
	require.NoError(t, err)
	assert.Equal(t, "Alice", p.Name)

	// The first partner becomes the default seller and withdrawal target.
	seller, ok := l.SelectedSeller()
	require.True(t, ok)
	assert.Equal(t, "Alice", seller.Name)
	assert.Equal(t, "Alice", l.WithdrawTarget())

	_, err = l.AddPartner("Alice", true)
	require.ErrorIs(t, err, ErrDuplicatePartner)
	_, err = l.AddPartner("   ", false)
	require.ErrorIs(t, err, ErrEmptyPartnerName)
	assert.Len(t, l.Partners(), 1)
}

func TestRemovePartner(t *testing.T) {
	l := newTestLedger()
	require.NoError(t, l.SelectSeller("Bob"))

	require.NoError(t, l.RemovePartner("Bob"))
	assert.Len(t, l.Partners(), 1)

	// The removed partner was the selected seller; it re-points.
	seller, ok := l.SelectedSeller()
	require.True(t, ok)
	assert.Equal(t, "Alice", seller.Name)
}

func TestRemovePartner_OnlyNonGuest(t *testing.T) {
	l := NewLedger("BDT")
	l.SetClock(fixedClock)
	l.AddPartner("Alice", false)
	l.AddPartner("Walk-in", true)

	// The count>1 check is on total partners, not non-guests: removing the
	// only non-guest is allowed while a guest remains.
	require.NoError(t, l.RemovePartner("Alice"))
	assert.Len(t, l.Partners(), 1)
	assert.Empty(t, l.WithdrawTarget(), "no non-guest left to withdraw")

	seller, ok := l.SelectedSeller()
	require.True(t, ok)
	assert.Equal(t, "Walk-in", seller.Name)

	require.ErrorIs(t, l.RemovePartner("Walk-in"), ErrLastPartnerRemoval)
}

func TestRemovePartner_Rejections(t *testing.T) {
	t.Run("unknown partner", func(t *testing.T) {
		l := newTestLedger()
		require.ErrorIs(t, l.RemovePartner("Mallory"), ErrUnknownPartner)
	})
	t.Run("last partner", func(t *testing.T) {
		l := NewLedger("BDT")
		l.AddPartner("Alice", false)
		require.ErrorIs(t, l.RemovePartner("Alice"), ErrLastPartnerRemoval)
		assert.Len(t, l.Partners(), 1)
	})
	t.Run("last partner wins over unknown name", func(t *testing.T) {
		l := NewLedger("BDT")
		l.AddPartner("Alice", false)
		require.ErrorIs(t, l.RemovePartner("Mallory"), ErrLastPartnerRemoval)
	})
}

func TestRemovePartner_KeepsHistory(t *testing.T) {
	l := newTestLedger()
	l.AddStock(10, d(50), d(80))
	require.NoError(t, l.SelectSeller("Bob"))
	l.Sell(2, decimal.Zero, "")
	l.Withdraw(d(30), "Bob")

	require.NoError(t, l.RemovePartner("Bob"))

	require.Len(t, l.Sales(), 1)
	assert.Equal(t, "Bob", l.Sales()[0].Seller)
	require.Len(t, l.Withdrawals(), 1)
	assert.Equal(t, "Bob", l.Withdrawals()[0].Person)
}

func TestDeleteRecords(t *testing.T) {
	l := newTestLedger()
	lot, _ := l.AddStock(10, d(50), d(80))
	sale, _ := l.Sell(2, decimal.Zero, "")
	expense, _ := l.AddExpense(d(75), "tea")
	withdrawal, _ := l.Withdraw(d(40), "Alice")

	require.NoError(t, l.DeleteSale(sale.ID))
	assert.Empty(t, l.Sales())
	require.NoError(t, l.DeleteExpense(expense.ID))
	assert.Empty(t, l.Expenses())
	require.NoError(t, l.DeleteWithdrawal(withdrawal.ID))
	assert.Empty(t, l.Withdrawals())
	require.NoError(t, l.DeleteStockLot(lot.ID))
	assert.Empty(t, l.StockLots())

	require.ErrorIs(t, l.DeleteSale("nope"), ErrUnknownRecord)
	require.ErrorIs(t, l.DeleteExpense("nope"), ErrUnknownRecord)
	require.ErrorIs(t, l.DeleteWithdrawal("nope"), ErrUnknownRecord)
	require.ErrorIs(t, l.DeleteStockLot("nope"), ErrUnknownRecord)
}

func TestSetDefaultSellPrice(t *testing.T) {
	l := newTestLedger()
	require.NoError(t, l.SetDefaultSellPrice(d(120)))
	assert.True(t, l.DefaultSellPrice().Equal(BDT(120)))

	require.ErrorIs(t, l.SetDefaultSellPrice(decimal.Zero), ErrInvalidAmount)
	assert.True(t, l.DefaultSellPrice().Equal(BDT(120)), "rejected update must not apply")
}

func TestReset(t *testing.T) {
	l := newTestLedger()
	l.AddStock(10, d(50), d(80))
	l.Sell(2, decimal.Zero, "")
	l.AddExpense(d(75), "tea")
	l.Withdraw(d(40), "Alice")

	require.ErrorIs(t, l.Reset("123"), ErrInvalidResetCode)
	assert.Len(t, l.Sales(), 1, "wrong code must not wipe anything")

	require.NoError(t, l.Reset("999"))
	assert.Empty(t, l.StockLots())
	assert.Empty(t, l.Sales())
	assert.Empty(t, l.Expenses())
	assert.Empty(t, l.Withdrawals())
	assert.Empty(t, l.Partners())
	assert.Empty(t, l.BusinessName())
	assert.True(t, l.DefaultSellPrice().IsZero())
	assert.True(t, l.InitialCash().IsZero())
	_, ok := l.SelectedSeller()
	assert.False(t, ok)
}

func TestSubscribe_NotifiedOnSuccessOnly(t *testing.T) {
	l := newTestLedger()
	var calls int
	l.Subscribe(func() { calls++ })

	l.AddStock(10, d(50), d(80))
	l.Sell(2, decimal.Zero, "")
	assert.Equal(t, 2, calls)

	_, err := l.Sell(100, decimal.Zero, "")
	require.Error(t, err)
	assert.Equal(t, 2, calls, "a rejected mutation must not notify")
}
