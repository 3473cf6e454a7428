package shopbook

import (
	"bytes"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
)

func TestEncodeSnapshot_EmptyLedger(t *testing.T) {
	l := NewLedger("BDT")

	var buf bytes.Buffer
	if err := EncodeSnapshot(&buf, l.Snapshot()); err != nil {
		t.Fatalf("EncodeSnapshot() error = %v", err)
	}

	want := `{"stockLots":[],"sales":[],"expenses":[],"withdrawals":[],"partners":[],"businessName":"","defaultSellPrice":0,"initialCash":0,"currency":"BDT"}` + "\n"
	if got := buf.String(); got != want {
		t.Errorf("EncodeSnapshot() = %s, want %s", got, want)
	}
}

func TestSnapshot_RoundTrip(t *testing.T) {
	s := Setup{
		BusinessName:     "Corner Shop",
		InitialCash:      d(1000),
		DefaultSellPrice: d(80),
		Partners:         []Partner{{Name: "Alice"}, {Name: "Bob"}, {Name: "Walk-in", IsGuest: true}},
	}
	l, err := s.Build("BDT", fixedClock)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	l.AddStock(10, d(50), d(80))
	l.Sell(3, d(10), "evening batch")
	l.AddExpense(d(75), "tea")
	l.Withdraw(d(40), "Alice")

	var buf bytes.Buffer
	if err := EncodeSnapshot(&buf, l.Snapshot()); err != nil {
		t.Fatalf("EncodeSnapshot() error = %v", err)
	}
	snap, err := DecodeSnapshot(&buf)
	if err != nil {
		t.Fatalf("DecodeSnapshot() error = %v", err)
	}
	restored := RestoreLedger(snap)
	restored.SetClock(fixedClock)

	if got, want := restored.BusinessName(), "Corner Shop"; got != want {
		t.Errorf("BusinessName() = %q, want %q", got, want)
	}
	if got, want := restored.Currency(), "BDT"; got != want {
		t.Errorf("Currency() = %q, want %q", got, want)
	}
	if got, want := restored.StockOnHand(), l.StockOnHand(); got != want {
		t.Errorf("StockOnHand() = %d, want %d", got, want)
	}
	if got, want := restored.CashOnHand(), l.CashOnHand(); !got.Equal(want) {
		t.Errorf("CashOnHand() = %v, want %v", got, want)
	}
	if got, want := restored.EffectiveSellPrice(), l.EffectiveSellPrice(); !got.Equal(want) {
		t.Errorf("EffectiveSellPrice() = %v, want %v", got, want)
	}
	if got, want := len(restored.Partners()), 3; got != want {
		t.Errorf("len(Partners()) = %d, want %d", got, want)
	}

	// Defaults re-point on load: first partner sells, first non-guest withdraws.
	seller, ok := restored.SelectedSeller()
	if !ok || seller.Name != "Alice" {
		t.Errorf("SelectedSeller() = %v, %v, want Alice, true", seller, ok)
	}
	if got, want := restored.WithdrawTarget(), "Alice"; got != want {
		t.Errorf("WithdrawTarget() = %q, want %q", got, want)
	}

	// Reports agree before and after the round trip.
	if got, want := restored.TodayReport().NetProfit, l.TodayReport().NetProfit; !got.Equal(want) {
		t.Errorf("NetProfit after round trip = %v, want %v", got, want)
	}
}

func TestSnapshot_SaleFieldOrder(t *testing.T) {
	l := newTestLedger()
	l.AddStock(10, d(50), d(80))
	l.Sell(3, decimal.Zero, "")

	var buf bytes.Buffer
	if err := EncodeSnapshot(&buf, l.Snapshot()); err != nil {
		t.Fatalf("EncodeSnapshot() error = %v", err)
	}
	got := buf.String()

	// Fields are emitted in a canonical order so that consecutive snapshots
	// diff cleanly.
	fields := []string{`"sales":[`, `"quantity":3`, `"pricePerUnit":80`, `"costPrice":50`, `"discount":0`, `"total":240`, `"seller":"Alice"`}
	pos := 0
	for _, f := range fields {
		i := strings.Index(got[pos:], f)
		if i < 0 {
			t.Fatalf("snapshot is missing %s after position %d:\n%s", f, pos, got)
		}
		pos += i + len(f)
	}

	// A sale without notes by a non-guest omits the optional fields.
	if strings.Contains(got, `"notes"`) || strings.Contains(got, `"sellerIsGuest"`) {
		t.Errorf("optional fields must be omitted when zero:\n%s", got)
	}
}
