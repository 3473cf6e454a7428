package shopbook

import (
	"time"

	"github.com/shopspring/decimal"
)

// testDay is the reference instant used across tests.
var testDay = time.Date(2025, 3, 15, 10, 30, 0, 0, time.UTC)

func fixedClock() time.Time { return testDay }

// BDT is a helper for test to create taka money from const
func BDT(v float64) Money { return M(v, "BDT") }

func d(v float64) decimal.Decimal { return decimal.NewFromFloat(v) }

// newTestLedger returns a ledger on a fixed clock with two non-guest
// partners, Alice selected as seller.
func newTestLedger() *Ledger {
	l := NewLedger("BDT")
	l.SetClock(fixedClock)
	l.AddPartner("Alice", false)
	l.AddPartner("Bob", false)
	return l
}
