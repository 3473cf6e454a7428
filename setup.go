package shopbook

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// defaultBusinessName is used when setup leaves the shop name blank.
const defaultBusinessName = "My Shop"

// Setup collects the first-run answers: shop identity, opening cash, pricing
// default, an optional first stock lot and the initial partner list.
type Setup struct {
	BusinessName     string
	InitialCash      decimal.Decimal
	DefaultSellPrice decimal.Decimal
	Partners         []Partner

	// Optional first stock lot; it is only created when both the quantity
	// and the cost price are positive.
	InitialStock     int
	InitialCostPrice decimal.Decimal
	InitialSellPrice decimal.Decimal
}

// Build produces the initial ledger. At least one non-guest partner is
// required so profit-sharing math is defined from day one.
func (s Setup) Build(currency string, clock Clock) (*Ledger, error) {
	var nonGuests int
	for _, p := range s.Partners {
		if !p.IsGuest {
			nonGuests++
		}
	}
	if nonGuests == 0 {
		return nil, fmt.Errorf("setup: %w", ErrNoPartner)
	}

	l := NewLedger(currency)
	l.SetClock(clock)

	for _, p := range s.Partners {
		if _, err := l.AddPartner(p.Name, p.IsGuest); err != nil {
			return nil, fmt.Errorf("setup: %w", err)
		}
	}

	l.businessName = strings.TrimSpace(s.BusinessName)
	if l.businessName == "" {
		l.businessName = defaultBusinessName
	}
	if s.InitialCash.IsPositive() {
		l.initialCash = s.InitialCash
	}
	if s.DefaultSellPrice.IsPositive() {
		l.defaultSellPrice = s.DefaultSellPrice
	}

	if s.InitialStock > 0 && s.InitialCostPrice.IsPositive() {
		if _, err := l.AddStock(s.InitialStock, s.InitialCostPrice, s.InitialSellPrice); err != nil {
			return nil, fmt.Errorf("setup: %w", err)
		}
	}

	return l, nil
}
