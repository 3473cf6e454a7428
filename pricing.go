package shopbook

import "github.com/shopspring/decimal"

// Pricing is derived from the stock lot history on demand; nothing here is
// cached, so every answer reflects the current ledger.

// AverageCostPrice returns the quantity-weighted mean cost price across all
// stock lots, or zero when no stock was ever added.
func (l *Ledger) AverageCostPrice() Money {
	var totalCost decimal.Decimal
	var totalQty int
	for _, lot := range l.lots {
		totalCost = totalCost.Add(lot.Cost())
		totalQty += lot.Quantity
	}
	if totalQty == 0 {
		return l.money(decimal.Zero)
	}
	return l.money(totalCost).Div(Q(totalQty))
}

// AverageSellPrice returns the quantity-weighted mean sell price across the
// stock lots that carry one. When no lot has a sell price it falls back to
// the default sell-price setting.
func (l *Ledger) AverageSellPrice() Money {
	var totalSell decimal.Decimal
	var totalQty int
	for _, lot := range l.lots {
		if !lot.SellPrice.IsPositive() {
			continue
		}
		totalSell = totalSell.Add(lot.SellPrice.Mul(decimal.NewFromInt(int64(lot.Quantity))))
		totalQty += lot.Quantity
	}
	if totalQty == 0 {
		return l.DefaultSellPrice()
	}
	return l.money(totalSell).Div(Q(totalQty))
}

// EffectiveSellPrice resolves the price a unit sells for right now. The
// fallback chain is the pricing policy: weighted average sell price, then
// the default sell-price setting, then a 30% markup on average cost rounded
// to a whole unit, then zero.
func (l *Ledger) EffectiveSellPrice() Money {
	if avg := l.AverageSellPrice(); avg.IsPositive() {
		return avg
	}
	if def := l.DefaultSellPrice(); def.IsPositive() {
		return def
	}
	if cost := l.AverageCostPrice(); cost.IsPositive() {
		return cost.Mul(Q(1.3)).Round()
	}
	return l.money(decimal.Zero)
}

// ProfitPerUnit is the margin between the effective sell price and the
// average cost price. It may be negative; it is not clamped.
func (l *Ledger) ProfitPerUnit() Money {
	return l.EffectiveSellPrice().Sub(l.AverageCostPrice())
}
