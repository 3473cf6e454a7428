package shopbook

// StockOnHand returns the number of units currently in stock: everything
// ever added minus everything ever sold. Sales are rejected before they
// could drive this negative.
func (l *Ledger) StockOnHand() int {
	var added, sold int
	for _, lot := range l.lots {
		added += lot.Quantity
	}
	for _, sale := range l.sales {
		sold += sale.Quantity
	}
	return added - sold
}

// CashOnHand returns the cash position: initial cash, plus sale proceeds,
// minus business expenses, withdrawals and stock purchases. Stock purchase
// cost comes from the lot history only; expense records flagged as stock
// purchases are filtered out so the cost is never deducted twice.
func (l *Ledger) CashOnHand() Money {
	cash := l.initialCash
	for _, sale := range l.sales {
		cash = cash.Add(sale.Total)
	}
	for _, e := range l.expenses {
		if e.IsStockPurchase {
			continue
		}
		cash = cash.Sub(e.Amount)
	}
	for _, w := range l.withdrawals {
		cash = cash.Sub(w.Amount)
	}
	for _, lot := range l.lots {
		cash = cash.Sub(lot.Cost())
	}
	return l.money(cash)
}

// StockValue returns the worth of the inventory on hand, valued at average
// cost rather than sell price.
func (l *Ledger) StockValue() Money {
	return l.AverageCostPrice().Mul(Q(l.StockOnHand()))
}

// TotalAssets returns cash on hand plus the stock value.
func (l *Ledger) TotalAssets() Money {
	return l.CashOnHand().Add(l.StockValue())
}
