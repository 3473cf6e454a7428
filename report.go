package shopbook

import (
	"time"

	"github.com/shopspring/decimal"
)

// Report is the result of filtering the ledger to a time window and
// computing the period's financial figures. It is a pure function of the
// ledger state and the window: building it twice yields identical values.
//
// It carries every field needed for both presentations of the period: the
// net-profit view (sales minus cost of goods sold minus expenses, shared
// between partners, minus each partner's own withdrawals) and the overall
// view (sales minus expenses and withdrawals, with each partner's own
// withdrawal added back to show the equal share before personal draw).
type Report struct {
	Range Range

	TotalSales        Money
	UnitsSold         int
	CostOfGoodsSold   Money
	StockPurchaseCost Money
	GrossProfit       Money
	ProfitPerUnit     Money
	TotalExpenses     Money
	TotalWithdrawals  Money

	NetProfit       Money // gross profit minus expenses, before withdrawals
	NumPartners     int   // non-guest partners, never below 1
	PerPartnerShare Money

	WithdrawalsByPerson map[string]Money // per non-guest partner
	NetProfitByPartner  map[string]Money // per non-guest partner
	SalesBySeller       map[string]Money // per current partner, guests included

	// Overall view: no cost-of-goods deduction.
	Remaining         Money
	PerPartnerOverall Money
	OverallByPartner  map[string]Money // per non-guest partner

	Sales []SaleRecord // the filtered sales, for history display
}

// NewReport filters the ledger to the window and computes the period report.
// An empty window yields all-zero figures, never NaN.
func NewReport(l *Ledger, r Range) *Report {
	rep := &Report{Range: r}

	var sales, units decimal.Decimal
	var cogs decimal.Decimal
	for _, t := range l.sales {
		if !r.Contains(t.Date) {
			continue
		}
		rep.Sales = append(rep.Sales, t)
		sales = sales.Add(t.Total)
		units = units.Add(decimal.NewFromInt(int64(t.Quantity)))
		cogs = cogs.Add(t.CostOfGoods())
		rep.UnitsSold += t.Quantity
	}
	rep.TotalSales = l.money(sales)
	rep.CostOfGoodsSold = l.money(cogs)

	var purchases decimal.Decimal
	for _, lot := range l.lots {
		if r.Contains(lot.Date) {
			purchases = purchases.Add(lot.Cost())
		}
	}
	// Informational: cost of sold units is already in CostOfGoodsSold, so
	// period purchases are not deducted from profit a second time.
	rep.StockPurchaseCost = l.money(purchases)

	rep.GrossProfit = rep.TotalSales.Sub(rep.CostOfGoodsSold)
	if rep.UnitsSold > 0 {
		rep.ProfitPerUnit = rep.GrossProfit.Div(Q(rep.UnitsSold))
	} else {
		rep.ProfitPerUnit = l.money(decimal.Zero)
	}

	var expenses decimal.Decimal
	for _, e := range l.expenses {
		if e.IsStockPurchase || !r.Contains(e.Date) {
			continue
		}
		expenses = expenses.Add(e.Amount)
	}
	rep.TotalExpenses = l.money(expenses)
	rep.NetProfit = rep.GrossProfit.Sub(rep.TotalExpenses)

	nonGuests := l.NonGuestPartners()
	rep.NumPartners = len(nonGuests)
	if rep.NumPartners == 0 {
		rep.NumPartners = 1
	}
	rep.PerPartnerShare = rep.NetProfit.Div(Q(rep.NumPartners))

	// Withdrawals attributed to non-guest partners; amounts recorded against
	// names that are no longer partners still count in the total.
	rep.WithdrawalsByPerson = make(map[string]Money, len(nonGuests))
	for _, p := range nonGuests {
		rep.WithdrawalsByPerson[p.Name] = l.money(decimal.Zero)
	}
	var withdrawals decimal.Decimal
	for _, w := range l.withdrawals {
		if !r.Contains(w.Date) {
			continue
		}
		withdrawals = withdrawals.Add(w.Amount)
		if share, ok := rep.WithdrawalsByPerson[w.Person]; ok {
			rep.WithdrawalsByPerson[w.Person] = share.Add(l.money(w.Amount))
		}
	}
	rep.TotalWithdrawals = l.money(withdrawals)

	rep.NetProfitByPartner = make(map[string]Money, len(nonGuests))
	for _, p := range nonGuests {
		rep.NetProfitByPartner[p.Name] = rep.PerPartnerShare.Sub(rep.WithdrawalsByPerson[p.Name])
	}

	// Every current partner appears, guests included, defaulting to zero.
	rep.SalesBySeller = make(map[string]Money, len(l.partners))
	for _, p := range l.partners {
		rep.SalesBySeller[p.Name] = l.money(decimal.Zero)
	}
	for _, t := range rep.Sales {
		if total, ok := rep.SalesBySeller[t.Seller]; ok {
			rep.SalesBySeller[t.Seller] = total.Add(l.money(t.Total))
		}
	}

	// Overall view. Each partner's displayed share adds back their own
	// withdrawal: it shows the theoretical equal split before personal draw.
	rep.Remaining = rep.TotalSales.Sub(rep.TotalExpenses).Sub(rep.TotalWithdrawals)
	rep.PerPartnerOverall = rep.Remaining.Div(Q(rep.NumPartners))
	rep.OverallByPartner = make(map[string]Money, len(nonGuests))
	for _, p := range nonGuests {
		rep.OverallByPartner[p.Name] = rep.PerPartnerOverall.Add(rep.WithdrawalsByPerson[p.Name])
	}

	return rep
}

// TodayReport builds the report for the current calendar day.
func (l *Ledger) TodayReport() *Report { return NewReport(l, DayRange(l.now())) }

// ThisMonthReport builds the report for the current calendar month.
func (l *Ledger) ThisMonthReport() *Report { return NewReport(l, ThisMonthRange(l.now())) }

// MonthReport builds the report for an arbitrary calendar month in the
// clock's location.
func (l *Ledger) MonthReport(year int, month time.Month) *Report {
	return NewReport(l, MonthRange(year, month, l.now().Location()))
}
