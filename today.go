package shopbook

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

// TodayData is the home-screen dashboard: the current day's totals.
type TodayData struct {
	TotalSales       Money
	TotalExpenses    Money
	TotalWithdrawals Money
	UnitsSold        int
	Sales            []SaleRecord
}

// Today aggregates the current calendar day's activity.
func (l *Ledger) Today() TodayData {
	r := DayRange(l.now())
	d := TodayData{}
	var sales, expenses, withdrawals decimal.Decimal
	for _, t := range l.sales {
		if !r.Contains(t.Date) {
			continue
		}
		d.Sales = append(d.Sales, t)
		sales = sales.Add(t.Total)
		d.UnitsSold += t.Quantity
	}
	for _, e := range l.expenses {
		if !e.IsStockPurchase && r.Contains(e.Date) {
			expenses = expenses.Add(e.Amount)
		}
	}
	for _, w := range l.withdrawals {
		if r.Contains(w.Date) {
			withdrawals = withdrawals.Add(w.Amount)
		}
	}
	d.TotalSales = l.money(sales)
	d.TotalExpenses = l.money(expenses)
	d.TotalWithdrawals = l.money(withdrawals)
	return d
}

// ActivityKind discriminates the entries of the activity feed.
type ActivityKind string

const (
	ActivitySale       ActivityKind = "sale"
	ActivityExpense    ActivityKind = "expense"
	ActivityWithdrawal ActivityKind = "withdrawal"
)

// Activity is one entry of the recent-activity feed, a flattened view over
// the three record kinds.
type Activity struct {
	Kind    ActivityKind
	ID      string
	Date    time.Time
	Amount  Money
	Person  string // seller or withdrawer, empty for expenses
	Label   string // notes or description
	IsGuest bool
}

// RecentActivity returns today's sales, business expenses and withdrawals
// merged into one feed, newest first.
func (l *Ledger) RecentActivity() []Activity {
	r := DayRange(l.now())
	var feed []Activity
	for _, t := range l.sales {
		if r.Contains(t.Date) {
			feed = append(feed, Activity{
				Kind: ActivitySale, ID: t.ID, Date: t.Date,
				Amount: l.money(t.Total), Person: t.Seller, Label: t.Notes, IsGuest: t.SellerIsGuest,
			})
		}
	}
	for _, e := range l.expenses {
		if !e.IsStockPurchase && r.Contains(e.Date) {
			feed = append(feed, Activity{
				Kind: ActivityExpense, ID: e.ID, Date: e.Date,
				Amount: l.money(e.Amount), Label: e.Description,
			})
		}
	}
	for _, w := range l.withdrawals {
		if r.Contains(w.Date) {
			feed = append(feed, Activity{
				Kind: ActivityWithdrawal, ID: w.ID, Date: w.Date,
				Amount: l.money(w.Amount), Person: w.Person,
			})
		}
	}
	sort.SliceStable(feed, func(i, j int) bool { return feed[i].Date.After(feed[j].Date) })
	return feed
}
