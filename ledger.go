package shopbook

import (
	"slices"
	"time"

	"github.com/shopspring/decimal"
)

// DefaultCurrency is used when a ledger is created without an explicit
// currency code.
const DefaultCurrency = "BDT"

// Ledger is the sole owner of the shop's records: stock lots, sales,
// business expenses, partner withdrawals and the partner list, plus the
// scalar settings (business name, default sell price, initial cash).
//
// All reads are over the in-memory state; persistence is an external
// collaborator notified after every successful mutation. A Ledger is a
// single-actor structure: one mutation completes fully before the next
// begins, which is what keeps stock from ever going negative.
type Ledger struct {
	lots        []StockLot
	sales       []SaleRecord
	expenses    []ExpenseRecord
	withdrawals []WithdrawalRecord
	partners    []Partner

	businessName     string
	defaultSellPrice decimal.Decimal
	initialCash      decimal.Decimal
	currency         string

	selectedSeller string // seller new sales are attributed to
	withdrawTarget string // default target for the next withdrawal

	now         Clock
	subscribers []func()
}

// NewLedger creates an empty ledger in the given currency.
func NewLedger(currency string) *Ledger {
	if currency == "" {
		currency = DefaultCurrency
	}
	return &Ledger{currency: currency, now: time.Now}
}

// SetClock replaces the wall clock used to stamp new records and resolve
// report windows.
func (l *Ledger) SetClock(clock Clock) {
	if clock != nil {
		l.now = clock
	}
}

// Subscribe registers a callback invoked after every successful mutation.
// The persistence collaborator uses it to write a fresh snapshot.
func (l *Ledger) Subscribe(fn func()) {
	if fn != nil {
		l.subscribers = append(l.subscribers, fn)
	}
}

func (l *Ledger) notify() {
	for _, fn := range l.subscribers {
		fn()
	}
}

// money wraps a raw decimal into Money in the ledger's currency.
func (l *Ledger) money(v decimal.Decimal) Money { return M(v, l.currency) }

// Currency returns the ledger's currency code.
func (l *Ledger) Currency() string { return l.currency }

// BusinessName returns the configured shop name.
func (l *Ledger) BusinessName() string { return l.businessName }

// DefaultSellPrice returns the stored default sell-price setting.
func (l *Ledger) DefaultSellPrice() Money { return l.money(l.defaultSellPrice) }

// InitialCash returns the cash the shop started with.
func (l *Ledger) InitialCash() Money { return l.money(l.initialCash) }

// StockLots returns the stock purchase history in insertion order.
func (l *Ledger) StockLots() []StockLot { return slices.Clone(l.lots) }

// Sales returns all sale records in insertion order.
func (l *Ledger) Sales() []SaleRecord { return slices.Clone(l.sales) }

// Expenses returns all expense records in insertion order, including any
// flagged as stock purchases.
func (l *Ledger) Expenses() []ExpenseRecord { return slices.Clone(l.expenses) }

// BusinessExpenses returns expense records that count as business expenses,
// excluding those flagged as stock purchases.
func (l *Ledger) BusinessExpenses() []ExpenseRecord {
	out := make([]ExpenseRecord, 0, len(l.expenses))
	for _, e := range l.expenses {
		if !e.IsStockPurchase {
			out = append(out, e)
		}
	}
	return out
}

// Withdrawals returns all withdrawal records in insertion order.
func (l *Ledger) Withdrawals() []WithdrawalRecord { return slices.Clone(l.withdrawals) }

// Partners returns the partner list in insertion order.
func (l *Ledger) Partners() []Partner { return slices.Clone(l.partners) }

// NonGuestPartners returns the partners that share profit and may withdraw.
func (l *Ledger) NonGuestPartners() []Partner {
	out := make([]Partner, 0, len(l.partners))
	for _, p := range l.partners {
		if !p.IsGuest {
			out = append(out, p)
		}
	}
	return out
}

// Partner returns the partner with this name, or nil if unknown.
func (l *Ledger) Partner(name string) *Partner {
	for i := range l.partners {
		if l.partners[i].Name == name {
			return &l.partners[i]
		}
	}
	return nil
}

// SelectedSeller returns the partner new sales are attributed to.
func (l *Ledger) SelectedSeller() (Partner, bool) {
	if p := l.Partner(l.selectedSeller); p != nil {
		return *p, true
	}
	return Partner{}, false
}

// SelectSeller makes name the seller for subsequent sales.
func (l *Ledger) SelectSeller(name string) error {
	if l.Partner(name) == nil {
		return ErrUnknownPartner
	}
	l.selectedSeller = name
	return nil
}

// WithdrawTarget returns the default partner name for the next withdrawal.
func (l *Ledger) WithdrawTarget() string { return l.withdrawTarget }

// repointDefaults re-targets the selected seller and the withdrawal target
// after the partner list changed: first partner for sales, first non-guest
// for withdrawals.
func (l *Ledger) repointDefaults() {
	if l.Partner(l.selectedSeller) == nil {
		l.selectedSeller = ""
		if len(l.partners) > 0 {
			l.selectedSeller = l.partners[0].Name
		}
	}
	if p := l.Partner(l.withdrawTarget); p == nil || p.IsGuest {
		l.withdrawTarget = ""
		for _, p := range l.partners {
			if !p.IsGuest {
				l.withdrawTarget = p.Name
				break
			}
		}
	}
}
