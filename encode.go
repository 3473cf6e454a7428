package shopbook

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// Snapshot is the full serialized state of a ledger: the five collections
// plus the scalar settings. It is the single document handed to the
// persistence collaborator after every mutation, and the shape read back at
// startup.
type Snapshot struct {
	StockLots        []StockLot         `json:"stockLots"`
	Sales            []SaleRecord       `json:"sales"`
	Expenses         []ExpenseRecord    `json:"expenses"`
	Withdrawals      []WithdrawalRecord `json:"withdrawals"`
	Partners         []Partner          `json:"partners"`
	BusinessName     string             `json:"businessName"`
	DefaultSellPrice decimal.Decimal    `json:"defaultSellPrice"`
	InitialCash      decimal.Decimal    `json:"initialCash"`
	Currency         string             `json:"currency,omitempty"`
}

// MarshalJSON keeps a canonical field order for a diff-friendly snapshot.
func (s Snapshot) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("stockLots", emptyNotNull(s.StockLots))
	w.Append("sales", emptyNotNull(s.Sales))
	w.Append("expenses", emptyNotNull(s.Expenses))
	w.Append("withdrawals", emptyNotNull(s.Withdrawals))
	w.Append("partners", emptyNotNull(s.Partners))
	w.Append("businessName", s.BusinessName)
	w.Append("defaultSellPrice", s.DefaultSellPrice)
	w.Append("initialCash", s.InitialCash)
	w.Optional("currency", s.Currency)
	return w.MarshalJSON()
}

// emptyNotNull renders a nil collection as [] instead of null.
func emptyNotNull[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}

// Snapshot captures the ledger's current state for persistence.
func (l *Ledger) Snapshot() Snapshot {
	return Snapshot{
		StockLots:        l.StockLots(),
		Sales:            l.Sales(),
		Expenses:         l.Expenses(),
		Withdrawals:      l.Withdrawals(),
		Partners:         l.Partners(),
		BusinessName:     l.businessName,
		DefaultSellPrice: l.defaultSellPrice,
		InitialCash:      l.initialCash,
		Currency:         l.currency,
	}
}

// RestoreLedger rebuilds a ledger from a snapshot: load what's there. The
// selected seller and withdrawal target default to the first partner and the
// first non-guest partner respectively.
func RestoreLedger(s Snapshot) *Ledger {
	l := NewLedger(s.Currency)
	l.lots = s.StockLots
	l.sales = s.Sales
	l.expenses = s.Expenses
	l.withdrawals = s.Withdrawals
	l.partners = s.Partners
	l.businessName = s.BusinessName
	l.defaultSellPrice = s.DefaultSellPrice
	l.initialCash = s.InitialCash
	l.repointDefaults()
	return l
}

// EncodeSnapshot writes the snapshot to w as a single JSON document.
func EncodeSnapshot(w io.Writer, s Snapshot) error {
	decimal.MarshalJSONWithoutQuotes = true
	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("could not marshal snapshot: %w", err)
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("could not write snapshot: %w", err)
	}
	return nil
}

// DecodeSnapshot reads a snapshot previously written by EncodeSnapshot.
func DecodeSnapshot(r io.Reader) (Snapshot, error) {
	var s Snapshot
	dec := json.NewDecoder(r)
	if err := dec.Decode(&s); err != nil {
		return Snapshot{}, fmt.Errorf("could not decode snapshot: %w", err)
	}
	return s, nil
}
