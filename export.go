package shopbook

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
)

const exportDateFormat = "2006-01-02"
const exportTimeFormat = "15:04"

// ExportCSV writes the ledger as a flat table: one row per sale, then per
// business expense, then per withdrawal, each group in insertion order.
// Fields that do not apply to a row are left blank.
func ExportCSV(w io.Writer, l *Ledger) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"Date", "Time", "Type", "Quantity", "Price", "Cost", "Discount", "Total", "Person", "Notes"}); err != nil {
		return fmt.Errorf("could not write export header: %w", err)
	}

	for _, t := range l.sales {
		cw.Write([]string{
			t.Date.Format(exportDateFormat),
			t.Date.Format(exportTimeFormat),
			"Sale",
			strconv.Itoa(t.Quantity),
			t.PricePerUnit.String(),
			t.CostPrice.String(),
			t.Discount.String(),
			t.Total.String(),
			t.Seller,
			t.Notes,
		})
	}
	for _, e := range l.expenses {
		if e.IsStockPurchase {
			continue
		}
		cw.Write([]string{
			e.Date.Format(exportDateFormat),
			e.Date.Format(exportTimeFormat),
			"Expense",
			"", "", "", "",
			e.Amount.String(),
			"",
			e.Description,
		})
	}
	for _, wd := range l.withdrawals {
		cw.Write([]string{
			wd.Date.Format(exportDateFormat),
			wd.Date.Format(exportTimeFormat),
			"Withdrawal",
			"", "", "", "",
			wd.Amount.String(),
			wd.Person,
			"",
		})
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("could not write export: %w", err)
	}
	return nil
}
