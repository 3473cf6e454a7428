package shopbook

import (
	"fmt"
	"slices"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ResetCode is the fixed confirmation literal required to wipe the ledger.
const ResetCode = "999"

// quickSaleNote tags sales recorded through the one-tap flow.
const quickSaleNote = "Quick sale"

// defaultExpenseDescription is used when an expense is recorded without one.
const defaultExpenseDescription = "Business expense"

// Mutators validate first and append (or remove) second: on rejection the
// ledger is left exactly as it was, and the error names the reason.

// AddStock appends a stock lot. A positive sell price also becomes the new
// default sell-price setting.
func (l *Ledger) AddStock(quantity int, costPrice, sellPrice decimal.Decimal) (StockLot, error) {
	if quantity <= 0 {
		return StockLot{}, fmt.Errorf("add stock: %w", ErrInvalidQuantity)
	}
	if !costPrice.IsPositive() {
		return StockLot{}, fmt.Errorf("add stock cost price: %w", ErrInvalidAmount)
	}
	lot := StockLot{
		ID:        uuid.NewString(),
		Date:      l.now(),
		Quantity:  quantity,
		CostPrice: costPrice,
	}
	if sellPrice.IsPositive() {
		lot.SellPrice = sellPrice
		lot.ProfitPerUnit = sellPrice.Sub(costPrice)
		l.defaultSellPrice = sellPrice
	}
	l.lots = append(l.lots, lot)
	l.notify()
	return lot, nil
}

// Sell records a sale of quantity units by the selected seller at the
// current effective sell price, minus an optional discount. The sale's cost
// price and the seller's guest flag are snapshotted into the record.
func (l *Ledger) Sell(quantity int, discount decimal.Decimal, notes string) (SaleRecord, error) {
	if quantity <= 0 {
		return SaleRecord{}, fmt.Errorf("sell: %w", ErrInvalidQuantity)
	}
	if discount.IsNegative() {
		return SaleRecord{}, fmt.Errorf("sell discount: %w", ErrInvalidAmount)
	}
	if stock := l.StockOnHand(); stock < quantity {
		return SaleRecord{}, fmt.Errorf("sell %d units, only %d in stock: %w", quantity, stock, ErrInsufficientStock)
	}
	seller, ok := l.SelectedSeller()
	if !ok {
		return SaleRecord{}, fmt.Errorf("sell: %w", ErrNoSellerSelected)
	}

	unitPrice := l.EffectiveSellPrice().Amount()
	qty := decimal.NewFromInt(int64(quantity))
	sale := SaleRecord{
		ID:            uuid.NewString(),
		Date:          l.now(),
		Quantity:      quantity,
		PricePerUnit:  unitPrice,
		CostPrice:     l.AverageCostPrice().Amount(),
		Discount:      discount,
		Total:         unitPrice.Mul(qty).Sub(discount),
		Seller:        seller.Name,
		SellerIsGuest: seller.IsGuest,
		Notes:         notes,
	}
	l.sales = append(l.sales, sale)
	l.notify()
	return sale, nil
}

// QuickSell records a sale with no discount and a fixed note.
func (l *Ledger) QuickSell(quantity int) (SaleRecord, error) {
	return l.Sell(quantity, decimal.Zero, quickSaleNote)
}

// AddExpense records a business expense. An empty description gets a fixed
// placeholder. The stock-purchase flag is never set here: stock purchases go
// through AddStock.
func (l *Ledger) AddExpense(amount decimal.Decimal, description string) (ExpenseRecord, error) {
	if !amount.IsPositive() {
		return ExpenseRecord{}, fmt.Errorf("add expense: %w", ErrInvalidAmount)
	}
	description = strings.TrimSpace(description)
	if description == "" {
		description = defaultExpenseDescription
	}
	e := ExpenseRecord{
		ID:          uuid.NewString(),
		Date:        l.now(),
		Amount:      amount,
		Description: description,
	}
	l.expenses = append(l.expenses, e)
	l.notify()
	return e, nil
}

// Withdraw records a cash withdrawal by a non-guest partner.
func (l *Ledger) Withdraw(amount decimal.Decimal, person string) (WithdrawalRecord, error) {
	if !amount.IsPositive() {
		return WithdrawalRecord{}, fmt.Errorf("withdraw: %w", ErrInvalidAmount)
	}
	p := l.Partner(person)
	if p == nil {
		return WithdrawalRecord{}, fmt.Errorf("withdraw by %q: %w", person, ErrUnknownPartner)
	}
	if p.IsGuest {
		return WithdrawalRecord{}, fmt.Errorf("withdraw by %q: %w", person, ErrGuestWithdrawalForbidden)
	}
	w := WithdrawalRecord{
		ID:     uuid.NewString(),
		Date:   l.now(),
		Amount: amount,
		Person: person,
	}
	l.withdrawals = append(l.withdrawals, w)
	l.notify()
	return w, nil
}

// AddPartner appends a partner. The trimmed name is the identity key and
// must be unique.
func (l *Ledger) AddPartner(name string, guest bool) (Partner, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Partner{}, fmt.Errorf("add partner: %w", ErrEmptyPartnerName)
	}
	if l.Partner(name) != nil {
		return Partner{}, fmt.Errorf("add partner %q: %w", name, ErrDuplicatePartner)
	}
	p := Partner{Name: name, IsGuest: guest}
	l.partners = append(l.partners, p)
	l.repointDefaults()
	l.notify()
	return p, nil
}

// RemovePartner deletes a partner. The last remaining partner cannot be
// removed, guest or not. Historical sales and withdrawals referencing the
// name are kept; if the removed partner was a default seller or withdrawal
// target, the defaults are re-pointed.
func (l *Ledger) RemovePartner(name string) error {
	if len(l.partners) <= 1 {
		return fmt.Errorf("remove partner %q: %w", name, ErrLastPartnerRemoval)
	}
	i := slices.IndexFunc(l.partners, func(p Partner) bool { return p.Name == name })
	if i < 0 {
		return fmt.Errorf("remove partner %q: %w", name, ErrUnknownPartner)
	}
	l.partners = slices.Delete(l.partners, i, i+1)
	l.repointDefaults()
	l.notify()
	return nil
}

// DeleteSale removes a sale record by id.
func (l *Ledger) DeleteSale(id string) error {
	i := slices.IndexFunc(l.sales, func(t SaleRecord) bool { return t.ID == id })
	if i < 0 {
		return fmt.Errorf("delete sale %q: %w", id, ErrUnknownRecord)
	}
	l.sales = slices.Delete(l.sales, i, i+1)
	l.notify()
	return nil
}

// DeleteExpense removes an expense record by id.
func (l *Ledger) DeleteExpense(id string) error {
	i := slices.IndexFunc(l.expenses, func(e ExpenseRecord) bool { return e.ID == id })
	if i < 0 {
		return fmt.Errorf("delete expense %q: %w", id, ErrUnknownRecord)
	}
	l.expenses = slices.Delete(l.expenses, i, i+1)
	l.notify()
	return nil
}

// DeleteWithdrawal removes a withdrawal record by id.
func (l *Ledger) DeleteWithdrawal(id string) error {
	i := slices.IndexFunc(l.withdrawals, func(w WithdrawalRecord) bool { return w.ID == id })
	if i < 0 {
		return fmt.Errorf("delete withdrawal %q: %w", id, ErrUnknownRecord)
	}
	l.withdrawals = slices.Delete(l.withdrawals, i, i+1)
	l.notify()
	return nil
}

// DeleteStockLot removes a stock lot by id. Not exposed by the usual flows
// but logically supported.
func (l *Ledger) DeleteStockLot(id string) error {
	i := slices.IndexFunc(l.lots, func(p StockLot) bool { return p.ID == id })
	if i < 0 {
		return fmt.Errorf("delete stock lot %q: %w", id, ErrUnknownRecord)
	}
	l.lots = slices.Delete(l.lots, i, i+1)
	l.notify()
	return nil
}

// SetDefaultSellPrice updates the default sell-price setting.
func (l *Ledger) SetDefaultSellPrice(price decimal.Decimal) error {
	if !price.IsPositive() {
		return fmt.Errorf("set sell price: %w", ErrInvalidAmount)
	}
	l.defaultSellPrice = price
	l.notify()
	return nil
}

// Reset clears all collections and settings, returning the shop to its
// first-run state. It requires the fixed confirmation code.
func (l *Ledger) Reset(code string) error {
	if code != ResetCode {
		return ErrInvalidResetCode
	}
	l.lots = nil
	l.sales = nil
	l.expenses = nil
	l.withdrawals = nil
	l.partners = nil
	l.businessName = ""
	l.defaultSellPrice = decimal.Zero
	l.initialCash = decimal.Zero
	l.selectedSeller = ""
	l.withdrawTarget = ""
	l.notify()
	return nil
}
