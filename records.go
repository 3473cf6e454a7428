package shopbook

import (
	"time"

	"github.com/shopspring/decimal"
)

// Partner is a profit-sharing participant. Guests may record sales but are
// excluded from withdrawals and profit share. The name is the identity key.
type Partner struct {
	Name    string `json:"name"`
	IsGuest bool   `json:"isGuest,omitempty"`
}

// StockLot is one recorded batch of inventory purchased at a given cost and,
// optionally, an intended sell price. Immutable once created.
type StockLot struct {
	ID        string          `json:"id"`
	Date      time.Time       `json:"date"`
	Quantity  int             `json:"quantity"`
	CostPrice decimal.Decimal `json:"costPrice"`
	// SellPrice is optional; zero means absent.
	SellPrice     decimal.Decimal `json:"sellPrice,omitempty"`
	ProfitPerUnit decimal.Decimal `json:"profitPerUnit,omitempty"`
}

// Cost returns the total purchase cost of the lot (costPrice × quantity).
func (p StockLot) Cost() decimal.Decimal {
	return p.CostPrice.Mul(decimal.NewFromInt(int64(p.Quantity)))
}

// MarshalJSON keeps a canonical field order and omits the absent sell price.
func (p StockLot) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("id", p.ID)
	w.Append("date", p.Date)
	w.Append("quantity", p.Quantity)
	w.Append("costPrice", p.CostPrice)
	if !p.SellPrice.IsZero() {
		w.Append("sellPrice", p.SellPrice)
		w.Append("profitPerUnit", p.ProfitPerUnit)
	}
	return w.MarshalJSON()
}

// SaleRecord is one sale. CostPrice and SellerIsGuest are snapshots taken at
// sale time; later changes to stock lots or partners never rewrite them.
type SaleRecord struct {
	ID            string          `json:"id"`
	Date          time.Time       `json:"date"`
	Quantity      int             `json:"quantity"`
	PricePerUnit  decimal.Decimal `json:"pricePerUnit"`
	CostPrice     decimal.Decimal `json:"costPrice"`
	Discount      decimal.Decimal `json:"discount"`
	Total         decimal.Decimal `json:"total"`
	Seller        string          `json:"seller"`
	SellerIsGuest bool            `json:"sellerIsGuest,omitempty"`
	Notes         string          `json:"notes,omitempty"`
}

// CostOfGoods returns the snapshotted cost of the units sold.
func (t SaleRecord) CostOfGoods() decimal.Decimal {
	return t.CostPrice.Mul(decimal.NewFromInt(int64(t.Quantity)))
}

func (t SaleRecord) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("id", t.ID)
	w.Append("date", t.Date)
	w.Append("quantity", t.Quantity)
	w.Append("pricePerUnit", t.PricePerUnit)
	w.Append("costPrice", t.CostPrice)
	w.Append("discount", t.Discount)
	w.Append("total", t.Total)
	w.Append("seller", t.Seller)
	w.Optional("sellerIsGuest", t.SellerIsGuest)
	w.Optional("notes", t.Notes)
	return w.MarshalJSON()
}

// ExpenseRecord is a business expense. Records flagged as stock purchases are
// excluded from every expense aggregate: stock purchase cost is always
// sourced from the lot history, never from here.
type ExpenseRecord struct {
	ID              string          `json:"id"`
	Date            time.Time       `json:"date"`
	Amount          decimal.Decimal `json:"amount"`
	Description     string          `json:"description"`
	IsStockPurchase bool            `json:"isStockPurchase,omitempty"`
}

func (e ExpenseRecord) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("id", e.ID)
	w.Append("date", e.Date)
	w.Append("amount", e.Amount)
	w.Append("description", e.Description)
	w.Optional("isStockPurchase", e.IsStockPurchase)
	return w.MarshalJSON()
}

// WithdrawalRecord is cash taken out by a non-guest partner.
type WithdrawalRecord struct {
	ID     string          `json:"id"`
	Date   time.Time       `json:"date"`
	Amount decimal.Decimal `json:"amount"`
	Person string          `json:"person"`
}

func (r WithdrawalRecord) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("id", r.ID)
	w.Append("date", r.Date)
	w.Append("amount", r.Amount)
	w.Append("person", r.Person)
	return w.MarshalJSON()
}
