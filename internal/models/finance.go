package models

import "time"

// Currency codes supported by the ledger.
type Currency string

const (
	KZT Currency = "KZT"
	USD Currency = "USD"
	RUB Currency = "RUB"
	EUR Currency = "EUR"
)

// ValidCurrencies enumerates accepted currency codes.
var ValidCurrencies = map[Currency]struct{}{
	KZT: {},
	USD: {},
	RUB: {},
	EUR: {},
}

// Transaction types.
const (
	TransactionIncome  = "income"
	TransactionExpense = "expense"
)

// Transaction is a single ledger entry.
type Transaction struct {
	ID           int64     `json:"id"`
	CompanyID    int64     `json:"companyId"`
	Type         string    `json:"type"`
	Category     string    `json:"category,omitempty"`
	Amount       float64   `json:"amount"`
	Currency     Currency  `json:"currency"`
	Description  string    `json:"description,omitempty"`
	Date         time.Time `json:"date"`
	Counterparty string    `json:"counterparty,omitempty"`
	Account      string    `json:"account,omitempty"`
	CreatedBy    string    `json:"createdBy,omitempty"`
	CreatedByID  int64     `json:"createdById,omitempty"`
	Tags         []string  `json:"tags,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}

// Account types.
const (
	AccountBank = "bank"
	AccountCash = "cash"
	AccountCard = "card"
)

// Account is a money container with a running balance.
type Account struct {
	ID          int64    `json:"id"`
	CompanyID   int64    `json:"companyId"`
	Name        string   `json:"name"`
	Currency    Currency `json:"currency"`
	Balance     float64  `json:"balance"`
	Type        string   `json:"type"`
	Description string   `json:"description,omitempty"`
}
