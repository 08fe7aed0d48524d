package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type TransactionCategory string

const (
	CategorySalary         TransactionCategory = "salary"
	CategoryDividends      TransactionCategory = "dividends"
	CategoryLoanProceeds   TransactionCategory = "loan_proceeds"
	CategoryRent           TransactionCategory = "rent"
	CategoryFuel           TransactionCategory = "fuel"
	CategorySubscriptions  TransactionCategory = "subscriptions"
	CategoryGeneralExpense TransactionCategory = "general_expense"
)

// FlagTypeLargeTransaction marks a transaction whose absolute amount
// exceeds the large-transaction threshold, independent of its category.
const FlagTypeLargeTransaction = "large_unusual_transaction"

// Transaction is a single line item extracted from a bank statement.
// A positive amount is a credit/inflow, a negative amount a debit/outflow.
type Transaction struct {
	Description  string           `json:"description"`
	Amount       decimal.Decimal  `json:"amount"`
	Date         time.Time        `json:"date"`
	BalanceAfter *decimal.Decimal `json:"balance_after,omitempty"`
	Channel      string           `json:"channel,omitempty"`
	Currency     string           `json:"currency,omitempty"`
}

// ClassifiedTransaction is a transaction with its assigned category.
type ClassifiedTransaction struct {
	Transaction
	Category TransactionCategory `json:"category"`
}

// TransactionFlag is a non-exclusive anomaly marker. A flagged transaction
// keeps its place in the income or expenses bucket.
type TransactionFlag struct {
	Type        string      `json:"type"`
	Transaction Transaction `json:"transaction"`
}

// ClassificationResult groups classified transactions. Every input
// transaction lands in exactly one of Income or Expenses; Flags is an
// independent overlay.
type ClassificationResult struct {
	Income   []ClassifiedTransaction `json:"income"`
	Expenses []ClassifiedTransaction `json:"expenses"`
	Flags    []TransactionFlag       `json:"flags"`
}
