package models

// FinancialStatements is the structured three-statement model produced by
// upstream extraction from annual/management accounts.
type FinancialStatements struct {
	IncomeStatement   IncomeStatement   `json:"income_statement"`
	BalanceSheet      BalanceSheet      `json:"balance_sheet"`
	CashFlowStatement CashFlowStatement `json:"cash_flow_statement"`
}

type IncomeStatement struct {
	Revenue         float64 `json:"revenue"`
	GrossProfit     float64 `json:"gross_profit"`
	OperatingProfit float64 `json:"operating_profit"`
	NetProfit       float64 `json:"net_profit"`
}

type BalanceSheet struct {
	TotalAssets        float64 `json:"total_assets"`
	CurrentAssets      float64 `json:"current_assets"`
	CashAndEquivalents float64 `json:"cash_and_equivalents"`
	CurrentLiabilities float64 `json:"current_liabilities"`
	TotalDebt          float64 `json:"total_debt"`
	Equity             float64 `json:"equity"`
}

type CashFlowStatement struct {
	OperatingCashFlow float64 `json:"operating_cash_flow"`
}
