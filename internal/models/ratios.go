package models

// BankRatios are the cash-flow metrics computed from a bank-statement
// transaction list. Every value is finite: denominators fall back to one
// rather than producing Inf/NaN.
type BankRatios struct {
	TotalIncome         float64 `json:"total_income"`
	TotalExpense        float64 `json:"total_expense"`
	InflowOutflowRatio  float64 `json:"inflow_outflow_ratio"`
	NetPosition         float64 `json:"net_position"`
	LargestIncomeShare  float64 `json:"largest_income_share"`
	LargestExpenseShare float64 `json:"largest_expense_share"`
	// IncomeVolatility is not implemented yet and is always 0.
	IncomeVolatility float64 `json:"income_volatility"`
}

// FinancialRatios are computed from a structured three-statement model.
type FinancialRatios struct {
	Profitability ProfitabilityRatios `json:"profitability"`
	Liquidity     LiquidityRatios     `json:"liquidity"`
	Leverage      LeverageRatios      `json:"leverage"`
	CashFlow      CashFlowRatios      `json:"cash_flow"`
}

type ProfitabilityRatios struct {
	NetProfitMargin float64 `json:"net_profit_margin"`
	OperatingMargin float64 `json:"operating_margin"`
	GrossMargin     float64 `json:"gross_margin"`
	ReturnOnAssets  float64 `json:"return_on_assets"`
	ReturnOnEquity  float64 `json:"return_on_equity"`
}

type LiquidityRatios struct {
	CurrentRatio float64 `json:"current_ratio"`
	// QuickRatio currently applies no inventory/prepaid subtraction.
	QuickRatio float64 `json:"quick_ratio"`
	CashRatio  float64 `json:"cash_ratio"`
}

type LeverageRatios struct {
	DebtToEquity float64 `json:"debt_to_equity"`
	// InterestCoverage and DebtServiceCoverage divide by a hard-coded 1
	// until interest expense and debt service land in the statement model.
	InterestCoverage    float64 `json:"interest_coverage"`
	DebtServiceCoverage float64 `json:"debt_service_coverage"`
}

type CashFlowRatios struct {
	OperatingCashFlowRatio float64 `json:"operating_cash_flow_ratio"`
	// FreeCashFlow subtracts no capex yet.
	FreeCashFlow float64 `json:"free_cash_flow"`
	// CashConversionCycle is not implemented and is always 0.
	CashConversionCycle float64 `json:"cash_conversion_cycle"`
}
