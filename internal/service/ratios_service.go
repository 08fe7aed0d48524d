package service

import (
	"finsight/internal/models"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// RatiosService computes cash-flow ratios from bank transactions and
// financial-statement ratios from a structured three-statement model. The
// two calculators are independent and never mixed.
//
// Numeric policy for the whole service: a zero denominator is replaced by 1
// instead of failing or producing Inf/NaN. A genuinely zero ratio therefore
// compresses to 0 rather than being undefined.
type RatiosService struct {
	logger *zap.Logger
}

func NewRatiosService(logger *zap.Logger) *RatiosService {
	return &RatiosService{logger: logger}
}

// ComputeBankRatios partitions transactions by sign (positive = income,
// negative = expense) and derives the cash-flow metrics. Opening and closing
// balance are part of the call contract but not used by any current metric.
func (s *RatiosService) ComputeBankRatios(
	txs []models.Transaction,
	openingBalance, closingBalance decimal.Decimal,
) models.BankRatios {
	_ = openingBalance
	_ = closingBalance

	totalIncome := decimal.Zero
	totalExpense := decimal.Zero
	largestIncome := decimal.Zero
	largestExpense := decimal.Zero

	for _, tx := range txs {
		switch {
		case tx.Amount.IsPositive():
			totalIncome = totalIncome.Add(tx.Amount)
			if tx.Amount.GreaterThan(largestIncome) {
				largestIncome = tx.Amount
			}
		case tx.Amount.IsNegative():
			abs := tx.Amount.Abs()
			totalExpense = totalExpense.Add(abs)
			if abs.GreaterThan(largestExpense) {
				largestExpense = abs
			}
		}
	}

	income := totalIncome.InexactFloat64()
	expense := totalExpense.InexactFloat64()

	return models.BankRatios{
		TotalIncome:         income,
		TotalExpense:        expense,
		InflowOutflowRatio:  safeDiv(income, expense),
		NetPosition:         income - expense,
		LargestIncomeShare:  safeDiv(largestIncome.InexactFloat64(), income),
		LargestExpenseShare: safeDiv(largestExpense.InexactFloat64(), expense),
		IncomeVolatility:    0, // not implemented yet
	}
}

// ComputeFinancialRatios derives the four ratio groups from a structured
// three-statement model.
func (s *RatiosService) ComputeFinancialRatios(statements models.FinancialStatements) models.FinancialRatios {
	is := statements.IncomeStatement
	bs := statements.BalanceSheet
	cf := statements.CashFlowStatement

	return models.FinancialRatios{
		Profitability: models.ProfitabilityRatios{
			NetProfitMargin: safeDiv(is.NetProfit, is.Revenue),
			OperatingMargin: safeDiv(is.OperatingProfit, is.Revenue),
			GrossMargin:     safeDiv(is.GrossProfit, is.Revenue),
			ReturnOnAssets:  safeDiv(is.NetProfit, bs.TotalAssets),
			ReturnOnEquity:  safeDiv(is.NetProfit, bs.Equity),
		},
		Liquidity: models.LiquidityRatios{
			CurrentRatio: safeDiv(bs.CurrentAssets, bs.CurrentLiabilities),
			// No inventory/prepaid subtraction until those line items
			// exist in the balance-sheet model.
			QuickRatio: safeDiv(bs.CurrentAssets, bs.CurrentLiabilities),
			CashRatio:  safeDiv(bs.CashAndEquivalents, bs.CurrentLiabilities),
		},
		Leverage: models.LeverageRatios{
			DebtToEquity: safeDiv(bs.TotalDebt, bs.Equity),
			// Interest expense and debt service are not extracted yet,
			// so both coverage ratios divide by a hard-coded 1.
			InterestCoverage:    is.OperatingProfit / 1,
			DebtServiceCoverage: cf.OperatingCashFlow / 1,
		},
		CashFlow: models.CashFlowRatios{
			OperatingCashFlowRatio: safeDiv(cf.OperatingCashFlow, bs.CurrentLiabilities),
			FreeCashFlow:           cf.OperatingCashFlow - 0, // capex not wired in yet
			CashConversionCycle:    0,                        // not implemented
		},
	}
}

// safeDiv divides num by den, substituting 1 for a zero denominator.
func safeDiv(num, den float64) float64 {
	if den == 0 {
		den = 1
	}
	return num / den
}
