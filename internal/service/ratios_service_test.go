package service

import (
	"testing"

	"finsight/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestComputeBankRatios(t *testing.T) {
	svc := NewRatiosService(zap.NewNop())

	txs := []models.Transaction{
		tx("Salary", 20000),
		tx("Dividend", 5000),
		tx("Rent", -8000),
		tx("Fuel", -2000),
	}

	ratios := svc.ComputeBankRatios(txs, decimal.Zero, decimal.Zero)

	assert.Equal(t, 25000.0, ratios.TotalIncome)
	assert.Equal(t, 10000.0, ratios.TotalExpense)
	assert.Equal(t, 2.5, ratios.InflowOutflowRatio)
	assert.Equal(t, 15000.0, ratios.NetPosition)
	assert.Equal(t, 0.8, ratios.LargestIncomeShare)
	assert.Equal(t, 0.8, ratios.LargestExpenseShare)
	assert.Equal(t, 0.0, ratios.IncomeVolatility)
}

func TestComputeBankRatios_EmptyTransactionList(t *testing.T) {
	svc := NewRatiosService(zap.NewNop())

	ratios := svc.ComputeBankRatios(nil, decimal.Zero, decimal.Zero)

	assert.Equal(t, 0.0, ratios.TotalIncome)
	assert.Equal(t, 0.0, ratios.TotalExpense)
	// 0/1 under the zero-denominator guard, never NaN
	assert.Equal(t, 0.0, ratios.InflowOutflowRatio)
	assert.Equal(t, 0.0, ratios.NetPosition)
	assert.Equal(t, 0.0, ratios.LargestIncomeShare)
	assert.Equal(t, 0.0, ratios.LargestExpenseShare)
}

func TestComputeBankRatios_ZeroDenominatorGuards(t *testing.T) {
	svc := NewRatiosService(zap.NewNop())

	t.Run("no expenses", func(t *testing.T) {
		ratios := svc.ComputeBankRatios([]models.Transaction{tx("Salary", 20000)}, decimal.Zero, decimal.Zero)
		// totalIncome / 1, not Inf
		assert.Equal(t, 20000.0, ratios.InflowOutflowRatio)
		assert.Equal(t, 1.0, ratios.LargestIncomeShare)
		assert.Equal(t, 0.0, ratios.LargestExpenseShare)
	})

	t.Run("no income", func(t *testing.T) {
		ratios := svc.ComputeBankRatios([]models.Transaction{tx("Rent", -8000)}, decimal.Zero, decimal.Zero)
		assert.Equal(t, 0.0, ratios.InflowOutflowRatio)
		assert.Equal(t, 0.0, ratios.LargestIncomeShare)
		assert.Equal(t, 1.0, ratios.LargestExpenseShare)
		assert.Equal(t, -8000.0, ratios.NetPosition)
	})
}

func TestComputeBankRatios_ZeroAmountIgnored(t *testing.T) {
	svc := NewRatiosService(zap.NewNop())

	ratios := svc.ComputeBankRatios([]models.Transaction{tx("Reversal", 0)}, decimal.Zero, decimal.Zero)
	assert.Equal(t, 0.0, ratios.TotalIncome)
	assert.Equal(t, 0.0, ratios.TotalExpense)
}

func TestComputeFinancialRatios(t *testing.T) {
	svc := NewRatiosService(zap.NewNop())

	statements := models.FinancialStatements{
		IncomeStatement: models.IncomeStatement{
			Revenue:         1000,
			GrossProfit:     400,
			OperatingProfit: 250,
			NetProfit:       150,
		},
		BalanceSheet: models.BalanceSheet{
			TotalAssets:        3000,
			CurrentAssets:      900,
			CashAndEquivalents: 300,
			CurrentLiabilities: 600,
			TotalDebt:          1200,
			Equity:             1500,
		},
		CashFlowStatement: models.CashFlowStatement{
			OperatingCashFlow: 200,
		},
	}

	ratios := svc.ComputeFinancialRatios(statements)

	assert.Equal(t, 0.15, ratios.Profitability.NetProfitMargin)
	assert.Equal(t, 0.25, ratios.Profitability.OperatingMargin)
	assert.Equal(t, 0.4, ratios.Profitability.GrossMargin)
	assert.Equal(t, 0.05, ratios.Profitability.ReturnOnAssets)
	assert.Equal(t, 0.1, ratios.Profitability.ReturnOnEquity)

	assert.Equal(t, 1.5, ratios.Liquidity.CurrentRatio)
	// quick ratio applies no inventory subtraction yet
	assert.Equal(t, ratios.Liquidity.CurrentRatio, ratios.Liquidity.QuickRatio)
	assert.Equal(t, 0.5, ratios.Liquidity.CashRatio)

	assert.Equal(t, 0.8, ratios.Leverage.DebtToEquity)
	// coverage ratios divide by a hard-coded 1
	assert.Equal(t, 250.0, ratios.Leverage.InterestCoverage)
	assert.Equal(t, 200.0, ratios.Leverage.DebtServiceCoverage)

	assert.InDelta(t, 0.3333, ratios.CashFlow.OperatingCashFlowRatio, 0.0001)
	assert.Equal(t, 200.0, ratios.CashFlow.FreeCashFlow)
	assert.Equal(t, 0.0, ratios.CashFlow.CashConversionCycle)
}

func TestComputeFinancialRatios_ZeroStatements(t *testing.T) {
	svc := NewRatiosService(zap.NewNop())

	// Every denominator is zero; the fallback-to-one policy must keep all
	// outputs finite (zero revenue with zero profit compresses to 0).
	ratios := svc.ComputeFinancialRatios(models.FinancialStatements{})

	assert.Equal(t, 0.0, ratios.Profitability.NetProfitMargin)
	assert.Equal(t, 0.0, ratios.Profitability.ReturnOnEquity)
	assert.Equal(t, 0.0, ratios.Liquidity.CurrentRatio)
	assert.Equal(t, 0.0, ratios.Leverage.DebtToEquity)
	assert.Equal(t, 0.0, ratios.CashFlow.OperatingCashFlowRatio)
}

func TestSafeDiv(t *testing.T) {
	tests := []struct {
		name string
		num  float64
		den  float64
		want float64
	}{
		{name: "normal division", num: 10, den: 4, want: 2.5},
		{name: "zero denominator falls back to one", num: 10, den: 0, want: 10},
		{name: "zero over zero", num: 0, den: 0, want: 0},
		{name: "negative numerator", num: -5, den: 0, want: -5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, safeDiv(tt.num, tt.den))
		})
	}
}
