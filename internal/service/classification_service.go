package service

import (
	"strings"

	"finsight/internal/models"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// largeTransactionThreshold is the absolute amount above which a transaction
// is flagged as unusual, regardless of its category.
var largeTransactionThreshold = decimal.NewFromInt(50000)

type keywordGroup struct {
	keywords []string
	category models.TransactionCategory
	income   bool
}

// keywordGroups is evaluated in order; the first matching group wins.
var keywordGroups = []keywordGroup{
	{keywords: []string{"salary", "payroll"}, category: models.CategorySalary, income: true},
	{keywords: []string{"dividend"}, category: models.CategoryDividends, income: true},
	{keywords: []string{"loan"}, category: models.CategoryLoanProceeds, income: true},
	{keywords: []string{"rent"}, category: models.CategoryRent},
	{keywords: []string{"fuel", "garage"}, category: models.CategoryFuel},
	{keywords: []string{"subscription", "netflix", "spotify"}, category: models.CategorySubscriptions},
}

// ClassificationService buckets bank-statement transactions into income,
// expenses and anomaly flags.
type ClassificationService struct {
	logger *zap.Logger
}

func NewClassificationService(logger *zap.Logger) *ClassificationService {
	return &ClassificationService{logger: logger}
}

// Classify assigns each transaction to exactly one of the income or expenses
// buckets by matching its lower-cased description against the ordered
// keyword groups; anything unmatched becomes a general expense. The
// large-transaction flag check runs on every transaction independently of
// the category it landed in; a flagged transaction stays in its bucket.
func (s *ClassificationService) Classify(txs []models.Transaction) models.ClassificationResult {
	result := models.ClassificationResult{
		Income:   []models.ClassifiedTransaction{},
		Expenses: []models.ClassifiedTransaction{},
		Flags:    []models.TransactionFlag{},
	}

	for _, tx := range txs {
		description := strings.ToLower(tx.Description)

		matched := false
		for _, group := range keywordGroups {
			if !containsAny(description, group.keywords) {
				continue
			}
			classified := models.ClassifiedTransaction{Transaction: tx, Category: group.category}
			if group.income {
				result.Income = append(result.Income, classified)
			} else {
				result.Expenses = append(result.Expenses, classified)
			}
			matched = true
			break
		}
		if !matched {
			result.Expenses = append(result.Expenses, models.ClassifiedTransaction{
				Transaction: tx,
				Category:    models.CategoryGeneralExpense,
			})
		}

		if tx.Amount.Abs().GreaterThan(largeTransactionThreshold) {
			result.Flags = append(result.Flags, models.TransactionFlag{
				Type:        models.FlagTypeLargeTransaction,
				Transaction: tx,
			})
		}
	}

	s.logger.Debug("Classified transactions",
		zap.Int("income", len(result.Income)),
		zap.Int("expenses", len(result.Expenses)),
		zap.Int("flags", len(result.Flags)),
	)
	return result
}

func containsAny(s string, keywords []string) bool {
	for _, keyword := range keywords {
		if strings.Contains(s, keyword) {
			return true
		}
	}
	return false
}
