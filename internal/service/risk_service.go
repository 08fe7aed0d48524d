package service

import (
	"finsight/internal/models"

	"go.uber.org/zap"
)

const (
	riskBaseScore           = 70
	riskFlagsDeduction      = 20
	riskWeakInflowDeduction = 15
)

// RiskService combines ratio outputs and classification flags into a
// bounded risk score. The rules are additive and order-independent: each
// rule inspects only the input state, never a running score.
type RiskService struct {
	logger *zap.Logger
}

func NewRiskService(logger *zap.Logger) *RiskService {
	return &RiskService{logger: logger}
}

// ComputeRiskScore starts from a baseline of 70, deducts 20 when any flags
// are present and 15 when the inflow/outflow ratio is below 1, then clamps
// to [0, 100].
func (s *RiskService) ComputeRiskScore(ratios models.BankRatios, flags []models.TransactionFlag) models.RiskResult {
	score := riskBaseScore
	var reasons []string

	if len(flags) > 0 {
		score -= riskFlagsDeduction
		reasons = append(reasons, "unusual transactions flagged")
	}
	if ratios.InflowOutflowRatio < 1 {
		score -= riskWeakInflowDeduction
		reasons = append(reasons, "outflows exceed inflows")
	}

	score = clamp(score, 0, 100)

	return models.RiskResult{
		Score:   score,
		Band:    bandFor(score),
		Reasons: reasons,
	}
}

func bandFor(score int) models.RiskBand {
	switch {
	case score >= 70:
		return models.RiskBandLow
	case score >= 40:
		return models.RiskBandMedium
	default:
		return models.RiskBandHigh
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
