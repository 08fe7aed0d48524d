package models

type RiskBand string

const (
	RiskBandLow    RiskBand = "low"
	RiskBandMedium RiskBand = "medium"
	RiskBandHigh   RiskBand = "high"
)

// RiskResult is the bounded risk assessment. Score is always in [0, 100].
type RiskResult struct {
	Score   int      `json:"score"`
	Band    RiskBand `json:"band"`
	Reasons []string `json:"reasons,omitempty"`
}
