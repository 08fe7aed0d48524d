package dto

import "finsight/internal/models"

// DocumentAgentResponse is the terminal envelope consumed by downstream
// services and the UI. Meta is always populated, even when FatalError is
// set; the envelope never collapses to an error-only shape.
type DocumentAgentResponse struct {
	Meta           ResponseMeta                 `json:"meta"`
	Summary        *SummaryResult               `json:"summary,omitempty"`
	Structured     *StructuredResult            `json:"structured,omitempty"`
	Classification *models.ClassificationResult `json:"classification,omitempty"`
	Ratios         *RatiosResult                `json:"ratios,omitempty"`
	Risk           *models.RiskResult           `json:"risk,omitempty"`
	Warnings       []AgentError                 `json:"warnings,omitempty"`
	FatalError     *AgentError                  `json:"fatalError,omitempty"`
}

type ResponseMeta struct {
	DocumentRunID     string       `json:"documentRunId"`
	DocType           string       `json:"docType"`
	CustomerType      string       `json:"customerType,omitempty"`
	RoutingMode       string       `json:"routingMode,omitempty"`
	ServicesRequested []string     `json:"servicesRequested"`
	ServicesCompleted []string     `json:"servicesCompleted"`
	Quality           *QualityInfo `json:"quality,omitempty"`
}

// QualityInfo describes the upstream extraction quality for a run.
type QualityInfo struct {
	OCRConfidence float64 `json:"ocrConfidence,omitempty"`
	PageCount     int     `json:"pageCount,omitempty"`
	Notes         string  `json:"notes,omitempty"`
}

// AgentError is a non-fatal warning or, with Fatal set, a run-ending error.
type AgentError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Service string `json:"service,omitempty"`
	Fatal   bool   `json:"fatal,omitempty"`
}

type SummaryResult struct {
	Text  string `json:"text"`
	Style string `json:"style,omitempty"`
}

// RatiosResult carries whichever ratio set the document type produces.
type RatiosResult struct {
	Bank      *models.BankRatios      `json:"bank,omitempty"`
	Financial *models.FinancialRatios `json:"financial,omitempty"`
}
