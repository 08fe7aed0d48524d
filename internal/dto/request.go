package dto

import (
	"encoding/json"

	"finsight/internal/models"

	"github.com/shopspring/decimal"
)

// ServiceRequest is the payload handed to the downstream document agent for
// a single (docType, service) pair. It is built fresh per dispatch call and
// never persisted.
type ServiceRequest struct {
	ContractVersion  string           `json:"contractVersion"`
	DocumentType     string           `json:"documentType"`
	ServiceRequested string           `json:"serviceRequested"`
	Contract         *models.Contract `json:"contract"`
	OCRText          string           `json:"ocrText,omitempty"`
	RawJSON          json.RawMessage  `json:"rawJson,omitempty"`
	Metadata         map[string]any   `json:"metadata,omitempty"`
}

// BuildRequestsInput is the body of the dispatch endpoint.
type BuildRequestsInput struct {
	DocType  string          `json:"docType"`
	Services []string        `json:"services"`
	OCRText  string          `json:"ocrText,omitempty"`
	RawJSON  json.RawMessage `json:"rawJson,omitempty"`
	Metadata map[string]any  `json:"metadata,omitempty"`
}

// AnalyzeDocumentRequest carries a document's extracted data into the
// deterministic engines. Transactions, balances and statements come from the
// upstream extraction step; structured and summary results, if already
// produced by the agent, pass through into the response envelope.
type AnalyzeDocumentRequest struct {
	DocType         string                      `json:"docType"`
	ContractVersion string                      `json:"contractVersion,omitempty"`
	CustomerType    string                      `json:"customerType,omitempty"`
	RoutingMode     string                      `json:"routingMode,omitempty"`
	Services        []string                    `json:"services"`
	OCRText         string                      `json:"ocrText,omitempty"`
	Quality         *QualityInfo                `json:"quality,omitempty"`
	Transactions    []models.Transaction        `json:"transactions,omitempty"`
	OpeningBalance  decimal.Decimal             `json:"openingBalance"`
	ClosingBalance  decimal.Decimal             `json:"closingBalance"`
	Statements      *models.FinancialStatements `json:"statements,omitempty"`
	Structured      *StructuredResult           `json:"structured,omitempty"`
	Summary         *SummaryResult              `json:"summary,omitempty"`
	Metadata        map[string]any              `json:"metadata,omitempty"`
}
