package service

import (
	"context"
	"errors"
	"fmt"

	"finsight/internal/contracts"
	"finsight/internal/dto"
	"finsight/internal/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// lowOCRConfidence is the threshold under which extraction quality is
// surfaced as a warning on the response.
const lowOCRConfidence = 0.6

// AnalysisService runs the deterministic engines over a document's extracted
// data and assembles the DocumentAgentResponse envelope. OCR, summary and
// structured extraction belong to the external document agent; their results
// only pass through here.
type AnalysisService struct {
	registry       *contracts.Registry
	classification *ClassificationService
	ratios         *RatiosService
	risk           *RiskService
	logger         *zap.Logger
}

func NewAnalysisService(
	registry *contracts.Registry,
	classification *ClassificationService,
	ratios *RatiosService,
	risk *RiskService,
	logger *zap.Logger,
) *AnalysisService {
	return &AnalysisService{
		registry:       registry,
		classification: classification,
		ratios:         ratios,
		risk:           risk,
		logger:         logger,
	}
}

// Analyze resolves the contract via the strict lookup and runs each
// requested service the contract enables. The returned envelope always has
// Meta populated, even when a fatal error is set. A failure in one service
// never blocks the others; non-fatal problems are recorded as warnings.
func (s *AnalysisService) Analyze(ctx context.Context, req dto.AnalyzeDocumentRequest) *dto.DocumentAgentResponse {
	_ = ctx // engines are pure and non-blocking; ctx is part of the call contract

	resp := &dto.DocumentAgentResponse{
		Meta: dto.ResponseMeta{
			DocumentRunID:     uuid.New().String(),
			DocType:           req.DocType,
			CustomerType:      req.CustomerType,
			RoutingMode:       req.RoutingMode,
			ServicesRequested: req.Services,
			ServicesCompleted: []string{},
			Quality:           req.Quality,
		},
	}

	contract, err := s.registry.LookupOrFail(req.DocType, req.ContractVersion)
	if err != nil {
		var notFound *contracts.ContractNotFoundError
		code := "analysis_failed"
		if errors.As(err, &notFound) {
			code = "contract_not_found"
		}
		s.logger.Warn("Analysis aborted", zap.String("docType", req.DocType), zap.Error(err))
		resp.FatalError = &dto.AgentError{
			Code:    code,
			Message: err.Error(),
			Fatal:   true,
		}
		return resp
	}

	if req.Quality != nil && req.Quality.OCRConfidence > 0 && req.Quality.OCRConfidence < lowOCRConfidence {
		resp.Warnings = append(resp.Warnings, dto.AgentError{
			Code:    "low_ocr_confidence",
			Message: fmt.Sprintf("OCR confidence %.2f is below %.2f", req.Quality.OCRConfidence, lowOCRConfidence),
			Service: models.ServiceOCR,
		})
	}

	// Classification and bank ratios are computed at most once per run;
	// risk consumes them whether or not they were requested themselves.
	var classification *models.ClassificationResult
	classify := func() *models.ClassificationResult {
		if classification == nil {
			result := s.classification.Classify(req.Transactions)
			classification = &result
		}
		return classification
	}
	var bankRatios *models.BankRatios
	computeBankRatios := func() *models.BankRatios {
		if bankRatios == nil {
			result := s.ratios.ComputeBankRatios(req.Transactions, req.OpeningBalance, req.ClosingBalance)
			bankRatios = &result
		}
		return bankRatios
	}

	for _, service := range req.Services {
		if !contract.Services.Enabled(service) {
			resp.Warnings = append(resp.Warnings, dto.AgentError{
				Code:    "service_not_enabled",
				Message: fmt.Sprintf("service %s is not enabled by contract %s", service, contract.Key()),
				Service: service,
			})
			continue
		}

		switch service {
		case models.ServiceClassification:
			resp.Classification = classify()
			resp.Meta.ServicesCompleted = append(resp.Meta.ServicesCompleted, service)

		case models.ServiceRatios:
			result := &dto.RatiosResult{}
			if req.Statements != nil {
				financial := s.ratios.ComputeFinancialRatios(*req.Statements)
				result.Financial = &financial
			} else {
				result.Bank = computeBankRatios()
			}
			resp.Ratios = result
			resp.Meta.ServicesCompleted = append(resp.Meta.ServicesCompleted, service)

		case models.ServiceRisk:
			risk := s.risk.ComputeRiskScore(*computeBankRatios(), classify().Flags)
			resp.Risk = &risk
			resp.Meta.ServicesCompleted = append(resp.Meta.ServicesCompleted, service)

		case models.ServiceSummary:
			if req.Summary != nil {
				resp.Summary = req.Summary
				resp.Meta.ServicesCompleted = append(resp.Meta.ServicesCompleted, service)
			} else {
				resp.Warnings = append(resp.Warnings, delegatedWarning(service))
			}

		case models.ServiceStructured:
			if req.Structured != nil {
				resp.Structured = req.Structured
				resp.Meta.ServicesCompleted = append(resp.Meta.ServicesCompleted, service)
			} else {
				resp.Warnings = append(resp.Warnings, delegatedWarning(service))
			}

		case models.ServiceOCR:
			resp.Warnings = append(resp.Warnings, delegatedWarning(service))
		}
	}

	s.logger.Info("Document analyzed",
		zap.String("documentRunId", resp.Meta.DocumentRunID),
		zap.String("docType", req.DocType),
		zap.Strings("completed", resp.Meta.ServicesCompleted),
		zap.Int("warnings", len(resp.Warnings)),
	)
	return resp
}

// delegatedWarning marks a service that only the external document agent can
// produce and whose result was not supplied with the request.
func delegatedWarning(service string) dto.AgentError {
	return dto.AgentError{
		Code:    "service_delegated",
		Message: fmt.Sprintf("service %s is produced by the document agent; no result was supplied", service),
		Service: service,
	}
}
