package service

import (
	"encoding/json"
	"fmt"

	"finsight/internal/contracts"
	"finsight/internal/dto"

	"go.uber.org/zap"
)

// DispatchService assembles per-service request payloads for the downstream
// document agent.
type DispatchService struct {
	registry *contracts.Registry
	logger   *zap.Logger
}

func NewDispatchService(registry *contracts.Registry, logger *zap.Logger) *DispatchService {
	return &DispatchService{
		registry: registry,
		logger:   logger,
	}
}

// BuildRequests produces one ServiceRequest per requested service, in the
// order the services were requested; downstream callers associate results
// back to requests by position. The embedded contract is resolved via the
// lenient lookup, so an unregistered docType gets the generic-document
// contract. Whether a requested service is actually enabled in the contract
// is the caller's check to make, not ours.
func (s *DispatchService) BuildRequests(
	docType string,
	services []string,
	ocrText string,
	rawJSON json.RawMessage,
	metadata map[string]any,
) ([]dto.ServiceRequest, error) {
	if docType == "" {
		return nil, fmt.Errorf("docType is required")
	}
	if len(services) == 0 {
		return nil, fmt.Errorf("at least one service must be requested")
	}

	contract := s.registry.LookupOrDefault(docType)
	if contract.DocType != docType {
		s.logger.Debug("Dispatching with fallback contract",
			zap.String("requested", docType),
			zap.String("resolved", contract.DocType),
		)
	}

	requests := make([]dto.ServiceRequest, 0, len(services))
	for _, service := range services {
		requests = append(requests, dto.ServiceRequest{
			ContractVersion:  contract.Version,
			DocumentType:     docType,
			ServiceRequested: service,
			Contract:         contract,
			OCRText:          ocrText,
			RawJSON:          rawJSON,
			Metadata:         metadata,
		})
	}
	return requests, nil
}
