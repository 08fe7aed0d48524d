package handlers

import (
	"finsight/internal/dto"
	"finsight/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type AnalysisHandler struct {
	dispatchService *service.DispatchService
	analysisService *service.AnalysisService
	logger          *zap.Logger
}

func NewAnalysisHandler(
	dispatchService *service.DispatchService,
	analysisService *service.AnalysisService,
	logger *zap.Logger,
) *AnalysisHandler {
	return &AnalysisHandler{
		dispatchService: dispatchService,
		analysisService: analysisService,
		logger:          logger,
	}
}

// BuildRequests godoc
// @Summary Build per-service agent request payloads
// @Description Produce one request payload per requested service, each embedding the resolved document contract
// @Tags analysis
// @Accept json
// @Produce json
// @Success 200 {array} dto.ServiceRequest
// @Failure 400 {object} map[string]string
// @Router /api/v1/analysis/requests [post]
func (h *AnalysisHandler) BuildRequests(c *fiber.Ctx) error {
	var input dto.BuildRequestsInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	requests, err := h.dispatchService.BuildRequests(
		input.DocType,
		input.Services,
		input.OCRText,
		input.RawJSON,
		input.Metadata,
	)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(requests)
}

// Analyze godoc
// @Summary Analyze an extracted document
// @Description Run the deterministic engines (classification, ratios, risk) over extracted document data and return the response envelope
// @Tags analysis
// @Accept json
// @Produce json
// @Success 200 {object} dto.DocumentAgentResponse
// @Failure 400 {object} map[string]string
// @Router /api/v1/analysis/run [post]
func (h *AnalysisHandler) Analyze(c *fiber.Ctx) error {
	var req dto.AnalyzeDocumentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}
	if req.DocType == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "docType is required",
		})
	}

	resp := h.analysisService.Analyze(c.Context(), req)
	return c.JSON(resp)
}
