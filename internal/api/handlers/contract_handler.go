package handlers

import (
	"errors"

	"finsight/internal/contracts"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type ContractHandler struct {
	registry *contracts.Registry
	logger   *zap.Logger
}

func NewContractHandler(registry *contracts.Registry, logger *zap.Logger) *ContractHandler {
	return &ContractHandler{
		registry: registry,
		logger:   logger,
	}
}

// GetContract godoc
// @Summary Resolve the contract for a document type
// @Description Returns the registered contract, or the generic-document contract when strict=false
// @Tags contracts
// @Produce json
// @Param docType path string true "Document type"
// @Param version query string false "Contract version" default(v1)
// @Param strict query bool false "Fail instead of falling back to the generic contract" default(false)
// @Success 200 {object} models.Contract
// @Failure 404 {object} map[string]string
// @Router /api/v1/contracts/{docType} [get]
func (h *ContractHandler) GetContract(c *fiber.Ctx) error {
	docType := c.Params("docType")

	if c.QueryBool("strict", false) {
		contract, err := h.registry.LookupOrFail(docType, c.Query("version"))
		if err != nil {
			var notFound *contracts.ContractNotFoundError
			if errors.As(err, &notFound) {
				return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
					"error": err.Error(),
				})
			}
			h.logger.Error("Contract lookup failed", zap.Error(err))
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Failed to resolve contract",
			})
		}
		return c.JSON(contract)
	}

	return c.JSON(h.registry.LookupOrDefault(docType))
}
