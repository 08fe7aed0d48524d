package contracts

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"finsight/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestRegistry(t *testing.T) *Registry {
	t.Helper()
	registry, err := Load("", zap.NewNop())
	require.NoError(t, err)
	return registry
}

func TestLoad_EmbeddedDefaults(t *testing.T) {
	registry := newTestRegistry(t)

	for _, docType := range []string{
		"bank_statement",
		"payslip",
		"financial_statements",
		"id_document",
		"proof_of_residence",
		"bank_confirmation_letter",
		"generic_document",
	} {
		contract, err := registry.LookupOrFail(docType, "v1")
		require.NoError(t, err, "expected embedded contract for %s", docType)
		assert.Equal(t, docType, contract.DocType)
		assert.Equal(t, "v1", contract.Version)
	}
}

func TestLookupOrFail(t *testing.T) {
	registry := newTestRegistry(t)

	t.Run("registered docType round-trips", func(t *testing.T) {
		contract, err := registry.LookupOrFail("bank_statement", "v1")
		require.NoError(t, err)
		assert.Equal(t, "bank_statement", contract.DocType)
		assert.True(t, contract.Services.Enabled(models.ServiceClassification))
		assert.True(t, contract.Services.Enabled(models.ServiceRatios))
		assert.True(t, contract.Services.Enabled(models.ServiceRisk))
	})

	t.Run("empty version defaults to v1", func(t *testing.T) {
		contract, err := registry.LookupOrFail("bank_statement", "")
		require.NoError(t, err)
		assert.Equal(t, "v1", contract.Version)
	})

	t.Run("unknown docType fails with typed error", func(t *testing.T) {
		_, err := registry.LookupOrFail("unknown_type", "v1")
		require.Error(t, err)

		var notFound *ContractNotFoundError
		require.True(t, errors.As(err, &notFound))
		assert.Equal(t, "unknown_type", notFound.DocType)
		assert.Equal(t, "v1", notFound.Version)
		assert.Contains(t, err.Error(), "unknown_type")
	})

	t.Run("unknown version fails", func(t *testing.T) {
		_, err := registry.LookupOrFail("bank_statement", "v99")
		var notFound *ContractNotFoundError
		require.True(t, errors.As(err, &notFound))
		assert.Equal(t, "v99", notFound.Version)
	})
}

func TestLookupOrDefault(t *testing.T) {
	registry := newTestRegistry(t)

	t.Run("registered docType resolves exactly", func(t *testing.T) {
		contract := registry.LookupOrDefault("bank_statement")
		assert.Equal(t, "bank_statement", contract.DocType)
	})

	t.Run("unknown docType falls back to generic document", func(t *testing.T) {
		contract := registry.LookupOrDefault("unknown_type")
		require.NotNil(t, contract)
		assert.Equal(t, GenericDocType, contract.DocType)
	})
}

func TestServicesConfig(t *testing.T) {
	registry := newTestRegistry(t)

	services, err := registry.ServicesConfig("bank_statement", "v1")
	require.NoError(t, err)
	require.NotNil(t, services.Ratios)
	assert.True(t, services.Ratios.Enabled)
	assert.Contains(t, services.Ratios.Metrics, "inflow_outflow_ratio")

	_, err = registry.ServicesConfig("unknown_type", "v1")
	var notFound *ContractNotFoundError
	require.True(t, errors.As(err, &notFound))
}

func TestLoad_OverlayDir(t *testing.T) {
	dir := t.TempDir()

	override := `{
		"docType": "bank_statement",
		"version": "v1",
		"services": {
			"classification": {"enabled": false}
		}
	}`
	extra := `{
		"docType": "vehicle_finance_quote",
		"version": "v1",
		"services": {
			"ocr": {"enabled": true, "max_pages": 4}
		}
	}`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "bank_statement.v1.json"), []byte(override), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "vehicle_finance_quote.v1.json"), []byte(extra), 0o644))

	registry, err := Load(dir, zap.NewNop())
	require.NoError(t, err)

	contract, err := registry.LookupOrFail("bank_statement", "v1")
	require.NoError(t, err)
	assert.False(t, contract.Services.Enabled(models.ServiceClassification),
		"overlay contract should replace the embedded default")

	added, err := registry.LookupOrFail("vehicle_finance_quote", "v1")
	require.NoError(t, err)
	assert.Equal(t, 4, added.Services.OCR.MaxPages)
}

func TestLoad_InvalidOverlayContract(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "bad.json"), []byte(`{"version":"v1"}`), 0o644))

	_, err := Load(dir, zap.NewNop())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "docType")
}
