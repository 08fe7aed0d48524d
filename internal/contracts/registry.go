package contracts

import (
	"embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"finsight/internal/models"

	"go.uber.org/zap"
)

//go:embed defaults/*.json
var defaultContracts embed.FS

const (
	// GenericDocType is the fallback contract used by the lenient lookup
	// when a document type is not registered.
	GenericDocType = "generic_document"

	// DefaultVersion is assumed when a caller does not pin a version.
	DefaultVersion = "v1"
)

// ContractNotFoundError is returned by the strict lookup path when no
// contract is registered for the requested key.
type ContractNotFoundError struct {
	DocType string
	Version string
}

func (e *ContractNotFoundError) Error() string {
	return fmt.Sprintf("no contract registered for docType %q version %q", e.DocType, e.Version)
}

// Registry resolves (docType, version) pairs to contracts. It is populated
// once at startup and read-only afterwards, so concurrent lookups need no
// locking.
type Registry struct {
	contracts map[string]*models.Contract
	logger    *zap.Logger
}

// Load builds a registry from the embedded default contracts, then overlays
// any *.json files found in dir (empty dir skips the overlay). A docType
// duplicated within the defaults is a load error; a dir contract replacing a
// default is allowed and logged.
func Load(dir string, logger *zap.Logger) (*Registry, error) {
	r := &Registry{
		contracts: make(map[string]*models.Contract),
		logger:    logger,
	}

	entries, err := defaultContracts.ReadDir("defaults")
	if err != nil {
		return nil, fmt.Errorf("failed to read embedded contracts: %w", err)
	}
	for _, entry := range entries {
		data, err := defaultContracts.ReadFile("defaults/" + entry.Name())
		if err != nil {
			return nil, fmt.Errorf("failed to read embedded contract %s: %w", entry.Name(), err)
		}
		contract, err := parseContract(data)
		if err != nil {
			return nil, fmt.Errorf("invalid embedded contract %s: %w", entry.Name(), err)
		}
		if _, exists := r.contracts[contract.Key()]; exists {
			return nil, fmt.Errorf("duplicate contract for %s in embedded defaults", contract.Key())
		}
		r.contracts[contract.Key()] = contract
	}

	if dir != "" {
		if err := r.overlayDir(dir); err != nil {
			return nil, err
		}
	}

	if _, ok := r.contracts[GenericDocType+":"+DefaultVersion]; !ok {
		return nil, fmt.Errorf("contract set has no %s %s fallback", GenericDocType, DefaultVersion)
	}

	logger.Info("Contract registry loaded",
		zap.Int("contracts", len(r.contracts)),
		zap.Strings("docTypes", r.docTypes()),
	)
	return r, nil
}

func (r *Registry) overlayDir(dir string) error {
	paths, err := filepath.Glob(filepath.Join(dir, "*.json"))
	if err != nil {
		return fmt.Errorf("failed to scan contracts dir %s: %w", dir, err)
	}
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read contract %s: %w", path, err)
		}
		contract, err := parseContract(data)
		if err != nil {
			return fmt.Errorf("invalid contract %s: %w", path, err)
		}
		if _, exists := r.contracts[contract.Key()]; exists {
			r.logger.Info("Overriding default contract",
				zap.String("key", contract.Key()),
				zap.String("file", path),
			)
		}
		r.contracts[contract.Key()] = contract
	}
	return nil
}

// LookupOrDefault returns the contract for docType at the default version,
// or the generic-document contract when docType is unregistered. It never
// fails; strict pipeline code should use LookupOrFail instead.
func (r *Registry) LookupOrDefault(docType string) *models.Contract {
	if contract, ok := r.contracts[docType+":"+DefaultVersion]; ok {
		return contract
	}
	r.logger.Debug("No contract for docType, using generic fallback",
		zap.String("docType", docType),
	)
	return r.contracts[GenericDocType+":"+DefaultVersion]
}

// LookupOrFail returns the contract for the exact (docType, version) key or
// a *ContractNotFoundError. An empty version means DefaultVersion.
func (r *Registry) LookupOrFail(docType, version string) (*models.Contract, error) {
	if version == "" {
		version = DefaultVersion
	}
	contract, ok := r.contracts[docType+":"+version]
	if !ok {
		return nil, &ContractNotFoundError{DocType: docType, Version: version}
	}
	return contract, nil
}

// ServicesConfig projects the services sub-object of a resolved contract,
// failing the same way LookupOrFail does.
func (r *Registry) ServicesConfig(docType, version string) (*models.ServicesConfig, error) {
	contract, err := r.LookupOrFail(docType, version)
	if err != nil {
		return nil, err
	}
	return &contract.Services, nil
}

func (r *Registry) docTypes() []string {
	types := make([]string, 0, len(r.contracts))
	for key := range r.contracts {
		types = append(types, strings.SplitN(key, ":", 2)[0])
	}
	sort.Strings(types)
	return types
}

func parseContract(data []byte) (*models.Contract, error) {
	var contract models.Contract
	if err := json.Unmarshal(data, &contract); err != nil {
		return nil, err
	}
	if contract.DocType == "" {
		return nil, fmt.Errorf("contract has no docType")
	}
	if contract.Version == "" {
		return nil, fmt.Errorf("contract %s has no version", contract.DocType)
	}
	return &contract, nil
}
