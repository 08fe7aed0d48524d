package models

import "encoding/json"

// Contract declares, for one document type and version, which analysis
// services apply and how each is configured. Contracts are loaded once at
// startup and never mutated afterwards.
type Contract struct {
	DocType  string         `json:"docType"`
	Version  string         `json:"version"`
	Services ServicesConfig `json:"services"`
}

// Key returns the registry key for this contract.
func (c *Contract) Key() string {
	return c.DocType + ":" + c.Version
}

// ServicesConfig holds one typed config per service kind. A nil entry means
// the service is not mentioned by the contract at all.
type ServicesConfig struct {
	OCR            *OCRServiceConfig            `json:"ocr,omitempty"`
	Summary        *SummaryServiceConfig        `json:"summary,omitempty"`
	Structured     *StructuredServiceConfig     `json:"structured,omitempty"`
	Classification *ClassificationServiceConfig `json:"classification,omitempty"`
	Ratios         *RatiosServiceConfig         `json:"ratios,omitempty"`
	Risk           *RiskServiceConfig           `json:"risk,omitempty"`
}

// Enabled reports whether the named service is present and switched on.
func (s *ServicesConfig) Enabled(service string) bool {
	switch service {
	case ServiceOCR:
		return s.OCR != nil && s.OCR.Enabled
	case ServiceSummary:
		return s.Summary != nil && s.Summary.Enabled
	case ServiceStructured:
		return s.Structured != nil && s.Structured.Enabled
	case ServiceClassification:
		return s.Classification != nil && s.Classification.Enabled
	case ServiceRatios:
		return s.Ratios != nil && s.Ratios.Enabled
	case ServiceRisk:
		return s.Risk != nil && s.Risk.Enabled
	}
	return false
}

// Service names as they appear in contracts and request payloads.
const (
	ServiceOCR            = "ocr"
	ServiceSummary        = "summary"
	ServiceStructured     = "structured"
	ServiceClassification = "classification"
	ServiceRatios         = "ratios"
	ServiceRisk           = "risk"
)

type OCRServiceConfig struct {
	Enabled  bool                       `json:"enabled"`
	MaxPages int                        `json:"max_pages,omitempty"`
	Extra    map[string]json.RawMessage `json:"-"`
}

type SummaryServiceConfig struct {
	Enabled bool                       `json:"enabled"`
	Style   string                     `json:"style,omitempty"`
	Extra   map[string]json.RawMessage `json:"-"`
}

type StructuredServiceConfig struct {
	Enabled bool                       `json:"enabled"`
	Schema  string                     `json:"schema,omitempty"`
	Extra   map[string]json.RawMessage `json:"-"`
}

type ClassificationServiceConfig struct {
	Enabled bool                       `json:"enabled"`
	Labels  []string                   `json:"labels,omitempty"`
	Extra   map[string]json.RawMessage `json:"-"`
}

type RatiosServiceConfig struct {
	Enabled bool                       `json:"enabled"`
	Metrics []string                   `json:"metrics,omitempty"`
	Extra   map[string]json.RawMessage `json:"-"`
}

type RiskServiceConfig struct {
	Enabled      bool                       `json:"enabled"`
	Engine       string                     `json:"engine,omitempty"`
	Explanations bool                       `json:"explanations,omitempty"`
	Extra        map[string]json.RawMessage `json:"-"`
}

func (c *OCRServiceConfig) UnmarshalJSON(data []byte) error {
	type alias OCRServiceConfig
	var a alias
	extra, err := unmarshalWithExtra(data, &a, "enabled", "max_pages")
	if err != nil {
		return err
	}
	*c = OCRServiceConfig(a)
	c.Extra = extra
	return nil
}

func (c OCRServiceConfig) MarshalJSON() ([]byte, error) {
	type alias OCRServiceConfig
	return marshalWithExtra(alias(c), c.Extra)
}

func (c *SummaryServiceConfig) UnmarshalJSON(data []byte) error {
	type alias SummaryServiceConfig
	var a alias
	extra, err := unmarshalWithExtra(data, &a, "enabled", "style")
	if err != nil {
		return err
	}
	*c = SummaryServiceConfig(a)
	c.Extra = extra
	return nil
}

func (c SummaryServiceConfig) MarshalJSON() ([]byte, error) {
	type alias SummaryServiceConfig
	return marshalWithExtra(alias(c), c.Extra)
}

func (c *StructuredServiceConfig) UnmarshalJSON(data []byte) error {
	type alias StructuredServiceConfig
	var a alias
	extra, err := unmarshalWithExtra(data, &a, "enabled", "schema")
	if err != nil {
		return err
	}
	*c = StructuredServiceConfig(a)
	c.Extra = extra
	return nil
}

func (c StructuredServiceConfig) MarshalJSON() ([]byte, error) {
	type alias StructuredServiceConfig
	return marshalWithExtra(alias(c), c.Extra)
}

func (c *ClassificationServiceConfig) UnmarshalJSON(data []byte) error {
	type alias ClassificationServiceConfig
	var a alias
	extra, err := unmarshalWithExtra(data, &a, "enabled", "labels")
	if err != nil {
		return err
	}
	*c = ClassificationServiceConfig(a)
	c.Extra = extra
	return nil
}

func (c ClassificationServiceConfig) MarshalJSON() ([]byte, error) {
	type alias ClassificationServiceConfig
	return marshalWithExtra(alias(c), c.Extra)
}

func (c *RatiosServiceConfig) UnmarshalJSON(data []byte) error {
	type alias RatiosServiceConfig
	var a alias
	extra, err := unmarshalWithExtra(data, &a, "enabled", "metrics")
	if err != nil {
		return err
	}
	*c = RatiosServiceConfig(a)
	c.Extra = extra
	return nil
}

func (c RatiosServiceConfig) MarshalJSON() ([]byte, error) {
	type alias RatiosServiceConfig
	return marshalWithExtra(alias(c), c.Extra)
}

func (c *RiskServiceConfig) UnmarshalJSON(data []byte) error {
	type alias RiskServiceConfig
	var a alias
	extra, err := unmarshalWithExtra(data, &a, "enabled", "engine", "explanations")
	if err != nil {
		return err
	}
	*c = RiskServiceConfig(a)
	c.Extra = extra
	return nil
}

func (c RiskServiceConfig) MarshalJSON() ([]byte, error) {
	type alias RiskServiceConfig
	return marshalWithExtra(alias(c), c.Extra)
}

// unmarshalWithExtra decodes data into v and collects any keys outside the
// known set, so contracts can carry fields this build does not model yet.
func unmarshalWithExtra(data []byte, v any, known ...string) (map[string]json.RawMessage, error) {
	if err := json.Unmarshal(data, v); err != nil {
		return nil, err
	}
	raw := make(map[string]json.RawMessage)
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	for _, k := range known {
		delete(raw, k)
	}
	if len(raw) == 0 {
		return nil, nil
	}
	return raw, nil
}

// marshalWithExtra encodes v and merges the preserved unknown fields back in.
// Known fields win on key collisions.
func marshalWithExtra(v any, extra map[string]json.RawMessage) ([]byte, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	if len(extra) == 0 {
		return b, nil
	}
	merged := make(map[string]json.RawMessage)
	if err := json.Unmarshal(b, &merged); err != nil {
		return nil, err
	}
	for k, val := range extra {
		if _, ok := merged[k]; !ok {
			merged[k] = val
		}
	}
	return json.Marshal(merged)
}
