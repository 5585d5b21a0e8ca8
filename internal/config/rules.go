package config

// RulesConfig holds optional rule variations.
type RulesConfig struct {
	// ExtendedInsufficientMaterial also draws K+B or K+N against a lone king
	// and bishops on one square colour. Off by default: only bare kings draw.
	ExtendedInsufficientMaterial bool
}

// NewRulesConfig creates a RulesConfig with default values.
func NewRulesConfig() *RulesConfig {
	return &RulesConfig{}
}
