package config

import "io"

// ConfigBuilder provides a fluent API for building Config instances.
type ConfigBuilder struct {
	cfg *Config
}

// NewConfigBuilder creates a new ConfigBuilder with default values.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		cfg: NewConfig(),
	}
}

// Build validates and returns the built Config.
func (b *ConfigBuilder) Build() (*Config, error) {
	if err := b.cfg.Validate(); err != nil {
		return nil, err
	}
	return b.cfg, nil
}

// WithVerbosity sets the verbosity level.
func (b *ConfigBuilder) WithVerbosity(level int) *ConfigBuilder {
	b.cfg.Verbosity = level
	return b
}

// WithOutput sets the output writer.
func (b *ConfigBuilder) WithOutput(w io.Writer) *ConfigBuilder {
	b.cfg.OutputFile = w
	return b
}

// WithLog sets the log writer.
func (b *ConfigBuilder) WithLog(w io.Writer) *ConfigBuilder {
	b.cfg.LogFile = w
	return b
}

// WithExtendedInsufficientMaterial enables the extended dead-position rule.
func (b *ConfigBuilder) WithExtendedInsufficientMaterial(enabled bool) *ConfigBuilder {
	b.cfg.Rules.ExtendedInsufficientMaterial = enabled
	return b
}

// WithUnicode controls whether boards use chess symbols.
func (b *ConfigBuilder) WithUnicode(enabled bool) *ConfigBuilder {
	b.cfg.Output.Unicode = enabled
	return b
}

// WithCaptured controls whether captured pieces are listed.
func (b *ConfigBuilder) WithCaptured(enabled bool) *ConfigBuilder {
	b.cfg.Output.ShowCaptured = enabled
	return b
}

// WithSVGSquareSize sets the SVG square size in pixels.
func (b *ConfigBuilder) WithSVGSquareSize(size int) *ConfigBuilder {
	b.cfg.Output.SVGSquareSize = size
	return b
}

// WithStoreDir sets the saved-game directory.
func (b *ConfigBuilder) WithStoreDir(dir string) *ConfigBuilder {
	b.cfg.Store.Dir = dir
	return b
}

// WithWorkers sets the number of verification workers.
func (b *ConfigBuilder) WithWorkers(n int) *ConfigBuilder {
	b.cfg.Store.Workers = n
	return b
}
