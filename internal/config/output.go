package config

import "github.com/lgbarn/chess-rules-go/internal/errors"

// OutputConfig holds settings related to board rendering.
type OutputConfig struct {
	// Unicode draws pieces with chess symbols instead of letters
	Unicode bool

	// ShowCaptured lists each side's lost pieces under the board
	ShowCaptured bool

	// SVGSquareSize is the edge of one square in SVG output, in pixels
	SVGSquareSize int
}

// SVG square size limits.
const (
	MinSVGSquareSize = 8
	MaxSVGSquareSize = 256
)

// NewOutputConfig creates an OutputConfig with default values.
func NewOutputConfig() *OutputConfig {
	return &OutputConfig{
		Unicode:       true,
		ShowCaptured:  true,
		SVGSquareSize: 45,
	}
}

// Validate checks the output settings.
func (c *OutputConfig) Validate() error {
	if c.SVGSquareSize < MinSVGSquareSize || c.SVGSquareSize > MaxSVGSquareSize {
		return errors.Wrapf(errors.ErrInvalidConfig, "svg square size %d out of range %d..%d",
			c.SVGSquareSize, MinSVGSquareSize, MaxSVGSquareSize)
	}
	return nil
}
