// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"

	"github.com/lgbarn/chess-rules-go/internal/config"
)

var (
	// Game selection
	storeDir = flag.String("dir", config.DefaultStoreDir, "Directory holding saved games")
	loadName = flag.String("load", "", "Load the saved game with this name")
	newGame  = flag.Bool("new", false, "Start a new game without asking")

	// Rules
	extendedDraw = flag.Bool("extended-draw", false, "Also draw K+B or K+N against a lone king")

	// Display
	asciiBoard   = flag.Bool("ascii", false, "Draw pieces as letters instead of chess symbols")
	hideCaptured = flag.Bool("nocaptured", false, "Don't list lost pieces under the board")
	svgFile      = flag.String("svg", "", "Write the final board as SVG to this file")
	svgSize      = flag.Int("svgsize", 45, "SVG square size in pixels")
	jsonFile     = flag.String("json", "", "Write the final game as JSON to this file")

	// Saved games
	verify  = flag.Bool("verify", false, "Check every saved game and exit")
	workers = flag.Int("workers", 4, "Number of goroutines used by -verify")

	// Logging
	verbose = flag.Bool("v", false, "Log every move and rejection")
	quiet   = flag.Bool("q", false, "Log errors only")
	logFile = flag.String("log", "", "Write the log to this file (default: stderr)")

	// Help and version
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// applyFlags applies all command-line flags to the configuration.
func applyFlags(cfg *config.Config) {
	applyVerbosityFlags(cfg)
	applyRulesFlags(cfg)
	applyDisplayFlags(cfg)
	applyStoreFlags(cfg)
}

// applyVerbosityFlags maps -v and -q onto the verbosity level. -q wins.
func applyVerbosityFlags(cfg *config.Config) {
	switch {
	case *quiet:
		cfg.Verbosity = config.Quiet
	case *verbose:
		cfg.Verbosity = config.Verbose
	default:
		cfg.Verbosity = config.Normal
	}
}

// applyRulesFlags configures optional rules.
func applyRulesFlags(cfg *config.Config) {
	cfg.Rules.ExtendedInsufficientMaterial = *extendedDraw
}

// applyDisplayFlags configures board rendering.
func applyDisplayFlags(cfg *config.Config) {
	cfg.Output.Unicode = !*asciiBoard
	cfg.Output.ShowCaptured = !*hideCaptured
	cfg.Output.SVGSquareSize = *svgSize
}

// applyStoreFlags configures the saved-game directory.
func applyStoreFlags(cfg *config.Config) {
	cfg.Store.Dir = *storeDir
	cfg.Store.Workers = *workers
}
