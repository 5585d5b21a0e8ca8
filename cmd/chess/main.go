// chess is a two-player chess game for the terminal with saved games.
package main

import (
	stderrors "errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/apex/log"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/match"
	"github.com/lgbarn/chess-rules-go/internal/output"
	"github.com/lgbarn/chess-rules-go/internal/store"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("chess-rules-go version %s\n", programVersion)
		os.Exit(0)
	}

	cfg := config.NewConfig()
	applyFlags(cfg)
	setupLogFile(cfg)

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	if *verify {
		os.Exit(runVerify(cfg))
	}
	if err := play(cfg, os.Stdin); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: %s [options]\n\n", os.Args[0])
	fmt.Fprintln(os.Stderr, "Play chess against another person at the same terminal.")
	fmt.Fprintln(os.Stderr, "At the origin prompt type 'save' to save and quit, or 'moves' to list legal moves.")
	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, "Options:")
	flag.PrintDefaults()
}

// setupLogFile configures the log file based on command-line flags.
func setupLogFile(cfg *config.Config) {
	if *logFile == "" {
		return
	}
	file, err := os.OpenFile(*logFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) //nolint:gosec // G302: 0644 is appropriate for user-created log files
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening log file %s: %v\n", *logFile, err)
		os.Exit(1)
	}
	cfg.LogFile = file
}

// runVerify checks every saved game and returns the exit code.
func runVerify(cfg *config.Config) int {
	logger := cfg.Logger()
	dir := store.NewDir(cfg.Store.Dir)
	classifier := engine.Classifier{ExtendedInsufficientMaterial: cfg.Rules.ExtendedInsufficientMaterial}

	checks, err := store.Verify(dir, cfg.Store.Workers, classifier)
	for _, c := range checks {
		entry := logger.WithField("name", c.Name)
		if c.Err != nil {
			entry.WithError(c.Err).Error("invalid save")
			continue
		}
		if len(c.Duplicates) > 0 {
			entry.WithField("same_as", strings.Join(c.Duplicates, ",")).Warn("duplicate position")
		}
		entry.WithFields(log.Fields{"status": c.Status, "ply": c.Ply}).Info("save ok")
	}
	fmt.Fprintf(cfg.OutputFile, "%d saved games checked, %d invalid\n", len(checks), countInvalid(checks))
	if err != nil {
		return 1
	}
	return 0
}

func countInvalid(checks []store.Check) int {
	n := 0
	for _, c := range checks {
		if c.Err != nil {
			n++
		}
	}
	return n
}

// play runs one interactive game reading answers from in.
func play(cfg *config.Config, in io.Reader) error {
	c := newConsole(in, cfg)
	dir := store.NewDir(cfg.Store.Dir)

	output.WriteWelcome(c.out)
	game, err := chooseGame(c, dir)
	if err != nil {
		return err
	}

	m := match.Resume(game, match.WithConfig(cfg))
	outcome, err := m.Run(c)
	switch {
	case match.Suspended(err):
		return saveGame(c, dir, m.Game())
	case stderrors.Is(err, io.EOF):
		c.warn("Input closed; the game was not saved.")
		return nil
	case err != nil:
		return err
	}

	output.WriteBoard(c.out, m.Game().Board, cfg.Output)
	if outcome.Over() {
		fmt.Fprintf(c.out, "\n Game over after %d plies.\n", outcome.Ply)
	}
	return exportGame(cfg, m.Game())
}

// chooseGame picks the game to play: the -load save, a new game with -new,
// or whatever the player chooses.
func chooseGame(c *console, dir *store.Dir) (*chess.Game, error) {
	if *loadName != "" {
		return dir.Load(*loadName)
	}
	if *newGame {
		return chess.NewGame(), nil
	}

	for {
		choice, err := c.ask("Do you want to start a new game or load a saved game?\n  [1] Start new game\n  [2] Load saved game")
		if err != nil {
			return nil, err
		}
		switch choice {
		case "1":
			return chess.NewGame(), nil
		case "2":
			return loadChosen(c, dir)
		}
		c.warn("Invalid choice.")
	}
}

func loadChosen(c *console, dir *store.Dir) (*chess.Game, error) {
	names, err := dir.List()
	if err != nil {
		return nil, err
	}
	if len(names) == 0 {
		fmt.Fprintln(c.out, "\n There are no saved games. Starting new game.")
		return chess.NewGame(), nil
	}

	for {
		fmt.Fprintln(c.out, "\n These are the available games for loading:")
		for _, name := range names {
			fmt.Fprintf(c.out, "  - %s\n", name)
		}
		name, err := c.ask("What is the name of the game you want to load?")
		if err != nil {
			return nil, err
		}
		if !dir.Exists(name) {
			c.warn("Invalid name.")
			continue
		}
		g, err := dir.Load(name)
		if err != nil {
			return nil, err
		}
		fmt.Fprintln(c.out, "\n Game successfully loaded!")
		return g, nil
	}
}

// saveGame asks for a save name, confirming before overwriting, and saves g.
// An empty answer picks a fresh name.
func saveGame(c *console, dir *store.Dir, g *chess.Game) error {
	for {
		name, err := c.ask("What is the filename you want to use to save the game? Use only letters and numbers.")
		if err != nil {
			return err
		}
		if name == "" {
			name = store.NewName()
		}
		if err := store.ValidName(name); err != nil {
			c.warn("Invalid name.")
			continue
		}
		if dir.Exists(name) {
			answer, err := c.ask("Filename already exists. Overwrite existing file? (y/n)")
			if err != nil {
				return err
			}
			if answer != "y" {
				continue
			}
		}
		if err := dir.Save(name, g); err != nil {
			return err
		}
		fmt.Fprintf(c.out, "\n Game successfully saved as %s.\n", name)
		return nil
	}
}

// exportGame writes the final game to the -svg and -json files, if given.
func exportGame(cfg *config.Config, g *chess.Game) error {
	exports := []struct {
		file   string
		format string
	}{
		{*svgFile, "svg"},
		{*jsonFile, "json"},
	}
	for _, e := range exports {
		if e.file == "" {
			continue
		}
		if err := writeFile(e.file, e.format, cfg, g); err != nil {
			return err
		}
	}
	return nil
}

func writeFile(path, format string, cfg *config.Config, g *chess.Game) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	w, _ := output.NewWriter(format, file, cfg.Output)
	if err := w.WriteGame(g); err != nil {
		return err
	}
	if err := w.Close(); err != nil {
		return err
	}
	return file.Close()
}
