package output

import (
	"encoding/json"
	"io"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/store"
)

// GameWriter is the interface for writing games to output.
// Different implementations handle different formats (text, JSON, SVG).
type GameWriter interface {
	// WriteGame writes a single game to the output.
	WriteGame(game *chess.Game) error

	// Flush flushes any buffered data to the underlying writer.
	Flush() error

	// Close closes the writer and releases any resources.
	// For batch writers (like JSON), this also writes any pending output.
	Close() error
}

// NewWriter returns the writer for a format name: "text", "json" or "svg".
func NewWriter(format string, w io.Writer, cfg *config.OutputConfig) (GameWriter, bool) {
	switch format {
	case "text":
		return NewTextWriter(w, cfg), true
	case "json":
		return NewJSONWriter(w), true
	case "svg":
		return NewSVGWriter(w, cfg), true
	}
	return nil, false
}

// TextWriter writes the board, captured pieces, status and move list.
type TextWriter struct {
	w   io.Writer
	cfg *config.OutputConfig
}

// NewTextWriter creates a new text writer.
func NewTextWriter(w io.Writer, cfg *config.OutputConfig) *TextWriter {
	return &TextWriter{w: w, cfg: cfg}
}

// WriteGame writes a game as text.
func (tw *TextWriter) WriteGame(game *chess.Game) error {
	if err := WriteGame(tw.w, game, tw.cfg); err != nil {
		return err
	}
	if len(game.History) == 0 {
		return nil
	}
	if _, err := io.WriteString(tw.w, "\n"); err != nil {
		return err
	}
	return WriteMoves(tw.w, game.History, 0)
}

// Flush is a no-op; text is written immediately.
func (tw *TextWriter) Flush() error {
	return nil
}

// Close closes the text writer.
func (tw *TextWriter) Close() error {
	return nil
}

// JSONOutput holds multiple games for array output.
type JSONOutput struct {
	Games []*store.Snapshot `json:"games"`
}

// JSONWriter writes games as snapshots in the save file format.
// It buffers games and writes them as a JSON array on Close or Flush.
type JSONWriter struct {
	w     io.Writer
	games []*store.Snapshot
}

// NewJSONWriter creates a new JSON writer.
func NewJSONWriter(w io.Writer) *JSONWriter {
	return &JSONWriter{w: w}
}

// WriteGame buffers a snapshot of game. Later moves on game do not change it.
func (jw *JSONWriter) WriteGame(game *chess.Game) error {
	jw.games = append(jw.games, store.FromGame(game))
	return nil
}

// Flush writes all buffered games as a JSON array.
func (jw *JSONWriter) Flush() error {
	if len(jw.games) == 0 {
		return nil
	}
	enc := json.NewEncoder(jw.w)
	enc.SetIndent("", "  ")
	err := enc.Encode(&JSONOutput{Games: jw.games})
	jw.games = jw.games[:0]
	return err
}

// Close flushes and closes the JSON writer.
func (jw *JSONWriter) Close() error {
	return jw.Flush()
}

// SVGWriter draws the current board of each game, marking the last move.
type SVGWriter struct {
	w   io.Writer
	cfg *config.OutputConfig
}

// NewSVGWriter creates a new SVG writer.
func NewSVGWriter(w io.Writer, cfg *config.OutputConfig) *SVGWriter {
	return &SVGWriter{w: w, cfg: cfg}
}

// WriteGame writes one SVG document for game.
func (sw *SVGWriter) WriteGame(game *chess.Game) error {
	return WriteSVG(sw.w, game.Board, sw.cfg.SVGSquareSize, LastMoveSquares(game.History)...)
}

// Flush is a no-op; SVG is written immediately.
func (sw *SVGWriter) Flush() error {
	return nil
}

// Close closes the SVG writer.
func (sw *SVGWriter) Close() error {
	return nil
}
