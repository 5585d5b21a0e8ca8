package store

import (
	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/hashing"
	chesserrors "github.com/lgbarn/chess-rules-go/internal/errors"
	"github.com/lgbarn/chess-rules-go/internal/worker"
)

// Check is the verification result for one save.
type Check struct {
	Name   string
	Status chess.Status
	Ply    int
	Err    error

	// Other saves holding the same position with the same side to move.
	Duplicates []string
}

// Verify loads every save in d with the given number of workers and checks
// that its recorded status matches a fresh classification. It returns one
// Check per save, in name order, and an aggregate of every failure. Saves
// that reach the same position are cross-referenced but not failures.
func Verify(d *Dir, workers int, classifier engine.Classifier) ([]Check, error) {
	names, err := d.List()
	if err != nil {
		return nil, err
	}

	detector := hashing.NewThreadSafeDuplicateDetector(false)
	results := worker.Map(names, workers, func(name string) (Check, error) {
		return d.check(name, classifier, detector)
	})

	checks := make([]Check, len(results))
	var errs *multierror.Error
	for i, r := range results {
		checks[i] = r.Value
		checks[i].Name = names[i]
		if r.Err != nil {
			checks[i].Err = r.Err
			errs = multierror.Append(errs, errors.Wrap(r.Err, names[i]))
		}
	}

	index := make(map[string]int, len(names))
	for i, name := range names {
		index[name] = i
	}
	for _, group := range detector.Duplicates() {
		for _, name := range group {
			c := &checks[index[name]]
			for _, other := range group {
				if other != name {
					c.Duplicates = append(c.Duplicates, other)
				}
			}
		}
	}
	return checks, errs.ErrorOrNil()
}

func (d *Dir) check(name string, classifier engine.Classifier, detector *hashing.ThreadSafeDuplicateDetector) (Check, error) {
	g, err := d.Load(name)
	if err != nil {
		return Check{}, err
	}
	c := Check{Name: name, Status: g.Status, Ply: g.Ply()}
	detector.Add(hashing.NewSignature(name, g))

	// A finished game keeps the turn of the side that made the last move.
	colour := g.Turn
	if g.Status.Terminal() {
		colour = g.Turn.Opposite()
	}
	if got := classifier.Classify(g.Board, g.History, colour); got != g.Status {
		return c, chesserrors.Wrapf(chesserrors.ErrInvalidSnapshot, "recorded status %v, position is %v", g.Status, got)
	}
	return c, nil
}
