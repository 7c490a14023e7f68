package guide

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"

	"laptudirm.com/x/strategy/pkg/rps"
)

// Open opens the strategy guide at the given path.
func Open(name string) (*Guide, error) {
	file, err := os.Open(name)
	if err != nil {
		return nil, fmt.Errorf("open guide: %w", err)
	}

	guide := New(file)
	guide.closer = file
	return guide, nil
}

// New returns a Guide which reads rounds from the given reader.
func New(r io.Reader) *Guide {
	return &Guide{scanner: bufio.NewScanner(r)}
}

// Guide is a lazily decoded sequence of rounds, one per line.
type Guide struct {
	scanner *bufio.Scanner
	closer  io.Closer

	line    int
	current rps.Round
	err     error
}

// Next decodes the next round of the guide. It returns false once the guide
// is exhausted or an error has occurred, which is then reported by Err.
func (guide *Guide) Next() bool {
	if guide.err != nil || !guide.scanner.Scan() {
		if guide.err == nil {
			guide.err = guide.scanner.Err()
		}

		return false
	}

	guide.line++
	text := guide.scanner.Text()

	round, err := rps.ParseRound(text)
	if err != nil {
		guide.err = &rps.FormatError{Line: guide.line, Text: text}
		return false
	}

	logrus.WithFields(logrus.Fields{
		"line":     guide.line,
		"opponent": round.Opponent,
		"self":     round.Self,
		"outcome":  round.Outcome(),
	}).Trace("decoded round")

	guide.current = round
	return true
}

// Round returns the round decoded by the last call to Next.
func (guide *Guide) Round() rps.Round {
	return guide.current
}

// Err returns the first error encountered while reading the guide.
func (guide *Guide) Err() error {
	return guide.err
}

// Total sums the scores of the remaining rounds of the guide. No partial
// total is returned if any round fails to decode.
func (guide *Guide) Total() (int, error) {
	total := 0
	for guide.Next() {
		total += guide.Round().Score()
	}

	if err := guide.Err(); err != nil {
		return 0, fmt.Errorf("read guide: %w", err)
	}

	return total, nil
}

// Close closes the underlying file if the Guide was opened with Open.
func (guide *Guide) Close() error {
	if guide.closer == nil {
		return nil
	}

	return guide.closer.Close()
}

// Total returns the total score of the strategy guide read from r.
func Total(r io.Reader) (int, error) {
	return New(r).Total()
}
