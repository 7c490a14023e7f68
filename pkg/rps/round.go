// Copyright © 2024 Rak Laptudirm <rak@laptudirm.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package rps

import (
	"fmt"
	"regexp"
)

var roundRegexp = regexp.MustCompile(`^([ABC]) ([XYZ])$`)

var opponentTokens = map[string]Choice{
	"A": Rock,
	"B": Paper,
	"C": Scissors,
}

var directiveTokens = map[string]Outcome{
	"X": Lose,
	"Y": Draw,
	"Z": Win,
}

// Round is a single round of the strategy guide.
type Round struct {
	Self     Choice
	Opponent Choice
}

// Outcome returns the result of the Round for the player.
func (round Round) Outcome() Outcome {
	return OutcomeOf(round.Self, round.Opponent)
}

// Score returns the points the player is awarded for the Round.
func (round Round) Score() int {
	return round.Outcome().Value() + round.Self.Value()
}

// ParseRound decodes a line of the form "<opponent> <directive>", where the
// opponent token is one of A, B, C and the directive one of X (lose),
// Y (draw), Z (win). The player's choice is the one which produces the
// directed outcome against the opponent.
func ParseRound(line string) (Round, error) {
	match := roundRegexp.FindStringSubmatch(line)
	if match == nil {
		return Round{}, &FormatError{Text: line}
	}

	opponent := opponentTokens[match[1]]
	return Round{
		Self:     ChoiceFor(opponent, directiveTokens[match[2]]),
		Opponent: opponent,
	}, nil
}

// FormatError is returned when a line isn't a valid round.
type FormatError struct {
	Line int // 1-based, zero if unknown
	Text string
}

func (err *FormatError) Error() string {
	if err.Line == 0 {
		return fmt.Sprintf("invalid round %q", err.Text)
	}

	return fmt.Sprintf("line %d: invalid round %q", err.Line, err.Text)
}
