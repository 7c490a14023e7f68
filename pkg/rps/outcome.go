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

// Outcome represents the result of a round from the player's point of view.
type Outcome int

const (
	Lose Outcome = 0
	Draw Outcome = 3
	Win  Outcome = 6
)

// outcomes maps the difference of the player's and the opponent's choice
// values, modulo 3, to the round's Outcome.
var outcomes = [3]Outcome{
	0: Draw,
	1: Win,
	2: Lose,
}

// OutcomeOf returns the Outcome of a round where self is thrown against
// opponent.
func OutcomeOf(self, opponent Choice) Outcome {
	diff := (self.Value() - opponent.Value()) % 3
	if diff < 0 {
		diff += 3
	}

	return outcomes[diff]
}

// Value returns the number of points awarded for the Outcome.
func (outcome Outcome) Value() int {
	return int(outcome)
}

// String returns a string representation of the given Outcome.
func (outcome Outcome) String() string {
	switch outcome {
	case Win:
		return "win"
	case Draw:
		return "draw"
	case Lose:
		return "lose"
	default:
		return "?"
	}
}
