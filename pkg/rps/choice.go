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

// Choice represents a shape that a player can throw in a round.
type Choice int

const (
	Rock     Choice = 1
	Paper    Choice = 2
	Scissors Choice = 3
)

// Choices lists every valid Choice in order of value.
var Choices = [3]Choice{Rock, Paper, Scissors}

// Value returns the number of points awarded for throwing the Choice.
func (choice Choice) Value() int {
	return int(choice)
}

// Beats returns the Choice which is defeated by the given one.
func (choice Choice) Beats() Choice {
	switch choice {
	case Rock:
		return Scissors
	case Paper:
		return Rock
	default:
		return Paper
	}
}

// LosesTo returns the Choice which defeats the given one.
func (choice Choice) LosesTo() Choice {
	switch choice {
	case Rock:
		return Paper
	case Paper:
		return Scissors
	default:
		return Rock
	}
}

// ChoiceFor returns the Choice which has to be thrown against opponent to
// get the wanted Outcome.
func ChoiceFor(opponent Choice, want Outcome) Choice {
	switch want {
	case Win:
		return opponent.LosesTo()
	case Lose:
		return opponent.Beats()
	default:
		return opponent
	}
}

// String returns a string representation of the given Choice.
func (choice Choice) String() string {
	switch choice {
	case Rock:
		return "rock"
	case Paper:
		return "paper"
	case Scissors:
		return "scissors"
	default:
		return "?"
	}
}
