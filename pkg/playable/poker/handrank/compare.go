package handrank

// Outcome is the result of comparing two hands at showdown
type Outcome int

// outcome constants
const (
	SecondWins Outcome = iota - 1
	DrawOutcome
	FirstWins
)

// String returns the string representation of an outcome
func (o Outcome) String() string {
	switch o {
	case FirstWins:
		return "first wins"
	case SecondWins:
		return "second wins"
	case DrawOutcome:
		return "draw"
	}

	panic("unknown outcome")
}

// Compare totally orders two hand ranks.
// Category decides outright; on equal category the tiebreak lists are
// compared element-wise, most significant first. Two hands identical in
// rank composition (differing only by suit) are a draw.
func Compare(a, b *HandRank) Outcome {
	if a.Category != b.Category {
		if a.Category > b.Category {
			return FirstWins
		}

		return SecondWins
	}

	for i := range a.Tiebreak {
		if i >= len(b.Tiebreak) {
			break
		}

		if a.Tiebreak[i] != b.Tiebreak[i] {
			if a.Tiebreak[i] > b.Tiebreak[i] {
				return FirstWins
			}

			return SecondWins
		}
	}

	return DrawOutcome
}
