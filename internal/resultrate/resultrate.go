package resultrate

import (
	"fmt"
	"math"
)

// Strategy selects how ties contribute to a result rate
type Strategy string

const (
	IgnoreTies     Strategy = "ignore-ties"
	TiesAsLosses   Strategy = "ties-as-losses"
	TiesAsHalfWin  Strategy = "ties-as-half-win"
	TiesAsThirdWin Strategy = "ties-as-third-win"
	TiesAsWins     Strategy = "ties-as-wins"
)

// DefaultStrategy is the strategy preselected in the dashboard
const DefaultStrategy = IgnoreTies

// Strategies lists all strategies in display order
var Strategies = []Strategy{
	IgnoreTies,
	TiesAsLosses,
	TiesAsHalfWin,
	TiesAsThirdWin,
	TiesAsWins,
}

// transform maps a record to the strategy's (numerator, denominator)
// pair. The switch is exhaustive over the known strategies; anything
// else is an error naming the offending key.
func transform(strategy Strategy, wins, losses, ties float64) (num, den float64, err error) {
	switch strategy {
	case IgnoreTies:
		return wins, wins + losses, nil
	case TiesAsLosses:
		return wins, wins + losses + ties, nil
	case TiesAsHalfWin:
		return wins + ties/2, wins + losses + ties, nil
	case TiesAsThirdWin:
		return wins + ties/3, wins + losses + ties, nil
	case TiesAsWins:
		return wins + ties, wins + losses + ties, nil
	default:
		return 0, 0, fmt.Errorf("unknown result rate strategy: %s", strategy)
	}
}

// Calculate computes the result rate for a win/loss/tie record under
// the given strategy. An empty record (zero denominator) rates 0.
// With percentage set the rate is scaled to [0, 100] and rounded to
// one decimal; otherwise it stays in [0, 1] unrounded.
func Calculate(strategy Strategy, wins, losses, ties float64, percentage bool) (float64, error) {
	num, den, err := transform(strategy, wins, losses, ties)
	if err != nil {
		return 0, err
	}

	rate := 0.0
	if den != 0 {
		rate = num / den
	}
	if percentage {
		return math.Round(rate*1000) / 10, nil
	}
	return rate, nil
}

// Label returns the strategy's human-readable name.
func Label(strategy Strategy) (string, error) {
	switch strategy {
	case IgnoreTies:
		return "Ignore Ties", nil
	case TiesAsLosses:
		return "Count Ties as Losses", nil
	case TiesAsHalfWin:
		return "Count Ties as 1/2 Win", nil
	case TiesAsThirdWin:
		return "Count Ties as 1/3 Win", nil
	case TiesAsWins:
		return "Count Ties as Wins", nil
	default:
		return "", fmt.Errorf("unknown result rate strategy: %s", strategy)
	}
}

// Formula returns the strategy's formula as a markdown/LaTeX snippet
// suitable for mathjax rendering.
func Formula(strategy Strategy) (string, error) {
	switch strategy {
	case IgnoreTies:
		return `% = $\frac{W}{W+L}$`, nil
	case TiesAsLosses:
		return `% = $\frac{W}{W+L+T}$`, nil
	case TiesAsHalfWin:
		return `% = $\frac{W + \frac{T}{2}}{W+L+T}$`, nil
	case TiesAsThirdWin:
		return `% = $\frac{W + \frac{T}{3}}{W+L+T}$`, nil
	case TiesAsWins:
		return `% = $\frac{W + T}{W+L+T}$`, nil
	default:
		return "", fmt.Errorf("unknown result rate strategy: %s", strategy)
	}
}

// FormatLabel builds the display label for a strategy: the formula
// alone, or "Name: formula".
func FormatLabel(strategy Strategy, formulaOnly bool) (string, error) {
	formula, err := Formula(strategy)
	if err != nil {
		return "", err
	}
	if formulaOnly {
		return formula, nil
	}
	name, err := Label(strategy)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s: %s", name, formula), nil
}

// Option is one entry of a strategy selector control
type Option struct {
	Value Strategy
	Label string
}

// Options returns the selector entries for all strategies, in display
// order, each labeled with its name and formula.
func Options() []Option {
	options := make([]Option, 0, len(Strategies))
	for _, strategy := range Strategies {
		label, err := FormatLabel(strategy, false)
		if err != nil {
			// Strategies only holds known keys
			continue
		}
		options = append(options, Option{Value: strategy, Label: label})
	}
	return options
}
